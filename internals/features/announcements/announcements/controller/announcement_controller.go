package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"raillink_backend/internals/features/announcements/announcements/dto"
	"raillink_backend/internals/features/announcements/announcements/model"
	"raillink_backend/internals/features/announcements/announcements/service"
	scheduleDTO "raillink_backend/internals/features/railway/schedules/dto"
	helper "raillink_backend/internals/helpers"
)

var validateAnnouncement = validator.New()

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

func parseOptionalDateTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := scheduleDTO.ParseDateTime(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// =======================
// ➕ Create Announcement (staff/admin)
// Author is taken from the authenticated user, never from the body.
// =======================
func (ctrl *AnnouncementController) CreateAnnouncement(c *fiber.Ctx) error {
	var body dto.CreateAnnouncementRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAnnouncement.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	authorID := helper.GetUserIDFromLocals(c)
	if authorID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	start, err := parseOptionalDateTime(body.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid start_date format")
	}
	end, err := parseOptionalDateTime(body.EndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid end_date format")
	}
	startDate, endDate := service.ResolveWindow(start, end, time.Now())

	announcement := model.AnnouncementModel{
		AnnouncementTitle:     body.Title,
		AnnouncementContent:   body.Content,
		AnnouncementStartDate: startDate,
		AnnouncementEndDate:   endDate,
		AnnouncementAuthorID:  authorID,
	}
	if err := ctrl.DB.Create(&announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}
	return helper.JsonCreated(c, "Announcement created", dto.ToAnnouncementDTO(announcement))
}

// =======================
// 📄 Active Announcements (public)
// =======================
func (ctrl *AnnouncementController) GetActiveAnnouncements(c *fiber.Ctx) error {
	var announcements []model.AnnouncementModel
	if err := ctrl.DB.
		Scopes(model.ScopeActive).
		Order("announcement_start_date DESC").
		Find(&announcements).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve announcements")
	}

	resp := make([]dto.AnnouncementDTO, 0, len(announcements))
	for _, a := range announcements {
		resp = append(resp, dto.ToAnnouncementDTO(a))
	}
	return helper.JsonOK(c, "", resp)
}

// =======================
// 📄 All Announcements (staff/admin, paginated)
// =======================
func (ctrl *AnnouncementController) GetAllAnnouncements(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.AnnouncementModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count announcements")
	}

	var announcements []model.AnnouncementModel
	if err := ctrl.DB.
		Order("announcement_start_date DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&announcements).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve announcements")
	}

	resp := make([]dto.AnnouncementDTO, 0, len(announcements))
	for _, a := range announcements {
		resp = append(resp, dto.ToAnnouncementDTO(a))
	}
	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =======================
// 🔍 Get Announcement By ID
// =======================
func (ctrl *AnnouncementController) GetAnnouncementByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var announcement model.AnnouncementModel
	if err := ctrl.DB.First(&announcement, "announcement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve announcement")
	}
	return helper.JsonOK(c, "", dto.ToAnnouncementDTO(announcement))
}

// =======================
// ✏️ Update Announcement (staff/admin)
// The window is re-normalized after applying the patch.
// =======================
func (ctrl *AnnouncementController) UpdateAnnouncement(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAnnouncement.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var announcement model.AnnouncementModel
	if err := ctrl.DB.First(&announcement, "announcement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve announcement")
	}

	if body.Title != nil {
		announcement.AnnouncementTitle = *body.Title
	}
	if body.Content != nil {
		announcement.AnnouncementContent = *body.Content
	}

	start := announcement.AnnouncementStartDate
	end := announcement.AnnouncementEndDate
	if body.StartDate != nil {
		t, err := scheduleDTO.ParseDateTime(*body.StartDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid start_date format")
		}
		start = t
	}
	if body.EndDate != nil {
		t, err := scheduleDTO.ParseDateTime(*body.EndDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid end_date format")
		}
		end = t
	}
	announcement.AnnouncementStartDate, announcement.AnnouncementEndDate =
		service.ResolveWindow(&start, &end, time.Now())

	if err := ctrl.DB.Save(&announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}
	return helper.JsonUpdated(c, "Announcement updated", dto.ToAnnouncementDTO(announcement))
}

// =======================
// 🗑️ Delete Announcement (staff/admin)
// =======================
func (ctrl *AnnouncementController) DeleteAnnouncement(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.AnnouncementModel{}, "announcement_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
	}
	return helper.JsonDeleted(c, "Announcement deleted", fiber.Map{"announcement_id": id})
}
