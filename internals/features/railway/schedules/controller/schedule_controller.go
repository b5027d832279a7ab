package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"raillink_backend/internals/events"
	routeModel "raillink_backend/internals/features/railway/routes/model"
	"raillink_backend/internals/features/railway/schedules/dto"
	"raillink_backend/internals/features/railway/schedules/model"
	"raillink_backend/internals/features/railway/schedules/service"
	trainModel "raillink_backend/internals/features/railway/trains/model"
	helper "raillink_backend/internals/helpers"
	"raillink_backend/internals/observability"
)

var validateSchedule = validator.New()

type ScheduleController struct {
	DB          *gorm.DB
	Broadcaster *events.Broadcaster
}

func NewScheduleController(db *gorm.DB, b *events.Broadcaster) *ScheduleController {
	return &ScheduleController{DB: db, Broadcaster: b}
}

// =======================
// ➕ Save Schedule (admin workflow)
// Template + optional daily range. The whole series is persisted in one
// transaction, never partially.
// =======================
func (ctrl *ScheduleController) SaveSchedule(c *fiber.Ctx) error {
	var body dto.SaveScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.ScheduleName = strings.TrimSpace(body.ScheduleName)
	if err := validateSchedule.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if body.Status == "" {
		body.Status = model.StatusOnTime
	}

	departure, err := dto.ParseDateTime(body.DepartureDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	arrival, err := dto.ParseDateTime(body.ArrivalDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	trainID, _ := uuid.Parse(body.TrainID)
	routeID, _ := uuid.Parse(body.RouteID)

	// Referenced train and route must exist before anything is written.
	if err := ctrl.ensureTrainExists(trainID); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.ensureRouteExists(routeID); err != nil {
		return helper.FromFiberError(c, err)
	}

	pricing := service.ParseClassPricing(body.ClassNames, body.ClassPrices)

	tpl := service.Template{
		Name:         body.ScheduleName,
		Status:       body.Status,
		DelayMinutes: body.DelayMinutes,
		Departure:    departure,
		Arrival:      arrival,
		TrainID:      trainID,
		RouteID:      routeID,
		Pricing:      pricing,
	}

	var start, end = departure, departure
	if body.DailySchedule {
		if body.StartDate == "" || body.EndDate == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "start_date and end_date are required for a daily schedule")
		}
		if start, err = dto.ParseDate(body.StartDate); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		if end, err = dto.ParseDate(body.EndDate); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		// Inverted range is a form mistake; reject it instead of
		// silently generating nothing.
		if start.After(end) {
			return helper.JsonError(c, fiber.StatusBadRequest, "start_date is after end_date")
		}
	} else if !arrival.After(departure) {
		return helper.JsonError(c, fiber.StatusBadRequest, "arrival_date must be after departure_date")
	}

	instances, err := service.SaveSeries(gormInstanceStore{db: ctrl.DB}, tpl, start, end, body.DailySchedule)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if len(instances) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to generate for the given range")
	}

	observability.SchedulesGenerated.Add(float64(len(instances)))
	log.Printf("[INFO] saved %d schedule instance(s) for train=%s route=%s", len(instances), trainID, routeID)

	ctrl.Broadcaster.Publish(events.ScheduleCreated, instances[0].ScheduleID, fiber.Map{
		"count":         len(instances),
		"schedule_name": tpl.Name,
	})

	resp := make([]dto.ScheduleDTO, 0, len(instances))
	for _, inst := range instances {
		resp = append(resp, dto.ToScheduleDTO(inst))
	}
	return helper.JsonCreated(c, "Schedule saved", resp)
}

// gormInstanceStore persists a generated series inside one transaction,
// so a mid-batch failure leaves no rows behind.
type gormInstanceStore struct {
	db *gorm.DB
}

func (s gormInstanceStore) CreateInstances(instances []model.ScheduleModel) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i := range instances {
			if err := tx.Create(&instances[i]).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to save schedule")
			}
		}
		return nil
	})
}

func (ctrl *ScheduleController) ensureTrainExists(id uuid.UUID) error {
	var t trainModel.TrainModel
	if err := ctrl.DB.Select("train_id").First(&t, "train_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Train not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify train")
	}
	return nil
}

func (ctrl *ScheduleController) ensureRouteExists(id uuid.UUID) error {
	var r routeModel.RouteModel
	if err := ctrl.DB.Select("route_id").First(&r, "route_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Route not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify route")
	}
	return nil
}

// =======================
// 📄 Get All Schedules
// Query: ?date=2024-01-01&route_id=&train_id=
// =======================
func (ctrl *ScheduleController) GetAllSchedules(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ScheduleModel{})
	if dateStr := c.Query("date"); dateStr != "" {
		day, err := dto.ParseDate(dateStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("schedule_departure_date >= ? AND schedule_departure_date < ?", day, day.AddDate(0, 0, 1))
	}
	if routeID := c.Query("route_id"); routeID != "" {
		q = q.Where("schedule_route_id = ?", routeID)
	}
	if trainID := c.Query("train_id"); trainID != "" {
		q = q.Where("schedule_train_id = ?", trainID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schedules")
	}

	var schedules []model.ScheduleModel
	if err := q.
		Order("schedule_departure_date ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve schedules")
	}

	resp := make([]dto.ScheduleDTO, 0, len(schedules))
	for _, s := range schedules {
		resp = append(resp, dto.ToScheduleDTO(s))
	}
	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =======================
// 🔍 Get Schedule by ID
// =======================
func (ctrl *ScheduleController) GetScheduleByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var schedule model.ScheduleModel
	if err := ctrl.DB.First(&schedule, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve schedule")
	}
	return helper.JsonOK(c, "", dto.ToScheduleDTO(schedule))
}

// =======================
// ✏️ Update Schedule
// =======================
func (ctrl *ScheduleController) UpdateSchedule(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSchedule.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var schedule model.ScheduleModel
	if err := ctrl.DB.First(&schedule, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve schedule")
	}

	if body.ScheduleName != nil {
		schedule.ScheduleName = strings.TrimSpace(*body.ScheduleName)
	}
	if body.DepartureDate != nil {
		t, err := dto.ParseDateTime(*body.DepartureDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		schedule.ScheduleDepartureDate = t
	}
	if body.ArrivalDate != nil {
		t, err := dto.ParseDateTime(*body.ArrivalDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		schedule.ScheduleArrivalDate = t
	}
	if body.Status != nil {
		schedule.ScheduleStatus = *body.Status
	}
	if body.DelayMinutes != nil {
		schedule.ScheduleDelayMinutes = *body.DelayMinutes
	}
	if body.ClassNames != nil || body.ClassPrices != nil {
		pricing := service.ParseClassPricing(body.ClassNames, body.ClassPrices)
		schedule.SchedulePricing = service.PricingToJSONMap(pricing)
	}

	if !schedule.ScheduleArrivalDate.After(schedule.ScheduleDepartureDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "arrival_date must be after departure_date")
	}

	if err := ctrl.DB.Save(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update schedule")
	}

	ctrl.Broadcaster.Publish(events.ScheduleUpdated, schedule.ScheduleID, dto.ToScheduleDTO(schedule))
	return helper.JsonUpdated(c, "Schedule updated", dto.ToScheduleDTO(schedule))
}

// =======================
// 🗑️ Delete Schedule
// =======================
func (ctrl *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	res := ctrl.DB.Delete(&model.ScheduleModel{}, "schedule_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete schedule")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}

	ctrl.Broadcaster.Publish(events.ScheduleDeleted, id, nil)
	return helper.JsonDeleted(c, "Schedule deleted", fiber.Map{
		"schedule_id": id,
	})
}
