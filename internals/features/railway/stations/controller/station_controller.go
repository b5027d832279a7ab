package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/features/railway/stations/dto"
	"raillink_backend/internals/features/railway/stations/model"
	helper "raillink_backend/internals/helpers"
)

var validateStation = validator.New()

type StationController struct {
	DB *gorm.DB
}

func NewStationController(db *gorm.DB) *StationController {
	return &StationController{DB: db}
}

// =======================
// ➕ Create Station
// =======================
// Find-or-create by name: posting an existing name returns the existing
// row instead of a unique-violation error.
func (ctrl *StationController) CreateStation(c *fiber.Ctx) error {
	var body dto.CreateStationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.StationName = strings.TrimSpace(body.StationName)
	if err := validateStation.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var existing model.StationModel
	err := ctrl.DB.Where("station_name = ?", body.StationName).First(&existing).Error
	if err == nil {
		return helper.JsonOK(c, "Station already exists", dto.ToStationDTO(existing))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up station")
	}

	station := model.StationModel{
		StationName:       body.StationName,
		StationLocation:   body.StationLocation,
		StationFacilities: dto.FacilitiesToPQ(body.StationFacilities),
	}
	if err := ctrl.DB.Create(&station).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create station")
	}

	return helper.JsonCreated(c, "Station created", dto.ToStationDTO(station))
}

// =======================
// 📄 Get All Stations
// Query: ?active=true to hide archived, ?page=&per_page=
// =======================
func (ctrl *StationController) GetAllStations(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.StationModel{})
	if c.Query("active") == "true" {
		q = q.Scopes(model.ScopeActive)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count stations")
	}

	var stations []model.StationModel
	if err := q.
		Order("station_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&stations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve stations")
	}

	resp := make([]dto.StationDTO, 0, len(stations))
	for _, s := range stations {
		resp = append(resp, dto.ToStationDTO(s))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =======================
// 📄 Get Active Stations (public)
// =======================
func (ctrl *StationController) GetActiveStations(c *fiber.Ctx) error {
	var stations []model.StationModel
	if err := ctrl.DB.
		Scopes(model.ScopeActive).
		Order("station_name ASC").
		Find(&stations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve stations")
	}

	resp := make([]dto.StationDTO, 0, len(stations))
	for _, s := range stations {
		resp = append(resp, dto.ToStationDTO(s))
	}
	return helper.JsonOK(c, "", resp)
}

// =======================
// 🔍 Get Station by ID
// Archived stations stay resolvable by id.
// =======================
func (ctrl *StationController) GetStationByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var station model.StationModel
	if err := ctrl.DB.First(&station, "station_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Station not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve station")
	}
	return helper.JsonOK(c, "", dto.ToStationDTO(station))
}

// =======================
// ✏️ Update Station
// =======================
func (ctrl *StationController) UpdateStation(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateStationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStation.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var station model.StationModel
	if err := ctrl.DB.First(&station, "station_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Station not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve station")
	}

	if body.StationName != nil {
		station.StationName = strings.TrimSpace(*body.StationName)
	}
	if body.StationLocation != nil {
		station.StationLocation = *body.StationLocation
	}
	if body.StationFacilities != nil {
		station.StationFacilities = dto.FacilitiesToPQ(body.StationFacilities)
	}
	if body.StationArchived != nil {
		station.StationArchived = *body.StationArchived
	}

	if err := ctrl.DB.Save(&station).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update station")
	}
	return helper.JsonUpdated(c, "Station updated", dto.ToStationDTO(station))
}

// =======================
// 🗑️ Delete Station (soft)
// Sets archived=true, the row is kept. Referenced stations must stay
// resolvable by id.
// =======================
func (ctrl *StationController) DeleteStation(c *fiber.Ctx) error {
	id := c.Params("id")

	var station model.StationModel
	if err := ctrl.DB.First(&station, "station_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Station not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve station")
	}

	station.StationArchived = true
	if err := ctrl.DB.Save(&station).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to archive station")
	}

	return helper.JsonDeleted(c, "Station archived", fiber.Map{
		"station_id": station.StationID,
	})
}
