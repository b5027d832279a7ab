package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"raillink_backend/internals/features/railway/trains/dto"
	"raillink_backend/internals/features/railway/trains/model"
	helper "raillink_backend/internals/helpers"
)

var validateTrain = validator.New()

type TrainController struct {
	DB *gorm.DB
}

func NewTrainController(db *gorm.DB) *TrainController {
	return &TrainController{DB: db}
}

// =======================
// ➕ Create Train
// =======================
func (ctrl *TrainController) CreateTrain(c *fiber.Ctx) error {
	var body dto.CreateTrainRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.TrainName = strings.TrimSpace(body.TrainName)
	if err := validateTrain.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if body.TrainStatus == "" {
		body.TrainStatus = "ACTIVE"
	}

	train := model.TrainModel{
		TrainName:     body.TrainName,
		TrainCapacity: body.TrainCapacity,
		TrainStatus:   body.TrainStatus,
		TrainClasses:  dto.ClassesToJSONMap(body.TrainClasses),
	}
	if err := ctrl.DB.Create(&train).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create train")
	}

	return helper.JsonCreated(c, "Train created", dto.ToTrainDTO(train))
}

// =======================
// 📄 Get All Trains (paginated)
// =======================
func (ctrl *TrainController) GetAllTrains(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.TrainModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count trains")
	}

	var trains []model.TrainModel
	if err := ctrl.DB.
		Order("train_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&trains).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve trains")
	}

	resp := make([]dto.TrainDTO, 0, len(trains))
	for _, t := range trains {
		resp = append(resp, dto.ToTrainDTO(t))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =======================
// 🔍 Get Train by ID
// =======================
func (ctrl *TrainController) GetTrainByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var train model.TrainModel
	if err := ctrl.DB.First(&train, "train_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Train not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve train")
	}
	return helper.JsonOK(c, "", dto.ToTrainDTO(train))
}

// =======================
// ✏️ Update Train
// =======================
func (ctrl *TrainController) UpdateTrain(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateTrainRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTrain.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var train model.TrainModel
	if err := ctrl.DB.First(&train, "train_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Train not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve train")
	}

	if body.TrainName != nil {
		train.TrainName = strings.TrimSpace(*body.TrainName)
	}
	if body.TrainCapacity != nil {
		train.TrainCapacity = *body.TrainCapacity
	}
	if body.TrainStatus != nil {
		train.TrainStatus = *body.TrainStatus
	}
	if body.TrainClasses != nil {
		train.TrainClasses = dto.ClassesToJSONMap(body.TrainClasses)
	}

	if err := ctrl.DB.Save(&train).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update train")
	}
	return helper.JsonUpdated(c, "Train updated", dto.ToTrainDTO(train))
}

// =======================
// 🗑️ Delete Train
// =======================
func (ctrl *TrainController) DeleteTrain(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.TrainModel{}, "train_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete train")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Train not found")
	}

	return helper.JsonDeleted(c, "Train deleted", fiber.Map{
		"train_id": id,
	})
}
