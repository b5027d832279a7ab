package dto

import (
	"time"

	"gorm.io/datatypes"

	"raillink_backend/internals/features/railway/trains/model"
)

// ============================
// Response DTO
// ============================

type TrainDTO struct {
	TrainID        string         `json:"train_id"`
	TrainName      string         `json:"train_name"`
	TrainCapacity  int            `json:"train_capacity"`
	TrainStatus    string         `json:"train_status"`
	TrainClasses   map[string]int `json:"train_classes"`
	TrainCreatedAt time.Time      `json:"train_created_at"`
}

// ============================
// Request DTOs
// ============================

type CreateTrainRequest struct {
	TrainName     string         `json:"train_name" validate:"required,min=2,max=100"`
	TrainCapacity int            `json:"train_capacity" validate:"gte=0"`
	TrainStatus   string         `json:"train_status" validate:"omitempty,oneof=ACTIVE MAINTENANCE RETIRED"`
	TrainClasses  map[string]int `json:"train_classes" validate:"omitempty,dive,gte=0"`
}

type UpdateTrainRequest struct {
	TrainName     *string        `json:"train_name" validate:"omitempty,min=2,max=100"`
	TrainCapacity *int           `json:"train_capacity" validate:"omitempty,gte=0"`
	TrainStatus   *string        `json:"train_status" validate:"omitempty,oneof=ACTIVE MAINTENANCE RETIRED"`
	TrainClasses  map[string]int `json:"train_classes" validate:"omitempty,dive,gte=0"`
}

// ============================
// Converters
// ============================

func ToTrainDTO(m model.TrainModel) TrainDTO {
	classes := make(map[string]int, len(m.TrainClasses))
	for name := range m.TrainClasses {
		if cap, ok := m.ClassCapacity(name); ok {
			classes[name] = cap
		}
	}
	return TrainDTO{
		TrainID:        m.TrainID.String(),
		TrainName:      m.TrainName,
		TrainCapacity:  m.TrainCapacity,
		TrainStatus:    m.TrainStatus,
		TrainClasses:   classes,
		TrainCreatedAt: m.TrainCreatedAt,
	}
}

func ClassesToJSONMap(classes map[string]int) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for name, cap := range classes {
		out[name] = cap
	}
	return out
}
