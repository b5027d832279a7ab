package dto

import (
	"time"

	"github.com/lib/pq"

	"raillink_backend/internals/features/railway/stations/model"
)

// ============================
// Response DTO
// ============================

type StationDTO struct {
	StationID         string    `json:"station_id"`
	StationName       string    `json:"station_name"`
	StationLocation   string    `json:"station_location"`
	StationFacilities []string  `json:"station_facilities"`
	StationArchived   bool      `json:"station_archived"`
	StationCreatedAt  time.Time `json:"station_created_at"`
}

// ============================
// Request DTOs
// ============================

type CreateStationRequest struct {
	StationName       string   `json:"station_name" validate:"required,min=2,max=100"`
	StationLocation   string   `json:"station_location" validate:"max=255"`
	StationFacilities []string `json:"station_facilities" validate:"omitempty,dive,min=1,max=100"`
}

type UpdateStationRequest struct {
	StationName       *string  `json:"station_name" validate:"omitempty,min=2,max=100"`
	StationLocation   *string  `json:"station_location" validate:"omitempty,max=255"`
	StationFacilities []string `json:"station_facilities" validate:"omitempty,dive,min=1,max=100"`
	StationArchived   *bool    `json:"station_archived"`
}

// ============================
// Converters
// ============================

func FacilitiesToPQ(in []string) pq.StringArray {
	if len(in) == 0 {
		return pq.StringArray{}
	}
	out := make(pq.StringArray, len(in))
	copy(out, in)
	return out
}

func ToStationDTO(m model.StationModel) StationDTO {
	facilities := make([]string, len(m.StationFacilities))
	copy(facilities, m.StationFacilities)
	return StationDTO{
		StationID:         m.StationID.String(),
		StationName:       m.StationName,
		StationLocation:   m.StationLocation,
		StationFacilities: facilities,
		StationArchived:   m.StationArchived,
		StationCreatedAt:  m.StationCreatedAt,
	}
}
