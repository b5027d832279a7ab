package dto

import (
	"time"

	"raillink_backend/internals/features/railway/routes/model"
)

// ============================
// Response DTO
// ============================

type RouteDTO struct {
	RouteID          string    `json:"route_id"`
	RouteName        string    `json:"route_name"`
	RouteDescription string    `json:"route_description"`
	RoutePath        []string  `json:"route_path"`
	RouteCreatedAt   time.Time `json:"route_created_at"`
}

// ============================
// Request DTOs
// ============================

type CreateRouteRequest struct {
	RouteName        string   `json:"route_name" validate:"required,min=2,max=100"`
	RouteDescription string   `json:"route_description"`
	RoutePath        []string `json:"route_path" validate:"omitempty,min=2,dive,uuid4"`
}

type UpdateRouteRequest struct {
	RouteName        *string  `json:"route_name" validate:"omitempty,min=2,max=100"`
	RouteDescription *string  `json:"route_description"`
	RoutePath        []string `json:"route_path" validate:"omitempty,min=2,dive,uuid4"`
}

// ============================
// Converter
// ============================

func ToRouteDTO(m model.RouteModel) RouteDTO {
	path := m.PathStationIDs()
	ids := make([]string, 0, len(path))
	for _, id := range path {
		ids = append(ids, id.String())
	}
	return RouteDTO{
		RouteID:          m.RouteID.String(),
		RouteName:        m.RouteName,
		RouteDescription: m.RouteDescription,
		RoutePath:        ids,
		RouteCreatedAt:   m.RouteCreatedAt,
	}
}
