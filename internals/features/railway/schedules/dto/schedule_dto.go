package dto

import (
	"errors"
	"time"

	"raillink_backend/internals/features/railway/schedules/model"
)

// ============================
// Response DTO
// ============================

type ScheduleDTO struct {
	ScheduleID            string             `json:"schedule_id"`
	ScheduleName          string             `json:"schedule_name"`
	ScheduleDepartureDate time.Time          `json:"schedule_departure_date"`
	ScheduleArrivalDate   time.Time          `json:"schedule_arrival_date"`
	ScheduleStatus        string             `json:"schedule_status"`
	ScheduleDelayMinutes  int                `json:"schedule_delay_minutes"`
	ScheduleTrainID       string             `json:"schedule_train_id"`
	ScheduleRouteID       string             `json:"schedule_route_id"`
	SchedulePricing       map[string]float64 `json:"schedule_pricing"`
	ScheduleCreatedAt     time.Time          `json:"schedule_created_at"`
}

// ============================
// Request DTOs
// ============================

// SaveScheduleRequest carries the schedule template plus the optional
// recurring-generation range and the parallel pricing arrays from the
// admin form.
type SaveScheduleRequest struct {
	ScheduleName  string `json:"schedule_name" validate:"required,min=2,max=100"`
	DepartureDate string `json:"departure_date" validate:"required"`
	ArrivalDate   string `json:"arrival_date" validate:"required"`
	Status        string `json:"status" validate:"omitempty,oneof=ON_TIME DELAYED CANCELLED"`
	DelayMinutes  int    `json:"delay_minutes" validate:"gte=0"`
	TrainID       string `json:"train_id" validate:"required,uuid4"`
	RouteID       string `json:"route_id" validate:"required,uuid4"`

	ClassNames  []string `json:"class_names"`
	ClassPrices []string `json:"class_prices"`

	// recurring generation
	DailySchedule bool   `json:"daily_schedule"`
	StartDate     string `json:"start_date"` // ISO date, no time
	EndDate       string `json:"end_date"`
}

type UpdateScheduleRequest struct {
	ScheduleName  *string  `json:"schedule_name" validate:"omitempty,min=2,max=100"`
	DepartureDate *string  `json:"departure_date"`
	ArrivalDate   *string  `json:"arrival_date"`
	Status        *string  `json:"status" validate:"omitempty,oneof=ON_TIME DELAYED CANCELLED"`
	DelayMinutes  *int     `json:"delay_minutes" validate:"omitempty,gte=0"`
	ClassNames    []string `json:"class_names"`
	ClassPrices   []string `json:"class_prices"`
}

// ============================
// Date parsing
// ============================

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDateTime accepts the datetime-local form formats plus RFC3339.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("invalid datetime: " + s)
}

// ParseDate accepts an ISO date with no time component.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errors.New("invalid date: " + s)
	}
	return t, nil
}

// ============================
// Converter
// ============================

func ToScheduleDTO(m model.ScheduleModel) ScheduleDTO {
	pricing := make(map[string]float64, len(m.SchedulePricing))
	for name := range m.SchedulePricing {
		if price, ok := m.ClassPrice(name); ok {
			pricing[name] = price
		}
	}
	return ScheduleDTO{
		ScheduleID:            m.ScheduleID.String(),
		ScheduleName:          m.ScheduleName,
		ScheduleDepartureDate: m.ScheduleDepartureDate,
		ScheduleArrivalDate:   m.ScheduleArrivalDate,
		ScheduleStatus:        m.ScheduleStatus,
		ScheduleDelayMinutes:  m.ScheduleDelayMinutes,
		ScheduleTrainID:       m.ScheduleTrainID.String(),
		ScheduleRouteID:       m.ScheduleRouteID.String(),
		SchedulePricing:       pricing,
		ScheduleCreatedAt:     m.ScheduleCreatedAt,
	}
}
