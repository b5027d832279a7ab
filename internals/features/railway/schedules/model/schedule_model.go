package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Schedule statuses. Stored as text; the DTO layer restricts writes to
// this set.
const (
	StatusOnTime    = "ON_TIME"
	StatusDelayed   = "DELAYED"
	StatusCancelled = "CANCELLED"
)

type ScheduleModel struct {
	ScheduleID   uuid.UUID `gorm:"column:schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_id"`
	ScheduleName string    `gorm:"column:schedule_name;type:varchar(100);not null" json:"schedule_name"`

	ScheduleDepartureDate time.Time `gorm:"column:schedule_departure_date;not null" json:"schedule_departure_date"`
	ScheduleArrivalDate   time.Time `gorm:"column:schedule_arrival_date;not null" json:"schedule_arrival_date"`

	ScheduleStatus       string `gorm:"column:schedule_status;type:varchar(20);not null;default:'ON_TIME'" json:"schedule_status"`
	ScheduleDelayMinutes int    `gorm:"column:schedule_delay_minutes;not null;default:0" json:"schedule_delay_minutes"`

	ScheduleTrainID uuid.UUID `gorm:"column:schedule_train_id;type:uuid;not null" json:"schedule_train_id"`
	ScheduleRouteID uuid.UUID `gorm:"column:schedule_route_id;type:uuid;not null" json:"schedule_route_id"`

	// class-name -> price, serialized as jsonb
	SchedulePricing datatypes.JSONMap `gorm:"column:schedule_pricing;type:jsonb;not null;default:'{}'" json:"schedule_pricing"`

	ScheduleCreatedAt time.Time `gorm:"column:schedule_created_at;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time `gorm:"column:schedule_updated_at;autoUpdateTime" json:"schedule_updated_at"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}

// ClassPrice returns the declared price for a ticket class.
func (s ScheduleModel) ClassPrice(class string) (float64, bool) {
	v, ok := s.SchedulePricing[class]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
