package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type StationModel struct {
	StationID         uuid.UUID      `gorm:"column:station_id;type:uuid;default:gen_random_uuid();primaryKey" json:"station_id"`
	StationName       string         `gorm:"column:station_name;type:varchar(100);not null;unique" json:"station_name"`
	StationLocation   string         `gorm:"column:station_location;type:varchar(255)" json:"station_location"`
	StationFacilities pq.StringArray `gorm:"column:station_facilities;type:text[]" json:"station_facilities"`
	StationArchived   bool           `gorm:"column:station_archived;not null;default:false" json:"station_archived"`

	StationCreatedAt time.Time `gorm:"column:station_created_at;autoCreateTime" json:"station_created_at"`
	StationUpdatedAt time.Time `gorm:"column:station_updated_at;autoUpdateTime" json:"station_updated_at"`
}

func (StationModel) TableName() string {
	return "stations"
}

// ScopeActive filters out archived stations. Every "list active" query
// must apply this explicitly; stations are never hard-deleted.
func ScopeActive(db *gorm.DB) *gorm.DB {
	return db.Where("station_archived = ?", false)
}
