package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TrainModel struct {
	TrainID       uuid.UUID `gorm:"column:train_id;type:uuid;default:gen_random_uuid();primaryKey" json:"train_id"`
	TrainName     string    `gorm:"column:train_name;type:varchar(100);not null" json:"train_name"`
	TrainCapacity int       `gorm:"column:train_capacity;not null;check:train_capacity >= 0" json:"train_capacity"`
	TrainStatus   string    `gorm:"column:train_status;type:varchar(30);default:'ACTIVE'" json:"train_status"`

	// class-name -> per-class seat capacity
	TrainClasses datatypes.JSONMap `gorm:"column:train_classes;type:jsonb;not null;default:'{}'" json:"train_classes"`

	TrainCreatedAt time.Time `gorm:"column:train_created_at;autoCreateTime" json:"train_created_at"`
	TrainUpdatedAt time.Time `gorm:"column:train_updated_at;autoUpdateTime" json:"train_updated_at"`
}

func (TrainModel) TableName() string {
	return "trains"
}

// ClassCapacity returns the seat capacity for a ticket class, ok=false
// when the train does not declare the class.
func (t TrainModel) ClassCapacity(class string) (int, bool) {
	v, ok := t.TrainClasses[class]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64: // jsonb numbers decode as float64
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
