package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementModel struct {
	AnnouncementID      uuid.UUID `gorm:"column:announcement_id;type:uuid;default:gen_random_uuid();primaryKey" json:"announcement_id"`
	AnnouncementTitle   string    `gorm:"column:announcement_title;type:varchar(150);not null" json:"announcement_title"`
	AnnouncementContent string    `gorm:"column:announcement_content;type:text;not null" json:"announcement_content"`

	AnnouncementStartDate time.Time `gorm:"column:announcement_start_date;not null" json:"announcement_start_date"`
	AnnouncementEndDate   time.Time `gorm:"column:announcement_end_date;not null" json:"announcement_end_date"`

	AnnouncementAuthorID uuid.UUID `gorm:"column:announcement_author_id;type:uuid;not null" json:"announcement_author_id"`

	AnnouncementCreatedAt time.Time `gorm:"column:announcement_created_at;autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time `gorm:"column:announcement_updated_at;autoUpdateTime" json:"announcement_updated_at"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}

// ScopeActive keeps announcements whose display window covers now.
func ScopeActive(db *gorm.DB) *gorm.DB {
	now := time.Now()
	return db.Where("announcement_start_date <= ? AND announcement_end_date >= ?", now, now)
}
