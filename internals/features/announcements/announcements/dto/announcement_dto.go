package dto

import (
	"time"

	"raillink_backend/internals/features/announcements/announcements/model"
)

// ============================
// Response DTO
// ============================

type AnnouncementDTO struct {
	AnnouncementID        string    `json:"announcement_id"`
	AnnouncementTitle     string    `json:"announcement_title"`
	AnnouncementContent   string    `json:"announcement_content"`
	AnnouncementStartDate time.Time `json:"announcement_start_date"`
	AnnouncementEndDate   time.Time `json:"announcement_end_date"`
	AnnouncementAuthorID  string    `json:"announcement_author_id"`
	AnnouncementCreatedAt time.Time `json:"announcement_created_at"`
}

// ============================
// Request DTOs
// Dates use "2006-01-02T15:04" or RFC3339; both optional on create.
// ============================

type CreateAnnouncementRequest struct {
	Title     string `json:"title" validate:"required,min=3,max=150"`
	Content   string `json:"content" validate:"required,min=3"`
	StartDate string `json:"start_date" validate:"omitempty"`
	EndDate   string `json:"end_date" validate:"omitempty"`
}

type UpdateAnnouncementRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=3,max=150"`
	Content   *string `json:"content" validate:"omitempty,min=3"`
	StartDate *string `json:"start_date" validate:"omitempty"`
	EndDate   *string `json:"end_date" validate:"omitempty"`
}

// ============================
// Converter
// ============================

func ToAnnouncementDTO(m model.AnnouncementModel) AnnouncementDTO {
	return AnnouncementDTO{
		AnnouncementID:        m.AnnouncementID.String(),
		AnnouncementTitle:     m.AnnouncementTitle,
		AnnouncementContent:   m.AnnouncementContent,
		AnnouncementStartDate: m.AnnouncementStartDate,
		AnnouncementEndDate:   m.AnnouncementEndDate,
		AnnouncementAuthorID:  m.AnnouncementAuthorID.String(),
		AnnouncementCreatedAt: m.AnnouncementCreatedAt,
	}
}
