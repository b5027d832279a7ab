package model

import (
	"time"

	"github.com/google/uuid"
)

// Refund lifecycle: REQUESTED -> APPROVED -> ISSUED, or REQUESTED -> REJECTED.
const (
	StatusRequested = "REQUESTED"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusIssued    = "ISSUED"
)

type RefundModel struct {
	RefundID        uuid.UUID `gorm:"column:refund_id;type:uuid;default:gen_random_uuid();primaryKey" json:"refund_id"`
	RefundBookingID uuid.UUID `gorm:"column:refund_booking_id;type:uuid;not null" json:"refund_booking_id"`
	RefundUserID    uuid.UUID `gorm:"column:refund_user_id;type:uuid;not null" json:"refund_user_id"`

	RefundAmount float64 `gorm:"column:refund_amount;type:numeric(12,2);not null" json:"refund_amount"`
	RefundReason string  `gorm:"column:refund_reason;type:text;not null" json:"refund_reason"`
	RefundStatus string  `gorm:"column:refund_status;type:varchar(20);not null;default:'REQUESTED'" json:"refund_status"`

	RefundProcessedBy *uuid.UUID `gorm:"column:refund_processed_by;type:uuid" json:"refund_processed_by,omitempty"`
	RefundProcessedAt *time.Time `gorm:"column:refund_processed_at" json:"refund_processed_at,omitempty"`

	RefundCreatedAt time.Time `gorm:"column:refund_created_at;autoCreateTime" json:"refund_created_at"`
	RefundUpdatedAt time.Time `gorm:"column:refund_updated_at;autoUpdateTime" json:"refund_updated_at"`
}

func (RefundModel) TableName() string {
	return "refunds"
}
