package dto

import (
	"time"

	"raillink_backend/internals/features/bookings/refunds/model"
)

// ============================
// Response DTO
// ============================

type RefundDTO struct {
	RefundID          string     `json:"refund_id"`
	RefundBookingID   string     `json:"refund_booking_id"`
	RefundUserID      string     `json:"refund_user_id"`
	RefundAmount      float64    `json:"refund_amount"`
	RefundReason      string     `json:"refund_reason"`
	RefundStatus      string     `json:"refund_status"`
	RefundProcessedBy *string    `json:"refund_processed_by,omitempty"`
	RefundProcessedAt *time.Time `json:"refund_processed_at,omitempty"`
	RefundCreatedAt   time.Time  `json:"refund_created_at"`
}

// ============================
// Request DTOs
// ============================

type RequestRefundRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid4"`
	Reason    string `json:"reason" validate:"required,min=3,max=500"`
}

type RejectRefundRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// ============================
// Converter
// ============================

func ToRefundDTO(m model.RefundModel) RefundDTO {
	var processedBy *string
	if m.RefundProcessedBy != nil {
		s := m.RefundProcessedBy.String()
		processedBy = &s
	}
	return RefundDTO{
		RefundID:          m.RefundID.String(),
		RefundBookingID:   m.RefundBookingID.String(),
		RefundUserID:      m.RefundUserID.String(),
		RefundAmount:      m.RefundAmount,
		RefundReason:      m.RefundReason,
		RefundStatus:      m.RefundStatus,
		RefundProcessedBy: processedBy,
		RefundProcessedAt: m.RefundProcessedAt,
		RefundCreatedAt:   m.RefundCreatedAt,
	}
}
