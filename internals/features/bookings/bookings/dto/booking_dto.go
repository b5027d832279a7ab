package dto

import (
	"time"

	"raillink_backend/internals/features/bookings/bookings/model"
)

// ============================
// Response DTO
// ============================

type BookingDTO struct {
	BookingID            string     `json:"booking_id"`
	BookingUserID        string     `json:"booking_user_id"`
	BookingScheduleID    string     `json:"booking_schedule_id"`
	BookingSeatNumber    string     `json:"booking_seat_number"`
	BookingTicketClass   string     `json:"booking_ticket_class"`
	BookingStatus        string     `json:"booking_status"`
	BookingDate          time.Time  `json:"booking_date"`
	BookingOrderID       string     `json:"booking_order_id"`
	BookingAmount        float64    `json:"booking_amount"`
	BookingPaymentStatus string     `json:"booking_payment_status"`
	BookingPaidAt        *time.Time `json:"booking_paid_at,omitempty"`
}

// ============================
// Request DTO
// ============================

type CreateBookingRequest struct {
	ScheduleID  string `json:"schedule_id" validate:"required,uuid4"`
	SeatNumber  string `json:"seat_number" validate:"required,min=1,max=10"`
	TicketClass string `json:"ticket_class" validate:"required,min=1,max=50"`
}

// ============================
// Converter
// ============================

func ToBookingDTO(m model.BookingModel) BookingDTO {
	return BookingDTO{
		BookingID:            m.BookingID.String(),
		BookingUserID:        m.BookingUserID.String(),
		BookingScheduleID:    m.BookingScheduleID.String(),
		BookingSeatNumber:    m.BookingSeatNumber,
		BookingTicketClass:   m.BookingTicketClass,
		BookingStatus:        m.BookingStatus,
		BookingDate:          m.BookingDate,
		BookingOrderID:       m.BookingOrderID,
		BookingAmount:        m.BookingAmount,
		BookingPaymentStatus: m.BookingPaymentStatus,
		BookingPaidAt:        m.BookingPaidAt,
	}
}
