package model

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses
const (
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
)

// Payment statuses
const (
	PaymentPending   = "PENDING"
	PaymentPaid      = "PAID"
	PaymentExpired   = "EXPIRED"
	PaymentCancelled = "CANCELLED"
)

type BookingModel struct {
	BookingID         uuid.UUID `gorm:"column:booking_id;type:uuid;default:gen_random_uuid();primaryKey" json:"booking_id"`
	BookingUserID     uuid.UUID `gorm:"column:booking_user_id;type:uuid;not null" json:"booking_user_id"`
	BookingScheduleID uuid.UUID `gorm:"column:booking_schedule_id;type:uuid;not null" json:"booking_schedule_id"`

	BookingSeatNumber  string `gorm:"column:booking_seat_number;type:varchar(10);not null" json:"booking_seat_number"`
	BookingTicketClass string `gorm:"column:booking_ticket_class;type:varchar(50);not null" json:"booking_ticket_class"`
	BookingStatus      string `gorm:"column:booking_status;type:varchar(20);not null;default:'CONFIRMED'" json:"booking_status"`

	BookingDate time.Time `gorm:"column:booking_date;autoCreateTime" json:"booking_date"`

	// payment leg
	BookingOrderID       string     `gorm:"column:booking_order_id;type:varchar(100);not null;unique" json:"booking_order_id"`
	BookingAmount        float64    `gorm:"column:booking_amount;type:numeric(12,2);not null;default:0" json:"booking_amount"`
	BookingPaymentStatus string     `gorm:"column:booking_payment_status;type:varchar(20);not null;default:'PENDING'" json:"booking_payment_status"`
	BookingPaymentToken  string     `gorm:"column:booking_payment_token;type:text" json:"booking_payment_token"`
	BookingPaidAt        *time.Time `gorm:"column:booking_paid_at" json:"booking_paid_at,omitempty"`

	BookingUpdatedAt time.Time `gorm:"column:booking_updated_at;autoUpdateTime" json:"booking_updated_at"`
}

func (BookingModel) TableName() string {
	return "bookings"
}
