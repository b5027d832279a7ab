package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	bookingModel "raillink_backend/internals/features/bookings/bookings/model"
)

// HandleBookingStatusWebhook is called on every Midtrans notification.
func HandleBookingStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Incomplete webhook payload:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var booking bookingModel.BookingModel
	if err := db.Where("booking_order_id = ?", orderID).First(&booking).Error; err != nil {
		log.Println("[ERROR] Booking not found:", err)
		return fmt.Errorf("booking with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		booking.BookingPaymentStatus = bookingModel.PaymentPaid
		booking.BookingPaidAt = &now
	case "expire":
		booking.BookingPaymentStatus = bookingModel.PaymentExpired
	case "cancel":
		booking.BookingPaymentStatus = bookingModel.PaymentCancelled
	default:
		log.Println("[INFO] Status not processed:", status)
	}

	if err := db.Save(&booking).Error; err != nil {
		log.Println("[ERROR] Failed to save booking payment status:", err)
		return err
	}

	return nil
}
