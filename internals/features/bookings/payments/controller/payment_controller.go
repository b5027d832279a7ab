package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingModel "raillink_backend/internals/features/bookings/bookings/model"
	"raillink_backend/internals/features/bookings/payments/service"
	userModel "raillink_backend/internals/features/users/user/model"
	helper "raillink_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// =======================
// 💳 Pay Booking (passenger)
// Issues a Midtrans Snap token for an unpaid booking owned by the
// caller. The token is cached on the booking row so retries reuse it.
// =======================
func (ctrl *PaymentController) PayBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	userID := helper.GetUserIDFromLocals(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var booking bookingModel.BookingModel
	if err := ctrl.DB.First(&booking, "booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Booking not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve booking")
	}
	if booking.BookingUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Not your booking")
	}
	if booking.BookingStatus == bookingModel.StatusCancelled {
		return helper.JsonError(c, fiber.StatusBadRequest, "Booking is cancelled")
	}
	if booking.BookingPaymentStatus == bookingModel.PaymentPaid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Booking already paid")
	}

	if booking.BookingPaymentToken != "" {
		return helper.JsonOK(c, "Payment already initiated", fiber.Map{
			"order_id":   booking.BookingOrderID,
			"snap_token": booking.BookingPaymentToken,
		})
	}

	var user userModel.UserModel
	if err := ctrl.DB.
		Select("user_id", "user_name", "user_email").
		First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}

	token, redirectURL, err := service.GenerateSnapToken(booking, service.CustomerInput{
		FirstName: user.UserName,
		Email:     user.UserEmail,
	})
	if err != nil {
		log.Println("[ERROR] Failed to create Midtrans transaction:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to initiate payment")
	}

	booking.BookingPaymentToken = token
	if err := ctrl.DB.Save(&booking).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save payment token")
	}

	return helper.JsonOK(c, "Payment initiated", fiber.Map{
		"order_id":     booking.BookingOrderID,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

// =======================
// 🔔 Midtrans Notification (public, no auth)
// =======================
func (ctrl *PaymentController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		log.Println("[ERROR] Failed to parse webhook payload:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid webhook payload")
	}

	if err := service.HandleBookingStatusWebhook(ctrl.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Notification processed", nil)
}
