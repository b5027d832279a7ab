package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingModel "raillink_backend/internals/features/bookings/bookings/model"
	paymentService "raillink_backend/internals/features/bookings/payments/service"
	"raillink_backend/internals/features/bookings/refunds/dto"
	"raillink_backend/internals/features/bookings/refunds/model"
	helper "raillink_backend/internals/helpers"
	"raillink_backend/internals/observability"
)

var validateRefund = validator.New()

type RefundController struct {
	DB *gorm.DB
}

func NewRefundController(db *gorm.DB) *RefundController {
	return &RefundController{DB: db}
}

// =======================
// ➕ Request Refund (passenger)
// Only paid bookings owned by the caller can be refunded, and only one
// open refund per booking.
// =======================
func (ctrl *RefundController) RequestRefund(c *fiber.Ctx) error {
	var body dto.RequestRefundRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateRefund.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	userID := helper.GetUserIDFromLocals(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}
	bookingID, _ := uuid.Parse(body.BookingID)

	var refund model.RefundModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var booking bookingModel.BookingModel
		if err := tx.First(&booking, "booking_id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Booking not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve booking")
		}
		if booking.BookingUserID != userID {
			return fiber.NewError(fiber.StatusForbidden, "Not your booking")
		}
		if booking.BookingPaymentStatus != bookingModel.PaymentPaid {
			return fiber.NewError(fiber.StatusBadRequest, "Only paid bookings can be refunded")
		}

		var open int64
		if err := tx.Model(&model.RefundModel{}).
			Where("refund_booking_id = ? AND refund_status IN ?",
				bookingID, []string{model.StatusRequested, model.StatusApproved}).
			Count(&open).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check refunds")
		}
		if open > 0 {
			return fiber.NewError(fiber.StatusConflict, "A refund is already in progress for this booking")
		}

		refund = model.RefundModel{
			RefundBookingID: bookingID,
			RefundUserID:    userID,
			RefundAmount:    booking.BookingAmount,
			RefundReason:    body.Reason,
			RefundStatus:    model.StatusRequested,
		}
		if err := tx.Create(&refund).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create refund request")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Refund requested", dto.ToRefundDTO(refund))
}

// =======================
// 📄 My Refunds (passenger)
// =======================
func (ctrl *RefundController) GetMyRefunds(c *fiber.Ctx) error {
	userID := helper.GetUserIDFromLocals(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var refunds []model.RefundModel
	if err := ctrl.DB.
		Where("refund_user_id = ?", userID).
		Order("refund_created_at DESC").
		Find(&refunds).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve refunds")
	}

	resp := make([]dto.RefundDTO, 0, len(refunds))
	for _, r := range refunds {
		resp = append(resp, dto.ToRefundDTO(r))
	}
	return helper.JsonOK(c, "", resp)
}

// =======================
// 📄 All Refunds (admin, paginated)
// Query: ?status=
// =======================
func (ctrl *RefundController) GetAllRefunds(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.RefundModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("refund_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count refunds")
	}

	var refunds []model.RefundModel
	if err := q.
		Order("refund_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&refunds).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve refunds")
	}

	resp := make([]dto.RefundDTO, 0, len(refunds))
	for _, r := range refunds {
		resp = append(resp, dto.ToRefundDTO(r))
	}
	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =======================
// ✅ Approve Refund (admin)
// =======================
func (ctrl *RefundController) ApproveRefund(c *fiber.Ctx) error {
	return ctrl.transition(c, model.StatusRequested, model.StatusApproved, "Refund approved", "approved")
}

// =======================
// ❌ Reject Refund (admin)
// =======================
func (ctrl *RefundController) RejectRefund(c *fiber.Ctx) error {
	return ctrl.transition(c, model.StatusRequested, model.StatusRejected, "Refund rejected", "rejected")
}

// =======================
// 💸 Issue Refund (admin)
// Pushes the refund to the payment gateway, then marks the booking
// payment cancelled.
// =======================
func (ctrl *RefundController) IssueRefund(c *fiber.Ctx) error {
	id := c.Params("id")
	adminID := helper.GetUserIDFromLocals(c)
	if adminID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var refund model.RefundModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&refund, "refund_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Refund not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve refund")
		}
		if refund.RefundStatus != model.StatusApproved {
			return fiber.NewError(fiber.StatusBadRequest, "Only approved refunds can be issued")
		}

		var booking bookingModel.BookingModel
		if err := tx.First(&booking, "booking_id = ?", refund.RefundBookingID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve booking")
		}

		if err := paymentService.RefundPayment(booking.BookingOrderID, refund.RefundAmount, refund.RefundReason); err != nil {
			log.Println("[ERROR] Gateway refund failed:", err)
			return fiber.NewError(fiber.StatusBadGateway, "Payment gateway refused the refund")
		}

		now := time.Now()
		refund.RefundStatus = model.StatusIssued
		refund.RefundProcessedBy = &adminID
		refund.RefundProcessedAt = &now
		if err := tx.Save(&refund).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to save refund")
		}

		booking.BookingPaymentStatus = bookingModel.PaymentCancelled
		booking.BookingStatus = bookingModel.StatusCancelled
		if err := tx.Save(&booking).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to save booking")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	observability.RefundsProcessed.WithLabelValues("issued").Inc()
	return helper.JsonUpdated(c, "Refund issued", dto.ToRefundDTO(refund))
}

func (ctrl *RefundController) transition(c *fiber.Ctx, from, to, msg, outcome string) error {
	id := c.Params("id")
	adminID := helper.GetUserIDFromLocals(c)
	if adminID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var refund model.RefundModel
	if err := ctrl.DB.First(&refund, "refund_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Refund not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve refund")
	}
	if refund.RefundStatus != from {
		return helper.JsonError(c, fiber.StatusBadRequest, "Refund is not in "+from+" state")
	}

	now := time.Now()
	refund.RefundStatus = to
	refund.RefundProcessedBy = &adminID
	refund.RefundProcessedAt = &now
	if err := ctrl.DB.Save(&refund).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save refund")
	}

	observability.RefundsProcessed.WithLabelValues(outcome).Inc()
	return helper.JsonUpdated(c, msg, dto.ToRefundDTO(refund))
}
