package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"raillink_backend/internals/features/bookings/bookings/dto"
	"raillink_backend/internals/features/bookings/bookings/model"
	scheduleModel "raillink_backend/internals/features/railway/schedules/model"
	trainModel "raillink_backend/internals/features/railway/trains/model"
	helper "raillink_backend/internals/helpers"
	"raillink_backend/internals/observability"
)

var validateBooking = validator.New()

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// =======================
// ➕ Create Booking (passenger)
// Seat/class are checked against the schedule's train; the booked seat
// must be free on that schedule. All checks and the insert share one
// transaction.
// =======================
func (ctrl *BookingController) CreateBooking(c *fiber.Ctx) error {
	var body dto.CreateBookingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBooking.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	userID := helper.GetUserIDFromLocals(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}
	scheduleID, _ := uuid.Parse(body.ScheduleID)

	var booking model.BookingModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var schedule scheduleModel.ScheduleModel
		if err := tx.First(&schedule, "schedule_id = ?", scheduleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Schedule not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve schedule")
		}
		if schedule.ScheduleStatus == scheduleModel.StatusCancelled {
			return fiber.NewError(fiber.StatusBadRequest, "Schedule is cancelled")
		}

		var train trainModel.TrainModel
		if err := tx.First(&train, "train_id = ?", schedule.ScheduleTrainID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve train")
		}
		if _, ok := train.ClassCapacity(body.TicketClass); !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Train does not offer class "+body.TicketClass)
		}

		price, ok := schedule.ClassPrice(body.TicketClass)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "No price declared for class "+body.TicketClass)
		}

		// seat must be free on this schedule
		var taken int64
		if err := tx.Model(&model.BookingModel{}).
			Where("booking_schedule_id = ? AND booking_seat_number = ? AND booking_status = ?",
				scheduleID, body.SeatNumber, model.StatusConfirmed).
			Count(&taken).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check seat")
		}
		if taken > 0 {
			return fiber.NewError(fiber.StatusConflict, "Seat already booked")
		}

		booking = model.BookingModel{
			BookingUserID:        userID,
			BookingScheduleID:    scheduleID,
			BookingSeatNumber:    body.SeatNumber,
			BookingTicketClass:   body.TicketClass,
			BookingStatus:        model.StatusConfirmed,
			BookingOrderID:       fmt.Sprintf("RL-%d-%s", time.Now().Unix(), uuid.NewString()[:8]),
			BookingAmount:        price,
			BookingPaymentStatus: model.PaymentPending,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create booking")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	observability.BookingsCreated.Inc()
	return helper.JsonCreated(c, "Booking created", dto.ToBookingDTO(booking))
}

// =======================
// 📄 My Bookings (passenger)
// =======================
func (ctrl *BookingController) GetMyBookings(c *fiber.Ctx) error {
	userID := helper.GetUserIDFromLocals(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var bookings []model.BookingModel
	if err := ctrl.DB.
		Where("booking_user_id = ?", userID).
		Order("booking_date DESC").
		Find(&bookings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve bookings")
	}

	resp := make([]dto.BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingDTO(b))
	}
	return helper.JsonOK(c, "", resp)
}

// =======================
// 📄 All Bookings (staff/admin, paginated)
// Query: ?schedule_id=
// =======================
func (ctrl *BookingController) GetAllBookings(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.BookingModel{})
	if scheduleID := c.Query("schedule_id"); scheduleID != "" {
		q = q.Where("booking_schedule_id = ?", scheduleID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count bookings")
	}

	var bookings []model.BookingModel
	if err := q.
		Order("booking_date DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&bookings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve bookings")
	}

	resp := make([]dto.BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingDTO(b))
	}
	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =======================
// 🚫 Cancel Booking (passenger, own booking only)
// =======================
func (ctrl *BookingController) CancelBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	userID := helper.GetUserIDFromLocals(c)
	if userID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var booking model.BookingModel
	if err := ctrl.DB.First(&booking, "booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Booking not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve booking")
	}
	if booking.BookingUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Not your booking")
	}
	if booking.BookingStatus == model.StatusCancelled {
		return helper.JsonError(c, fiber.StatusBadRequest, "Booking already cancelled")
	}

	booking.BookingStatus = model.StatusCancelled
	if err := ctrl.DB.Save(&booking).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel booking")
	}
	return helper.JsonUpdated(c, "Booking cancelled", dto.ToBookingDTO(booking))
}
