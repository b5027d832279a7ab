package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"

	bookingModel "raillink_backend/internals/features/bookings/bookings/model"
)

/* =========================================================
   Midtrans Clients
========================================================= */

var (
	SnapClient snap.Client
	CoreClient coreapi.Client
)

// InitMidtrans must be called during app bootstrap.
// useProduction=true for Production, false for Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	env := midtrans.Sandbox
	if useProduction {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
	CoreClient.New(serverKey, env)
}

// RefundPayment pushes a refund for a settled order to the gateway.
func RefundPayment(orderID string, amount float64, reason string) error {
	_, err := CoreClient.RefundTransaction(orderID, &coreapi.RefundReq{
		Amount: int64(amount),
		Reason: reason,
	})
	if err != nil {
		return err
	}
	return nil
}

/* =========================================================
   Customer detail input
========================================================= */

type CustomerInput struct {
	FirstName string
	Email     string
	Phone     string
}

/* =========================================================
   Generate Snap Token
========================================================= */

func GenerateSnapToken(b bookingModel.BookingModel, cust CustomerInput) (string, string, error) {
	if b.BookingAmount <= 0 {
		return "", "", errors.New("invalid booking_amount")
	}
	if b.BookingOrderID == "" {
		return "", "", errors.New("booking_order_id is required (used as OrderID)")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  b.BookingOrderID,
			GrossAmt: int64(b.BookingAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FirstName,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       b.BookingID.String(),
				Price:    int64(b.BookingAmount),
				Qty:      1,
				Name:     "Train ticket " + b.BookingTicketClass + " seat " + b.BookingSeatNumber,
				Category: "TICKET",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
