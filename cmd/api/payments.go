package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"vanutsav/internal/notifications"
	"vanutsav/internal/payments"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

type VerifyPaymentPayload struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
	// decoded only after the signature is verified
	Booking json.RawMessage `json:"booking" swaggertype:"object"`
}

// VerifyPayment godoc
//
//	@Summary		Verify a Razorpay payment
//	@Description	Checks the checkout signature. When authentic, the booking is confirmed by email and SMS (best effort) and status is "success". An unusable booking only skips the affected notifications.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		VerifyPaymentPayload	true	"Checkout result and booking"
//	@Success		200		{object}	map[string]string		"status success or failed"
//	@Failure		400		{object}	map[string]string		"Malformed request"
//	@Failure		500		{object}	map[string]string		"status failed"
//	@Router			/verify-payment [post]
func (app *application) verifyPaymentHandler(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			app.verificationServerError(w, r, fmt.Errorf("panic: %v", rec))
		}
	}()

	var payload VerifyPaymentPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.malformedVerificationResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.malformedVerificationResponse(w, r, err)
		return
	}

	ok, err := app.verifier.Verify(payload.OrderID, payload.PaymentID, payload.Signature)
	if err != nil {
		if errors.Is(err, payments.ErrMissingField) {
			app.malformedVerificationResponse(w, r, err)
			return
		}
		app.verificationServerError(w, r, err)
		return
	}

	if !ok {
		paymentsRejected.Add(1)
		app.logger.Warnw("payment signature mismatch", "order_id", payload.OrderID, "payment_id", payload.PaymentID)
		if err := writeStatus(w, http.StatusOK, "failed"); err != nil {
			app.logger.Errorw("write response", "error", err.Error())
		}
		return
	}

	paymentsVerified.Add(1)
	app.logger.Infow("payment verified", "order_id", payload.OrderID, "payment_id", payload.PaymentID)

	// The payment is settled at this point, so notifications are best effort:
	// failures are logged, never reported back as a failed verification.
	booking, err := decodeBooking(payload.Booking)
	if err != nil {
		bookingsInvalid.Add(1)
		app.logger.Warnw("booking details unusable", "order_id", payload.OrderID, "notify", booking != nil, "error", err.Error())
	}

	if booking != nil {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), app.config.notifyTimeout)
		defer cancel()

		if err := app.notifier.BookingConfirmed(ctx, *booking); err != nil {
			notificationsFailed.Add(int64(len(multierr.Errors(err))))
			app.logger.Warnw("booking notifications incomplete", "order_id", payload.OrderID, "error", err.Error())
		}
	}

	if err := writeStatus(w, http.StatusOK, "success"); err != nil {
		app.logger.Errorw("write response", "error", err.Error())
	}
}

// decodeBooking returns the booking to notify about, or nil when there is
// nothing usable. An invalid email or mobile only drops that channel and is
// reported alongside the remaining booking; any other problem drops both.
func decodeBooking(raw json.RawMessage) (*notifications.Booking, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var b notifications.Booking
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode booking: %w", err)
	}
	b.Normalize()

	err := Validate.Struct(b)
	if err == nil {
		return &b, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	for _, fe := range verrs {
		switch fe.StructField() {
		case "Email":
			b.Email = ""
		case "Mobile":
			b.Mobile = ""
		default:
			return nil, err
		}
	}
	return &b, err
}
