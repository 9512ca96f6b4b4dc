package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"vanutsav/internal/payments"
)

type CreateOrderPayload struct {
	// Amount in rupees, as a JSON number or numeric string
	Amount json.RawMessage `json:"amount" swaggertype:"number"`
}

// CreateOrder godoc
//
//	@Summary		Create a Razorpay order
//	@Description	Opens an auto-captured INR order for amount×100 paise and returns the provider order object as-is.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateOrderPayload	true	"Amount in rupees"
//	@Success		200		{object}	map[string]any		"Razorpay order"
//	@Failure		400		{object}	map[string]any		"Invalid amount"
//	@Failure		500		{object}	map[string]string	"Server error"
//	@Router			/create-order [post]
func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_578)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		app.invalidAmountResponse(w, r, err, nil)
		return
	}

	received := echoBody(raw)

	var payload CreateOrderPayload
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			ordersRejected.Add(1)
			app.invalidAmountResponse(w, r, err, received)
			return
		}
	}

	order, err := app.orders.CreateOrder(r.Context(), payload.Amount)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidAmount):
			ordersRejected.Add(1)
			app.invalidAmountResponse(w, r, err, received)
		default:
			ordersFailed.Add(1)
			app.internalServerError(w, r, err)
		}
		return
	}

	ordersCreated.Add(1)
	app.logger.Infow("order created", "order_id", order.ID(), "amount", order["amount"])

	if err := writeJSON(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// echoBody returns the request body in a form that can be embedded back into
// a JSON response.
func echoBody(raw []byte) any {
	if len(raw) == 0 {
		return map[string]any{}
	}
	if json.Valid(raw) {
		return json.RawMessage(raw)
	}
	return string(raw)
}
