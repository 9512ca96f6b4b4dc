package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	app, deps := newTestApplication(t, config{})
	mux := app.mount()

	t.Run("should create an order in paise", func(t *testing.T) {
		rr := executeRequest(postJSON("/create-order", `{"amount": 1500}`), mux)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var order map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &order))
		assert.Equal(t, "order_test123", order["id"])
		assert.Equal(t, float64(150000), order["amount"])
		assert.Equal(t, "INR", order["currency"])

		require.NotEmpty(t, deps.gateway.calls)
		call := deps.gateway.calls[len(deps.gateway.calls)-1]
		assert.Equal(t, int64(150000), call.Amount)
		assert.Equal(t, "INR", call.Currency)
		assert.True(t, call.AutoCapture)
		assert.True(t, strings.HasPrefix(call.Receipt, "receipt_"))
	})

	t.Run("should accept numeric strings and decimals", func(t *testing.T) {
		rr := executeRequest(postJSON("/create-order", `{"amount": "250.50"}`), mux)
		require.Equal(t, http.StatusOK, rr.Code)

		call := deps.gateway.calls[len(deps.gateway.calls)-1]
		assert.Equal(t, int64(25050), call.Amount)
	})

	t.Run("should issue a fresh receipt per order", func(t *testing.T) {
		executeRequest(postJSON("/create-order", `{"amount": 1}`), mux)
		executeRequest(postJSON("/create-order", `{"amount": 1}`), mux)

		n := len(deps.gateway.calls)
		assert.NotEqual(t, deps.gateway.calls[n-1].Receipt, deps.gateway.calls[n-2].Receipt)
	})
}

func TestCreateOrderInvalidAmount(t *testing.T) {
	app, deps := newTestApplication(t, config{})
	mux := app.mount()

	bodies := []string{
		`{"amount": 0}`,
		`{"amount": -100}`,
		`{"amount": "abc"}`,
		`{"amount": "NaN"}`,
		`{"amount": null}`,
		`{"amount": 10.555}`,
		`{}`,
		`not json`,
		``,
	}

	for _, body := range bodies {
		rr := executeRequest(postJSON("/create-order", body), mux)
		require.Equal(t, http.StatusBadRequest, rr.Code, body)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), body)
		assert.Equal(t, "Invalid amount", resp["error"], body)
		assert.Contains(t, resp, "received", body)
	}

	assert.Empty(t, deps.gateway.calls, "gateway must not be called for invalid amounts")
}

func TestCreateOrderEchoesReceivedPayload(t *testing.T) {
	app, _ := newTestApplication(t, config{})
	mux := app.mount()

	rr := executeRequest(postJSON("/create-order", `{"amount": -5, "note": "x"}`), mux)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp struct {
		Error    string         `json:"error"`
		Received map[string]any `json:"received"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, float64(-5), resp.Received["amount"])
	assert.Equal(t, "x", resp.Received["note"])
}

func TestCreateOrderProviderFailure(t *testing.T) {
	app, deps := newTestApplication(t, config{})
	deps.gateway.err = errors.New("razorpay: bad gateway")
	mux := app.mount()

	rr := executeRequest(postJSON("/create-order", `{"amount": 1500}`), mux)
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, map[string]any{"error": "Server error"}, resp)
	assert.NotContains(t, rr.Body.String(), "razorpay")
}
