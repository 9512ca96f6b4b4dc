package payments

import (
	"context"
	"fmt"
	"math"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

// orderCreator is the part of the SDK's order resource the adapter calls.
type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type RazorpayAdapter struct {
	orders  orderCreator
	timeout time.Duration
}

func NewRazorpayAdapter(keyID, secret string, timeout time.Duration) *RazorpayAdapter {
	client := razorpay.NewClient(keyID, secret)

	var effective time.Duration
	if secs := clientTimeout(timeout); secs > 0 {
		client.SetTimeout(secs)
		effective = time.Duration(secs) * time.Second
	}
	return &RazorpayAdapter{
		orders:  client.Order,
		timeout: effective,
	}
}

// Timeout is the per-request timeout handed to the SDK, zero when the SDK
// default is in use.
func (r *RazorpayAdapter) Timeout() time.Duration {
	return r.timeout
}

// clientTimeout converts d to the SDK's whole-second int16, rounding
// sub-second values up and capping at math.MaxInt16.
func clientTimeout(d time.Duration) int16 {
	switch {
	case d <= 0:
		return 0
	case d >= math.MaxInt16*time.Second:
		return math.MaxInt16
	}
	return int16((d + time.Second - 1) / time.Second)
}

func (r *RazorpayAdapter) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}

	capture := 0
	if req.AutoCapture {
		capture = 1
	}

	data := map[string]interface{}{
		"amount":          req.Amount, // paise
		"currency":        req.Currency,
		"receipt":         req.Receipt,
		"payment_capture": capture,
	}

	// the SDK has no context support, so race the call against ctx.
	type result struct {
		body map[string]interface{}
		err  error
	}
	done := make(chan result, 1)
	go func() {
		body, err := r.orders.Create(data, nil)
		done <- result{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("razorpay create order: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("razorpay create order: %w", res.err)
		}
		return Order(res.body), nil
	}
}
