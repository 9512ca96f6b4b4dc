package payments

import (
	"context"
	"encoding/json"
	"fmt"
)

// ProviderError wraps any failure talking to the payment provider.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payment provider %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

type receiptSource interface {
	Next() (string, error)
}

// OrderService validates amounts and opens auto-captured INR orders.
type OrderService struct {
	gateway  OrderGateway
	receipts receiptSource
}

func NewOrderService(gateway OrderGateway, receipts receiptSource) *OrderService {
	return &OrderService{gateway: gateway, receipts: receipts}
}

// CreateOrder takes the raw "amount" field of a create-order body. Invalid
// amounts fail with ErrInvalidAmount and never reach the gateway.
func (s *OrderService) CreateOrder(ctx context.Context, amount json.RawMessage) (Order, error) {
	paise, err := ParseAmountJSON(amount)
	if err != nil {
		return nil, err
	}

	receipt, err := s.receipts.Next()
	if err != nil {
		return nil, err
	}

	order, err := s.gateway.CreateOrder(ctx, OrderRequest{
		Amount:      paise,
		Currency:    Currency,
		Receipt:     receipt,
		AutoCapture: true,
	})
	if err != nil {
		return nil, &ProviderError{Op: "create order", Err: err}
	}
	return order, nil
}
