package payments

import "context"

// OrderGateway defines the order-creation call of a payment provider
type OrderGateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (Order, error)
}
