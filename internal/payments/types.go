package payments

// Currency is the only currency orders are created in.
const Currency = "INR"

// OrderRequest is what the gateway needs to open an order.
// Amount is in minor units (paise).
type OrderRequest struct {
	Amount      int64
	Currency    string
	Receipt     string
	AutoCapture bool
}

// Order is the provider's order object. It is handed back to the client
// untouched so the checkout widget can use it directly.
type Order map[string]any

// ID returns the provider-assigned order id, or "" if absent.
func (o Order) ID() string {
	id, _ := o["id"].(string)
	return id
}
