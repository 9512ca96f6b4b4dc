package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var ErrMissingField = errors.New("razorpay_order_id, razorpay_payment_id and razorpay_signature are required")

// ComputeSignature returns the lowercase hex HMAC-SHA256 of "orderID|paymentID"
// keyed by secret. This is what Razorpay sends back after checkout.
func ComputeSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func VerifySignature(orderID, paymentID, signature, secret string) bool {
	expected := ComputeSignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// SignatureVerifier holds the key secret so handlers never touch it directly.
type SignatureVerifier struct {
	secret string
}

func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: secret}
}

// Verify reports whether signature authenticates the order/payment pair.
// Empty inputs are rejected with ErrMissingField instead of being hashed.
func (v *SignatureVerifier) Verify(orderID, paymentID, signature string) (bool, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return false, ErrMissingField
	}
	return VerifySignature(orderID, paymentID, signature, v.secret), nil
}
