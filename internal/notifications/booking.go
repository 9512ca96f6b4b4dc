package notifications

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Booking is the storefront's booking summary sent along with a payment
// confirmation. It is only used to render notifications.
type Booking struct {
	PackageName string      `json:"packageName" validate:"required,max=200"`
	Adults      int         `json:"adults" validate:"gte=0"`
	Kids        int         `json:"kids" validate:"gte=0"`
	Guests      int         `json:"guests" validate:"gte=0"`
	Amount      json.Number `json:"amount" validate:"required"`
	Email       string      `json:"email,omitempty" validate:"omitempty,email"`
	Mobile      string      `json:"mobile,omitempty" validate:"omitempty,indianmobile"`
}

// TotalGuests falls back to adults+kids when the client did not send a count.
func (b Booking) TotalGuests() int {
	if b.Guests > 0 {
		return b.Guests
	}
	return b.Adults + b.Kids
}

// Normalize trims contact fields and strips the +91/0 prefixes people type in.
func (b *Booking) Normalize() {
	b.Email = strings.TrimSpace(b.Email)

	mobile := strings.Join(strings.Fields(b.Mobile), "")
	mobile = strings.ReplaceAll(mobile, "-", "")
	switch {
	case strings.HasPrefix(mobile, "+91"):
		mobile = mobile[3:]
	case len(mobile) == 12 && strings.HasPrefix(mobile, "91"):
		mobile = mobile[2:]
	case len(mobile) == 11 && strings.HasPrefix(mobile, "0"):
		mobile = mobile[1:]
	}
	b.Mobile = mobile
}

// EmailView is what the confirmation template renders.
type EmailView struct {
	PackageName string
	Adults      int
	Kids        int
	Guests      int
	Amount      string
}

func (b Booking) View() EmailView {
	return EmailView{
		PackageName: b.PackageName,
		Adults:      b.Adults,
		Kids:        b.Kids,
		Guests:      b.TotalGuests(),
		Amount:      b.Amount.String(),
	}
}

func ConfirmationSMS(b Booking) string {
	return fmt.Sprintf("Booking Confirmed! Package: %s, Guests: %d, Amount: ₹%s. - Vanutsav",
		b.PackageName, b.TotalGuests(), b.Amount.String())
}
