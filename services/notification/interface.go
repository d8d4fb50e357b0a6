package notification

import (
	"context"

	"villamar/models"
)

// BookingEmail carries a persisted booking plus presentation-ready values for
// the email templates.
type BookingEmail struct {
	Booking    models.Booking
	CheckIn    string // formatted for display
	CheckOut   string
	Nights     int
	TotalPrice string // formatted currency
	Deposit    string
	Balance    string
}

// Notifier dispatches booking notifications. Each send is all-or-nothing;
// there is no atomicity between the host and guest messages.
type Notifier interface {
	// SendToHost notifies the fixed property-owner address.
	SendToHost(ctx context.Context, email BookingEmail) error
	// SendToGuest notifies the address the guest submitted.
	SendToGuest(ctx context.Context, email BookingEmail) error
}
