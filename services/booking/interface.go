package booking

import (
	"context"

	"villamar/models"
)

// BookingService exposes the booking operations to the HTTP layer.
type BookingService interface {
	// Create runs the full submission workflow: validate, persist, notify.
	// Returns *ValidationError, *StoreError or *NotifyError on failure.
	Create(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	// List returns all bookings, newest first.
	List(ctx context.Context) ([]models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
}
