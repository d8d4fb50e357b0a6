package booking

import (
	"context"

	bookingRepo "villamar/database/repository/booking"
	"villamar/models"
	"villamar/services/notification"
	"villamar/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	Notifier    notification.Notifier
	NightlyRate float64
}

// Create turns a submitted form into a durable booking record and notifies
// both the host and the guest.
//
// The failure model is deliberately asymmetric: a store failure aborts before
// any record exists, while a notification failure (either recipient) leaves
// the already-persisted record in place with no rollback and no retry. A
// later resubmission by the guest can therefore produce a duplicate pending
// record; that is accepted behavior, not a bug to compensate for.
func (s *DefaultBookingService) Create(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if fields := Validate(input); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	nights := Nights(input.CheckIn, input.CheckOut)
	total := TotalPrice(nights, s.NightlyRate)
	candidate := models.Booking{
		FullName:   input.FullName,
		IDNumber:   input.IDNumber,
		Phone:      input.Phone,
		Email:      input.Email,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		Adults:     input.Adults,
		Children:   input.Children,
		Nights:     nights,
		TotalPrice: total,
		Deposit:    input.Deposit,
		Balance:    Balance(total, input.Deposit),
		Status:     models.StatusPending,
	}

	saved, err := s.Repo.Create(ctx, candidate)
	if err != nil {
		logger.Error("failed to persist booking", zap.Error(err))
		return nil, &StoreError{Err: err}
	}
	logger.Info("booking persisted",
		zap.String("id", saved.ID),
		zap.Int("nights", saved.Nights),
		zap.Float64("totalPrice", saved.TotalPrice))

	email := notification.BookingEmail{
		Booking:    *saved,
		CheckIn:    utils.FormatDate(saved.CheckIn),
		CheckOut:   utils.FormatDate(saved.CheckOut),
		Nights:     saved.Nights,
		TotalPrice: utils.FormatILS(saved.TotalPrice),
		Deposit:    utils.FormatILS(saved.Deposit),
		Balance:    utils.FormatILS(saved.Balance),
	}

	// Host and guest mails go out concurrently; both must land.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.Notifier.SendToHost(gctx, email) })
	g.Go(func() error { return s.Notifier.SendToGuest(gctx, email) })
	if err := g.Wait(); err != nil {
		logger.Error("booking notification failed, record kept",
			zap.String("id", saved.ID), zap.Error(err))
		return nil, &NotifyError{Err: err}
	}

	return saved, nil
}

// List returns all bookings, newest first.
func (s *DefaultBookingService) List(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, &StoreError{Err: err}
	}
	return bookings, nil
}

// Get returns a single booking by id.
func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, &StoreError{Err: err}
	}
	return booking, nil
}

// UpdateStatus moves a booking between pending, confirmed and cancelled.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		return &StoreError{Err: err}
	}
	return nil
}
