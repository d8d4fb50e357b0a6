package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"villamar/models"
	"villamar/services/booking"
	"villamar/services/notification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListAll(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendToHost(ctx context.Context, email notification.BookingEmail) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockNotifier) SendToGuest(ctx context.Context, email notification.BookingEmail) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func persisted(candidate models.Booking, id string) *models.Booking {
	saved := candidate
	saved.ID = id
	saved.CreatedAt = time.Now()
	saved.UpdatedAt = saved.CreatedAt
	return &saved
}

func TestCreateBooking(t *testing.T) {
	input := validInput()

	t.Run("happy path persists and notifies both parties", func(t *testing.T) {
		mockRepo := new(MockBookingRepository)
		mockNotifier := new(MockNotifier)
		svc := &booking.DefaultBookingService{Repo: mockRepo, Notifier: mockNotifier, NightlyRate: 1500}
		ctx := context.Background()

		mockRepo.On("Create", ctx, mock.AnythingOfType("models.Booking")).
			Return(persisted(models.Booking{}, "abc123"), nil).
			Run(func(args mock.Arguments) {
				candidate := args.Get(1).(models.Booking)
				assert.Empty(t, candidate.ID, "id must be assigned by the store, not the workflow")
				assert.Equal(t, 2, candidate.Nights)
				assert.Equal(t, 3000.0, candidate.TotalPrice)
				assert.Equal(t, 3000.0, candidate.Balance)
				assert.Equal(t, models.StatusPending, candidate.Status)
			})
		mockNotifier.On("SendToHost", mock.Anything, mock.AnythingOfType("notification.BookingEmail")).Return(nil)
		mockNotifier.On("SendToGuest", mock.Anything, mock.AnythingOfType("notification.BookingEmail")).Return(nil)

		created, err := svc.Create(ctx, input)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "abc123", created.ID)
		mockRepo.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("validation failure never reaches the store", func(t *testing.T) {
		mockRepo := new(MockBookingRepository)
		mockNotifier := new(MockNotifier)
		svc := &booking.DefaultBookingService{Repo: mockRepo, Notifier: mockNotifier, NightlyRate: 1500}

		bad := input
		bad.IDNumber = "12345"

		created, err := svc.Create(context.Background(), bad)

		require.Error(t, err)
		assert.Nil(t, created)
		var vErr *booking.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Len(t, vErr.Fields, 1)
		assert.Contains(t, vErr.Fields, "idNumber")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockNotifier.AssertNotCalled(t, "SendToHost", mock.Anything, mock.Anything)
		mockNotifier.AssertNotCalled(t, "SendToGuest", mock.Anything, mock.Anything)
	})

	t.Run("store failure aborts before any notification", func(t *testing.T) {
		mockRepo := new(MockBookingRepository)
		mockNotifier := new(MockNotifier)
		svc := &booking.DefaultBookingService{Repo: mockRepo, Notifier: mockNotifier, NightlyRate: 1500}
		ctx := context.Background()

		mockRepo.On("Create", ctx, mock.AnythingOfType("models.Booking")).
			Return(nil, errors.New("connection refused"))

		created, err := svc.Create(ctx, input)

		require.Error(t, err)
		assert.Nil(t, created)
		var sErr *booking.StoreError
		require.ErrorAs(t, err, &sErr)
		mockNotifier.AssertNotCalled(t, "SendToHost", mock.Anything, mock.Anything)
		mockNotifier.AssertNotCalled(t, "SendToGuest", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("notification failure keeps the persisted record", func(t *testing.T) {
		mockRepo := new(MockBookingRepository)
		mockNotifier := new(MockNotifier)
		svc := &booking.DefaultBookingService{Repo: mockRepo, Notifier: mockNotifier, NightlyRate: 1500}
		ctx := context.Background()

		mockRepo.On("Create", ctx, mock.AnythingOfType("models.Booking")).
			Return(persisted(models.Booking{Status: models.StatusPending}, "abc124"), nil)
		mockNotifier.On("SendToHost", mock.Anything, mock.AnythingOfType("notification.BookingEmail")).Return(nil)
		mockNotifier.On("SendToGuest", mock.Anything, mock.AnythingOfType("notification.BookingEmail")).
			Return(errors.New("template quota exceeded"))

		created, err := svc.Create(ctx, input)

		require.Error(t, err)
		assert.Nil(t, created)
		var nErr *booking.NotifyError
		require.ErrorAs(t, err, &nErr)
		// The record stays in the store: no delete exists on the repository
		// and no status change is issued.
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("notification email carries formatted values", func(t *testing.T) {
		mockRepo := new(MockBookingRepository)
		mockNotifier := new(MockNotifier)
		svc := &booking.DefaultBookingService{Repo: mockRepo, Notifier: mockNotifier, NightlyRate: 1500}
		ctx := context.Background()

		mockRepo.On("Create", ctx, mock.AnythingOfType("models.Booking")).
			Return(persisted(models.Booking{
				FullName:   input.FullName,
				CheckIn:    input.CheckIn,
				CheckOut:   input.CheckOut,
				Nights:     2,
				TotalPrice: 3000,
				Balance:    3000,
				Status:     models.StatusPending,
			}, uuid.New().String()), nil)

		var hostEmail notification.BookingEmail
		mockNotifier.On("SendToHost", mock.Anything, mock.AnythingOfType("notification.BookingEmail")).
			Run(func(args mock.Arguments) {
				hostEmail = args.Get(1).(notification.BookingEmail)
			}).Return(nil)
		mockNotifier.On("SendToGuest", mock.Anything, mock.AnythingOfType("notification.BookingEmail")).Return(nil)

		_, err := svc.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, 2, hostEmail.Nights)
		assert.Equal(t, "₪3,000", hostEmail.TotalPrice)
		assert.Equal(t, "10/07/2025", hostEmail.CheckIn)
		assert.Equal(t, "12/07/2025", hostEmail.CheckOut)
	})
}

func TestListWrapsStoreErrors(t *testing.T) {
	mockRepo := new(MockBookingRepository)
	svc := &booking.DefaultBookingService{Repo: mockRepo, NightlyRate: 1500}
	ctx := context.Background()

	mockRepo.On("ListAll", ctx).Return(nil, errors.New("timeout"))

	bookings, err := svc.List(ctx)

	assert.Nil(t, bookings)
	var sErr *booking.StoreError
	require.ErrorAs(t, err, &sErr)
}
