package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"villamar/config"
	"villamar/database"
	"villamar/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no booking matches the requested id. Callers
// use it to tell a missing record apart from a store outage.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines data access for booking records.
type BookingRepository interface {
	// Create inserts a new booking. The repository assigns the id and
	// timestamps; whatever the caller set there is overwritten.
	Create(ctx context.Context, booking models.Booking) (*models.Booking, error)
	// ListAll returns every booking, newest createdAt first.
	ListAll(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoBookingRepo{coll: db.Collection("bookings")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
