package models

import "time"

// BookingStatus is the lifecycle state of a persisted booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// BookingInput is the guest-submitted booking form.
type BookingInput struct {
	FullName string `json:"fullName"`
	IDNumber string `json:"idNumber"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	CheckIn  string `json:"checkIn"`  // "YYYY-MM-DD"
	CheckOut string `json:"checkOut"` // "YYYY-MM-DD"
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	// Deposit is kept in the data model and the balance formula, but no input
	// control sets it anymore, so real submissions carry 0.
	Deposit float64 `json:"deposit"`
}

// Booking is a persisted booking record. Immutable after creation except for
// Status; ID and CreatedAt are assigned by the repository, never by the caller.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	FullName   string        `bson:"full_name" json:"fullName"`
	IDNumber   string        `bson:"id_number" json:"idNumber"`
	Phone      string        `bson:"phone" json:"phone"`
	Email      string        `bson:"email" json:"email"`
	CheckIn    string        `bson:"check_in" json:"checkIn"`
	CheckOut   string        `bson:"check_out" json:"checkOut"`
	Adults     int           `bson:"adults" json:"adults"`
	Children   int           `bson:"children" json:"children"`
	Nights     int           `bson:"nights" json:"nights"`
	TotalPrice float64       `bson:"total_price" json:"totalPrice"`
	Deposit    float64       `bson:"deposit" json:"deposit"`
	Balance    float64       `bson:"balance" json:"balance"`
	Status     BookingStatus `bson:"status" json:"status"`
	CreatedAt  time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updatedAt"`
}
