package booking_test

import (
	"testing"

	"villamar/models"
	"villamar/services/booking"

	"github.com/stretchr/testify/assert"
)

func validInput() models.BookingInput {
	return models.BookingInput{
		FullName: "Dana Cohen",
		IDNumber: "123456789",
		Phone:    "0501234567",
		Email:    "d@x.com",
		CheckIn:  "2025-07-10",
		CheckOut: "2025-07-12",
		Adults:   2,
		Children: 0,
	}
}

func TestValidateAcceptsValidInput(t *testing.T) {
	errs := booking.Validate(validInput())
	assert.Empty(t, errs)
}

func TestValidateCountsNameCharactersNotBytes(t *testing.T) {
	input := validInput()
	input.FullName = "דנה כהן"

	assert.Empty(t, booking.Validate(input))
}

func TestValidateReportsAllMissingFields(t *testing.T) {
	errs := booking.Validate(models.BookingInput{})

	for _, field := range []string{"fullName", "idNumber", "phone", "email", "checkIn", "checkOut", "adults"} {
		assert.Contains(t, errs, field, "expected error for %s", field)
	}
}

func TestValidateFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BookingInput)
		field  string
	}{
		{"short full name", func(i *models.BookingInput) { i.FullName = "D" }, "fullName"},
		{"single hebrew letter name", func(i *models.BookingInput) { i.FullName = "א" }, "fullName"},
		{"id number too short", func(i *models.BookingInput) { i.IDNumber = "12345" }, "idNumber"},
		{"id number with letters", func(i *models.BookingInput) { i.IDNumber = "12345678a" }, "idNumber"},
		{"phone wrong prefix", func(i *models.BookingInput) { i.Phone = "0401234567" }, "phone"},
		{"phone too short", func(i *models.BookingInput) { i.Phone = "05012345" }, "phone"},
		{"email without domain", func(i *models.BookingInput) { i.Email = "d@x" }, "email"},
		{"email with whitespace", func(i *models.BookingInput) { i.Email = "d a@x.com" }, "email"},
		{"missing check-in", func(i *models.BookingInput) { i.CheckIn = "" }, "checkIn"},
		{"missing check-out", func(i *models.BookingInput) { i.CheckOut = "" }, "checkOut"},
		{"check-out equals check-in", func(i *models.BookingInput) { i.CheckOut = i.CheckIn }, "checkOut"},
		{"check-out before check-in", func(i *models.BookingInput) { i.CheckOut = "2025-07-09" }, "checkOut"},
		{"zero adults", func(i *models.BookingInput) { i.Adults = 0 }, "adults"},
		{"too many adults", func(i *models.BookingInput) { i.Adults = 13 }, "adults"},
		{"too many children", func(i *models.BookingInput) { i.Children = 11 }, "children"},
		{"negative deposit", func(i *models.BookingInput) { i.Deposit = -1 }, "deposit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			errs := booking.Validate(input)

			assert.Len(t, errs, 1, "only %s should fail", tt.field)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	input := validInput()
	input.IDNumber = "12345"
	input.Phone = "123"

	first := booking.Validate(input)
	second := booking.Validate(input)

	assert.Equal(t, first, second)
}
