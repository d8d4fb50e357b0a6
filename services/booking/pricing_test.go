package booking_test

import (
	"testing"

	"villamar/services/booking"

	"github.com/stretchr/testify/assert"
)

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2025-06-01", "2025-06-04", 3},
		{"one night", "2025-07-10", "2025-07-11", 1},
		{"same day", "2025-06-01", "2025-06-01", 0},
		{"check-out before check-in", "2025-06-04", "2025-06-01", 0},
		{"missing check-in", "", "2025-06-04", 0},
		{"missing check-out", "2025-06-01", "", 0},
		{"unparseable date", "not-a-date", "2025-06-04", 0},
		{"across month boundary", "2025-06-28", "2025-07-02", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalPriceAndBalance(t *testing.T) {
	nights := booking.Nights("2025-06-01", "2025-06-04")
	assert.Equal(t, 3, nights)

	total := booking.TotalPrice(nights, 1500)
	assert.Equal(t, 4500.0, total)

	assert.Equal(t, 4500.0, booking.Balance(total, 0))
	assert.Equal(t, 3500.0, booking.Balance(total, 1000))
}
