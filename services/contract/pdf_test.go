package contract_test

import (
	"testing"
	"time"

	"villamar/models"
	"villamar/services/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBookingPDF(t *testing.T) {
	b := models.Booking{
		ID:         "abc123",
		FullName:   "Dana Cohen",
		IDNumber:   "123456789",
		Phone:      "0501234567",
		Email:      "d@x.com",
		CheckIn:    "2025-07-10",
		CheckOut:   "2025-07-12",
		Adults:     2,
		Nights:     2,
		TotalPrice: 3000,
		Balance:    3000,
		Status:     models.StatusPending,
		CreatedAt:  time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}

	data, filename, err := contract.BuildBookingPDF(b)

	require.NoError(t, err)
	assert.Equal(t, "CONTRACT_abc123.pdf", filename)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
