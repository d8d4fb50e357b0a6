package booking

import (
	"math"
	"time"
)

// Nights returns the whole-day difference between check-in and check-out.
// Returns 0 when either date is absent/unparseable or check-out is not
// strictly after check-in.
func Nights(checkIn, checkOut string) int {
	start, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0
	}
	if !end.After(start) {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// TotalPrice is the stay price for the given number of nights.
func TotalPrice(nights int, nightlyRate float64) float64 {
	return float64(nights) * nightlyRate
}

// Balance is what remains to pay after the deposit.
func Balance(totalPrice, deposit float64) float64 {
	return totalPrice - deposit
}
