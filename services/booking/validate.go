package booking

import (
	"regexp"
	"time"
	"unicode/utf8"

	"villamar/models"
)

var (
	idNumberRe = regexp.MustCompile(`^\d{9}$`)
	phoneRe    = regexp.MustCompile(`^05\d{8}$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const dateLayout = "2006-01-02"

// Validate checks a booking submission field by field and returns a map of
// field name to error message. An empty map means the input is submittable.
// All failing fields are reported at once, and the result is the same for
// repeated calls on unchanged input.
func Validate(input models.BookingInput) map[string]string {
	errs := make(map[string]string)

	// Character count, not bytes: guest names are usually Hebrew.
	if utf8.RuneCountInString(input.FullName) < 2 {
		errs["fullName"] = "Full name must be at least 2 characters"
	}
	if !idNumberRe.MatchString(input.IDNumber) {
		errs["idNumber"] = "ID number must be exactly 9 digits"
	}
	if !phoneRe.MatchString(input.Phone) {
		errs["phone"] = "Phone must be a valid mobile number (05 followed by 8 digits)"
	}
	if !emailRe.MatchString(input.Email) {
		errs["email"] = "Email address is not valid"
	}

	checkIn, inOK := parseDate(input.CheckIn)
	checkOut, outOK := parseDate(input.CheckOut)
	if input.CheckIn == "" {
		errs["checkIn"] = "Check-in date is required"
	} else if !inOK {
		errs["checkIn"] = "Check-in date must be a valid date (YYYY-MM-DD)"
	}
	if input.CheckOut == "" {
		errs["checkOut"] = "Check-out date is required"
	} else if !outOK {
		errs["checkOut"] = "Check-out date must be a valid date (YYYY-MM-DD)"
	} else if inOK && !checkOut.After(checkIn) {
		errs["checkOut"] = "Check-out date must be after check-in date"
	}

	if input.Adults < 1 || input.Adults > 12 {
		errs["adults"] = "Adults must be between 1 and 12"
	}
	if input.Children < 0 || input.Children > 10 {
		errs["children"] = "Children must be between 0 and 10"
	}
	if input.Deposit < 0 {
		errs["deposit"] = "Deposit cannot be negative"
	}

	return errs
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}
