package utils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatILS renders a shekel amount for emails and documents, e.g. 4500 -> "₪4,500".
// Whole-shekel amounts drop the fraction; anything else keeps two digits.
func FormatILS(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	// Round to cents first so a fraction can never carry past .99.
	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	frac := cents % 100

	s := fmt.Sprintf("%d", whole)
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	out := "₪" + b.String()
	if frac > 0 {
		out += fmt.Sprintf(".%02d", frac)
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatDate renders a YYYY-MM-DD date for display, e.g. "2025-07-10" -> "10/07/2025".
// Unparseable input is returned as-is.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}
