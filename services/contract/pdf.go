package contract

import (
	"bytes"
	"fmt"
	"time"

	"villamar/models"
	"villamar/utils"

	"github.com/phpdave11/gofpdf"
)

// House rules and cancellation terms printed on every contract.
var terms = []string{
	"Cancellation 30+ days before check-in: full refund minus a 300 ILS fee.",
	"Cancellation 14-30 days before check-in: 25% cancellation fee.",
	"Cancellation under 14 days before check-in: 50% cancellation fee.",
	"Check-in from 15:00, check-out by 11:00.",
	"Smoking inside the villa is not allowed.",
	"Quiet hours: 23:00-07:00.",
}

// BuildBookingPDF renders a booking contract as an A4 PDF and returns the
// document bytes together with a suggested filename.
func BuildBookingPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Contract", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "VILLAMAR - BOOKING CONTRACT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID   : %s", b.ID),
		fmt.Sprintf("Created      : %s", b.CreatedAt.Format("2006-01-02 15:04")),
		fmt.Sprintf("Status       : %s", b.Status),
		"",
		fmt.Sprintf("Guest        : %s", b.FullName),
		fmt.Sprintf("ID number    : %s", b.IDNumber),
		fmt.Sprintf("Phone        : %s", b.Phone),
		fmt.Sprintf("Email        : %s", b.Email),
		"",
		fmt.Sprintf("Check-in     : %s", utils.FormatDate(b.CheckIn)),
		fmt.Sprintf("Check-out    : %s", utils.FormatDate(b.CheckOut)),
		fmt.Sprintf("Nights       : %d", b.Nights),
		fmt.Sprintf("Guests       : %d adults, %d children", b.Adults, b.Children),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Payment summary")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 12)
	// Currency symbols are not part of the core fonts; amounts use "ILS".
	pdf.Cell(0, 7, fmt.Sprintf("Total price  : ILS %.0f", b.TotalPrice))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Deposit paid : ILS %.0f", b.Deposit))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Balance due  : ILS %.0f", b.Balance))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Terms and conditions")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	for i, t := range terms {
		pdf.MultiCell(0, 6, fmt.Sprintf("%d) %s", i+1, t), "", "", false)
		pdf.Ln(1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6,
		fmt.Sprintf("Generated %s. Submitting the booking form constitutes acceptance of the terms above.",
			time.Now().Format("2006-01-02")),
		"", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("CONTRACT_%s.pdf", b.ID)
	return buf.Bytes(), filename, nil
}
