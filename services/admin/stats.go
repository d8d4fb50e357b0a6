package admin

import (
	"sort"
	"time"

	"villamar/models"
)

// ComputeStats derives the dashboard aggregates from an already-fetched
// booking list: status counts, money totals and revenue grouped by check-in
// month. Pure; the caller owns fetching.
func ComputeStats(bookings []models.Booking) models.DashboardStats {
	stats := models.DashboardStats{
		TotalBookings:  len(bookings),
		MonthlyRevenue: []models.MonthlyRevenue{},
	}

	monthly := make(map[string]float64)
	for _, b := range bookings {
		switch b.Status {
		case models.StatusConfirmed:
			stats.ConfirmedBookings++
		case models.StatusPending:
			stats.PendingBookings++
		case models.StatusCancelled:
			stats.CancelledBookings++
		}

		stats.TotalRevenue += b.TotalPrice
		stats.TotalDeposits += b.Deposit
		stats.TotalBalance += b.Balance

		if t, err := time.Parse("2006-01-02", b.CheckIn); err == nil {
			monthly[t.Format("2006-01")] += b.TotalPrice
		}
	}

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)
	for _, m := range months {
		stats.MonthlyRevenue = append(stats.MonthlyRevenue, models.MonthlyRevenue{
			Month:   m,
			Revenue: monthly[m],
		})
	}

	return stats
}
