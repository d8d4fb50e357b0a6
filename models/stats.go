package models

// MonthlyRevenue is one bar of the dashboard revenue chart, keyed by the
// check-in month.
type MonthlyRevenue struct {
	Month   string  `json:"month"` // "2025-07"
	Revenue float64 `json:"revenue"`
}

// DashboardStats is the aggregate view served to the admin dashboard.
type DashboardStats struct {
	TotalBookings     int              `json:"totalBookings"`
	ConfirmedBookings int              `json:"confirmedBookings"`
	PendingBookings   int              `json:"pendingBookings"`
	CancelledBookings int              `json:"cancelledBookings"`
	TotalRevenue      float64          `json:"totalRevenue"`
	TotalDeposits     float64          `json:"totalDeposits"`
	TotalBalance      float64          `json:"totalBalance"`
	MonthlyRevenue    []MonthlyRevenue `json:"monthlyRevenue"`
}
