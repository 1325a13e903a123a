package domain

// DashboardStats aggregated figures for one agenda day
type DashboardStats struct {
	TotalRevenue          float64
	TotalAppointments     int
	CompletedAppointments int
	PendingPayment        float64
	RevenueByEmployee     map[string]float64
}

// MonthlyReport revenue summary of one calendar month
type MonthlyReport struct {
	Year              int
	Month             int // 1..12
	Revenue           float64
	Completed         int
	RevenueByEmployee map[string]float64
}

// FinancialReport yearly closure with recent monthly history
type FinancialReport struct {
	Year                  int
	AnnualRevenue         float64
	AnnualServices        int
	AverageMonthlyRevenue float64
	MonthlyHistory        []MonthlyReport // сначала самый свежий месяц
}

// ClientStats attendance and spending of one client
type ClientStats struct {
	CompletedCount int
	NoShowCount    int
	SpentMonth     float64
	SpentYear      float64
	History        []*Appointment // сначала самые новые
}
