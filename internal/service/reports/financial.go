package reports

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// startOfMonth возвращает первое число месяца t в его локации
func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// reportRange возвращает полуинтервал, покрывающий год отчета и историю последних месяцев
func reportRange(year int, now time.Time) (time.Time, time.Time) {
	loc := now.Location()
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(1, 0, 0)

	historyFrom := startOfMonth(now).AddDate(0, -(domain.FinancialHistoryMonths - 1), 0)
	historyTo := startOfMonth(now).AddDate(0, 1, 0)

	if historyFrom.Before(from) {
		from = historyFrom
	}
	if historyTo.After(to) {
		to = historyTo
	}
	return from, to
}

// buildFinancialReport считает годовую выручку (оплаченные записи), число выполненных
// записей за год, среднюю выручку в месяц и историю последних месяцев от текущего.
// Для текущего года средняя делится на число прошедших месяцев, иначе на 12.
func buildFinancialReport(year int, appointments []*domain.Appointment, now time.Time) domain.FinancialReport {
	loc := now.Location()
	report := domain.FinancialReport{Year: year}

	history := make([]domain.MonthlyReport, domain.FinancialHistoryMonths)
	index := make(map[[2]int]int, domain.FinancialHistoryMonths)
	current := startOfMonth(now)
	for i := range history {
		month := current.AddDate(0, -i, 0)
		history[i] = domain.MonthlyReport{
			Year:              month.Year(),
			Month:             int(month.Month()),
			RevenueByEmployee: map[string]float64{},
		}
		index[[2]int{month.Year(), int(month.Month())}] = i
	}

	for _, a := range appointments {
		local := a.StartTime.In(loc)

		if local.Year() == year {
			if a.IsPaid {
				report.AnnualRevenue += a.Price
			}
			if a.Status == domain.StatusCompleted {
				report.AnnualServices++
			}
		}

		i, ok := index[[2]int{local.Year(), int(local.Month())}]
		if !ok {
			continue
		}
		if a.Status == domain.StatusCompleted {
			history[i].Completed++
		}
		if a.IsPaid {
			history[i].Revenue += a.Price
			employee := a.EmployeeName
			if employee == "" {
				employee = domain.UnknownEmployee
			}
			history[i].RevenueByEmployee[employee] += a.Price
		}
	}

	divisor := 12
	if year == now.Year() {
		divisor = max(1, int(now.Month()))
	}
	report.AverageMonthlyRevenue = report.AnnualRevenue / float64(divisor)
	report.MonthlyHistory = history

	return report
}
