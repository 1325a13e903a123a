package models

import (
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthlyReportResponse итоги одного месяца
type MonthlyReportResponse struct {
	Label             string             `json:"label"` // "outubro de 2026"
	Year              int                `json:"year"`
	Month             int                `json:"month"`
	Revenue           float64            `json:"revenue"`
	Completed         int                `json:"completed"`
	RevenueByEmployee map[string]float64 `json:"revenueByEmployee"`
}

// FinancialReportResponse годовой отчет с историей последних месяцев
type FinancialReportResponse struct {
	Year                  int                     `json:"year"`
	AnnualRevenue         float64                 `json:"annualRevenue"`
	AnnualServices        int                     `json:"annualServices"`
	AverageMonthlyRevenue float64                 `json:"averageMonthlyRevenue"`
	MonthlyHistory        []MonthlyReportResponse `json:"monthlyHistory"`
}

// MonthLabel возвращает подпись месяца на португальском
func MonthLabel(year, month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%02d/%d", month, year)
	}
	return fmt.Sprintf("%s de %d", monthNames[month-1], year)
}

// FromDomainFinancialReport конвертирует domain модель в DTO
func FromDomainFinancialReport(r domain.FinancialReport) *FinancialReportResponse {
	resp := &FinancialReportResponse{
		Year:                  r.Year,
		AnnualRevenue:         r.AnnualRevenue,
		AnnualServices:        r.AnnualServices,
		AverageMonthlyRevenue: r.AverageMonthlyRevenue,
		MonthlyHistory:        make([]MonthlyReportResponse, 0, len(r.MonthlyHistory)),
	}
	for _, m := range r.MonthlyHistory {
		resp.MonthlyHistory = append(resp.MonthlyHistory, MonthlyReportResponse{
			Label:             MonthLabel(m.Year, m.Month),
			Year:              m.Year,
			Month:             m.Month,
			Revenue:           m.Revenue,
			Completed:         m.Completed,
			RevenueByEmployee: m.RevenueByEmployee,
		})
	}
	return resp
}
