package get_financial_report

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/service/reports/models"
)

type ReportService interface {
	GetFinancialReport(ctx context.Context, year int) (*models.FinancialReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
