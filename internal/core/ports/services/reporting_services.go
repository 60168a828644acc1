package services

import (
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
)

// ReportingSvcFacade computes the aggregates behind the dashboard charts.
// All reports are derived on demand from the data context; nothing is cached.
type ReportingSvcFacade interface {
	// ExpenseTotalsByOffice sums expenses per office, converted into the
	// base currency using each expense's stored exchange rate.
	ExpenseTotalsByOffice() []domain.OfficeExpenseTotal

	// ExpenseTotalsByCurrency sums expenses per currency in that currency.
	ExpenseTotalsByCurrency() []domain.CurrencyExpenseTotal

	// BookingTotalsByStatus groups bookings by status with their summed
	// total amounts.
	BookingTotalsByStatus() []domain.BookingStatusTotal

	// RefundPipeline counts bookings at each refund stage.
	RefundPipeline() domain.RefundPipelineReport
}
