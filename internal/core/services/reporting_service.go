package services

import (
	"github.com/shopspring/decimal"

	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
	portsrepo "github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/ports/repositories"
	portssvc "github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/ports/services"
)

// reportingService derives the dashboard aggregates on demand. Conversion
// into the base currency uses each expense's stored exchange rate; live
// rate fetching is a collaborator outside this core.
type reportingService struct {
	offices  portsrepo.OfficeReader
	expenses portsrepo.ExpenseReader
	bookings portsrepo.BookingReader
}

// NewReportingService creates the reporting engine over the given readers.
func NewReportingService(offices portsrepo.OfficeReader, expenses portsrepo.ExpenseReader, bookings portsrepo.BookingReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		offices:  offices,
		expenses: expenses,
		bookings: bookings,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// ExpenseTotalsByOffice sums expenses per office in the base currency.
// Offices appear in seed order; offices without expenses report zero so the
// chart keeps a bar per office.
func (s *reportingService) ExpenseTotalsByOffice() []domain.OfficeExpenseTotal {
	byOffice := make(map[string]int)
	totals := make([]domain.OfficeExpenseTotal, 0, len(s.offices.ListOffices()))
	for _, o := range s.offices.ListOffices() {
		byOffice[o.Name] = len(totals)
		totals = append(totals, domain.OfficeExpenseTotal{Office: o.Name, Total: decimal.Zero})
	}

	for _, e := range s.expenses.ListExpenses() {
		i, ok := byOffice[e.Office]
		if !ok {
			// Expense against an unknown office; validation flags these,
			// reporting just skips them.
			continue
		}
		totals[i].Count++
		totals[i].Total = totals[i].Total.Add(e.Amount.Mul(e.ExchangeRate))
	}

	return totals
}

// ExpenseTotalsByCurrency sums expenses per currency in that currency,
// first-seen order.
func (s *reportingService) ExpenseTotalsByCurrency() []domain.CurrencyExpenseTotal {
	byCurrency := make(map[string]int)
	var totals []domain.CurrencyExpenseTotal

	for _, e := range s.expenses.ListExpenses() {
		i, ok := byCurrency[e.CurrencyCode]
		if !ok {
			i = len(totals)
			byCurrency[e.CurrencyCode] = i
			totals = append(totals, domain.CurrencyExpenseTotal{CurrencyCode: e.CurrencyCode, Total: decimal.Zero})
		}
		totals[i].Count++
		totals[i].Total = totals[i].Total.Add(e.Amount)
	}

	return totals
}

// BookingTotalsByStatus groups bookings by status in first-seen order.
// Totals are nominal sums of the bookings' own currencies.
func (s *reportingService) BookingTotalsByStatus() []domain.BookingStatusTotal {
	byStatus := make(map[domain.BookingStatus]int)
	var totals []domain.BookingStatusTotal

	for _, b := range s.bookings.ListBookings() {
		i, ok := byStatus[b.Status]
		if !ok {
			i = len(totals)
			byStatus[b.Status] = i
			totals = append(totals, domain.BookingStatusTotal{Status: b.Status, Total: decimal.Zero})
		}
		totals[i].Count++
		totals[i].Total = totals[i].Total.Add(b.TotalAmount)
	}

	return totals
}

// RefundPipeline counts bookings at each stage of the refund pipeline.
func (s *reportingService) RefundPipeline() domain.RefundPipelineReport {
	var report domain.RefundPipelineReport
	for _, b := range s.bookings.ListBookings() {
		switch {
		case b.RefundStatus.IsClear():
			report.Clear++
		case b.RefundStatus == domain.RefundApplied:
			report.Applied++
		case b.RefundStatus == domain.RefundInProcess:
			report.InProcess++
		case b.RefundStatus == domain.Refunded:
			report.Refunded++
		case b.RefundStatus == domain.RefundRejected:
			report.Rejected++
		}
	}
	return report
}
