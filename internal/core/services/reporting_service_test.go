package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/services"
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/repositories/memory"
)

func newReportingFixture() *memory.Store {
	return memory.NewStore(domain.Snapshot{
		Offices: []domain.Office{
			{OfficeID: "usa", Name: "USA Office", CurrencyCode: "USD"},
			{OfficeID: "uk", Name: "UK Office", CurrencyCode: "GBP"},
			{OfficeID: "dxb", Name: "Dubai Office", CurrencyCode: "AED"},
		},
		Expenses: []domain.Expense{
			{ExpenseID: "E1", Office: "USA Office", CurrencyCode: "USD", Amount: decimal.RequireFromString("100.00"), ExchangeRate: decimal.NewFromInt(1)},
			{ExpenseID: "E2", Office: "UK Office", CurrencyCode: "GBP", Amount: decimal.RequireFromString("200.00"), ExchangeRate: decimal.RequireFromString("1.25")},
			{ExpenseID: "E3", Office: "UK Office", CurrencyCode: "USD", Amount: decimal.RequireFromString("50.00"), ExchangeRate: decimal.NewFromInt(1)},
		},
		Bookings: []domain.Booking{
			{BookingID: "B1", Status: domain.BookingTicketed, TotalAmount: decimal.RequireFromString("1000.00"), RefundStatus: domain.RefundNone},
			{BookingID: "B2", Status: domain.BookingTicketed, TotalAmount: decimal.RequireFromString("500.00"), RefundStatus: domain.RefundInProcess},
			{BookingID: "B3", Status: domain.BookingConfirmed, TotalAmount: decimal.RequireFromString("250.00")},
			{BookingID: "B4", Status: domain.BookingCancelled, TotalAmount: decimal.RequireFromString("75.00"), RefundStatus: domain.Refunded},
		},
	})
}

func TestExpenseTotalsByOffice(t *testing.T) {
	store := newReportingFixture()
	svc := services.NewReportingService(store, store, store)

	totals := svc.ExpenseTotalsByOffice()
	require.Len(t, totals, 3, "one row per office, seed order")

	assert.Equal(t, "USA Office", totals[0].Office)
	assert.Equal(t, 1, totals[0].Count)
	assert.True(t, totals[0].Total.Equal(decimal.RequireFromString("100.00")))

	assert.Equal(t, "UK Office", totals[1].Office)
	assert.Equal(t, 2, totals[1].Count)
	// 200.00 * 1.25 + 50.00 * 1 = 300.00 in base currency.
	assert.True(t, totals[1].Total.Equal(decimal.RequireFromString("300.00")))

	assert.Equal(t, "Dubai Office", totals[2].Office)
	assert.Equal(t, 0, totals[2].Count)
	assert.True(t, totals[2].Total.IsZero())
}

func TestExpenseTotalsByCurrency(t *testing.T) {
	store := newReportingFixture()
	svc := services.NewReportingService(store, store, store)

	totals := svc.ExpenseTotalsByCurrency()
	require.Len(t, totals, 2)

	assert.Equal(t, "USD", totals[0].CurrencyCode)
	assert.Equal(t, 2, totals[0].Count)
	assert.True(t, totals[0].Total.Equal(decimal.RequireFromString("150.00")))

	assert.Equal(t, "GBP", totals[1].CurrencyCode)
	assert.True(t, totals[1].Total.Equal(decimal.RequireFromString("200.00")))
}

func TestBookingTotalsByStatus(t *testing.T) {
	store := newReportingFixture()
	svc := services.NewReportingService(store, store, store)

	totals := svc.BookingTotalsByStatus()
	require.Len(t, totals, 3)

	assert.Equal(t, domain.BookingTicketed, totals[0].Status)
	assert.Equal(t, 2, totals[0].Count)
	assert.True(t, totals[0].Total.Equal(decimal.RequireFromString("1500.00")))

	assert.Equal(t, domain.BookingConfirmed, totals[1].Status)
	assert.Equal(t, domain.BookingCancelled, totals[2].Status)
}

func TestRefundPipeline(t *testing.T) {
	store := newReportingFixture()
	svc := services.NewReportingService(store, store, store)

	pipeline := svc.RefundPipeline()
	assert.Equal(t, 2, pipeline.Clear, "unset and NONE both count as clear")
	assert.Equal(t, 1, pipeline.InProcess)
	assert.Equal(t, 1, pipeline.Refunded)
	assert.Equal(t, 0, pipeline.Applied)
	assert.Equal(t, 0, pipeline.Rejected)
}
