package domain

import (
	"github.com/shopspring/decimal"
)

// OfficeExpenseTotal represents one row of the expenses-by-office report.
// Total is expressed in the base currency using each expense's stored rate.
type OfficeExpenseTotal struct {
	Office string          `json:"office"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// CurrencyExpenseTotal represents one row of the expenses-by-currency report.
// Total is kept in the expense currency itself.
type CurrencyExpenseTotal struct {
	CurrencyCode string          `json:"currencyCode"`
	Count        int             `json:"count"`
	Total        decimal.Decimal `json:"total"`
}

// BookingStatusTotal represents the bookings grouped under one status.
type BookingStatusTotal struct {
	Status BookingStatus   `json:"status"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"` // Sum of booking totals, nominal currency amounts
}

// RefundPipelineReport counts bookings at each stage of the refund pipeline.
type RefundPipelineReport struct {
	Clear     int `json:"clear"` // No refund recorded
	Applied   int `json:"applied"`
	InProcess int `json:"inProcess"`
	Refunded  int `json:"refunded"`
	Rejected  int `json:"rejected"`
}
