package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single back-office expense record.
// CurrencyCode references Currency.Code and Office references Office.Name.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`
	Date          time.Time       `json:"date"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"` // Must be positive
	CurrencyCode  string          `json:"currencyCode"`
	Office        string          `json:"office"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"` // Rate to the base currency, must be positive
	PaymentMethod string          `json:"paymentMethod"`
}
