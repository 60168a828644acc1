package utils

import (
	"github.com/shopspring/decimal"

	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
)

// FormatWithCurrency formats an amount with the currency's symbol and
// display precision.
// Example: amount 12.3456 with USD (precision 2) returns "$12.35"
func FormatWithCurrency(amount decimal.Decimal, currency domain.Currency) string {
	return currency.Symbol + amount.Round(int32(currency.Precision)).StringFixed(int32(currency.Precision))
}

// FormatWithPrecision formats an amount with the given precision when only
// the precision value is at hand.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}
