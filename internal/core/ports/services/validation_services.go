package services

import (
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
)

// ValidatorSvcFacade checks a single candidate record against the reference
// data it depends on. Every method accumulates diagnostics and never panics;
// a malformed record produces error diagnostics, not a Go error.
type ValidatorSvcFacade interface {
	// ValidateJournalEntry checks that both account references resolve and
	// that the amount is positive.
	ValidateJournalEntry(entry domain.JournalEntry) domain.ValidationResult

	// ValidateExpense checks the currency and office references, the amount
	// and the exchange rate, and folds in the currency-consistency warning.
	ValidateExpense(expense domain.Expense) domain.ValidationResult

	// ValidateCurrencyConsistency reports a warning when the expense
	// currency differs from its office's home currency.
	ValidateCurrencyConsistency(expense domain.Expense) domain.ValidationResult

	// ValidateBooking checks required-field presence on a booking.
	ValidateBooking(booking domain.Booking) domain.ValidationResult

	// ValidateInvoice checks required-field presence on an invoice.
	ValidateInvoice(invoice domain.Invoice) domain.ValidationResult

	// ValidatePayment checks required-field presence on a payment.
	ValidatePayment(payment domain.Payment) domain.ValidationResult
}
