package services

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
	portsrepo "github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/ports/repositories"
	portssvc "github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/ports/services"
)

// validationService checks candidate records against the reference data.
// All checks accumulate diagnostics; none of them panics or returns a Go
// error, so a half-filled form can always be fully reported on.
type validationService struct {
	currencies portsrepo.CurrencyReader
	offices    portsrepo.OfficeReader
	accounts   portsrepo.AccountReader
	validate   *validator.Validate
}

// NewValidationService creates the validation engine over the given readers.
func NewValidationService(currencies portsrepo.CurrencyReader, offices portsrepo.OfficeReader, accounts portsrepo.AccountReader) portssvc.ValidatorSvcFacade {
	v := validator.New()
	// Report field names the way the UI and the seed data spell them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &validationService{
		currencies: currencies,
		offices:    offices,
		accounts:   accounts,
		validate:   v,
	}
}

var _ portssvc.ValidatorSvcFacade = (*validationService)(nil)

// ValidateJournalEntry checks that the debit and credit accounts resolve by
// name and that the amount is positive.
func (s *validationService) ValidateJournalEntry(entry domain.JournalEntry) domain.ValidationResult {
	var result domain.ValidationResult

	if s.accounts.FindAccountByName(entry.DebitAccount) == nil {
		result.AddError(fmt.Sprintf("debit account '%s' not found", entry.DebitAccount))
	}
	if s.accounts.FindAccountByName(entry.CreditAccount) == nil {
		result.AddError(fmt.Sprintf("credit account '%s' not found", entry.CreditAccount))
	}
	if entry.Amount.LessThanOrEqual(decimal.Zero) {
		result.AddError("amount must be greater than zero")
	}

	return result
}

// ValidateExpense checks the currency and office references plus the numeric
// invariants, and folds in the currency-consistency warning.
func (s *validationService) ValidateExpense(expense domain.Expense) domain.ValidationResult {
	var result domain.ValidationResult

	if s.currencies.FindCurrencyByCode(expense.CurrencyCode) == nil {
		result.AddError(fmt.Sprintf("currency '%s' not found", expense.CurrencyCode))
	}
	if s.offices.FindOfficeByName(expense.Office) == nil {
		result.AddError(fmt.Sprintf("office '%s' not found", expense.Office))
	}
	if expense.Amount.LessThanOrEqual(decimal.Zero) {
		result.AddError("amount must be greater than zero")
	}
	if expense.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		result.AddError("exchange rate must be greater than zero")
	}

	result.Diagnostics = append(result.Diagnostics, s.ValidateCurrencyConsistency(expense).Diagnostics...)

	return result
}

// ValidateCurrencyConsistency warns when the expense currency differs from
// the office's home currency. A mismatch is legal, just worth flagging.
func (s *validationService) ValidateCurrencyConsistency(expense domain.Expense) domain.ValidationResult {
	var result domain.ValidationResult

	office := s.offices.FindOfficeByName(expense.Office)
	if office == nil {
		// Unknown office is reported as an error by ValidateExpense;
		// there is no home currency to compare against.
		return result
	}
	if office.CurrencyCode != expense.CurrencyCode {
		result.AddWarning(fmt.Sprintf("office '%s' home currency %s differs from expense currency %s",
			office.Name, office.CurrencyCode, expense.CurrencyCode))
	}

	return result
}

// ValidateBooking checks required-field presence on a booking.
func (s *validationService) ValidateBooking(booking domain.Booking) domain.ValidationResult {
	result := s.requiredFields(booking)
	if booking.TotalAmount.IsZero() {
		result.AddError("totalAmount is required")
	}
	return result
}

// ValidateInvoice checks required-field presence on an invoice. PassengerID
// stays optional: booking-level invoices have none.
func (s *validationService) ValidateInvoice(invoice domain.Invoice) domain.ValidationResult {
	result := s.requiredFields(invoice)
	if invoice.Amount.IsZero() {
		result.AddError("amount is required")
	}
	return result
}

// ValidatePayment checks required-field presence on a payment.
func (s *validationService) ValidatePayment(payment domain.Payment) domain.ValidationResult {
	result := s.requiredFields(payment)
	if payment.Amount.IsZero() {
		result.AddError("amount is required")
	}
	return result
}

// requiredFields runs the struct's `validate` tags and converts each failed
// field into a diagnostic. Decimal amounts are checked by the callers since
// validator cannot see through decimal's internal representation.
func (s *validationService) requiredFields(record any) domain.ValidationResult {
	var result domain.ValidationResult

	err := s.validate.Struct(record)
	if err == nil {
		return result
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Only reachable if a non-struct sneaks in; keep the contract of
		// never panicking and report it in-band.
		result.AddError("record is not validatable")
		return result
	}
	for _, fe := range errs {
		result.AddError(fmt.Sprintf("%s is required", fe.Field()))
	}

	return result
}
