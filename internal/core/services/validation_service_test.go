package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
	portssvc "github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/ports/services"
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/services"
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/repositories/memory"
)

type ValidationServiceTestSuite struct {
	suite.Suite
	service portssvc.ValidatorSvcFacade
}

func (suite *ValidationServiceTestSuite) SetupTest() {
	store := memory.NewStore(domain.Snapshot{
		Currencies: []domain.Currency{
			{Code: "USD", Symbol: "$", Name: "US Dollar", Precision: 2},
			{Code: "GBP", Symbol: "£", Name: "British Pound", Precision: 2},
		},
		Offices: []domain.Office{
			{OfficeID: "usa", Name: "USA Office", CurrencyCode: "USD"},
			{OfficeID: "uk", Name: "UK Office", CurrencyCode: "GBP"},
		},
		Accounts: []domain.Account{
			{AccountID: "a1", Code: "1001", Name: "Cash", AccountType: domain.AccountTypeAsset},
			{AccountID: "a2", Code: "4001", Name: "Ticket Sales", AccountType: domain.AccountTypeRevenue},
		},
	})
	suite.service = services.NewValidationService(store, store, store)
}

func (suite *ValidationServiceTestSuite) TestValidateJournalEntry_Valid() {
	entry := domain.JournalEntry{
		EntryID:       "JE-1",
		DebitAccount:  "Cash",
		CreditAccount: "Ticket Sales",
		Amount:        decimal.RequireFromString("100.00"),
	}

	result := suite.service.ValidateJournalEntry(entry)

	suite.True(result.Valid())
	suite.Empty(result.Diagnostics)
}

func (suite *ValidationServiceTestSuite) TestValidateJournalEntry_UnknownAccounts() {
	entry := domain.JournalEntry{
		EntryID:       "JE-2",
		DebitAccount:  "Petty Cash",
		CreditAccount: "Misc Income",
		Amount:        decimal.RequireFromString("50.00"),
	}

	result := suite.service.ValidateJournalEntry(entry)

	suite.False(result.Valid())
	suite.Equal([]string{
		"debit account 'Petty Cash' not found",
		"credit account 'Misc Income' not found",
	}, result.Errors())
}

func (suite *ValidationServiceTestSuite) TestValidateJournalEntry_NonPositiveAmount() {
	entry := domain.JournalEntry{
		EntryID:       "JE-3",
		DebitAccount:  "Cash",
		CreditAccount: "Ticket Sales",
		Amount:        decimal.Zero,
	}

	result := suite.service.ValidateJournalEntry(entry)

	suite.False(result.Valid())
	suite.Equal([]string{"amount must be greater than zero"}, result.Errors())
}

func (suite *ValidationServiceTestSuite) TestValidateExpense_Valid() {
	expense := domain.Expense{
		ExpenseID:    "EXP-1",
		Amount:       decimal.RequireFromString("200.00"),
		CurrencyCode: "USD",
		Office:       "USA Office",
		ExchangeRate: decimal.NewFromInt(1),
	}

	result := suite.service.ValidateExpense(expense)

	suite.True(result.Valid())
	suite.Empty(result.Warnings())
}

func (suite *ValidationServiceTestSuite) TestValidateExpense_UnknownReferences() {
	expense := domain.Expense{
		ExpenseID:    "EXP-2",
		Amount:       decimal.RequireFromString("200.00"),
		CurrencyCode: "JPY",
		Office:       "Tokyo Office",
		ExchangeRate: decimal.RequireFromString("0.007"),
	}

	result := suite.service.ValidateExpense(expense)

	suite.False(result.Valid())
	suite.Equal([]string{
		"currency 'JPY' not found",
		"office 'Tokyo Office' not found",
	}, result.Errors())
}

func (suite *ValidationServiceTestSuite) TestValidateExpense_NonPositiveNumbers() {
	expense := domain.Expense{
		ExpenseID:    "EXP-3",
		Amount:       decimal.RequireFromString("-5.00"),
		CurrencyCode: "USD",
		Office:       "USA Office",
		ExchangeRate: decimal.Zero,
	}

	result := suite.service.ValidateExpense(expense)

	suite.False(result.Valid())
	suite.Equal([]string{
		"amount must be greater than zero",
		"exchange rate must be greater than zero",
	}, result.Errors())
}

func (suite *ValidationServiceTestSuite) TestValidateExpense_CurrencyMismatchIsWarningOnly() {
	expense := domain.Expense{
		ExpenseID:    "EXP-4",
		Amount:       decimal.RequireFromString("80.00"),
		CurrencyCode: "USD",
		Office:       "UK Office",
		ExchangeRate: decimal.NewFromInt(1),
	}

	result := suite.service.ValidateExpense(expense)

	suite.True(result.Valid(), "mismatch must not block the record")
	suite.Equal([]string{
		"office 'UK Office' home currency GBP differs from expense currency USD",
	}, result.Warnings())
}

func (suite *ValidationServiceTestSuite) TestValidateCurrencyConsistency_UnknownOfficeIsSilent() {
	expense := domain.Expense{ExpenseID: "EXP-5", CurrencyCode: "USD", Office: "Nowhere"}

	result := suite.service.ValidateCurrencyConsistency(expense)

	suite.Empty(result.Diagnostics)
}

func (suite *ValidationServiceTestSuite) TestValidateBooking_MissingFields() {
	result := suite.service.ValidateBooking(domain.Booking{})

	suite.False(result.Valid())
	suite.Contains(result.Errors(), "bookingID is required")
	suite.Contains(result.Errors(), "agentRef is required")
	suite.Contains(result.Errors(), "currencyCode is required")
	suite.Contains(result.Errors(), "status is required")
	suite.Contains(result.Errors(), "createdAt is required")
	suite.Contains(result.Errors(), "totalAmount is required")
}

func (suite *ValidationServiceTestSuite) TestValidateBooking_Complete() {
	booking := domain.Booking{
		BookingID:    "BKG-1",
		AgentRef:     "AGT-1",
		TotalAmount:  decimal.RequireFromString("100.00"),
		CurrencyCode: "USD",
		Status:       domain.BookingConfirmed,
		CreatedAt:    time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}

	result := suite.service.ValidateBooking(booking)

	suite.True(result.Valid())
}

func (suite *ValidationServiceTestSuite) TestValidateInvoice_PassengerIDOptional() {
	invoice := domain.Invoice{
		InvoiceID:    "INV-1",
		BookingID:    "BKG-1",
		Amount:       decimal.RequireFromString("100.00"),
		CurrencyCode: "USD",
		Status:       domain.InvoicePending,
		ActionType:   domain.ActionTicket,
		Date:         time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		DueDate:      time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
	}

	result := suite.service.ValidateInvoice(invoice)

	suite.True(result.Valid(), "booking-level invoices have no passenger id")
}

func (suite *ValidationServiceTestSuite) TestValidateInvoice_MissingFields() {
	result := suite.service.ValidateInvoice(domain.Invoice{InvoiceID: "INV-2"})

	suite.False(result.Valid())
	suite.Contains(result.Errors(), "bookingID is required")
	suite.Contains(result.Errors(), "dueDate is required")
	suite.Contains(result.Errors(), "amount is required")
	suite.NotContains(result.Errors(), "invoiceID is required")
}

func (suite *ValidationServiceTestSuite) TestValidatePayment_MissingFields() {
	result := suite.service.ValidatePayment(domain.Payment{})

	suite.False(result.Valid())
	suite.Contains(result.Errors(), "paymentID is required")
	suite.Contains(result.Errors(), "invoiceID is required")
	suite.Contains(result.Errors(), "bookingID is required")
	suite.Contains(result.Errors(), "method is required")
	suite.Contains(result.Errors(), "status is required")
	suite.Contains(result.Errors(), "amount is required")
}

func TestValidationService(t *testing.T) {
	suite.Run(t, new(ValidationServiceTestSuite))
}
