// Package mockdata is the external mock-data source the data context is
// seeded from: a built-in snapshot mirroring the dashboard's demo dataset,
// plus a YAML loader for overriding it from a file.
package mockdata

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Default returns the built-in demo snapshot. Insertion order matters: the
// suggestion resolver breaks ties by it.
func Default() domain.Snapshot {
	return domain.Snapshot{
		Currencies: []domain.Currency{
			{Code: "USD", Symbol: "$", Name: "US Dollar", Precision: 2},
			{Code: "GBP", Symbol: "£", Name: "British Pound", Precision: 2},
			{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham", Precision: 2},
		},
		Offices: []domain.Office{
			{OfficeID: "usa", Name: "USA Office", CurrencyCode: "USD"},
			{OfficeID: "uk", Name: "UK Office", CurrencyCode: "GBP"},
			{OfficeID: "dubai", Name: "Dubai Office", CurrencyCode: "AED"},
		},
		Accounts: []domain.Account{
			{AccountID: "acc-1001", Code: "1001", Name: "Cash", Balance: decimal.RequireFromString("25400.00"), AccountType: domain.AccountTypeAsset},
			{AccountID: "acc-1002", Code: "1002", Name: "Bank", Balance: decimal.RequireFromString("118250.75"), AccountType: domain.AccountTypeAsset},
			{AccountID: "acc-2001", Code: "2001", Name: "Accounts Payable", Balance: decimal.RequireFromString("-15300.00"), AccountType: domain.AccountTypeLiability},
			{AccountID: "acc-3001", Code: "3001", Name: "Owner Equity", Balance: decimal.RequireFromString("-90000.00"), AccountType: domain.AccountTypeEquity},
			{AccountID: "acc-4001", Code: "4001", Name: "Ticket Sales", Balance: decimal.RequireFromString("-64780.50"), AccountType: domain.AccountTypeRevenue},
			{AccountID: "acc-5001", Code: "5001", Name: "Office Expenses", Balance: decimal.RequireFromString("26429.75"), AccountType: domain.AccountTypeExpense},
		},
		JournalEntries: []domain.JournalEntry{
			{EntryID: "JE-001", Date: date(2024, time.June, 3), Reference: "INV-2041", Description: "Ticket sale settlement", DebitAccount: "Bank", CreditAccount: "Ticket Sales", Amount: decimal.RequireFromString("4850.00"), Status: domain.JournalPosted},
			{EntryID: "JE-002", Date: date(2024, time.June, 5), Reference: "EXP-118", Description: "Office rent, June", DebitAccount: "Office Expenses", CreditAccount: "Bank", Amount: decimal.RequireFromString("2300.00"), Status: domain.JournalPosted},
			{EntryID: "JE-003", Date: date(2024, time.June, 9), Reference: "PAY-077", Description: "Supplier settlement", DebitAccount: "Accounts Payable", CreditAccount: "Cash", Amount: decimal.RequireFromString("1150.00"), Status: domain.JournalPosted},
			{EntryID: "JE-004", Date: date(2024, time.June, 12), Reference: "INV-2046", Description: "Group booking settlement", DebitAccount: "Bank", CreditAccount: "Ticket Sales", Amount: decimal.RequireFromString("7920.00"), Status: domain.JournalPosted},
		},
		Expenses: []domain.Expense{
			{ExpenseID: "EXP-001", Date: date(2024, time.June, 2), Category: "Rent", Amount: decimal.RequireFromString("2300.00"), CurrencyCode: "USD", Office: "USA Office", ExchangeRate: decimal.RequireFromString("1"), PaymentMethod: "Bank Transfer"},
			{ExpenseID: "EXP-002", Date: date(2024, time.June, 4), Category: "Utilities", Amount: decimal.RequireFromString("380.40"), CurrencyCode: "GBP", Office: "UK Office", ExchangeRate: decimal.RequireFromString("1.27"), PaymentMethod: "Direct Debit"},
			{ExpenseID: "EXP-003", Date: date(2024, time.June, 7), Category: "Marketing", Amount: decimal.RequireFromString("5200.00"), CurrencyCode: "AED", Office: "Dubai Office", ExchangeRate: decimal.RequireFromString("0.27"), PaymentMethod: "Card"},
			{ExpenseID: "EXP-004", Date: date(2024, time.June, 11), Category: "Travel", Amount: decimal.RequireFromString("940.00"), CurrencyCode: "USD", Office: "UK Office", ExchangeRate: decimal.RequireFromString("1"), PaymentMethod: "Card"},
			{ExpenseID: "EXP-005", Date: date(2024, time.June, 15), Category: "Supplies", Amount: decimal.RequireFromString("265.30"), CurrencyCode: "GBP", Office: "UK Office", ExchangeRate: decimal.RequireFromString("1.27"), PaymentMethod: "Cash"},
		},
		Bookings: []domain.Booking{
			{BookingID: "BKG-1001", AgentRef: "AGT-US-14", TotalAmount: decimal.RequireFromString("3420.00"), CurrencyCode: "USD", Status: domain.BookingTicketed, AmendStatus: domain.AmendNone, RefundStatus: domain.RefundNone, CreatedAt: date(2024, time.May, 20), Origin: "JFK", Destination: "LHR", TravelDate: date(2024, time.July, 8), PassengerCount: 2},
			{BookingID: "BKG-1002", AgentRef: "AGT-UK-03", TotalAmount: decimal.RequireFromString("1180.50"), CurrencyCode: "GBP", Status: domain.BookingTicketed, AmendStatus: domain.AmendNone, RefundStatus: domain.RefundNone, CreatedAt: date(2024, time.June, 1), Origin: "LHR", Destination: "DXB", TravelDate: date(2024, time.August, 2), PassengerCount: 1},
			{BookingID: "BKG-1003", AgentRef: "AGT-AE-21", TotalAmount: decimal.RequireFromString("6400.00"), CurrencyCode: "AED", Status: domain.BookingTicketed, AmendStatus: domain.AmendedDeparture, RefundStatus: domain.RefundInProcess, CreatedAt: date(2024, time.April, 14), Origin: "DXB", Destination: "JFK", TravelDate: date(2024, time.June, 30), PassengerCount: 2},
		},
		Passengers: []domain.Passenger{
			{PassengerID: "PAX-2001", BookingID: "BKG-1001", Name: "Sarah Mitchell", TicketNumber: "0012345678901", Status: domain.BookingTicketed, AmendStatus: domain.AmendNone, RefundStatus: domain.RefundNone, FareAmount: decimal.RequireFromString("1710.00"), FareType: "Economy Flex"},
			{PassengerID: "PAX-2002", BookingID: "BKG-1001", Name: "James Mitchell", TicketNumber: "0012345678902", Status: domain.BookingTicketed, AmendStatus: domain.AmendNone, RefundStatus: domain.RefundNone, FareAmount: decimal.RequireFromString("1710.00"), FareType: "Economy Flex"},
			{PassengerID: "PAX-2003", BookingID: "BKG-1002", Name: "Priya Shah", TicketNumber: "0062345679002", Status: domain.BookingTicketed, AmendStatus: domain.AmendNone, RefundStatus: domain.RefundNone, FareAmount: decimal.RequireFromString("1180.50"), FareType: "Economy"},
			{PassengerID: "PAX-2004", BookingID: "BKG-1003", Name: "Omar Haddad", TicketNumber: "0019876543201", Status: domain.BookingTicketed, AmendStatus: domain.AmendedDeparture, RefundStatus: domain.RefundInProcess, FareAmount: decimal.RequireFromString("3200.00"), FareType: "Business"},
			{PassengerID: "PAX-2005", BookingID: "BKG-1003", Name: "Lina Haddad", TicketNumber: "0019876543202", Status: domain.BookingTicketed, AmendStatus: domain.AmendNone, RefundStatus: domain.RefundNone, FareAmount: decimal.RequireFromString("3200.00"), FareType: "Business"},
		},
		Invoices: []domain.Invoice{
			{InvoiceID: "INV-3001", BookingID: "BKG-1001", PassengerID: "PAX-2001", Amount: decimal.RequireFromString("1710.00"), CurrencyCode: "USD", Status: domain.InvoicePaid, ActionType: domain.ActionTicket, Date: date(2024, time.May, 21), DueDate: date(2024, time.June, 4)},
			{InvoiceID: "INV-3002", BookingID: "BKG-1001", PassengerID: "PAX-2002", Amount: decimal.RequireFromString("1710.00"), CurrencyCode: "USD", Status: domain.InvoicePaid, ActionType: domain.ActionTicket, Date: date(2024, time.May, 21), DueDate: date(2024, time.June, 4)},
			{InvoiceID: "INV-3003", BookingID: "BKG-1002", Amount: decimal.RequireFromString("1180.50"), CurrencyCode: "GBP", Status: domain.InvoicePending, ActionType: domain.ActionTicket, Date: date(2024, time.June, 2), DueDate: date(2024, time.June, 16)},
			{InvoiceID: "INV-3004", BookingID: "BKG-1003", PassengerID: "PAX-2004", Amount: decimal.RequireFromString("3200.00"), CurrencyCode: "AED", Status: domain.InvoicePaid, ActionType: domain.ActionTicket, Date: date(2024, time.April, 15), DueDate: date(2024, time.April, 29)},
			{InvoiceID: "INV-3005", BookingID: "BKG-1003", PassengerID: "PAX-2004", Amount: decimal.RequireFromString("450.00"), CurrencyCode: "AED", Status: domain.InvoiceOverdue, ActionType: domain.ActionAmend, Date: date(2024, time.May, 10), DueDate: date(2024, time.May, 24)},
			{InvoiceID: "INV-3006", BookingID: "BKG-1003", PassengerID: "PAX-2005", Amount: decimal.RequireFromString("3200.00"), CurrencyCode: "AED", Status: domain.InvoicePaid, ActionType: domain.ActionTicket, Date: date(2024, time.April, 15), DueDate: date(2024, time.April, 29)},
		},
		Payments: []domain.Payment{
			{PaymentID: "PMT-4001", InvoiceID: "INV-3001", BookingID: "BKG-1001", PassengerID: "PAX-2001", Amount: decimal.RequireFromString("1710.00"), CurrencyCode: "USD", Method: "Card", Status: domain.PaymentCompleted, Date: date(2024, time.May, 23), Reference: "CH-88231"},
			{PaymentID: "PMT-4002", InvoiceID: "INV-3002", BookingID: "BKG-1001", PassengerID: "PAX-2002", Amount: decimal.RequireFromString("1710.00"), CurrencyCode: "USD", Method: "Card", Status: domain.PaymentCompleted, Date: date(2024, time.May, 23), Reference: "CH-88232"},
			{PaymentID: "PMT-4003", InvoiceID: "INV-3003", BookingID: "BKG-1002", PassengerID: "PAX-2003", Amount: decimal.RequireFromString("1180.50"), CurrencyCode: "GBP", Method: "Bank Transfer", Status: domain.PaymentPending, Date: date(2024, time.June, 10), Reference: "TRF-5520"},
			{PaymentID: "PMT-4004", InvoiceID: "INV-3004", BookingID: "BKG-1003", PassengerID: "PAX-2004", Amount: decimal.RequireFromString("3200.00"), CurrencyCode: "AED", Method: "Cash", Status: domain.PaymentCompleted, Date: date(2024, time.April, 20), Reference: "CSH-1104"},
			{PaymentID: "PMT-4005", InvoiceID: "INV-3005", BookingID: "BKG-1003", PassengerID: "PAX-2004", Amount: decimal.RequireFromString("450.00"), CurrencyCode: "AED", Method: "Cash", Status: domain.PaymentPending, Date: date(2024, time.May, 26), Reference: "CSH-1131"},
			{PaymentID: "PMT-4006", InvoiceID: "INV-3006", BookingID: "BKG-1003", PassengerID: "PAX-2005", Amount: decimal.RequireFromString("3200.00"), CurrencyCode: "AED", Method: "Cash", Status: domain.PaymentCompleted, Date: date(2024, time.April, 20), Reference: "CSH-1105"},
		},
	}
}
