package mockdata

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/apperrors"
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
)

// File-shape records. Amounts travel as strings so the file stays exact
// decimal, and dates as yyyy-mm-dd.

type snapshotFile struct {
	Currencies     []currencyRecord `yaml:"currencies"`
	Offices        []officeRecord   `yaml:"offices"`
	Accounts       []accountRecord  `yaml:"accounts"`
	JournalEntries []journalRecord  `yaml:"journalEntries"`
	Expenses       []expenseRecord  `yaml:"expenses"`
	Bookings       []bookingRecord  `yaml:"bookings"`
	Passengers     []passengerRec   `yaml:"passengers"`
	Invoices       []invoiceRecord  `yaml:"invoices"`
	Payments       []paymentRecord  `yaml:"payments"`
}

type currencyRecord struct {
	Code      string `yaml:"code"`
	Symbol    string `yaml:"symbol"`
	Name      string `yaml:"name"`
	Precision int    `yaml:"precision"`
}

type officeRecord struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

type accountRecord struct {
	ID      string `yaml:"id"`
	Code    string `yaml:"code"`
	Name    string `yaml:"name"`
	Balance string `yaml:"balance"`
	Type    string `yaml:"type"`
}

type journalRecord struct {
	ID            string `yaml:"id"`
	Date          string `yaml:"date"`
	Reference     string `yaml:"reference"`
	Description   string `yaml:"description"`
	DebitAccount  string `yaml:"debitAccount"`
	CreditAccount string `yaml:"creditAccount"`
	Amount        string `yaml:"amount"`
	Status        string `yaml:"status"`
}

type expenseRecord struct {
	ID            string `yaml:"id"`
	Date          string `yaml:"date"`
	Category      string `yaml:"category"`
	Amount        string `yaml:"amount"`
	Currency      string `yaml:"currency"`
	Office        string `yaml:"office"`
	ExchangeRate  string `yaml:"exchangeRate"`
	PaymentMethod string `yaml:"paymentMethod"`
}

type bookingRecord struct {
	ID             string `yaml:"id"`
	AgentRef       string `yaml:"agentRef"`
	TotalAmount    string `yaml:"totalAmount"`
	Currency       string `yaml:"currency"`
	Status         string `yaml:"status"`
	AmendStatus    string `yaml:"amendStatus"`
	RefundStatus   string `yaml:"refundStatus"`
	CreatedAt      string `yaml:"createdAt"`
	Origin         string `yaml:"origin"`
	Destination    string `yaml:"destination"`
	TravelDate     string `yaml:"travelDate"`
	PassengerCount int    `yaml:"passengerCount"`
}

type passengerRec struct {
	ID           string `yaml:"id"`
	BookingID    string `yaml:"bookingID"`
	Name         string `yaml:"name"`
	TicketNumber string `yaml:"ticketNumber"`
	Status       string `yaml:"status"`
	AmendStatus  string `yaml:"amendStatus"`
	RefundStatus string `yaml:"refundStatus"`
	FareAmount   string `yaml:"fareAmount"`
	FareType     string `yaml:"fareType"`
}

type invoiceRecord struct {
	ID          string `yaml:"id"`
	BookingID   string `yaml:"bookingID"`
	PassengerID string `yaml:"passengerID"`
	Amount      string `yaml:"amount"`
	Currency    string `yaml:"currency"`
	Status      string `yaml:"status"`
	ActionType  string `yaml:"actionType"`
	Date        string `yaml:"date"`
	DueDate     string `yaml:"dueDate"`
}

type paymentRecord struct {
	ID          string `yaml:"id"`
	InvoiceID   string `yaml:"invoiceID"`
	BookingID   string `yaml:"bookingID"`
	PassengerID string `yaml:"passengerID"`
	Amount      string `yaml:"amount"`
	Currency    string `yaml:"currency"`
	Method      string `yaml:"method"`
	Status      string `yaml:"status"`
	Date        string `yaml:"date"`
	Reference   string `yaml:"reference"`
}

const dateLayout = "2006-01-02"

// LoadSnapshot reads a YAML snapshot file and maps it into the data model.
// A decode or mapping failure wraps apperrors.ErrSnapshotMalformed.
func LoadSnapshot(path string) (domain.Snapshot, error) {
	var snap domain.Snapshot

	raw, err := os.ReadFile(path)
	if err != nil {
		return snap, fmt.Errorf("failed to read snapshot file %s: %w", path, err)
	}

	var file snapshotFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return snap, fmt.Errorf("%w: %v", apperrors.ErrSnapshotMalformed, err)
	}

	return mapSnapshot(file)
}

func mapSnapshot(file snapshotFile) (domain.Snapshot, error) {
	var snap domain.Snapshot
	var err error

	for _, r := range file.Currencies {
		snap.Currencies = append(snap.Currencies, domain.Currency{
			Code: r.Code, Symbol: r.Symbol, Name: r.Name, Precision: r.Precision,
		})
	}

	for _, r := range file.Offices {
		snap.Offices = append(snap.Offices, domain.Office{
			OfficeID: r.ID, Name: r.Name, CurrencyCode: r.Currency,
		})
	}

	for _, r := range file.Accounts {
		a := domain.Account{AccountID: r.ID, Code: r.Code, Name: r.Name, AccountType: domain.AccountType(r.Type)}
		if a.Balance, err = parseAmount("account", r.ID, "balance", r.Balance); err != nil {
			return snap, err
		}
		snap.Accounts = append(snap.Accounts, a)
	}

	for _, r := range file.JournalEntries {
		e := domain.JournalEntry{
			EntryID: r.ID, Reference: r.Reference, Description: r.Description,
			DebitAccount: r.DebitAccount, CreditAccount: r.CreditAccount,
			Status: domain.JournalStatus(r.Status),
		}
		if e.Amount, err = parseAmount("journal entry", r.ID, "amount", r.Amount); err != nil {
			return snap, err
		}
		if e.Date, err = parseDate("journal entry", r.ID, "date", r.Date); err != nil {
			return snap, err
		}
		snap.JournalEntries = append(snap.JournalEntries, e)
	}

	for _, r := range file.Expenses {
		e := domain.Expense{
			ExpenseID: r.ID, Category: r.Category, CurrencyCode: r.Currency,
			Office: r.Office, PaymentMethod: r.PaymentMethod,
		}
		if e.Amount, err = parseAmount("expense", r.ID, "amount", r.Amount); err != nil {
			return snap, err
		}
		if e.ExchangeRate, err = parseAmount("expense", r.ID, "exchangeRate", r.ExchangeRate); err != nil {
			return snap, err
		}
		if e.Date, err = parseDate("expense", r.ID, "date", r.Date); err != nil {
			return snap, err
		}
		snap.Expenses = append(snap.Expenses, e)
	}

	for _, r := range file.Bookings {
		b := domain.Booking{
			BookingID: r.ID, AgentRef: r.AgentRef, CurrencyCode: r.Currency,
			Status:       domain.BookingStatus(r.Status),
			AmendStatus:  domain.AmendStatus(r.AmendStatus),
			RefundStatus: domain.RefundStatus(r.RefundStatus),
			Origin:       r.Origin, Destination: r.Destination,
			PassengerCount: r.PassengerCount,
		}
		if b.TotalAmount, err = parseAmount("booking", r.ID, "totalAmount", r.TotalAmount); err != nil {
			return snap, err
		}
		if b.CreatedAt, err = parseDate("booking", r.ID, "createdAt", r.CreatedAt); err != nil {
			return snap, err
		}
		if r.TravelDate != "" {
			if b.TravelDate, err = parseDate("booking", r.ID, "travelDate", r.TravelDate); err != nil {
				return snap, err
			}
		}
		snap.Bookings = append(snap.Bookings, b)
	}

	for _, r := range file.Passengers {
		p := domain.Passenger{
			PassengerID: r.ID, BookingID: r.BookingID, Name: r.Name,
			TicketNumber: r.TicketNumber,
			Status:       domain.BookingStatus(r.Status),
			AmendStatus:  domain.AmendStatus(r.AmendStatus),
			RefundStatus: domain.RefundStatus(r.RefundStatus),
			FareType:     r.FareType,
		}
		if p.FareAmount, err = parseAmount("passenger", r.ID, "fareAmount", r.FareAmount); err != nil {
			return snap, err
		}
		snap.Passengers = append(snap.Passengers, p)
	}

	for _, r := range file.Invoices {
		inv := domain.Invoice{
			InvoiceID: r.ID, BookingID: r.BookingID, PassengerID: r.PassengerID,
			CurrencyCode: r.Currency,
			Status:       domain.InvoiceStatus(r.Status),
			ActionType:   domain.ActionType(r.ActionType),
		}
		if inv.Amount, err = parseAmount("invoice", r.ID, "amount", r.Amount); err != nil {
			return snap, err
		}
		if inv.Date, err = parseDate("invoice", r.ID, "date", r.Date); err != nil {
			return snap, err
		}
		if inv.DueDate, err = parseDate("invoice", r.ID, "dueDate", r.DueDate); err != nil {
			return snap, err
		}
		snap.Invoices = append(snap.Invoices, inv)
	}

	for _, r := range file.Payments {
		p := domain.Payment{
			PaymentID: r.ID, InvoiceID: r.InvoiceID, BookingID: r.BookingID,
			PassengerID: r.PassengerID, CurrencyCode: r.Currency,
			Method: r.Method, Status: domain.PaymentStatus(r.Status),
			Reference: r.Reference,
		}
		if p.Amount, err = parseAmount("payment", r.ID, "amount", r.Amount); err != nil {
			return snap, err
		}
		if p.Date, err = parseDate("payment", r.ID, "date", r.Date); err != nil {
			return snap, err
		}
		snap.Payments = append(snap.Payments, p)
	}

	return snap, nil
}

func parseAmount(kind, id, field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %s has invalid %s %q", apperrors.ErrSnapshotMalformed, kind, id, field, value)
	}
	return d, nil
}

func parseDate(kind, id, field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %s has invalid %s %q", apperrors.ErrSnapshotMalformed, kind, id, field, value)
	}
	return t, nil
}
