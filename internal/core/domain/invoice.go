package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the settlement state of an invoice.
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "Paid"
	InvoicePending InvoiceStatus = "Pending"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

// ActionType names the billable event an invoice was raised for.
type ActionType string

const (
	ActionTicket ActionType = "TKT"
	ActionAmend  ActionType = "AMD"
	ActionRefund ActionType = "RFD"
)

// Invoice represents a billable amount tied to a booking, or to a single
// passenger when PassengerID is set. Booking-level invoices have an empty
// PassengerID.
type Invoice struct {
	InvoiceID    string          `json:"invoiceID" validate:"required"`
	BookingID    string          `json:"bookingID" validate:"required"`
	PassengerID  string          `json:"passengerID"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode" validate:"required"`
	Status       InvoiceStatus   `json:"status" validate:"required"`
	ActionType   ActionType      `json:"actionType" validate:"required"`
	Date         time.Time       `json:"date" validate:"required"`
	DueDate      time.Time       `json:"dueDate" validate:"required"`
}
