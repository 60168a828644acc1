package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "Completed"
	PaymentPending   PaymentStatus = "Pending"
)

// Payment represents a settlement record against an invoice.
type Payment struct {
	PaymentID    string          `json:"paymentID" validate:"required"`
	InvoiceID    string          `json:"invoiceID" validate:"required"`
	BookingID    string          `json:"bookingID" validate:"required"`
	PassengerID  string          `json:"passengerID"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode" validate:"required"`
	Method       string          `json:"method" validate:"required"`
	Status       PaymentStatus   `json:"status" validate:"required"`
	Date         time.Time       `json:"date" validate:"required"`
	Reference    string          `json:"reference"`
}
