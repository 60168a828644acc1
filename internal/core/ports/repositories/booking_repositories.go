package repositories

import (
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
)

// BookingReader defines read operations over the booking collection.
type BookingReader interface {
	// FindBookingByID retrieves a booking by its id.
	FindBookingByID(bookingID string) *domain.Booking

	// ListBookings retrieves all bookings in seed order.
	ListBookings() []domain.Booking
}

// PassengerReader defines read operations over the passenger collection.
type PassengerReader interface {
	// FindPassengerByID retrieves a passenger by its id.
	FindPassengerByID(passengerID string) *domain.Passenger

	// ListPassengersByBooking retrieves the passengers of one booking in
	// seed order.
	ListPassengersByBooking(bookingID string) []domain.Passenger

	// ListPassengers retrieves all passengers in seed order.
	ListPassengers() []domain.Passenger
}

// InvoiceReader defines read operations over the invoice collection.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice by its id.
	FindInvoiceByID(invoiceID string) *domain.Invoice

	// ListInvoicesByBooking retrieves every invoice raised against a
	// booking, including passenger-level ones, in seed order.
	ListInvoicesByBooking(bookingID string) []domain.Invoice

	// ListInvoicesByPassenger retrieves every invoice raised against a
	// single passenger in seed order.
	ListInvoicesByPassenger(passengerID string) []domain.Invoice

	// ListInvoices retrieves all invoices in seed order.
	ListInvoices() []domain.Invoice
}

// PaymentReader defines read operations over the payment collection.
type PaymentReader interface {
	// ListPaymentsByInvoice retrieves the payments settling one invoice in
	// seed order.
	ListPaymentsByInvoice(invoiceID string) []domain.Payment

	// ListPayments retrieves all payments in seed order.
	ListPayments() []domain.Payment
}
