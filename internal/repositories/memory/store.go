// Package memory implements the data context: the sole process-wide state,
// an in-memory snapshot of every collection seeded once at construction.
// String-keyed cross references (account names, currency codes, office
// names) are indexed at construction so validation stays O(1) per lookup.
package memory

import (
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
	portsrepo "github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/ports/repositories"
)

// Store holds all reference collections and their lookup indexes. It is
// read-only after construction; state transitions produced by the engines
// are committed by calling Replace* with the returned copies.
type Store struct {
	currencies     []domain.Currency
	offices        []domain.Office
	accounts       []domain.Account
	journalEntries []domain.JournalEntry
	expenses       []domain.Expense
	bookings       []domain.Booking
	passengers     []domain.Passenger
	invoices       []domain.Invoice
	payments       []domain.Payment

	currencyByCode      map[string]int
	officeByID          map[string]int
	officeByName        map[string]int
	accountByName       map[string]int
	bookingByID         map[string]int
	passengerByID       map[string]int
	invoiceByID         map[string]int
	invoicesByBooking   map[string][]int
	invoicesByPassenger map[string][]int
	paymentsByInvoice   map[string][]int
	passengersByBooking map[string][]int
}

// Ensure Store satisfies the full reader surface.
var _ portsrepo.ReferenceReader = (*Store)(nil)

// NewStore seeds a data context from a snapshot and builds the key indexes.
// The snapshot slices are copied; the caller may reuse them freely.
func NewStore(snap domain.Snapshot) *Store {
	s := &Store{
		currencies:     append([]domain.Currency(nil), snap.Currencies...),
		offices:        append([]domain.Office(nil), snap.Offices...),
		accounts:       append([]domain.Account(nil), snap.Accounts...),
		journalEntries: append([]domain.JournalEntry(nil), snap.JournalEntries...),
		expenses:       append([]domain.Expense(nil), snap.Expenses...),
		bookings:       append([]domain.Booking(nil), snap.Bookings...),
		passengers:     append([]domain.Passenger(nil), snap.Passengers...),
		invoices:       append([]domain.Invoice(nil), snap.Invoices...),
		payments:       append([]domain.Payment(nil), snap.Payments...),
	}
	s.reindex()
	return s
}

func (s *Store) reindex() {
	s.currencyByCode = make(map[string]int, len(s.currencies))
	for i, c := range s.currencies {
		s.currencyByCode[c.Code] = i
	}

	s.officeByID = make(map[string]int, len(s.offices))
	s.officeByName = make(map[string]int, len(s.offices))
	for i, o := range s.offices {
		s.officeByID[o.OfficeID] = i
		s.officeByName[o.Name] = i
	}

	s.accountByName = make(map[string]int, len(s.accounts))
	for i, a := range s.accounts {
		s.accountByName[a.Name] = i
	}

	s.bookingByID = make(map[string]int, len(s.bookings))
	for i, b := range s.bookings {
		s.bookingByID[b.BookingID] = i
	}

	s.passengerByID = make(map[string]int, len(s.passengers))
	s.passengersByBooking = make(map[string][]int)
	for i, p := range s.passengers {
		s.passengerByID[p.PassengerID] = i
		s.passengersByBooking[p.BookingID] = append(s.passengersByBooking[p.BookingID], i)
	}

	s.invoiceByID = make(map[string]int, len(s.invoices))
	s.invoicesByBooking = make(map[string][]int)
	s.invoicesByPassenger = make(map[string][]int)
	for i, inv := range s.invoices {
		s.invoiceByID[inv.InvoiceID] = i
		s.invoicesByBooking[inv.BookingID] = append(s.invoicesByBooking[inv.BookingID], i)
		if inv.PassengerID != "" {
			s.invoicesByPassenger[inv.PassengerID] = append(s.invoicesByPassenger[inv.PassengerID], i)
		}
	}

	s.paymentsByInvoice = make(map[string][]int)
	for i, p := range s.payments {
		s.paymentsByInvoice[p.InvoiceID] = append(s.paymentsByInvoice[p.InvoiceID], i)
	}
}

// FindCurrencyByCode implements portsrepo.CurrencyReader.
func (s *Store) FindCurrencyByCode(code string) *domain.Currency {
	if i, ok := s.currencyByCode[code]; ok {
		c := s.currencies[i]
		return &c
	}
	return nil
}

// ListCurrencies implements portsrepo.CurrencyReader.
func (s *Store) ListCurrencies() []domain.Currency {
	return append([]domain.Currency(nil), s.currencies...)
}

// FindOfficeByID implements portsrepo.OfficeReader.
func (s *Store) FindOfficeByID(officeID string) *domain.Office {
	if i, ok := s.officeByID[officeID]; ok {
		o := s.offices[i]
		return &o
	}
	return nil
}

// FindOfficeByName implements portsrepo.OfficeReader.
func (s *Store) FindOfficeByName(name string) *domain.Office {
	if i, ok := s.officeByName[name]; ok {
		o := s.offices[i]
		return &o
	}
	return nil
}

// ListOffices implements portsrepo.OfficeReader.
func (s *Store) ListOffices() []domain.Office {
	return append([]domain.Office(nil), s.offices...)
}

// FindAccountByName implements portsrepo.AccountReader.
func (s *Store) FindAccountByName(name string) *domain.Account {
	if i, ok := s.accountByName[name]; ok {
		a := s.accounts[i]
		return &a
	}
	return nil
}

// ListAccounts implements portsrepo.AccountReader.
func (s *Store) ListAccounts() []domain.Account {
	return append([]domain.Account(nil), s.accounts...)
}

// ListJournalEntries implements portsrepo.JournalReader.
func (s *Store) ListJournalEntries() []domain.JournalEntry {
	return append([]domain.JournalEntry(nil), s.journalEntries...)
}

// ListExpenses implements portsrepo.ExpenseReader.
func (s *Store) ListExpenses() []domain.Expense {
	return append([]domain.Expense(nil), s.expenses...)
}

// FindBookingByID implements portsrepo.BookingReader.
func (s *Store) FindBookingByID(bookingID string) *domain.Booking {
	if i, ok := s.bookingByID[bookingID]; ok {
		b := s.bookings[i]
		return &b
	}
	return nil
}

// ListBookings implements portsrepo.BookingReader.
func (s *Store) ListBookings() []domain.Booking {
	return append([]domain.Booking(nil), s.bookings...)
}

// FindPassengerByID implements portsrepo.PassengerReader.
func (s *Store) FindPassengerByID(passengerID string) *domain.Passenger {
	if i, ok := s.passengerByID[passengerID]; ok {
		p := s.passengers[i]
		return &p
	}
	return nil
}

// ListPassengersByBooking implements portsrepo.PassengerReader.
func (s *Store) ListPassengersByBooking(bookingID string) []domain.Passenger {
	idx := s.passengersByBooking[bookingID]
	out := make([]domain.Passenger, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.passengers[i])
	}
	return out
}

// ListPassengers implements portsrepo.PassengerReader.
func (s *Store) ListPassengers() []domain.Passenger {
	return append([]domain.Passenger(nil), s.passengers...)
}

// FindInvoiceByID implements portsrepo.InvoiceReader.
func (s *Store) FindInvoiceByID(invoiceID string) *domain.Invoice {
	if i, ok := s.invoiceByID[invoiceID]; ok {
		inv := s.invoices[i]
		return &inv
	}
	return nil
}

// ListInvoicesByBooking implements portsrepo.InvoiceReader.
func (s *Store) ListInvoicesByBooking(bookingID string) []domain.Invoice {
	idx := s.invoicesByBooking[bookingID]
	out := make([]domain.Invoice, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.invoices[i])
	}
	return out
}

// ListInvoicesByPassenger implements portsrepo.InvoiceReader.
func (s *Store) ListInvoicesByPassenger(passengerID string) []domain.Invoice {
	idx := s.invoicesByPassenger[passengerID]
	out := make([]domain.Invoice, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.invoices[i])
	}
	return out
}

// ListInvoices implements portsrepo.InvoiceReader.
func (s *Store) ListInvoices() []domain.Invoice {
	return append([]domain.Invoice(nil), s.invoices...)
}

// ListPaymentsByInvoice implements portsrepo.PaymentReader.
func (s *Store) ListPaymentsByInvoice(invoiceID string) []domain.Payment {
	idx := s.paymentsByInvoice[invoiceID]
	out := make([]domain.Payment, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.payments[i])
	}
	return out
}

// ListPayments implements portsrepo.PaymentReader.
func (s *Store) ListPayments() []domain.Payment {
	return append([]domain.Payment(nil), s.payments...)
}

// ReplaceBookings commits an updated booking collection, as returned by an
// eligibility transition, and rebuilds the affected indexes.
func (s *Store) ReplaceBookings(bookings []domain.Booking) {
	s.bookings = append([]domain.Booking(nil), bookings...)
	s.reindex()
}

// ReplacePassengers commits an updated passenger collection.
func (s *Store) ReplacePassengers(passengers []domain.Passenger) {
	s.passengers = append([]domain.Passenger(nil), passengers...)
	s.reindex()
}

// ReplacePayments commits an updated payment collection, typically after a
// payment transitions to completed.
func (s *Store) ReplacePayments(payments []domain.Payment) {
	s.payments = append([]domain.Payment(nil), payments...)
	s.reindex()
}
