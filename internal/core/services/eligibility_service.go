package services

import (
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
	portsrepo "github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/ports/repositories"
	portssvc "github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/ports/services"
)

// eligibilityService decides refund eligibility over the chain
// booking -> passenger -> invoice -> payment and performs the legal state
// transitions. Inputs are assumed shape-valid (the validation engine runs
// first); only business state is inspected here. Every transition is a
// functional update: the service returns copies and never touches the
// caller's records or slices.
type eligibilityService struct {
	invoices portsrepo.InvoiceReader
	payments portsrepo.PaymentReader
}

// NewEligibilityService creates the eligibility engine over the given readers.
func NewEligibilityService(invoices portsrepo.InvoiceReader, payments portsrepo.PaymentReader) portssvc.EligibilitySvcFacade {
	return &eligibilityService{
		invoices: invoices,
		payments: payments,
	}
}

var _ portssvc.EligibilitySvcFacade = (*eligibilityService)(nil)

// IsBookingRefundEligible reports whether a new refund request may be raised
// for the booking. All four conditions must hold, in order:
//  1. the booking is ticketed;
//  2. no refund is applied, in process or completed (a rejected refund may
//     be retried);
//  3. at least one invoice exists for the booking;
//  4. every one of those invoices has at least one completed payment.
func (s *eligibilityService) IsBookingRefundEligible(booking domain.Booking) bool {
	if !booking.IsRefundable() {
		return false
	}
	return s.allInvoicesPaid(s.invoices.ListInvoicesByBooking(booking.BookingID), nil)
}

// IsPassengerRefundEligible applies the booking rule at passenger
// granularity, filtering invoices by passenger id.
func (s *eligibilityService) IsPassengerRefundEligible(passenger domain.Passenger) bool {
	if passenger.Status != domain.BookingTicketed {
		return false
	}
	if !passenger.RefundStatus.IsClear() && passenger.RefundStatus != domain.RefundRejected {
		return false
	}
	return s.allInvoicesPaid(s.invoices.ListInvoicesByPassenger(passenger.PassengerID), nil)
}

// ApplyForRefund returns a copy of the booking with the refund marked as
// applied, or nil when the booking is not eligible. No other field changes.
func (s *eligibilityService) ApplyForRefund(booking domain.Booking) *domain.Booking {
	if !s.IsBookingRefundEligible(booking) {
		return nil
	}
	updated := booking
	updated.RefundStatus = domain.RefundApplied
	return &updated
}

// ApplyPassengerRefund returns a copy of the passenger with the refund
// marked as applied, or nil when the passenger is not eligible.
func (s *eligibilityService) ApplyPassengerRefund(passenger domain.Passenger) *domain.Passenger {
	if !s.IsPassengerRefundEligible(passenger) {
		return nil
	}
	updated := passenger
	updated.RefundStatus = domain.RefundApplied
	return &updated
}

// HandlePaymentCompleted reacts to a payment reaching the completed state.
// The payment argument carries the caller's fresh view and takes precedence
// over whatever the data context still holds for that payment id. When the
// payment settles the last open invoice of a ticketed passenger with a clear
// refund status, the passenger's refund status is re-marked NONE in a copied
// slice; the same applies to the owning booking. Re-marking NONE only
// confirms the eligibility bookkeeping: there is no distinguishable
// "eligible" state in the refund pipeline.
func (s *eligibilityService) HandlePaymentCompleted(payment domain.Payment, bookings []domain.Booking, passengers []domain.Passenger) domain.RefundEligibilityDelta {
	var delta domain.RefundEligibilityDelta

	invoice := s.invoices.FindInvoiceByID(payment.InvoiceID)
	if invoice == nil {
		return delta
	}

	if invoice.PassengerID != "" {
		for i, p := range passengers {
			if p.PassengerID != invoice.PassengerID {
				continue
			}
			if p.Status == domain.BookingTicketed && p.RefundStatus.IsClear() &&
				s.allInvoicesPaid(s.invoices.ListInvoicesByPassenger(p.PassengerID), &payment) {
				updated := append([]domain.Passenger(nil), passengers...)
				p.RefundStatus = domain.RefundNone
				updated[i] = p
				delta.UpdatedPassengers = updated
			}
			break
		}
	}

	for i, b := range bookings {
		if b.BookingID != invoice.BookingID {
			continue
		}
		if b.Status == domain.BookingTicketed && b.RefundStatus.IsClear() &&
			s.allInvoicesPaid(s.invoices.ListInvoicesByBooking(b.BookingID), &payment) {
			updated := append([]domain.Booking(nil), bookings...)
			b.RefundStatus = domain.RefundNone
			updated[i] = b
			delta.UpdatedBookings = updated
		}
		break
	}

	return delta
}

// allInvoicesPaid reports whether the invoice set is non-empty and every
// invoice in it has at least one completed payment. A nil override checks
// the data context as-is; a non-nil override substitutes the caller's view
// of that one payment.
func (s *eligibilityService) allInvoicesPaid(invoices []domain.Invoice, override *domain.Payment) bool {
	if len(invoices) == 0 {
		return false
	}
	for _, inv := range invoices {
		if !s.invoiceSettled(inv.InvoiceID, override) {
			return false
		}
	}
	return true
}

func (s *eligibilityService) invoiceSettled(invoiceID string, override *domain.Payment) bool {
	if override != nil && override.InvoiceID == invoiceID && override.Status == domain.PaymentCompleted {
		return true
	}
	for _, p := range s.payments.ListPaymentsByInvoice(invoiceID) {
		if override != nil && p.PaymentID == override.PaymentID {
			// The stored row is stale relative to the caller's view.
			continue
		}
		if p.Status == domain.PaymentCompleted {
			return true
		}
	}
	return false
}
