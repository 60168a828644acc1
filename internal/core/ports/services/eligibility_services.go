package services

import (
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
)

// EligibilitySvcFacade decides, from the chain booking -> passenger ->
// invoice -> payment, whether a refund may be requested, and performs the
// legal state transitions. Transitions are functional updates: inputs are
// never mutated and the caller commits the returned copies.
type EligibilitySvcFacade interface {
	// IsBookingRefundEligible reports whether a new refund request may be
	// raised for the booking: it must be ticketed, carry no in-flight or
	// completed refund, have at least one invoice, and every invoice must
	// have a completed payment.
	IsBookingRefundEligible(booking domain.Booking) bool

	// IsPassengerRefundEligible applies the same rule at passenger
	// granularity.
	IsPassengerRefundEligible(passenger domain.Passenger) bool

	// ApplyForRefund returns a copy of the booking with the refund marked
	// as applied, or nil when the booking is not eligible.
	ApplyForRefund(booking domain.Booking) *domain.Booking

	// ApplyPassengerRefund returns a copy of the passenger with the refund
	// marked as applied, or nil when the passenger is not eligible.
	ApplyPassengerRefund(passenger domain.Passenger) *domain.Passenger

	// HandlePaymentCompleted reacts to a payment reaching the completed
	// state: when the payment settles the last open invoice of a ticketed
	// passenger or booking, the affected record's refund bookkeeping is
	// refreshed in a copied collection. The delta is empty when nothing
	// changed.
	HandlePaymentCompleted(payment domain.Payment, bookings []domain.Booking, passengers []domain.Passenger) domain.RefundEligibilityDelta
}
