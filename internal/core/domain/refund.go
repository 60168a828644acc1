package domain

// RefundEligibilityDelta carries the collections changed by a payment
// completion. Only the collections that actually changed are set; the
// caller commits them back into the data context.
type RefundEligibilityDelta struct {
	UpdatedBookings   []Booking   `json:"updatedBookings,omitempty"`
	UpdatedPassengers []Passenger `json:"updatedPassengers,omitempty"`
}

// Empty reports whether the payment completion changed nothing.
func (d RefundEligibilityDelta) Empty() bool {
	return d.UpdatedBookings == nil && d.UpdatedPassengers == nil
}
