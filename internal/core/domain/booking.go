package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the ticketing lifecycle state of a booking or passenger.
type BookingStatus string

const (
	BookingConfirmed     BookingStatus = "CONFIRMED"
	BookingTicketed      BookingStatus = "TICKETED"
	BookingCancelled     BookingStatus = "CANCELLED"
	BookingAutoCancelled BookingStatus = "AUTO_CANCELLED"
	BookingVoided        BookingStatus = "VOIDED"
)

// AmendStatus tracks amendments applied after ticketing.
type AmendStatus string

const (
	AmendNone        AmendStatus = "NONE"
	Amended          AmendStatus = "AMENDED"
	AmendedDeparture AmendStatus = "DEP_AMENDED"
	AmendedReturn    AmendStatus = "RET_AMENDED"
	AmendedName      AmendStatus = "NAME_AMENDED"
)

// RefundStatus tracks the refund pipeline for a booking or passenger.
type RefundStatus string

const (
	RefundNone      RefundStatus = "NONE"
	RefundApplied   RefundStatus = "REFUND_APPLIED"
	RefundInProcess RefundStatus = "REFUND_IN_PROCESS"
	Refunded        RefundStatus = "REFUNDED"
	RefundRejected  RefundStatus = "REFUND_REJECTED"
)

// IsClear reports whether no refund has ever been recorded.
// The empty string and NONE are equivalent: seeded records may carry either.
func (s RefundStatus) IsClear() bool {
	return s == "" || s == RefundNone
}

// Booking represents a reservation made by an agent covering one or more
// passengers and a total fare. Booking state is tracked independently of
// passenger state; the caller keeps the two consistent.
type Booking struct {
	BookingID      string          `json:"bookingID" validate:"required"`
	AgentRef       string          `json:"agentRef" validate:"required"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	CurrencyCode   string          `json:"currencyCode" validate:"required"`
	Status         BookingStatus   `json:"status" validate:"required"`
	AmendStatus    AmendStatus     `json:"amendStatus"`
	RefundStatus   RefundStatus    `json:"refundStatus"`
	CreatedAt      time.Time       `json:"createdAt" validate:"required"`
	Origin         string          `json:"origin"`
	Destination    string          `json:"destination"`
	TravelDate     time.Time       `json:"travelDate"`
	PassengerCount int             `json:"passengerCount"`
}

// DisplayMetadata carries presentation-only attributes that accompany a
// booking in list views but are not part of the booking record itself.
type DisplayMetadata struct {
	AgentName  string `json:"agentName"`
	OfficeName string `json:"officeName"`
}

// BookingView composes a Booking with its display metadata for the UI layer.
type BookingView struct {
	Booking
	Display DisplayMetadata `json:"display"`
}

// IsActive reports whether the booking belongs in the active list view:
// confirmed or ticketed, with no refund recorded.
func (b Booking) IsActive() bool {
	if b.Status != BookingConfirmed && b.Status != BookingTicketed {
		return false
	}
	return b.RefundStatus.IsClear()
}

// IsCompleted reports whether the booking has been ticketed and fully refunded.
func (b Booking) IsCompleted() bool {
	return b.Status == BookingTicketed && b.RefundStatus == Refunded
}

// IsCancelled reports whether the booking reached any terminal cancelled state.
func (b Booking) IsCancelled() bool {
	switch b.Status {
	case BookingCancelled, BookingAutoCancelled, BookingVoided:
		return true
	}
	return false
}

// IsRefundable reports whether the booking's status fields permit a new
// refund request. A previously rejected refund may be retried.
func (b Booking) IsRefundable() bool {
	if b.Status != BookingTicketed {
		return false
	}
	return b.RefundStatus.IsClear() || b.RefundStatus == RefundRejected
}
