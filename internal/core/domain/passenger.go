package domain

import (
	"github.com/shopspring/decimal"
)

// Passenger represents an individual traveler within a booking, with their
// own fare, ticket and independently tracked status fields.
type Passenger struct {
	PassengerID  string          `json:"passengerID"`
	BookingID    string          `json:"bookingID"` // FK -> Booking.BookingID
	Name         string          `json:"name"`
	TicketNumber string          `json:"ticketNumber"`
	Status       BookingStatus   `json:"status"`
	AmendStatus  AmendStatus     `json:"amendStatus"`
	RefundStatus RefundStatus    `json:"refundStatus"`
	FareAmount   decimal.Decimal `json:"fareAmount"`
	FareType     string          `json:"fareType"`
}
