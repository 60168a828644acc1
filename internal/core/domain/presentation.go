package domain

// StatusVariant is the fixed display category a status value maps to.
// The UI layer resolves each variant to its own styling.
type StatusVariant string

const (
	VariantSuccess     StatusVariant = "success"
	VariantPending     StatusVariant = "pending"
	VariantWarning     StatusVariant = "warning"
	VariantDanger      StatusVariant = "danger"
	VariantDestructive StatusVariant = "destructive"
	VariantNeutral     StatusVariant = "neutral"
)

// Variant maps a booking status to its display category.
func (s BookingStatus) Variant() StatusVariant {
	switch s {
	case BookingTicketed:
		return VariantSuccess
	case BookingConfirmed:
		return VariantPending
	case BookingCancelled, BookingAutoCancelled, BookingVoided:
		return VariantDestructive
	}
	return VariantNeutral
}

// Variant maps an amend status to its display category.
func (s AmendStatus) Variant() StatusVariant {
	switch s {
	case Amended, AmendedDeparture, AmendedReturn, AmendedName:
		return VariantWarning
	}
	return VariantNeutral
}

// Variant maps a refund status to its display category.
func (s RefundStatus) Variant() StatusVariant {
	switch s {
	case RefundApplied, RefundInProcess:
		return VariantPending
	case Refunded:
		return VariantSuccess
	case RefundRejected:
		return VariantDanger
	}
	return VariantNeutral
}
