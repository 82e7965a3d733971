package model

import (
	"errors"
	"time"
)

// Time layouts shared by every package that parses booking dates/times.
const (
	ClockFormat = "15:04"      // HH:MM, 24-hour
	DateFormat  = "2006-01-02" // YYYY-MM-DD
)

// ServiceType classifies what kind of appointment a booking is.
// The set is closed; anything unrecognized degrades to ServiceAkad so
// that a booking from an older or foreign payload still renders.
type ServiceType string

const (
	ServiceAkad    ServiceType = "akad"
	ServiceResepsi ServiceType = "resepsi"
	ServiceWisuda  ServiceType = "wisuda"
)

// ParseServiceType maps arbitrary input onto the closed set, falling
// back to ServiceAkad for unknown or empty values.
func ParseServiceType(s string) ServiceType {
	switch ServiceType(s) {
	case ServiceAkad, ServiceResepsi, ServiceWisuda:
		return ServiceType(s)
	default:
		return ServiceAkad
	}
}

// Label returns the customer-facing Indonesian name of the service.
func (s ServiceType) Label() string {
	switch s {
	case ServiceResepsi:
		return "Resepsi"
	case ServiceWisuda:
		return "Wisuda"
	default:
		return "Akad Nikah"
	}
}

// PaymentStatus tracks how much of the booking fee has been settled.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPending PaymentStatus = "pending"
	PaymentOverdue PaymentStatus = "overdue"
)

// ParsePaymentStatus maps arbitrary input onto the closed set, falling
// back to PaymentPending for unknown or empty values.
func ParsePaymentStatus(s string) PaymentStatus {
	switch PaymentStatus(s) {
	case PaymentPaid, PaymentPartial, PaymentPending, PaymentOverdue:
		return PaymentStatus(s)
	default:
		return PaymentPending
	}
}

// EventRecord is a single makeup-appointment booking. Date carries the
// calendar day only (clock fields zeroed); the time of day lives in
// Time as an HH:MM string, naive local like the rest of the system.
type EventRecord struct {
	ID         string
	ClientName string
	Service    ServiceType
	Date       time.Time
	Time       string
	Location   string
	Notes      string
	Amount     int64 // whole Rupiah; 0 means not quoted yet
	Payment    PaymentStatus
}

var (
	ErrClientNameRequired = errors.New("client name is required")
	ErrDateRequired       = errors.New("booking date is required")
	ErrBadClock           = errors.New("booking time must be HH:MM")
	ErrNegativeAmount     = errors.New("amount must not be negative")
)

// Validate checks the fields the store refuses to persist without.
// It does not touch Service/Payment; those always parse via fallback.
func (e EventRecord) Validate() error {
	if e.ClientName == "" {
		return ErrClientNameRequired
	}
	if e.Date.IsZero() {
		return ErrDateRequired
	}
	// time.Parse alone would accept unpadded hours like "9:00"; the
	// slot binner requires the padded form, so length is checked too.
	if len(e.Time) != len(ClockFormat) {
		return ErrBadClock
	}
	if _, err := time.Parse(ClockFormat, e.Time); err != nil {
		return ErrBadClock
	}
	if e.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}
