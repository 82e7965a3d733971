package model_test

import (
	"errors"
	"testing"
	"time"

	"riascal/internal/model"
)

func TestParseServiceType(t *testing.T) {
	tests := []struct {
		in   string
		want model.ServiceType
	}{
		{"akad", model.ServiceAkad},
		{"resepsi", model.ServiceResepsi},
		{"wisuda", model.ServiceWisuda},
		{"", model.ServiceAkad},
		{"prewedding", model.ServiceAkad},
		{"AKAD", model.ServiceAkad}, // matching is case-sensitive; unknown falls back
	}
	for _, tt := range tests {
		if got := model.ParseServiceType(tt.in); got != tt.want {
			t.Errorf("ParseServiceType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParsePaymentStatus(t *testing.T) {
	tests := []struct {
		in   string
		want model.PaymentStatus
	}{
		{"paid", model.PaymentPaid},
		{"partial", model.PaymentPartial},
		{"pending", model.PaymentPending},
		{"overdue", model.PaymentOverdue},
		{"", model.PaymentPending},
		{"refunded", model.PaymentPending},
	}
	for _, tt := range tests {
		if got := model.ParsePaymentStatus(tt.in); got != tt.want {
			t.Errorf("ParsePaymentStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestServiceTypeLabel(t *testing.T) {
	if got := model.ServiceWisuda.Label(); got != "Wisuda" {
		t.Errorf("Label() = %q, want Wisuda", got)
	}
	if got := model.ServiceAkad.Label(); got != "Akad Nikah" {
		t.Errorf("Label() = %q, want Akad Nikah", got)
	}
}

func TestValidate(t *testing.T) {
	valid := model.EventRecord{
		ClientName: "Sari",
		Service:    model.ServiceAkad,
		Date:       time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC),
		Time:       "09:00",
		Payment:    model.PaymentPending,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid booking rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*model.EventRecord)
		want   error
	}{
		{"empty client", func(e *model.EventRecord) { e.ClientName = "" }, model.ErrClientNameRequired},
		{"zero date", func(e *model.EventRecord) { e.Date = time.Time{} }, model.ErrDateRequired},
		{"bad clock", func(e *model.EventRecord) { e.Time = "9am" }, model.ErrBadClock},
		{"unpadded clock", func(e *model.EventRecord) { e.Time = "9:00" }, model.ErrBadClock},
		{"negative amount", func(e *model.EventRecord) { e.Amount = -1 }, model.ErrNegativeAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := valid
			tt.mutate(&ev)
			if err := ev.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
