// Package store is the booking data source: an in-memory repository
// holding the session's EventRecord collection. Mutations commit
// immediately in process memory (last-write-wins, no durability) and
// log the intent, the way the original booking screen did. A durable
// backend would implement the same operations.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	appLog "riascal/internal/log"
	"riascal/internal/model"
)

var (
	ErrNotFound = errors.New("booking not found")
	ErrExists   = errors.New("booking already exists")
)

// Store keeps bookings by ID plus their insertion order. List order is
// load-bearing: the calendar core's filters preserve relative input
// order, so the store must hand events out deterministically.
type Store struct {
	mu    sync.RWMutex
	byID  map[string]model.EventRecord
	order []string
}

func New() *Store {
	return &Store{
		byID: make(map[string]model.EventRecord),
	}
}

// List returns a fresh snapshot of all bookings in insertion order.
// Callers may keep or filter the slice freely; it aliases nothing.
func (s *Store) List(_ context.Context) []model.EventRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.EventRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Get returns a single booking by ID.
func (s *Store) Get(_ context.Context, id string) (model.EventRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.byID[id]
	if !ok {
		return model.EventRecord{}, ErrNotFound
	}
	return ev, nil
}

// Create validates and stores a new booking, assigning a UUID when the
// caller did not provide an ID.
func (s *Store) Create(_ context.Context, ev model.EventRecord) (model.EventRecord, error) {
	if err := ev.Validate(); err != nil {
		return model.EventRecord{}, err
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[ev.ID]; exists {
		return model.EventRecord{}, ErrExists
	}
	s.byID[ev.ID] = ev
	s.order = append(s.order, ev.ID)

	appLog.Info("booking created",
		"id", ev.ID,
		"client", ev.ClientName,
		"service", ev.Service,
		"date", ev.Date.Format(model.DateFormat),
		"time", ev.Time,
	)
	return ev, nil
}

// Update replaces an existing booking wholesale. The booking keeps its
// position in insertion order.
func (s *Store) Update(_ context.Context, ev model.EventRecord) (model.EventRecord, error) {
	if err := ev.Validate(); err != nil {
		return model.EventRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[ev.ID]; !ok {
		return model.EventRecord{}, ErrNotFound
	}
	s.byID[ev.ID] = ev

	appLog.Info("booking updated", "id", ev.ID, "client", ev.ClientName)
	return ev, nil
}

// Delete removes a booking by ID.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	appLog.Info("booking deleted", "id", id)
	return nil
}

// Seed installs the demo fixture bookings used when no real data source
// is wired up. IDs are fixed so repeated seeds are idempotent.
func (s *Store) Seed(loc *time.Location) {
	if loc == nil {
		loc = time.Local
	}
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}

	fixtures := []model.EventRecord{
		{
			ID:         "demo-1",
			ClientName: "Sari & Bima",
			Service:    model.ServiceAkad,
			Date:       day(2025, time.November, 22),
			Time:       "09:00",
			Location:   "Gedung Serbaguna Cempaka",
			Notes:      "Paket rias pengantin + 2 keluarga",
			Amount:     2500000,
			Payment:    model.PaymentPartial,
		},
		{
			ID:         "demo-2",
			ClientName: "Sari & Bima",
			Service:    model.ServiceResepsi,
			Date:       day(2025, time.November, 22),
			Time:       "09:30",
			Location:   "Gedung Serbaguna Cempaka",
			Amount:     3000000,
			Payment:    model.PaymentPending,
		},
		{
			ID:         "demo-3",
			ClientName: "Putri Ayu",
			Service:    model.ServiceWisuda,
			Date:       day(2025, time.November, 25),
			Time:       "07:00",
			Location:   "Auditorium Universitas",
			Notes:      "Rias wisuda + hijab styling",
			Amount:     350000,
			Payment:    model.PaymentPaid,
		},
		{
			ID:         "demo-4",
			ClientName: "Keluarga Rahman",
			Service:    model.ServiceAkad,
			Date:       day(2025, time.December, 6),
			Time:       "08:00",
			Location:   "Rumah mempelai, Jl. Melati 4",
			Amount:     1800000,
			Payment:    model.PaymentPending,
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ev := range fixtures {
		if _, exists := s.byID[ev.ID]; exists {
			continue
		}
		s.byID[ev.ID] = ev
		s.order = append(s.order, ev.ID)
	}
	appLog.Info("demo bookings seeded", "count", len(fixtures))
}
