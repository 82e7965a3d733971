package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"riascal/internal/model"
	"riascal/internal/store"
)

func fixture(id, client string) model.EventRecord {
	return model.EventRecord{
		ID:         id,
		ClientName: client,
		Service:    model.ServiceAkad,
		Date:       time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC),
		Time:       "09:00",
		Payment:    model.PaymentPending,
	}
}

func TestCreateAssignsID(t *testing.T) {
	s := store.New()
	created, err := s.Create(context.Background(), fixture("", "Sari"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("Create did not assign an ID")
	}
}

func TestCreateRejectsInvalid(t *testing.T) {
	s := store.New()
	bad := fixture("", "")
	if _, err := s.Create(context.Background(), bad); !errors.Is(err, model.ErrClientNameRequired) {
		t.Errorf("Create(no client) err = %v", err)
	}
}

func TestCreateDuplicate(t *testing.T) {
	s := store.New()
	ctx := context.Background()
	if _, err := s.Create(ctx, fixture("a", "Sari")); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := s.Create(ctx, fixture("a", "Sari")); !errors.Is(err, store.ErrExists) {
		t.Errorf("duplicate create err = %v, want ErrExists", err)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := store.New()
	ctx := context.Background()
	for _, id := range []string{"c", "a", "b"} {
		if _, err := s.Create(ctx, fixture(id, "Client "+id)); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	got := s.List(ctx)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"c", "a", "b"} {
		if got[i].ID != want {
			t.Errorf("List()[%d].ID = %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestListReturnsSnapshot(t *testing.T) {
	s := store.New()
	ctx := context.Background()
	if _, err := s.Create(ctx, fixture("a", "Sari")); err != nil {
		t.Fatal(err)
	}

	snap := s.List(ctx)
	snap[0].ClientName = "mutated"

	if got := s.List(ctx)[0].ClientName; got != "Sari" {
		t.Errorf("store mutated through snapshot: %q", got)
	}
}

func TestUpdate(t *testing.T) {
	s := store.New()
	ctx := context.Background()
	if _, err := s.Create(ctx, fixture("a", "Sari")); err != nil {
		t.Fatal(err)
	}

	ev := fixture("a", "Sari & Bima")
	ev.Payment = model.PaymentPaid
	if _, err := s.Update(ctx, ev); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := s.Get(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if got.ClientName != "Sari & Bima" || got.Payment != model.PaymentPaid {
		t.Errorf("update not applied: %+v", got)
	}

	if _, err := s.Update(ctx, fixture("missing", "X")); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Update(missing) err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := store.New()
	ctx := context.Background()
	for _, id := range []string{"a", "b"} {
		if _, err := s.Create(ctx, fixture(id, "Client")); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "a"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}

	got := s.List(ctx)
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("List after delete = %+v, want only b", got)
	}
}

func TestSeedIdempotent(t *testing.T) {
	s := store.New()
	s.Seed(time.UTC)
	first := len(s.List(context.Background()))
	if first == 0 {
		t.Fatal("seed installed nothing")
	}
	s.Seed(time.UTC)
	if got := len(s.List(context.Background())); got != first {
		t.Errorf("second seed grew the store: %d -> %d", first, got)
	}
}
