package hotel

import (
	"errors"
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("02.01.2006", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestLedgerCreateComputesDerivedFields(t *testing.T) {
	l := NewLedger()
	room := Room{Number: 101, Category: CategorySingle, PricePerNight: 2500}

	res := l.Create(42, room, "Ivan Petrov", date("25.12.2024"), date("27.12.2024"))

	if res.Nights != 2 {
		t.Errorf("Nights = %d, want 2", res.Nights)
	}
	if res.TotalPrice != 5000 {
		t.Errorf("TotalPrice = %d, want 5000", res.TotalPrice)
	}
	if res.RoomNumber != 101 || res.UserID != 42 || res.GuestName != "Ivan Petrov" {
		t.Errorf("unexpected reservation: %+v", res)
	}
	if res.ID == "" {
		t.Error("booking id should not be empty")
	}
}

func TestLedgerBookingIDsUniqueWithinSecond(t *testing.T) {
	l := NewLedger()
	fixed := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	room := Room{Number: 101, PricePerNight: 2500}
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		res := l.Create(42, room, "Ivan", date("25.12.2024"), date("26.12.2024"))
		if seen[res.ID] {
			t.Fatalf("duplicate booking id %q", res.ID)
		}
		seen[res.ID] = true
	}
}

func TestLedgerListForInsertionOrder(t *testing.T) {
	l := NewLedger()
	room := Room{Number: 101, PricePerNight: 2500}

	first := l.Create(42, room, "Ivan", date("25.12.2024"), date("26.12.2024"))
	second := l.Create(42, room, "Ivan", date("01.01.2025"), date("03.01.2025"))

	list := l.ListFor(42)
	if len(list) != 2 {
		t.Fatalf("ListFor returned %d reservations, want 2", len(list))
	}
	if list[0].ID != first.ID || list[1].ID != second.ID {
		t.Error("reservations are not in insertion order")
	}

	if got := l.ListFor(99); len(got) != 0 {
		t.Errorf("ListFor(99) returned %d reservations, want 0", len(got))
	}
}

func TestLedgerFindChecksOwnership(t *testing.T) {
	l := NewLedger()
	room := Room{Number: 101, PricePerNight: 2500}
	res := l.Create(42, room, "Ivan", date("25.12.2024"), date("26.12.2024"))

	if _, err := l.Find(42, res.ID); err != nil {
		t.Fatalf("Find by owner error = %v", err)
	}
	// Чужое бронирование не видно даже по верному ID
	if _, err := l.Find(43, res.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find by other user error = %v, want ErrNotFound", err)
	}
	if _, err := l.Find(42, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find missing id error = %v, want ErrNotFound", err)
	}
}

func TestLedgerRemove(t *testing.T) {
	l := NewLedger()
	room := Room{Number: 101, PricePerNight: 2500}
	res := l.Create(42, room, "Ivan", date("25.12.2024"), date("26.12.2024"))

	if _, err := l.Remove(43, res.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove by other user error = %v, want ErrNotFound", err)
	}

	removed, err := l.Remove(42, res.ID)
	if err != nil {
		t.Fatalf("Remove error = %v", err)
	}
	if removed.ID != res.ID {
		t.Errorf("removed.ID = %q, want %q", removed.ID, res.ID)
	}

	if _, err := l.Find(42, res.ID); !errors.Is(err, ErrNotFound) {
		t.Error("reservation should be gone after Remove")
	}
	if len(l.ListFor(42)) != 0 {
		t.Error("ListFor should be empty after Remove")
	}
}
