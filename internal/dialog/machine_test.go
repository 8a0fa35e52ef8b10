package dialog

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelier/internal/hotel"
)

func newTestMachine(t *testing.T) (*Machine, *hotel.Desk) {
	t.Helper()

	rooms := []hotel.Room{
		{Number: 101, Category: hotel.CategorySingle, PricePerNight: 2500, Available: true},
		{Number: 104, Category: hotel.CategoryDouble, PricePerNight: 4000, Available: false},
	}
	desk := hotel.NewDesk(hotel.NewInventory(rooms), hotel.NewLedger())
	m := NewMachine(desk, NewMemoryStore(0))
	// Фиксируем "сегодня", чтобы даты сценариев не устаревали
	m.now = func() time.Time { return time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC) }
	return m, desk
}

func TestMachineFullBookingFlow(t *testing.T) {
	ctx := context.Background()
	m, desk := newTestMachine(t)

	room, err := m.ChooseRoom(ctx, 42, 101)
	if err != nil {
		t.Fatalf("ChooseRoom error = %v", err)
	}
	if room.Number != 101 {
		t.Fatalf("room.Number = %d, want 101", room.Number)
	}

	out, err := m.Input(ctx, 42, "25.12.2024")
	if err != nil {
		t.Fatalf("check-in Input error = %v", err)
	}
	if out.Next != StepCheckOut {
		t.Fatalf("Next = %q, want %q", out.Next, StepCheckOut)
	}

	out, err = m.Input(ctx, 42, "27.12.2024")
	if err != nil {
		t.Fatalf("check-out Input error = %v", err)
	}
	if out.Next != StepName || out.Nights != 2 {
		t.Fatalf("Next = %q, Nights = %d, want %q and 2", out.Next, out.Nights, StepName)
	}

	out, err = m.Input(ctx, 42, "Ivan Petrov")
	if err != nil {
		t.Fatalf("name Input error = %v", err)
	}
	if out.Next != StepIdle || out.Reservation == nil {
		t.Fatalf("expected completed dialog with reservation, got %+v", out)
	}

	res := out.Reservation
	if res.RoomNumber != 101 || res.Nights != 2 || res.TotalPrice != 5000 {
		t.Errorf("reservation = %+v, want room 101, 2 nights, 5000 total", res)
	}

	room, _ = desk.Room(101)
	if room.Available {
		t.Error("room 101 should be unavailable after booking")
	}

	// Сессия завершена: новый текст уже вне диалога
	if _, err := m.Input(ctx, 42, "привет"); !errors.Is(err, ErrNoDialog) {
		t.Errorf("Input after completion error = %v, want ErrNoDialog", err)
	}
}

func TestMachineChooseRoom(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine(t)

	if _, err := m.ChooseRoom(ctx, 42, 104); !errors.Is(err, hotel.ErrUnavailable) {
		t.Errorf("ChooseRoom(104) error = %v, want ErrUnavailable", err)
	}
	if _, err := m.ChooseRoom(ctx, 42, 999); !errors.Is(err, hotel.ErrNotFound) {
		t.Errorf("ChooseRoom(999) error = %v, want ErrNotFound", err)
	}
}

func TestMachineValidationKeepsStep(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine(t)

	if _, err := m.ChooseRoom(ctx, 42, 101); err != nil {
		t.Fatalf("ChooseRoom error = %v", err)
	}

	cases := []struct {
		name  string
		input string
		want  error
	}{
		{name: "bad format", input: "25-12-2024", want: ErrBadDate},
		{name: "past date", input: "25.12.2023", want: ErrDateInPast},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Input(ctx, 42, tt.input); !errors.Is(err, tt.want) {
				t.Fatalf("Input(%q) error = %v, want %v", tt.input, err, tt.want)
			}
			if !errors.Is(tt.want, ErrValidation) {
				t.Fatalf("%v must be a validation error", tt.want)
			}
		})
	}

	// После неудач шаг не сдвинулся: корректная дата все еще принимается
	out, err := m.Input(ctx, 42, "25.12.2024")
	if err != nil {
		t.Fatalf("valid check-in Input error = %v", err)
	}
	if out.Next != StepCheckOut {
		t.Fatalf("Next = %q, want %q", out.Next, StepCheckOut)
	}

	// Дата выезда, равная дате заезда, отклоняется
	if _, err := m.Input(ctx, 42, "25.12.2024"); !errors.Is(err, ErrCheckOutNotAfter) {
		t.Fatalf("equal check-out error = %v, want ErrCheckOutNotAfter", err)
	}
	// И шаг остался прежним
	if out, err = m.Input(ctx, 42, "26.12.2024"); err != nil || out.Next != StepName {
		t.Fatalf("valid check-out after rejection: out = %+v, err = %v", out, err)
	}

	if _, err := m.Input(ctx, 42, " И "); !errors.Is(err, ErrNameTooShort) {
		t.Fatalf("short name error = %v, want ErrNameTooShort", err)
	}
}

func TestMachineStrayInput(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine(t)

	if _, err := m.Input(ctx, 42, "25.12.2024"); !errors.Is(err, ErrNoDialog) {
		t.Errorf("Input without dialog error = %v, want ErrNoDialog", err)
	}
}

func TestMachineRaceLoserResetsToIdle(t *testing.T) {
	ctx := context.Background()
	m, desk := newTestMachine(t)

	walk := func(userID int64) error {
		if _, err := m.ChooseRoom(ctx, userID, 101); err != nil {
			return err
		}
		if _, err := m.Input(ctx, userID, "25.12.2024"); err != nil {
			return err
		}
		if _, err := m.Input(ctx, userID, "27.12.2024"); err != nil {
			return err
		}
		_, err := m.Input(ctx, userID, "Ivan Petrov")
		return err
	}

	// Оба пользователя доходят до ввода имени по одному номеру;
	// номер достается завершившему первым.
	if _, err := m.ChooseRoom(ctx, 1, 101); err != nil {
		t.Fatalf("user 1 ChooseRoom error = %v", err)
	}
	if _, err := m.Input(ctx, 1, "25.12.2024"); err != nil {
		t.Fatalf("user 1 check-in error = %v", err)
	}
	if _, err := m.Input(ctx, 1, "27.12.2024"); err != nil {
		t.Fatalf("user 1 check-out error = %v", err)
	}

	if err := walk(2); err != nil {
		t.Fatalf("user 2 booking error = %v", err)
	}

	if _, err := m.Input(ctx, 1, "Ivan Petrov"); !errors.Is(err, hotel.ErrUnavailable) {
		t.Fatalf("loser finish error = %v, want ErrUnavailable", err)
	}

	// Диалог проигравшего сброшен в Idle, бронирование не создано
	if _, err := m.Input(ctx, 1, "anything"); !errors.Is(err, ErrNoDialog) {
		t.Errorf("loser session should be reset, got %v", err)
	}
	if n := len(desk.Bookings(1)); n != 0 {
		t.Errorf("loser has %d bookings, want 0", n)
	}
	if n := len(desk.Bookings(2)); n != 1 {
		t.Errorf("winner has %d bookings, want 1", n)
	}
}

func TestMachineChooseRoomReplacesSession(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine(t)

	if _, err := m.ChooseRoom(ctx, 42, 101); err != nil {
		t.Fatalf("first ChooseRoom error = %v", err)
	}
	if _, err := m.Input(ctx, 42, "25.12.2024"); err != nil {
		t.Fatalf("check-in error = %v", err)
	}

	// Повторный выбор номера начинает диалог заново
	if _, err := m.ChooseRoom(ctx, 42, 101); err != nil {
		t.Fatalf("second ChooseRoom error = %v", err)
	}
	out, err := m.Input(ctx, 42, "26.12.2024")
	if err != nil {
		t.Fatalf("Input error = %v", err)
	}
	if out.Next != StepCheckOut {
		t.Errorf("Next = %q, want %q (dialog should restart from check-in)", out.Next, StepCheckOut)
	}
}

func TestMachineAbandon(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMachine(t)

	if _, err := m.ChooseRoom(ctx, 42, 101); err != nil {
		t.Fatalf("ChooseRoom error = %v", err)
	}
	if err := m.Abandon(ctx, 42); err != nil {
		t.Fatalf("Abandon error = %v", err)
	}
	if _, err := m.Input(ctx, 42, "25.12.2024"); !errors.Is(err, ErrNoDialog) {
		t.Errorf("Input after Abandon error = %v, want ErrNoDialog", err)
	}
}
