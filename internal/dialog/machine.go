package dialog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelier/internal/hotel"
)

// Machine ведет пошаговый диалог бронирования: проверяет ввод на каждом
// шаге, записывает поля строго в порядке шагов и на последнем шаге
// закрепляет номер и создает бронирование через Desk.
type Machine struct {
	desk  *hotel.Desk
	store Store
	now   func() time.Time
}

// Outcome результат успешного шага диалога.
type Outcome struct {
	// Next шаг, который ожидается после обработанного ввода.
	// StepIdle означает, что диалог завершен.
	Next Step

	CheckIn  time.Time
	CheckOut time.Time
	Nights   int

	// Reservation заполнено только при завершении диалога.
	Reservation *hotel.Reservation
}

func NewMachine(desk *hotel.Desk, store Store) *Machine {
	return &Machine{desk: desk, store: store, now: time.Now}
}

// ChooseRoom переводит диалог из Idle в ожидание даты заезда.
// Прежняя незавершенная сессия пользователя при этом замещается.
func (m *Machine) ChooseRoom(ctx context.Context, userID int64, roomNumber int) (hotel.Room, error) {
	room, err := m.desk.Room(roomNumber)
	if err != nil {
		return hotel.Room{}, err
	}
	if !room.Available {
		return hotel.Room{}, hotel.ErrUnavailable
	}

	sess := &Session{UserID: userID, Step: StepCheckIn, RoomNumber: roomNumber}
	if err := m.store.Set(ctx, sess); err != nil {
		return hotel.Room{}, fmt.Errorf("store session: %w", err)
	}
	return room, nil
}

// Input обрабатывает текстовый ввод по текущему шагу диалога. При
// ошибке валидации сессия остается на том же шаге; при ErrNoDialog
// активного диалога нет и состояние не трогается.
func (m *Machine) Input(ctx context.Context, userID int64, text string) (*Outcome, error) {
	sess, err := m.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess == nil || sess.Step == StepIdle {
		return nil, ErrNoDialog
	}

	switch sess.Step {
	case StepCheckIn:
		return m.inputCheckIn(ctx, sess, text)
	case StepCheckOut:
		return m.inputCheckOut(ctx, sess, text)
	case StepName:
		return m.inputName(ctx, sess, text)
	}
	return nil, ErrNoDialog
}

// Abandon сбрасывает незавершенный диалог пользователя.
func (m *Machine) Abandon(ctx context.Context, userID int64) error {
	return m.store.Clear(ctx, userID)
}

func (m *Machine) inputCheckIn(ctx context.Context, sess *Session, text string) (*Outcome, error) {
	checkIn, err := ParseDate(text)
	if err != nil {
		return nil, err
	}
	if checkIn.Before(dateOf(m.now())) {
		return nil, ErrDateInPast
	}

	sess.CheckIn = checkIn
	sess.Step = StepCheckOut
	if err := m.store.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return &Outcome{Next: StepCheckOut, CheckIn: checkIn}, nil
}

func (m *Machine) inputCheckOut(ctx context.Context, sess *Session, text string) (*Outcome, error) {
	checkOut, err := ParseDate(text)
	if err != nil {
		return nil, err
	}
	if !checkOut.After(sess.CheckIn) {
		return nil, ErrCheckOutNotAfter
	}

	sess.CheckOut = checkOut
	sess.Step = StepName
	if err := m.store.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return &Outcome{
		Next:     StepName,
		CheckIn:  sess.CheckIn,
		CheckOut: checkOut,
		Nights:   nights(sess.CheckIn, checkOut),
	}, nil
}

func (m *Machine) inputName(ctx context.Context, sess *Session, text string) (*Outcome, error) {
	guestName := strings.TrimSpace(text)
	if len([]rune(guestName)) < 2 {
		return nil, ErrNameTooShort
	}

	res, err := m.desk.Book(sess.UserID, sess.RoomNumber, guestName, sess.CheckIn, sess.CheckOut)
	if err != nil {
		// Номер успели занять (или он исчез) — диалог обрывается,
		// сессия возвращается в Idle без создания бронирования.
		if clearErr := m.store.Clear(ctx, sess.UserID); clearErr != nil {
			return nil, fmt.Errorf("clear session after failed booking: %w", clearErr)
		}
		return nil, err
	}

	if err := m.store.Clear(ctx, sess.UserID); err != nil {
		return nil, fmt.Errorf("clear session: %w", err)
	}
	return &Outcome{Next: StepIdle, CheckIn: res.CheckIn, CheckOut: res.CheckOut, Nights: res.Nights, Reservation: res}, nil
}

func nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
