package hotel

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ledger хранит подтвержденные бронирования, индексируя их
// по владельцу и по идентификатору бронирования.
type Ledger struct {
	mu     sync.Mutex
	byUser map[int64][]*Reservation
	byID   map[string]*Reservation
	now    func() time.Time
}

func NewLedger() *Ledger {
	return &Ledger{
		byUser: make(map[int64][]*Reservation),
		byID:   make(map[string]*Reservation),
		now:    time.Now,
	}
}

// Create добавляет бронирование, вычисляя количество ночей и полную
// стоимость по текущей цене номера. Предусловие: номер уже закреплен
// через Inventory.Reserve — Ledger сам инвентарь не трогает.
func (l *Ledger) Create(userID int64, room Room, guestName string, checkIn, checkOut time.Time) *Reservation {
	l.mu.Lock()
	defer l.mu.Unlock()

	createdAt := l.now()
	nights := int(checkOut.Sub(checkIn).Hours() / 24)

	res := &Reservation{
		ID:            newBookingID(userID, createdAt),
		UserID:        userID,
		RoomNumber:    room.Number,
		GuestName:     guestName,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Nights:        nights,
		PricePerNight: room.PricePerNight,
		TotalPrice:    nights * room.PricePerNight,
		CreatedAt:     createdAt,
	}

	l.byUser[userID] = append(l.byUser[userID], res)
	l.byID[res.ID] = res
	return res
}

// ListFor возвращает бронирования пользователя в порядке создания.
func (l *Ledger) ListFor(userID int64) []Reservation {
	l.mu.Lock()
	defer l.mu.Unlock()

	list := l.byUser[userID]
	out := make([]Reservation, 0, len(list))
	for _, res := range list {
		out = append(out, *res)
	}
	return out
}

// All возвращает все бронирования в порядке создания.
func (l *Ledger) All() []Reservation {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Reservation
	for _, list := range l.byUser {
		for _, res := range list {
			out = append(out, *res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Find ищет бронирование по идентификатору. Чужие бронирования не
// выдаются: несовпадение владельца равнозначно отсутствию записи.
func (l *Ledger) Find(userID int64, bookingID string) (Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	res, ok := l.byID[bookingID]
	if !ok || res.UserID != userID {
		return Reservation{}, ErrNotFound
	}
	return *res, nil
}

// Remove удаляет бронирование пользователя и возвращает удаленную запись.
func (l *Ledger) Remove(userID int64, bookingID string) (Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	res, ok := l.byID[bookingID]
	if !ok || res.UserID != userID {
		return Reservation{}, ErrNotFound
	}

	delete(l.byID, bookingID)
	list := l.byUser[userID]
	for i, r := range list {
		if r.ID == bookingID {
			l.byUser[userID] = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(l.byUser[userID]) == 0 {
		delete(l.byUser, userID)
	}
	return *res, nil
}

// newBookingID собирает идентификатор из ID пользователя и времени
// создания. Случайный суффикс исключает коллизию двух бронирований
// одного пользователя в одну секунду.
func newBookingID(userID int64, createdAt time.Time) string {
	return fmt.Sprintf("%d_%s_%s", userID, createdAt.Format("20060102150405"), uuid.NewString()[:8])
}
