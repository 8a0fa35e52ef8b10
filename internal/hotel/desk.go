package hotel

import (
	"fmt"
	"sync"
	"time"
)

// Desk владеет инвентарем и журналом бронирований и выполняет парные
// операции над ними под одной блокировкой: закрепление номера вместе с
// созданием записи и удаление записи вместе с освобождением номера.
// Наблюдатель никогда не видит пару выполненной наполовину.
type Desk struct {
	mu        sync.Mutex
	inventory *Inventory
	ledger    *Ledger
}

func NewDesk(inventory *Inventory, ledger *Ledger) *Desk {
	return &Desk{inventory: inventory, ledger: ledger}
}

// AvailableRooms возвращает свободные номера в порядке каталога.
func (d *Desk) AvailableRooms() []Room {
	return d.inventory.Available()
}

// Room возвращает номер по его номеру в каталоге.
func (d *Desk) Room(number int) (Room, error) {
	return d.inventory.Get(number)
}

// Book закрепляет номер и создает бронирование. Возвращает
// ErrUnavailable, если номер успели занять, ErrNotFound для
// неизвестного номера.
func (d *Desk) Book(userID int64, roomNumber int, guestName string, checkIn, checkOut time.Time) (*Reservation, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	room, err := d.inventory.Get(roomNumber)
	if err != nil {
		return nil, err
	}
	if err := d.inventory.Reserve(roomNumber); err != nil {
		return nil, err
	}
	return d.ledger.Create(userID, room, guestName, checkIn, checkOut), nil
}

// Bookings возвращает бронирования пользователя в порядке создания.
func (d *Desk) Bookings(userID int64) []Reservation {
	return d.ledger.ListFor(userID)
}

// AllBookings возвращает все бронирования (для экспорта).
func (d *Desk) AllBookings() []Reservation {
	return d.ledger.All()
}

// Find ищет бронирование пользователя по идентификатору.
func (d *Desk) Find(userID int64, bookingID string) (Reservation, error) {
	return d.ledger.Find(userID, bookingID)
}

// Cancel удаляет бронирование и освобождает номер одной логической
// операцией. Журнал без номера в инвентаре — ошибка программиста,
// о ней сообщаем громко.
func (d *Desk) Cancel(userID int64, bookingID string) (Reservation, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	res, err := d.ledger.Remove(userID, bookingID)
	if err != nil {
		return Reservation{}, err
	}
	if err := d.inventory.Release(res.RoomNumber); err != nil {
		return Reservation{}, fmt.Errorf("ledger held room %d missing from inventory: %w", res.RoomNumber, err)
	}
	return res, nil
}
