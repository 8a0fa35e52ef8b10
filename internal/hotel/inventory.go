package hotel

import "sync"

// Inventory хранит каталог номеров и их доступность.
// Порядок каталога сохраняется при выдаче списков.
type Inventory struct {
	mu    sync.Mutex
	order []int
	rooms map[int]*Room
}

func NewInventory(rooms []Room) *Inventory {
	inv := &Inventory{
		order: make([]int, 0, len(rooms)),
		rooms: make(map[int]*Room, len(rooms)),
	}
	for i := range rooms {
		r := rooms[i]
		if _, ok := inv.rooms[r.Number]; ok {
			continue
		}
		inv.order = append(inv.order, r.Number)
		inv.rooms[r.Number] = &r
	}
	return inv
}

// Available возвращает свободные номера в порядке каталога.
func (inv *Inventory) Available() []Room {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	var out []Room
	for _, num := range inv.order {
		if r := inv.rooms[num]; r.Available {
			out = append(out, *r)
		}
	}
	return out
}

// Get возвращает копию номера по его номеру.
func (inv *Inventory) Get(number int) (Room, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	r, ok := inv.rooms[number]
	if !ok {
		return Room{}, ErrNotFound
	}
	return *r, nil
}

// Reserve атомарно переводит номер из свободного в занятый.
// Из конкурирующих вызовов для одного номера успешен ровно один.
func (inv *Inventory) Reserve(number int) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	r, ok := inv.rooms[number]
	if !ok {
		return ErrNotFound
	}
	if !r.Available {
		return ErrUnavailable
	}
	r.Available = false
	return nil
}

// Release возвращает номер в свободные. Повторный вызов — no-op:
// при гонках отмены безопаснее молча согласиться.
func (inv *Inventory) Release(number int) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	r, ok := inv.rooms[number]
	if !ok {
		return ErrNotFound
	}
	r.Available = true
	return nil
}
