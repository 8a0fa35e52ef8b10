package hotel

import "time"

// Reservation подтвержденное бронирование
type Reservation struct {
	ID            string    `json:"id"`
	UserID        int64     `json:"user_id"`
	RoomNumber    int       `json:"room_number"`
	GuestName     string    `json:"guest_name"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	Nights        int       `json:"nights"`
	PricePerNight int       `json:"price_per_night"`
	TotalPrice    int       `json:"total_price"`
	CreatedAt     time.Time `json:"created_at"`
}
