package dialog

import "time"

// Step этап диалога бронирования. Этап хранится явно, а не выводится
// из заполненности полей: поле заполнено тогда и только тогда, когда
// соответствующий шаг пройден.
type Step string

const (
	StepIdle     Step = "idle"
	StepCheckIn  Step = "check_in"
	StepCheckOut Step = "check_out"
	StepName     Step = "name"
)

// Session незавершенный диалог бронирования одного пользователя.
type Session struct {
	UserID     int64     `json:"user_id"`
	Step       Step      `json:"step"`
	RoomNumber int       `json:"room_number,omitempty"`
	CheckIn    time.Time `json:"check_in,omitempty"`
	CheckOut   time.Time `json:"check_out,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}
