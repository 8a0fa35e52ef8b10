package hotel

import "errors"

var (
	// ErrNotFound номер или бронирование не найдено
	ErrNotFound = errors.New("not found")

	// ErrUnavailable номер уже занят
	ErrUnavailable = errors.New("room unavailable")
)
