package dialog

import (
	"strings"
	"time"
)

// DateLayout формат дат, который вводит пользователь.
const DateLayout = "02.01.2006"

// ParseDate разбирает дату вида ДД.ММ.ГГГГ со строгим календарем:
// 31.02.2024 — ошибка разбора, а не нормализация.
func ParseDate(text string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t, nil
}

// dateOf обрезает момент времени до календарной даты в UTC,
// чтобы сравнивать с результатами ParseDate.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
