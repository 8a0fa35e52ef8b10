package bot

import (
	"fmt"
	"strings"

	"hotelier/internal/dialog"
	"hotelier/internal/hotel"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	welcomeText = "Добро пожаловать, %s!\n" +
		"Я бот для бронирования номеров в отеле.\n\n" +
		"Доступные команды:\n" +
		"/start - Начало работы\n" +
		"/rooms - Показать доступные номера\n" +
		"/book - Забронировать номер\n" +
		"/mybookings - Мои бронирования\n" +
		"/cancel - Отменить бронирование\n" +
		"/help - Помощь\n"

	helpText = "Как пользоваться ботом:\n\n" +
		"1. /rooms - посмотреть доступные номера\n" +
		"2. /book - начать процесс бронирования\n" +
		"3. /mybookings - посмотреть ваши бронирования\n" +
		"4. /cancel - отменить бронирование\n\n" +
		"Для бронирования вам понадобится:\n" +
		"- Выбрать номер\n" +
		"- Указать даты заезда и выезда\n" +
		"- Указать ваше имя\n"

	noRoomsText       = "К сожалению, все номера заняты."
	noBookingsText    = "У вас нет активных бронирований."
	badDateText       = "Неверный формат даты!\nПожалуйста, введите дату в формате ДД.ММ.ГГГГ\nНапример: 25.12.2024"
	dateInPastText    = "Дата заезда не может быть в прошлом!"
	checkOutText      = "Дата выезда должна быть позже даты заезда!"
	badNameText       = "Пожалуйста, введите корректное имя"
	roomTakenText     = "К сожалению, этот номер уже заняли. Начните бронирование заново: /book"
	noDialogText      = "Я не понял ваше сообщение.\nИспользуйте команды из меню или /help для справки."
	internalErrorText = "Произошла ошибка, попробуйте позже."
)

func formatRooms(rooms []hotel.Room) string {
	var sb strings.Builder
	sb.WriteString("*Доступные номера:*\n\n")
	for _, r := range rooms {
		sb.WriteString(fmt.Sprintf("*Номер %d*\n", r.Number))
		sb.WriteString(fmt.Sprintf("Тип: %s\n", r.Category.Title()))
		sb.WriteString(fmt.Sprintf("Цена: %d руб./ночь\n", r.PricePerNight))
		sb.WriteString(fmt.Sprintf("Описание: %s\n\n", r.Description))
	}
	return sb.String()
}

func formatRoomChosen(room hotel.Room) string {
	return fmt.Sprintf("Вы выбрали номер %d\n"+
		"Теперь укажите дату заезда в формате ДД.ММ.ГГГГ\n"+
		"Например: 25.12.2024", room.Number)
}

func formatCheckInRecorded(o *dialog.Outcome) string {
	return fmt.Sprintf("Дата заезда: %s\n"+
		"Теперь укажите дату выезда в формате ДД.ММ.ГГГГ", o.CheckIn.Format(dialog.DateLayout))
}

func formatCheckOutRecorded(o *dialog.Outcome) string {
	return fmt.Sprintf("Дата выезда: %s\n"+
		"Количество ночей: %d\n"+
		"Теперь укажите ваше имя и фамилию:", o.CheckOut.Format(dialog.DateLayout), o.Nights)
}

func formatConfirmation(res *hotel.Reservation) string {
	return fmt.Sprintf("*Бронирование подтверждено!*\n\n"+
		"*Детали бронирования:*\n"+
		"ID бронирования: %s\n"+
		"Гость: %s\n"+
		"Номер: %d\n"+
		"Заезд: %s\n"+
		"Выезд: %s\n"+
		"Ночей: %d\n"+
		"Стоимость за ночь: %d руб.\n"+
		"Общая стоимость: *%d руб.*\n\n"+
		"Спасибо за выбор нашего отеля!",
		res.ID, res.GuestName, res.RoomNumber,
		res.CheckIn.Format(dialog.DateLayout), res.CheckOut.Format(dialog.DateLayout),
		res.Nights, res.PricePerNight, res.TotalPrice)
}

func formatBookings(list []hotel.Reservation) string {
	var sb strings.Builder
	sb.WriteString("*Ваши бронирования:*\n\n")
	for i, res := range list {
		sb.WriteString(fmt.Sprintf("*Бронирование #%d*\n", i+1))
		sb.WriteString(fmt.Sprintf("ID: %s\n", res.ID))
		sb.WriteString(fmt.Sprintf("Номер: %d\n", res.RoomNumber))
		sb.WriteString(fmt.Sprintf("Имя: %s\n", res.GuestName))
		sb.WriteString(fmt.Sprintf("Заезд: %s\n", res.CheckIn.Format(dialog.DateLayout)))
		sb.WriteString(fmt.Sprintf("Выезд: %s\n", res.CheckOut.Format(dialog.DateLayout)))
		sb.WriteString(fmt.Sprintf("Ночей: %d\n", res.Nights))
		sb.WriteString(fmt.Sprintf("Стоимость: %d руб.\n\n", res.TotalPrice))
	}
	return sb.String()
}

func formatCancelled(res hotel.Reservation) string {
	return fmt.Sprintf("Бронирование %s успешно отменено.\n"+
		"Номер %d теперь доступен для бронирования.", res.ID, res.RoomNumber)
}

// roomsKeyboard клавиатура выбора номера; payload вида select_room:<номер>.
func roomsKeyboard(rooms []hotel.Room) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, r := range rooms {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("Номер %d - %s (%d руб.)", r.Number, r.Category.Title(), r.PricePerNight),
				fmt.Sprintf("select_room:%d", r.Number),
			),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// bookingsKeyboard единственная кнопка входа в меню отмены.
func bookingsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Отменить бронирование", "cancel_menu"),
		),
	)
}

// cancelKeyboard по кнопке на бронирование; payload вида cancel:<id>.
func cancelKeyboard(list []hotel.Reservation) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, res := range list {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("Бронирование #%d - Номер %d (%s)", i+1, res.RoomNumber, res.CheckIn.Format(dialog.DateLayout)),
				fmt.Sprintf("cancel:%s", res.ID),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("↩ Назад", "back_to_bookings"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
