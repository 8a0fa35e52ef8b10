package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"hotelier/internal/hotel"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleCallbackQuery(ctx context.Context, update tgbotapi.Update) {
	callback := update.CallbackQuery
	data := callback.Data
	userID := callback.From.ID

	b.metrics.MessagesProcessed.Inc()

	// Отвечаем на callback сразу, чтобы убрать "часики"
	callbackConfig := tgbotapi.NewCallback(callback.ID, "")
	if _, err := b.tg.Request(callbackConfig); err != nil {
		b.logger.Warn().Err(err).Msg("answer callback")
	}

	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	messageID := callback.Message.MessageID

	switch {
	case strings.HasPrefix(data, "select_room:"):
		roomNumber, err := strconv.Atoi(strings.TrimPrefix(data, "select_room:"))
		if err != nil {
			return
		}
		b.handleRoomChosen(ctx, userID, chatID, messageID, roomNumber)

	case data == "cancel_menu":
		b.showCancelMenu(userID, chatID, messageID)

	case strings.HasPrefix(data, "cancel:"):
		bookingID := strings.TrimPrefix(data, "cancel:")
		b.handleCancel(userID, chatID, messageID, bookingID)

	case data == "back_to_bookings":
		b.backToBookings(userID, chatID, messageID)
	}
}

// handleRoomChosen переводит диалог пользователя в ожидание даты заезда.
func (b *Bot) handleRoomChosen(ctx context.Context, userID, chatID int64, messageID int, roomNumber int) {
	room, err := b.dialogs.ChooseRoom(ctx, userID, roomNumber)
	switch {
	case errors.Is(err, hotel.ErrUnavailable):
		b.edit(chatID, messageID, roomTakenText)
		return
	case errors.Is(err, hotel.ErrNotFound):
		b.edit(chatID, messageID, "Номер не найден.")
		return
	case err != nil:
		b.metrics.ErrorsTotal.Inc()
		b.logger.Error().Err(err).Int64("user_id", userID).Int("room", roomNumber).Msg("choose room")
		b.edit(chatID, messageID, internalErrorText)
		return
	}

	b.edit(chatID, messageID, formatRoomChosen(room))
}

func (b *Bot) showCancelMenu(userID, chatID int64, messageID int) {
	list := b.desk.Bookings(userID)
	if len(list) == 0 {
		b.edit(chatID, messageID, noBookingsText)
		return
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID,
		"Выберите бронирование для отмены:", cancelKeyboard(list))
	b.send(edit)
}

// handleCancel отменяет бронирование: запись удаляется и номер
// освобождается одной операцией на стороне Desk.
func (b *Bot) handleCancel(userID, chatID int64, messageID int, bookingID string) {
	res, err := b.desk.Cancel(userID, bookingID)
	switch {
	case errors.Is(err, hotel.ErrNotFound):
		b.edit(chatID, messageID, "Бронирование не найдено.")
		return
	case err != nil:
		b.metrics.ErrorsTotal.Inc()
		b.logger.Error().Err(err).Int64("user_id", userID).Str("booking_id", bookingID).Msg("cancel booking")
		b.edit(chatID, messageID, internalErrorText)
		return
	}

	b.metrics.CancellationsTotal.Inc()
	b.edit(chatID, messageID, formatCancelled(res))
}

// backToBookings возвращает сообщение из подменю отмены к списку.
func (b *Bot) backToBookings(userID, chatID int64, messageID int) {
	list := b.desk.Bookings(userID)
	if len(list) == 0 {
		b.edit(chatID, messageID, noBookingsText)
		return
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, formatBookings(list), bookingsKeyboard())
	edit.ParseMode = tgbotapi.ModeMarkdown
	b.send(edit)
}

func (b *Bot) edit(chatID int64, messageID int, text string) {
	b.send(tgbotapi.NewEditMessageText(chatID, messageID, text))
}
