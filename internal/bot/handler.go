package bot

import (
	"context"
	"errors"
	"fmt"

	"hotelier/internal/dialog"
	"hotelier/internal/hotel"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleMessage(ctx context.Context, update tgbotapi.Update) {
	b.metrics.MessagesProcessed.Inc()

	msg := update.Message
	userID := msg.From.ID
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	b.handleDialogText(ctx, userID, chatID, msg.Text)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	command := msg.Command()
	b.metrics.CommandsProcessed.WithLabelValues(command).Inc()

	userID := msg.From.ID
	chatID := msg.Chat.ID

	switch command {
	case "start":
		// Новый /start сбрасывает незавершенный диалог
		if err := b.dialogs.Abandon(ctx, userID); err != nil {
			b.logger.Error().Err(err).Int64("user_id", userID).Msg("abandon dialog")
		}
		b.sendMessage(chatID, fmt.Sprintf(welcomeText, msg.From.FirstName))

	case "help":
		b.sendMessage(chatID, helpText)

	case "rooms":
		b.showRooms(chatID)

	case "book":
		b.startBooking(chatID)

	case "mybookings":
		b.showMyBookings(userID, chatID)

	case "cancel":
		b.startCancellation(userID, chatID)

	case "export":
		if b.isManager(userID) {
			b.handleExport(chatID)
		}

	default:
		b.sendMessage(chatID, noDialogText)
	}
}

// showRooms показывает свободные номера.
func (b *Bot) showRooms(chatID int64) {
	rooms := b.desk.AvailableRooms()
	if len(rooms) == 0 {
		b.sendMessage(chatID, noRoomsText)
		return
	}

	msg := tgbotapi.NewMessage(chatID, formatRooms(rooms))
	msg.ParseMode = tgbotapi.ModeMarkdown
	b.send(msg)
}

// startBooking предлагает выбрать номер. Диалог начинается только
// после нажатия кнопки выбора.
func (b *Bot) startBooking(chatID int64) {
	rooms := b.desk.AvailableRooms()
	if len(rooms) == 0 {
		b.sendMessage(chatID, noRoomsText)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "Выберите номер для бронирования:")
	msg.ReplyMarkup = roomsKeyboard(rooms)
	b.send(msg)
}

func (b *Bot) showMyBookings(userID, chatID int64) {
	list := b.desk.Bookings(userID)
	if len(list) == 0 {
		b.sendMessage(chatID, noBookingsText)
		return
	}

	msg := tgbotapi.NewMessage(chatID, formatBookings(list))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = bookingsKeyboard()
	b.send(msg)
}

func (b *Bot) startCancellation(userID, chatID int64) {
	list := b.desk.Bookings(userID)
	if len(list) == 0 {
		b.sendMessage(chatID, noBookingsText)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "Выберите бронирование для отмены:")
	msg.ReplyMarkup = cancelKeyboard(list)
	b.send(msg)
}

// handleDialogText передает свободный текст машине диалога и
// превращает результат или ошибку в ответ пользователю.
func (b *Bot) handleDialogText(ctx context.Context, userID, chatID int64, text string) {
	outcome, err := b.dialogs.Input(ctx, userID, text)
	if err != nil {
		b.replyDialogError(userID, chatID, err)
		return
	}

	switch outcome.Next {
	case dialog.StepCheckOut:
		b.sendMessage(chatID, formatCheckInRecorded(outcome))
	case dialog.StepName:
		b.sendMessage(chatID, formatCheckOutRecorded(outcome))
	case dialog.StepIdle:
		b.metrics.BookingsTotal.WithLabelValues("created").Inc()
		msg := tgbotapi.NewMessage(chatID, formatConfirmation(outcome.Reservation))
		msg.ParseMode = tgbotapi.ModeMarkdown
		b.send(msg)
	}
}

func (b *Bot) replyDialogError(userID, chatID int64, err error) {
	switch {
	case errors.Is(err, dialog.ErrDateInPast):
		b.sendMessage(chatID, dateInPastText)
	case errors.Is(err, dialog.ErrCheckOutNotAfter):
		b.sendMessage(chatID, checkOutText)
	case errors.Is(err, dialog.ErrNameTooShort):
		b.sendMessage(chatID, badNameText)
	case errors.Is(err, dialog.ErrBadDate):
		b.sendMessage(chatID, badDateText)
	case errors.Is(err, dialog.ErrNoDialog):
		b.sendMessage(chatID, noDialogText)
	case errors.Is(err, hotel.ErrUnavailable):
		b.metrics.BookingsTotal.WithLabelValues("race_lost").Inc()
		b.sendMessage(chatID, roomTakenText)
	case errors.Is(err, hotel.ErrNotFound):
		b.sendMessage(chatID, "Номер не найден.")
	default:
		b.metrics.ErrorsTotal.Inc()
		b.logger.Error().Err(err).Int64("user_id", userID).Msg("dialog input")
		b.sendMessage(chatID, internalErrorText)
	}
}
