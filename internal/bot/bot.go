package bot

import (
	"context"
	"time"

	"hotelier/internal/config"
	"hotelier/internal/dialog"
	"hotelier/internal/hotel"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

type Bot struct {
	tg       *tgbotapi.BotAPI
	config   *config.Config
	desk     *hotel.Desk
	dialogs  *dialog.Machine
	metrics  *Metrics
	logger   zerolog.Logger
	managers map[int64]struct{}
}

func NewBot(cfg *config.Config, desk *hotel.Desk, dialogs *dialog.Machine, metrics *Metrics, logger zerolog.Logger) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return nil, err
	}
	botAPI.Debug = cfg.Telegram.Debug

	managers := make(map[int64]struct{}, len(cfg.Managers))
	for _, id := range cfg.Managers {
		managers[id] = struct{}{}
	}

	return &Bot{
		tg:       botAPI,
		config:   cfg,
		desk:     desk,
		dialogs:  dialogs,
		metrics:  metrics,
		logger:   logger,
		managers: managers,
	}, nil
}

// Start запускает long polling и обрабатывает обновления до отмены
// контекста. Обновления обрабатываются последовательно: события одного
// пользователя не перемежаются между собой.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.tg.GetUpdatesChan(u)
	b.logger.Info().Str("account", b.tg.Self.UserName).Msg("authorized")

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) Stop() {
	b.tg.StopReceivingUpdates()
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	start := time.Now()
	defer func() {
		b.metrics.UpdateProcessingTime.Observe(time.Since(start).Seconds())
	}()

	if update.CallbackQuery != nil {
		b.handleCallbackQuery(ctx, update)
		return
	}
	if update.Message == nil {
		return
	}
	b.handleMessage(ctx, update)
}

func (b *Bot) isManager(userID int64) bool {
	_, ok := b.managers[userID]
	return ok
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.tg.Send(msg); err != nil {
		b.metrics.ErrorsTotal.Inc()
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("send message")
	}
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.tg.Send(c); err != nil {
		b.metrics.ErrorsTotal.Inc()
		b.logger.Error().Err(err).Msg("send")
	}
}
