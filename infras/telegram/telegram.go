package telegram

//go:generate go run go.uber.org/mock/mockgen -source=./telegram.go -destination=./mocks/telegram_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"hotelinv/config"
	"hotelinv/infras/otel"
	"hotelinv/shared/constant"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

const updateTimeoutSeconds = 60

var ErrNotConfigured = errors.New("telegram bot is not configured")

// Command is a bot command received in a chat.
type Command struct {
	ChatID int64
	Name   string
	Args   string
	From   string
}

type CommandHandler func(ctx context.Context, cmd Command) (reply string, err error)

type Telegram interface {
	// SendMessage posts text to chatID, or to the configured chat when chatID is 0.
	SendMessage(ctx context.Context, chatID int64, text string) (err error)
	Listen(ctx context.Context, handle CommandHandler) (err error)
	Enabled() bool
}

type telegramImpl struct {
	bot           *tgbotapi.BotAPI
	defaultChatID int64
	otel          otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Telegram {
	t := &telegramImpl{
		defaultChatID: cfg.External.Telegram.ChatID,
		otel:          ot,
	}

	if cfg.External.Telegram.Token == "" {
		log.Warn().Msg("Telegram token not configured, notifications are disabled")

		return t
	}

	bot, err := tgbotapi.NewBotAPI(cfg.External.Telegram.Token)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect Telegram bot, notifications are disabled")

		return t
	}

	bot.Debug = cfg.External.Telegram.Debug
	t.bot = bot

	log.Info().Str("bot", bot.Self.UserName).Msg("Telegram bot connected")

	return t
}

func (t *telegramImpl) Enabled() bool {
	return t.bot != nil
}

func (t *telegramImpl) SendMessage(ctx context.Context, chatID int64, text string) (err error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".telegram.SendMessage")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if t.bot == nil {
		return ErrNotConfigured
	}

	if chatID == 0 {
		chatID = t.defaultChatID
	}
	if chatID == 0 {
		return fmt.Errorf("%w: no chat id", ErrNotConfigured)
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	scope.SetAttribute("chat_id", chatID)

	if _, err = t.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send telegram message")

		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	return nil
}

// Listen long-polls for updates and answers bot commands until ctx is cancelled.
func (t *telegramImpl) Listen(ctx context.Context, handle CommandHandler) error {
	if t.bot == nil {
		return ErrNotConfigured
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeoutSeconds
	updates := t.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			log.Info().Msg("Telegram listener stopped")

			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}

			cmd := Command{
				ChatID: update.Message.Chat.ID,
				Name:   update.Message.Command(),
				Args:   update.Message.CommandArguments(),
			}
			if update.Message.From != nil {
				cmd.From = update.Message.From.UserName
			}

			reply, err := handle(ctx, cmd)
			if err != nil {
				log.Error().Err(err).Str("command", cmd.Name).Msg("failed to handle telegram command")

				continue
			}
			if reply == "" {
				continue
			}

			if err := t.SendMessage(ctx, cmd.ChatID, reply); err != nil {
				log.Error().Err(err).Str("command", cmd.Name).Msg("failed to reply to telegram command")
			}
		}
	}
}
