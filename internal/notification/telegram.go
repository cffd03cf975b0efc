// Package notification pushes event activity to the configured Telegram
// chat. Notifications are best effort: failures are logged, never surfaced
// to the request that triggered them.
package notification

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Joaolrm/quantodeu/internal/models"
)

// TelegramNotifier sends join notifications through a Telegram bot.
// With an empty token it degrades to a no-op, so callers never need to
// special-case a disabled bot.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier creates a notifier for the given bot token and chat.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" {
		slog.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	slog.Info("telegram notifications enabled", "bot", bot.Self.UserName)

	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// ParticipantJoined announces that a person joined an event.
func (n *TelegramNotifier) ParticipantJoined(event *models.Event, people *models.People) {
	if n.bot == nil {
		return
	}

	text := fmt.Sprintf("%s joined %q (%s)", people.Name, event.Name, event.Date)
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		slog.Error("failed to send join notification", "event_id", event.ID, "error", err)
	}
}
