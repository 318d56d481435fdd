package notify

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mamediksunduk/sunduk-relay/internal/core/ports"
)

// TelegramMessenger mirrors notifications to a Telegram chat. The payload
// map has no Telegram counterpart and is dropped; only the text travels.
type TelegramMessenger struct {
	Bot    *tgbotapi.BotAPI
	ChatID int64
}

func NewTelegramMessenger(token, chatIDStr string) (*TelegramMessenger, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chat id: %v", err)
	}

	return &TelegramMessenger{Bot: bot, ChatID: chatID}, nil
}

var _ ports.Messenger = (*TelegramMessenger)(nil)

func (t *TelegramMessenger) Name() string {
	return "telegram"
}

func (t *TelegramMessenger) SendMessage(_ context.Context, text string, _ map[string]any) error {
	msg := tgbotapi.NewMessage(t.ChatID, text)
	_, err := t.Bot.Send(msg)
	return err
}
