package tgclient

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/you-humble/noventa-support/internal/model"
)

type client struct {
	bot *bot.Bot
}

// NewClient wraps a bot that only ever posts to the staff chat.
func NewClient(b *bot.Bot) *client {
	return &client{bot: b}
}

func (c *client) SendMessage(ctx context.Context, chatID int64, text string) error {
	const op = "telegram.client.SendMessage"

	if chatID == 0 {
		return fmt.Errorf("%s: %w: chat id is not set", op, model.ErrMalformedInput)
	}

	if _, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
