package tgrouter

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Ctx carries one update through the middleware chain. Context holds the
// log context and is replaced by middlewares as they enrich it.
type Ctx struct {
	update  *tgbotapi.Update
	bot     Bot
	Context context.Context
}

func (c *Ctx) Bot() Bot {
	return c.bot
}

func (c *Ctx) Update() *tgbotapi.Update {
	return c.update
}

// Sender is the user the update came from, nil for channel posts.
func (c *Ctx) Sender() *tgbotapi.User {
	return c.update.SentFrom()
}

func (c *Ctx) ChatID() (int64, bool) {
	chat := c.update.FromChat()
	if chat == nil {
		return 0, false
	}
	return chat.ID, true
}

// Reply sends a Markdown text message to the chat the update came from.
func (c *Ctx) Reply(text string) error {
	chatID, ok := c.ChatID()
	if !ok {
		return nil
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := c.bot.Send(msg)
	return err
}

// Typing shows the typing indicator in the chat.
func (c *Ctx) Typing() error {
	chatID, ok := c.ChatID()
	if !ok {
		return nil
	}
	_, err := c.bot.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))
	return err
}
