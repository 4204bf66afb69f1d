package middleware

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"maison/internal/texts"
	"maison/pkg/config"
	"maison/pkg/logger"
	"maison/pkg/tgrouter"
	"maison/pkg/utils"
)

var Module = fx.Provide(New)

type langKey struct{}

// Lang is the language picked for the update being handled.
func Lang(ctx context.Context) utils.Lang {
	if lang, ok := ctx.Value(langKey{}).(utils.Lang); ok {
		return lang
	}
	return utils.RU
}

type Params struct {
	fx.In
	Logger logger.Logger
	Config config.IConfig
}

type Middleware interface {
	AccountMw(next tgrouter.Handler) tgrouter.Handler
}

type mw struct {
	logger   logger.Logger
	fallback utils.Lang
}

func New(p Params) Middleware {
	return &mw{
		logger:   p.Logger,
		fallback: texts.Lang(p.Config),
	}
}

// AccountMw drops updates that carry no user, picks the reply language from
// the user's Telegram locale and shows a typing indicator. A panicking
// handler gets a retry message instead of killing the worker.
func (m *mw) AccountMw(next tgrouter.Handler) tgrouter.Handler {
	return func(c *tgrouter.Ctx) {
		from := c.Sender()
		chatID, ok := c.ChatID()
		if from == nil || !ok {
			return
		}

		lang, known := utils.ParseLang(from.LanguageCode)
		if !known {
			lang = m.fallback
		}

		c.Context = m.logger.WithRequestID(c.Context, strconv.Itoa(c.Update().UpdateID))
		c.Context = context.WithValue(c.Context, langKey{}, lang)

		defer func() {
			if r := recover(); r != nil {
				m.logger.Error(c.Context, "bot handler panicked", zap.Any("panic", r), zap.Int64("tgid", from.ID))
				_, _ = c.Bot().Send(tgbotapi.NewMessage(chatID, texts.Get(lang, texts.BotRetry)))
			}
		}()

		if err := c.Typing(); err != nil {
			m.logger.Debug(c.Context, "->bot.Typing", zap.Error(err))
		}

		next(c)
	}
}
