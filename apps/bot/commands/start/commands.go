package start

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"maison/apps/bot/middleware"
	"maison/internal/texts"
	"maison/pkg/logger"
	"maison/pkg/tgrouter"
)

var Module = fx.Provide(New)

type (
	Params struct {
		fx.In
		Logger logger.Logger
	}

	Commands interface {
		Start(*tgrouter.Ctx)
		Link(*tgrouter.Ctx)
		Help(*tgrouter.Ctx)
		Unknown(*tgrouter.Ctx)
	}

	commands struct {
		logger logger.Logger
	}
)

func New(p Params) Commands {
	return &commands{logger: p.Logger}
}

// Start shows the Telegram id and username the shopper pastes into the
// link form on the site.
func (c *commands) Start(ctx *tgrouter.Ctx) {
	lang := middleware.Lang(ctx.Context)
	from := ctx.Sender()

	username := from.UserName
	if username == "" {
		username = texts.Get(lang, texts.BotNoUsername)
	}

	c.reply(ctx, fmt.Sprintf(texts.Get(lang, texts.BotWelcome), from.ID, username))
}

func (c *commands) Link(ctx *tgrouter.Ctx) {
	lang := middleware.Lang(ctx.Context)
	from := ctx.Sender()

	c.reply(ctx, fmt.Sprintf(texts.Get(lang, texts.BotLink), from.ID))
}

func (c *commands) Help(ctx *tgrouter.Ctx) {
	c.reply(ctx, texts.Get(middleware.Lang(ctx.Context), texts.BotHelp))
}

func (c *commands) Unknown(ctx *tgrouter.Ctx) {
	c.reply(ctx, texts.Get(middleware.Lang(ctx.Context), texts.BotUnknown))
}

func (c *commands) reply(ctx *tgrouter.Ctx, text string) {
	if err := ctx.Reply(text); err != nil {
		c.logger.Error(ctx.Context, "->bot.Send", zap.Error(err))
	}
}
