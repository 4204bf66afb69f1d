package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"

	"maison/apps/bot/commands/start"
	"maison/apps/bot/middleware"
	"maison/pkg/config"
	"maison/pkg/logger"
	"maison/pkg/tgrouter"
)

var Module = fx.Options(
	start.Module,
	middleware.Module,

	fx.Invoke(NewBot),
)

type Params struct {
	fx.In
	fx.Lifecycle

	Logger     logger.Logger
	Config     config.IConfig
	Factory    tgrouter.RouterFactory
	Middleware middleware.Middleware

	StartCmd start.Commands
}

// NewBot starts the companion bot. Without bot.token it stays off.
func NewBot(p Params) error {
	token := p.Config.GetString("bot.token")
	if token == "" {
		p.Logger.Info(context.Background(), "bot token is not set, companion bot disabled")
		return nil
	}
	tb, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("failed to initialize bot: %w", err)
	}
	registerClientCommands(tb)

	r := NewRouter(p.Factory(tb, tgrouter.WithPoolSize(4)), p.Middleware, p.StartCmd)

	ctx, cancel := context.WithCancel(context.Background())
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info(ctx, "bot started!")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := r.Shutdown(ctx, cancel)
			p.Logger.Info(ctx, "bot stopped!")
			return err
		},
	})
	go r.ListenUpdate(ctx)

	return nil
}

// NewRouter wires the bot commands onto r.
func NewRouter(r *tgrouter.Router, mw middleware.Middleware, cmd start.Commands) *tgrouter.Router {
	bot := r.Group()
	bot.Use(mw.AccountMw)

	tgrouter.On(bot, tgrouter.Cmd("start"), cmd.Start)
	tgrouter.On(bot, tgrouter.Cmd("link"), cmd.Link)
	tgrouter.On(bot, tgrouter.Cmd("help"), cmd.Help)
	tgrouter.On(bot, tgrouter.Message(), cmd.Unknown)

	return r
}

func registerClientCommands(tb *tgbotapi.BotAPI) {
	cfg := tgbotapi.NewSetMyCommands([]tgbotapi.BotCommand{
		{Command: "start", Description: "Начало работы с ботом"},
		{Command: "link", Description: "Привязка аккаунта"},
		{Command: "help", Description: "Справка по командам"},
	}...)

	_, _ = tb.Request(cfg)
}
