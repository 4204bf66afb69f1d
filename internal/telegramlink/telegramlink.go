// Package telegramlink connects the signed-in account to a Telegram chat so
// order notifications can be delivered there.
package telegramlink

import (
	"context"
	"strings"

	"github.com/skip2/go-qrcode"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"maison/internal/session"
	"maison/internal/structs"
	"maison/internal/telegram"
	"maison/internal/texts"
	"maison/pkg/config"
	"maison/pkg/logger"
	"maison/pkg/utils"
)

var Module = fx.Provide(New)

const qrSize = 256

type (
	Params struct {
		fx.In
		Config   config.IConfig
		Logger   logger.Logger
		Session  session.Service
		Telegram telegram.Client
	}

	Service interface {
		Link(ctx context.Context, telegramID, username string) error
		Status(ctx context.Context) (structs.TelegramStatus, error)
		BotLink() string
		QR() ([]byte, error)
	}

	service struct {
		session     session.Service
		telegram    telegram.Client
		logger      logger.Logger
		lang        utils.Lang
		botUsername string
	}
)

func New(p Params) Service {
	return &service{
		session:     p.Session,
		telegram:    p.Telegram,
		logger:      p.Logger,
		lang:        texts.Lang(p.Config),
		botUsername: strings.TrimPrefix(p.Config.GetString("bot.username"), "@"),
	}
}

// Link checks the session and the id locally, then asks the telegram service
// to attach the chat. The cached profile is patched only on success.
func (s *service) Link(ctx context.Context, telegramID, username string) error {
	user, ok := s.session.CurrentUser(ctx)
	if !ok {
		return structs.ErrAuthRequired
	}

	telegramID = strings.TrimSpace(telegramID)
	if telegramID == "" {
		return structs.Invalid("telegram_id", texts.Get(s.lang, texts.EnterTelegramID))
	}
	id, err := cast.ToInt64E(telegramID)
	if err != nil || id <= 0 {
		return structs.Invalid("telegram_id", texts.Get(s.lang, texts.TelegramIDFormat))
	}
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")

	err = s.telegram.LinkAccount(ctx, structs.LinkTelegram{
		UserID:           user.ID,
		TelegramID:       id,
		TelegramUsername: username,
	})
	if err != nil {
		s.logger.Error(ctx, "->telegram.LinkAccount", zap.Int64("user_id", user.ID), zap.Error(err))
		return err
	}

	return s.session.PatchTelegram(ctx, id, username)
}

func (s *service) Status(ctx context.Context) (structs.TelegramStatus, error) {
	user, ok := s.session.CurrentUser(ctx)
	if !ok {
		return structs.TelegramStatus{}, structs.ErrAuthRequired
	}

	status := structs.TelegramStatus{
		Linked:  user.TelegramLinked(),
		BotLink: s.BotLink(),
	}
	if status.Linked {
		status.ID = *user.TelegramID
	}
	if user.TelegramUsername != nil {
		status.Username = *user.TelegramUsername
	}
	return status, nil
}

func (s *service) BotLink() string {
	return "https://t.me/" + s.botUsername
}

// QR renders the bot link as a PNG.
func (s *service) QR() ([]byte, error) {
	return qrcode.Encode(s.BotLink(), qrcode.Medium, qrSize)
}
