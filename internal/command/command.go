// Package command runs user actions as command objects on a single
// goroutine. Every command applies the same error policy: a destructive
// toast, the auth dialog for session errors, the home section for
// authorization errors.
package command

import (
	"context"
	"errors"

	"maison/internal/admin"
	"maison/internal/cart"
	"maison/internal/catalog"
	"maison/internal/checkout"
	"maison/internal/profile"
	"maison/internal/session"
	"maison/internal/structs"
	"maison/internal/telegramlink"
	"maison/internal/texts"
	"maison/internal/view"
	"maison/pkg/logger"
	"maison/pkg/utils"
)

type Command interface {
	Name() string
	Execute(ctx context.Context, env *Env) error
}

// Env is everything a command may touch. Only the dispatcher goroutine
// executes commands, so commands see the state one at a time.
type Env struct {
	Session      session.Service
	Cart         *cart.Cart
	View         *view.Controller
	Catalog      catalog.Service
	Checkout     checkout.Service
	Admin        admin.Dashboard
	TelegramLink telegramlink.Service
	Profile      profile.Service
	Logger       logger.Logger
	Lang         utils.Lang
}

func (e *Env) text(key texts.TextKey) string {
	return texts.Get(e.Lang, key)
}

func isAuthErr(err error) bool {
	return errors.Is(err, structs.ErrAuthRequired) ||
		errors.Is(err, structs.ErrUnauthenticated) ||
		errors.Is(err, structs.ErrInvalidSession)
}

// fail shows err as a destructive toast and returns it unchanged.
func (e *Env) fail(title, description string, err error) error {
	switch {
	case isAuthErr(err):
		e.View.OpenAuth()
	case errors.Is(err, structs.ErrForbidden):
		_ = e.View.Show(view.SectionHome)
	}
	e.View.Failure(title, description)
	return err
}

// describe is the toast text for err: the service or validation message
// when there is one, else fallback.
func describe(err error, fallback string) string {
	var (
		remote  *structs.RemoteError
		invalid *structs.ValidationError
	)
	if errors.As(err, &remote) || errors.As(err, &invalid) {
		return structs.Message(err)
	}
	return fallback
}

// sessionFail covers the commands that need a verified session.
func (e *Env) sessionFail(err error) error {
	if errors.Is(err, structs.ErrInvalidSession) {
		return e.fail(e.text(texts.SessionExpired), "", err)
	}
	return e.fail(e.text(texts.Error), e.text(texts.LoginRequired), err)
}
