package command

import (
	"context"
	"errors"

	"maison/internal/structs"
	"maison/internal/texts"
)

type LinkTelegramCommand struct {
	Request structs.LinkTelegramRequest
	Result  structs.TelegramStatus
}

func (c *LinkTelegramCommand) Name() string { return "telegram.link" }

func (c *LinkTelegramCommand) Execute(ctx context.Context, env *Env) error {
	err := env.TelegramLink.Link(ctx, c.Request.TelegramID, c.Request.TelegramUsername)
	switch {
	case err == nil:
	case isAuthErr(err):
		return env.fail(env.text(texts.Error), env.text(texts.LoginRequired), err)
	case errors.Is(err, structs.ErrValidation):
		return env.fail(env.text(texts.Error), structs.Message(err), err)
	default:
		return env.fail(env.text(texts.TelegramLinkFailed), env.text(texts.CheckAndRetry), err)
	}

	c.Result, err = env.TelegramLink.Status(ctx)
	if err != nil {
		return env.fail(env.text(texts.Error), "", err)
	}
	env.View.Success(env.text(texts.TelegramLinked), env.text(texts.TelegramLinkedHint))
	return nil
}
