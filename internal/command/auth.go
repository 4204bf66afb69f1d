package command

import (
	"context"

	"maison/internal/structs"
	"maison/internal/texts"
)

type LoginCommand struct {
	Request structs.LoginRequest
	Result  structs.AuthResponse
}

func (c *LoginCommand) Name() string { return "login" }

func (c *LoginCommand) Execute(ctx context.Context, env *Env) error {
	resp, err := env.Session.Login(ctx, c.Request)
	if err != nil {
		return env.fail(env.text(texts.LoginFailed), describe(err, env.text(texts.LoginFailedHint)), err)
	}

	c.Result = resp
	env.View.CloseAuth()
	env.View.Success(env.text(texts.LoginSuccess), "")
	return nil
}

type RegisterCommand struct {
	Request structs.RegisterRequest
	Result  structs.AuthResponse
}

func (c *RegisterCommand) Name() string { return "register" }

func (c *RegisterCommand) Execute(ctx context.Context, env *Env) error {
	resp, err := env.Session.Register(ctx, c.Request)
	if err != nil {
		return env.fail(env.text(texts.RegisterFailed), describe(err, env.text(texts.RegisterFailedHint)), err)
	}

	c.Result = resp
	env.View.CloseAuth()
	env.View.Success(env.text(texts.RegisterSuccess), "")
	return nil
}

type LogoutCommand struct{}

func (c *LogoutCommand) Name() string { return "logout" }

func (c *LogoutCommand) Execute(ctx context.Context, env *Env) error {
	if err := env.Session.Logout(ctx); err != nil {
		return env.fail(env.text(texts.Error), "", err)
	}
	env.View.Success(env.text(texts.LoggedOut), "")
	return nil
}

type VerifyCommand struct {
	Result structs.User
}

func (c *VerifyCommand) Name() string { return "verify" }

func (c *VerifyCommand) Execute(ctx context.Context, env *Env) error {
	user, err := env.Session.Verify(ctx)
	if err != nil {
		return env.sessionFail(err)
	}
	c.Result = user
	return nil
}
