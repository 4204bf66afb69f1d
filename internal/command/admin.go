package command

import (
	"context"
	"errors"

	"maison/internal/admin"
	"maison/internal/structs"
	"maison/internal/texts"
)

type AdminResult struct {
	User   structs.User    `json:"user"`
	Orders []structs.Order `json:"orders"`
	Stats  structs.Stats   `json:"stats"`
}

type OpenAdminCommand struct {
	Result AdminResult
}

func (c *OpenAdminCommand) Name() string { return "admin.open" }

func (c *OpenAdminCommand) Execute(ctx context.Context, env *Env) error {
	user, list, err := env.Admin.Open(ctx)
	switch {
	case err == nil:
	case errors.Is(err, structs.ErrForbidden):
		return env.fail(env.text(texts.AccessDenied), "", err)
	case isAuthErr(err):
		return env.sessionFail(err)
	default:
		return env.fail(env.text(texts.OrdersLoadFailed), describe(err, ""), err)
	}

	c.Result = AdminResult{User: user, Orders: list, Stats: admin.Stats(list)}
	return nil
}

type UpdateOrderStatusCommand struct {
	OrderID int64
	Status  string
	Result  AdminResult
}

func (c *UpdateOrderStatusCommand) Name() string { return "admin.update_status" }

func (c *UpdateOrderStatusCommand) Execute(ctx context.Context, env *Env) error {
	status, err := structs.ParseOrderStatus(c.Status)
	if err != nil {
		return env.fail(env.text(texts.StatusUpdateFailed), "", err)
	}

	list, err := env.Admin.SetStatus(ctx, c.OrderID, status)
	if err != nil {
		if errors.Is(err, structs.ErrForbidden) {
			return env.fail(env.text(texts.AccessDenied), "", err)
		}
		return env.fail(env.text(texts.StatusUpdateFailed), describe(err, ""), err)
	}

	user, _ := env.Session.CurrentUser(ctx)
	c.Result = AdminResult{User: user, Orders: list, Stats: admin.Stats(list)}
	env.View.Success(env.text(texts.StatusUpdated), "")
	return nil
}
