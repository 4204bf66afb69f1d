package command

import (
	"context"

	"maison/internal/structs"
	"maison/internal/texts"
	"maison/internal/view"
)

type ProfileResult struct {
	User   structs.User    `json:"user"`
	Orders []structs.Order `json:"orders"`
}

type MyOrdersCommand struct {
	Result ProfileResult
}

func (c *MyOrdersCommand) Name() string { return "profile.orders" }

func (c *MyOrdersCommand) Execute(ctx context.Context, env *Env) error {
	user, list, err := env.Profile.MyOrders(ctx)
	if err != nil {
		if isAuthErr(err) {
			_ = env.View.Show(view.SectionHome)
			return env.sessionFail(err)
		}
		return env.fail(env.text(texts.OrdersLoadFailed), describe(err, ""), err)
	}

	c.Result = ProfileResult{User: user, Orders: list}
	return nil
}
