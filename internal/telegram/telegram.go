// Package telegram talks to the remote telegram function.
package telegram

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/fx"

	"maison/internal/structs"
	"maison/pkg/apiclient"
	"maison/pkg/config"
)

var Module = fx.Provide(New)

const service = "telegram"

type (
	Params struct {
		fx.In
		Config config.IConfig
		API    *apiclient.Client
	}

	Client interface {
		LinkAccount(ctx context.Context, req structs.LinkTelegram) error
		NotifyOrder(ctx context.Context, req structs.NotifyOrder) error
	}

	client struct {
		api     *apiclient.Client
		baseURL string
	}
)

func New(p Params) Client {
	return NewClient(p.API, p.Config.GetString("services.telegram_url"))
}

func NewClient(api *apiclient.Client, baseURL string) Client {
	return &client{api: api, baseURL: baseURL}
}

func (c *client) LinkAccount(ctx context.Context, req structs.LinkTelegram) error {
	return c.api.Do(ctx, apiclient.Request{
		Service:  service,
		Op:       "link_account",
		Method:   http.MethodPost,
		BaseURL:  c.baseURL,
		Query:    url.Values{"path": {"/link-account"}},
		Body:     req,
		Fallback: "Failed to link Telegram account",
	}, nil)
}

func (c *client) NotifyOrder(ctx context.Context, req structs.NotifyOrder) error {
	return c.api.Do(ctx, apiclient.Request{
		Service:  service,
		Op:       "notify_order",
		Method:   http.MethodPost,
		BaseURL:  c.baseURL,
		Query:    url.Values{"path": {"/notify-order"}},
		Body:     req,
		Fallback: "Failed to send notification",
	}, nil)
}
