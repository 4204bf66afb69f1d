// Package orders talks to the remote orders function.
package orders

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/fx"

	"maison/internal/structs"
	"maison/pkg/apiclient"
	"maison/pkg/config"
)

var Module = fx.Provide(New)

const service = "orders"

type (
	Params struct {
		fx.In
		Config config.IConfig
		API    *apiclient.Client
	}

	Client interface {
		Create(ctx context.Context, req structs.CreateOrder) (structs.OrderReceipt, error)
		// List returns every order when userID is nil, else that user's orders.
		List(ctx context.Context, userID *int64) ([]structs.Order, error)
		Get(ctx context.Context, orderID int64) (structs.Order, error)
		UpdateStatus(ctx context.Context, req structs.UpdateStatus) error
	}

	client struct {
		api     *apiclient.Client
		baseURL string
	}
)

func New(p Params) Client {
	return NewClient(p.API, p.Config.GetString("services.orders_url"))
}

func NewClient(api *apiclient.Client, baseURL string) Client {
	return &client{api: api, baseURL: baseURL}
}

func (c *client) Create(ctx context.Context, req structs.CreateOrder) (structs.OrderReceipt, error) {
	var resp structs.OrderReceipt
	err := c.api.Do(ctx, apiclient.Request{
		Service:  service,
		Op:       "create",
		Method:   http.MethodPost,
		BaseURL:  c.baseURL,
		Body:     req,
		Fallback: "Failed to create order",
	}, &resp)
	return resp, err
}

func (c *client) List(ctx context.Context, userID *int64) ([]structs.Order, error) {
	var query url.Values
	if userID != nil {
		query = url.Values{"user_id": {strconv.FormatInt(*userID, 10)}}
	}

	var resp []structs.Order
	err := c.api.Do(ctx, apiclient.Request{
		Service:  service,
		Op:       "list",
		Method:   http.MethodGet,
		BaseURL:  c.baseURL,
		Query:    query,
		Fallback: "Failed to fetch orders",
	}, &resp)
	if resp == nil {
		resp = []structs.Order{}
	}
	return resp, err
}

func (c *client) Get(ctx context.Context, orderID int64) (structs.Order, error) {
	var resp structs.Order
	err := c.api.Do(ctx, apiclient.Request{
		Service:  service,
		Op:       "get",
		Method:   http.MethodGet,
		BaseURL:  c.baseURL,
		Query:    url.Values{"order_id": {strconv.FormatInt(orderID, 10)}},
		Fallback: "Failed to fetch order",
	}, &resp)
	if apiclient.IsStatus(err, http.StatusNotFound) {
		return resp, structs.ErrNotFound
	}
	return resp, err
}

func (c *client) UpdateStatus(ctx context.Context, req structs.UpdateStatus) error {
	return c.api.Do(ctx, apiclient.Request{
		Service:  service,
		Op:       "update_status",
		Method:   http.MethodPut,
		BaseURL:  c.baseURL,
		Body:     req,
		Fallback: "Failed to update order status",
	}, nil)
}
