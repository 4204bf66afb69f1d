// Package auth talks to the remote auth function.
package auth

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

const service = "auth"

type (
	Params struct {
		fx.In
		Config config.IConfig
		API    *apiclient.Client
	}

	Client interface {
		Register(ctx context.Context, req structs.RegisterRequest) (structs.AuthResponse, error)
		Login(ctx context.Context, req structs.LoginRequest) (structs.AuthResponse, error)
		Verify(ctx context.Context, token string) (structs.User, error)
	}

	client struct {
		api     *apiclient.Client
		baseURL string
	}
)

func New(p Params) Client {
	return NewClient(p.API, p.Config.GetString("services.auth_url"))
}

func NewClient(api *apiclient.Client, baseURL string) Client {
	return &client{api: api, baseURL: baseURL}
}

func path(p string) url.Values {
	return url.Values{"path": {p}}
}

func (c *client) Register(ctx context.Context, req structs.RegisterRequest) (structs.AuthResponse, error) {
	var resp structs.AuthResponse
	err := c.api.Do(ctx, apiclient.Request{
		Service:  service,
		Op:       "register",
		Method:   http.MethodPost,
		BaseURL:  c.baseURL,
		Query:    path("/register"),
		Body:     req,
		Fallback: "Registration failed",
	}, &resp)
	return resp, err
}

func (c *client) Login(ctx context.Context, req structs.LoginRequest) (structs.AuthResponse, error) {
	var resp structs.AuthResponse
	err := c.api.Do(ctx, apiclient.Request{
		Service:  service,
		Op:       "login",
		Method:   http.MethodPost,
		BaseURL:  c.baseURL,
		Query:    path("/login"),
		Body:     req,
		Fallback: "Login failed",
	}, &resp)
	return resp, err
}

func (c *client) Verify(ctx context.Context, token string) (structs.User, error) {
	var resp structs.VerifyResponse
	err := c.api.Do(ctx, apiclient.Request{
		Service:  service,
		Op:       "verify",
		Method:   http.MethodGet,
		BaseURL:  c.baseURL,
		Query:    path("/verify"),
		Header:   http.Header{apiclient.HeaderAuthToken: {token}},
		Fallback: "Token invalid",
	}, &resp)
	return resp.User, err
}
