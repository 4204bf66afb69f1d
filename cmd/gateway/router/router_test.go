package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminHandler "maison/apps/gateway/handlers/admin"
	authHandler "maison/apps/gateway/handlers/auth"
	cartHandler "maison/apps/gateway/handlers/cart"
	catalogHandler "maison/apps/gateway/handlers/catalog"
	checkoutHandler "maison/apps/gateway/handlers/checkout"
	"maison/apps/gateway/handlers/middleware"
	profileHandler "maison/apps/gateway/handlers/profile"
	telegramHandler "maison/apps/gateway/handlers/telegram"
	viewHandler "maison/apps/gateway/handlers/view"
	"maison/internal/admin"
	"maison/internal/auth"
	"maison/internal/cart"
	"maison/internal/catalog"
	"maison/internal/checkout"
	"maison/internal/command"
	"maison/internal/orders"
	"maison/internal/profile"
	"maison/internal/session"
	"maison/internal/telegram"
	"maison/internal/telegramlink"
	"maison/internal/view"
	"maison/pkg/apiclient"
	"maison/pkg/config"
	"maison/pkg/logger"
	"maison/pkg/metrics"
	sessionRepo "maison/pkg/repository/session"
	"maison/pkg/storage"
	"maison/pkg/utils"
)

const customerJSON = `{"id":7,"email":"anna@example.com","full_name":"Анна","role":"customer","telegram_id":null,"telegram_username":null}`

type envelope struct {
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
	Payload json.RawMessage `json:"payload"`
}

func remote(t *testing.T, h http.HandlerFunc) string {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return server.URL
}

func newServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authURL := remote(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("path") {
		case "/login":
			_, _ = w.Write([]byte(`{"token":"tok-1","user":` + customerJSON + `}`))
		case "/verify":
			if r.Header.Get(apiclient.HeaderAuthToken) != "tok-1" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Token invalid"}`))
				return
			}
			_, _ = w.Write([]byte(`{"user":` + customerJSON + `}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ordersURL := remote(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"order_id":42,"created_at":"2024-01-01T00:00:00","status":"pending"}`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	})
	telegramURL := remote(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	cfg := config.New(viper.New())
	log := logger.NewNop()
	m := metrics.New()
	api := apiclient.NewWithHTTP(http.DefaultClient, log, m)

	repo := sessionRepo.New(sessionRepo.Params{Storage: storage.NewMemory()})
	ordersClient := orders.NewClient(api, ordersURL)
	telegramClient := telegram.NewClient(api, telegramURL)
	sess := session.New(session.Params{Config: cfg, Logger: log, Auth: auth.NewClient(api, authURL), SessionRepo: repo})
	cat := catalog.New()
	tl := telegramlink.New(telegramlink.Params{Config: cfg, Logger: log, Session: sess, Telegram: telegramClient})

	d := command.NewDispatcher(&command.Env{
		Session:      sess,
		Cart:         cart.New(),
		View:         view.New(view.Params{Config: cfg, Catalog: cat}),
		Catalog:      cat,
		Checkout:     checkout.New(checkout.Params{Config: cfg, Logger: log, Session: sess, Orders: ordersClient, Telegram: telegramClient}),
		Admin:        admin.New(admin.Params{Logger: log, Session: sess, Orders: ordersClient}),
		TelegramLink: tl,
		Profile:      profile.New(profile.Params{Logger: log, Session: sess, Orders: ordersClient}),
		Logger:       log,
		Lang:         utils.RU,
	}, log, m)
	go d.Run()
	t.Cleanup(func() { _ = d.Stop(context.Background()) })

	return Handler(Params{
		Middleware: middleware.NewMiddleware(middleware.Params{Logger: log}),
		Config:     cfg,
		Logger:     log,
		Metrics:    m,
		Auth:       authHandler.New(authHandler.Params{Logger: log, Dispatcher: d}),
		Cart:       cartHandler.New(cartHandler.Params{Logger: log, Dispatcher: d}),
		Catalog:    catalogHandler.New(catalogHandler.Params{Logger: log, Catalog: cat, Dispatcher: d}),
		View:       viewHandler.New(viewHandler.Params{Logger: log, Dispatcher: d}),
		Checkout:   checkoutHandler.New(checkoutHandler.Params{Logger: log, Dispatcher: d}),
		Profile:    profileHandler.New(profileHandler.Params{Logger: log, Dispatcher: d}),
		Telegram:   telegramHandler.New(telegramHandler.Params{Logger: log, Dispatcher: d, TelegramLink: tl}),
		Admin:      adminHandler.New(adminHandler.Params{Logger: log, Dispatcher: d}),
	})
}

func call(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestCatalogAndCategories(t *testing.T) {
	h := newServer(t)

	rec, env := call(t, h, http.MethodGet, "/api/v1/catalog", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var products []map[string]any
	require.NoError(t, json.Unmarshal(env.Payload, &products))
	assert.Len(t, products, 3)

	rec, env = call(t, h, http.MethodGet, "/api/v1/catalog?category=jewelry", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Payload, &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Ювелирное колье", products[0]["name"])

	rec, _ = call(t, h, http.MethodGet, "/api/v1/catalog?category=shoes", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = call(t, h, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var categories []map[string]any
	require.NoError(t, json.Unmarshal(env.Payload, &categories))
	assert.Len(t, categories, 4)
}

func TestCheckoutFlow(t *testing.T) {
	h := newServer(t)

	rec, env := call(t, h, http.MethodPost, "/api/v1/cart", `{"product_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var added struct {
		Lines []struct {
			ID           int64  `json:"id"`
			Quantity     int64  `json:"quantity"`
			SelectedSize string `json:"selectedSize"`
		} `json:"lines"`
		Total     int64 `json:"total"`
		ItemCount int64 `json:"item_count"`
	}
	require.NoError(t, json.Unmarshal(env.Payload, &added))
	require.Len(t, added.Lines, 1)
	assert.Equal(t, "One Size", added.Lines[0].SelectedSize)
	assert.Equal(t, int64(45000), added.Total)
	assert.Equal(t, int64(1), added.ItemCount)

	rec, _ = call(t, h, http.MethodPost, "/api/v1/checkout", `{"address":"Москва","phone":"+7"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = call(t, h, http.MethodGet, "/api/v1/toasts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var toasts []map[string]any
	require.NoError(t, json.Unmarshal(env.Payload, &toasts))
	require.Len(t, toasts, 1)
	assert.Equal(t, "Войдите, чтобы оформить заказ", toasts[0]["title"])

	rec, env = call(t, h, http.MethodPost, "/api/v1/auth/login", `{"email":"anna@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var user map[string]any
	require.NoError(t, json.Unmarshal(env.Payload, &user))
	assert.Equal(t, "anna@example.com", user["email"])

	rec, env = call(t, h, http.MethodPost, "/api/v1/checkout", `{"address":"Москва","phone":"+7"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var receipt map[string]any
	require.NoError(t, json.Unmarshal(env.Payload, &receipt))
	assert.EqualValues(t, 42, receipt["order_id"])

	rec, env = call(t, h, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var info map[string]any
	require.NoError(t, json.Unmarshal(env.Payload, &info))
	assert.EqualValues(t, 0, info["total"])
}

func TestAdminForbiddenForCustomer(t *testing.T) {
	h := newServer(t)

	rec, _ := call(t, h, http.MethodGet, "/api/v1/admin/orders", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = call(t, h, http.MethodPost, "/api/v1/auth/login", `{"email":"anna@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = call(t, h, http.MethodGet, "/api/v1/admin/orders", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env := call(t, h, http.MethodGet, "/api/v1/view", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var snapshot map[string]any
	require.NoError(t, json.Unmarshal(env.Payload, &snapshot))
	assert.Equal(t, "home", snapshot["view"].(map[string]any)["section"])
}

func TestUpdateView(t *testing.T) {
	h := newServer(t)

	rec, env := call(t, h, http.MethodPut, "/api/v1/view", `{"section":"catalog","category":"clothing","checkout_open":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var snapshot struct {
		View struct {
			Section      string `json:"section"`
			Category     string `json:"category"`
			CheckoutOpen bool   `json:"checkout_open"`
		} `json:"view"`
		Products []map[string]any `json:"products"`
	}
	require.NoError(t, json.Unmarshal(env.Payload, &snapshot))
	assert.Equal(t, "catalog", snapshot.View.Section)
	assert.Equal(t, "clothing", snapshot.View.Category)
	assert.True(t, snapshot.View.CheckoutOpen)
	require.Len(t, snapshot.Products, 1)

	rec, _ = call(t, h, http.MethodPut, "/api/v1/view", `{"section":"basement"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBadRequests(t *testing.T) {
	h := newServer(t)

	rec, _ := call(t, h, http.MethodDelete, "/api/v1/cart/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = call(t, h, http.MethodPost, "/api/v1/cart", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = call(t, h, http.MethodPatch, "/api/v1/cart", `{"product_id":1,"quantity":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTelegramQRAndMetrics(t *testing.T) {
	h := newServer(t)

	rec, _ := call(t, h, http.MethodGet, "/api/v1/telegram/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	call(t, h, http.MethodGet, "/api/v1/catalog", "")
	rec, _ = call(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "maison_commands_total")
}

func TestRequestIDEchoed(t *testing.T) {
	h := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	req.Header.Set(apiclient.HeaderRequestID, "req-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-1", rec.Header().Get(apiclient.HeaderRequestID))
}
