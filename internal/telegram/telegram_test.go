package telegram

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maison/internal/structs"
	"maison/pkg/apiclient"
	"maison/pkg/logger"
)

func TestLinkAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/link-account", r.URL.Query().Get("path"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"user_id":1,"telegram_id":123456,"telegram_username":"anna"}`, string(body))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	c := NewClient(apiclient.NewWithHTTP(server.Client(), logger.NewNop(), nil), server.URL)
	err := c.LinkAccount(context.Background(), structs.LinkTelegram{UserID: 1, TelegramID: 123456, TelegramUsername: "anna"})
	require.NoError(t, err)
}

func TestNotifyOrderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notify-order", r.URL.Query().Get("path"))
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Bot token not configured"}`))
	}))
	defer server.Close()

	c := NewClient(apiclient.NewWithHTTP(server.Client(), logger.NewNop(), nil), server.URL)
	err := c.NotifyOrder(context.Background(), structs.NotifyOrder{OrderID: 1, TelegramChatID: 5})
	require.ErrorIs(t, err, structs.ErrRemote)
	assert.Equal(t, "Bot token not configured", structs.Message(err))
}
