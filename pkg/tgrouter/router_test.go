package tgrouter

import (
	"context"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maison/pkg/logger"
)

type fakeBot struct {
	mu      sync.Mutex
	sent    []tgbotapi.Chattable
	updates chan tgbotapi.Update
	stopped bool
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, c)
	return tgbotapi.Message{}, nil
}

func (b *fakeBot) Request(tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (b *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

func (b *fakeBot) StopReceivingUpdates() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.stopped {
		b.stopped = true
		close(b.updates)
	}
}

func command(text string) *tgbotapi.Update {
	return &tgbotapi.Update{
		UpdateID: 1,
		Message: &tgbotapi.Message{
			Text:     text,
			Chat:     &tgbotapi.Chat{ID: 42},
			From:     &tgbotapi.User{ID: 42, UserName: "anna"},
			Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(text)}},
		},
	}
}

func TestRoutesFirstMatchWins(t *testing.T) {
	bot := &fakeBot{updates: make(chan tgbotapi.Update)}
	r := NewRouterFactory(logger.NewNop())(bot)

	var hits []string
	g := r.Group()
	On(g, Cmd("start"), func(c *Ctx) { hits = append(hits, "start") })
	On(g, Command(), func(c *Ctx) { hits = append(hits, "command") })
	On(g, Any(), func(c *Ctx) { hits = append(hits, "any") })

	r.ServeUpdate(command("/start"))
	r.ServeUpdate(command("/other"))
	r.ServeUpdate(&tgbotapi.Update{UpdateID: 2})

	assert.Equal(t, []string{"start", "command", "any"}, hits)
}

func TestGroupMiddleware(t *testing.T) {
	bot := &fakeBot{updates: make(chan tgbotapi.Update)}
	r := NewRouterFactory(logger.NewNop())(bot)

	var order []string
	g := r.Group()
	g.Use(func(next Handler) Handler {
		return func(c *Ctx) {
			order = append(order, "mw")
			next(c)
		}
	})
	On(g, Message(), func(c *Ctx) {
		order = append(order, "handler")
		require.NoError(t, c.Reply("hi"))
	})

	r.ServeUpdate(command("/help"))

	assert.Equal(t, []string{"mw", "handler"}, order)
	require.Len(t, bot.sent, 1)
	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, "hi", msg.Text)
}

func TestListenAndShutdown(t *testing.T) {
	bot := &fakeBot{updates: make(chan tgbotapi.Update)}
	r := NewRouterFactory(logger.NewNop())(bot, WithPoolSize(2))

	handled := make(chan struct{}, 1)
	On(r.Group(), Any(), func(c *Ctx) { handled <- struct{}{} })

	ctx, cancel := context.WithCancel(context.Background())
	go r.ListenUpdate(ctx)

	bot.updates <- *command("/start")
	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("update was not handled")
	}

	stopCtx, stop := context.WithTimeout(context.Background(), time.Second)
	defer stop()
	assert.NoError(t, r.Shutdown(stopCtx, cancel))
}

func TestFilters(t *testing.T) {
	bot := &fakeBot{updates: make(chan tgbotapi.Update)}
	r := NewRouterFactory(logger.NewNop())(bot)

	var hits []string
	On(r.Group(), Cmd("link", "help"), func(c *Ctx) { hits = append(hits, "cmd:"+c.Update().Message.Command()) })
	On(r.Group(), Text(), func(c *Ctx) { hits = append(hits, "text") })

	r.ServeUpdate(command("/help"))
	r.ServeUpdate(command("/start"))
	r.ServeUpdate(&tgbotapi.Update{Message: &tgbotapi.Message{Text: "привет", Chat: &tgbotapi.Chat{ID: 1}}})

	assert.Equal(t, []string{"cmd:help", "text"}, hits)
}

func TestMiddlewareOrderAndInheritance(t *testing.T) {
	bot := &fakeBot{updates: make(chan tgbotapi.Update)}
	r := NewRouterFactory(logger.NewNop())(bot)

	var order []string
	mw := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(c *Ctx) {
				order = append(order, name)
				next(c)
			}
		}
	}

	parent := r.Group()
	parent.Use(mw("parent"))
	child := parent.Group()
	child.Use(mw("child"))
	On(child, Any(), func(*Ctx) { order = append(order, "handler") }, mw("route"))

	r.ServeUpdate(command("/start"))

	assert.Equal(t, []string{"parent", "child", "route", "handler"}, order)
	assert.Len(t, parent.middlewares, 1)
}

func TestTypingWithoutChat(t *testing.T) {
	bot := &fakeBot{updates: make(chan tgbotapi.Update)}
	r := NewRouterFactory(logger.NewNop())(bot)

	var sender *tgbotapi.User
	On(r.Group(), Any(), func(c *Ctx) {
		sender = c.Sender()
		assert.NoError(t, c.Typing())
		assert.NoError(t, c.Reply("skipped"))
	})

	r.ServeUpdate(&tgbotapi.Update{UpdateID: 3})

	assert.Nil(t, sender)
	assert.Empty(t, bot.sent)
}
