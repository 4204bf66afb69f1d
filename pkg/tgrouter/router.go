package tgrouter

import (
	"context"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"maison/pkg/logger"
)

var Module = fx.Provide(NewRouterFactory)

// Bot is the part of *tgbotapi.BotAPI the router and its handlers use.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type RouterFactory func(Bot, ...OptFn) *Router

type Router struct {
	bot      Bot
	poolSize int
	logger   logger.Logger
	wg       sync.WaitGroup
	pool     sync.Pool

	*RouterGroup
}

type Handler func(*Ctx)

type Middleware func(Handler) Handler

func NewRouterFactory(logger logger.Logger) RouterFactory {
	return func(bot Bot, options ...OptFn) *Router {
		r := &Router{logger: logger, bot: bot, poolSize: _poolSize}
		for _, opt := range options {
			opt(r)
		}
		r.pool.New = func() any {
			return &Ctx{bot: bot}
		}
		r.RouterGroup = &RouterGroup{logger: r.logger}
		return r
	}
}

// poolSize - default router poolSize.
const _poolSize = 10

type OptFn func(r *Router)

func WithPoolSize(psize int) OptFn {
	return func(r *Router) {
		if psize > 0 {
			r.poolSize = psize
		}
	}
}

// ListenUpdate long-polls Telegram and fans updates out to poolSize
// workers. It returns when ctx is cancelled.
func (r *Router) ListenUpdate(ctx context.Context) {
	updates := r.bot.GetUpdatesChan(tgbotapi.UpdateConfig{
		Offset:  0,
		Timeout: 60,
		Limit:   100,
	})

	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for i := 1; i <= r.poolSize; i++ {
		r.wg.Add(1)
		go func(workerID int) {
			defer r.wg.Done()
			for {
				select {
				case update, ok := <-updates:
					if !ok {
						r.logger.Warn(ctx, "Update channel closed, worker shutting down",
							zap.Int("workerID", workerID))
						return
					}
					r.ServeUpdate(&update)
				case <-workerCtx.Done():
					return
				}
			}
		}(i)
	}

	<-ctx.Done()
}

const shutdownPollIntervalMax = 500 * time.Millisecond

// Shutdown stops polling, cancels the workers and waits for them until ctx
// expires.
func (r *Router) Shutdown(ctx context.Context, cancel context.CancelFunc) error {
	pollIntervalBase := time.Millisecond
	nextPollInterval := func() time.Duration {
		// Add 10% jitter.
		interval := pollIntervalBase + time.Duration(rand.Intn(int(pollIntervalBase/10)))
		// Double and clamp for next time.
		pollIntervalBase *= 2
		if pollIntervalBase > shutdownPollIntervalMax {
			pollIntervalBase = shutdownPollIntervalMax
		}
		return interval
	}

	r.logger.Info(ctx, "Workers, shutting down...")
	r.bot.StopReceivingUpdates()
	cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(nextPollInterval())
	defer timer.Stop()
	for {
		select {
		case <-done:
			r.logger.Info(ctx, "Workers, stopped!")
			return nil
		case <-ctx.Done():
			r.logger.Warn(ctx, "Shutdown timeout exceeded")
			return ctx.Err()
		case <-timer.C:
			timer.Reset(nextPollInterval())
		}
	}
}

func (r *Router) Use(middlewares ...Middleware) {
	r.RouterGroup.Use(middlewares...)
}

// ServeUpdate routes a single update synchronously.
func (r *Router) ServeUpdate(update *tgbotapi.Update) {
	c := r.pool.Get().(*Ctx)
	c.update = update
	c.Context = r.logger.Context(context.Background())

	r.handle(c)

	c.update, c.Context = nil, nil
	r.pool.Put(c)
}

func (r *Router) handle(c *Ctx) {
	for _, rt := range r.routes {
		if rt.filter(c) {
			rt.handler(c)
			return
		}
	}
	r.logger.Debug(c.Context, "no route for update", zap.Int("update_id", c.update.UpdateID))
}
