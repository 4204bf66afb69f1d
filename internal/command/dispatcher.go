package command

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"maison/internal/admin"
	"maison/internal/cart"
	"maison/internal/catalog"
	"maison/internal/checkout"
	"maison/internal/profile"
	"maison/internal/session"
	"maison/internal/structs"
	"maison/internal/telegramlink"
	"maison/internal/texts"
	"maison/internal/view"
	"maison/pkg/config"
	"maison/pkg/logger"
	"maison/pkg/metrics"
	"maison/pkg/utils"
)

var Module = fx.Provide(New)

var ErrStopped = errors.New("dispatcher stopped")

type Params struct {
	fx.In
	fx.Lifecycle

	Config       config.IConfig
	Logger       logger.Logger
	Metrics      *metrics.Metrics `optional:"true"`
	Session      session.Service
	Cart         *cart.Cart
	View         *view.Controller
	Catalog      catalog.Service
	Checkout     checkout.Service
	Admin        admin.Dashboard
	TelegramLink telegramlink.Service
	Profile      profile.Service
}

// concurrent commands skip the duplicate guard; read-only ones use it.
type concurrent interface {
	Concurrent() bool
}

type job struct {
	ctx  context.Context
	cmd  Command
	done chan error
}

type Dispatcher struct {
	env     *Env
	logger  logger.Logger
	metrics *metrics.Metrics

	queue    chan job
	stop     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once

	mu       sync.Mutex
	inflight map[string]struct{}
}

func New(p Params) *Dispatcher {
	d := NewDispatcher(&Env{
		Session:      p.Session,
		Cart:         p.Cart,
		View:         p.View,
		Catalog:      p.Catalog,
		Checkout:     p.Checkout,
		Admin:        p.Admin,
		TelegramLink: p.TelegramLink,
		Profile:      p.Profile,
		Logger:       p.Logger,
		Lang:         texts.Lang(p.Config),
	}, p.Logger, p.Metrics)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go d.Run()
			p.Logger.Info(ctx, "dispatcher started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
	return d
}

func NewDispatcher(env *Env, log logger.Logger, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{
		env:      env,
		logger:   log,
		metrics:  m,
		queue:    make(chan job),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
		inflight: map[string]struct{}{},
	}
}

// Run executes queued commands one at a time until Stop is called.
func (d *Dispatcher) Run() {
	defer close(d.stopped)
	for {
		select {
		case j := <-d.queue:
			j.done <- d.execute(j)
		case <-d.stop:
			return
		}
	}
}

// Stop ends Run after the command being executed, if any, has finished.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.stopOnce.Do(func() { close(d.stop) })
	select {
	case <-d.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dispatch queues cmd and waits for it to finish. A second command with the
// same name is refused with structs.ErrBusy until the first completes.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) error {
	name := cmd.Name()
	if c, ok := cmd.(concurrent); !ok || !c.Concurrent() {
		if !d.acquire(name) {
			d.metrics.ObserveCommand(name, "busy")
			return structs.ErrBusy
		}
		defer d.release(name)
	}

	j := job{ctx: ctx, cmd: cmd, done: make(chan error, 1)}
	select {
	case d.queue <- j:
	case <-d.stop:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	// once queued the command always runs to completion
	return <-j.done
}

func (d *Dispatcher) acquire(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, busy := d.inflight[name]; busy {
		return false
	}
	d.inflight[name] = struct{}{}
	return true
}

func (d *Dispatcher) release(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.inflight, name)
}

func (d *Dispatcher) execute(j job) (err error) {
	name := j.cmd.Name()
	ctx := d.logger.WithRequestID(context.WithoutCancel(j.ctx), utils.GenKSUID())
	ctx, capture := d.logger.ContextWithCapture(ctx, "command."+name)

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error(ctx, "command panicked", zap.String("command", name), zap.Any("panic", r))
			err = fmt.Errorf("command %s: panic: %v", name, r)
		}

		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		d.metrics.ObserveCommand(name, outcome)
		capture(zap.String("outcome", outcome))
	}()

	return j.cmd.Execute(ctx, d.env)
}
