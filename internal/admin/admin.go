// Package admin is the order dashboard available to admin users.
package admin

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"maison/internal/orders"
	"maison/internal/session"
	"maison/internal/structs"
	"maison/pkg/logger"
)

var Module = fx.Provide(New)

type (
	Params struct {
		fx.In
		Logger  logger.Logger
		Session session.Service
		Orders  orders.Client
	}

	Dashboard interface {
		// Open verifies the session, then loads every order for an admin.
		Open(ctx context.Context) (structs.User, []structs.Order, error)
		LoadAll(ctx context.Context) ([]structs.Order, error)
		SetStatus(ctx context.Context, orderID int64, status structs.OrderStatus) ([]structs.Order, error)
	}

	dashboard struct {
		session session.Service
		orders  orders.Client
		logger  logger.Logger
	}
)

func New(p Params) Dashboard {
	return &dashboard{
		session: p.Session,
		orders:  p.Orders,
		logger:  p.Logger,
	}
}

func (d *dashboard) Open(ctx context.Context) (structs.User, []structs.Order, error) {
	user, err := d.session.Verify(ctx)
	if err != nil {
		return structs.User{}, nil, err
	}
	if !user.IsAdmin() {
		d.logger.Warn(ctx, "admin dashboard denied", zap.Int64("user_id", user.ID))
		return user, nil, structs.ErrForbidden
	}

	list, err := d.LoadAll(ctx)
	if err != nil {
		return user, nil, err
	}
	return user, list, nil
}

func (d *dashboard) LoadAll(ctx context.Context) ([]structs.Order, error) {
	list, err := d.orders.List(ctx, nil)
	if err != nil {
		d.logger.Error(ctx, "->orders.List", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// SetStatus accepts any transition and then reloads the full list.
func (d *dashboard) SetStatus(ctx context.Context, orderID int64, status structs.OrderStatus) ([]structs.Order, error) {
	if err := d.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, structs.ErrUnknownStatus
	}

	err := d.orders.UpdateStatus(ctx, structs.UpdateStatus{OrderID: orderID, Status: status})
	if err != nil {
		d.logger.Error(ctx, "->orders.UpdateStatus", zap.Int64("order_id", orderID), zap.Error(err))
		return nil, err
	}
	return d.LoadAll(ctx)
}

func (d *dashboard) requireAdmin(ctx context.Context) error {
	user, ok := d.session.CurrentUser(ctx)
	if !ok {
		return structs.ErrAuthRequired
	}
	if !user.IsAdmin() {
		return structs.ErrForbidden
	}
	return nil
}

// Stats summarises orders: every order counts toward Total, pending,
// processing and shipped toward Active, delivered totals toward Revenue.
func Stats(list []structs.Order) structs.Stats {
	var st structs.Stats
	for _, o := range list {
		st.Total++
		if o.Status.Active() {
			st.Active++
		}
		if o.Status == structs.OrderStatusDelivered {
			st.Revenue += int64(o.TotalAmount)
		}
	}
	return st
}
