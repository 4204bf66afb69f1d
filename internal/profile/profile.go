package profile

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

	Service interface {
		MyOrders(ctx context.Context) (structs.User, []structs.Order, error)
	}

	service struct {
		session session.Service
		orders  orders.Client
		logger  logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		session: p.Session,
		orders:  p.Orders,
		logger:  p.Logger,
	}
}

// MyOrders verifies the session and lists the user's own orders in the
// order the service returns them.
func (s *service) MyOrders(ctx context.Context) (structs.User, []structs.Order, error) {
	user, err := s.session.Verify(ctx)
	if err != nil {
		return structs.User{}, nil, err
	}

	list, err := s.orders.List(ctx, &user.ID)
	if err != nil {
		s.logger.Error(ctx, "->orders.List", zap.Int64("user_id", user.ID), zap.Error(err))
		return user, nil, err
	}
	return user, list, nil
}
