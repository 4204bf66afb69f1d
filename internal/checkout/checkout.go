// Package checkout turns the cart into an order.
package checkout

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"maison/internal/cart"
	"maison/internal/orders"
	"maison/internal/session"
	"maison/internal/structs"
	"maison/internal/telegram"
	"maison/internal/texts"
	"maison/pkg/config"
	"maison/pkg/logger"
	"maison/pkg/utils"
)

var Module = fx.Provide(New)

type (
	Params struct {
		fx.In
		Config   config.IConfig
		Logger   logger.Logger
		Session  session.Service
		Orders   orders.Client
		Telegram telegram.Client
	}

	Service interface {
		Checkout(ctx context.Context, c *cart.Cart, req structs.CheckoutRequest) (structs.OrderReceipt, error)
	}

	service struct {
		session  session.Service
		orders   orders.Client
		telegram telegram.Client
		logger   logger.Logger
		lang     utils.Lang
		notify   bool
	}
)

func New(p Params) Service {
	return &service{
		session:  p.Session,
		orders:   p.Orders,
		telegram: p.Telegram,
		logger:   p.Logger,
		lang:     texts.Lang(p.Config),
		notify:   p.Config.GetBool("checkout.notify_telegram"),
	}
}

// Checkout submits the cart as a card-paid order. The cart is cleared only
// after the orders service accepts it.
func (s *service) Checkout(ctx context.Context, c *cart.Cart, req structs.CheckoutRequest) (structs.OrderReceipt, error) {
	user, ok := s.session.CurrentUser(ctx)
	if !ok {
		return structs.OrderReceipt{}, structs.ErrAuthRequired
	}

	if c.IsEmpty() {
		return structs.OrderReceipt{}, fmt.Errorf("%w: %w", structs.ErrEmptyCart, structs.Invalid("cart", texts.Get(s.lang, texts.CartEmpty)))
	}
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return structs.OrderReceipt{}, structs.Invalid("address", texts.Get(s.lang, texts.AddressRequired))
	}
	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return structs.OrderReceipt{}, structs.Invalid("phone", texts.Get(s.lang, texts.PhoneRequired))
	}

	order := structs.CreateOrder{
		UserID:          user.ID,
		Items:           c.OrderItems(),
		TotalAmount:     c.Total(),
		DeliveryAddress: address,
		DeliveryPhone:   phone,
		PaymentMethod:   structs.PaymentMethodCard,
	}

	receipt, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Error(ctx, "->orders.Create", zap.Error(err))
		return structs.OrderReceipt{}, err
	}

	c.Clear()
	s.logger.Info(ctx, "order placed",
		zap.Int64("order_id", receipt.OrderID),
		zap.Int64("user_id", user.ID),
		zap.String("total", utils.FPrice(order.TotalAmount)),
	)

	if s.notify && user.TelegramLinked() {
		s.notifyTelegram(ctx, user, receipt, order)
	}
	return receipt, nil
}

func (s *service) notifyTelegram(ctx context.Context, user structs.User, receipt structs.OrderReceipt, order structs.CreateOrder) {
	err := s.telegram.NotifyOrder(ctx, structs.NotifyOrder{
		OrderID:        receipt.OrderID,
		UserName:       user.DisplayName(),
		TotalAmount:    order.TotalAmount,
		Items:          order.Items,
		TelegramChatID: *user.TelegramID,
	})
	if err != nil {
		s.logger.Warn(ctx, "->telegram.NotifyOrder", zap.Int64("order_id", receipt.OrderID), zap.Error(err))
	}
}
