package cart

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"maison/internal/command"
	"maison/internal/responses"
	"maison/internal/structs"
	"maison/pkg/logger"
	"maison/pkg/reply"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		GetCart(c *gin.Context)
		AddToCart(c *gin.Context)
		SetQuantity(c *gin.Context)
		RemoveFromCart(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger     logger.Logger
		Dispatcher *command.Dispatcher
	}

	handler struct {
		logger     logger.Logger
		dispatcher *command.Dispatcher
	}
)

func New(p Params) Handler {
	return &handler{
		logger:     p.Logger,
		dispatcher: p.Dispatcher,
	}
}

func (h *handler) GetCart(c *gin.Context) {
	var response structs.Response
	defer reply.Response(c.Writer, &response)

	cmd := &command.SnapshotCommand{}
	if err := h.dispatcher.Dispatch(c.Request.Context(), cmd); err != nil {
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = cmd.Result.Cart
}

func (h *handler) AddToCart(c *gin.Context) {
	var (
		response structs.Response
		request  structs.AddToCart
		ctx      = c.Request.Context()
	)
	defer reply.Response(c.Writer, &response)

	if err := c.ShouldBindJSON(&request); err != nil || request.ProductID == 0 {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	cmd := &command.AddToCartCommand{ProductID: request.ProductID}
	if err := h.dispatcher.Dispatch(ctx, cmd); err != nil {
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = cmd.Result
}

func (h *handler) SetQuantity(c *gin.Context) {
	var (
		response structs.Response
		request  structs.SetQuantity
		ctx      = c.Request.Context()
	)
	defer reply.Response(c.Writer, &response)

	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	cmd := &command.SetQuantityCommand{ProductID: request.ProductID, Quantity: request.Quantity}
	if err := h.dispatcher.Dispatch(ctx, cmd); err != nil {
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = cmd.Result
}

func (h *handler) RemoveFromCart(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer reply.Response(c.Writer, &response)

	id, err := cast.ToInt64E(c.Param("id"))
	if err != nil {
		h.logger.Warn(ctx, " error parse id", zap.Error(err))
		response = responses.BadRequest
		return
	}

	cmd := &command.RemoveFromCartCommand{ProductID: id}
	if err := h.dispatcher.Dispatch(ctx, cmd); err != nil {
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = cmd.Result
}
