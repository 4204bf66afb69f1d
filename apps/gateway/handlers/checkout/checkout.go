package checkout

import (
	"github.com/gin-gonic/gin"
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
		Checkout(c *gin.Context)
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

func (h *handler) Checkout(c *gin.Context) {
	var (
		response structs.Response
		request  structs.CheckoutRequest
		ctx      = c.Request.Context()
	)
	defer reply.Response(c.Writer, &response)

	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	cmd := &command.CheckoutCommand{Request: request}
	if err := h.dispatcher.Dispatch(ctx, cmd); err != nil {
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = cmd.Result
}
