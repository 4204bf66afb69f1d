package profile

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

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
		MyOrders(c *gin.Context)
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

func (h *handler) MyOrders(c *gin.Context) {
	var response structs.Response
	defer reply.Response(c.Writer, &response)

	cmd := &command.MyOrdersCommand{}
	if err := h.dispatcher.Dispatch(c.Request.Context(), cmd); err != nil {
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = cmd.Result
}
