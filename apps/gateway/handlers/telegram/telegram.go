package telegram

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"maison/internal/command"
	"maison/internal/responses"
	"maison/internal/structs"
	"maison/internal/telegramlink"
	"maison/pkg/logger"
	"maison/pkg/reply"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		Link(c *gin.Context)
		Status(c *gin.Context)
		QR(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger       logger.Logger
		Dispatcher   *command.Dispatcher
		TelegramLink telegramlink.Service
	}

	handler struct {
		logger       logger.Logger
		dispatcher   *command.Dispatcher
		telegramLink telegramlink.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:       p.Logger,
		dispatcher:   p.Dispatcher,
		telegramLink: p.TelegramLink,
	}
}

func (h *handler) Link(c *gin.Context) {
	var (
		response structs.Response
		request  structs.LinkTelegramRequest
		ctx      = c.Request.Context()
	)
	defer reply.Response(c.Writer, &response)

	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	cmd := &command.LinkTelegramCommand{Request: request}
	if err := h.dispatcher.Dispatch(ctx, cmd); err != nil {
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = cmd.Result
}

func (h *handler) Status(c *gin.Context) {
	var response structs.Response
	defer reply.Response(c.Writer, &response)

	status, err := h.telegramLink.Status(c.Request.Context())
	if err != nil {
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = status
}

func (h *handler) QR(c *gin.Context) {
	ctx := c.Request.Context()

	png, err := h.telegramLink.QR()
	if err != nil {
		h.logger.Error(ctx, " err on h.telegramLink.QR", zap.Error(err))
		response := responses.InternalErr
		reply.Response(c.Writer, &response)
		return
	}

	reply.Bytes(c.Writer, http.StatusOK, "image/png", png)
}
