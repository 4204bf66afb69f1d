package auth

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
		Register(c *gin.Context)
		Login(c *gin.Context)
		Logout(c *gin.Context)
		Me(c *gin.Context)
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

func (h *handler) Register(c *gin.Context) {
	var (
		response structs.Response
		request  structs.RegisterRequest
		ctx      = c.Request.Context()
	)
	defer reply.Response(c.Writer, &response)

	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	cmd := &command.RegisterCommand{Request: request}
	if err := h.dispatcher.Dispatch(ctx, cmd); err != nil {
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = cmd.Result.User
}

func (h *handler) Login(c *gin.Context) {
	var (
		response structs.Response
		request  structs.LoginRequest
		ctx      = c.Request.Context()
	)
	defer reply.Response(c.Writer, &response)

	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	cmd := &command.LoginCommand{Request: request}
	if err := h.dispatcher.Dispatch(ctx, cmd); err != nil {
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = cmd.Result.User
}

func (h *handler) Logout(c *gin.Context) {
	var response structs.Response
	defer reply.Response(c.Writer, &response)

	if err := h.dispatcher.Dispatch(c.Request.Context(), &command.LogoutCommand{}); err != nil {
		response = responses.FromError(err)
		return
	}
	response = responses.Success
}

func (h *handler) Me(c *gin.Context) {
	var response structs.Response
	defer reply.Response(c.Writer, &response)

	cmd := &command.VerifyCommand{}
	if err := h.dispatcher.Dispatch(c.Request.Context(), cmd); err != nil {
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = cmd.Result
}

