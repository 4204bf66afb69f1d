package view

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"maison/internal/command"
	"maison/internal/responses"
	"maison/internal/structs"
	"maison/internal/view"
	"maison/pkg/logger"
	"maison/pkg/reply"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		GetView(c *gin.Context)
		UpdateView(c *gin.Context)
		DrainToasts(c *gin.Context)
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

func (h *handler) GetView(c *gin.Context) {
	var response structs.Response
	defer reply.Response(c.Writer, &response)

	cmd := &command.SnapshotCommand{}
	if err := h.dispatcher.Dispatch(c.Request.Context(), cmd); err != nil {
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = cmd.Result
}

// UpdateView applies each field that is present, in the order section,
// category, dialogs, and answers with the resulting snapshot.
func (h *handler) UpdateView(c *gin.Context) {
	var (
		response structs.Response
		request  structs.ViewUpdate
		ctx      = c.Request.Context()
	)
	defer reply.Response(c.Writer, &response)

	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response = responses.BadRequest
		return
	}

	var cmds []command.Command
	if request.Section != nil {
		cmds = append(cmds, &command.ShowSectionCommand{Section: view.Section(*request.Section)})
	}
	if request.Category != nil {
		cmds = append(cmds, &command.SelectCategoryCommand{Category: *request.Category})
	}
	if request.AuthOpen != nil {
		cmds = append(cmds, &command.DialogCommand{Dialog: command.DialogAuth, Open: *request.AuthOpen})
	}
	if request.CheckoutOpen != nil {
		cmds = append(cmds, &command.DialogCommand{Dialog: command.DialogCheckout, Open: *request.CheckoutOpen})
	}

	for _, cmd := range cmds {
		if err := h.dispatcher.Dispatch(ctx, cmd); err != nil {
			response = responses.FromError(err)
			return
		}
	}

	snapshot := &command.SnapshotCommand{}
	if err := h.dispatcher.Dispatch(ctx, snapshot); err != nil {
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = snapshot.Result
}

func (h *handler) DrainToasts(c *gin.Context) {
	var response structs.Response
	defer reply.Response(c.Writer, &response)

	cmd := &command.SnapshotCommand{Drain: true}
	if err := h.dispatcher.Dispatch(c.Request.Context(), cmd); err != nil {
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = cmd.Result.View.Toasts
}
