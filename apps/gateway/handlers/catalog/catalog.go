package catalog

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"maison/internal/catalog"
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
		GetCatalog(c *gin.Context)
		GetCategories(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger     logger.Logger
		Catalog    catalog.Service
		Dispatcher *command.Dispatcher
	}

	handler struct {
		logger     logger.Logger
		catalog    catalog.Service
		dispatcher *command.Dispatcher
	}
)

func New(p Params) Handler {
	return &handler{
		logger:     p.Logger,
		catalog:    p.Catalog,
		dispatcher: p.Dispatcher,
	}
}

// GetCatalog lists the products visible under the current category filter.
// A category query parameter selects that filter first.
func (h *handler) GetCatalog(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer reply.Response(c.Writer, &response)

	if category := c.Query("category"); category != "" {
		cmd := &command.SelectCategoryCommand{Category: category}
		if err := h.dispatcher.Dispatch(ctx, cmd); err != nil {
			response = responses.FromError(err)
			return
		}
		response = responses.Success
		response.Payload = cmd.Result
		return
	}

	cmd := &command.SnapshotCommand{}
	if err := h.dispatcher.Dispatch(ctx, cmd); err != nil {
		response = responses.FromError(err)
		return
	}

	response = responses.Success
	response.Payload = cmd.Result.Products
}

func (h *handler) GetCategories(c *gin.Context) {
	var response structs.Response
	defer reply.Response(c.Writer, &response)

	response = responses.Success
	response.Payload = h.catalog.Categories()
}
