package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"maison/pkg/apiclient"
	"maison/pkg/logger"
	"maison/pkg/utils"
)

var (
	Module = fx.Provide(NewMiddleware)
)

type (
	Middleware interface {
		Ctx() gin.HandlerFunc
		AccessLog() gin.HandlerFunc
	}

	Params struct {
		fx.In

		Logger logger.Logger
	}

	mw struct {
		logger logger.Logger
	}
)

func NewMiddleware(params Params) Middleware {
	return &mw{
		logger: params.Logger,
	}
}

// Ctx attaches a log context carrying the caller's X-Request-ID, or a fresh
// one, and echoes it back.
func (m *mw) Ctx() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(apiclient.HeaderRequestID)
		if requestID == "" {
			requestID = utils.GenKSUID()
		}
		ctx := m.logger.WithRequestID(m.logger.Context(c.Request.Context()), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(apiclient.HeaderRequestID, requestID)
		c.Next()
	}
}

func (m *mw) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		m.logger.Info(c.Request.Context(), "http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)),
		)
	}
}
