package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"maison/apps/gateway/handlers/admin"
	"maison/apps/gateway/handlers/auth"
	"maison/apps/gateway/handlers/cart"
	"maison/apps/gateway/handlers/catalog"
	"maison/apps/gateway/handlers/checkout"
	"maison/apps/gateway/handlers/middleware"
	"maison/apps/gateway/handlers/profile"
	"maison/apps/gateway/handlers/telegram"
	"maison/apps/gateway/handlers/view"
	"maison/pkg/config"
	"maison/pkg/logger"
	"maison/pkg/metrics"
)

var Module = fx.Options(
	fx.Invoke(
		NewRouter,
	),
)

type Params struct {
	fx.In

	middleware.Middleware
	Lifecycle fx.Lifecycle
	Config    config.IConfig
	Logger    logger.Logger
	Metrics   *metrics.Metrics `optional:"true"`
	Auth      auth.Handler
	Cart      cart.Handler
	Catalog   catalog.Handler
	View      view.Handler
	Checkout  checkout.Handler
	Profile   profile.Handler
	Telegram  telegram.Handler
	Admin     admin.Handler
}

// Handler builds the storefront API with CORS applied.
func Handler(params Params) http.Handler {
	r := gin.New()
	r.GET("/metrics", gin.WrapH(params.Metrics.Handler()))

	baseUrl := "/api/v1"
	api := r.Group(baseUrl)
	api.Use(params.Ctx(), params.AccessLog(), gin.Recovery())

	api.GET("/catalog", params.Catalog.GetCatalog)
	api.GET("/categories", params.Catalog.GetCategories)

	{
		api.GET("/view", params.View.GetView)
		api.PUT("/view", params.View.UpdateView)
		api.GET("/toasts", params.View.DrainToasts)
	}

	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("", params.Cart.GetCart)
		cartGroup.POST("", params.Cart.AddToCart)
		cartGroup.PATCH("", params.Cart.SetQuantity)
		cartGroup.DELETE("/:id", params.Cart.RemoveFromCart)
	}

	api.POST("/checkout", params.Checkout.Checkout)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", params.Auth.Register)
		authGroup.POST("/login", params.Auth.Login)
		authGroup.POST("/logout", params.Auth.Logout)
		authGroup.GET("/me", params.Auth.Me)
	}

	api.GET("/profile/orders", params.Profile.MyOrders)

	telegramGroup := api.Group("/telegram")
	{
		telegramGroup.POST("/link", params.Telegram.Link)
		telegramGroup.GET("/status", params.Telegram.Status)
		telegramGroup.GET("/qr", params.Telegram.QR)
	}

	adminGroup := api.Group("/admin")
	{
		adminGroup.GET("/orders", params.Admin.GetOrders)
		adminGroup.PUT("/orders", params.Admin.UpdateStatus)
		adminGroup.GET("/stats", params.Admin.GetStats)
	}

	return cors.New(cors.Options{
		AllowedHeaders:   []string{"*"},
		AllowedOrigins:   params.Config.GetStringSlice("server.cors_origins"),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowCredentials: true,
	}).Handler(r)
}

func NewRouter(params Params) {
	server := http.Server{
		Addr:    params.Config.GetString("server.port"),
		Handler: Handler(params),
	}

	params.Lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Starting application")
				go func() {
					if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						params.Logger.Error(ctx, "Err on ListenAndServe", zap.Error(err))
					}
				}()

				params.Logger.Info(ctx, "Application starting on port", zap.String("port", params.Config.GetString("server.port")))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Application stopped")
				return server.Shutdown(ctx)
			},
		},
	)
}
