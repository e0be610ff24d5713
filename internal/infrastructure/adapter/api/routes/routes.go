package routes

import (
	coreport "github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/security"
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the API handlers
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Event      *handler.EventHandler
	Purchase   *handler.PurchaseHandler
	Settlement *handler.SettlementHandler
	Health     *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API. Administrator-only
// routes are guarded by the use cases, which know the operation being denied.
func SetupRoutes(
	router *gin.Engine,
	h Handlers,
	tokens security.TokenIssuer,
	users usecase.UserUseCase,
	logger coreport.Logger,
) {
	router.GET("/health", h.Health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	api := router.Group("/")
	api.Use(middleware.Authenticate(tokens, users, logger))

	// POST /auth/login
	api.POST("/auth/login", h.Auth.Login)

	authed := api.Group("/")
	authed.Use(middleware.RequireAuthenticated())
	{
		eventRoutes := authed.Group("/events")
		eventRoutes.GET("", h.Event.ListEvents)
		eventRoutes.POST("", h.Event.CreateEvent)
		eventRoutes.GET("/:eventId", h.Event.GetEvent)
		eventRoutes.DELETE("/:eventId", h.Event.DeleteEvent)
		eventRoutes.GET("/:eventId/purchases/mine", h.Purchase.ListOwnPurchases)
		eventRoutes.POST("/:eventId/purchases", h.Purchase.AddPurchase)
		eventRoutes.GET("/:eventId/settlement", h.Settlement.EventSettlement)

		// DELETE /purchases/:purchaseId
		authed.DELETE("/purchases/:purchaseId", h.Purchase.DeletePurchase)

		// GET /settlement
		authed.GET("/settlement", h.Settlement.GlobalSettlement)

		userRoutes := authed.Group("/users")
		userRoutes.GET("", h.User.ListUsers)
		userRoutes.POST("", h.User.CreateUser)
		userRoutes.DELETE("/:userId", h.User.DeleteUser)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Order matters: the request id must exist before anything logs, and the
	// error handler must wrap the handlers whose errors it renders.
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
}
