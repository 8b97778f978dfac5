package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shareit-platform/service-shareit/internal/middleware"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Users    *UserHandler
	Items    *ItemHandler
	Requests *RequestHandler
	Bookings *BookingHandler
	Health   *HealthHandler
}

// NewRouter assembles middleware and registers every route.
func NewRouter(h Handlers, corsOrigins []string, log *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(corsOrigins))
	router.Use(middleware.SecurityHeadersMiddleware())

	if h.Health != nil {
		h.Health.RegisterRoutes(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	sharer := middleware.SharerUserIDMiddleware()
	api := &router.RouterGroup
	h.Users.RegisterRoutes(api)
	h.Items.RegisterRoutes(api, sharer)
	h.Requests.RegisterRoutes(api, sharer)
	h.Bookings.RegisterRoutes(api, sharer)

	return router
}
