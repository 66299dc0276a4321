package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/coworking/internal/server/http/handlers"
	"github.com/polkiloo/coworking/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CoworkingFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))

	authHandler := handlers.NewAuthHandler(facade)
	bookingHandler := handlers.NewBookingHandler(facade)
	spaceHandler := handlers.NewSpaceHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	api := engine.Group("/api")
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)
	api.GET("/spaces", spaceHandler.List)
	api.GET("/health", healthHandler.Check)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/logout", authHandler.Logout)
	authed.GET("/me", authHandler.Me)
	authed.POST("/bookings", bookingHandler.Create)
	authed.GET("/bookings/:userId", bookingHandler.ListByUser)

	return engine
}
