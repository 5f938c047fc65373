package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/factory-records/internal/http/middleware"
	"github.com/nurpe/factory-records/internal/metrics"
)

type RouterOptions struct {
	Environment    string
	AllowedOrigins []string
	// Extra middleware applied to every route after the defaults, e.g. rate limiting.
	Middleware []gin.HandlerFunc
}

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, log zerolog.Logger, opts RouterOptions) *gin.Engine {
	if opts.Environment != "development" && gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(metrics.Handler())
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))
	router.Use(opts.Middleware...)

	handler.Register(router, authMiddleware)
	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader}
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader, "Content-Disposition"}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
