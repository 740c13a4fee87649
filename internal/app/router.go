package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"rideshare/internal/handler"
	"rideshare/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	RideHandler   *handler.RideHandler
	DriverHandler *handler.DriverHandler
	RiderHandler  *handler.RiderHandler
	ReportHandler *handler.ReportHandler
	RedisClient   *redis.Client // Optional: nil disables idempotent replay
	NewRelicApp   *newrelic.Application
	Logger        *zap.Logger
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORSMiddleware())

	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		rides := v1.Group("/rides")
		{
			rides.POST("", deps.RideHandler.CreateRide)
			rides.GET("", deps.RideHandler.GetAll)
			rides.GET("/:id", deps.RideHandler.GetRide)
		}

		drivers := v1.Group("/drivers")
		{
			drivers.POST("", deps.DriverHandler.Register)
			drivers.GET("/:id", deps.DriverHandler.GetDriver)
			drivers.POST("/:id/rides", deps.DriverHandler.AssignRide)
			drivers.DELETE("/:id/rides", deps.DriverHandler.ClearRides)
			drivers.GET("/:id/summary", deps.DriverHandler.Summary)
		}

		riders := v1.Group("/riders")
		{
			riders.POST("", deps.RiderHandler.Register)
			riders.GET("/:id", deps.RiderHandler.GetRider)
			riders.POST("/:id/rides", deps.RiderHandler.RequestRide)
			riders.GET("/:id/history", deps.RiderHandler.History)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/revenue", deps.ReportHandler.Revenue)
			reports.GET("/overview", deps.ReportHandler.Overview)
		}
	}

	return router
}
