package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"rideshare/internal/config"
	"rideshare/internal/domain"
	"rideshare/internal/handler"
	"rideshare/internal/repository/memory"
	"rideshare/internal/service"
)

// Services groups the application services sharing one ride registry.
type Services struct {
	Rides   *service.RideService
	Drivers *service.DriverService
	Riders  *service.RiderService
	Reports *service.ReportService
}

// NewServices wires in-memory repositories, one ride ID sequence and every
// service on top of them.
func NewServices(pricing config.PricingConfig, logger *zap.Logger) (*Services, error) {
	factory, err := domain.NewRideFactory(domain.NewIDSequence()).WithPremiumMultiplier(pricing.PremiumMultiplier)
	if err != nil {
		return nil, err
	}

	rideRepo := memory.NewRideRepository()
	driverRepo := memory.NewDriverRepository()
	riderRepo := memory.NewRiderRepository()

	return &Services{
		Rides:   service.NewRideService(rideRepo, factory, logger),
		Drivers: service.NewDriverService(driverRepo, rideRepo, logger),
		Riders:  service.NewRiderService(riderRepo, rideRepo, logger),
		Reports: service.NewReportService(rideRepo, driverRepo, riderRepo),
	}, nil
}

// NewHandler builds the HTTP handler tree over svc.
func NewHandler(svc *Services, redisClient *redis.Client, nrApp *newrelic.Application, logger *zap.Logger) *gin.Engine {
	return NewRouter(RouterDeps{
		RideHandler:   handler.NewRideHandler(svc.Rides),
		DriverHandler: handler.NewDriverHandler(svc.Drivers),
		RiderHandler:  handler.NewRiderHandler(svc.Riders),
		ReportHandler: handler.NewReportHandler(svc.Reports),
		RedisClient:   redisClient,
		NewRelicApp:   nrApp,
		Logger:        logger,
	})
}
