//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"voyago/config"
	"voyago/infras/jwt"
	"voyago/infras/kafka"
	"voyago/infras/otel"
	"voyago/infras/postgres"
	"voyago/infras/redis"
	"voyago/infras/s3"
	"voyago/internal/domains/inventory"
	"voyago/internal/notifier"
	"voyago/internal/scheduler"
	"voyago/permissions"
	"voyago/shared/cache"
	"voyago/shared/clock"
	"voyago/transport/http"
	"voyago/transport/http/middleware"
	"voyago/transport/http/router"

	authService "voyago/internal/domains/auth/service"
	bookingRepository "voyago/internal/domains/booking/repository"
	bookingService "voyago/internal/domains/booking/service"
	tpRepository "voyago/internal/domains/travelpackage/repository"
	tpService "voyago/internal/domains/travelpackage/service"
	userRepository "voyago/internal/domains/user/repository"
	userService "voyago/internal/domains/user/service"
	wlRepository "voyago/internal/domains/waitinglist/repository"
	wlService "voyago/internal/domains/waitinglist/service"

	authHandler "voyago/internal/handlers/auth"
	bookingHandler "voyago/internal/handlers/booking"
	tpHandler "voyago/internal/handlers/travelpackage"
	userHandler "voyago/internal/handlers/user"
	wlHandler "voyago/internal/handlers/waitinglist"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var inventoryDomain = wire.NewSet(
	bookingRepository.New,
	inventory.NewLedger,
)

var travelPackageDomain = wire.NewSet(
	tpRepository.New,
	tpService.New,
	providePackageCapacityListener,
)

var bookingDomain = wire.NewSet(
	bookingService.New,
	provideBookingCapacityListener,
)

var waitingListDomain = wire.NewSet(
	wlRepository.New,
	wlService.New,
)

var background = wire.NewSet(
	notifier.New,
	scheduler.NewReminderSweeper,
	scheduler.New,
)

var domains = wire.NewSet(
	authDomain,
	inventoryDomain,
	travelPackageDomain,
	bookingDomain,
	waitingListDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	tpHandler.New,
	bookingHandler.New,
	wlHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		background,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
