// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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
	"voyago/internal/domains/auth/service"
	repository3 "voyago/internal/domains/booking/repository"
	service5 "voyago/internal/domains/booking/service"
	"voyago/internal/domains/inventory"
	repository2 "voyago/internal/domains/travelpackage/repository"
	service4 "voyago/internal/domains/travelpackage/service"
	"voyago/internal/domains/user/repository"
	service2 "voyago/internal/domains/user/service"
	repository4 "voyago/internal/domains/waitinglist/repository"
	service3 "voyago/internal/domains/waitinglist/service"
	"voyago/internal/handlers/auth"
	"voyago/internal/handlers/booking"
	"voyago/internal/handlers/travelpackage"
	"voyago/internal/handlers/user"
	"voyago/internal/handlers/waitinglist"
	"voyago/internal/notifier"
	"voyago/internal/scheduler"
	"voyago/permissions"
	"voyago/shared/cache"
	"voyago/shared/clock"
	"voyago/transport/http"
	"voyago/transport/http/middleware"
	"voyago/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(repositoryUser, configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceUser := service2.New(repositoryUser, configConfig, redisCache, otelOtel)
	userHandler := user.New(serviceUser, otelOtel)
	travelPackage := repository2.New(connection, otelOtel)
	repositoryBooking := repository3.New(connection, otelOtel)
	ledger := inventory.NewLedger(repositoryBooking, configConfig, otelOtel)
	transactor := postgres.NewTransactor(connection)
	waitingList := repository4.New(connection, otelOtel)
	kafkaClient := kafka.New(configConfig)
	clockClock := clock.New()
	notifierNotifier := notifier.New(kafkaClient, clockClock, otelOtel)
	serviceWaitingList := service3.New(transactor, waitingList, travelPackage, ledger, notifierNotifier, configConfig, clockClock, otelOtel)
	capacityListener := providePackageCapacityListener(serviceWaitingList)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceTravelPackage := service4.New(travelPackage, ledger, capacityListener, configConfig, redisCache, otelOtel, s3S3)
	travelpackageHandler := travelpackage.New(serviceTravelPackage, otelOtel)
	serviceCapacityListener := provideBookingCapacityListener(serviceWaitingList)
	serviceBooking := service5.New(transactor, repositoryBooking, travelPackage, waitingList, ledger, serviceCapacityListener, configConfig, redisCache, clockClock, otelOtel)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	waitinglistHandler := waitinglist.New(serviceWaitingList, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:          handler,
		User:          userHandler,
		TravelPackage: travelpackageHandler,
		Booking:       bookingHandler,
		WaitingList:   waitinglistHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	reminderSweeper := scheduler.NewReminderSweeper(repositoryBooking, travelPackage, notifierNotifier, configConfig, clockClock, otelOtel)
	schedulerScheduler := scheduler.New(serviceWaitingList, reminderSweeper, configConfig, clockClock, otelOtel)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware, authRole, schedulerScheduler)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get, permissions.Get)

var infrastructures = wire.NewSet(postgres.New, postgres.NewTransactor, otel.New, redis.New, jwt.New, kafka.New, s3.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache, clock.New)

var authDomain = wire.NewSet(repository.New, service2.New, service.New)

var inventoryDomain = wire.NewSet(repository3.New, inventory.NewLedger)

var travelPackageDomain = wire.NewSet(repository2.New, service4.New, providePackageCapacityListener)

var bookingDomain = wire.NewSet(service5.New, provideBookingCapacityListener)

var waitingListDomain = wire.NewSet(repository4.New, service3.New)

var background = wire.NewSet(notifier.New, scheduler.NewReminderSweeper, scheduler.New)

var domains = wire.NewSet(
	authDomain,
	inventoryDomain,
	travelPackageDomain,
	bookingDomain,
	waitingListDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, user.New, travelpackage.New, booking.New, waitinglist.New, router.New)
