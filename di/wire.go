//go:build wireinject
// +build wireinject

package di

import (
	"hotelinv/config"
	"hotelinv/infras/jwt"
	"hotelinv/infras/kafka"
	"hotelinv/infras/openai"
	"hotelinv/infras/otel"
	"hotelinv/infras/postgres"
	"hotelinv/infras/redis"
	"hotelinv/infras/s3"
	"hotelinv/infras/telegram"
	"hotelinv/internal/domains/session"
	"hotelinv/permissions"
	"hotelinv/shared/cache"
	"hotelinv/transport/http"
	"hotelinv/transport/http/middleware"
	"hotelinv/transport/http/router"

	"github.com/google/wire"

	authService "hotelinv/internal/domains/auth/service"
	availabilityService "hotelinv/internal/domains/availability/service"
	"hotelinv/internal/domains/booking/event"
	bookingRepository "hotelinv/internal/domains/booking/repository"
	bookingService "hotelinv/internal/domains/booking/service"
	notifyService "hotelinv/internal/domains/notify/service"
	reportService "hotelinv/internal/domains/report/service"
	templateRepository "hotelinv/internal/domains/template/repository"
	templateService "hotelinv/internal/domains/template/service"
	userRepository "hotelinv/internal/domains/user/repository"
	userService "hotelinv/internal/domains/user/service"
	authHandler "hotelinv/internal/handlers/auth"
	availabilityHandler "hotelinv/internal/handlers/availability"
	bookingHandler "hotelinv/internal/handlers/booking"
	notificationHandler "hotelinv/internal/handlers/notification"
	reportHandler "hotelinv/internal/handlers/report"
	templateHandler "hotelinv/internal/handlers/template"
	userHandler "hotelinv/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	telegram.New,
	s3.New,
	openai.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	session.NewRegistry,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	event.NewPublisher,
	bookingService.New,
	availabilityService.New,
	reportService.New,
)

var notifyDomain = wire.NewSet(
	notifyService.New,
	wire.Bind(new(event.Sink), new(notifyService.Notify)),
)

var templateDomain = wire.NewSet(
	templateRepository.New,
	templateService.New,
)

var domains = wire.NewSet(
	authDomain,
	bookingDomain,
	notifyDomain,
	templateDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	bookingHandler.New,
	availabilityHandler.New,
	reportHandler.New,
	notificationHandler.New,
	templateHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *Worker {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		kafka.New,
		telegram.New,
		session.NewRegistry,
		bookingRepository.New,
		notifyService.New,
		wire.Struct(new(Worker), "*"),
	)

	return &Worker{}
}
