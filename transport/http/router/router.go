package router

import (
	"hotelinv/internal/handlers/auth"
	"hotelinv/internal/handlers/availability"
	"hotelinv/internal/handlers/booking"
	"hotelinv/internal/handlers/notification"
	"hotelinv/internal/handlers/report"
	"hotelinv/internal/handlers/template"
	"hotelinv/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Booking      booking.Handler
	Availability availability.Handler
	Report       report.Handler
	Notification notification.Handler
	Template     template.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.Template.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
