package router

import (
	"github.com/go-chi/chi/v5"

	"voyago/internal/handlers/auth"
	"voyago/internal/handlers/booking"
	"voyago/internal/handlers/travelpackage"
	"voyago/internal/handlers/user"
	"voyago/internal/handlers/waitinglist"
)

type DomainHandlers struct {
	Auth          auth.Handler
	User          user.Handler
	TravelPackage travelpackage.Handler
	Booking       booking.Handler
	WaitingList   waitinglist.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.TravelPackage.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.WaitingList.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
