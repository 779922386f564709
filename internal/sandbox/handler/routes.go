package handler

import (
	"net/http"

	"github.com/vfg2006/insights-dashboard/internal/sandbox/aggregating"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/auth"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/handler/router"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/store"
	"github.com/vfg2006/insights-dashboard/pkg/middleware"
)

func authenticated(users *auth.Service) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{middleware.BearerAuth(users)}
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service *auth.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/users",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/users/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: authenticated(service),
		},
	}
}

func Metrics(service *aggregating.Service, users *auth.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/metrics",
			Method:      http.MethodGet,
			Handler:     GetMetrics(service),
			Middlewares: authenticated(users),
		},
		{
			Path:    "/metrics/:userId",
			Method:  http.MethodGet,
			Handler: GetUserMetrics(service, users),
		},
		{
			Path:        "/metrics/sync",
			Method:      http.MethodPost,
			Handler:     SyncMetrics(service),
			Middlewares: authenticated(users),
		},
	}
}

func Integrations(st store.Store, users *auth.Service, now Clock) []router.Route {
	return []router.Route{
		{
			Path:        "/integrations",
			Method:      http.MethodGet,
			Handler:     ListIntegrations(st),
			Middlewares: authenticated(users),
		},
		{
			Path:        "/integrations/facebook",
			Method:      http.MethodPost,
			Handler:     ConnectFacebook(st),
			Middlewares: authenticated(users),
		},
		{
			Path:    "/integrations/facebook/:userId",
			Method:  http.MethodPost,
			Handler: ConnectFacebookForUser(st, users),
		},
		{
			Path:        "/integrations/adsense",
			Method:      http.MethodPost,
			Handler:     ConnectAdSense(st, now),
			Middlewares: authenticated(users),
		},
		{
			Path:    "/integrations/adsense/:userId",
			Method:  http.MethodPost,
			Handler: ConnectAdSenseForUser(st, users, now),
		},
		{
			Path:        "/integrations/facebook/:id",
			Method:      http.MethodPut,
			Handler:     UpdateFacebook(st),
			Middlewares: authenticated(users),
		},
		{
			Path:        "/integrations/adsense/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAdSense(st, now),
			Middlewares: authenticated(users),
		},
		{
			Path:        "/integrations/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteIntegration(st),
			Middlewares: authenticated(users),
		},
	}
}

func Notifications(st store.Store, users *auth.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/notifications",
			Method:      http.MethodGet,
			Handler:     ListNotifications(st),
			Middlewares: authenticated(users),
		},
		{
			Path:        "/notifications/:id/read",
			Method:      http.MethodPost,
			Handler:     MarkNotificationRead(st),
			Middlewares: authenticated(users),
		},
	}
}
