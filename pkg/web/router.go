// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/requestctx"
	"github.com/canonical/app-builder/internal/tracing"
	"github.com/canonical/app-builder/pkg/auth"
	"github.com/canonical/app-builder/pkg/authentication"
	"github.com/canonical/app-builder/pkg/layout"
	"github.com/canonical/app-builder/pkg/metrics"
	"github.com/canonical/app-builder/pkg/status"
)

// SessionMiddlewareInterface resolves the session cookie for the auth and layout APIs
type SessionMiddlewareInterface interface {
	Authenticate() func(http.Handler) http.Handler
	OptionalAuthenticate() func(http.Handler) http.Handler
}

func NewRouter(
	authService auth.ServiceInterface,
	layoutService layout.ServiceInterface,
	sessions SessionMiddlewareInterface,
	cookies *authentication.CookieManager,
	database status.PingerInterface,
	corsOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		requestctx.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(database, tracer, monitor, logger).RegisterEndpoints(router)
	auth.NewAPI(authService, sessions, cookies, tracer, monitor, logger).RegisterEndpoints(router)
	layout.NewAPI(layoutService, sessions, tracer, monitor, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
