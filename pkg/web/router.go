// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/lending-service/internal/authorization"
	"github.com/canonical/lending-service/internal/db"
	"github.com/canonical/lending-service/internal/identity"
	"github.com/canonical/lending-service/internal/logging"
	"github.com/canonical/lending-service/internal/monitoring"
	"github.com/canonical/lending-service/internal/storage"
	"github.com/canonical/lending-service/internal/tracing"
	"github.com/canonical/lending-service/pkg/authentication"
	"github.com/canonical/lending-service/pkg/catalog"
	"github.com/canonical/lending-service/pkg/loan"
	"github.com/canonical/lending-service/pkg/metrics"
	"github.com/canonical/lending-service/pkg/status"
	"github.com/canonical/lending-service/pkg/tenant"
)

func NewRouter(
	loanHandler *loan.Handler,
	catalogHandler *catalog.Handler,
	tenantHandler *tenant.Handler,
	identityMiddleware *identity.Middleware,
	s storage.StorageInterface,
	authorizer authorization.AuthorizerInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// Everything below requires a resolved actor; the gateway verifies
	// credentials, the roster lookup binds them to a tenant.
	router.Group(func(r chi.Router) {
		r.Use(identityMiddleware.HTTPMiddleware)
		r.Use(authentication.NewMiddleware(s, authorizer, tracer, monitor, logger).Actor)
		r.Use(db.TransactionMiddleware(dbClient, logger))

		loanHandler.RegisterEndpoints(r)
		catalogHandler.RegisterEndpoints(r)
		tenantHandler.RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
