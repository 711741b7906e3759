// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/canonical/lending-service/internal/logging"
	"github.com/canonical/lending-service/internal/monitoring"
	"github.com/canonical/lending-service/internal/tracing"
	"github.com/canonical/lending-service/pkg/authentication"
)

// HeaderName is the header the gateway sets after verifying the caller's
// credentials. Credential verification itself happens upstream.
const HeaderName = "X-Authenticated-Identity-Id"

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		identityID := r.Header.Get(HeaderName)

		ctx = authentication.WithIdentityID(ctx, identityID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
