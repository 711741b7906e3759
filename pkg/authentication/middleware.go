// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/lending-service/internal/authorization"
	"github.com/canonical/lending-service/internal/logging"
	"github.com/canonical/lending-service/internal/monitoring"
	"github.com/canonical/lending-service/internal/storage"
	"github.com/canonical/lending-service/internal/tracing"
	"github.com/canonical/lending-service/internal/types"
)

// Middleware turns the verified identity ID into an actor by looking up the
// member roster and verifying the membership tuple against the authorization
// store. Requests with no identity header, no roster entry, or a revoked
// tuple are rejected before any feature handler runs.
type Middleware struct {
	storage StorageInterface
	authz   AuthzInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(s StorageInterface, authz AuthzInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		storage: s,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Actor")
		defer span.End()

		identityID, ok := GetIdentityID(ctx)
		if !ok {
			writeUnauthorized(w, "unauthenticated")
			return
		}

		member, err := m.storage.GetMemberByIdentityID(ctx, identityID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				m.logger.Warnf("identity %s has no roster entry", identityID)
				writeUnauthorized(w, "unknown member")
				return
			}
			m.logger.Errorf("failed to resolve member for identity %s: %v", identityID, err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		// Superadmins have no tenant tuple to check. Everyone else must
		// still hold the membership relation in the authorization store,
		// so a revoked tuple takes effect without touching the roster.
		if member.Role != types.RoleSuperAdmin && member.TenantID != "" {
			allowed, err := m.authz.CheckTenantAccess(ctx, member.TenantID, member.IdentityID, authorization.RelationForRole(member.Role))
			if err != nil {
				m.logger.Errorf("failed to check tenant access for identity %s: %v", identityID, err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if !allowed {
				m.logger.Warnf("identity %s is not a member of tenant %s in the authorization store", identityID, member.TenantID)
				writeForbidden(w, "membership revoked")
				return
			}
		}

		actor := types.Actor{
			MemberID:   member.ID,
			IdentityID: member.IdentityID,
			TenantID:   member.TenantID,
			Role:       member.Role,
		}

		next.ServeHTTP(w, r.WithContext(WithActor(ctx, actor)))
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func writeForbidden(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
