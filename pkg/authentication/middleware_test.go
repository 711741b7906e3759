// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lending-service/internal/authorization"
	"github.com/canonical/lending-service/internal/storage"
	"github.com/canonical/lending-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

// startSpan keeps request-scoped values intact when the traced context is
// re-read further down the handler.
func startSpan(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return ctx, trace.SpanFromContext(ctx)
}

func TestMiddleware_Actor(t *testing.T) {
	member := &types.Member{ID: "member-1", TenantID: "tenant-1", IdentityID: "identity-1", Role: types.RoleMember}
	admin := &types.Member{ID: "member-2", TenantID: "tenant-1", IdentityID: "identity-2", Role: types.RoleAdmin}
	superadmin := &types.Member{ID: "member-3", IdentityID: "identity-3", Role: types.RoleSuperAdmin}

	testCases := []struct {
		name           string
		identityID     string
		setupMocks     func(*MockStorageInterface, *MockAuthzInterface, *MockLoggerInterface)
		expectedStatus int
		expectedActor  *types.Actor
	}{
		{
			name:       "no identity in context",
			identityID: "",
			setupMocks: func(*MockStorageInterface, *MockAuthzInterface, *MockLoggerInterface) {
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "identity with no roster entry",
			identityID: "identity-9",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetMemberByIdentityID(gomock.Any(), "identity-9").Return(nil, storage.ErrNotFound)
				mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "roster lookup fails",
			identityID: "identity-1",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetMemberByIdentityID(gomock.Any(), "identity-1").Return(nil, errors.New("db error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:       "membership tuple revoked",
			identityID: "identity-1",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetMemberByIdentityID(gomock.Any(), "identity-1").Return(member, nil)
				mockAuthz.EXPECT().CheckTenantAccess(gomock.Any(), "tenant-1", "identity-1", authorization.MEMBER_RELATION).Return(false, nil)
				mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:       "tuple check fails",
			identityID: "identity-1",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetMemberByIdentityID(gomock.Any(), "identity-1").Return(member, nil)
				mockAuthz.EXPECT().CheckTenantAccess(gomock.Any(), "tenant-1", "identity-1", authorization.MEMBER_RELATION).Return(false, errors.New("fga unavailable"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:       "member with valid tuple",
			identityID: "identity-1",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetMemberByIdentityID(gomock.Any(), "identity-1").Return(member, nil)
				mockAuthz.EXPECT().CheckTenantAccess(gomock.Any(), "tenant-1", "identity-1", authorization.MEMBER_RELATION).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedActor:  &types.Actor{MemberID: "member-1", IdentityID: "identity-1", TenantID: "tenant-1", Role: types.RoleMember},
		},
		{
			name:       "admin checks the admin relation",
			identityID: "identity-2",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetMemberByIdentityID(gomock.Any(), "identity-2").Return(admin, nil)
				mockAuthz.EXPECT().CheckTenantAccess(gomock.Any(), "tenant-1", "identity-2", authorization.ADMIN_RELATION).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedActor:  &types.Actor{MemberID: "member-2", IdentityID: "identity-2", TenantID: "tenant-1", Role: types.RoleAdmin},
		},
		{
			name:       "superadmin has no tuple to check",
			identityID: "identity-3",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetMemberByIdentityID(gomock.Any(), "identity-3").Return(superadmin, nil)
			},
			expectedStatus: http.StatusOK,
			expectedActor:  &types.Actor{MemberID: "member-3", IdentityID: "identity-3", Role: types.RoleSuperAdmin},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthzInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Actor").DoAndReturn(startSpan)
			tc.setupMocks(mockStorage, mockAuthz, mockLogger)

			var gotActor *types.Actor
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if actor, ok := GetActor(r.Context()); ok {
					gotActor = &actor
				}
				w.WriteHeader(http.StatusOK)
			})

			m := NewMiddleware(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/items", nil)
			if tc.identityID != "" {
				req = req.WithContext(WithIdentityID(req.Context(), tc.identityID))
			}
			rr := httptest.NewRecorder()
			m.Actor(next).ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}

			if tc.expectedActor == nil {
				if gotActor != nil {
					t.Fatalf("request reached the next handler with actor %+v", gotActor)
				}
				return
			}

			if gotActor == nil {
				t.Fatal("request did not reach the next handler")
			}
			if *gotActor != *tc.expectedActor {
				t.Errorf("expected actor %+v, got %+v", tc.expectedActor, gotActor)
			}
		})
	}
}
