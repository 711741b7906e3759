// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lending-service/internal/storage"
	"github.com/canonical/lending-service/internal/types"
	"github.com/canonical/lending-service/pkg/loan"
)

// startSpan keeps request-scoped values intact when the traced context is
// re-read further down the handler.
func startSpan(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return ctx, trace.SpanFromContext(ctx)
}

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tenant.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage *MockStorageInterface
	authz   *MockAuthzInterface
	kratos  *MockKratosClientInterface
	logger  *MockLoggerInterface
}

func newTestService(t *testing.T, spanName string) (*Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mocks := serviceMocks{
		storage: NewMockStorageInterface(ctrl),
		authz:   NewMockAuthzInterface(ctrl),
		kratos:  NewMockKratosClientInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mocks.storage, mocks.authz, mocks.kratos, mockTracer, mockMonitor, mocks.logger)

	mockTracer.EXPECT().Start(gomock.Any(), spanName).DoAndReturn(startSpan)

	return s, mocks
}

var (
	superadmin  = types.Actor{MemberID: "member-0", IdentityID: "identity-0", Role: types.RoleSuperAdmin}
	tenantAdmin = types.Actor{MemberID: "member-9", IdentityID: "identity-9", TenantID: "tenant-1", Role: types.RoleAdmin}
	plainMember = types.Actor{MemberID: "member-1", IdentityID: "identity-1", TenantID: "tenant-1", Role: types.RoleMember}
)

func TestService_CreateTenant(t *testing.T) {
	testCases := []struct {
		name         string
		actor        types.Actor
		setupMocks   func(serviceMocks)
		expectedKind loan.Kind
	}{
		{
			name:  "success",
			actor: superadmin,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tn *types.Tenant) (*types.Tenant, error) {
						if !tn.Enabled {
							t.Errorf("new tenant must start enabled")
						}
						created := *tn
						created.ID = "tenant-1"
						return &created, nil
					},
				)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:         "tenant admin may not provision",
			actor:        tenantAdmin,
			setupMocks:   func(serviceMocks) {},
			expectedKind: loan.KindForbidden,
		},
		{
			name:  "duplicate slug",
			actor: superadmin,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedKind: loan.KindConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mocks := newTestService(t, "tenant.Service.CreateTenant")
			tc.setupMocks(mocks)

			created, err := s.CreateTenant(context.Background(), tc.actor, "City Library", "city-library")

			if tc.expectedKind != "" {
				if loan.KindOf(err) != tc.expectedKind {
					t.Fatalf("expected kind %q, got %v", tc.expectedKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.ID != "tenant-1" || created.Slug != "city-library" {
				t.Errorf("unexpected tenant: %+v", created)
			}
		})
	}
}

func TestService_GetTenant(t *testing.T) {
	stored := &types.Tenant{ID: "tenant-1", Name: "City Library", Slug: "city-library", Enabled: true}

	t.Run("own tenant", func(t *testing.T) {
		s, mocks := newTestService(t, "tenant.Service.GetTenant")
		mocks.authz.EXPECT().CanAccess(plainMember, "tenant-1").Return(true)
		mocks.storage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(stored, nil)

		got, err := s.GetTenant(context.Background(), plainMember, "tenant-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "tenant-1" {
			t.Errorf("unexpected tenant: %+v", got)
		}
	})

	t.Run("foreign tenant reads as absent", func(t *testing.T) {
		s, mocks := newTestService(t, "tenant.Service.GetTenant")
		mocks.authz.EXPECT().CanAccess(plainMember, "tenant-2").Return(false)

		_, err := s.GetTenant(context.Background(), plainMember, "tenant-2")
		if loan.KindOf(err) != loan.KindNotFound {
			t.Fatalf("expected not_found, got %v", err)
		}
	})
}

func TestService_DeleteTenant(t *testing.T) {
	t.Run("removes rows then relation tuples", func(t *testing.T) {
		s, mocks := newTestService(t, "tenant.Service.DeleteTenant")
		gomock.InOrder(
			mocks.storage.EXPECT().DeleteTenant(gomock.Any(), "tenant-1").Return(nil),
			mocks.authz.EXPECT().DeleteTenant(gomock.Any(), "tenant-1").Return(nil),
		)

		if err := s.DeleteTenant(context.Background(), superadmin, "tenant-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("records block deletion", func(t *testing.T) {
		s, mocks := newTestService(t, "tenant.Service.DeleteTenant")
		mocks.storage.EXPECT().DeleteTenant(gomock.Any(), "tenant-1").Return(storage.ErrForeignKeyViolation)

		err := s.DeleteTenant(context.Background(), superadmin, "tenant-1")
		if loan.KindOf(err) != loan.KindConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("tuple cleanup failure is logged not surfaced", func(t *testing.T) {
		s, mocks := newTestService(t, "tenant.Service.DeleteTenant")
		mocks.storage.EXPECT().DeleteTenant(gomock.Any(), "tenant-1").Return(nil)
		mocks.authz.EXPECT().DeleteTenant(gomock.Any(), "tenant-1").Return(errors.New("openfga unavailable"))
		mocks.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())

		if err := s.DeleteTenant(context.Background(), superadmin, "tenant-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestService_AddMember(t *testing.T) {
	enrolled := &types.Member{ID: "member-2", TenantID: "tenant-1", IdentityID: "identity-2", Role: types.RoleMember}

	testCases := []struct {
		name         string
		actor        types.Actor
		role         string
		setupMocks   func(serviceMocks)
		expectedKind loan.Kind
	}{
		{
			name:  "existing identity",
			actor: tenantAdmin,
			role:  types.RoleMember,
			setupMocks: func(m serviceMocks) {
				m.authz.EXPECT().CreationTenant(tenantAdmin).Return("tenant-1", nil)
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "reader@example.com").Return("identity-2", nil)
				m.storage.EXPECT().AddMember(gomock.Any(), "tenant-1", "identity-2", types.RoleMember).Return(enrolled, nil)
				m.authz.EXPECT().AssignTenantMember(gomock.Any(), "tenant-1", "identity-2").Return(nil)
			},
		},
		{
			name:  "unknown email gets a fresh identity",
			actor: tenantAdmin,
			role:  types.RoleMember,
			setupMocks: func(m serviceMocks) {
				m.authz.EXPECT().CreationTenant(tenantAdmin).Return("tenant-1", nil)
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "reader@example.com").Return("", nil)
				m.kratos.EXPECT().CreateIdentity(gomock.Any(), "reader@example.com").Return("identity-2", nil)
				m.storage.EXPECT().AddMember(gomock.Any(), "tenant-1", "identity-2", types.RoleMember).Return(enrolled, nil)
				m.authz.EXPECT().AssignTenantMember(gomock.Any(), "tenant-1", "identity-2").Return(nil)
			},
		},
		{
			name:  "admin role gets the admin relation",
			actor: tenantAdmin,
			role:  types.RoleAdmin,
			setupMocks: func(m serviceMocks) {
				m.authz.EXPECT().CreationTenant(tenantAdmin).Return("tenant-1", nil)
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "reader@example.com").Return("identity-2", nil)
				m.storage.EXPECT().AddMember(gomock.Any(), "tenant-1", "identity-2", types.RoleAdmin).Return(enrolled, nil)
				m.authz.EXPECT().AssignTenantAdmin(gomock.Any(), "tenant-1", "identity-2").Return(nil)
			},
		},
		{
			name:         "plain member is forbidden",
			actor:        plainMember,
			role:         types.RoleMember,
			setupMocks:   func(serviceMocks) {},
			expectedKind: loan.KindForbidden,
		},
		{
			name:         "superadmin role cannot be granted",
			actor:        tenantAdmin,
			role:         types.RoleSuperAdmin,
			setupMocks:   func(serviceMocks) {},
			expectedKind: loan.KindValidation,
		},
		{
			name:  "already enrolled",
			actor: tenantAdmin,
			role:  types.RoleMember,
			setupMocks: func(m serviceMocks) {
				m.authz.EXPECT().CreationTenant(tenantAdmin).Return("tenant-1", nil)
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "reader@example.com").Return("identity-2", nil)
				m.storage.EXPECT().AddMember(gomock.Any(), "tenant-1", "identity-2", types.RoleMember).Return(nil, storage.ErrDuplicateKey)
			},
			expectedKind: loan.KindConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mocks := newTestService(t, "tenant.Service.AddMember")
			tc.setupMocks(mocks)

			m, err := s.AddMember(context.Background(), tc.actor, "reader@example.com", tc.role)

			if tc.expectedKind != "" {
				if loan.KindOf(err) != tc.expectedKind {
					t.Fatalf("expected kind %q, got %v", tc.expectedKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.ID != "member-2" {
				t.Errorf("unexpected member: %+v", m)
			}
		})
	}
}

func TestService_ListMembers(t *testing.T) {
	members := []*types.Member{
		{ID: "member-1", TenantID: "tenant-1", IdentityID: "identity-1", Role: types.RoleMember},
		{ID: "member-9", TenantID: "tenant-1", IdentityID: "identity-9", Role: types.RoleAdmin},
	}

	t.Run("enriches emails", func(t *testing.T) {
		s, mocks := newTestService(t, "tenant.Service.ListMembers")
		mocks.authz.EXPECT().CreationTenant(tenantAdmin).Return("tenant-1", nil)
		mocks.storage.EXPECT().ListMembersByTenantID(gomock.Any(), "tenant-1").Return(members, nil)
		mocks.kratos.EXPECT().GetIdentityEmail(gomock.Any(), "identity-1").Return("reader@example.com", nil)
		mocks.kratos.EXPECT().GetIdentityEmail(gomock.Any(), "identity-9").Return("admin@example.com", nil)

		users, err := s.ListMembers(context.Background(), tenantAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 2 || users[0].Email != "reader@example.com" {
			t.Fatalf("unexpected roster: %+v", users)
		}
	})

	t.Run("missing email does not fail the roster", func(t *testing.T) {
		s, mocks := newTestService(t, "tenant.Service.ListMembers")
		mocks.authz.EXPECT().CreationTenant(tenantAdmin).Return("tenant-1", nil)
		mocks.storage.EXPECT().ListMembersByTenantID(gomock.Any(), "tenant-1").Return(members[:1], nil)
		mocks.kratos.EXPECT().GetIdentityEmail(gomock.Any(), "identity-1").Return("", errors.New("kratos unavailable"))
		mocks.logger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())

		users, err := s.ListMembers(context.Background(), tenantAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 1 || users[0].Email != "" {
			t.Fatalf("unexpected roster: %+v", users)
		}
	})

	t.Run("plain member is forbidden", func(t *testing.T) {
		s, _ := newTestService(t, "tenant.Service.ListMembers")

		_, err := s.ListMembers(context.Background(), plainMember)
		if loan.KindOf(err) != loan.KindForbidden {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})
}
