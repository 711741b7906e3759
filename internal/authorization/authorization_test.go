// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	fga "github.com/openfga/go-sdk"

	"github.com/canonical/lending-service/internal/logging"
	"github.com/canonical/lending-service/internal/openfga"
	"github.com/canonical/lending-service/internal/tracing"
	"github.com/canonical/lending-service/internal/types"
)

func newTestAuthorizer() *Authorizer {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewTracer(tracing.NewNoopConfig())
	return NewAuthorizer(nil, tracer, nil, logger)
}

func TestCanAccess(t *testing.T) {
	a := newTestAuthorizer()

	testCases := []struct {
		name             string
		actor            types.Actor
		resourceTenantID string
		expected         bool
	}{
		{
			name:             "member of same tenant",
			actor:            types.Actor{MemberID: "m-1", TenantID: "t-1", Role: types.RoleMember},
			resourceTenantID: "t-1",
			expected:         true,
		},
		{
			name:             "member of other tenant",
			actor:            types.Actor{MemberID: "m-1", TenantID: "t-1", Role: types.RoleMember},
			resourceTenantID: "t-2",
			expected:         false,
		},
		{
			name:             "admin of other tenant",
			actor:            types.Actor{MemberID: "m-1", TenantID: "t-1", Role: types.RoleAdmin},
			resourceTenantID: "t-2",
			expected:         false,
		},
		{
			name:             "superadmin crosses tenants",
			actor:            types.Actor{MemberID: "m-1", Role: types.RoleSuperAdmin},
			resourceTenantID: "t-2",
			expected:         true,
		},
		{
			name:             "tenant-less non-superadmin denied everywhere",
			actor:            types.Actor{MemberID: "m-1", Role: types.RoleMember},
			resourceTenantID: "t-1",
			expected:         false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.CanAccess(tc.actor, tc.resourceTenantID); got != tc.expected {
				t.Errorf("CanAccess = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCreationTenant(t *testing.T) {
	a := newTestAuthorizer()

	t.Run("tenant-scoped actor", func(t *testing.T) {
		tenantID, err := a.CreationTenant(types.Actor{MemberID: "m-1", TenantID: "t-1", Role: types.RoleMember})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tenantID != "t-1" {
			t.Errorf("expected tenant t-1, got %q", tenantID)
		}
	})

	t.Run("superadmin bound to a tenant", func(t *testing.T) {
		tenantID, err := a.CreationTenant(types.Actor{MemberID: "m-1", TenantID: "t-9", Role: types.RoleSuperAdmin})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tenantID != "t-9" {
			t.Errorf("expected tenant t-9, got %q", tenantID)
		}
	})

	t.Run("tenant-less superadmin is a configuration error", func(t *testing.T) {
		_, err := a.CreationTenant(types.Actor{MemberID: "m-1", Role: types.RoleSuperAdmin})
		if !errors.Is(err, ErrNoTenantBinding) {
			t.Errorf("expected ErrNoTenantBinding, got %v", err)
		}
	})
}

func TestCanReturnLoan(t *testing.T) {
	a := newTestAuthorizer()
	loan := &types.Loan{ID: "l-1", TenantID: "t-1", MemberID: "m-1", Status: types.LoanStatusActive}

	testCases := []struct {
		name     string
		actor    types.Actor
		expected bool
	}{
		{
			name:     "borrowing member",
			actor:    types.Actor{MemberID: "m-1", TenantID: "t-1", Role: types.RoleMember},
			expected: true,
		},
		{
			name:     "other member",
			actor:    types.Actor{MemberID: "m-2", TenantID: "t-1", Role: types.RoleMember},
			expected: false,
		},
		{
			name:     "tenant admin",
			actor:    types.Actor{MemberID: "m-2", TenantID: "t-1", Role: types.RoleAdmin},
			expected: true,
		},
		{
			name:     "superadmin",
			actor:    types.Actor{MemberID: "m-2", Role: types.RoleSuperAdmin},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.CanReturnLoan(tc.actor, loan); got != tc.expected {
				t.Errorf("CanReturnLoan = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestValidateModel(t *testing.T) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewTracer(tracing.NewNoopConfig())
	a := NewAuthorizer(openfga.NewNoopClient(tracer, nil, logger), tracer, nil, logger)

	if err := a.ValidateModel(context.Background()); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestAuthorizationModelProvider(t *testing.T) {
	model := NewAuthorizationModelProvider("v0").GetModel()

	if model.SchemaVersion != "1.1" {
		t.Errorf("expected schema version 1.1, got %q", model.SchemaVersion)
	}

	var tenantType *fga.TypeDefinition
	for i := range model.TypeDefinitions {
		if model.TypeDefinitions[i].Type == "tenant" {
			tenantType = &model.TypeDefinitions[i]
		}
	}
	if tenantType == nil {
		t.Fatal("expected a tenant type definition")
	}

	for _, relation := range []string{ADMIN_RELATION, MEMBER_RELATION, CAN_VIEW_PERMISSION, CAN_BORROW_PERMISSION, CAN_MANAGE_PERMISSION} {
		if _, ok := (*tenantType.Relations)[relation]; !ok {
			t.Errorf("expected relation %q on the tenant type", relation)
		}
	}
}
