// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/canonical/lending-service/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, actor types.Actor, name, slug string) (*types.Tenant, error)
	GetTenant(ctx context.Context, actor types.Actor, tenantID string) (*types.Tenant, error)
	ListTenants(ctx context.Context, actor types.Actor) ([]*types.Tenant, error)
	SetTenantStatus(ctx context.Context, actor types.Actor, tenantID string, enabled bool) error
	DeleteTenant(ctx context.Context, actor types.Actor, tenantID string) error

	AddMember(ctx context.Context, actor types.Actor, email, role string) (*types.Member, error)
	ListMembers(ctx context.Context, actor types.Actor) ([]*types.MemberUser, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, enabled bool) error
	DeleteTenant(ctx context.Context, id string) error

	AddMember(ctx context.Context, tenantID, identityID, role string) (*types.Member, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Member, error)
}

type AuthzInterface interface {
	CanAccess(actor types.Actor, resourceTenantID string) bool
	CreationTenant(actor types.Actor) (string, error)

	AssignTenantAdmin(ctx context.Context, tenantID, identityID string) error
	AssignTenantMember(ctx context.Context, tenantID, identityID string) error
	DeleteTenant(ctx context.Context, tenantID string) error
}

type KratosClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email string) (string, error)
	GetIdentityEmail(ctx context.Context, id string) (string, error)
}
