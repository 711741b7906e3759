// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/lending-service/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, enabled bool) error
	DeleteTenant(ctx context.Context, id string) error

	AddMember(ctx context.Context, tenantID, identityID, role string) (*types.Member, error)
	GetMember(ctx context.Context, tenantID, memberID string) (*types.Member, error)
	GetMemberByIdentityID(ctx context.Context, identityID string) (*types.Member, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Member, error)
	LockMember(ctx context.Context, tenantID, memberID string) error

	CreateItem(ctx context.Context, item *types.Item) (*types.Item, error)
	GetItemByID(ctx context.Context, tenantID, itemID string) (*types.Item, error)
	ListItems(ctx context.Context, tenantID string) ([]*types.Item, error)
	UpdateItemDetails(ctx context.Context, item *types.Item, paths []string) error
	ResizeItemCopies(ctx context.Context, tenantID, itemID string, totalCopies int) (*types.Item, error)
	DeleteItem(ctx context.Context, tenantID, itemID string) error

	AcquireItemCopy(ctx context.Context, tenantID, itemID string) (bool, error)
	ReleaseItemCopy(ctx context.Context, tenantID, itemID string) (bool, error)

	CreateLoanWithinLimit(ctx context.Context, loan *types.Loan, limit int) (*types.Loan, error)
	GetLoanByID(ctx context.Context, tenantID, loanID string) (*types.Loan, error)
	MarkLoanReturned(ctx context.Context, loanID string, returnedAt time.Time) (*types.Loan, error)
	CountActiveLoans(ctx context.Context, memberID string) (int, error)
	ListOverdueLoans(ctx context.Context, tenantID string, now time.Time) ([]*types.Loan, error)
	ListLoansByMember(ctx context.Context, tenantID, memberID string) ([]*types.Loan, error)
}
