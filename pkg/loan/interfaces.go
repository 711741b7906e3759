// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package loan

import (
	"context"
	"time"

	"github.com/canonical/lending-service/internal/types"
)

type ServiceInterface interface {
	Borrow(ctx context.Context, actor types.Actor, itemID string, dueDate time.Time) (*types.Loan, error)
	Return(ctx context.Context, actor types.Actor, loanID string) (*types.Loan, error)
	ListOverdue(ctx context.Context, actor types.Actor) ([]*types.Loan, error)
	ActiveLoanCount(ctx context.Context, actor types.Actor, memberID string) (int, error)
	ListMemberLoans(ctx context.Context, actor types.Actor, memberID string) ([]*types.Loan, error)
}

type StorageInterface interface {
	GetItemByID(ctx context.Context, tenantID, itemID string) (*types.Item, error)
	GetMember(ctx context.Context, tenantID, memberID string) (*types.Member, error)
	LockMember(ctx context.Context, tenantID, memberID string) error

	AcquireItemCopy(ctx context.Context, tenantID, itemID string) (bool, error)
	ReleaseItemCopy(ctx context.Context, tenantID, itemID string) (bool, error)

	CreateLoanWithinLimit(ctx context.Context, loan *types.Loan, limit int) (*types.Loan, error)
	GetLoanByID(ctx context.Context, tenantID, loanID string) (*types.Loan, error)
	MarkLoanReturned(ctx context.Context, loanID string, returnedAt time.Time) (*types.Loan, error)
	CountActiveLoans(ctx context.Context, memberID string) (int, error)
	ListOverdueLoans(ctx context.Context, tenantID string, now time.Time) ([]*types.Loan, error)
	ListLoansByMember(ctx context.Context, tenantID, memberID string) ([]*types.Loan, error)
}

type AuthzInterface interface {
	CanAccess(actor types.Actor, resourceTenantID string) bool
	CreationTenant(actor types.Actor) (string, error)
	CanReturnLoan(actor types.Actor, loan *types.Loan) bool
}

// TxRunnerInterface is the slice of the db client the service needs: one
// retriable transactional unit per mutating operation.
type TxRunnerInterface interface {
	WithRetry(ctx context.Context, fn func(context.Context) error) error
}
