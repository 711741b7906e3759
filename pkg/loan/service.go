// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package loan

import (
	"context"
	"errors"
	"time"

	"github.com/canonical/lending-service/internal/logging"
	"github.com/canonical/lending-service/internal/monitoring"
	"github.com/canonical/lending-service/internal/storage"
	"github.com/canonical/lending-service/internal/tracing"
	"github.com/canonical/lending-service/internal/types"
)

// DefaultLoanLimit is the maximum number of simultaneously active loans per
// member when no override is configured.
const DefaultLoanLimit = 5

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	tx      TxRunnerInterface
	limit   int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	tx TxRunnerInterface,
	limit int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	if limit <= 0 {
		limit = DefaultLoanLimit
	}

	return &Service{
		storage: storage,
		authz:   authz,
		tx:      tx,
		limit:   limit,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Borrow moves one copy of an item from available to on loan. The availability
// check, the counter decrement, the limit check and the loan insert all commit
// or roll back together; no partial effect is ever visible.
func (s *Service) Borrow(ctx context.Context, actor types.Actor, itemID string, dueDate time.Time) (*types.Loan, error) {
	ctx, span := s.tracer.Start(ctx, "loan.Service.Borrow")
	defer span.End()

	now := time.Now().UTC()
	if !dueDate.After(now) {
		return nil, Validation("due_date", "must be in the future")
	}

	tenantID, err := s.authz.CreationTenant(actor)
	if err != nil {
		s.logger.Errorf("actor %s cannot create loans: %v", actor.MemberID, err)
		return nil, Forbidden("loan", "actor is not bound to a tenant")
	}

	var created *types.Loan
	err = s.tx.WithRetry(ctx, func(txCtx context.Context) error {
		// Concurrent borrows by the same member serialize on the member row,
		// the limit count below cannot race with itself.
		if err := s.storage.LockMember(txCtx, tenantID, actor.MemberID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return NotFound("member")
			}
			return Internal(err)
		}

		// Absent and cross-tenant items surface identically.
		item, err := s.storage.GetItemByID(txCtx, tenantID, itemID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return NotFound("item")
			}
			return Internal(err)
		}

		acquired, err := s.storage.AcquireItemCopy(txCtx, tenantID, item.ID)
		if err != nil {
			return Internal(err)
		}
		if !acquired {
			return ErrNoCopiesAvailable
		}

		created, err = s.storage.CreateLoanWithinLimit(txCtx, &types.Loan{
			TenantID:   tenantID,
			ItemID:     item.ID,
			MemberID:   actor.MemberID,
			BorrowedAt: now,
			DueDate:    dueDate,
		}, s.limit)
		if err != nil {
			if errors.Is(err, storage.ErrLimitExceeded) {
				return ErrLoanLimitReached
			}
			return Internal(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Return closes an active loan and releases its copy back to the ledger. The
// active-status predicate on the update makes duplicate returns lose the race
// and report a conflict instead of silently succeeding.
func (s *Service) Return(ctx context.Context, actor types.Actor, loanID string) (*types.Loan, error) {
	ctx, span := s.tracer.Start(ctx, "loan.Service.Return")
	defer span.End()

	now := time.Now().UTC()

	var returned *types.Loan
	err := s.tx.WithRetry(ctx, func(txCtx context.Context) error {
		l, err := s.storage.GetLoanByID(txCtx, s.readScope(actor), loanID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return NotFound("loan")
			}
			return Internal(err)
		}

		if !s.authz.CanAccess(actor, l.TenantID) {
			return NotFound("loan")
		}
		if !s.authz.CanReturnLoan(actor, l) {
			return Forbidden("loan", "only the borrower or an admin may return a loan")
		}
		if l.Status != types.LoanStatusActive {
			return ErrAlreadyReturned
		}

		returned, err = s.storage.MarkLoanReturned(txCtx, l.ID, now)
		if err != nil {
			// The loan existed and was active a moment ago, losing the
			// conditional update means another return got there first.
			if errors.Is(err, storage.ErrNotFound) {
				return ErrAlreadyReturned
			}
			return Internal(err)
		}

		released, err := s.storage.ReleaseItemCopy(txCtx, returned.TenantID, returned.ItemID)
		if err != nil {
			return Internal(err)
		}
		if !released {
			// Every copy is already accounted for, incrementing further would
			// corrupt the ledger. Roll the whole return back.
			s.logger.Errorf("inventory overflow on item %s returning loan %s", returned.ItemID, returned.ID)
			return ErrInventoryOverflow
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return returned, nil
}

// ListOverdue reports active loans whose due date has passed, computed against
// the current clock. It never mutates anything.
func (s *Service) ListOverdue(ctx context.Context, actor types.Actor) ([]*types.Loan, error) {
	ctx, span := s.tracer.Start(ctx, "loan.Service.ListOverdue")
	defer span.End()

	loans, err := s.storage.ListOverdueLoans(ctx, s.readScope(actor), time.Now().UTC())
	if err != nil {
		return nil, Internal(err)
	}

	return loans, nil
}

func (s *Service) ActiveLoanCount(ctx context.Context, actor types.Actor, memberID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "loan.Service.ActiveLoanCount")
	defer span.End()

	member, err := s.resolveMember(ctx, actor, memberID)
	if err != nil {
		return 0, err
	}

	count, err := s.storage.CountActiveLoans(ctx, member.ID)
	if err != nil {
		return 0, Internal(err)
	}

	return count, nil
}

func (s *Service) ListMemberLoans(ctx context.Context, actor types.Actor, memberID string) ([]*types.Loan, error) {
	ctx, span := s.tracer.Start(ctx, "loan.Service.ListMemberLoans")
	defer span.End()

	member, err := s.resolveMember(ctx, actor, memberID)
	if err != nil {
		return nil, err
	}

	loans, err := s.storage.ListLoansByMember(ctx, member.TenantID, member.ID)
	if err != nil {
		return nil, Internal(err)
	}

	return loans, nil
}

// resolveMember scopes a member lookup to the actor's tenant and enforces that
// plain members only query themselves.
func (s *Service) resolveMember(ctx context.Context, actor types.Actor, memberID string) (*types.Member, error) {
	if actor.MemberID != memberID && !actor.IsAdmin() {
		return nil, Forbidden("member", "members may only query their own loans")
	}

	tenantID := actor.TenantID
	if actor.MemberID == memberID {
		return &types.Member{ID: actor.MemberID, TenantID: actor.TenantID, Role: actor.Role}, nil
	}

	member, err := s.storage.GetMember(ctx, tenantID, memberID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, NotFound("member")
		}
		return nil, Internal(err)
	}

	return member, nil
}

// readScope widens queries for tenant-less superadmin actors, everyone else
// stays inside their tenant.
func (s *Service) readScope(actor types.Actor) string {
	if actor.IsSuperAdmin() && actor.TenantID == "" {
		return ""
	}
	return actor.TenantID
}
