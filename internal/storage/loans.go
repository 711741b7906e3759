// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/lending-service/internal/types"
)

const loanColumns = "id, tenant_id, item_id, member_id, status, borrowed_at, due_date, returned_at"

// CreateLoanWithinLimit inserts an active loan only while the member's active
// loan count is below limit. The guard and the insert are one statement, the
// count is evaluated by the database at write time, never cached. Combined with
// the member row lock taken by the borrow transaction this cannot overshoot.
func (s *Storage) CreateLoanWithinLimit(ctx context.Context, loan *types.Loan, limit int) (*types.Loan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLoanWithinLimit")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate loan ID: %w", err)
	}

	guarded := sq.Select().
		Column(sq.Expr(
			"?, ?, ?, ?, ?, ?, ?",
			id.String(), loan.TenantID, loan.ItemID, loan.MemberID, types.LoanStatusActive, loan.BorrowedAt, loan.DueDate,
		)).
		Where(sq.Expr(
			"(SELECT count(*) FROM loans WHERE member_id = ? AND status = ?) < ?",
			loan.MemberID, types.LoanStatusActive, limit,
		))

	var created types.Loan
	err = s.db.Statement(ctx).
		Insert("loans").
		Columns("id", "tenant_id", "item_id", "member_id", "status", "borrowed_at", "due_date").
		Select(guarded).
		Suffix("RETURNING " + loanColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.ItemID, &created.MemberID, &created.Status, &created.BorrowedAt, &created.DueDate, &created.ReturnedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLimitExceeded
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert loan: %w", err)
	}

	return &created, nil
}

// GetLoanByID fetches a loan scoped to a tenant. An empty tenantID widens the
// lookup for tenant-less superadmin actors.
func (s *Storage) GetLoanByID(ctx context.Context, tenantID, loanID string) (*types.Loan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLoanByID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "tenant_id", "item_id", "member_id", "status", "borrowed_at", "due_date", "returned_at").
		From("loans").
		Where(sq.Eq{"id": loanID})

	if tenantID != "" {
		query = query.Where(sq.Eq{"tenant_id": tenantID})
	}

	var l types.Loan
	err := query.
		QueryRowContext(ctx).
		Scan(&l.ID, &l.TenantID, &l.ItemID, &l.MemberID, &l.Status, &l.BorrowedAt, &l.DueDate, &l.ReturnedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}

	return &l, nil
}

// MarkLoanReturned flips an active loan to returned. The status predicate makes
// the transition one-way: of any number of concurrent return attempts exactly
// one sees a row, the rest get ErrNotFound and the caller reports the loan as
// already returned.
func (s *Storage) MarkLoanReturned(ctx context.Context, loanID string, returnedAt time.Time) (*types.Loan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkLoanReturned")
	defer span.End()

	var l types.Loan
	err := s.db.Statement(ctx).
		Update("loans").
		Set("status", types.LoanStatusReturned).
		Set("returned_at", returnedAt).
		Where(sq.Eq{"id": loanID, "status": types.LoanStatusActive}).
		Suffix("RETURNING " + loanColumns).
		QueryRowContext(ctx).
		Scan(&l.ID, &l.TenantID, &l.ItemID, &l.MemberID, &l.Status, &l.BorrowedAt, &l.DueDate, &l.ReturnedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark loan returned: %w", err)
	}

	return &l, nil
}

func (s *Storage) CountActiveLoans(ctx context.Context, memberID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveLoans")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("count(*)").
		From("loans").
		Where(sq.Eq{"member_id": memberID, "status": types.LoanStatusActive}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count active loans: %w", err)
	}

	return count, nil
}

// ListOverdueLoans returns active loans whose due date has passed. Overdue is
// derived at query time from the supplied clock. An empty tenantID scans all
// tenants for global reporting.
func (s *Storage) ListOverdueLoans(ctx context.Context, tenantID string, now time.Time) ([]*types.Loan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOverdueLoans")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "tenant_id", "item_id", "member_id", "status", "borrowed_at", "due_date", "returned_at").
		From("loans").
		Where(sq.Eq{"status": types.LoanStatusActive}).
		Where(sq.Lt{"due_date": now}).
		OrderBy("due_date", "id")

	if tenantID != "" {
		query = query.Where(sq.Eq{"tenant_id": tenantID})
	}

	return s.scanLoans(ctx, query)
}

func (s *Storage) ListLoansByMember(ctx context.Context, tenantID, memberID string) ([]*types.Loan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLoansByMember")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "tenant_id", "item_id", "member_id", "status", "borrowed_at", "due_date", "returned_at").
		From("loans").
		Where(sq.Eq{"tenant_id": tenantID, "member_id": memberID}).
		OrderBy("borrowed_at", "id")

	return s.scanLoans(ctx, query)
}

func (s *Storage) scanLoans(ctx context.Context, query sq.SelectBuilder) ([]*types.Loan, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []*types.Loan
	for rows.Next() {
		var l types.Loan
		if err := rows.Scan(&l.ID, &l.TenantID, &l.ItemID, &l.MemberID, &l.Status, &l.BorrowedAt, &l.DueDate, &l.ReturnedAt); err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return loans, nil
}
