// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/lending-service/internal/types"
)

const itemColumns = "id, tenant_id, title, author, code, total_copies, available_copies, created_at"

func (s *Storage) CreateItem(ctx context.Context, item *types.Item) (*types.Item, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateItem")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate item ID: %w", err)
	}

	// A new item starts fully available.
	var created types.Item
	err = s.db.Statement(ctx).
		Insert("items").
		Columns("id", "tenant_id", "title", "author", "code", "total_copies", "available_copies").
		Values(id.String(), item.TenantID, item.Title, item.Author, item.Code, item.TotalCopies, item.TotalCopies).
		Suffix("RETURNING " + itemColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.Title, &created.Author, &created.Code, &created.TotalCopies, &created.AvailableCopies, &created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetItemByID(ctx context.Context, tenantID, itemID string) (*types.Item, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetItemByID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "tenant_id", "title", "author", "code", "total_copies", "available_copies", "created_at").
		From("items").
		Where(sq.Eq{"id": itemID})

	// An empty tenantID widens the lookup for tenant-less superadmin actors.
	if tenantID != "" {
		query = query.Where(sq.Eq{"tenant_id": tenantID})
	}

	var item types.Item
	err := query.
		QueryRowContext(ctx).
		Scan(&item.ID, &item.TenantID, &item.Title, &item.Author, &item.Code, &item.TotalCopies, &item.AvailableCopies, &item.CreatedAt)

	if err != nil {
		// A cross-tenant item id lands here as well, indistinguishable from absence.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return &item, nil
}

func (s *Storage) ListItems(ctx context.Context, tenantID string) ([]*types.Item, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListItems")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "tenant_id", "title", "author", "code", "total_copies", "available_copies", "created_at").
		From("items").
		OrderBy("created_at")

	if tenantID != "" {
		query = query.Where(sq.Eq{"tenant_id": tenantID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []*types.Item
	for rows.Next() {
		var item types.Item
		if err := rows.Scan(&item.ID, &item.TenantID, &item.Title, &item.Author, &item.Code, &item.TotalCopies, &item.AvailableCopies, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

// UpdateItemDetails updates display fields specified in paths, PATCH semantics.
// Copy counters are never touched here, they move only through ResizeItemCopies
// and the acquire/release pair.
func (s *Storage) UpdateItemDetails(ctx context.Context, item *types.Item, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateItemDetails")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "title":
			updateMap["title"] = item.Title
		case "author":
			updateMap["author"] = item.Author
		case "code":
			updateMap["code"] = item.Code
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("items").
		SetMap(updateMap).
		Where(sq.Eq{"id": item.ID, "tenant_id": item.TenantID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ResizeItemCopies changes total_copies and shifts available_copies by the same
// delta, so copies currently on loan stay on loan. The guard rejects an edit
// that would push available_copies below zero while loans are in flight.
func (s *Storage) ResizeItemCopies(ctx context.Context, tenantID, itemID string, totalCopies int) (*types.Item, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ResizeItemCopies")
	defer span.End()

	var item types.Item
	err := s.db.Statement(ctx).
		Update("items").
		Set("available_copies", sq.Expr("available_copies + (? - total_copies)", totalCopies)).
		Set("total_copies", totalCopies).
		Where(sq.Eq{"id": itemID, "tenant_id": tenantID}).
		Where(sq.Expr("available_copies + (? - total_copies) >= 0", totalCopies)).
		Suffix("RETURNING " + itemColumns).
		QueryRowContext(ctx).
		Scan(&item.ID, &item.TenantID, &item.Title, &item.Author, &item.Code, &item.TotalCopies, &item.AvailableCopies, &item.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resize item copies: %w", err)
	}

	return &item, nil
}

func (s *Storage) DeleteItem(ctx context.Context, tenantID, itemID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteItem")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("items").
		Where(sq.Eq{"id": itemID, "tenant_id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// AcquireItemCopy decrements available_copies only while it is positive, in one
// conditional write. The reported row count is the availability check: false
// means no copy was free at commit time. A separate read followed by an
// unconditional write would race under concurrent borrows.
func (s *Storage) AcquireItemCopy(ctx context.Context, tenantID, itemID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AcquireItemCopy")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("items").
		Set("available_copies", sq.Expr("available_copies - 1")).
		Where(sq.Eq{"id": itemID, "tenant_id": tenantID}).
		Where(sq.Gt{"available_copies": 0}).
		ExecContext(ctx)

	if err != nil {
		return false, fmt.Errorf("failed to acquire item copy: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}

// ReleaseItemCopy increments available_copies only while it is below
// total_copies. A false return means the ledger already accounts for every
// copy, incrementing further would corrupt it.
func (s *Storage) ReleaseItemCopy(ctx context.Context, tenantID, itemID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ReleaseItemCopy")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("items").
		Set("available_copies", sq.Expr("available_copies + 1")).
		Where(sq.Eq{"id": itemID, "tenant_id": tenantID}).
		Where(sq.Expr("available_copies < total_copies")).
		ExecContext(ctx)

	if err != nil {
		return false, fmt.Errorf("failed to release item copy: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}
