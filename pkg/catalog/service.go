// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package catalog manages the per-tenant item inventory. Display fields are
// freely editable, the copy counters move only through guarded writes so the
// ledger stays consistent with open loans.
package catalog

import (
	"context"
	"errors"

	"github.com/canonical/lending-service/internal/logging"
	"github.com/canonical/lending-service/internal/monitoring"
	"github.com/canonical/lending-service/internal/storage"
	"github.com/canonical/lending-service/internal/tracing"
	"github.com/canonical/lending-service/internal/types"
	"github.com/canonical/lending-service/pkg/loan"
)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	tx      TxRunnerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	tx TxRunnerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tx:      tx,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateItem(ctx context.Context, actor types.Actor, title, author, code string, totalCopies int) (*types.Item, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.CreateItem")
	defer span.End()

	if !actor.IsAdmin() {
		return nil, loan.Forbidden("item", "only admins manage the catalog")
	}
	if totalCopies < 1 {
		return nil, loan.Validation("total_copies", "must be at least 1")
	}

	tenantID, err := s.authz.CreationTenant(actor)
	if err != nil {
		return nil, loan.Forbidden("item", "actor is not bound to a tenant")
	}

	created, err := s.storage.CreateItem(ctx, &types.Item{
		TenantID:    tenantID,
		Title:       title,
		Author:      author,
		Code:        code,
		TotalCopies: totalCopies,
	})
	if err != nil {
		if storage.IsDuplicateKeyError(err) || errors.Is(err, storage.ErrDuplicateKey) {
			return nil, loan.Conflict("item", "item code already in use")
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, loan.NotFound("tenant")
		}
		return nil, loan.Internal(err)
	}

	return created, nil
}

func (s *Service) GetItem(ctx context.Context, actor types.Actor, itemID string) (*types.Item, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.GetItem")
	defer span.End()

	item, err := s.storage.GetItemByID(ctx, s.readScope(actor), itemID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, loan.NotFound("item")
		}
		return nil, loan.Internal(err)
	}

	return item, nil
}

func (s *Service) ListItems(ctx context.Context, actor types.Actor) ([]*types.Item, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ListItems")
	defer span.End()

	items, err := s.storage.ListItems(ctx, s.readScope(actor))
	if err != nil {
		return nil, loan.Internal(err)
	}

	return items, nil
}

func (s *Service) UpdateItem(ctx context.Context, actor types.Actor, itemID string, details ItemDetails) (*types.Item, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.UpdateItem")
	defer span.End()

	if !actor.IsAdmin() {
		return nil, loan.Forbidden("item", "only admins manage the catalog")
	}

	tenantID, err := s.authz.CreationTenant(actor)
	if err != nil {
		return nil, loan.Forbidden("item", "actor is not bound to a tenant")
	}

	item := &types.Item{ID: itemID, TenantID: tenantID}
	var paths []string
	if details.Title != nil {
		item.Title = *details.Title
		paths = append(paths, "title")
	}
	if details.Author != nil {
		item.Author = *details.Author
		paths = append(paths, "author")
	}
	if details.Code != nil {
		item.Code = *details.Code
		paths = append(paths, "code")
	}

	var updated *types.Item
	err = s.tx.WithRetry(ctx, func(txCtx context.Context) error {
		if err := s.storage.UpdateItemDetails(txCtx, item, paths); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return loan.NotFound("item")
			}
			if storage.IsDuplicateKeyError(err) {
				return loan.Conflict("item", "item code already in use")
			}
			return loan.Internal(err)
		}

		updated, err = s.storage.GetItemByID(txCtx, tenantID, itemID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return loan.NotFound("item")
			}
			return loan.Internal(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ResizeItem changes a stock level while loans may be open against it. The
// delta lands on available_copies in the same write, a shrink below the number
// of copies currently on loan is rejected rather than leaving the ledger
// negative.
func (s *Service) ResizeItem(ctx context.Context, actor types.Actor, itemID string, totalCopies int) (*types.Item, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.ResizeItem")
	defer span.End()

	if !actor.IsAdmin() {
		return nil, loan.Forbidden("item", "only admins manage the catalog")
	}
	if totalCopies < 1 {
		return nil, loan.Validation("total_copies", "must be at least 1")
	}

	tenantID, err := s.authz.CreationTenant(actor)
	if err != nil {
		return nil, loan.Forbidden("item", "actor is not bound to a tenant")
	}

	var resized *types.Item
	err = s.tx.WithRetry(ctx, func(txCtx context.Context) error {
		// The existence check tells a missing item apart from a rejected
		// shrink, the guarded update alone reports both as no row.
		if _, err := s.storage.GetItemByID(txCtx, tenantID, itemID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return loan.NotFound("item")
			}
			return loan.Internal(err)
		}

		resized, err = s.storage.ResizeItemCopies(txCtx, tenantID, itemID, totalCopies)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return loan.Conflict("item", "too many copies are on loan for that total")
			}
			return loan.Internal(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resized, nil
}

func (s *Service) DeleteItem(ctx context.Context, actor types.Actor, itemID string) error {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.DeleteItem")
	defer span.End()

	if !actor.IsAdmin() {
		return loan.Forbidden("item", "only admins manage the catalog")
	}

	tenantID, err := s.authz.CreationTenant(actor)
	if err != nil {
		return loan.Forbidden("item", "actor is not bound to a tenant")
	}

	if err := s.storage.DeleteItem(ctx, tenantID, itemID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return loan.NotFound("item")
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return loan.Conflict("item", "item has loan history")
		}
		return loan.Internal(err)
	}

	return nil
}

// readScope widens queries for tenant-less superadmin actors, everyone else
// stays inside their tenant.
func (s *Service) readScope(actor types.Actor) string {
	if actor.IsSuperAdmin() && actor.TenantID == "" {
		return ""
	}
	return actor.TenantID
}
