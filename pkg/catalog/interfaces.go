// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"

	"github.com/canonical/lending-service/internal/types"
)

type ServiceInterface interface {
	CreateItem(ctx context.Context, actor types.Actor, title, author, code string, totalCopies int) (*types.Item, error)
	GetItem(ctx context.Context, actor types.Actor, itemID string) (*types.Item, error)
	ListItems(ctx context.Context, actor types.Actor) ([]*types.Item, error)
	UpdateItem(ctx context.Context, actor types.Actor, itemID string, details ItemDetails) (*types.Item, error)
	ResizeItem(ctx context.Context, actor types.Actor, itemID string, totalCopies int) (*types.Item, error)
	DeleteItem(ctx context.Context, actor types.Actor, itemID string) error
}

// ItemDetails carries the PATCH-able display fields, nil means leave as is.
type ItemDetails struct {
	Title  *string
	Author *string
	Code   *string
}

type StorageInterface interface {
	CreateItem(ctx context.Context, item *types.Item) (*types.Item, error)
	GetItemByID(ctx context.Context, tenantID, itemID string) (*types.Item, error)
	ListItems(ctx context.Context, tenantID string) ([]*types.Item, error)
	UpdateItemDetails(ctx context.Context, item *types.Item, paths []string) error
	ResizeItemCopies(ctx context.Context, tenantID, itemID string, totalCopies int) (*types.Item, error)
	DeleteItem(ctx context.Context, tenantID, itemID string) error
}

type AuthzInterface interface {
	CreationTenant(actor types.Actor) (string, error)
}

type TxRunnerInterface interface {
	WithRetry(ctx context.Context, fn func(context.Context) error) error
}
