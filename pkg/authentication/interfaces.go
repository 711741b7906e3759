// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/lending-service/internal/types"
)

type StorageInterface interface {
	GetMemberByIdentityID(ctx context.Context, identityID string) (*types.Member, error)
}

type AuthzInterface interface {
	CheckTenantAccess(ctx context.Context, tenantID, identityID, relation string) (bool, error)
}
