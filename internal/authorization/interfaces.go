// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"

	"github.com/canonical/lending-service/internal/openfga"
	"github.com/canonical/lending-service/internal/types"
)

type AuthorizerInterface interface {
	Check(ctx context.Context, user, relation, object string) (bool, error)
	CheckTenantAccess(ctx context.Context, tenantID, identityID, relation string) (bool, error)

	CanAccess(actor types.Actor, resourceTenantID string) bool
	CreationTenant(actor types.Actor) (string, error)
	CanReturnLoan(actor types.Actor, loan *types.Loan) bool

	AssignTenantAdmin(ctx context.Context, tenantID, identityID string) error
	AssignTenantMember(ctx context.Context, tenantID, identityID string) error
	RemoveTenantMember(ctx context.Context, tenantID, identityID string) error
	DeleteTenant(ctx context.Context, tenantID string) error

	ValidateModel(ctx context.Context) error
}

type AuthzClientInterface interface {
	Check(ctx context.Context, user, relation, object string) (bool, error)
	ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuples(ctx context.Context, tuples ...openfga.Tuple) error
	ReadTuples(ctx context.Context, user, relation, object, continuationToken string) ([]openfga.Tuple, string, error)
	CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error)
}
