// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"

	"github.com/canonical/lending-service/internal/logging"
	"github.com/canonical/lending-service/internal/monitoring"
	"github.com/canonical/lending-service/internal/tracing"
	"github.com/canonical/lending-service/internal/types"
)

// ErrNoTenantBinding flags a superadmin actor that is not associated with
// exactly one tenant trying to create tenant-owned records. This is a
// deployment configuration problem, not a user error.
var ErrNoTenantBinding = errors.New("actor is not bound to a tenant")

// ErrInvalidAuthModel flags a store whose schema does not match the one the
// binary was built against.
var ErrInvalidAuthModel = errors.New("authorization model mismatch")

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}

func (a *Authorizer) Check(ctx context.Context, user, relation, object string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object)
}

func (a *Authorizer) CheckTenantAccess(ctx context.Context, tenantID, identityID, relation string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckTenantAccess")
	defer span.End()

	return a.Check(ctx, UserTuple(identityID), relation, TenantTuple(tenantID))
}

// CanAccess is the tenant isolation guard. A tenant-scoped actor may touch
// only records of its own tenant; a superadmin may cross tenants. Callers must
// report a denial for an out-of-tenant record exactly like an absent record,
// so cross-tenant existence is never revealed.
func (a *Authorizer) CanAccess(actor types.Actor, resourceTenantID string) bool {
	if actor.IsSuperAdmin() {
		return true
	}
	return actor.TenantID != "" && actor.TenantID == resourceTenantID
}

// CreationTenant resolves the tenant new child records (loans, items) belong
// to. A superadmin must be bound to exactly one tenant to create such records.
func (a *Authorizer) CreationTenant(actor types.Actor) (string, error) {
	if actor.TenantID != "" {
		return actor.TenantID, nil
	}
	return "", ErrNoTenantBinding
}

// CanReturnLoan allows the borrowing member itself or any admin of the loan's
// tenant. Tenant scope must already have been verified through CanAccess.
func (a *Authorizer) CanReturnLoan(actor types.Actor, loan *types.Loan) bool {
	if actor.MemberID != "" && actor.MemberID == loan.MemberID {
		return true
	}
	return actor.IsAdmin()
}

// ValidateModel checks the configured store against the schema this binary
// was built for. A mismatch here means checks would silently answer for the
// wrong model, so the caller is expected to refuse to start.
func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	model := *NewAuthorizationModelProvider("v0").GetModel()

	eq, err := a.client.CompareModel(ctx, model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) AssignTenantAdmin(ctx context.Context, tenantID, identityID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignTenantAdmin")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(identityID), ADMIN_RELATION, TenantTuple(tenantID))
}

func (a *Authorizer) AssignTenantMember(ctx context.Context, tenantID, identityID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignTenantMember")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(identityID), MEMBER_RELATION, TenantTuple(tenantID))
}

func (a *Authorizer) RemoveTenantMember(ctx context.Context, tenantID, identityID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveTenantMember")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(identityID), MEMBER_RELATION, TenantTuple(tenantID))
}

// DeleteTenant removes every relation tuple attached to the tenant object.
func (a *Authorizer) DeleteTenant(ctx context.Context, tenantID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.DeleteTenant")
	defer span.End()

	cToken := ""
	for {
		tuples, nextToken, err := a.client.ReadTuples(ctx, "", "", TenantTuple(tenantID), cToken)
		if err != nil {
			a.logger.Errorf("error when retrieving tuples: %s", err)
			return err
		}
		if len(tuples) == 0 {
			break
		}
		if err := a.client.DeleteTuples(ctx, tuples...); err != nil {
			a.logger.Errorf("error when deleting tuples %v: %s", tuples, err)
			return err
		}
		if nextToken == "" {
			break
		}
		cToken = nextToken
	}
	return nil
}
