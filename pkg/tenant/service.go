// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package tenant provisions tenants and manages their member rosters. Member
// identities live in Kratos, role relations live in OpenFGA, the roster row
// ties the two to a tenant.
package tenant

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
	kratos  KratosClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	kratos KratosClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		kratos:  kratos,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateTenant(ctx context.Context, actor types.Actor, name, slug string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	if !actor.IsSuperAdmin() {
		return nil, loan.Forbidden("tenant", "only superadmins provision tenants")
	}

	created, err := s.storage.CreateTenant(ctx, &types.Tenant{Name: name, Slug: slug, Enabled: true})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) || storage.IsDuplicateKeyError(err) {
			return nil, loan.Conflict("tenant", "slug already in use")
		}
		return nil, loan.Internal(err)
	}

	s.logger.Infof("provisioned tenant %s (%s)", created.ID, created.Slug)
	return created, nil
}

func (s *Service) GetTenant(ctx context.Context, actor types.Actor, tenantID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	if !s.authz.CanAccess(actor, tenantID) {
		return nil, loan.NotFound("tenant")
	}

	t, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, loan.NotFound("tenant")
		}
		return nil, loan.Internal(err)
	}

	return t, nil
}

func (s *Service) ListTenants(ctx context.Context, actor types.Actor) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	if !actor.IsSuperAdmin() {
		return nil, loan.Forbidden("tenant", "only superadmins list tenants")
	}

	tenants, err := s.storage.ListTenants(ctx)
	if err != nil {
		return nil, loan.Internal(err)
	}

	return tenants, nil
}

// SetTenantStatus disables or re-enables a tenant. Disabling suspends access
// for its members, the data stays in place.
func (s *Service) SetTenantStatus(ctx context.Context, actor types.Actor, tenantID string, enabled bool) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetTenantStatus")
	defer span.End()

	if !actor.IsSuperAdmin() {
		return loan.Forbidden("tenant", "only superadmins change tenant status")
	}

	if err := s.storage.SetTenantStatus(ctx, tenantID, enabled); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return loan.NotFound("tenant")
		}
		return loan.Internal(err)
	}

	return nil
}

func (s *Service) DeleteTenant(ctx context.Context, actor types.Actor, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteTenant")
	defer span.End()

	if !actor.IsSuperAdmin() {
		return loan.Forbidden("tenant", "only superadmins delete tenants")
	}

	if err := s.storage.DeleteTenant(ctx, tenantID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return loan.NotFound("tenant")
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return loan.Conflict("tenant", "tenant still has catalog or loan records")
		}
		return loan.Internal(err)
	}

	// The rows are gone, stale relation tuples only deny access, so a cleanup
	// failure is logged rather than surfaced.
	if err := s.authz.DeleteTenant(ctx, tenantID); err != nil {
		s.logger.Errorf("failed to clean up relation tuples for tenant %s: %v", tenantID, err)
	}

	return nil
}

// AddMember enrolls an email address into the actor's tenant. An unknown email
// gets a fresh Kratos identity so the invite works before first login.
func (s *Service) AddMember(ctx context.Context, actor types.Actor, email, role string) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.AddMember")
	defer span.End()

	if !actor.IsAdmin() {
		return nil, loan.Forbidden("member", "only admins manage the roster")
	}
	if role != types.RoleMember && role != types.RoleAdmin {
		return nil, loan.Validation("role", "must be member or admin")
	}

	tenantID, err := s.authz.CreationTenant(actor)
	if err != nil {
		return nil, loan.Forbidden("member", "actor is not bound to a tenant")
	}

	identityID, err := s.kratos.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		return nil, loan.Internal(err)
	}
	if identityID == "" {
		identityID, err = s.kratos.CreateIdentity(ctx, email)
		if err != nil {
			return nil, loan.Internal(err)
		}
	}

	member, err := s.storage.AddMember(ctx, tenantID, identityID, role)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, loan.Conflict("member", "identity is already enrolled")
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, loan.NotFound("tenant")
		}
		return nil, loan.Internal(err)
	}

	assign := s.authz.AssignTenantMember
	if role == types.RoleAdmin {
		assign = s.authz.AssignTenantAdmin
	}
	if err := assign(ctx, tenantID, identityID); err != nil {
		return nil, loan.Internal(err)
	}

	return member, nil
}

func (s *Service) ListMembers(ctx context.Context, actor types.Actor) ([]*types.MemberUser, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListMembers")
	defer span.End()

	if !actor.IsAdmin() {
		return nil, loan.Forbidden("member", "only admins view the roster")
	}

	tenantID, err := s.authz.CreationTenant(actor)
	if err != nil {
		return nil, loan.Forbidden("member", "actor is not bound to a tenant")
	}

	members, err := s.storage.ListMembersByTenantID(ctx, tenantID)
	if err != nil {
		return nil, loan.Internal(err)
	}

	users := make([]*types.MemberUser, 0, len(members))
	for _, m := range members {
		email, err := s.kratos.GetIdentityEmail(ctx, m.IdentityID)
		if err != nil {
			// The roster stays useful without the email column.
			s.logger.Warnf("failed to resolve email for identity %s: %v", m.IdentityID, err)
		}
		users = append(users, &types.MemberUser{MemberID: m.ID, Email: email, Role: m.Role})
	}

	return users, nil
}
