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

	"github.com/canonical/lending-service/internal/db"
	"github.com/canonical/lending-service/internal/logging"
	"github.com/canonical/lending-service/internal/monitoring"
	"github.com/canonical/lending-service/internal/tracing"
	"github.com/canonical/lending-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	var newTenant types.Tenant
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "slug", "enabled").
		Values(id.String(), t.Name, t.Slug, t.Enabled).
		Suffix("RETURNING id, name, slug, created_at, enabled").
		QueryRowContext(ctx).
		Scan(&newTenant.ID, &newTenant.Name, &newTenant.Slug, &newTenant.CreatedAt, &newTenant.Enabled)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "tenant slug already in use")
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return &newTenant, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("id", "name", "slug", "created_at", "enabled").
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.Enabled)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "name", "slug", "created_at", "enabled").
		From("tenants").
		OrderBy("created_at")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.Enabled); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

func (s *Storage) SetTenantStatus(ctx context.Context, id string, enabled bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("enabled", enabled).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update tenant status: %w", err)
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

func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}
	return nil
}

func (s *Storage) AddMember(ctx context.Context, tenantID, identityID, role string) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate member ID: %w", err)
	}

	var m types.Member
	err = s.db.Statement(ctx).
		Insert("members").
		Columns("id", "tenant_id", "identity_id", "role").
		Values(id.String(), tenantID, identityID, role).
		Suffix("RETURNING id, tenant_id, identity_id, role, created_at").
		QueryRowContext(ctx).
		Scan(&m.ID, &m.TenantID, &m.IdentityID, &m.Role, &m.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return &m, nil
}

// GetMember fetches a member scoped to a tenant. An empty tenantID widens the
// lookup for tenant-less superadmin actors.
func (s *Storage) GetMember(ctx context.Context, tenantID, memberID string) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMember")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "tenant_id", "identity_id", "role", "created_at").
		From("members").
		Where(sq.Eq{"id": memberID})

	if tenantID != "" {
		query = query.Where(sq.Eq{"tenant_id": tenantID})
	}

	var m types.Member
	var memberTenantID *string
	err := query.
		QueryRowContext(ctx).
		Scan(&m.ID, &memberTenantID, &m.IdentityID, &m.Role, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	if memberTenantID != nil {
		m.TenantID = *memberTenantID
	}

	return &m, nil
}

func (s *Storage) GetMemberByIdentityID(ctx context.Context, identityID string) (*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMemberByIdentityID")
	defer span.End()

	var m types.Member
	var tenantID *string
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "identity_id", "role", "created_at").
		From("members").
		Where(sq.Eq{"identity_id": identityID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &tenantID, &m.IdentityID, &m.Role, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	// tenant_id is null for tenant-less superadmin rows
	if tenantID != nil {
		m.TenantID = *tenantID
	}

	return &m, nil
}

func (s *Storage) ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByTenantID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "tenant_id", "identity_id", "role", "created_at").
		From("members").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Member
	for rows.Next() {
		var m types.Member
		if err := rows.Scan(&m.ID, &m.TenantID, &m.IdentityID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// LockMember takes a row lock on the member for the duration of the enclosing
// transaction. Borrow attempts from the same member serialize on this lock, so
// the loan limit count inside the transaction cannot race with itself.
func (s *Storage) LockMember(ctx context.Context, tenantID, memberID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.LockMember")
	defer span.End()

	var id string
	err := s.db.Statement(ctx).
		Select("id").
		From("members").
		Where(sq.Eq{"id": memberID, "tenant_id": tenantID}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx).
		Scan(&id)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock member: %w", err)
	}

	return nil
}
