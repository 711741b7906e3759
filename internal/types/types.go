// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	RoleMember     = "member"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

const (
	LoanStatusActive   = "active"
	LoanStatusReturned = "returned"
)

const (
	AvailabilityAvailable   = "available"
	AvailabilityUnavailable = "unavailable"
)

type Tenant struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
	Enabled   bool      `db:"enabled"`
}

type Member struct {
	ID         string    `db:"id"`
	TenantID   string    `db:"tenant_id"`
	IdentityID string    `db:"identity_id"`
	Role       string    `db:"role"`
	CreatedAt  time.Time `db:"created_at"`
}

type Item struct {
	ID              string    `db:"id"`
	TenantID        string    `db:"tenant_id"`
	Title           string    `db:"title"`
	Author          string    `db:"author"`
	Code            string    `db:"code"`
	TotalCopies     int       `db:"total_copies"`
	AvailableCopies int       `db:"available_copies"`
	CreatedAt       time.Time `db:"created_at"`
}

// Availability derives the display status from the counter. The counter is
// authoritative, the status is never stored.
func (i *Item) Availability() string {
	if i.AvailableCopies > 0 {
		return AvailabilityAvailable
	}
	return AvailabilityUnavailable
}

type Loan struct {
	ID         string     `db:"id"`
	TenantID   string     `db:"tenant_id"`
	ItemID     string     `db:"item_id"`
	MemberID   string     `db:"member_id"`
	Status     string     `db:"status"`
	BorrowedAt time.Time  `db:"borrowed_at"`
	DueDate    time.Time  `db:"due_date"`
	ReturnedAt *time.Time `db:"returned_at"`
}

// Overdue is computed at query time, never maintained as a stored flag.
func (l *Loan) Overdue(now time.Time) bool {
	return l.Status == LoanStatusActive && l.DueDate.Before(now)
}

// Actor is the verified caller identity resolved by the authentication layer.
// TenantID is empty only for superadmin actors acting tenant-lessly.
type Actor struct {
	MemberID   string
	IdentityID string
	TenantID   string
	Role       string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}

func (a Actor) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

type MemberUser struct {
	MemberID string
	Email    string
	Role     string
}
