// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/lending-service/internal/types"
)

const (
	MEMBER_RELATION = "member"
	ADMIN_RELATION  = "admin"

	CAN_VIEW_PERMISSION   = "can_view"
	CAN_BORROW_PERMISSION = "can_borrow"
	CAN_MANAGE_PERMISSION = "can_manage"
)

func UserTuple(identityID string) string {
	return "user:" + identityID
}

func TenantTuple(tenantID string) string {
	return "tenant:" + tenantID
}

// RelationForRole maps a member role to the tuple relation recorded for it.
func RelationForRole(role string) string {
	if role == types.RoleAdmin {
		return ADMIN_RELATION
	}

	return MEMBER_RELATION
}
