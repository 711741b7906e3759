// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	fga "github.com/openfga/go-sdk"
)

// AuthorizationModelProvider builds the openfga schema the service expects.
// Equivalent DSL:
//
//	model
//	  schema 1.1
//
//	type user
//
//	type tenant
//	  relations
//	    define admin: [user]
//	    define member: [user] or admin
//	    define can_view: member
//	    define can_borrow: member
//	    define can_manage: admin
type AuthorizationModelProvider struct {
	version string
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	return &AuthorizationModelProvider{version: version}
}

func (p *AuthorizationModelProvider) GetVersion() string {
	return p.version
}

func (p *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	directUser := []fga.RelationReference{{Type: "user"}}
	computedOnly := []fga.RelationReference{}

	return &fga.AuthorizationModel{
		SchemaVersion: "1.1",
		TypeDefinitions: []fga.TypeDefinition{
			{
				Type: "user",
			},
			{
				Type: "tenant",
				Relations: &map[string]fga.Userset{
					ADMIN_RELATION: {
						This: &map[string]interface{}{},
					},
					MEMBER_RELATION: {
						Union: &fga.Usersets{
							Child: []fga.Userset{
								{This: &map[string]interface{}{}},
								{ComputedUserset: &fga.ObjectRelation{
									Object:   fga.PtrString(""),
									Relation: fga.PtrString(ADMIN_RELATION),
								}},
							},
						},
					},
					CAN_VIEW_PERMISSION: {
						ComputedUserset: &fga.ObjectRelation{
							Object:   fga.PtrString(""),
							Relation: fga.PtrString(MEMBER_RELATION),
						},
					},
					CAN_BORROW_PERMISSION: {
						ComputedUserset: &fga.ObjectRelation{
							Object:   fga.PtrString(""),
							Relation: fga.PtrString(MEMBER_RELATION),
						},
					},
					CAN_MANAGE_PERMISSION: {
						ComputedUserset: &fga.ObjectRelation{
							Object:   fga.PtrString(""),
							Relation: fga.PtrString(ADMIN_RELATION),
						},
					},
				},
				Metadata: &fga.Metadata{
					Relations: &map[string]fga.RelationMetadata{
						ADMIN_RELATION:        {DirectlyRelatedUserTypes: &directUser},
						MEMBER_RELATION:       {DirectlyRelatedUserTypes: &directUser},
						CAN_VIEW_PERMISSION:   {DirectlyRelatedUserTypes: &computedOnly},
						CAN_BORROW_PERMISSION: {DirectlyRelatedUserTypes: &computedOnly},
						CAN_MANAGE_PERMISSION: {DirectlyRelatedUserTypes: &computedOnly},
					},
				},
			},
		},
	}
}
