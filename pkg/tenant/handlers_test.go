// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lending-service/internal/types"
	"github.com/canonical/lending-service/pkg/authentication"
	"github.com/canonical/lending-service/pkg/loan"
)

func newTestHandler(t *testing.T, spanName string) (*Handler, *MockServiceInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSvc := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	h := NewHandler(mockSvc, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), spanName).DoAndReturn(startSpan)

	return h, mockSvc
}

func serveAs(h *Handler, actor *types.Actor, method, target, body string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	h.RegisterEndpoints(router)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if actor != nil {
		req = req.WithContext(authentication.WithActor(req.Context(), *actor))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_HandleCreateTenant(t *testing.T) {
	actor := superadmin

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"name":"City Library","slug":"city-library"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateTenant(gomock.Any(), actor, "City Library", "city-library").
					Return(&types.Tenant{ID: "tenant-1", Name: "City Library", Slug: "city-library", Enabled: true}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing slug",
			body:           `{"name":"City Library"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate slug",
			body: `{"name":"City Library","slug":"city-library"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateTenant(gomock.Any(), actor, "City Library", "city-library").
					Return(nil, loan.Conflict("tenant", "slug already in use"))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, mockSvc := newTestHandler(t, "tenant.Handler.HandleCreateTenant")
			tc.setupMocks(mockSvc)

			rec := serveAs(h, &actor, http.MethodPost, "/api/v0/tenants", tc.body)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandler_HandleSetTenantStatus(t *testing.T) {
	actor := superadmin

	t.Run("disable", func(t *testing.T) {
		h, mockSvc := newTestHandler(t, "tenant.Handler.HandleSetTenantStatus")
		mockSvc.EXPECT().SetTenantStatus(gomock.Any(), actor, "tenant-1", false).Return(nil)

		rec := serveAs(h, &actor, http.MethodPatch, "/api/v0/tenants/tenant-1/status", `{"enabled":false}`)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("missing enabled flag", func(t *testing.T) {
		h, _ := newTestHandler(t, "tenant.Handler.HandleSetTenantStatus")

		rec := serveAs(h, &actor, http.MethodPatch, "/api/v0/tenants/tenant-1/status", `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestHandler_HandleAddMember(t *testing.T) {
	actor := tenantAdmin

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"email":"reader@example.com","role":"member"}`,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().AddMember(gomock.Any(), actor, "reader@example.com", "member").
					Return(&types.Member{ID: "member-2", TenantID: "tenant-1", IdentityID: "identity-2", Role: "member"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad email",
			body:           `{"email":"not-an-email","role":"member"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "superadmin role rejected",
			body:           `{"email":"reader@example.com","role":"superadmin"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, mockSvc := newTestHandler(t, "tenant.Handler.HandleAddMember")
			tc.setupMocks(mockSvc)

			rec := serveAs(h, &actor, http.MethodPost, "/api/v0/members", tc.body)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandler_HandleListMembers(t *testing.T) {
	actor := tenantAdmin

	h, mockSvc := newTestHandler(t, "tenant.Handler.HandleListMembers")
	mockSvc.EXPECT().ListMembers(gomock.Any(), actor).Return([]*types.MemberUser{
		{MemberID: "member-1", Email: "reader@example.com", Role: "member"},
	}, nil)

	rec := serveAs(h, &actor, http.MethodGet, "/api/v0/members", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []MemberUserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].Email != "reader@example.com" {
		t.Errorf("unexpected roster: %+v", resp)
	}
}
