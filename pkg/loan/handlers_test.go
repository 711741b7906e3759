// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package loan

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lending-service/internal/types"
	"github.com/canonical/lending-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package loan -destination ./mock_loan.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package loan -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package loan -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package loan -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const testPeriod = 14 * 24 * time.Hour

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

func TestHandler_HandleBorrow(t *testing.T) {
	actor := types.Actor{MemberID: "member-1", TenantID: "tenant-1", Role: types.RoleMember}
	itemID := "0198a2bc-5f10-7aaa-bbbb-cccccccccccc"
	dueDate := time.Now().UTC().Add(testPeriod).Truncate(time.Second)
	created := &types.Loan{
		ID:         "loan-1",
		TenantID:   "tenant-1",
		ItemID:     itemID,
		MemberID:   "member-1",
		Status:     types.LoanStatusActive,
		BorrowedAt: time.Now().UTC(),
		DueDate:    dueDate,
	}

	testCases := []struct {
		name           string
		actor          *types.Actor
		body           string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
		expectedKind   string
	}{
		{
			name:  "success with explicit due date",
			actor: &actor,
			body:  `{"item_id":"` + itemID + `","due_date":"` + dueDate.Format(time.RFC3339) + `"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Borrow(gomock.Any(), actor, itemID, gomock.Any()).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:  "success with defaulted due date",
			actor: &actor,
			body:  `{"item_id":"` + itemID + `"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Borrow(gomock.Any(), actor, itemID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ types.Actor, _ string, due time.Time) (*types.Loan, error) {
						lower := time.Now().UTC().Add(testPeriod - time.Minute)
						upper := time.Now().UTC().Add(testPeriod + time.Minute)
						if due.Before(lower) || due.After(upper) {
							t.Errorf("default due date %v not within the configured period", due)
						}
						return created, nil
					},
				)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unauthenticated",
			actor:          nil,
			body:           `{"item_id":"` + itemID + `"}`,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusForbidden,
			expectedKind:   string(KindForbidden),
		},
		{
			name:           "malformed JSON",
			actor:          &actor,
			body:           `{"item_id":`,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   string(KindValidation),
		},
		{
			name:           "item id not a uuid",
			actor:          &actor,
			body:           `{"item_id":"not-a-uuid"}`,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   string(KindValidation),
		},
		{
			name:  "no copies available",
			actor: &actor,
			body:  `{"item_id":"` + itemID + `"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Borrow(gomock.Any(), actor, itemID, gomock.Any()).Return(nil, ErrNoCopiesAvailable)
			},
			expectedStatus: http.StatusConflict,
			expectedKind:   string(KindConflict),
		},
		{
			name:  "loan limit reached",
			actor: &actor,
			body:  `{"item_id":"` + itemID + `"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Borrow(gomock.Any(), actor, itemID, gomock.Any()).Return(nil, ErrLoanLimitReached)
			},
			expectedStatus: http.StatusConflict,
			expectedKind:   string(KindConflict),
		},
		{
			name:  "unknown item",
			actor: &actor,
			body:  `{"item_id":"` + itemID + `"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Borrow(gomock.Any(), actor, itemID, gomock.Any()).Return(nil, NotFound("item"))
			},
			expectedStatus: http.StatusNotFound,
			expectedKind:   string(KindNotFound),
		},
		{
			name:  "internal error hides detail",
			actor: &actor,
			body:  `{"item_id":"` + itemID + `"}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Borrow(gomock.Any(), actor, itemID, gomock.Any()).Return(nil, Internal(context.DeadlineExceeded))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKind:   string(KindInternal),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			h := NewHandler(mockSvc, testPeriod, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "loan.Handler.HandleBorrow").DoAndReturn(startSpan)
			tc.setupMocks(mockSvc, mockLogger)

			rec := serveAs(h, tc.actor, http.MethodPost, "/api/v0/loans", tc.body)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}

			if tc.expectedKind != "" {
				var resp errorResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode error response: %v", err)
				}
				if resp.Kind != tc.expectedKind {
					t.Errorf("expected kind %q, got %q", tc.expectedKind, resp.Kind)
				}
				if tc.expectedKind == string(KindInternal) && resp.Error != "internal error" {
					t.Errorf("internal detail leaked: %q", resp.Error)
				}
				return
			}

			var resp LoanResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.ID != "loan-1" || resp.Status != types.LoanStatusActive {
				t.Errorf("unexpected response: %+v", resp)
			}
		})
	}
}

func TestHandler_HandleReturn(t *testing.T) {
	actor := types.Actor{MemberID: "member-1", TenantID: "tenant-1", Role: types.RoleMember}
	returnedAt := time.Now().UTC()
	closed := &types.Loan{
		ID:         "loan-1",
		TenantID:   "tenant-1",
		ItemID:     "item-1",
		MemberID:   "member-1",
		Status:     types.LoanStatusReturned,
		ReturnedAt: &returnedAt,
	}

	testCases := []struct {
		name           string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name: "success",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Return(gomock.Any(), actor, "loan-1").Return(closed, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "already returned",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Return(gomock.Any(), actor, "loan-1").Return(nil, ErrAlreadyReturned)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "not found",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Return(gomock.Any(), actor, "loan-1").Return(nil, NotFound("loan"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "forbidden",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Return(gomock.Any(), actor, "loan-1").Return(nil, Forbidden("loan", "only the borrower or an admin may return a loan"))
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			h := NewHandler(mockSvc, testPeriod, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "loan.Handler.HandleReturn").DoAndReturn(startSpan)
			tc.setupMocks(mockSvc, mockLogger)

			rec := serveAs(h, &actor, http.MethodPost, "/api/v0/loans/loan-1/return", "")

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}

			if tc.expectedStatus == http.StatusOK {
				var resp LoanResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Status != types.LoanStatusReturned || resp.ReturnedAt == nil {
					t.Errorf("unexpected response: %+v", resp)
				}
			}
		})
	}
}

func TestHandler_HandleListOverdue(t *testing.T) {
	actor := types.Actor{MemberID: "member-9", TenantID: "tenant-1", Role: types.RoleAdmin}
	overdue := []*types.Loan{
		{ID: "loan-1", TenantID: "tenant-1", Status: types.LoanStatusActive, DueDate: time.Now().UTC().Add(-48 * time.Hour)},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	h := NewHandler(mockSvc, testPeriod, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "loan.Handler.HandleListOverdue").DoAndReturn(startSpan)
	mockSvc.EXPECT().ListOverdue(gomock.Any(), actor).Return(overdue, nil)

	rec := serveAs(h, &actor, http.MethodGet, "/api/v0/loans/overdue", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp []LoanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || !resp[0].Overdue {
		t.Errorf("expected one overdue loan, got %+v", resp)
	}
}

func TestHandler_HandleActiveLoanCount(t *testing.T) {
	actor := types.Actor{MemberID: "member-1", TenantID: "tenant-1", Role: types.RoleMember}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	h := NewHandler(mockSvc, testPeriod, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "loan.Handler.HandleActiveLoanCount").DoAndReturn(startSpan)
	mockSvc.EXPECT().ActiveLoanCount(gomock.Any(), actor, "member-1").Return(2, nil)

	rec := serveAs(h, &actor, http.MethodGet, "/api/v0/members/member-1/loans/count", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp CountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ActiveLoans != 2 || resp.MemberID != "member-1" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHandler_HandleListMemberLoans(t *testing.T) {
	actor := types.Actor{MemberID: "member-1", TenantID: "tenant-1", Role: types.RoleMember}
	loans := []*types.Loan{{ID: "loan-1", TenantID: "tenant-1", MemberID: "member-1", Status: types.LoanStatusActive}}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	h := NewHandler(mockSvc, testPeriod, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "loan.Handler.HandleListMemberLoans").DoAndReturn(startSpan)
	mockSvc.EXPECT().ListMemberLoans(gomock.Any(), actor, "member-1").Return(loans, nil)

	rec := serveAs(h, &actor, http.MethodGet, "/api/v0/members/member-1/loans", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp []LoanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "loan-1" {
		t.Errorf("unexpected response: %+v", resp)
	}
}
