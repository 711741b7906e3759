// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lending-service/internal/storage"
	"github.com/canonical/lending-service/internal/types"
	"github.com/canonical/lending-service/pkg/loan"
)

// startSpan keeps request-scoped values intact when the traced context is
// re-read further down the handler.
func startSpan(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return ctx, trace.SpanFromContext(ctx)
}

//go:generate mockgen -build_flags=--mod=mod -package catalog -destination ./mock_catalog.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package catalog -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package catalog -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package catalog -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func passthroughTx(mockTx *MockTxRunnerInterface) {
	mockTx.EXPECT().WithRetry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func newTestService(t *testing.T, spanName string) (*Service, *MockStorageInterface, *MockAuthzInterface, *MockTxRunnerInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockTx := NewMockTxRunnerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockAuthz, mockTx, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), spanName).DoAndReturn(startSpan)

	return s, mockStorage, mockAuthz, mockTx
}

func TestService_CreateItem(t *testing.T) {
	admin := types.Actor{MemberID: "member-9", TenantID: "tenant-1", Role: types.RoleAdmin}
	member := types.Actor{MemberID: "member-1", TenantID: "tenant-1", Role: types.RoleMember}
	created := &types.Item{ID: "item-1", TenantID: "tenant-1", Title: "Dune", Code: "BK-001", TotalCopies: 3, AvailableCopies: 3}

	testCases := []struct {
		name         string
		actor        types.Actor
		totalCopies  int
		setupMocks   func(*MockStorageInterface, *MockAuthzInterface)
		expectedKind loan.Kind
	}{
		{
			name:        "success",
			actor:       admin,
			totalCopies: 3,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CreationTenant(admin).Return("tenant-1", nil)
				mockStorage.EXPECT().CreateItem(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, item *types.Item) (*types.Item, error) {
						if item.TenantID != "tenant-1" || item.TotalCopies != 3 {
							t.Errorf("unexpected insert: %+v", item)
						}
						return created, nil
					},
				)
			},
		},
		{
			name:         "plain member is forbidden",
			actor:        member,
			totalCopies:  3,
			setupMocks:   func(*MockStorageInterface, *MockAuthzInterface) {},
			expectedKind: loan.KindForbidden,
		},
		{
			name:         "zero copies rejected",
			actor:        admin,
			totalCopies:  0,
			setupMocks:   func(*MockStorageInterface, *MockAuthzInterface) {},
			expectedKind: loan.KindValidation,
		},
		{
			name:        "duplicate code",
			actor:       admin,
			totalCopies: 3,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CreationTenant(admin).Return("tenant-1", nil)
				mockStorage.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedKind: loan.KindConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, _ := newTestService(t, "catalog.Service.CreateItem")
			tc.setupMocks(mockStorage, mockAuthz)

			item, err := s.CreateItem(context.Background(), tc.actor, "Dune", "Frank Herbert", "BK-001", tc.totalCopies)

			if tc.expectedKind != "" {
				if loan.KindOf(err) != tc.expectedKind {
					t.Fatalf("expected kind %q, got %v", tc.expectedKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if item.AvailableCopies != item.TotalCopies {
				t.Errorf("new item must start fully available, got %+v", item)
			}
		})
	}
}

func TestService_GetItem(t *testing.T) {
	member := types.Actor{MemberID: "member-1", TenantID: "tenant-1", Role: types.RoleMember}

	t.Run("cross-tenant item reads as absent", func(t *testing.T) {
		s, mockStorage, _, _ := newTestService(t, "catalog.Service.GetItem")
		mockStorage.EXPECT().GetItemByID(gomock.Any(), "tenant-1", "item-elsewhere").Return(nil, storage.ErrNotFound)

		_, err := s.GetItem(context.Background(), member, "item-elsewhere")
		if loan.KindOf(err) != loan.KindNotFound {
			t.Fatalf("expected not_found, got %v", err)
		}
	})

	t.Run("members may read the catalog", func(t *testing.T) {
		s, mockStorage, _, _ := newTestService(t, "catalog.Service.GetItem")
		mockStorage.EXPECT().GetItemByID(gomock.Any(), "tenant-1", "item-1").Return(&types.Item{ID: "item-1", TenantID: "tenant-1"}, nil)

		item, err := s.GetItem(context.Background(), member, "item-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != "item-1" {
			t.Errorf("unexpected item: %+v", item)
		}
	})

	t.Run("tenant-less superadmin reads across tenants", func(t *testing.T) {
		superadmin := types.Actor{MemberID: "member-0", Role: types.RoleSuperAdmin}

		s, mockStorage, _, _ := newTestService(t, "catalog.Service.GetItem")
		mockStorage.EXPECT().GetItemByID(gomock.Any(), "", "item-2").Return(&types.Item{ID: "item-2", TenantID: "tenant-2"}, nil)

		item, err := s.GetItem(context.Background(), superadmin, "item-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.TenantID != "tenant-2" {
			t.Errorf("unexpected item: %+v", item)
		}
	})
}

func TestService_ListItems(t *testing.T) {
	member := types.Actor{MemberID: "member-1", TenantID: "tenant-1", Role: types.RoleMember}
	superadmin := types.Actor{MemberID: "member-0", Role: types.RoleSuperAdmin}

	t.Run("member list stays tenant scoped", func(t *testing.T) {
		s, mockStorage, _, _ := newTestService(t, "catalog.Service.ListItems")
		mockStorage.EXPECT().ListItems(gomock.Any(), "tenant-1").Return([]*types.Item{{ID: "item-1"}}, nil)

		items, err := s.ListItems(context.Background(), member)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Errorf("expected 1 item, got %d", len(items))
		}
	})

	t.Run("tenant-less superadmin list is widened", func(t *testing.T) {
		s, mockStorage, _, _ := newTestService(t, "catalog.Service.ListItems")
		mockStorage.EXPECT().ListItems(gomock.Any(), "").Return([]*types.Item{{ID: "item-1"}, {ID: "item-2"}}, nil)

		items, err := s.ListItems(context.Background(), superadmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("expected 2 items, got %d", len(items))
		}
	})
}

func TestService_ResizeItem(t *testing.T) {
	admin := types.Actor{MemberID: "member-9", TenantID: "tenant-1", Role: types.RoleAdmin}
	existing := &types.Item{ID: "item-1", TenantID: "tenant-1", TotalCopies: 5, AvailableCopies: 2}

	testCases := []struct {
		name         string
		totalCopies  int
		setupMocks   func(*MockStorageInterface, *MockAuthzInterface, *MockTxRunnerInterface)
		expectedKind loan.Kind
	}{
		{
			name:        "grow",
			totalCopies: 8,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, mockTx *MockTxRunnerInterface) {
				mockAuthz.EXPECT().CreationTenant(admin).Return("tenant-1", nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().GetItemByID(gomock.Any(), "tenant-1", "item-1").Return(existing, nil)
				mockStorage.EXPECT().ResizeItemCopies(gomock.Any(), "tenant-1", "item-1", 8).
					Return(&types.Item{ID: "item-1", TenantID: "tenant-1", TotalCopies: 8, AvailableCopies: 5}, nil)
			},
		},
		{
			name:        "shrink below copies on loan",
			totalCopies: 2,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, mockTx *MockTxRunnerInterface) {
				mockAuthz.EXPECT().CreationTenant(admin).Return("tenant-1", nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().GetItemByID(gomock.Any(), "tenant-1", "item-1").Return(existing, nil)
				// Three copies are on loan, the guarded update matches no row.
				mockStorage.EXPECT().ResizeItemCopies(gomock.Any(), "tenant-1", "item-1", 2).Return(nil, storage.ErrNotFound)
			},
			expectedKind: loan.KindConflict,
		},
		{
			name:        "unknown item",
			totalCopies: 8,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, mockTx *MockTxRunnerInterface) {
				mockAuthz.EXPECT().CreationTenant(admin).Return("tenant-1", nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().GetItemByID(gomock.Any(), "tenant-1", "item-1").Return(nil, storage.ErrNotFound)
			},
			expectedKind: loan.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, mockTx := newTestService(t, "catalog.Service.ResizeItem")
			tc.setupMocks(mockStorage, mockAuthz, mockTx)

			item, err := s.ResizeItem(context.Background(), admin, "item-1", tc.totalCopies)

			if tc.expectedKind != "" {
				if loan.KindOf(err) != tc.expectedKind {
					t.Fatalf("expected kind %q, got %v", tc.expectedKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if item.TotalCopies != tc.totalCopies {
				t.Errorf("expected total %d, got %+v", tc.totalCopies, item)
			}
			if item.AvailableCopies != 5 {
				t.Errorf("delta must land on available_copies, got %+v", item)
			}
		})
	}
}

func TestService_DeleteItem(t *testing.T) {
	admin := types.Actor{MemberID: "member-9", TenantID: "tenant-1", Role: types.RoleAdmin}

	testCases := []struct {
		name         string
		setupMocks   func(*MockStorageInterface, *MockAuthzInterface)
		expectedKind loan.Kind
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CreationTenant(admin).Return("tenant-1", nil)
				mockStorage.EXPECT().DeleteItem(gomock.Any(), "tenant-1", "item-1").Return(nil)
			},
		},
		{
			name: "loan history blocks deletion",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CreationTenant(admin).Return("tenant-1", nil)
				mockStorage.EXPECT().DeleteItem(gomock.Any(), "tenant-1", "item-1").Return(storage.ErrForeignKeyViolation)
			},
			expectedKind: loan.KindConflict,
		},
		{
			name: "unknown item",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().CreationTenant(admin).Return("tenant-1", nil)
				mockStorage.EXPECT().DeleteItem(gomock.Any(), "tenant-1", "item-1").Return(storage.ErrNotFound)
			},
			expectedKind: loan.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, _ := newTestService(t, "catalog.Service.DeleteItem")
			tc.setupMocks(mockStorage, mockAuthz)

			err := s.DeleteItem(context.Background(), admin, "item-1")

			if tc.expectedKind != "" {
				if loan.KindOf(err) != tc.expectedKind {
					t.Fatalf("expected kind %q, got %v", tc.expectedKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_UpdateItem(t *testing.T) {
	admin := types.Actor{MemberID: "member-9", TenantID: "tenant-1", Role: types.RoleAdmin}
	title := "Dune Messiah"

	t.Run("patches only the provided fields", func(t *testing.T) {
		s, mockStorage, mockAuthz, mockTx := newTestService(t, "catalog.Service.UpdateItem")
		mockAuthz.EXPECT().CreationTenant(admin).Return("tenant-1", nil)
		passthroughTx(mockTx)
		mockStorage.EXPECT().UpdateItemDetails(gomock.Any(), gomock.Any(), []string{"title"}).Return(nil)
		mockStorage.EXPECT().GetItemByID(gomock.Any(), "tenant-1", "item-1").
			Return(&types.Item{ID: "item-1", TenantID: "tenant-1", Title: title}, nil)

		item, err := s.UpdateItem(context.Background(), admin, "item-1", ItemDetails{Title: &title})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Title != title {
			t.Errorf("unexpected item: %+v", item)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		s, mockStorage, mockAuthz, mockTx := newTestService(t, "catalog.Service.UpdateItem")
		mockAuthz.EXPECT().CreationTenant(admin).Return("tenant-1", nil)
		passthroughTx(mockTx)
		mockStorage.EXPECT().UpdateItemDetails(gomock.Any(), gomock.Any(), gomock.Any()).Return(storage.ErrNotFound)

		_, err := s.UpdateItem(context.Background(), admin, "item-1", ItemDetails{Title: &title})
		if loan.KindOf(err) != loan.KindNotFound {
			t.Fatalf("expected not_found, got %v", err)
		}
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		member := types.Actor{MemberID: "member-1", TenantID: "tenant-1", Role: types.RoleMember}
		s, _, _, _ := newTestService(t, "catalog.Service.UpdateItem")

		_, err := s.UpdateItem(context.Background(), member, "item-1", ItemDetails{Title: &title})
		if loan.KindOf(err) != loan.KindForbidden {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})
}
