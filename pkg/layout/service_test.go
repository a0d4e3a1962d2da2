// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/app-builder/internal/storage"
	"github.com/canonical/app-builder/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package layout -destination ./mock_layout.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package layout -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package layout -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package layout -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	testAppVersion   = "app-version-1"
	testOrganization = "00000000-0000-0000-0000-000000000001"
)

func storedLayouts() []*types.WidgetLayout {
	row := func(id, componentType, parent string, left, top, width, height int) *types.WidgetLayout {
		return &types.WidgetLayout{
			OrganizationID: testOrganization,
			AppVersionID:   testAppVersion,
			WidgetID:       id,
			ComponentType:  componentType,
			Breakpoint:     "desktop",
			Left:           left,
			Top:            top,
			Width:          width,
			Height:         height,
			ParentID:       parent,
		}
	}

	return []*types.WidgetLayout{
		row("box", "Container", "", 20, 100, 22, 200),
		row("calendar", "Calendar", "", 0, 400, 10, 100),
		row("child", "Text", "box", 2, 10, 4, 20),
		row("text1", "Text", "", 2, 20, 4, 40),
		row("text2", "Text", "", 10, 20, 4, 40),
	}
}

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockLoggerInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)

	mockTx := NewMockTxInterface(ctrl)
	mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)

	s := NewService(mockStorage, mockTx, DefaultGridColumns, mockTracer, NewMockMonitorInterface(ctrl), mockLogger)

	return s, mockStorage, mockLogger
}

func TestService_ApplyDrag(t *testing.T) {
	tests := []struct {
		name        string
		records     []DragRecord
		expectedErr error
		expected    []*types.WidgetLayout
	}{
		{
			name: "Only changed widgets are persisted",
			records: []DragRecord{
				{ID: "text1", X: 50, Y: 40, GW: 10},
				{ID: "text2", X: 100, Y: 20, GW: 10},
			},
			expected: []*types.WidgetLayout{
				{OrganizationID: testOrganization, AppVersionID: testAppVersion, WidgetID: "text1", ComponentType: "Text", Breakpoint: "desktop", Left: 5, Top: 40, Width: 4, Height: 40},
			},
		},
		{
			name: "Reparent into a container",
			records: []DragRecord{
				{ID: "text1", X: 40, Y: 40, Parent: ptr("box"), GW: 5},
			},
			expected: []*types.WidgetLayout{
				{OrganizationID: testOrganization, AppVersionID: testAppVersion, WidgetID: "text1", ComponentType: "Text", Breakpoint: "desktop", Left: 8, Top: 40, Width: 4, Height: 40, ParentID: "box"},
			},
		},
		{
			name: "Parent change alone is persisted",
			records: []DragRecord{
				{ID: "child", X: 20, Y: 10, Parent: ptr(""), GW: 10},
			},
			expected: []*types.WidgetLayout{
				{OrganizationID: testOrganization, AppVersionID: testAppVersion, WidgetID: "child", ComponentType: "Text", Breakpoint: "desktop", Left: 2, Top: 10, Width: 4, Height: 20},
			},
		},
		{
			name: "Nothing changed",
			records: []DragRecord{
				{ID: "text2", X: 100, Y: 20, GW: 10},
			},
		},
		{
			name: "Outside of the grid",
			records: []DragRecord{
				{ID: "text1", X: 50, Y: 40, GW: 10},
				{ID: "text2", X: 420, Y: 20, GW: 10},
			},
			expectedErr: ErrOutOfBounds,
		},
		{
			name: "Restricted child",
			records: []DragRecord{
				{ID: "calendar", X: 0, Y: 0, Parent: ptr("box"), GW: 5},
			},
			expectedErr: ErrRestrictedChild,
		},
		{
			name: "Parent is not a container",
			records: []DragRecord{
				{ID: "text1", X: 0, Y: 0, Parent: ptr("text2"), GW: 10},
			},
			expectedErr: ErrNotContainer,
		},
		{
			name: "Unknown widget",
			records: []DragRecord{
				{ID: "missing", X: 0, Y: 0, GW: 10},
			},
			expectedErr: ErrNoLayout,
		},
		{
			name: "Zero grid width",
			records: []DragRecord{
				{ID: "text1", X: 0, Y: 0},
			},
			expectedErr: ErrGridWidth,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockLogger := newTestService(ctrl)

			mockStorage.EXPECT().GetAppVersionOrganization(gomock.Any(), testAppVersion).Return(testOrganization, nil)
			mockStorage.EXPECT().ListWidgetLayouts(gomock.Any(), testOrganization, testAppVersion, "desktop").Return(storedLayouts(), nil)

			if test.expectedErr == nil {
				mockStorage.EXPECT().UpsertWidgetLayouts(gomock.Any(), test.expected).Return(nil)
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
			}

			changed, err := s.ApplyDrag(context.Background(), testOrganization, testAppVersion, Desktop, test.records)

			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected error %v, got %v", test.expectedErr, err)
			}

			if test.expectedErr != nil {
				if !IsInvalidLayout(err) {
					t.Errorf("expected a layout validation error, got %v", err)
				}
				return
			}

			if len(changed) != len(test.expected) {
				t.Errorf("expected %d changed layouts, got %d", len(test.expected), len(changed))
			}
		})
	}
}

func TestService_ApplyResize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, mockLogger := newTestService(ctrl)

	mockStorage.EXPECT().GetAppVersionOrganization(gomock.Any(), testAppVersion).Return(testOrganization, nil)
	mockStorage.EXPECT().ListWidgetLayouts(gomock.Any(), testOrganization, testAppVersion, "desktop").Return(storedLayouts(), nil)
	mockStorage.EXPECT().UpsertWidgetLayouts(gomock.Any(), []*types.WidgetLayout{
		{OrganizationID: testOrganization, AppVersionID: testAppVersion, WidgetID: "child", ComponentType: "Text", Breakpoint: "desktop", Left: 1, Top: 10, Width: 5, Height: 30, ParentID: "box"},
	}).Return(nil)
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())

	_, err := s.ApplyResize(context.Background(), testOrganization, testAppVersion, Desktop, []ResizeRecord{
		{ID: "child", Width: 25, Height: 30, X: 5, Y: 10, GW: 5},
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_StorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, _ := newTestService(ctrl)

	mockStorage.EXPECT().GetAppVersionOrganization(gomock.Any(), testAppVersion).Return(testOrganization, nil)
	mockStorage.EXPECT().ListWidgetLayouts(gomock.Any(), testOrganization, testAppVersion, "mobile").Return(storedLayouts(), nil)
	mockStorage.EXPECT().UpsertWidgetLayouts(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	_, err := s.ApplyResize(context.Background(), testOrganization, testAppVersion, Mobile, []ResizeRecord{
		{ID: "text1", Width: 60, Height: 40, X: 20, Y: 20, GW: 10},
	})

	if err == nil || IsInvalidLayout(err) {
		t.Errorf("expected the storage error, got %v", err)
	}
}

func TestService_InvalidBreakpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, _ := newTestService(ctrl)

	if _, err := s.ListLayouts(context.Background(), testOrganization, testAppVersion, "tablet"); !errors.Is(err, ErrBreakpoint) {
		t.Errorf("expected ErrBreakpoint, got %v", err)
	}

	if _, err := s.ApplyDrag(context.Background(), testOrganization, testAppVersion, "tablet", nil); !errors.Is(err, ErrBreakpoint) {
		t.Errorf("expected ErrBreakpoint, got %v", err)
	}
}

func TestCommitter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	c := NewCommitter(mockService, testOrganization, testAppVersion, Mobile)

	drag := []DragRecord{{ID: "text1", X: 10, Y: 10, GW: 10}}
	resize := []ResizeRecord{{ID: "text1", Width: 10, Height: 10, GW: 10}}

	mockService.EXPECT().ApplyDrag(gomock.Any(), testOrganization, testAppVersion, Mobile, drag).Return(nil, nil)
	mockService.EXPECT().ApplyResize(gomock.Any(), testOrganization, testAppVersion, Mobile, resize).Return(nil, ErrOutOfBounds)

	if err := c.CommitDrag(context.Background(), drag); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := c.CommitResize(context.Background(), resize); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestService_OrganizationScope(t *testing.T) {
	const otherOrganization = "00000000-0000-0000-0000-000000000002"

	tests := []struct {
		name        string
		owner       string
		ownerErr    error
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:        "App version owned by another organization",
			owner:       otherOrganization,
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrAppVersionNotFound,
		},
		{
			name:     "App version without layouts",
			ownerErr: storage.ErrNotFound,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().ListWidgetLayouts(gomock.Any(), testOrganization, testAppVersion, "desktop").Return(nil, nil)
			},
		},
		{
			name:        "Ownership lookup failure",
			ownerErr:    errors.New("connection refused"),
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: errors.New("connection refused"),
		},
		{
			name:  "Own app version",
			owner: testOrganization,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().ListWidgetLayouts(gomock.Any(), testOrganization, testAppVersion, "desktop").Return(storedLayouts(), nil)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _ := newTestService(ctrl)
			mockStorage.EXPECT().GetAppVersionOrganization(gomock.Any(), testAppVersion).Return(test.owner, test.ownerErr)
			test.setupMocks(mockStorage)

			_, err := s.ListLayouts(context.Background(), testOrganization, testAppVersion, Desktop)

			switch {
			case test.expectedErr == nil && err != nil:
				t.Fatalf("unexpected error: %v", err)
			case test.expectedErr != nil && err == nil:
				t.Fatalf("expected error %v", test.expectedErr)
			case errors.Is(test.expectedErr, ErrAppVersionNotFound) && !errors.Is(err, ErrAppVersionNotFound):
				t.Fatalf("expected ErrAppVersionNotFound, got %v", err)
			}
		})
	}
}

func TestService_DragInAnotherOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, _ := newTestService(ctrl)

	// nothing is listed nor written for an app version of another organization
	mockStorage.EXPECT().GetAppVersionOrganization(gomock.Any(), testAppVersion).Return("00000000-0000-0000-0000-000000000002", nil)

	_, err := s.ApplyDrag(context.Background(), testOrganization, testAppVersion, Desktop, []DragRecord{
		{ID: "text1", X: 50, Y: 40, GW: 10},
	})

	if !errors.Is(err, ErrAppVersionNotFound) {
		t.Fatalf("expected ErrAppVersionNotFound, got %v", err)
	}

	if IsInvalidLayout(err) {
		t.Errorf("expected ownership errors to stay apart from layout validation")
	}
}
