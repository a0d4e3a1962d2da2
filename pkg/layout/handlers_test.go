// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/app-builder/internal/types"
	"github.com/canonical/app-builder/pkg/authentication"
)

var testWorkspaceSession = &authentication.SessionUser{
	User:           &types.User{ID: "user-1", Email: "jane@example.com"},
	SessionID:      "session-1",
	OrganizationID: testOrganization,
}

func newTestRouter(ctrl *gomock.Controller) (*chi.Mux, *MockServiceInterface, *MockLoggerInterface) {
	return newTestRouterWithSession(ctrl, testWorkspaceSession)
}

func newTestRouterWithSession(ctrl *gomock.Controller, session *authentication.SessionUser) (*chi.Mux, *MockServiceInterface, *MockLoggerInterface) {
	mockService := NewMockServiceInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockAuthenticator := NewMockAuthenticatorInterface(ctrl)

	inject := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session != nil {
				r = r.WithContext(authentication.WithSessionUser(r.Context(), session))
			}
			next.ServeHTTP(w, r)
		})
	}
	mockAuthenticator.EXPECT().Authenticate().Return(inject).AnyTimes()

	router := chi.NewMux()
	NewAPI(mockService, mockAuthenticator, NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), mockLogger).RegisterEndpoints(router)

	return router, mockService, mockLogger
}

func TestAPI_ListLayouts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockService, _ := newTestRouter(ctrl)
	mockService.EXPECT().ListLayouts(gomock.Any(), testOrganization, testAppVersion, Mobile).Return(storedLayouts()[2:3], nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/apps/app-version-1/layouts?breakpoint=mobile", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	resp := new(LayoutsResponse)
	if err := json.Unmarshal(rr.Body.Bytes(), resp); err != nil {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}

	expected := WidgetLayoutResponse{
		WidgetID:      "child",
		ComponentType: "Text",
		Breakpoint:    "desktop",
		Parent:        "box",
		Geometry:      Geometry{Left: 2, Top: 10, Width: 4, Height: 20},
	}
	if len(resp.Layouts) != 1 || resp.Layouts[0] != expected {
		t.Errorf("unexpected layouts %+v", resp.Layouts)
	}

	if !strings.Contains(rr.Body.String(), `"widget_id":"child"`) {
		t.Errorf("expected snake case keys, got %s", rr.Body.String())
	}
}

func TestAPI_Drag(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name:           "Malformed body",
			body:           `{"records":`,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "No records",
			body:           `{"records":[]}`,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing grid width",
			body:           `{"records":[{"id":"text1","x":10,"y":10}]}`,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown breakpoint",
			body:           `{"breakpoint":"tablet","records":[{"id":"text1","x":10,"y":10,"gw":10}]}`,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Rejected geometry",
			body: `{"records":[{"id":"text1","x":1000,"y":10,"gw":10}]}`,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().ApplyDrag(gomock.Any(), testOrganization, testAppVersion, Desktop, gomock.Any()).Return(nil, ErrOutOfBounds)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Storage failure",
			body: `{"records":[{"id":"text1","x":10,"y":10,"gw":10}]}`,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().ApplyDrag(gomock.Any(), testOrganization, testAppVersion, Desktop, gomock.Any()).Return(nil, errors.New("connection refused"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "Drop into a container",
			body: `{"breakpoint":"desktop","records":[{"id":"text1","x":40,"y":40,"gw":5,"parent":"box"}]}`,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().ApplyDrag(gomock.Any(), testOrganization, testAppVersion, Desktop, []DragRecord{{ID: "text1", X: 40, Y: 40, GW: 5, Parent: ptr("box")}}).
					Return([]*types.WidgetLayout{{WidgetID: "text1", Left: 8, Top: 40, Width: 4, Height: 40, ParentID: "box"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, mockService, mockLogger := newTestRouter(ctrl)
			test.setupMocks(mockService, mockLogger)

			req := httptest.NewRequest(http.MethodPatch, "/api/apps/app-version-1/layouts/drag", strings.NewReader(test.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", test.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_Resize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockService, _ := newTestRouter(ctrl)
	mockService.EXPECT().ApplyResize(gomock.Any(), testOrganization, testAppVersion, Mobile, []ResizeRecord{{ID: "text1", Width: 60, Height: 40, X: 20, Y: 20, GW: 10}}).
		Return(nil, nil)

	body := `{"breakpoint":"mobile","records":[{"id":"text1","width":60,"height":40,"x":20,"y":20,"gw":10}]}`
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/api/apps/app-version-1/layouts/resize", strings.NewReader(body)))

	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"layouts":[]`) {
		t.Errorf("unexpected response %d %s", rr.Code, rr.Body.String())
	}
}

func TestAPI_WorkspaceScoping(t *testing.T) {
	otherWorkspace := &authentication.SessionUser{
		User:           &types.User{ID: "user-2", Email: "joe@example.com"},
		SessionID:      "session-2",
		OrganizationID: "00000000-0000-0000-0000-000000000002",
	}
	noWorkspace := &authentication.SessionUser{
		User:      &types.User{ID: "user-3", Email: "ann@example.com"},
		SessionID: "session-3",
	}

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		session        *authentication.SessionUser
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
	}{
		{
			name:           "No session",
			method:         http.MethodGet,
			path:           "/api/apps/app-version-1/layouts",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "No workspace selected",
			method:         http.MethodPatch,
			path:           "/api/apps/app-version-1/layouts/drag",
			body:           `{"records":[{"id":"text1","x":10,"y":10,"gw":10}]}`,
			session:        noWorkspace,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:    "Listing another workspace app version",
			method:  http.MethodGet,
			path:    "/api/apps/app-version-1/layouts",
			session: otherWorkspace,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().ListLayouts(gomock.Any(), otherWorkspace.OrganizationID, testAppVersion, Desktop).Return(nil, ErrAppVersionNotFound)
				l.EXPECT().Security().Return(sec)
				sec.EXPECT().AuthzFailure("user-2", testAppVersion)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:    "Dragging in another workspace app version",
			method:  http.MethodPatch,
			path:    "/api/apps/app-version-1/layouts/drag",
			body:    `{"records":[{"id":"text1","x":10,"y":10,"gw":10}]}`,
			session: otherWorkspace,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().ApplyDrag(gomock.Any(), otherWorkspace.OrganizationID, testAppVersion, Desktop, gomock.Any()).Return(nil, ErrAppVersionNotFound)
				l.EXPECT().Security().Return(sec)
				sec.EXPECT().AuthzFailure("user-2", testAppVersion)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, mockService, mockLogger := newTestRouterWithSession(ctrl, test.session)
			test.setupMocks(mockService, mockLogger, NewMockSecurityLoggerInterface(ctrl))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(test.method, test.path, strings.NewReader(test.body)))

			if rr.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", test.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
