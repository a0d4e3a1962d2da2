// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

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

var testSession = &authentication.SessionUser{
	User:      &types.User{ID: "user-1", Email: "jane@example.com"},
	SessionID: "session-1",
}

func newTestRouter(ctrl *gomock.Controller) (*chi.Mux, *MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {
	mockService := NewMockServiceInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)
	mockMiddleware := NewMockSessionMiddlewareInterface(ctrl)

	inject := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(authentication.WithSessionUser(r.Context(), testSession)))
		})
	}
	mockMiddleware.EXPECT().Authenticate().Return(inject).AnyTimes()
	mockMiddleware.EXPECT().OptionalAuthenticate().Return(inject).AnyTimes()
	mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()

	router := chi.NewMux()
	NewAPI(
		mockService,
		mockMiddleware,
		authentication.NewCookieManager(false),
		NewMockTracingInterface(ctrl),
		NewMockMonitorInterface(ctrl),
		mockLogger,
	).RegisterEndpoints(router)

	return router, mockService, mockLogger, mockSecurity
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAPI_Login(t *testing.T) {
	tests := []struct {
		name            string
		path            string
		body            string
		setupMocks      func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus  int
		expectedMessage string
		expectCookie    bool
	}{
		{
			name:           "Invalid body",
			path:           "/api/authenticate",
			body:           `{"email":"jane@example.com"}`,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Rejected credentials",
			path: "/api/authenticate",
			body: `{"email":"jane@example.com","password":"wrong"}`,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().Login(gomock.Any(), gomock.Any(), "", testSession).Return(nil, ErrUnauthorized(msgInvalidCredentials))
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: msgInvalidCredentials,
		},
		{
			name: "Unexpected failure",
			path: "/api/authenticate",
			body: `{"email":"jane@example.com","password":"secret"}`,
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface) {
				s.EXPECT().Login(gomock.Any(), gomock.Any(), "", testSession).Return(nil, errors.New("connection refused"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: http.StatusText(http.StatusInternalServerError),
		},
		{
			name: "Organization login sets the session cookie",
			path: "/api/authenticate/org-1",
			body: `{"email":"jane@example.com","password":"secret"}`,
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface) {
				s.EXPECT().Login(gomock.Any(), &LoginRequest{Email: "jane@example.com", Password: "secret"}, "org-1", testSession).
					Return(&LoginResult{Token: "signed-token", ID: "user-1", CurrentOrganizationID: "org-1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectCookie:   true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, mockService, mockLogger, _ := newTestRouter(ctrl)
			test.setupMocks(mockService, mockLogger)

			req := httptest.NewRequest(http.MethodPost, test.path, strings.NewReader(test.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", test.expectedStatus, rr.Code, rr.Body.String())
			}

			body := make(map[string]any)
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("expected json body, got %s", rr.Body.String())
			}

			if test.expectedMessage != "" && body["message"] != test.expectedMessage {
				t.Errorf("expected message %q, got %v", test.expectedMessage, body["message"])
			}

			cookie := findCookie(rr, authentication.CookieName)
			if test.expectCookie {
				if cookie == nil || cookie.Value != "signed-token" {
					t.Fatalf("expected session cookie, got %v", cookie)
				}
				if _, ok := body["token"]; ok {
					t.Errorf("token must not be part of the body")
				}
				if body["current_organization_id"] != "org-1" {
					t.Errorf("unexpected body %v", body)
				}
			} else if cookie != nil {
				t.Errorf("unexpected session cookie")
			}
		})
	}
}

func TestAPI_SignupWithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockService, _, _ := newTestRouter(ctrl)
	mockService.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(`{"name":"Jane","email":"jane@example.com","password":"secret"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	if findCookie(rr, authentication.CookieName) != nil {
		t.Errorf("expected no session cookie before activation")
	}
}

func TestAPI_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockService, _, _ := newTestRouter(ctrl)
	mockService.EXPECT().Logout(gomock.Any(), testSession).Return(nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/logout", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	cookie := findCookie(rr, authentication.CookieName)
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Errorf("expected the session cookie to be cleared, got %v", cookie)
	}
}

func TestAPI_VerifyInviteToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockService, _, _ := newTestRouter(ctrl)
	mockService.EXPECT().VerifyInviteToken(gomock.Any(), "user-token", "token-org-1").Return(&VerifyInviteResult{RedirectURL: "https://app.example.com/x"}, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/verify-invite-token?token=user-token&organization_token=token-org-1", nil))

	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"redirect_url":"https://app.example.com/x"`) {
		t.Fatalf("unexpected response %d %s", rr.Code, rr.Body.String())
	}
}

func TestAPI_SSO(t *testing.T) {
	t.Run("Authorize redirects with a state cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, mockService, _, _ := newTestRouter(ctrl)

		var state string
		mockService.EXPECT().SSOAuthorizationURL(gomock.Any(), "config-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, s string) (string, error) {
				state = s
				return "https://idp.example.com/authorize", nil
			},
		)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/oauth/authorize/config-1", nil))

		if rr.Code != http.StatusFound || rr.Header().Get("Location") != "https://idp.example.com/authorize" {
			t.Fatalf("unexpected response %d %s", rr.Code, rr.Header().Get("Location"))
		}

		cookie := findCookie(rr, ssoStateCookie)
		if cookie == nil || cookie.Value == "" || cookie.Value != state {
			t.Errorf("expected state cookie %q, got %v", state, cookie)
		}
	})

	t.Run("Callback with a forged state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, _, _, mockSecurity := newTestRouter(ctrl)
		mockSecurity.EXPECT().AuthnLoginFail("config-1")

		req := httptest.NewRequest(http.MethodGet, "/api/oauth/sign-in/config-1?code=code-1&state=forged", nil)
		req.AddCookie(&http.Cookie{Name: ssoStateCookie, Value: "state-1"})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rr.Code)
		}
	})

	t.Run("Callback logs the user in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, mockService, _, _ := newTestRouter(ctrl)
		mockService.EXPECT().SSOLogin(gomock.Any(), "config-1", "code-1", testSession).Return(&LoginResult{Token: "signed-token", ID: "user-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/oauth/sign-in/config-1?code=code-1&state=state-1", nil)
		req.AddCookie(&http.Cookie{Name: ssoStateCookie, Value: "state-1"})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}

		if c := findCookie(rr, authentication.CookieName); c == nil || c.Value != "signed-token" {
			t.Errorf("expected session cookie, got %v", c)
		}
	})
}
