// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/canonical/app-builder/internal/http/types"
	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/tracing"
	"github.com/canonical/app-builder/pkg/authentication"
)

const (
	ssoStateCookie = "tj_sso_state"
	ssoStateMaxAge = 10 * time.Minute
)

type API struct {
	service    ServiceInterface
	middleware SessionMiddlewareInterface
	cookies    *authentication.CookieManager
	validate   *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(a.middleware.OptionalAuthenticate())

			r.Post("/authenticate", a.login)
			r.Post("/authenticate/{organization_id}", a.login)
			r.Get("/oauth/sign-in/{config_id}", a.ssoCallback)
		})

		r.Post("/signup", a.signup)
		r.Post("/resend-invite", a.resendInvite)
		r.Post("/activate-account-with-token", a.activateAccount)
		r.Post("/setup-admin", a.setupAdmin)
		r.Post("/set-password-from-token", a.setupAccount)
		r.Get("/verify-invite-token", a.verifyInviteToken)
		r.Get("/verify-organization-token", a.verifyOrganizationToken)
		r.Post("/forgot-password", a.forgotPassword)
		r.Post("/reset-password", a.resetPassword)
		r.Get("/oauth/authorize/{config_id}", a.ssoAuthorize)

		r.Group(func(r chi.Router) {
			r.Use(a.middleware.Authenticate())

			r.Post("/accept-invite", a.acceptInvite)
			r.Get("/switch/{organization_id}", a.switchOrganization)
			r.Get("/authorize", a.authorize)
			r.Get("/session", a.session)
			r.Get("/logout", a.logout)
		})
	})
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := a.validate.Struct(v); err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return false
	}

	return true
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	var e *Error
	if errors.As(err, &e) {
		types.WriteError(w, e.StatusCode(), e.Message)
		return
	}

	a.logger.Errorf("auth request failed: %v", err)
	types.WriteError(w, http.StatusInternalServerError, "")
}

// writeLogin sets the session cookie and returns the payload
func (a *API) writeLogin(w http.ResponseWriter, result *LoginResult, err error) {
	if err != nil {
		a.writeError(w, err)
		return
	}

	if result == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	if result.Token != "" {
		a.cookies.SetSessionCookie(w, result.Token)
	}

	types.WriteJSON(w, http.StatusOK, result)
}

func (a *API) sessionUser(r *http.Request) *authentication.SessionUser {
	session, _ := authentication.GetSessionUser(r.Context())
	return session
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	req := new(LoginRequest)
	if !a.decode(w, r, req) {
		return
	}

	result, err := a.service.Login(r.Context(), req, chi.URLParam(r, "organization_id"), a.sessionUser(r))
	a.writeLogin(w, result, err)
}

func (a *API) signup(w http.ResponseWriter, r *http.Request) {
	req := new(SignupRequest)
	if !a.decode(w, r, req) {
		return
	}

	result, err := a.service.Signup(r.Context(), req)
	a.writeLogin(w, result, err)
}

func (a *API) resendInvite(w http.ResponseWriter, r *http.Request) {
	req := new(EmailRequest)
	if !a.decode(w, r, req) {
		return
	}

	if err := a.service.ResendInvite(r.Context(), req.Email); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) activateAccount(w http.ResponseWriter, r *http.Request) {
	req := new(ActivateAccountRequest)
	if !a.decode(w, r, req) {
		return
	}

	result, err := a.service.ActivateAccountWithToken(r.Context(), req)
	a.writeLogin(w, result, err)
}

func (a *API) setupAdmin(w http.ResponseWriter, r *http.Request) {
	req := new(SetupAdminRequest)
	if !a.decode(w, r, req) {
		return
	}

	result, err := a.service.SetupAdmin(r.Context(), req)
	a.writeLogin(w, result, err)
}

func (a *API) setupAccount(w http.ResponseWriter, r *http.Request) {
	req := new(SetupAccountRequest)
	if !a.decode(w, r, req) {
		return
	}

	result, err := a.service.SetupAccountFromInvitationToken(r.Context(), req)
	a.writeLogin(w, result, err)
}

func (a *API) acceptInvite(w http.ResponseWriter, r *http.Request) {
	req := new(AcceptInviteRequest)
	if !a.decode(w, r, req) {
		return
	}

	result, err := a.service.AcceptOrganizationInvite(r.Context(), a.sessionUser(r), req.Token)
	a.writeLogin(w, result, err)
}

func (a *API) verifyInviteToken(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result, err := a.service.VerifyInviteToken(r.Context(), q.Get("token"), q.Get("organization_token"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, result)
}

func (a *API) verifyOrganizationToken(w http.ResponseWriter, r *http.Request) {
	result, err := a.service.VerifyOrganizationToken(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, result)
}

func (a *API) forgotPassword(w http.ResponseWriter, r *http.Request) {
	req := new(EmailRequest)
	if !a.decode(w, r, req) {
		return
	}

	if err := a.service.ForgotPassword(r.Context(), req.Email); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) resetPassword(w http.ResponseWriter, r *http.Request) {
	req := new(ResetPasswordRequest)
	if !a.decode(w, r, req) {
		return
	}

	if err := a.service.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) switchOrganization(w http.ResponseWriter, r *http.Request) {
	result, err := a.service.SwitchOrganization(r.Context(), chi.URLParam(r, "organization_id"), a.sessionUser(r))
	a.writeLogin(w, result, err)
}

func (a *API) authorize(w http.ResponseWriter, r *http.Request) {
	result, err := a.service.AuthorizeOrganization(r.Context(), a.sessionUser(r))
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, result)
}

func (a *API) session(w http.ResponseWriter, r *http.Request) {
	result, err := a.service.Session(r.Context(), a.sessionUser(r))
	if err != nil {
		a.writeError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, result)
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	if err := a.service.Logout(r.Context(), a.sessionUser(r)); err != nil {
		a.writeError(w, err)
		return
	}

	a.cookies.ClearSessionCookie(w)
	w.WriteHeader(http.StatusOK)
}

func (a *API) ssoAuthorize(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()

	url, err := a.service.SSOAuthorizationURL(r.Context(), chi.URLParam(r, "config_id"), state)
	if err != nil {
		a.writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ssoStateCookie,
		Value:    state,
		Path:     "/api/oauth",
		MaxAge:   int(ssoStateMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, url, http.StatusFound)
}

func (a *API) ssoCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	state, err := r.Cookie(ssoStateCookie)
	if err != nil || state.Value == "" || state.Value != q.Get("state") {
		a.logger.Security().AuthnLoginFail(chi.URLParam(r, "config_id"))
		types.WriteError(w, http.StatusUnauthorized, "invalid sso state")
		return
	}

	http.SetCookie(w, &http.Cookie{Name: ssoStateCookie, Path: "/api/oauth", MaxAge: -1})

	result, err := a.service.SSOLogin(r.Context(), chi.URLParam(r, "config_id"), q.Get("code"), a.sessionUser(r))
	a.writeLogin(w, result, err)
}

func NewAPI(
	service ServiceInterface,
	middleware SessionMiddlewareInterface,
	cookies *authentication.CookieManager,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.service = service
	a.middleware = middleware
	a.cookies = cookies
	a.validate = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
