// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/app-builder/internal/http/types"
	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/tracing"
	"github.com/canonical/app-builder/internal/types"
	"github.com/canonical/app-builder/pkg/authentication"
)

type DragRequest struct {
	Breakpoint Breakpoint   `json:"breakpoint" validate:"omitempty,oneof=desktop mobile"`
	Records    []DragRecord `json:"records" validate:"required,min=1,dive"`
}

type ResizeRequest struct {
	Breakpoint Breakpoint     `json:"breakpoint" validate:"omitempty,oneof=desktop mobile"`
	Records    []ResizeRecord `json:"records" validate:"required,min=1,dive"`
}

type WidgetLayoutResponse struct {
	WidgetID      string `json:"widget_id"`
	ComponentType string `json:"component_type"`
	Breakpoint    string `json:"breakpoint"`
	Parent        string `json:"parent,omitempty"`
	Geometry
}

type LayoutsResponse struct {
	Layouts []WidgetLayoutResponse `json:"layouts"`
}

type API struct {
	service       ServiceInterface
	authenticator AuthenticatorInterface
	validate      *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Group(func(r chi.Router) {
		r.Use(a.authenticator.Authenticate())

		r.Get("/api/apps/{app_version_id}/layouts", a.listLayouts)
		r.Patch("/api/apps/{app_version_id}/layouts/drag", a.drag)
		r.Patch("/api/apps/{app_version_id}/layouts/resize", a.resize)
	})
}

func (a *API) listLayouts(w http.ResponseWriter, r *http.Request) {
	session, ok := a.workspace(w, r)
	if !ok {
		return
	}

	breakpoint := Breakpoint(r.URL.Query().Get("breakpoint"))
	if breakpoint == "" {
		breakpoint = Desktop
	}

	appVersionID := chi.URLParam(r, "app_version_id")
	layouts, err := a.service.ListLayouts(r.Context(), session.OrganizationID, appVersionID, breakpoint)
	a.writeLayouts(w, session, appVersionID, layouts, err)
}

func (a *API) drag(w http.ResponseWriter, r *http.Request) {
	session, ok := a.workspace(w, r)
	if !ok {
		return
	}

	req := new(DragRequest)
	if !a.decode(w, r, req) {
		return
	}

	appVersionID := chi.URLParam(r, "app_version_id")
	layouts, err := a.service.ApplyDrag(r.Context(), session.OrganizationID, appVersionID, breakpointOrDefault(req.Breakpoint), req.Records)
	a.writeLayouts(w, session, appVersionID, layouts, err)
}

func (a *API) resize(w http.ResponseWriter, r *http.Request) {
	session, ok := a.workspace(w, r)
	if !ok {
		return
	}

	req := new(ResizeRequest)
	if !a.decode(w, r, req) {
		return
	}

	appVersionID := chi.URLParam(r, "app_version_id")
	layouts, err := a.service.ApplyResize(r.Context(), session.OrganizationID, appVersionID, breakpointOrDefault(req.Breakpoint), req.Records)
	a.writeLayouts(w, session, appVersionID, layouts, err)
}

// workspace returns the session user, layouts are only reachable from a selected workspace
func (a *API) workspace(w http.ResponseWriter, r *http.Request) (*authentication.SessionUser, bool) {
	session, ok := authentication.GetSessionUser(r.Context())
	if !ok {
		httptypes.WriteError(w, http.StatusUnauthorized, "")
		return nil, false
	}

	if session.OrganizationID == "" {
		httptypes.WriteError(w, http.StatusForbidden, "no workspace selected")
		return nil, false
	}

	return session, true
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := a.validate.Struct(v); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return false
	}

	return true
}

func (a *API) writeLayouts(w http.ResponseWriter, session *authentication.SessionUser, appVersionID string, layouts []*types.WidgetLayout, err error) {
	if errors.Is(err, ErrAppVersionNotFound) {
		a.logger.Security().AuthzFailure(session.ID, appVersionID)
		httptypes.WriteError(w, http.StatusNotFound, ErrAppVersionNotFound.Error())
		return
	}

	if IsInvalidLayout(err) {
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err != nil {
		a.logger.Errorf("layout request failed: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "")
		return
	}

	resp := LayoutsResponse{Layouts: make([]WidgetLayoutResponse, 0, len(layouts))}
	for _, l := range layouts {
		resp.Layouts = append(resp.Layouts, WidgetLayoutResponse{
			WidgetID:      l.WidgetID,
			ComponentType: l.ComponentType,
			Breakpoint:    l.Breakpoint,
			Parent:        l.ParentID,
			Geometry:      Geometry{Left: l.Left, Top: l.Top, Width: l.Width, Height: l.Height},
		})
	}

	httptypes.WriteJSON(w, http.StatusOK, resp)
}

func breakpointOrDefault(b Breakpoint) Breakpoint {
	if b == "" {
		return Desktop
	}
	return b
}

func NewAPI(
	service ServiceInterface,
	authenticator AuthenticatorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.service = service
	a.authenticator = authenticator
	a.validate = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
