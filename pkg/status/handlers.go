// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/app-builder/internal/http/types"
	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/tracing"
	"github.com/canonical/app-builder/internal/version"
)

const (
	okValue = "ok"

	pingTimeout = 2 * time.Second
)

type BuildInfo struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	Name       string `json:"name"`
}

type Status struct {
	Status    string     `json:"status"`
	Database  string     `json:"database"`
	BuildInfo *BuildInfo `json:"build_info"`
}

type API struct {
	database PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	status := Status{Status: okValue, Database: okValue, BuildInfo: buildInfo()}
	code := http.StatusOK

	if err := a.ping(ctx); err != nil {
		a.logger.Errorf("database ping failed: %v", err)

		status.Status = "degraded"
		status.Database = "unavailable"
		code = http.StatusServiceUnavailable
	}

	types.WriteJSON(w, code, status)
}

func (a *API) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := a.database.Ping(ctx)

	available := 1.0
	if err != nil {
		available = 0
	}

	if merr := a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, available); merr != nil {
		a.logger.Debugf("failed to record database availability: %v", merr)
	}

	return err
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	types.WriteJSON(w, http.StatusOK, buildInfo())
}

func buildInfo() *BuildInfo {
	info := &BuildInfo{Version: version.Version}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	info.Name = bi.Main.Path
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			info.CommitHash = s.Value
		}
	}

	return info
}

func NewAPI(database PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.database = database

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
