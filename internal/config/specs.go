// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port     int `envconfig:"port" default:"8080"`
	GRPCPort int `envconfig:"grpc_port" default:"50051"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	SecretKeyBase string `envconfig:"secret_key_base" required:"true"`
	Host          string `envconfig:"host" default:"http://localhost:8082"`
	SubPath       string `envconfig:"sub_path" default:""`

	PasswordRetryLimit        int  `envconfig:"password_retry_limit" default:"5"`
	DisablePasswordRetryLimit bool `envconfig:"disable_password_retry_limit" default:"false"`
	DisableSignups            bool `envconfig:"disable_signups" default:"false"`
	EnablePrivateAppEmbed     bool `envconfig:"enable_private_app_embed" default:"false"`
	OnboardingQuestionsForAll bool `envconfig:"enable_onboarding_questions_for_all_sign_ups" default:"false"`

	SMTPHost         string `envconfig:"smtp_host"`
	SMTPPort         int    `envconfig:"smtp_port" default:"587"`
	SMTPUsername     string `envconfig:"smtp_username"`
	SMTPPassword     string `envconfig:"smtp_password"`
	SMTPDisabled     bool   `envconfig:"smtp_disabled" default:"false"`
	DefaultFromEmail string `envconfig:"default_from_email" default:"hello@example.com"`

	GridColumns int `envconfig:"grid_columns" default:"44"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`
}
