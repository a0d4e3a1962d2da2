// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/monitoring"
	"github.com/canonical/app-builder/internal/tracing"
	"github.com/canonical/app-builder/internal/types"
)

// keys of an openid SSO config
const (
	ConfigIssuer       = "issuer"
	ConfigClientID     = "client_id"
	ConfigClientSecret = "client_secret"
	ConfigJWKSURL      = "jwks_url"
	ConfigAuthURL      = "auth_url"
	ConfigTokenURL     = "token_url"
)

var ErrMissingIDToken = errors.New("id_token missing from token response")

var (
	_ OIDCClientInterface        = (*OIDCClient)(nil)
	_ OIDCClientFactoryInterface = (*OIDCClientFactory)(nil)
)

// OIDCClient runs the authorization code flow of one organization SSO config
type OIDCClient struct {
	oauth2   *oauth2.Config
	verifier *oidc.IDTokenVerifier

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (c *OIDCClient) AuthCodeURL(state string) string {
	return c.oauth2.AuthCodeURL(state)
}

func (c *OIDCClient) Exchange(ctx context.Context, code string) (*IdentityClaims, error) {
	ctx, span := c.tracer.Start(ctx, "authentication.OIDCClient.Exchange")
	defer span.End()

	ctx = oidc.ClientContext(ctx, &otelHTTPClient)

	token, err := c.oauth2.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, ErrMissingIDToken
	}

	idToken, err := c.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify id token: %w", err)
	}

	claims := new(IdentityClaims)
	if err := idToken.Claims(claims); err != nil {
		c.logger.Debugf("failed to extract id token claims: %v", err)
		return nil, err
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("id token for %s has no email claim", idToken.Subject)
	}

	return claims, nil
}

type OIDCClientFactory struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NewClient uses discovery unless the config carries a JWKS URL with explicit endpoints
func (f *OIDCClientFactory) NewClient(ctx context.Context, config *types.SSOConfig, redirectURL string) (OIDCClientInterface, error) {
	ctx, span := f.tracer.Start(ctx, "authentication.OIDCClientFactory.NewClient")
	defer span.End()

	if config == nil || config.SSO != types.SSOOpenID {
		return nil, fmt.Errorf("not an openid sso config")
	}

	issuer := config.Configs[ConfigIssuer]
	clientID := config.Configs[ConfigClientID]
	if issuer == "" || clientID == "" {
		return nil, fmt.Errorf("sso config %s is missing issuer or client id", config.ID)
	}

	c := new(OIDCClient)
	c.tracer = f.tracer
	c.logger = f.logger
	c.oauth2 = &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: config.Configs[ConfigClientSecret],
		RedirectURL:  redirectURL,
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	if jwksURL := config.Configs[ConfigJWKSURL]; jwksURL != "" {
		c.oauth2.Endpoint = oauth2.Endpoint{
			AuthURL:  config.Configs[ConfigAuthURL],
			TokenURL: config.Configs[ConfigTokenURL],
		}
		c.verifier = NewVerifierWithJWKS(ctx, issuer, jwksURL, clientID)

		return c, nil
	}

	provider, err := NewProvider(ctx, issuer)
	if err != nil {
		f.monitor.SetDependencyAvailability(map[string]string{"component": "oidc"}, 0)
		return nil, err
	}
	f.monitor.SetDependencyAvailability(map[string]string{"component": "oidc"}, 1)

	c.oauth2.Endpoint = provider.Endpoint()
	c.verifier = provider.Verifier(&oidc.Config{ClientID: clientID})

	return c, nil
}

func NewOIDCClientFactory(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *OIDCClientFactory {
	f := new(OIDCClientFactory)

	f.tracer = tracer
	f.monitor = monitor
	f.logger = logger

	return f
}
