// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/canonical/app-builder/pkg/authentication"
)

type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// httpClient talks to the JSON API, carrying the session as the auth cookie
type httpClient struct {
	endpoint  string
	session   string
	workspace string

	client *http.Client
}

// do sends in as JSON and decodes the response into out, it returns the
// session cookie set by the server if any
func (c *httpClient) do(ctx context.Context, method, path string, in, out any) (string, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return "", fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.session != "" {
		req.AddCookie(&http.Cookie{Name: authentication.CookieName, Value: c.session})
	}
	if c.workspace != "" {
		req.Header.Set(authentication.WorkspaceHeader, c.workspace)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		e := struct {
			Message string `json:"message"`
		}{}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return "", &apiError{Status: resp.StatusCode, Message: e.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return "", fmt.Errorf("failed to decode response: %w", err)
		}
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == authentication.CookieName && cookie.MaxAge >= 0 {
			return cookie.Value, nil
		}
	}

	return "", nil
}

func newHTTPClient(endpoint, session, workspace string) *httpClient {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	c := new(httpClient)
	c.endpoint = strings.TrimSuffix(endpoint, "/")
	c.session = session
	c.workspace = workspace
	c.client = &http.Client{Timeout: 30 * time.Second}

	return c
}

func getClient() *httpClient {
	return newHTTPClient(httpEndpoint, sessionToken, workspaceID)
}
