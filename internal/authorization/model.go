// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

var models = map[string]string{
	"v0": `
model
  schema 1.1

type user

type organization
  relations
    define admin: [user]
    define all_users: [user] or admin
    define can_manage: admin
    define can_edit: all_users
    define can_view: all_users

type app
  relations
    define organization: [organization]
    define can_edit: can_edit from organization
    define can_view: can_view from organization
`,
}

type AuthorizationModelProvider struct {
	version string
}

// GetModel compiles the DSL of the configured version into an openfga model
func (a *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	model, err := a.Compile()
	if err != nil {
		panic(err)
	}
	return model
}

func (a *AuthorizationModelProvider) Compile() (*fga.AuthorizationModel, error) {
	dsl, ok := models[a.version]
	if !ok {
		return nil, fmt.Errorf("unknown authorization model version %s", a.version)
	}

	raw, err := transformer.TransformDSLToJSON(dsl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse authorization model: %w", err)
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(raw), model); err != nil {
		return nil, fmt.Errorf("failed to decode authorization model: %w", err)
	}

	return model, nil
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	p := new(AuthorizationModelProvider)
	p.version = version

	return p
}
