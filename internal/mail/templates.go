// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"html/template"
)

var (
	welcomeTemplate = template.Must(template.New("welcome").Parse(`<p>Hi {{.Name}},</p>
{{if .OrganizationName}}<p>You have been invited to join the workspace {{.OrganizationName}}.</p>{{else}}<p>Welcome! Please set up your account to get started.</p>{{end}}
<p><a href="{{.Link}}">{{.Action}}</a></p>
<p>If the button does not work, copy this link into your browser: {{.Link}}</p>`))

	passwordResetTemplate = template.Must(template.New("reset").Parse(`<p>Hello,</p>
<p>Somebody requested a password reset for your account. If it was not you, ignore this email.</p>
<p><a href="{{.Link}}">Reset your password</a></p>
<p>If the button does not work, copy this link into your browser: {{.Link}}</p>`))
)

type templateData struct {
	Name             string
	OrganizationName string
	Link             string
	Action           string
}

func render(t *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
