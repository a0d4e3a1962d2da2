// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"testing"
)

func TestMigrateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "No arguments", args: nil},
		{name: "Up", args: []string{"up"}},
		{name: "Status", args: []string{"status"}},
		{name: "Down to version", args: []string{"down", "3"}},
		{name: "Unknown command", args: []string{"sideways"}, wantErr: true},
		{name: "Version on up", args: []string{"up", "3"}, wantErr: true},
		{name: "Negative version", args: []string{"down", "-1"}, wantErr: true},
		{name: "Too many arguments", args: []string{"down", "1", "2"}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := migrateArgs(migrateCmd, test.args)
			if (err != nil) != test.wantErr {
				t.Errorf("expected error %v, got %v", test.wantErr, err)
			}
		})
	}
}
