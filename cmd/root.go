// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	httpEndpoint string
	sessionToken string
	workspaceID  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "app-builder",
	Short: "App Builder",
	Long:  `App Builder server and CLI for accounts and widget layouts.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpEndpoint, "http-endpoint", "http://localhost:8080", "HTTP server endpoint")
	rootCmd.PersistentFlags().StringVar(&sessionToken, "session", os.Getenv("APP_BUILDER_SESSION"), "Session token printed by the login command")
	rootCmd.PersistentFlags().StringVar(&workspaceID, "workspace", "", "Organization to act on, defaults to the user's default organization")
}
