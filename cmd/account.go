// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/canonical/app-builder/pkg/auth"
)

var (
	email        string
	password     string
	name         string
	organization string
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage accounts and sessions",
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Sign up with email and password, an activation email is sent",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := getClient()

		_, err := client.do(context.Background(), http.MethodPost, "/api/signup", &auth.SignupRequest{
			Name:           name,
			Email:          email,
			Password:       password,
			OrganizationID: organization,
		}, nil)
		if err != nil {
			return fmt.Errorf("failed to sign up: %w", err)
		}

		fmt.Printf("Signed up %s, check your inbox to activate the account\n", email)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and print the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := getClient()

		path := "/api/authenticate"
		if organization != "" {
			path += "/" + organization
		}

		result := new(auth.LoginResult)
		token, err := client.do(context.Background(), http.MethodPost, path, &auth.LoginRequest{Email: email, Password: password}, result)
		if err != nil {
			return fmt.Errorf("failed to log in: %w", err)
		}

		fmt.Printf("Logged in as %s (ID: %s, organization: %s)\n", result.Email, result.ID, result.CurrentOrganizationID)
		fmt.Printf("export APP_BUILDER_SESSION=%s\n", token)
		return nil
	},
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := getClient()

		session := new(auth.SessionPayload)
		if _, err := client.do(context.Background(), http.MethodGet, "/api/session", nil, session); err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}

		fmt.Printf("User: %s (ID: %s)\n", session.Email, session.ID)
		if session.NoWorkspaceAttachedInTheSession {
			fmt.Println("Organization: none")
		} else {
			fmt.Printf("Organization: %s (%s)\n", session.CurrentOrganizationSlug, session.CurrentOrganizationID)
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Terminate the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := getClient().do(context.Background(), http.MethodGet, "/api/logout", nil, nil); err != nil {
			return fmt.Errorf("failed to log out: %w", err)
		}

		fmt.Println("Logged out")
		return nil
	},
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Request a password reset email",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := getClient().do(context.Background(), http.MethodPost, "/api/forgot-password", &auth.EmailRequest{Email: email}, nil)
		if err != nil {
			return fmt.Errorf("failed to request password reset: %w", err)
		}

		fmt.Printf("Password reset requested for %s\n", email)
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password [token]",
	Short: "Set a new password with the token from the reset email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := getClient().do(context.Background(), http.MethodPost, "/api/reset-password", &auth.ResetPasswordRequest{Token: args[0], Password: password}, nil)
		if err != nil {
			return fmt.Errorf("failed to reset password: %w", err)
		}

		fmt.Println("Password updated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(signupCmd)
	accountCmd.AddCommand(loginCmd)
	accountCmd.AddCommand(sessionCmd)
	accountCmd.AddCommand(logoutCmd)
	accountCmd.AddCommand(forgotPasswordCmd)
	accountCmd.AddCommand(resetPasswordCmd)

	for _, c := range []*cobra.Command{signupCmd, loginCmd, forgotPasswordCmd} {
		c.Flags().StringVar(&email, "email", "", "Account email")
		c.MarkFlagRequired("email")
	}

	for _, c := range []*cobra.Command{signupCmd, loginCmd, resetPasswordCmd} {
		c.Flags().StringVar(&password, "password", "", "Account password")
		c.MarkFlagRequired("password")
	}

	signupCmd.Flags().StringVar(&name, "name", "", "Full name")
	signupCmd.Flags().StringVar(&organization, "organization", "", "Organization to join")
	loginCmd.Flags().StringVar(&organization, "organization", "", "Organization to log into")
}
