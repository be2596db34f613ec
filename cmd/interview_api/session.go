package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/interview-prep/internal/types"
	"github.com/spf13/cobra"
)

var (
	sessionUID   string
	sessionName  string
	sessionEmail string
	sessionTTL   time.Duration
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Issue a session cookie value for local testing",
	Long: `Issue a signed session token for an existing user (--uid) or for a new
user created from --name and --email. Send it as the session cookie.`,
	RunE: runSession,
}

func init() {
	sessionCmd.Flags().StringVar(&sessionUID, "uid", "", "Existing user ID")
	sessionCmd.Flags().StringVar(&sessionName, "name", "", "Name of the user to create")
	sessionCmd.Flags().StringVar(&sessionEmail, "email", "", "Email of the user to create")
	sessionCmd.Flags().DurationVar(&sessionTTL, "ttl", 0, "Token lifetime (defaults to SESSION_TTL)")
	sessionCmd.MarkFlagsMutuallyExclusive("uid", "name")
	sessionCmd.MarkFlagsMutuallyExclusive("uid", "email")
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, _ []string) error {
	if sessionUID == "" && sessionName == "" && sessionEmail == "" {
		return fmt.Errorf("either --uid or --name/--email is required")
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}
	ttl := cfg.Session.TTL
	if sessionTTL > 0 {
		ttl = sessionTTL
	}

	ctx := context.Background()
	initializer := newInitializer()
	defer initializer.Close()

	clients, err := initializer.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}

	uid := sessionUID
	if uid == "" {
		uid, err = clients.Store.Add(ctx, types.UsersCollection, types.User{Name: sessionName, Email: sessionEmail})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
	} else {
		var user types.User
		found, err := clients.Store.Get(ctx, types.UsersCollection, uid, &user)
		if err != nil {
			return fmt.Errorf("failed to load user: %w", err)
		}
		if !found {
			return fmt.Errorf("user %s not found", uid)
		}
	}

	token, err := clients.Auth.Issue(uid, ttl)
	if err != nil {
		return fmt.Errorf("failed to issue session: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "User ID: %s\n", uid)
	fmt.Fprintf(out, "Cookie:  %s=%s\n", cfg.Session.CookieName, token)
	return nil
}
