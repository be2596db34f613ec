package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command in-process with a clean configuration environment.
func execute(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "APP_PORT", "DATABASE_URL", "GOOGLE_GENERATIVE_AI_API_KEY", "SESSION_TTL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("APP_ENV", "test")
	for k, v := range env {
		t.Setenv(k, v)
	}

	sessionUID, sessionName, sessionEmail, sessionTTL = "", "", "", 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["session"])
}

func TestServe_RequiresDatabaseURL(t *testing.T) {
	_, err := execute(t, nil, "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestServe_RequiresAPIKey(t *testing.T) {
	_, err := execute(t, map[string]string{"DATABASE_URL": "postgres://localhost/unused"}, "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_GENERATIVE_AI_API_KEY")
}

func TestMigrate_RequiresDatabaseURL(t *testing.T) {
	_, err := execute(t, nil, "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestSession_RequiresIdentityFlags(t *testing.T) {
	_, err := execute(t, nil, "session")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--uid or --name/--email")
}

func TestInvalidConfigurationFailsBeforeRunning(t *testing.T) {
	_, err := execute(t, map[string]string{"APP_PORT": "not-a-number"}, "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process config")
}
