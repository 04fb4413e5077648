package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	rootCmd := newRootCmd()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestRelaysListSeedsDefaults(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "relays", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "wss://nos.lol")
	assert.Contains(t, stdout, "wss://relay.damus.io")
}

func TestRelaysAddThenListShowsRelay(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "relays", "add", "WSS://Relay.Example.COM/")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Added wss://relay.example.com")

	stdout, _, err = executeCLI(t, home, "relays", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "wss://relay.example.com")
}

func TestRelaysAddRejectsMalformedURL(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "relays", "add", "not-a-relay")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid relay url")
}

func TestRelaysRemoveUnknownRelayFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "relays", "list")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "relays", "remove", "wss://unknown.example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relay not configured")
}

func TestStatsRejectsInvalidPublicKey(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "stats", "definitely-not-a-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "npub or 64 hex characters")
}

func TestStatsRequiresArgument(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "stats")
	require.Error(t, err)
}

func TestUnknownCommandFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "notifications")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"notifications\"")
}
