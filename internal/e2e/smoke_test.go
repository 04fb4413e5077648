package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runNS(t, binaryPath, home, "relays", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "wss://nos.lol")

	stdout, stderr, err = runNS(t, binaryPath, home, "relays", "add", "wss://relay.example.com")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Added wss://relay.example.com")

	stdout, stderr, err = runNS(t, binaryPath, home, "relays", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "wss://relay.example.com")

	stdout, stderr, err = runNS(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ns-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ns")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ns binary: %s", string(output))
	return binaryPath
}

func runNS(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "go.mod not found above %s", dir)
		dir = parent
	}
}
