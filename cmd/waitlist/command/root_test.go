package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	root := NewRoot(context.Background())

	var out bytes.Buffer
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRoot_DefaultsToShell(t *testing.T) {
	out, err := execute(t, "2\nalice\n4\n5\n")
	require.NoError(t, err)
	assert.Contains(t, out, "alice added to the end of the waitlist")
	assert.Contains(t, out, "Current waitlist:\n- alice\n")
	assert.Contains(t, out, "Exiting waitlist manager.")
}

func TestShellCommand_WithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waitlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shell:\n  banner: \"== Diner ==\"\nlogger:\n  log_level: error\n"), 0o600))

	out, err := execute(t, "5\n", "shell", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "== Diner ==")
}

func TestRoot_BadConfig(t *testing.T) {
	_, err := execute(t, "", "shell", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestServe_BadPort(t *testing.T) {
	_, err := execute(t, "", "serve", "--port=-1")
	assert.ErrorContains(t, err, "invalid server port -1")
}
