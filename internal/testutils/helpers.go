package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// PhoneRulesYAML is the built-in phone table written with human labels.
const PhoneRulesYAML = `
states:
  off the hook:
    - on: call dialed
      to: connecting
    - on: putting phone on hook
      to: on the hook
  connecting:
    - on: hung up
      to: off the hook
    - on: call connected
      to: connected
  connected:
    - on: left message
      to: off the hook
    - on: hung up
      to: off the hook
    - on: placed on hold
      to: on hold
  on hold:
    - on: taken off hold
      to: connected
    - on: hung up
      to: off the hook
`

// WriteRulesFile writes content to name inside a fresh temp directory and
// returns the absolute path. It fails the test immediately on error.
func WriteRulesFile(t *testing.T, name, content string) string {
	t.Helper()

	path, err := filepath.Abs(filepath.Join(t.TempDir(), name))
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write rules file")
	return path
}
