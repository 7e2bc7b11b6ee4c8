package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_StartupFailureIsReturned(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	// a regular file cannot be a parent directory
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	os.Args = []string{"client", "-d", filepath.Join(blocker, "prefs.db")}

	var stdout, stderr bytes.Buffer
	err := run(&stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start client")
	assert.Contains(t, stdout.String(), "Build version")
}
