// SPDX-License-Identifier: MIT

package config_test

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homology/internal/platform/config"
)

// TestExitfExitsWithCode1 re-runs itself in a subprocess because os.Exit
// cannot be intercepted in-process.
func TestExitfExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf("Error: %s", "bad input")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitfExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected *exec.ExitError, got %T: %v", err, err)
	require.Equal(t, 1, exitErr.ExitCode())
	require.Contains(t, string(out), "Error: bad input")
}
