//go:build integration && !windows

package rod_test

import (
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/pith/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// launcherAlive probes the launcher process with signal 0, which checks
// existence without delivering anything.
func launcherAlive(pid int) bool {
	return syscall.Kill(pid, syscall.Signal(0)) == nil
}

func TestFetcher_Close_ReapsLauncher(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	pid := fetcher.LauncherPID()
	require.NotZero(t, pid)
	require.True(t, launcherAlive(pid), "launcher should be running before Close")

	require.NoError(t, fetcher.Close())

	// The launcher exits asynchronously after the browser connection drops.
	assert.Eventually(t, func() bool {
		return !launcherAlive(pid)
	}, 5*time.Second, 100*time.Millisecond, "launcher should exit after Close")
}

func TestFetcher_Close_Idempotent(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	require.NoError(t, fetcher.Close())
	assert.NoError(t, fetcher.Close())
}
