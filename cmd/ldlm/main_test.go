package main

import (
	"bytes"
	"context"
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/pixperk/ldlm/pkg/ldlmtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) *ldlmtest.Server {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := ldlmtest.NewServer(ldlmtest.WithListener(lis))
	t.Cleanup(srv.Stop)
	return srv
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func exitCode(err error) int {
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	return -1
}

// parses "locked=true name=n key=k"
func parseKey(t *testing.T, out string) string {
	t.Helper()
	for _, field := range strings.Fields(out) {
		if k, ok := strings.CutPrefix(field, "key="); ok {
			return k
		}
	}
	t.Fatalf("no key in output %q", out)
	return ""
}

func TestTryLockUnlock(t *testing.T) {
	srv := startServer(t)
	addr := "--address=" + srv.Target()

	out, err := runCLI(t, "try-lock", addr, "--retries=0", "orders")
	require.NoError(t, err)
	assert.Contains(t, out, "locked=true name=orders")
	key := parseKey(t, out)
	assert.Equal(t, 1, srv.Holders("orders"))

	out, err = runCLI(t, "try-lock", addr, "--retries=0", "orders")
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, out, "locked=false")

	out, err = runCLI(t, "unlock", addr, "--retries=0", "orders", key)
	require.NoError(t, err)
	assert.Contains(t, out, "unlocked=true")
	assert.Equal(t, 0, srv.Holders("orders"))
}

func TestRenew(t *testing.T) {
	srv := startServer(t)
	addr := "--address=" + srv.Target()

	out, err := runCLI(t, "lock", addr, "--retries=0", "--lock-timeout=30s", "jobs")
	require.NoError(t, err)
	key := parseKey(t, out)

	out, err = runCLI(t, "renew", addr, "--retries=0", "--lock-timeout=60s", "jobs", key)
	require.NoError(t, err)
	assert.Contains(t, out, "locked=true")

	_, err = runCLI(t, "renew", addr, "--retries=0", "--lock-timeout=60s", "jobs", "bogus")
	require.Error(t, err)
}

func TestRunPassesExitStatus(t *testing.T) {
	srv := startServer(t)
	addr := "--address=" + srv.Target()

	_, err := runCLI(t, "run", addr, "--retries=0", "--try", "deploy", "--", "sh", "-c", `test -n "$LDLM_LOCK_KEY" && exit 3`)
	assert.Equal(t, 3, exitCode(err))
	assert.Equal(t, 0, srv.Holders("deploy"))

	_, err = runCLI(t, "run", addr, "--retries=0", "--lock-timeout=30s", "deploy", "--", "true")
	require.NoError(t, err)
	assert.Equal(t, 0, srv.Holders("deploy"))
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("debug")
	require.NoError(t, err)

	_, err = newLogger("chatty")
	assert.Error(t, err)
}

func TestClientOptionsFromEnv(t *testing.T) {
	initConfig()

	t.Setenv("LDLM_LOG_LEVEL", "nope")
	_, err := clientOptions()
	assert.Error(t, err)

	t.Setenv("LDLM_LOG_LEVEL", "error")
	t.Setenv("LDLM_PASSWORD", "pw")
	opts, err := clientOptions()
	require.NoError(t, err)
	assert.NotEmpty(t, opts)
}
