package cmd

import (
	"context"
	"net"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func holdPort(t *testing.T) (string, int) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	return ln.Addr().String(), ln.Addr().(*net.TCPAddr).Port
}

func waitFor(t *testing.T, fn func() error) error {
	t.Helper()

	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("server did not return within 5s")
		return nil
	}
}

func TestRunServer_ReturnsBindError(t *testing.T) {
	addr, _ := holdPort(t)

	e := echo.New()
	e.HideBanner = true

	err := waitFor(t, func() error {
		return runServer(context.Background(), e, addr, time.Second)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address already in use")
}

func TestRunServer_GracefulShutdown(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- runServer(ctx, e, "127.0.0.1:0", time.Second) }()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 5*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down within 5s")
	}
}

func TestServeCommand_FailsWhenPortIsTaken(t *testing.T) {
	_, port := holdPort(t)

	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", strconv.Itoa(port))
	t.Setenv("DATABASE_URL", filepath.Join(t.TempDir(), "todos.db"))
	t.Setenv("REDIS_ADDR", "")

	err := waitFor(t, func() error {
		_, err := run(t, "serve")
		return err
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address already in use")
}
