package server_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatchkit/core/server"
)

// testHandler creates a simple test handler
func testHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "OK")
	})
}

// getFreePort returns a free port for testing
func getFreePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

// waitForServer blocks until the address accepts TCP connections.
func waitForServer(t *testing.T, addr string) {
	t.Helper()
	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, 2*time.Second, 10*time.Millisecond)
}

func TestServerServesRequests(t *testing.T) {
	t.Parallel()

	addr := fmt.Sprintf("127.0.0.1:%d", getFreePort(t))
	srv := server.New(addr)

	ctx, cancel := context.WithCancel(context.Background())
	var startErr error
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		startErr = srv.Start(ctx, testHandler())
	}()

	waitForServer(t, addr)

	resp, err := http.Get("http://" + addr + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))

	// Start returns the context error on cancellation; the listener
	// stays bound until Stop is called.
	cancel()
	wg.Wait()
	assert.ErrorIs(t, startErr, context.Canceled)
	assert.NoError(t, srv.Stop())
}

func TestServerNilHandler(t *testing.T) {
	t.Parallel()

	srv := server.New(":8080")
	err := srv.Start(context.Background(), nil)
	assert.ErrorIs(t, err, server.ErrNilHandler)
}

func TestServerDoubleStart(t *testing.T) {
	t.Parallel()

	addr := fmt.Sprintf("127.0.0.1:%d", getFreePort(t))
	srv := server.New(addr)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = srv.Start(ctx, testHandler())
	}()

	waitForServer(t, addr)

	err := srv.Start(context.Background(), testHandler())
	assert.ErrorIs(t, err, server.ErrServerAlreadyRunning)

	cancel()
	wg.Wait()
	assert.NoError(t, srv.Stop())
}

func TestServerStopWithoutStart(t *testing.T) {
	t.Parallel()

	srv := server.New(":8080")
	assert.NoError(t, srv.Stop())
}

func TestServerPortConflict(t *testing.T) {
	t.Parallel()

	addr := fmt.Sprintf("127.0.0.1:%d", getFreePort(t))

	srv1 := server.New(addr)
	ctx1, cancel1 := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = srv1.Start(ctx1, testHandler())
	}()

	waitForServer(t, addr)

	srv2 := server.New(addr)
	err := srv2.Start(context.Background(), testHandler())
	require.Error(t, err)
	assert.ErrorIs(t, err, server.ErrHTTPServer)
	assert.Contains(t, err.Error(), "address already in use")

	cancel1()
	wg.Wait()
	assert.NoError(t, srv1.Stop())
}

func TestServerRunGracefulShutdown(t *testing.T) {
	t.Parallel()

	addr := fmt.Sprintf("127.0.0.1:%d", getFreePort(t))
	srv := server.New(addr, server.WithShutdownTimeout(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	runFn := srv.Run(ctx, testHandler())

	errCh := make(chan error, 1)
	go func() {
		errCh <- runFn()
	}()

	waitForServer(t, addr)

	resp, err := http.Get("http://" + addr + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("nil handler", func(t *testing.T) {
		err := server.Run(context.Background(), ":8080", nil)
		assert.ErrorIs(t, err, server.ErrNilHandler)
	})

	t.Run("returns on context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		addr := fmt.Sprintf("127.0.0.1:%d", getFreePort(t))
		err := server.Run(ctx, addr, testHandler())
		assert.ErrorIs(t, err, context.Canceled)
	})
}
