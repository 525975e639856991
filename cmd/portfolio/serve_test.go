package main

import (
	"bufio"
	"context"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rudresh.dev/internal/config"
	"rudresh.dev/internal/handlers"
)

func TestShutdownEndsOpenStreams(t *testing.T) {
	store := config.NewStore(config.DefaultConfig())
	srv := newServer("127.0.0.1:0", handlers.SetupRoutes(store, zap.NewNop()))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ln) }()

	client := &http.Client{}
	defer client.CloseIdleConnections()
	resp, err := client.Get("http://" + ln.Addr().String() + "/api/typewriter/stream")
	require.NoError(t, err)
	defer resp.Body.Close()

	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(line, "data: "), line)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	start := time.Now()
	require.NoError(t, srv.Shutdown(ctx))
	assert.Less(t, time.Since(start), time.Second)
	assert.ErrorIs(t, <-served, http.ErrServerClosed)
	assert.Equal(t, 0, store.Subscribers())
}
