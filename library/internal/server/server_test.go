package server_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Randazzz/LibraryAPI/library/config"
	"github.com/Randazzz/LibraryAPI/library/internal/server"
)

func TestServer_RunStop(t *testing.T) {
	t.Parallel()
	srv := server.NewServer(config.HTTPServer{Host: "127.0.0.1", Port: "0", ReadTimeout: time.Second}, http.NotFoundHandler())
	require.Equal(t, "127.0.0.1:0", srv.Addr())

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	// Shutdown may race with ListenAndServe; either way Run must return nil.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, srv.Stop(context.Background()))
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
