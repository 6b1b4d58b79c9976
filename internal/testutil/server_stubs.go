package testutil

import (
	"context"
	"net/http"
	"sync/atomic"
)

// StubHTTPServer stands in for the server's HTTP listener. ListenAndServe
// returns ListenErr, or http.ErrServerClosed when it is nil. When
// ShutdownGate is set, Shutdown waits on it or on ctx.
type StubHTTPServer struct {
	ListenErr    error
	ShutdownGate chan struct{}

	shutdowns atomic.Int32
}

func (s *StubHTTPServer) ListenAndServe() error {
	if s.ListenErr != nil {
		return s.ListenErr
	}
	return http.ErrServerClosed
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdowns.Add(1)
	if s.ShutdownGate == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ShutdownGate:
		return nil
	}
}

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int {
	return int(s.shutdowns.Load())
}

func (s *StubHTTPServer) Addr() string { return ":0" }

func (s *StubHTTPServer) Handler() http.Handler { return http.NotFoundHandler() }
