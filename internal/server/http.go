package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dtroode/ctfboard/internal/model"
)

var _ model.Server = (*HTTPServer)(nil)

// HTTPServer runs an http.Handler on a listener produced by a security
// layer.
type HTTPServer struct {
	server *http.Server
	addr   string
}

// NewHTTPServer creates a server for the given handler and address.
func NewHTTPServer(handler http.Handler, addr string) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{Handler: handler},
		addr:   addr,
	}
}

// Start blocks serving requests until Stop is called or the listener
// fails.
func (s *HTTPServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}

// Stop shuts the server down gracefully, honoring the context deadline.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Address returns the configured listen address.
func (s *HTTPServer) Address() string {
	return s.addr
}
