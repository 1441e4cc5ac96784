// Copyright 2025 The mcp-specialist authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package specialist

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// HTTPEndpointPath is the path at which [Server.ServeHTTP] mounts the MCP
// endpoint.
const HTTPEndpointPath = "/mcp"

// httpShutdownTimeout bounds graceful shutdown once the serve context is
// canceled.
const httpShutdownTimeout = 10 * time.Second

// ServeStdio serves MCP over the process's standard streams and blocks until
// the client disconnects or ctx is canceled.
//
// The stdio transport owns standard output: protocol framing is the only
// thing ever written there. Diagnostics must go through the server's logger,
// which is expected to write to standard error.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.Info("serving MCP over stdio",
		"server", s.impl.Name,
		"version", s.impl.Version)

	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// ServeHTTP serves MCP over the streamable HTTP transport at
// [HTTPEndpointPath] on addr, and blocks until the listener fails or ctx is
// canceled. Cancellation triggers a bounded graceful shutdown.
//
// Each HTTP connection is dispatched independently; registered handlers share
// no mutable state, so concurrent sessions need no coordination here.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)

	mux := http.NewServeMux()
	mux.Handle(HTTPEndpointPath, handler)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	s.logger.Info("serving MCP over HTTP",
		"server", s.impl.Name,
		"version", s.impl.Version,
		"addr", addr,
		"path", HTTPEndpointPath)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down HTTP transport: %w", err)
		}
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP transport: %w", err)
		}
		return nil
	}
}

// InMemorySession connects an in-process MCP client to this server and
// returns both session ends. Requests issued on the client session travel
// through the full SDK dispatch path (schema validation included) without any
// OS-level transport, which makes it the transport of choice for tests and
// embedding.
//
// The caller owns both sessions and should close the client session when done.
func (s *Server) InMemorySession(ctx context.Context) (*mcp.ServerSession, *mcp.ClientSession, error) {
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := s.mcpServer.Connect(ctx, serverTransport, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting server session: %w", err)
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    s.impl.Name + "-client",
		Version: s.impl.Version,
	}, nil)

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		_ = serverSession.Close()
		return nil, nil, fmt.Errorf("connecting client session: %w", err)
	}

	return serverSession, clientSession, nil
}
