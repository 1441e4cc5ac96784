// Copyright 2025 The mcp-specialist authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package specialist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server is the core type of this package. It wraps an mcp.Server and supports
// both library-mode direct invocation and serving over MCP transports.
//
// A Server should be created with [NewServer] and have its tools, prompts, and
// resources registered before any transport is started.
type Server struct {
	mcpServer *mcp.Server
	impl      *mcp.Implementation
	logger    *slog.Logger

	// mu protects the registries below. They mirror what is registered with
	// the underlying mcp.Server so that library-mode dispatch can invoke
	// handlers without going through the JSON-RPC layer.
	mu        sync.RWMutex
	tools     map[string]toolEntry
	prompts   map[string]promptEntry
	resources map[string]resourceEntry
}

type toolEntry struct {
	tool    *mcp.Tool
	handler mcp.ToolHandler
}

type promptEntry struct {
	prompt  *mcp.Prompt
	handler mcp.PromptHandler
}

type resourceEntry struct {
	resource *mcp.Resource
	handler  mcp.ResourceHandler
}

// Options configures a Server.
type Options struct {
	// Logger receives runtime diagnostics. It must never write to standard
	// output: under the stdio transport, stdout carries protocol framing
	// exclusively. If nil, slog.Default is used.
	Logger *slog.Logger

	// ServerOptions are passed through to the underlying mcp.Server.
	ServerOptions *mcp.ServerOptions
}

// NewServer creates a Server for the given implementation identity.
//
// impl must not be nil; it is reported to MCP clients during initialization.
// opts may be nil.
func NewServer(impl *mcp.Implementation, opts *Options) *Server {
	if impl == nil {
		panic("specialist: nil Implementation")
	}
	if opts == nil {
		opts = &Options{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		mcpServer: mcp.NewServer(impl, opts.ServerOptions),
		impl:      impl,
		logger:    logger,
		tools:     make(map[string]toolEntry),
		prompts:   make(map[string]promptEntry),
		resources: make(map[string]resourceEntry),
	}
}

// MCP returns the underlying mcp.Server.
//
// This is an escape hatch for plugging into existing MCP infrastructure.
// Registrations made directly on the returned server are not visible to
// library-mode dispatch.
func (s *Server) MCP() *mcp.Server {
	return s.mcpServer
}

// Implementation returns the identity the server reports to clients.
func (s *Server) Implementation() *mcp.Implementation {
	return s.impl
}

// Logger returns the server's diagnostic logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// CallTool invokes a registered tool by name with the given arguments.
//
// This is the library-mode entry point: it bypasses transport and JSON-RPC
// framing and invokes the handler directly. args may be a map[string]any or
// any value that marshals to JSON matching the tool's input schema.
//
// Bypassing the transport also bypasses the SDK's schema validation: the
// arguments are only unmarshaled into the handler's input type, so missing
// fields take their zero values and undeclared fields are dropped. Callers
// needing the full validation boundary should go through a session, e.g.
// [Server.InMemorySession].
//
// Returns [ErrToolNotFound] if no tool with the given name is registered.
func (s *Server) CallTool(ctx context.Context, name string, args any) (*mcp.CallToolResult, error) {
	s.mu.RLock()
	entry, ok := s.tools[name]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	var rawArgs json.RawMessage
	if args != nil {
		var err error
		rawArgs, err = json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("marshaling tool arguments: %w", err)
		}
	}

	// No session exists in library mode, so CallToolRequest.Session is nil.
	req := &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{
			Name:      name,
			Arguments: rawArgs,
		},
	}

	return entry.handler(ctx, req)
}

// GetPrompt renders a registered prompt by name in library mode.
//
// Returns [ErrPromptNotFound] if no prompt with the given name is registered.
func (s *Server) GetPrompt(ctx context.Context, name string, args map[string]string) (*mcp.GetPromptResult, error) {
	s.mu.RLock()
	entry, ok := s.prompts[name]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPromptNotFound, name)
	}

	req := &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{
			Name:      name,
			Arguments: args,
		},
	}

	return entry.handler(ctx, req)
}

// ReadResource reads a registered resource by URI in library mode.
//
// Returns [ErrResourceNotFound] if no resource with the given URI is
// registered.
func (s *Server) ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	s.mu.RLock()
	entry, ok := s.resources[uri]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, uri)
	}

	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}

	return entry.handler(ctx, req)
}

// ListTools returns all registered tools.
func (s *Server) ListTools() []*mcp.Tool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := make([]*mcp.Tool, 0, len(s.tools))
	for _, entry := range s.tools {
		tools = append(tools, entry.tool)
	}
	return tools
}

// ListPrompts returns all registered prompts.
func (s *Server) ListPrompts() []*mcp.Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prompts := make([]*mcp.Prompt, 0, len(s.prompts))
	for _, entry := range s.prompts {
		prompts = append(prompts, entry.prompt)
	}
	return prompts
}

// ListResources returns all registered resources.
func (s *Server) ListResources() []*mcp.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resources := make([]*mcp.Resource, 0, len(s.resources))
	for _, entry := range s.resources {
		resources = append(resources, entry.resource)
	}
	return resources
}
