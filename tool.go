// Copyright 2025 The mcp-specialist authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package specialist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolHandlerFor is an alias for the MCP SDK's typed tool handler. Typed
// handlers get automatic input/output schema inference and validation.
type ToolHandlerFor[In, Out any] = mcp.ToolHandlerFor[In, Out]

// ToolHandler is an alias for the MCP SDK's low-level tool handler.
type ToolHandler = mcp.ToolHandler

// AddToolHandler registers a tool with a low-level handler.
//
// This mirrors [mcp.Server.AddTool]: no input validation or output schema
// generation is performed, and the tool's InputSchema must be a non-nil
// object schema. Most callers should use the generic [AddTool] instead.
func (s *Server) AddToolHandler(t *mcp.Tool, h mcp.ToolHandler) {
	s.mcpServer.AddTool(t, h)

	s.mu.Lock()
	s.tools[t.Name] = toolEntry{tool: t, handler: h}
	s.mu.Unlock()
}

// AddTool registers a typed tool, deriving JSON schemas for its input and
// output from the In and Out type parameters when the Tool struct does not
// already declare them. This mirrors [mcp.AddTool] from the MCP SDK.
//
// Under transport dispatch, required fields, type checks, and rejection of
// undeclared properties are all enforced by the SDK before the handler runs.
// Library-mode dispatch via [Server.CallTool] does not re-run that schema
// validation; see the caveat there.
func AddTool[In, Out any](s *Server, t *mcp.Tool, h mcp.ToolHandlerFor[In, Out]) {
	// The SDK performs schema inference and wraps the handler for transport
	// dispatch. Register there first.
	mcp.AddTool(s.mcpServer, t, h)

	// Library-mode dispatch needs an equivalent low-level handler, so wrap
	// the typed handler the same way the SDK does internally.
	s.mu.Lock()
	s.tools[t.Name] = toolEntry{tool: t, handler: wrapTypedToolHandler(h)}
	s.mu.Unlock()
}

// wrapTypedToolHandler adapts a typed handler to the low-level ToolHandler
// shape used for library-mode dispatch: unmarshal the raw arguments, invoke
// the handler, and package the output (or the error) into a CallToolResult.
func wrapTypedToolHandler[In, Out any](h mcp.ToolHandlerFor[In, Out]) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var input In
		if req.Params.Arguments != nil {
			if err := json.Unmarshal(req.Params.Arguments, &input); err != nil {
				return nil, fmt.Errorf("unmarshaling tool arguments: %w", err)
			}
		}

		result, output, err := h(ctx, req, input)
		if err != nil {
			// Tool failures become results with IsError set, matching the
			// SDK's transport-side behavior. Only the error string crosses
			// the boundary; see InternalError for the sanitization contract.
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
				IsError: true,
			}, nil
		}

		if result == nil {
			result = &mcp.CallToolResult{}
		}

		outbytes, err := json.Marshal(output)
		if err != nil {
			return nil, fmt.Errorf("marshaling tool output: %w", err)
		}
		result.StructuredContent = json.RawMessage(outbytes)
		if result.Content == nil {
			result.Content = []mcp.Content{&mcp.TextContent{Text: string(outbytes)}}
		}

		return result, nil
	}
}

// RemoveTools removes the named tools.
func (s *Server) RemoveTools(names ...string) {
	s.mcpServer.RemoveTools(names...)

	s.mu.Lock()
	for _, name := range names {
		delete(s.tools, name)
	}
	s.mu.Unlock()
}

// HasTool reports whether a tool with the given name is registered.
func (s *Server) HasTool(name string) bool {
	s.mu.RLock()
	_, ok := s.tools[name]
	s.mu.RUnlock()
	return ok
}

// ToolCount returns the number of registered tools.
func (s *Server) ToolCount() int {
	s.mu.RLock()
	n := len(s.tools)
	s.mu.RUnlock()
	return n
}
