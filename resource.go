// Copyright 2025 The mcp-specialist authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package specialist

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ResourceHandler is an alias for the MCP SDK's resource handler.
type ResourceHandler = mcp.ResourceHandler

// AddResource registers a resource.
//
// The handler is called when clients request the resource via resources/read.
// In library mode it can be invoked directly via [Server.ReadResource].
//
// Example:
//
//	srv.AddResource(&mcp.Resource{
//		URI:      "doc://mcp-specialist/usage",
//		Name:     "usage",
//		MIMEType: "text/plain",
//	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
//		return &mcp.ReadResourceResult{
//			Contents: []*mcp.ResourceContents{{
//				URI:  req.Params.URI,
//				Text: "...",
//			}},
//		}, nil
//	})
func (s *Server) AddResource(res *mcp.Resource, h mcp.ResourceHandler) {
	s.mcpServer.AddResource(res, h)

	s.mu.Lock()
	s.resources[res.URI] = resourceEntry{resource: res, handler: h}
	s.mu.Unlock()
}

// AddResourceTemplate registers a resource template (RFC 6570 URI templates).
//
// Templates are served by the MCP server but are not dispatchable in library
// mode; use [Server.MCP] when template support is needed directly.
func (s *Server) AddResourceTemplate(t *mcp.ResourceTemplate, h mcp.ResourceHandler) {
	s.mcpServer.AddResourceTemplate(t, h)
}

// RemoveResources removes resources with the given URIs.
func (s *Server) RemoveResources(uris ...string) {
	s.mcpServer.RemoveResources(uris...)

	s.mu.Lock()
	for _, uri := range uris {
		delete(s.resources, uri)
	}
	s.mu.Unlock()
}

// RemoveResourceTemplates removes resource templates with the given URI templates.
func (s *Server) RemoveResourceTemplates(uriTemplates ...string) {
	s.mcpServer.RemoveResourceTemplates(uriTemplates...)
}

// HasResource reports whether a resource with the given URI is registered.
func (s *Server) HasResource(uri string) bool {
	s.mu.RLock()
	_, ok := s.resources[uri]
	s.mu.RUnlock()
	return ok
}

// ResourceCount returns the number of registered resources.
func (s *Server) ResourceCount() int {
	s.mu.RLock()
	n := len(s.resources)
	s.mu.RUnlock()
	return n
}
