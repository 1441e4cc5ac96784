// Copyright 2025 The mcp-specialist authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package specialist

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PromptHandler is an alias for the MCP SDK's prompt handler.
type PromptHandler = mcp.PromptHandler

// AddPrompt registers a prompt.
//
// The handler is called when clients request the prompt via prompts/get. In
// library mode it can be invoked directly via [Server.GetPrompt].
func (s *Server) AddPrompt(p *mcp.Prompt, h mcp.PromptHandler) {
	s.mcpServer.AddPrompt(p, h)

	s.mu.Lock()
	s.prompts[p.Name] = promptEntry{prompt: p, handler: h}
	s.mu.Unlock()
}

// RemovePrompts removes the named prompts.
func (s *Server) RemovePrompts(names ...string) {
	s.mcpServer.RemovePrompts(names...)

	s.mu.Lock()
	for _, name := range names {
		delete(s.prompts, name)
	}
	s.mu.Unlock()
}

// HasPrompt reports whether a prompt with the given name is registered.
func (s *Server) HasPrompt(name string) bool {
	s.mu.RLock()
	_, ok := s.prompts[name]
	s.mu.RUnlock()
	return ok
}

// PromptCount returns the number of registered prompts.
func (s *Server) PromptCount() int {
	s.mu.RLock()
	n := len(s.prompts)
	s.mu.RUnlock()
	return n
}
