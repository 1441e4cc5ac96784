// Copyright 2025 The mcp-specialist authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package specialist implements a small, library-first MCP server runtime and
// is the home of the mcp-specialist demonstration server.
//
// The package wraps the official MCP Go SDK
// (github.com/modelcontextprotocol/go-sdk): tool registration, JSON-schema
// derivation from Go types, request validation and dispatch, and the transport
// loops all belong to the SDK. What this package adds is a thin runtime that
// lets the same registered tools be used two ways:
//
//   - Library mode: invoke a tool directly in-process via [Server.CallTool],
//     with no transport or JSON-RPC framing involved.
//   - Server mode: expose the tools over an MCP transport via
//     [Server.ServeStdio] or [Server.ServeHTTP].
//
// Handlers use the exact signatures of the MCP SDK, so behavior is identical
// in both modes.
//
// # Quick start
//
//	srv := specialist.NewServer(&mcp.Implementation{
//		Name:    "mcp-specialist-go",
//		Version: "v0.1.0",
//	}, nil)
//
//	type sumIn struct {
//		A float64 `json:"a"`
//		B float64 `json:"b"`
//	}
//	type sumOut struct {
//		Result float64 `json:"result"`
//	}
//	specialist.AddTool(srv, &mcp.Tool{Name: "compute_sum"},
//		func(ctx context.Context, req *mcp.CallToolRequest, in sumIn) (*mcp.CallToolResult, sumOut, error) {
//			return nil, sumOut{Result: in.A + in.B}, nil
//		})
//
//	// Library mode.
//	res, err := srv.CallTool(ctx, "compute_sum", map[string]any{"a": 2.5, "b": 3.5})
//
//	// Server mode, stdio.
//	err = srv.ServeStdio(ctx)
//
// # Transports
//
// Transport selection for the mcp-specialist binary is environment-driven, see
// [ConfigFromEnv]. Under the stdio transport, standard output carries protocol
// framing exclusively; all diagnostics go to the slog logger, which must write
// to standard error.
//
// The canonical tool set (health_check, echo_text, compute_sum) lives in the
// tools subpackage; the binary lives in cmd/mcp-specialist.
package specialist
