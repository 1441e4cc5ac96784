// Copyright 2025 The mcp-specialist authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package cli wires the mcp-specialist server into a cobra command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	specialist "github.com/omri10007/MCP-specialist-agent"
	"github.com/omri10007/MCP-specialist-agent/tools"
)

// ServerName is the implementation name reported to MCP clients.
const ServerName = "mcp-specialist-go"

// usageResourceURI identifies the built-in usage document resource.
const usageResourceURI = "doc://mcp-specialist/usage"

const usageResourceText = `mcp-specialist exposes three tools:

  health_check  -> {status:"ok"}
  echo_text     -> echoes {text} unchanged
  compute_sum   -> {result: a+b} for numeric a, b

Transport is selected with MCP_TRANSPORT ("stdio", the default, or "http").
Under "http" the endpoint is /mcp on MCP_HTTP_HOST:MCP_HTTP_PORT.`

// NewRootCmd creates the mcp-specialist root command. Running it starts the
// server on the transport selected by the environment (see
// [specialist.ConfigFromEnv]).
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp-specialist",
		Short: "Minimal MCP demonstration server",
		Long: "mcp-specialist serves three demonstration tools (health_check, echo_text,\n" +
			"compute_sum) over the MCP stdio or streamable HTTP transport, selected via\n" +
			"the MCP_TRANSPORT environment variable.",
		RunE: runServe,
		// SilenceUsage prevents printing usage on every runtime error.
		SilenceUsage: true,
	}

	cmd.Flags().Bool("verbose", false, "Enable debug logging (stderr)")
	cmd.Flags().Bool("quiet", false, "Log errors only")

	cmd.Version = version
	cmd.SetVersionTemplate(fmt.Sprintf("mcp-specialist version %s\n", version))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := specialist.ConfigFromEnv()
	if err != nil {
		return exitError(exitConfig, "%v", err)
	}

	logger := newLogger(cmd)
	srv := specialist.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: cmd.Version,
	}, &specialist.Options{Logger: logger})

	tools.New(logger).Register(srv)
	registerUsageResource(srv)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Transport {
	case specialist.TransportStdio:
		if err := srv.ServeStdio(ctx); err != nil {
			return exitError(exitRuntime, "stdio transport: %v", err)
		}
	case specialist.TransportHTTP:
		if err := srv.ServeHTTP(ctx, cfg.Addr()); err != nil {
			return exitError(exitRuntime, "%v", err)
		}
	}
	return nil
}

// newLogger builds the process-wide diagnostic logger. It writes to the
// command's stderr stream only: under the stdio transport, stdout belongs to
// the protocol and any stray write there corrupts the framing.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	if q, _ := cmd.Flags().GetBool("quiet"); q {
		level = slog.LevelError
	}
	return newLoggerTo(cmd.ErrOrStderr(), level)
}

func newLoggerTo(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// registerUsageResource exposes a short usage document via resources/read.
func registerUsageResource(srv *specialist.Server) {
	srv.AddResource(&mcp.Resource{
		URI:         usageResourceURI,
		Name:        "usage",
		Description: "How to call the mcp-specialist tools.",
		MIMEType:    "text/plain",
	}, func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "text/plain",
				Text:     usageResourceText,
			}},
		}, nil
	})
}
