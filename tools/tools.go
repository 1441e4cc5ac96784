// Copyright 2025 The mcp-specialist authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package tools defines the mcp-specialist demonstration tool set:
// health_check, echo_text, and compute_sum. The tool names and their
// request/response shapes are an external contract and must not change.
package tools

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	specialist "github.com/omri10007/MCP-specialist-agent"
)

// sumBudget is the wall-clock budget for compute_sum. The addition itself is
// O(1); the guard exists so the timeout-reporting contract holds if this
// pattern is reused for heavier operations.
const sumBudget = 5 * time.Second

// Toolkit holds the demonstration tool handlers. Handlers are stateless with
// respect to requests; the only shared member is the diagnostic logger, which
// must write to standard error so the stdio protocol stream stays clean.
type Toolkit struct {
	logger *slog.Logger
}

// New creates a Toolkit. If logger is nil, slog.Default is used.
func New(logger *slog.Logger) *Toolkit {
	if logger == nil {
		logger = slog.Default()
	}
	return &Toolkit{logger: logger}
}

// Register adds the three demonstration tools to srv.
func (t *Toolkit) Register(srv *specialist.Server) {
	specialist.AddTool(srv, &mcp.Tool{
		Name:        "health_check",
		Description: "Return a simple health status to verify the server is running and responding.",
	}, t.HealthCheck)

	specialist.AddTool(srv, &mcp.Tool{
		Name:        "echo_text",
		Description: "Echo back the provided string unchanged.",
	}, t.EchoText)

	specialist.AddTool(srv, &mcp.Tool{
		Name:        "compute_sum",
		Description: "Add two numbers and return the result.",
	}, t.ComputeSum)
}

// HealthCheckParams is the (empty) input for health_check. Declaring it as an
// empty struct makes the derived schema reject any supplied arguments.
type HealthCheckParams struct{}

// HealthCheckResult is the output of health_check.
type HealthCheckResult struct {
	Status string `json:"status" jsonschema:"health status indicator, always \"ok\""`
}

// HealthCheck reports that the server is reachable and able to execute a
// handler. It takes no arguments, has no side effects, and always returns
// {status:"ok"}.
func (t *Toolkit) HealthCheck(ctx context.Context, req *mcp.CallToolRequest, params HealthCheckParams) (*mcp.CallToolResult, HealthCheckResult, error) {
	return nil, HealthCheckResult{Status: "ok"}, nil
}

// EchoParams is the input for echo_text.
type EchoParams struct {
	Text string `json:"text" jsonschema:"text to echo back to the caller"`
}

// EchoResult is the output of echo_text.
type EchoResult struct {
	Text string `json:"text" jsonschema:"the same text that was provided"`
}

// EchoText returns the provided string byte-for-byte: no trimming, no
// re-encoding, no case change. The empty string round-trips unchanged.
func (t *Toolkit) EchoText(ctx context.Context, req *mcp.CallToolRequest, params EchoParams) (*mcp.CallToolResult, EchoResult, error) {
	return nil, EchoResult{Text: params.Text}, nil
}

// SumParams is the input for compute_sum. Both fields are required.
type SumParams struct {
	A float64 `json:"a" jsonschema:"the first addend"`
	B float64 `json:"b" jsonschema:"the second addend"`
}

// SumResult is the output of compute_sum.
type SumResult struct {
	Result float64 `json:"result" jsonschema:"the sum of the two inputs"`
}

// ComputeSum adds a and b with IEEE 754 double-precision semantics (NaN and
// infinities propagate) under a bounded-duration guard.
//
// If the guard elapses, the caller receives a *specialist.TimeoutError. Any
// other failure is logged with its detail and replaced by a generic
// *specialist.InternalError; the original cause never reaches the caller.
func (t *Toolkit) ComputeSum(ctx context.Context, req *mcp.CallToolRequest, params SumParams) (*mcp.CallToolResult, SumResult, error) {
	result, err := t.guardedSum(ctx, sumBudget, func() (SumResult, error) {
		return SumResult{Result: params.A + params.B}, nil
	})
	if err != nil {
		return nil, SumResult{}, err
	}
	return nil, result, nil
}

// guardedSum runs add under a wall-clock budget and maps failures onto the
// caller-visible error taxonomy. Split from ComputeSum so the timeout and
// sanitization paths are testable with an injected budget and add function.
func (t *Toolkit) guardedSum(ctx context.Context, budget time.Duration, add func() (SumResult, error)) (SumResult, error) {
	result, err := runGuarded(ctx, budget, add)
	if err == nil {
		return result, nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		t.logger.Error("compute_sum timed out", "budget", budget)
		return SumResult{}, &specialist.TimeoutError{Op: "compute_sum", Budget: budget}
	}

	t.logger.Error("compute_sum encountered an unexpected error", "err", err)
	return SumResult{}, &specialist.InternalError{Op: "compute sum", Err: err}
}

// runGuarded runs fn with a wall-clock budget. If the budget (or the parent
// context) expires before fn completes, the zero value and the context error
// are returned; fn's goroutine is left to finish on its own since fn cannot
// be preempted.
func runGuarded[T any](ctx context.Context, budget time.Duration, fn func() (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		value, err := fn()
		done <- outcome{value: value, err: err}
	}()

	select {
	case o := <-done:
		return o.value, o.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
