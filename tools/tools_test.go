// Copyright 2025 The mcp-specialist authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	specialist "github.com/omri10007/MCP-specialist-agent"
)

func newTestToolkit() *Toolkit {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHealthCheck(t *testing.T) {
	tk := newTestToolkit()

	_, result, err := tk.HealthCheck(context.Background(), nil, HealthCheckParams{})
	if err != nil {
		t.Fatalf("HealthCheck failed: %v", err)
	}
	if result.Status != "ok" {
		t.Errorf("expected status %q, got %q", "ok", result.Status)
	}
}

// TestEchoText_Identity checks the byte-for-byte round trip, including the
// empty string, multi-byte text, and control characters.
func TestEchoText_Identity(t *testing.T) {
	tk := newTestToolkit()

	inputs := []string{
		"",
		"hello",
		"  leading and trailing  ",
		"héllo wörld 日本語 🙂",
		"control\x01chars\x00and\ttabs\nnewlines",
	}
	for _, s := range inputs {
		_, result, err := tk.EchoText(context.Background(), nil, EchoParams{Text: s})
		if err != nil {
			t.Fatalf("EchoText(%q) failed: %v", s, err)
		}
		if result.Text != s {
			t.Errorf("EchoText(%q) = %q, want identity", s, result.Text)
		}
	}
}

func TestComputeSum(t *testing.T) {
	tk := newTestToolkit()

	cases := []struct {
		a, b, want float64
	}{
		{2.5, 3.5, 6.0},
		{-1, 1, 0},
		{0, 0, 0},
		{0.1, 0.2, 0.30000000000000004}, // double-precision, not decimal
		{1e308, 1e308, math.Inf(1)},     // overflow propagates to +Inf
	}
	for _, tc := range cases {
		_, result, err := tk.ComputeSum(context.Background(), nil, SumParams{A: tc.a, B: tc.b})
		if err != nil {
			t.Fatalf("ComputeSum(%v, %v) failed: %v", tc.a, tc.b, err)
		}
		if result.Result != tc.want {
			t.Errorf("ComputeSum(%v, %v) = %v, want %v", tc.a, tc.b, result.Result, tc.want)
		}
	}
}

// TestComputeSum_NaNPropagates checks that NaN inputs are not specially
// guarded against.
func TestComputeSum_NaNPropagates(t *testing.T) {
	tk := newTestToolkit()

	_, result, err := tk.ComputeSum(context.Background(), nil, SumParams{A: math.NaN(), B: 1})
	if err != nil {
		t.Fatalf("ComputeSum failed: %v", err)
	}
	if !math.IsNaN(result.Result) {
		t.Errorf("expected NaN result, got %v", result.Result)
	}
}

// TestGuardedSum_Timeout drives the guard with a tiny budget and a slow add
// to exercise the timeout reporting path.
func TestGuardedSum_Timeout(t *testing.T) {
	tk := newTestToolkit()

	_, err := tk.guardedSum(context.Background(), 20*time.Millisecond, func() (SumResult, error) {
		time.Sleep(300 * time.Millisecond)
		return SumResult{Result: 1}, nil
	})
	if err == nil {
		t.Fatal("expected timeout error")
	}

	var timeoutErr *specialist.TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("expected *specialist.TimeoutError, got %T: %v", err, err)
	}
	if timeoutErr.Op != "compute_sum" {
		t.Errorf("expected op compute_sum, got %q", timeoutErr.Op)
	}
}

// TestGuardedSum_InternalError checks that unexpected failures are replaced
// by the generic sanitized message.
func TestGuardedSum_InternalError(t *testing.T) {
	tk := newTestToolkit()

	cause := errors.New("arithmetic unit on fire")
	_, err := tk.guardedSum(context.Background(), time.Second, func() (SumResult, error) {
		return SumResult{}, cause
	})
	if err == nil {
		t.Fatal("expected error")
	}

	var internalErr *specialist.InternalError
	if !errors.As(err, &internalErr) {
		t.Fatalf("expected *specialist.InternalError, got %T: %v", err, err)
	}
	want := "internal_error: failed to compute sum"
	if err.Error() != want {
		t.Errorf("caller-visible message = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be preserved for diagnostics")
	}
}

func TestRunGuarded_Passthrough(t *testing.T) {
	got, err := runGuarded(context.Background(), time.Second, func() (int, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("runGuarded failed: %v", err)
	}
	if got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
}

// newSession registers the toolkit on a fresh server and connects an
// in-memory MCP client, so calls below cross the SDK's validation boundary.
func newSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	srv := specialist.NewServer(&mcp.Implementation{Name: "test", Version: "v0.0.1"},
		&specialist.Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	newTestToolkit().Register(srv)

	_, clientSession, err := srv.InMemorySession(context.Background())
	if err != nil {
		t.Fatalf("InMemorySession failed: %v", err)
	}
	t.Cleanup(func() { _ = clientSession.Close() })
	return clientSession
}

func TestRegister_ToolNames(t *testing.T) {
	srv := specialist.NewServer(&mcp.Implementation{Name: "test", Version: "v0.0.1"}, nil)
	newTestToolkit().Register(srv)

	for _, name := range []string{"health_check", "echo_text", "compute_sum"} {
		if !srv.HasTool(name) {
			t.Errorf("expected tool %q to be registered", name)
		}
	}
	if srv.ToolCount() != 3 {
		t.Errorf("expected 3 tools, got %d", srv.ToolCount())
	}
}

func TestHealthCheck_ViaSession(t *testing.T) {
	session := newSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "health_check",
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}

	text := result.Content[0].(*mcp.TextContent).Text
	var out HealthCheckResult
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatalf("unmarshaling result: %v", err)
	}
	if out.Status != "ok" {
		t.Errorf("expected status ok, got %q", out.Status)
	}
}

// TestHealthCheck_RejectsExtraArguments checks that undeclared arguments fail
// validation at the dispatch boundary instead of being silently accepted.
func TestHealthCheck_RejectsExtraArguments(t *testing.T) {
	session := newSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "health_check",
		Arguments: map[string]any{"bogus": true},
	})
	if err == nil && !result.IsError {
		t.Error("expected extra arguments to be rejected")
	}
}

// TestComputeSum_RejectsNonNumeric checks that a type mismatch fails
// validation before the arithmetic runs.
func TestComputeSum_RejectsNonNumeric(t *testing.T) {
	session := newSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "compute_sum",
		Arguments: map[string]any{"a": "x", "b": 1},
	})
	if err == nil && !result.IsError {
		t.Error("expected non-numeric argument to be rejected")
	}
}

// TestComputeSum_RejectsMissingField checks that required fields are enforced
// at the dispatch boundary.
func TestComputeSum_RejectsMissingField(t *testing.T) {
	session := newSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "compute_sum",
		Arguments: map[string]any{"a": 1},
	})
	if err == nil && !result.IsError {
		t.Error("expected missing required field to be rejected")
	}
}

// TestComputeSum_LibraryModeSkipsValidation pins the documented difference
// between the two dispatch paths: library-mode CallTool only unmarshals, so a
// missing addend becomes its zero value, while a session call crossing the
// SDK's validation boundary rejects the same arguments.
func TestComputeSum_LibraryModeSkipsValidation(t *testing.T) {
	srv := specialist.NewServer(&mcp.Implementation{Name: "test", Version: "v0.0.1"},
		&specialist.Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	newTestToolkit().Register(srv)

	result, err := srv.CallTool(context.Background(), "compute_sum", map[string]any{"a": 1})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}
	var out SumResult
	if err := json.Unmarshal([]byte(result.Content[0].(*mcp.TextContent).Text), &out); err != nil {
		t.Fatalf("unmarshaling result: %v", err)
	}
	if out.Result != 1 {
		t.Errorf("expected missing addend to default to zero (result 1), got %v", out.Result)
	}
}

func TestComputeSum_ViaSession(t *testing.T) {
	session := newSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "compute_sum",
		Arguments: map[string]any{"a": 2.5, "b": 3.5},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}

	text := result.Content[0].(*mcp.TextContent).Text
	var out SumResult
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatalf("unmarshaling result: %v", err)
	}
	if out.Result != 6.0 {
		t.Errorf("expected 6.0, got %v", out.Result)
	}
}

// TestConcurrentCallsMatchSequential interleaves calls to all three tools on
// one session and checks each result against its sequential expectation.
// Handlers share no mutable state, so interleaving must not change outcomes.
func TestConcurrentCallsMatchSequential(t *testing.T) {
	session := newSession(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(3)

		go func(i int) {
			defer wg.Done()
			result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "health_check"})
			if err != nil || result.IsError {
				t.Errorf("health_check %d failed: %v", i, err)
			}
		}(i)

		go func(i int) {
			defer wg.Done()
			msg := fmt.Sprintf("message-%d", i)
			result, err := session.CallTool(ctx, &mcp.CallToolParams{
				Name:      "echo_text",
				Arguments: map[string]any{"text": msg},
			})
			if err != nil || result.IsError {
				t.Errorf("echo_text %d failed: %v", i, err)
				return
			}
			var out EchoResult
			if err := json.Unmarshal([]byte(result.Content[0].(*mcp.TextContent).Text), &out); err != nil {
				t.Errorf("echo_text %d: unmarshaling: %v", i, err)
				return
			}
			if out.Text != msg {
				t.Errorf("echo_text %d = %q, want %q", i, out.Text, msg)
			}
		}(i)

		go func(i int) {
			defer wg.Done()
			result, err := session.CallTool(ctx, &mcp.CallToolParams{
				Name:      "compute_sum",
				Arguments: map[string]any{"a": float64(i), "b": 0.5},
			})
			if err != nil || result.IsError {
				t.Errorf("compute_sum %d failed: %v", i, err)
				return
			}
			var out SumResult
			if err := json.Unmarshal([]byte(result.Content[0].(*mcp.TextContent).Text), &out); err != nil {
				t.Errorf("compute_sum %d: unmarshaling: %v", i, err)
				return
			}
			if want := float64(i) + 0.5; out.Result != want {
				t.Errorf("compute_sum %d = %v, want %v", i, out.Result, want)
			}
		}(i)
	}
	wg.Wait()
}
