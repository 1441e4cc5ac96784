// Copyright 2025 The mcp-specialist authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package specialist

import (
	"errors"
	"fmt"
	"time"
)

// Library-mode lookup failures.
var (
	// ErrToolNotFound is returned when calling a tool that is not registered.
	ErrToolNotFound = errors.New("tool not found")

	// ErrPromptNotFound is returned when getting a prompt that is not registered.
	ErrPromptNotFound = errors.New("prompt not found")

	// ErrResourceNotFound is returned when reading a resource that is not registered.
	ErrResourceNotFound = errors.New("resource not found")
)

// TimeoutError reports that a tool's bounded-duration guard elapsed before
// the operation completed. The message is part of the tool contract and is
// surfaced to the caller verbatim.
type TimeoutError struct {
	Op     string        // tool name, e.g. "compute_sum"
	Budget time.Duration // wall-clock budget that was exceeded
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout: operation exceeded %.0f seconds", e.Budget.Seconds())
}

// InternalError reports an unexpected failure inside a tool handler. Error
// returns a generic sanitized message; the underlying cause is available via
// Unwrap for diagnostics but is never rendered into the caller-visible string.
type InternalError struct {
	Op  string // short verb phrase, e.g. "compute sum"
	Err error  // underlying cause, logged but not surfaced
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal_error: failed to %s", e.Op)
}

func (e *InternalError) Unwrap() error { return e.Err }

// ConfigError reports an invalid environment configuration value. It is fatal
// at startup: no transport is started and the process exits non-zero.
type ConfigError struct {
	Name    string // environment variable name
	Value   string // offending value
	Message string // what was expected
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Name, e.Value, e.Message)
}
