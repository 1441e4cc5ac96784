// Copyright 2025 The mcp-specialist authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import "fmt"

// Exit codes returned by the mcp-specialist binary.
const (
	exitRuntime = 1 // transport or serve failure
	exitConfig  = 2 // invalid environment configuration; no transport started
)

// ExitError is an error carrying a specific process exit code. Cobra's RunE
// returns it to signal the desired code to main.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// exitError creates an ExitError with the given code and formatted message.
func exitError(code int, format string, args ...any) *ExitError {
	return &ExitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
