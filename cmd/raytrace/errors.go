// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
)

const (
	exitOK    = 0
	exitSolve = 1
	exitUsage = 2
)

// exitError carries the process exit code of a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &exitError{code: exitUsage, err: fmt.Errorf(format, args...)}
}

func solveError(err error) error {
	return &exitError{code: exitSolve, err: err}
}

// exitCode maps err to a process exit code. Errors raised by cobra itself
// (unknown flags, bad values) are usage errors.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	return exitUsage
}
