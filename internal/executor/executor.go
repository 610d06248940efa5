// Package executor runs local route executables and enforces the structured
// output contract on their stdout.
package executor

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/conneroisu/hop/internal/errors"
	"github.com/conneroisu/hop/internal/logging"
)

// ActionType discriminates the two result shapes a route executable may
// produce.
type ActionType int

const (
	// ActionRedirect instructs the caller to redirect to the value.
	ActionRedirect ActionType = iota
	// ActionBody instructs the caller to return the value as the response
	// body.
	ActionBody
)

// Action is the structured result of a route executable.
type Action struct {
	Type  ActionType
	Value string
}

// Executor invokes local route programs. Run blocks until the child process
// exits; there is deliberately no timeout or cancellation, so callers must
// invoke it from a context that tolerates blocking.
type Executor struct {
	logger logging.Logger
}

// New creates an executor.
func New(logger logging.Logger) *Executor {
	if logger == nil {
		logger = logging.NewLogger(nil)
	}
	return &Executor{logger: logger.WithComponent("executor")}
}

// Run canonicalizes path, invokes it with args split on single spaces, waits
// for it to exit, and enforces the JSON output contract.
//
// A path that cannot be canonicalized or a process that cannot be spawned
// yields an I/O error. A non-zero exit yields a custom-program error carrying
// the process's stderr verbatim; its stdout is discarded. A zero exit with
// stdout not matching exactly one of {"redirect": s} or {"body": s} yields a
// parse error.
func (e *Executor) Run(path, args string) (Action, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return Action{}, errors.NewIOError("canonicalizing executable path", err).WithPath(path)
	}
	resolved, err = filepath.Abs(resolved)
	if err != nil {
		return Action{}, errors.NewIOError("canonicalizing executable path", err).WithPath(path)
	}

	var argv []string
	if args != "" {
		argv = strings.Split(args, " ")
	}

	cmd := exec.Command(resolved, argv...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			e.logger.Error(context.Background(), err,
				"route program exited non-zero",
				"path", resolved,
				"exit_code", exitErr.ExitCode())
			return Action{}, errors.NewCustomProgramError(stderr.String())
		}
		return Action{}, errors.NewIOError("running route program", err).WithPath(resolved)
	}

	return parseAction(stdout.Bytes())
}

// parseAction decodes the executable's stdout. The output must be valid
// UTF-8 holding a single JSON object with exactly one of "redirect" or
// "body" as a string; anything else is a parse error.
func parseAction(output []byte) (Action, error) {
	if !utf8.Valid(output) {
		return Action{}, errors.NewParseError("route program output is not valid UTF-8", nil)
	}

	var result struct {
		Redirect *string `json:"redirect"`
		Body     *string `json:"body"`
	}

	dec := json.NewDecoder(bytes.NewReader(output))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return Action{}, errors.NewParseError("decoding route program output", err)
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); err != io.EOF {
		return Action{}, errors.NewParseError("route program output has trailing data", nil)
	}

	switch {
	case result.Redirect != nil && result.Body != nil:
		return Action{}, errors.NewParseError(`route program output has both "redirect" and "body"`, nil)
	case result.Redirect != nil:
		return Action{Type: ActionRedirect, Value: *result.Redirect}, nil
	case result.Body != nil:
		return Action{Type: ActionBody, Value: *result.Body}, nil
	default:
		return Action{}, errors.NewParseError(`route program output has neither "redirect" nor "body"`, nil)
	}
}
