package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Process exit codes.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1
	ExitErrorTimeout  = 2
	ExitErrorMismatch = 3 // failed self-test or accuracy regression
	ExitErrorConfig   = 4
	ExitErrorEval     = 5
	ExitErrorCanceled = 130 // SIGINT
)

// ConfigError reports invalid flags, environment values or a bad config file.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError formats a ConfigError.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// EvalError reports an expression that could not be evaluated. Cause is
// usually a *calc.Error carrying the byte offset of the fault.
type EvalError struct {
	Expr  string
	Cause error
}

func (e EvalError) Error() string {
	return fmt.Sprintf("evaluating %q: %v", e.Expr, e.Cause)
}

func (e EvalError) Unwrap() error { return e.Cause }

// TimeoutError reports an evaluation or study that outran its deadline.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError reports a bad request parameter.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// CheckError reports a self-test or accuracy check that did not hold.
type CheckError struct {
	Check string
	Want  string
	Got   string
}

func (e CheckError) Error() string {
	return fmt.Sprintf("check %q failed: want %s, got %s", e.Check, e.Want, e.Got)
}

// WrapError prefixes err with a formatted message, keeping it unwrappable.
// It returns nil for a nil err.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err stems from a canceled or expired context.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error chain to the process exit code that reports it.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case isAny[ConfigError](err), isAny[ValidationError](err):
		return ExitErrorConfig
	case isAny[TimeoutError](err), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case isAny[EvalError](err):
		return ExitErrorEval
	case isAny[CheckError](err):
		return ExitErrorMismatch
	}
	return ExitErrorGeneric
}

// HTTPStatus maps an error chain to the status the server answers with.
// Bad parameters are the client's fault; a well-formed expression that does
// not evaluate is unprocessable.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case isAny[ValidationError](err), isAny[ConfigError](err):
		return http.StatusBadRequest
	case isAny[EvalError](err):
		return http.StatusUnprocessableEntity
	case isAny[TimeoutError](err), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func isAny[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
