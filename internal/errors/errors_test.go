package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

// parseError stands in for the positioned errors of the expression parser.
type parseError struct{ pos int }

func (e *parseError) Error() string { return fmt.Sprintf("unexpected token at %d", e.pos) }

func TestErrorMessages(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config", NewConfigError("digits must be between 0 and %d, got %d", 64, 80), "digits must be between 0 and 64, got 80"},
		{"eval", EvalError{Expr: "1/0", Cause: errors.New("division by zero")}, `evaluating "1/0": division by zero`},
		{"timeout", TimeoutError{Operation: "accuracy study", Limit: 30 * time.Second}, `operation "accuracy study" timed out after 30s`},
		{"validation", ValidationError{Field: "format", Message: "must be one of e, f, g"}, `validation error for "format": must be one of e, f, g`},
		{"check", CheckError{Check: "tiny increment", Want: "[1 2^-95 0 0]", Got: "[1 0 0 0]"}, `check "tiny increment" failed: want [1 2^-95 0 0], got [1 0 0 0]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvalErrorKeepsPosition(t *testing.T) {
	t.Parallel()
	cause := &parseError{pos: 4}
	err := WrapError(EvalError{Expr: "2 + * 3", Cause: cause}, "request %d", 7)

	var pe *parseError
	if !errors.As(err, &pe) || pe.pos != 4 {
		t.Fatalf("errors.As did not reach the parser error through %v", err)
	}
	var ee EvalError
	if !errors.As(err, &ee) || ee.Expr != "2 + * 3" {
		t.Errorf("errors.As(EvalError) = %+v", ee)
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "serving on %s", ":8080") != nil {
		t.Error("WrapError(nil) should be nil")
	}
	err := WrapError(context.Canceled, "serving on %s", ":8080")
	if err.Error() != "serving on :8080: context canceled" {
		t.Errorf("message = %q", err.Error())
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("wrapped error lost its cause")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want bool
	}{
		{context.Canceled, true},
		{fmt.Errorf("study: %w", context.DeadlineExceeded), true},
		{TimeoutError{Operation: "eval", Limit: time.Second}, false},
		{errors.New("boom"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsContextError(tt.err); got != tt.want {
			t.Errorf("IsContextError(%v) = %t, want %t", tt.err, got, tt.want)
		}
	}
}

func TestClassification(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		err        error
		wantExit   int
		wantStatus int
	}{
		{"success", nil, ExitSuccess, http.StatusOK},
		{"config", NewConfigError("-tui requires accuracy mode"), ExitErrorConfig, http.StatusBadRequest},
		{"validation", ValidationError{Field: "expr", Message: "is required"}, ExitErrorConfig, http.StatusBadRequest},
		{"eval", EvalError{Expr: "sqrt(-1)", Cause: errors.New("domain")}, ExitErrorEval, http.StatusUnprocessableEntity},
		{"wrapped eval", fmt.Errorf("repl: %w", EvalError{Expr: "x"}), ExitErrorEval, http.StatusUnprocessableEntity},
		{"timeout", TimeoutError{Operation: "eval", Limit: time.Second}, ExitErrorTimeout, http.StatusGatewayTimeout},
		{"deadline", fmt.Errorf("study: %w", context.DeadlineExceeded), ExitErrorTimeout, http.StatusGatewayTimeout},
		{"canceled", context.Canceled, ExitErrorCanceled, http.StatusInternalServerError},
		{"check", CheckError{Check: "allocations"}, ExitErrorMismatch, http.StatusInternalServerError},
		{"generic", errors.New("disk full"), ExitErrorGeneric, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.wantExit {
				t.Errorf("ExitCodeFor = %d, want %d", got, tt.wantExit)
			}
			if got := HTTPStatus(tt.err); got != tt.wantStatus {
				t.Errorf("HTTPStatus = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}
