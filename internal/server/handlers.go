package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/qdcalc/internal/calc"
	"github.com/agbru/qdcalc/internal/config"
	apperrors "github.com/agbru/qdcalc/internal/errors"
	"github.com/agbru/qdcalc/internal/logging"
	"github.com/agbru/qdcalc/internal/platform"
	"github.com/agbru/qdcalc/qd"
)

// EvalResponse is the body of a successful /v1/eval request.
type EvalResponse struct {
	Expr   string `json:"expr"`
	Value  string `json:"value"`
	Digits int    `json:"digits"`
	// Exact is the value in hexadecimal floating-point form.
	Exact qd.Real `json:"exact"`
	// Components are the four words, most significant first.
	Components [4]string `json:"components"`
}

// ConstantResponse describes one named constant.
type ConstantResponse struct {
	Name  string  `json:"name"`
	Value string  `json:"value"`
	Exact qd.Real `json:"exact"`
}

// HealthResponse is the body of /healthz.
type HealthResponse struct {
	Status   string `json:"status"`
	Strategy string `json:"strategy"`
	Profile  string `json:"profile"`
}

// ErrorResponse is the body of a failed request. Position is the byte
// offset of the offending token when the evaluator reports one.
type ErrorResponse struct {
	Error    string `json:"error"`
	Position *int   `json:"position,omitempty"`
}

type outputParams struct {
	digits int
	format string
}

// parseOutputParams reads the digits and format query parameters.
func (s *Server) parseOutputParams(r *http.Request) (outputParams, error) {
	p := outputParams{digits: qd.NDigits, format: "g"}
	q := r.URL.Query()
	if v := q.Get("digits"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > s.cfg.Security.MaxDigits {
			return p, apperrors.ValidationError{Field: "digits", Message: "must be an integer between 0 and " + strconv.Itoa(s.cfg.Security.MaxDigits)}
		}
		if n > 0 {
			p.digits = n
		}
	}
	if v := strings.ToLower(q.Get("format")); v != "" {
		if !slices.Contains(config.Formats, v) {
			return p, apperrors.ValidationError{Field: "format", Message: "must be one of e, f, g"}
		}
		p.format = v
	}
	return p, nil
}

func (p outputParams) text(x qd.Real) string {
	switch p.format {
	case "e":
		return x.Text('e', p.digits-1)
	case "f":
		return x.Text('f', p.digits)
	}
	return x.Text('g', p.digits)
}

func components(x qd.Real) [4]string {
	var out [4]string
	for i, w := range x.Vec4() {
		out[i] = strconv.FormatFloat(float64(w), 'x', -1, platform.WordBits)
	}
	return out
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	expr := r.URL.Query().Get("expr")
	if strings.TrimSpace(expr) == "" {
		s.writeError(w, apperrors.ValidationError{Field: "expr", Message: "is required"})
		return
	}
	if len(expr) > s.cfg.Security.MaxExprLength {
		s.writeError(w, apperrors.ValidationError{Field: "expr", Message: "exceeds " + strconv.Itoa(s.cfg.Security.MaxExprLength) + " bytes"})
		return
	}
	params, err := s.parseOutputParams(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	_, span := tracer.Start(r.Context(), "server.eval")
	span.SetAttributes(attribute.Int("eval.expr_len", len(expr)))
	start := time.Now()
	x, err := calc.Eval(expr)
	elapsed := time.Since(start)
	s.metrics.ObserveEval(elapsed, err != nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		s.logger.Debug("eval rejected", logging.String("expr", expr), logging.Err(err))
		s.writeError(w, apperrors.EvalError{Expr: expr, Cause: err})
		return
	}
	span.End()

	s.logger.Debug("eval", logging.String("expr", expr), logging.Int("digits", params.digits),
		logging.Float64("seconds", elapsed.Seconds()))
	s.writeJSON(w, http.StatusOK, EvalResponse{
		Expr:       expr,
		Value:      params.text(x),
		Digits:     params.digits,
		Exact:      x,
		Components: components(x),
	})
}

func (s *Server) handleConstants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	params, err := s.parseOutputParams(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	names := calc.Constants()
	resp := make([]ConstantResponse, 0, len(names))
	for _, name := range names {
		c, _ := calc.Constant(name)
		resp = append(resp, ConstantResponse{Name: name, Value: params.text(c), Exact: c})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Strategy: qd.Strategy().String(),
		Profile:  platform.CurrentProfile().String(),
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, OPTIONS")
	s.logger.Debug("method not allowed", logging.String("method", r.Method), logging.String("path", r.URL.Path))
	s.writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method " + r.Method + " not allowed"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", err)
	}
}

// writeError reports err with the status apperrors.HTTPStatus assigns to it.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: err.Error()}
	var calcErr *calc.Error
	if errors.As(err, &calcErr) {
		pos := calcErr.Pos
		resp.Position = &pos
	}
	s.writeJSON(w, apperrors.HTTPStatus(err), resp)
}
