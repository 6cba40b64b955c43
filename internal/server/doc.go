// Package server exposes the quad-double evaluator over HTTP.
//
// Endpoints:
//
//	GET /v1/eval?expr=...&digits=...&format=...   evaluate an RPN expression
//	GET /v1/constants                             list the named constants
//	GET /healthz                                  liveness and arithmetic build
//	GET /metrics                                  Prometheus exposition
//
// Every handler is wrapped by the security middleware (security headers and
// CORS) and the metrics middleware (request counters and the active request
// gauge). Responses are JSON. Exact values are carried as hexadecimal
// floating-point strings so clients can rebuild every component.
package server
