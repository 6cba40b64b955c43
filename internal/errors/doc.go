// Package apperrors defines the error classes of qdcalc: configuration,
// request validation, evaluation, timeouts and failed checks. Types that
// carry a cause implement Unwrap, so ExitCodeFor and HTTPStatus classify an
// error anywhere in a chain built with fmt.Errorf and %w.
package apperrors
