package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. Callers use
// [errors.Is] for transport-agnostic error handling.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
)
