// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and other
// common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key used to store the authenticated caller's identity
// in the context. Used together with CallerFromContext for type-safe
// retrieval of the caller from context.Context.
var CallerCtxKey = contextKey("caller")

// Caller is the verified identity of an authenticated request, decoded from
// the session token by the auth middleware.
type Caller struct {
	UserID int64
	PRN    string
}

// WithCaller returns a copy of ctx carrying the given caller identity.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, CallerCtxKey, caller)
}

// CallerFromContext retrieves the authenticated caller from the context.
//
// Returns the caller and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func CallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(Caller)
	return caller, ok
}
