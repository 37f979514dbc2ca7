// Package adapter provides transport-layer access to the campus-market
// server for client tooling.
//
// The primary abstraction is [APIClient], which decouples callers from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPAPIClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/campusmarket/campus-market/models"
)

// APIClient defines transport-agnostic communication with the campus-market
// server. Implementations are responsible for serialisation, bearer token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type APIClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Signup registers a new account. No token is issued; call Login next.
	Signup(ctx context.Context, req models.SignupRequest) error

	// Login authenticates by PRN and password. On success it stores the
	// returned bearer token via SetToken and returns the public projection
	// of the authenticated user.
	Login(ctx context.Context, req models.LoginRequest) (models.UserProfile, error)

	// Dashboard probes the session and returns the server's welcome message.
	Dashboard(ctx context.Context) (string, error)

	// AddItem creates a marketplace listing owned by the logged-in user.
	AddItem(ctx context.Context, req models.AddItemRequest) error

	// ListItems fetches all marketplace listings.
	ListItems(ctx context.Context) ([]models.ItemListing, error)

	// DeleteItem removes a listing owned by the logged-in user.
	DeleteItem(ctx context.Context, itemID int64) error

	// Profile fetches the public profile of any registered user.
	Profile(ctx context.Context, userID int64) (models.UserProfile, error)
}
