package service

import (
	"context"

	"github.com/campusmarket/campus-market/models"
)

// AuthService verifies student identity, manages accounts, and owns the
// session token lifecycle.
type AuthService interface {
	// Signup validates the request against the student roster and creates a
	// new account. No token is issued at signup; the caller must log in.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)

	// Login authenticates by PRN and password and returns the account.
	Login(ctx context.Context, prn, password string) (models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// UserByID returns the account with the given identifier.
	UserByID(ctx context.Context, userID int64) (models.User, error)
}

// MarketplaceService manages listings and enforces ownership on mutations.
type MarketplaceService interface {
	// AddItem creates a listing owned by sellerID. The seller always comes
	// from the verified caller identity, never from client input.
	AddItem(ctx context.Context, sellerID int64, req models.AddItemRequest) (models.MarketplaceItem, error)

	// ListItems returns every listing joined with its seller's display name.
	ListItems(ctx context.Context) ([]models.ItemListing, error)

	// DeleteItem removes the listing only when callerID owns it.
	DeleteItem(ctx context.Context, itemID, callerID int64) error
}
