package store

import (
	"context"

	"github.com/campusmarket/campus-market/models"
)

// RosterRepository reads the official student roster. The roster is the
// authoritative eligibility list and is never written by this application.
type RosterRepository interface {
	// FindStudent returns the roster row matching student exactly on all
	// four fields (prn, name, course, year), or ErrNoStudentWasFound.
	FindStudent(ctx context.Context, student models.Student) (models.Student, error)
}

// UserRepository persists registered marketplace accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByPRN(ctx context.Context, prn string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ItemRepository persists marketplace listings.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.MarketplaceItem) (models.MarketplaceItem, error)
	ListItems(ctx context.Context) ([]models.ItemListing, error)
	FindItemByID(ctx context.Context, itemID int64) (models.MarketplaceItem, error)

	// DeleteOwnedItem removes the item only when sellerID matches the stored
	// owner; the predicate is evaluated atomically inside the DELETE.
	// Returns ErrNotItemOwner when the item exists but is owned by another user.
	DeleteOwnedItem(ctx context.Context, itemID, sellerID int64) error
}
