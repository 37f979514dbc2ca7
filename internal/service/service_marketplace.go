package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusmarket/campus-market/internal/logger"
	"github.com/campusmarket/campus-market/internal/store"
	"github.com/campusmarket/campus-market/models"
)

// marketplaceService is the concrete implementation of MarketplaceService.
type marketplaceService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

// NewMarketplaceService constructs a MarketplaceService backed by the given
// item repository.
func NewMarketplaceService(itemRepository store.ItemRepository, logger *logger.Logger) MarketplaceService {
	return &marketplaceService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// AddItem creates a marketplace listing owned by sellerID.
//
// The seller is always the authenticated caller; any seller identity in the
// request body is ignored upstream and never reaches this method. Title and
// a positive price are required.
func (m *marketplaceService) AddItem(ctx context.Context, sellerID int64, req models.AddItemRequest) (models.MarketplaceItem, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" || req.Price <= 0 {
		log.Error().Int64("seller_id", sellerID).Msg("missing required item fields")
		return models.MarketplaceItem{}, ErrMissingItemFields
	}

	createdItem, err := m.itemRepository.CreateItem(ctx, models.MarketplaceItem{
		SellerID:    sellerID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		log.Err(err).Int64("seller_id", sellerID).Msg("item creation ended with error")
		return models.MarketplaceItem{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return createdItem, nil
}

// ListItems returns all marketplace listings with seller names attached,
// ordered oldest first. The result is visible to any authenticated caller.
func (m *marketplaceService) ListItems(ctx context.Context) ([]models.ItemListing, error) {
	log := logger.FromContext(ctx)

	listings, err := m.itemRepository.ListItems(ctx)
	if err != nil {
		log.Err(err).Msg("item listing ended with error")
		return nil, fmt.Errorf("item listing ended with error: %w", err)
	}

	return listings, nil
}

// DeleteItem removes the listing with the given id if callerID owns it.
//
// A missing item and a foreign item produce distinct errors so the handler
// can answer 404 and 403 respectively:
//   - store.ErrItemNotFound when no listing has that id.
//   - store.ErrNotItemOwner when the listing belongs to another seller.
//
// The existence check and the owner-conditional delete are separate
// statements; the delete itself is atomic, so a caller can never remove a
// listing that another seller owns.
func (m *marketplaceService) DeleteItem(ctx context.Context, itemID, callerID int64) error {
	log := logger.FromContext(ctx)

	foundItem, err := m.itemRepository.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			log.Err(err).Int64("item_id", itemID).Msg("item not found")
			return err
		}
		log.Err(err).Int64("item_id", itemID).Msg("item search ended with error")
		return fmt.Errorf("item search ended with error: %w", err)
	}

	if foundItem.SellerID != callerID {
		log.Error().Int64("item_id", itemID).Int64("caller_id", callerID).Msg("delete attempt by non-owner")
		return store.ErrNotItemOwner
	}

	if err = m.itemRepository.DeleteOwnedItem(ctx, itemID, callerID); err != nil {
		if errors.Is(err, store.ErrNotItemOwner) {
			// The item was deleted or re-owned between the check and the
			// delete. Report it as gone.
			return store.ErrItemNotFound
		}
		log.Err(err).Int64("item_id", itemID).Msg("item deletion ended with error")
		return fmt.Errorf("item deletion ended with error: %w", err)
	}

	return nil
}
