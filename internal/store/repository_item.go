package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/campusmarket/campus-market/internal/logger"
	"github.com/campusmarket/campus-market/models"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
// All marketplace listing operations run against the single
// "marketplace_items" table.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem persists a new listing and returns it with server-assigned
// fields (ID, CreatedAt). The SellerID on the input must already be the
// verified caller identity; this layer stores it verbatim.
func (r *itemRepository) CreateItem(ctx context.Context, item models.MarketplaceItem) (models.MarketplaceItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateItemQuery(item.SellerID, item.Title, item.Description, item.Price, item.ImageURL)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("failed to build insert query")
		return models.MarketplaceItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Int64("seller_id", item.SellerID).Msg("failed to insert item")
		return models.MarketplaceItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var created models.MarketplaceItem
	if err = row.Scan(&created.ID, &created.SellerID, &created.Title, &created.Description, &created.Price, &created.ImageURL, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: scanning error")
		return models.MarketplaceItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// ListItems retrieves every listing joined with its seller's display name.
// The result is a full scan ordered by item ID; the API exposes no
// pagination or filtering.
func (r *itemRepository) ListItems(ctx context.Context) ([]models.ItemListing, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("failed to build listing query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("failed to execute listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	listings := make([]models.ItemListing, 0, 50)

	for rows.Next() {
		var listing models.ItemListing

		if scanErr := rows.Scan(&listing.ID, &listing.Title, &listing.Description, &listing.Price, &listing.Seller, &listing.SellerID); scanErr != nil {
			log.Err(scanErr).Str("func", "*itemRepository.ListItems").Msg("failed to scan listing row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		listings = append(listings, listing)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*itemRepository.ListItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return listings, nil
}

// FindItemByID retrieves a single listing by its identifier.
//
// Returns [ErrItemNotFound] when no row matches.
func (r *itemRepository) FindItemByID(ctx context.Context, itemID int64) (models.MarketplaceItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindItemQuery(itemID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.FindItemByID").Msg("failed to build lookup query")
		return models.MarketplaceItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.MarketplaceItem
	row := r.db.QueryRowContext(ctx, query, args...)

	if err = row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MarketplaceItem{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.FindItemByID").Int64("item_id", itemID).Msg("failed to execute lookup query")
		return models.MarketplaceItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = row.Scan(&item.ID, &item.SellerID, &item.Title, &item.Description, &item.Price, &item.ImageURL, &item.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MarketplaceItem{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "*itemRepository.FindItemByID").Msg("error: scanning error")
		return models.MarketplaceItem{}, err
	}

	return item, nil
}

// DeleteOwnedItem removes the listing identified by itemID only when it is
// owned by sellerID. Ownership is evaluated atomically inside the DELETE's
// WHERE clause, so a concurrent owner change cannot slip through between a
// check and the write.
//
// Returns [ErrNotItemOwner] when the statement affects zero rows.
func (r *itemRepository) DeleteOwnedItem(ctx context.Context, itemID, sellerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOwnedItemQuery(itemID, sellerID)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteOwnedItem").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*itemRepository.DeleteOwnedItem").
			Int64("item_id", itemID).
			Int64("seller_id", sellerID).
			Msg("failed to execute conditional delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteOwnedItem").Msg("failed to read affected rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected == 0 {
		return ErrNotItemOwner
	}

	return nil
}
