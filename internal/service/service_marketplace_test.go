package service

import (
	"context"
	"testing"

	"github.com/campusmarket/campus-market/internal/logger"
	"github.com/campusmarket/campus-market/internal/store"
	"github.com/campusmarket/campus-market/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.ItemRepository
// ─────────────────────────────────────────────

type mockItemRepository struct {
	createItemFn   func(ctx context.Context, item models.MarketplaceItem) (models.MarketplaceItem, error)
	listItemsFn    func(ctx context.Context) ([]models.ItemListing, error)
	findItemByIDFn func(ctx context.Context, itemID int64) (models.MarketplaceItem, error)
	deleteOwnedFn  func(ctx context.Context, itemID, sellerID int64) error
}

func (m *mockItemRepository) CreateItem(ctx context.Context, item models.MarketplaceItem) (models.MarketplaceItem, error) {
	if m.createItemFn != nil {
		return m.createItemFn(ctx, item)
	}
	return item, nil
}

func (m *mockItemRepository) ListItems(ctx context.Context) ([]models.ItemListing, error) {
	if m.listItemsFn != nil {
		return m.listItemsFn(ctx)
	}
	return nil, nil
}

func (m *mockItemRepository) FindItemByID(ctx context.Context, itemID int64) (models.MarketplaceItem, error) {
	if m.findItemByIDFn != nil {
		return m.findItemByIDFn(ctx, itemID)
	}
	return models.MarketplaceItem{}, store.ErrItemNotFound
}

func (m *mockItemRepository) DeleteOwnedItem(ctx context.Context, itemID, sellerID int64) error {
	if m.deleteOwnedFn != nil {
		return m.deleteOwnedFn(ctx, itemID, sellerID)
	}
	return nil
}

func newTestMarketplaceService(items *mockItemRepository) MarketplaceService {
	return NewMarketplaceService(items, logger.Nop())
}

func strPtr(s string) *string { return &s }

// ─────────────────────────────────────────────
// AddItem
// ─────────────────────────────────────────────

func TestMarketplaceService_AddItem_Success(t *testing.T) {
	items := &mockItemRepository{
		createItemFn: func(_ context.Context, item models.MarketplaceItem) (models.MarketplaceItem, error) {
			assert.Equal(t, int64(42), item.SellerID)
			item.ID = 5
			return item, nil
		},
	}
	svc := newTestMarketplaceService(items)

	created, err := svc.AddItem(context.Background(), 42, models.AddItemRequest{
		Title:       "Calculus textbook",
		Description: strPtr("Second edition, some highlighting"),
		Price:       350,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, int64(42), created.SellerID)
}

func TestMarketplaceService_AddItem_SellerAlwaysCaller(t *testing.T) {
	var stored models.MarketplaceItem
	items := &mockItemRepository{
		createItemFn: func(_ context.Context, item models.MarketplaceItem) (models.MarketplaceItem, error) {
			stored = item
			return item, nil
		},
	}
	svc := newTestMarketplaceService(items)

	_, err := svc.AddItem(context.Background(), 7, models.AddItemRequest{Title: "Desk lamp", Price: 120})

	require.NoError(t, err)
	assert.Equal(t, int64(7), stored.SellerID)
}

func TestMarketplaceService_AddItem_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  models.AddItemRequest
	}{
		{name: "no title", req: models.AddItemRequest{Price: 100}},
		{name: "no price", req: models.AddItemRequest{Title: "Desk lamp"}},
		{name: "negative price", req: models.AddItemRequest{Title: "Desk lamp", Price: -5}},
		{name: "empty", req: models.AddItemRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := &mockItemRepository{
				createItemFn: func(_ context.Context, _ models.MarketplaceItem) (models.MarketplaceItem, error) {
					t.Fatal("incomplete listings must never reach the store")
					return models.MarketplaceItem{}, nil
				},
			}
			svc := newTestMarketplaceService(items)

			_, err := svc.AddItem(context.Background(), 42, tt.req)

			require.ErrorIs(t, err, ErrMissingItemFields)
		})
	}
}

func TestMarketplaceService_AddItem_StoreError(t *testing.T) {
	items := &mockItemRepository{
		createItemFn: func(_ context.Context, _ models.MarketplaceItem) (models.MarketplaceItem, error) {
			return models.MarketplaceItem{}, errStore
		},
	}
	svc := newTestMarketplaceService(items)

	_, err := svc.AddItem(context.Background(), 42, models.AddItemRequest{Title: "Desk lamp", Price: 120})

	require.ErrorIs(t, err, errStore)
}

// ─────────────────────────────────────────────
// ListItems
// ─────────────────────────────────────────────

func TestMarketplaceService_ListItems(t *testing.T) {
	listings := []models.ItemListing{
		{ID: 1, Title: "Calculus textbook", Price: 350, Seller: "Asha Rao", SellerID: 42},
		{ID: 2, Title: "Desk lamp", Price: 120, Seller: "Dev Mehta", SellerID: 7},
	}
	items := &mockItemRepository{
		listItemsFn: func(_ context.Context) ([]models.ItemListing, error) {
			return listings, nil
		},
	}
	svc := newTestMarketplaceService(items)

	got, err := svc.ListItems(context.Background())

	require.NoError(t, err)
	assert.Equal(t, listings, got)
}

func TestMarketplaceService_ListItems_StoreError(t *testing.T) {
	items := &mockItemRepository{
		listItemsFn: func(_ context.Context) ([]models.ItemListing, error) {
			return nil, errStore
		},
	}
	svc := newTestMarketplaceService(items)

	_, err := svc.ListItems(context.Background())

	require.ErrorIs(t, err, errStore)
}

// ─────────────────────────────────────────────
// DeleteItem
// ─────────────────────────────────────────────

func TestMarketplaceService_DeleteItem_Owner(t *testing.T) {
	deleted := false
	items := &mockItemRepository{
		findItemByIDFn: func(_ context.Context, itemID int64) (models.MarketplaceItem, error) {
			return models.MarketplaceItem{ID: itemID, SellerID: 42}, nil
		},
		deleteOwnedFn: func(_ context.Context, itemID, sellerID int64) error {
			assert.Equal(t, int64(5), itemID)
			assert.Equal(t, int64(42), sellerID)
			deleted = true
			return nil
		},
	}
	svc := newTestMarketplaceService(items)

	err := svc.DeleteItem(context.Background(), 5, 42)

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestMarketplaceService_DeleteItem_NotFound(t *testing.T) {
	svc := newTestMarketplaceService(&mockItemRepository{})

	err := svc.DeleteItem(context.Background(), 5, 42)

	require.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestMarketplaceService_DeleteItem_NotOwner(t *testing.T) {
	items := &mockItemRepository{
		findItemByIDFn: func(_ context.Context, itemID int64) (models.MarketplaceItem, error) {
			return models.MarketplaceItem{ID: itemID, SellerID: 7}, nil
		},
		deleteOwnedFn: func(_ context.Context, _, _ int64) error {
			t.Fatal("delete must never be issued for a non-owner")
			return nil
		},
	}
	svc := newTestMarketplaceService(items)

	err := svc.DeleteItem(context.Background(), 5, 42)

	require.ErrorIs(t, err, store.ErrNotItemOwner)
}

func TestMarketplaceService_DeleteItem_RemovedBetweenCheckAndDelete(t *testing.T) {
	items := &mockItemRepository{
		findItemByIDFn: func(_ context.Context, itemID int64) (models.MarketplaceItem, error) {
			return models.MarketplaceItem{ID: itemID, SellerID: 42}, nil
		},
		deleteOwnedFn: func(_ context.Context, _, _ int64) error {
			return store.ErrNotItemOwner
		},
	}
	svc := newTestMarketplaceService(items)

	err := svc.DeleteItem(context.Background(), 5, 42)

	require.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestMarketplaceService_DeleteItem_StoreError(t *testing.T) {
	items := &mockItemRepository{
		findItemByIDFn: func(_ context.Context, itemID int64) (models.MarketplaceItem, error) {
			return models.MarketplaceItem{ID: itemID, SellerID: 42}, nil
		},
		deleteOwnedFn: func(_ context.Context, _, _ int64) error {
			return errStore
		},
	}
	svc := newTestMarketplaceService(items)

	err := svc.DeleteItem(context.Background(), 5, 42)

	require.ErrorIs(t, err, errStore)
}
