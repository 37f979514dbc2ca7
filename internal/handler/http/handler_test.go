package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/campusmarket/campus-market/internal/logger"
	"github.com/campusmarket/campus-market/internal/service"
	"github.com/campusmarket/campus-market/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn      func(ctx context.Context, req models.SignupRequest) (models.User, error)
	loginFn       func(ctx context.Context, prn, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	userByIDFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, prn, password string) (models.User, error) {
	return m.loginFn(ctx, prn, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) UserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.userByIDFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Mock MarketplaceService
// ─────────────────────────────────────────────

type mockMarketplaceService struct {
	addItemFn    func(ctx context.Context, sellerID int64, req models.AddItemRequest) (models.MarketplaceItem, error)
	listItemsFn  func(ctx context.Context) ([]models.ItemListing, error)
	deleteItemFn func(ctx context.Context, itemID, callerID int64) error
}

func (m *mockMarketplaceService) AddItem(ctx context.Context, sellerID int64, req models.AddItemRequest) (models.MarketplaceItem, error) {
	return m.addItemFn(ctx, sellerID, req)
}

func (m *mockMarketplaceService) ListItems(ctx context.Context) ([]models.ItemListing, error) {
	return m.listItemsFn(ctx)
}

func (m *mockMarketplaceService) DeleteItem(ctx context.Context, itemID, callerID int64) error {
	return m.deleteItemFn(ctx, itemID, callerID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the given service mocks.
// Nil mocks are allowed for tests that never reach the corresponding service.
func newTestHandler(t *testing.T, auth service.AuthService, marketplace service.MarketplaceService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{
		AuthService:        auth,
		MarketplaceService: marketplace,
	}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeMessage extracts the "message" field from a JSON response body.
func decodeMessage(t *testing.T, body []byte) string {
	t.Helper()
	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Message
}
