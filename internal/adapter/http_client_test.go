package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campusmarket/campus-market/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestHTTPAPIClient_Login_StoresToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "123456789012", req.PRN)

		writeJSON(t, w, http.StatusOK, models.LoginResponse{
			Message: "Login successful",
			Token:   "signed.jwt.token",
			User:    models.UserProfile{UserID: 42, PRN: req.PRN, Name: "Asha Rao"},
		})
	})

	profile, err := client.Login(context.Background(), models.LoginRequest{PRN: "123456789012", Password: "hunter2!"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), profile.UserID)
	assert.Equal(t, "signed.jwt.token", client.Token())
}

func TestHTTPAPIClient_Login_BadRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.MessageResponse{Message: "Invalid password"})
	})

	_, err := client.Login(context.Background(), models.LoginRequest{PRN: "123456789012", Password: "nope"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Invalid password")
	assert.Empty(t, client.Token())
}

func TestHTTPAPIClient_AuthedRequestsCarryBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Welcome to your dashboard"})
	})
	client.SetToken("signed.jwt.token")

	msg, err := client.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Welcome to your dashboard", msg)
	assert.Equal(t, "Bearer signed.jwt.token", gotAuth)
}

func TestHTTPAPIClient_NoToken_NoAuthorizationHeader(t *testing.T) {
	var sawHeader bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		sawHeader = r.Header.Get("Authorization") != ""
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "Access denied. No token provided."})
	})

	_, err := client.Dashboard(context.Background())

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, sawHeader)
}

func TestHTTPAPIClient_ListItems(t *testing.T) {
	listings := []models.ItemListing{
		{ID: 1, Title: "Calculus textbook", Price: 350, Seller: "Asha Rao", SellerID: 42},
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/marketplace", r.URL.Path)
		writeJSON(t, w, http.StatusOK, listings)
	})
	client.SetToken("t")

	got, err := client.ListItems(context.Background())

	require.NoError(t, err)
	assert.Equal(t, listings, got)
}

func TestHTTPAPIClient_DeleteItem_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "not owner", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodDelete, r.Method)
				require.Equal(t, "/marketplace/5", r.URL.Path)
				writeJSON(t, w, tt.status, models.MessageResponse{Message: "nope"})
			})
			client.SetToken("t")

			err := client.DeleteItem(context.Background(), 5)

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPAPIClient_Profile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/42", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.UserProfile{UserID: 42, Name: "Asha Rao"})
	})
	client.SetToken("t")

	profile, err := client.Profile(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", profile.Name)
}
