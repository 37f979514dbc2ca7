package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/campusmarket/campus-market/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPAPIClient(cfg HTTPClientConfig) APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Signup(ctx context.Context, req models.SignupRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.UserProfile, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/login")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	var loginResp models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &loginResp); err != nil {
		return models.UserProfile{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(loginResp.Token)
	return loginResp.User, nil
}

func (h *httpAPIClient) Dashboard(ctx context.Context) (string, error) {
	resp, err := h.authedRequest(ctx).Get("/dashboard")
	if err != nil {
		return "", fmt.Errorf("dashboard request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var msg models.MessageResponse
	if err = json.Unmarshal(resp.Body(), &msg); err != nil {
		return "", fmt.Errorf("decode dashboard response: %w", err)
	}

	return msg.Message, nil
}

func (h *httpAPIClient) AddItem(ctx context.Context, req models.AddItemRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/marketplace")
	if err != nil {
		return fmt.Errorf("add item request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) ListItems(ctx context.Context) ([]models.ItemListing, error) {
	resp, err := h.authedRequest(ctx).Get("/marketplace")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var listings []models.ItemListing
	if err = json.Unmarshal(resp.Body(), &listings); err != nil {
		return nil, fmt.Errorf("decode list items response: %w", err)
	}

	return listings, nil
}

func (h *httpAPIClient) DeleteItem(ctx context.Context, itemID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/marketplace/" + strconv.FormatInt(itemID, 10))
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) Profile(ctx context.Context, userID int64) (models.UserProfile, error) {
	resp, err := h.authedRequest(ctx).
		Get("/users/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	var profile models.UserProfile
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("decode profile response: %w", err)
	}

	return profile, nil
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
