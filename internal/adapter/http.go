package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/hefin/internal/config"
	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/utils"
	"github.com/MKhiriev/hefin/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

type contactResponse struct {
	models.Response
	ID string `json:"id"`
}

type calculationResponse[T any] struct {
	Success      bool   `json:"success"`
	Results      T      `json:"results"`
	CalculatedAt string `json:"calculatedAt"`
}

type authResponse struct {
	models.Response
	models.AuthResult
}

type profileResponse struct {
	models.Response
	User models.UserProfile `json:"user"`
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter]
// for the base URL in adapterCfg.ServerURL. A non-empty appCfg.HashKey signs
// every request body with the HashSHA256 header.
func NewHTTPServerAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Health GETs /api/health.
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/api/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	return status, nil
}

// Version GETs /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// SubmitContact POSTs the form to /api/contact.
func (h *httpServerAdapter) SubmitContact(ctx context.Context, req models.ContactRequest) (string, error) {
	var result contactResponse

	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return "", err
	}
	resp, err := r.SetResult(&result).Post("/api/contact")
	if err != nil {
		return "", fmt.Errorf("contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().Str("contact_id", result.ID).Msg("contact submitted")
	return result.ID, nil
}

// Financing POSTs the inputs to /api/calculate.
func (h *httpServerAdapter) Financing(ctx context.Context, req models.FinancingRequest) (models.FinancingResults, error) {
	return calculate[models.FinancingResults](ctx, h, "/api/calculate", req)
}

// HSA POSTs the inputs to /api/calculators/hsa.
func (h *httpServerAdapter) HSA(ctx context.Context, req models.HSARequest) (models.HSAResult, error) {
	return calculate[models.HSAResult](ctx, h, "/api/calculators/hsa", req)
}

func calculate[T any](ctx context.Context, h *httpServerAdapter, path string, body any) (T, error) {
	var result calculationResponse[T]

	r, err := h.jsonRequest(ctx, body)
	if err != nil {
		return result.Results, err
	}
	resp, err := r.SetResult(&result).Post(path)
	if err != nil {
		return result.Results, fmt.Errorf("calculation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result.Results, err
	}

	return result.Results, nil
}

// Login POSTs the credentials to /api/auth/login. The bearer token is taken
// from the Authorization response header, falling back to the body.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	var result authResponse

	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return models.AuthResult{}, err
	}
	resp, err := r.SetResult(&result).Post("/api/auth/login")
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}

	token := result.Token
	if header := resp.Header().Get("Authorization"); header != "" {
		token, err = utils.ParseBearerToken(header)
		if err != nil {
			return models.AuthResult{}, fmt.Errorf("login parse bearer token: %w", err)
		}
	}

	h.SetToken(token)
	result.AuthResult.Token = token
	return result.AuthResult, nil
}

// Me GETs /api/auth/me with the stored token.
func (h *httpServerAdapter) Me(ctx context.Context) (models.UserProfile, error) {
	if h.Token() == "" {
		return models.UserProfile{}, ErrNotAuthenticated
	}

	var result profileResponse
	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/api/auth/me")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	return result.User, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// jsonRequest encodes body up front so the exact bytes sent can be signed.
func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(utils.HashSHA256Header, utils.SignBody(payload, h.hashKey))
	}
	return req, nil
}
