package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns the resty implementation of [ServerAdapter]
// for cfg.HTTPAddress. A bare host:port is treated as http.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)
	return a, nil
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

func (h *httpServerAdapter) Create(ctx context.Context, req models.CreateRequest) (models.CreateResponse, error) {
	return doJSON[models.CreateResponse](h.authedRequest(ctx).SetBody(req), "POST", "/api/wallet/create")
}

func (h *httpServerAdapter) Open(ctx context.Context, req models.OpenRequest) (models.OpenResponse, error) {
	return doJSON[models.OpenResponse](h.authedRequest(ctx).SetBody(req), "POST", "/api/wallet/open")
}

func (h *httpServerAdapter) Restore(ctx context.Context, req models.RestoreRequest) (models.OpenResponse, error) {
	return doJSON[models.OpenResponse](h.authedRequest(ctx).SetBody(req), "POST", "/api/wallet/restore")
}

func (h *httpServerAdapter) Close(ctx context.Context) (models.CloseResponse, error) {
	return doJSON[models.CloseResponse](h.authedRequest(ctx), "POST", "/api/wallet/close")
}

func (h *httpServerAdapter) Destroy(ctx context.Context, req models.DestroyRequest) (models.DestroyResponse, error) {
	return doJSON[models.DestroyResponse](h.authedRequest(ctx).SetBody(req), "POST", "/api/wallet/destroy")
}

func (h *httpServerAdapter) Send(ctx context.Context, req models.SendRequest) (models.SendResponse, error) {
	return doJSON[models.SendResponse](h.authedRequest(ctx).SetBody(req), "POST", "/api/wallet/send")
}

func (h *httpServerAdapter) Status(ctx context.Context) (models.StatusResponse, error) {
	return doJSON[models.StatusResponse](h.authedRequest(ctx), "GET", "/api/wallet/status")
}

func (h *httpServerAdapter) Accounts(ctx context.Context) (models.AccountsResponse, error) {
	return doJSON[models.AccountsResponse](h.authedRequest(ctx), "GET", "/api/wallet/accounts")
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	return doJSON[models.VersionResponse](h.client.R().SetContext(ctx), "GET", "/api/version/")
}

func (h *httpServerAdapter) Shutdown() error {
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func doJSON[T any](req *resty.Request, method, path string) (T, error) {
	var out T

	resp, err := req.Execute(method, path)
	if err != nil {
		return out, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", path, err)
	}
	return out, nil
}
