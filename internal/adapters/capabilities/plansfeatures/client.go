package plansfeatures

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"passaro-ok/internal/platform/httpclient"
)

var (
	ErrPlansNotConfigured = errors.New("plans-features client not configured")
	ErrPlansUnauthorized  = errors.New("plans-features unauthorized")
	ErrPlansUpstream      = errors.New("plans-features upstream error")
)

type Config struct {
	BaseURL   string
	APIKey    string
	AccountID string

	APIKeyHeader string
	Timeout      time.Duration

	// Transport opcional (tests).
	Transport http.RoundTripper
}

type Client struct {
	http      *httpclient.Client
	accountID string
}

// NewClient devuelve (nil, nil) si falta base URL o API key: el servicio es opcional.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	key := strings.TrimSpace(cfg.APIKey)
	if base == "" || key == "" {
		return nil, nil
	}
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}

	opts := []httpclient.Option{httpclient.WithHeader(h, key)}
	if cfg.Transport != nil {
		opts = append(opts, httpclient.WithTransport(cfg.Transport))
	}
	hc, err := httpclient.New(base, cfg.Timeout, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc, accountID: strings.TrimSpace(cfg.AccountID)}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.accountID != ""
}

// CapabilitiesResponse: {"capabilities": {"birds:multiple": true, ...}}
type CapabilitiesResponse struct {
	Capabilities map[string]bool `json:"capabilities"`
}

// GetCapabilities trae las capabilities de la cuenta configurada.
func (c *Client) GetCapabilities(ctx context.Context) (CapabilitiesResponse, error) {
	if !c.IsConfigured() {
		return CapabilitiesResponse{}, ErrPlansNotConfigured
	}

	var out CapabilitiesResponse
	path := "/v1/capabilities?account_id=" + url.QueryEscape(c.accountID)
	if err := c.http.DoJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		switch httpclient.StatusCode(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			return CapabilitiesResponse{}, ErrPlansUnauthorized
		default:
			return CapabilitiesResponse{}, fmt.Errorf("%w: %v", ErrPlansUpstream, err)
		}
	}
	if out.Capabilities == nil {
		out.Capabilities = map[string]bool{}
	}
	return out, nil
}
