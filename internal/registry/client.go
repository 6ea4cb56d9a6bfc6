// Package registry talks to the external vehicle/person registry used to
// validate and augment document-sourced data. Every performed call is
// billable; failures are typed so the pipeline can tell expected misses
// (not found, throttled) from conditions worth retrying.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Typed failures per the upstream contract.
var (
	ErrNotFound    = errors.New("registry: subject not found")
	ErrRateLimited = errors.New("registry: rate limited")
	ErrAuthFailed  = errors.New("registry: authentication failed")
	ErrUpstream    = errors.New("registry: upstream error")
)

const activityRegistryLookup = "REGISTRY_LOOKUP"

// VehicleRecord is the normalized authoritative payload.
type VehicleRecord struct {
	Plate        string  `json:"plate"`
	Make         *string `json:"make,omitempty"`
	Model        *string `json:"model,omitempty"`
	Year         *int    `json:"year,omitempty"`
	Color        *string `json:"color,omitempty"`
	VIN          *string `json:"vin,omitempty"`
	EngineNumber *string `json:"engine_number,omitempty"`
	OwnerRUT     *string `json:"owner_rut,omitempty"`
	OwnerName    *string `json:"owner_name,omitempty"`
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Ledger records billable credits and case timeline activities for
// performed lookups.
type Ledger interface {
	ConsumeCredit(ctx context.Context, subject, keyTail string) error
	AddActivity(ctx context.Context, caseID uuid.UUID, kind, detail string) error
}

type Config struct {
	BaseURL string
	APIKey  string
	// ClientID is the descriptive client-identifier header. The upstream
	// edge rejects anonymous callers as bot traffic, so it must be set.
	ClientID      string
	Timeout       time.Duration
	RatePerMinute int
}

type Client struct {
	cfg     Config
	http    *http.Client
	limiter *minuteLimiter
	ledger  Ledger
	logger  *slog.Logger
}

// New builds the client once per process; workers receive it injected.
func New(cfg Config, ledger Ledger, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("registry base url is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("registry api key is required")
	}
	if strings.TrimSpace(cfg.ClientID) == "" {
		return nil, fmt.Errorf("registry client identifier is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RatePerMinute <= 0 {
		cfg.RatePerMinute = 60
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: newMinuteLimiter(cfg.RatePerMinute),
		ledger:  ledger,
		logger:  logger,
	}, nil
}

// LookupPlate queries the registry by normalized plate.
func (c *Client) LookupPlate(ctx context.Context, plate string, caseID *uuid.UUID) (*VehicleRecord, error) {
	return c.get(ctx, "/vehiculos/"+url.PathEscape(plate), plate, caseID)
}

// LookupRUT queries the registry by normalized national id.
func (c *Client) LookupRUT(ctx context.Context, rut string, caseID *uuid.UUID) (*VehicleRecord, error) {
	return c.get(ctx, "/personas/"+url.PathEscape(rut), rut, caseID)
}

func (c *Client) get(ctx context.Context, path, subject string, caseID *uuid.UUID) (*VehicleRecord, error) {
	// fail fast above the per-key ceiling; callers fall back to
	// document-only data
	if !c.limiter.Allow(time.Now()) {
		c.logger.Warn("registry call rejected by local rate ceiling", "subject", subject)
		return nil, ErrRateLimited
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-API-Key", c.cfg.APIKey)
	req.Header.Set("User-Agent", c.cfg.ClientID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("registry.request_failed", "subject", subject, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("registry response body close error", "error", cerr)
		}
	}()

	// the call reached the upstream: it is billable regardless of outcome
	c.bill(ctx, subject, caseID)

	raw, _ := io.ReadAll(resp.Body)
	c.logger.Info("registry.response",
		"subject", subject,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	// An HTML error page from the edge means the call was treated as bot
	// traffic, whatever status it carries; the content type is checked
	// before the status code is trusted.
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		c.logger.Error("registry returned non-json body", "subject", subject, "content_type", mediaType, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: non-json response (content-type %q)", ErrUpstream, mediaType)
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrAuthFailed
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: decode envelope: %v", ErrUpstream, err)
	}
	if err := validateRecord(env.Data); err != nil {
		return nil, fmt.Errorf("%w: payload validation: %v", ErrUpstream, err)
	}
	var rec VehicleRecord
	if err := json.Unmarshal(env.Data, &rec); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %v", ErrUpstream, err)
	}
	return &rec, nil
}

func (c *Client) bill(ctx context.Context, subject string, caseID *uuid.UUID) {
	if c.ledger == nil {
		return
	}
	if err := c.ledger.ConsumeCredit(ctx, subject, keyTail(c.cfg.APIKey)); err != nil {
		c.logger.Warn("failed to record registry credit", "subject", subject, "error", err)
	}
	if caseID != nil {
		detail := fmt.Sprintf("registry lookup for %s", subject)
		if err := c.ledger.AddActivity(ctx, *caseID, activityRegistryLookup, detail); err != nil {
			c.logger.Warn("failed to record case activity", "case_id", *caseID, "error", err)
		}
	}
}

func keyTail(key string) string {
	if len(key) <= 4 {
		return key
	}
	return key[len(key)-4:]
}
