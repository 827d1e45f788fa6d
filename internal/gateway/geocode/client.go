// Package geocode resolves postal codes to coordinates through a
// Nominatim-compatible HTTP API.
package geocode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
)

var (
	// ErrNoResults means the provider answered but knows no such postal code.
	ErrNoResults = fmt.Errorf("%w: no results", apperr.ErrGeocodeProvider)
	// ErrHTMLResponse means the provider returned a page instead of JSON,
	// which Nominatim does when throttling.
	ErrHTMLResponse = fmt.Errorf("%w: html response", apperr.ErrGeocodeProvider)
)

// StatusError is a non-2xx provider response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("geocode provider: http status %d", e.Code)
}

func (e *StatusError) Unwrap() error { return apperr.ErrGeocodeProvider }

// ClientConfig configures Client.
type ClientConfig struct {
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	MinInterval time.Duration
}

// Client calls the /search endpoint. All calls through one Client share a
// limiter, so concurrent callers never exceed one request per MinInterval.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
}

// NewClient creates a Client.
func NewClient(cfg ClientConfig, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	limit := rate.Inf
	if cfg.MinInterval > 0 {
		limit = rate.Every(cfg.MinInterval)
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		http:      hc,
		limiter:   rate.NewLimiter(limit, 1),
	}
}

type place struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Lookup resolves a postal code within a country.
func (c *Client) Lookup(ctx context.Context, postal, country string) (domain.Point, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.Point{}, err
	}

	q := url.Values{}
	q.Set("postalcode", postal)
	q.Set("country", country)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return domain.Point{}, fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Point{}, fmt.Errorf("geocode: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.Point{}, fmt.Errorf("geocode: read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Point{}, &StatusError{Code: resp.StatusCode}
	}
	if bytes.HasPrefix(bytes.TrimSpace(body), []byte("<")) {
		return domain.Point{}, ErrHTMLResponse
	}

	var places []place
	if err := json.Unmarshal(body, &places); err != nil {
		return domain.Point{}, fmt.Errorf("%w: decode: %v", apperr.ErrGeocodeProvider, err)
	}
	if len(places) == 0 {
		return domain.Point{}, ErrNoResults
	}

	lat, errLat := strconv.ParseFloat(places[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(places[0].Lon, 64)
	if err := errors.Join(errLat, errLon); err != nil {
		return domain.Point{}, fmt.Errorf("%w: bad coordinates: %v", apperr.ErrGeocodeProvider, err)
	}
	return domain.Point{Lat: lat, Lon: lon}, nil
}
