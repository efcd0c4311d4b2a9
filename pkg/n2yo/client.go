// Package n2yo is a thin client for the N2YO satellite-tracking REST API.
// Each operation issues exactly one HTTP GET, validates the JSON shape, and
// maps the payload into the normalized models in internal/domain. There are
// no retries, no caching, and no shared mutable state across calls.
package n2yo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ManzarAli25/Orbitarium/internal/domain"
	"github.com/ManzarAli25/Orbitarium/pkg/httpclient"
)

// DefaultBaseURL is the fixed N2YO REST host all requests go against unless
// overridden in Options.
const DefaultBaseURL = "https://api.n2yo.com/rest/v1/satellite"

const (
	defaultTimeout       = 15 * time.Second
	defaultPassDays      = 2
	defaultMinVisibility = 60 // seconds
	defaultMinElevation  = 30 // degrees
	defaultSearchRadius  = 90 // degrees
	maxPositionSeconds   = 300
)

// Options configures a Client. Only APIKey is required.
type Options struct {
	// APIKey is the N2YO credential appended to every request. Required.
	APIKey string
	// BaseURL overrides DefaultBaseURL, mainly for tests.
	BaseURL string
	// HTTPClient performs the GETs. Nil falls back to a resty transport with
	// the default timeout.
	HTTPClient httpclient.Client
	// Logger receives transport warnings. Nil falls back to a nop logger.
	Logger *zap.SugaredLogger
	// Local is the zone used when a request asks for local times.
	// Nil falls back to time.Local.
	Local *time.Location
}

// Client calls the N2YO satellite-tracking API. It holds only immutable
// configuration and is safe for concurrent use.
type Client struct {
	apiKey  string
	baseURL string
	http    httpclient.Client
	log     *zap.SugaredLogger
	local   *time.Location
}

// NewClient builds a Client. An empty API key is a construction-time error.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("%w: api key is required", ErrInvalidArgument)
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = DefaultHTTPClient()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	local := opts.Local
	if local == nil {
		local = time.Local
	}

	return &Client{
		apiKey:  opts.APIKey,
		baseURL: baseURL,
		http:    client,
		log:     log,
		local:   local,
	}, nil
}

// DefaultHTTPClient returns the resty transport used when none is injected.
func DefaultHTTPClient() httpclient.Client {
	return httpclient.NewRestyClient(defaultTimeout)
}

// VisualPassesRequest asks for predicted visual passes of a satellite over an
// observer. Zero Days and MinVisibility take the service defaults (2 days,
// 60 seconds).
type VisualPassesRequest struct {
	SatID          int
	Observer       domain.Observer
	Days           int
	MinVisibility  int
	ConvertToLocal bool
}

// RadioPassesRequest asks for predicted radio passes. Zero Days and
// MinElevation take the service defaults (2 days, 30 degrees).
type RadioPassesRequest struct {
	SatID          int
	Observer       domain.Observer
	Days           int
	MinElevation   int
	ConvertToLocal bool
}

// PositionsRequest asks for future groundtrack positions over the next
// Seconds seconds (at most 300).
type PositionsRequest struct {
	SatID    int
	Observer domain.Observer
	Seconds  int
}

// AboveRequest asks for objects currently above an observer within
// SearchRadius degrees (zero takes the 90-degree default; CategoryID zero
// means all categories).
type AboveRequest struct {
	Observer     domain.Observer
	SearchRadius int
	CategoryID   int
}

// GetTLE fetches the two-line element set for a satellite.
func (c *Client) GetTLE(ctx context.Context, satID int) (*domain.TLE, error) {
	if satID <= 0 {
		return nil, fmt.Errorf("%w: sat id is required", ErrInvalidArgument)
	}

	url := c.endpointURL(false, "tle", formatInt(satID))

	var payload tleResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return mapTLE(payload)
}

// GetVisualPasses fetches predicted visual passes. A response with no passes
// is a valid empty forecast, not an error.
func (c *Client) GetVisualPasses(ctx context.Context, req VisualPassesRequest) (*domain.PassForecast, error) {
	days := req.Days
	if days == 0 {
		days = defaultPassDays
	}
	minVisibility := req.MinVisibility
	if minVisibility == 0 {
		minVisibility = defaultMinVisibility
	}

	url := c.endpointURL(true, "visualpasses",
		formatInt(req.SatID),
		formatCoord(req.Observer.Lat),
		formatCoord(req.Observer.Lng),
		formatCoord(req.Observer.Alt),
		formatInt(days),
		formatInt(minVisibility),
	)

	var payload passesResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return mapVisualPasses(payload, req.ConvertToLocal, c.local), nil
}

// GetRadioPasses fetches predicted radio passes. Pass duration is computed
// client-side from the start and end timestamps.
func (c *Client) GetRadioPasses(ctx context.Context, req RadioPassesRequest) (*domain.PassForecast, error) {
	days := req.Days
	if days == 0 {
		days = defaultPassDays
	}
	minElevation := req.MinElevation
	if minElevation == 0 {
		minElevation = defaultMinElevation
	}

	url := c.endpointURL(true, "radiopasses",
		formatInt(req.SatID),
		formatCoord(req.Observer.Lat),
		formatCoord(req.Observer.Lng),
		formatCoord(req.Observer.Alt),
		formatInt(days),
		formatInt(minElevation),
	)

	var payload passesResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return mapRadioPasses(payload, req.ConvertToLocal, c.local), nil
}

// GetPositions fetches future groundtrack positions. The service caps the
// horizon at 300 seconds; the satellite id and observer latitude/longitude
// must be non-zero.
func (c *Client) GetPositions(ctx context.Context, req PositionsRequest) (*domain.Positions, error) {
	if req.SatID <= 0 || req.Observer.Lat == 0 || req.Observer.Lng == 0 {
		return nil, fmt.Errorf("%w: sat id, observer lat and lng are required", ErrInvalidArgument)
	}
	if req.Seconds > maxPositionSeconds {
		return nil, fmt.Errorf("%w: seconds must not exceed %d", ErrInvalidArgument, maxPositionSeconds)
	}

	url := c.endpointURL(true, "positions",
		formatInt(req.SatID),
		formatCoord(req.Observer.Lat),
		formatCoord(req.Observer.Lng),
		formatCoord(req.Observer.Alt),
		formatInt(req.Seconds),
	)

	var payload positionsResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return mapPositions(payload)
}

// GetObjectsAbove fetches all objects currently above the observer within
// the search radius. A response with no objects is a zero-count result, not
// an error.
func (c *Client) GetObjectsAbove(ctx context.Context, req AboveRequest) (*domain.ObjectsAbove, error) {
	searchRadius := req.SearchRadius
	if searchRadius == 0 {
		searchRadius = defaultSearchRadius
	}

	url := c.endpointURL(true, "above",
		formatCoord(req.Observer.Lat),
		formatCoord(req.Observer.Lng),
		formatCoord(req.Observer.Alt),
		formatInt(searchRadius),
		formatInt(req.CategoryID),
	)

	var payload aboveResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return mapAbove(payload), nil
}

// getJSON performs the GET and decodes the body. Transport failures and
// non-2xx statuses come back as *TransportError after a warning is logged;
// the API key never reaches logs or error messages.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	resp, err := c.http.Get(ctx, url, nil)
	if err != nil {
		c.log.Warnw("n2yo request failed", "url", redactURL(url), "error", err)
		return &TransportError{URL: redactURL(url), Err: err}
	}

	body := resp.Body()
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		c.log.Warnw("n2yo request returned unexpected status",
			"url", redactURL(url),
			"status", resp.StatusCode(),
			"body", responseSnippet(body),
		)
		return &TransportError{URL: redactURL(url), StatusCode: resp.StatusCode()}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode n2yo response: %w", err)
	}
	return nil
}

func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
