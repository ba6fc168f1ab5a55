// Package geocoding turns browser coordinates into a display address.
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds one reverse lookup.
const DefaultTimeout = 10 * time.Second

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrNoAddress          = errors.New("no address for coordinates")
)

// Address is the result of a reverse lookup.
type Address struct {
	DisplayName string  `json:"displayName"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// Geocoder resolves coordinates to an address.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (*Address, error)
}

// Client talks to a Nominatim-compatible /reverse endpoint.
type Client struct {
	BaseURL    string
	UserAgent  string
	Language   string
	HTTPClient *http.Client
}

func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		UserAgent:  userAgent,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// ValidCoordinates reports whether lat/lon are finite and in range.
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*Address, error) {
	if !ValidCoordinates(lat, lon) {
		return nil, ErrInvalidCoordinates
	}

	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	if c.Language != "" {
		q.Set("accept-language", c.Language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build reverse request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reverse request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reverse request returned status %d", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding reverse response failed: %w", err)
	}
	if body.Error != "" || strings.TrimSpace(body.DisplayName) == "" {
		return nil, ErrNoAddress
	}
	return &Address{DisplayName: strings.TrimSpace(body.DisplayName), Lat: lat, Lon: lon}, nil
}

// WithLanguage returns a copy of c asking for results in lang.
func (c *Client) WithLanguage(lang string) *Client {
	cp := *c
	cp.Language = lang
	return &cp
}
