// Package pinterest is the media-source client. It talks to the Pinterest v5
// board-pins API with a bearer token and hands back one image URL per pin.
package pinterest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/doyensec/safeurl"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.pinterest.com/v5"

// Pin is one media item on a board. ImageURL is the highest-resolution
// rendition the API exposed, or empty when the pin carries no image.
type Pin struct {
	ID       string
	ImageURL string
}

// StatusError reports a non-success response from the media API, so callers
// can tell auth/availability failures apart from local errors.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pinterest api returned status %d", e.StatusCode)
}

// Client fetches board media. Calls are throttled because the API is
// rate-bound per token.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	limiter *rate.Limiter
}

func NewClient(httpClient *http.Client, baseURL, token string, requestsPerSecond float64) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = 2
	}
	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		token:   token,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

type boardPinsResponse struct {
	Items []pinItem `json:"items"`
}

type pinItem struct {
	ID    string `json:"id"`
	Media struct {
		Images map[string]pinImage `json:"images"`
	} `json:"media"`
}

type pinImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// BoardPins returns the pins of one board. A network or auth failure is the
// whole-board failure mode: the caller gets an error, not a partial list.
func (c *Client) BoardPins(ctx context.Context, boardID string) ([]Pin, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/boards/%s/pins", c.baseURL, boardID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch board %s: %w", boardID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch board %s: %w", boardID, &StatusError{StatusCode: resp.StatusCode})
	}

	var payload boardPinsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode board %s response: %w", boardID, err)
	}

	pins := make([]Pin, 0, len(payload.Items))
	for _, item := range payload.Items {
		pins = append(pins, Pin{ID: item.ID, ImageURL: bestImageURL(item.Media.Images)})
	}
	return pins, nil
}

// preferredRenditions is checked in order before falling back to the widest
// rendition the API returned.
var preferredRenditions = []string{"1200x", "originals", "600x"}

func bestImageURL(images map[string]pinImage) string {
	for _, key := range preferredRenditions {
		if img, ok := images[key]; ok && img.URL != "" {
			return img.URL
		}
	}

	best := ""
	bestWidth := -1
	for _, img := range images {
		if img.URL != "" && img.Width > bestWidth {
			best = img.URL
			bestWidth = img.Width
		}
	}
	return best
}

// NewSafeHTTPClient builds the outbound HTTP client used for all media
// fetches. safeurl blocks private, loopback, link-local and metadata
// addresses at the dialer level, so a hostile image URL cannot be used to
// reach internal services.
func NewSafeHTTPClient(timeout time.Duration) *http.Client {
	config := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes("http", "https").
		SetAllowedPorts(80, 443).
		Build()

	return safeurl.Client(config).Client
}
