// Package flickr provides a client for the Flickr REST photo listing API.
package flickr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	methodRecent = "flickr.photos.getRecent"
	methodSearch = "flickr.photos.search"

	userAgent = "shutter/0.1 (https://github.com/llehouerou/shutter)"
)

// Client is a Flickr API client.
// Each call issues exactly one request; there is no retry and no cache.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	perPage    int
}

// NewClient creates a new Flickr client for the given REST endpoint.
func NewClient(endpoint, apiKey string, perPage int) *Client {
	return &Client{
		httpClient: &http.Client{},
		endpoint:   endpoint,
		apiKey:     apiKey,
		perPage:    perPage,
	}
}

// Recent fetches the most recently uploaded public photos.
func (c *Client) Recent(ctx context.Context) ([]Photo, error) {
	return c.list(ctx, "recent", methodRecent, nil)
}

// Search fetches photos whose title, description or tags match query.
func (c *Client) Search(ctx context.Context, query string) ([]Photo, error) {
	params := url.Values{}
	params.Set("text", query)
	return c.list(ctx, "search", methodSearch, params)
}

func (c *Client) list(ctx context.Context, op, method string, extra url.Values) ([]Photo, error) {
	params := url.Values{}
	params.Set("method", method)
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	params.Set("nojsoncallback", "1")
	params.Set("extras", "url_s")
	if c.perPage > 0 {
		params.Set("per_page", strconv.Itoa(c.perPage))
	}
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, &FetchError{Op: op, Diagnostic: "invalid endpoint", Err: err}
	}
	// Keep query parameters the endpoint already carries; ours win
	query := u.Query()
	for k, v := range params {
		query[k] = v
	}
	for k, v := range extra {
		query[k] = v
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, &FetchError{Op: op, Diagnostic: "create request", Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Op: op, Diagnostic: "http request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Op: op, Diagnostic: "unexpected status: " + resp.Status}
	}

	var result listResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &FetchError{Op: op, Diagnostic: "decode response", Err: err}
	}

	if result.Stat != "ok" {
		return nil, &FetchError{Op: op, Diagnostic: apiDiagnostic(result)}
	}

	return convertPhotos(result.Photos.Photo), nil
}

func apiDiagnostic(r listResponse) string {
	switch {
	case r.Stat == "":
		return "missing stat in response"
	case r.Message != "":
		return fmt.Sprintf("api stat %q (code %d): %s", r.Stat, r.Code, r.Message)
	default:
		return fmt.Sprintf("api stat %q", r.Stat)
	}
}

func convertPhotos(items []photoItem) []Photo {
	photos := make([]Photo, 0, len(items))
	for _, it := range items {
		photos = append(photos, Photo{
			ID:       it.ID,
			Title:    it.Title,
			ImageURL: it.URLSmall,
		})
	}
	return photos
}
