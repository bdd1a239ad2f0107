package contentful

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
)

const (
	// DefaultBaseURL is the production Content Management API endpoint.
	DefaultBaseURL = "https://api.contentful.com"

	// DefaultHTTPTimeout bounds every content-type page request.
	DefaultHTTPTimeout = 30 * time.Second

	// pageLimit is the per-request page size for content-type listing.
	pageLimit = 100
)

// ErrUnauthorized indicates the management token was missing or rejected.
var ErrUnauthorized = errors.New("contentful: unauthorized (check CMA token)")

// Client is a minimal read-only Content Management API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a client with the given management token and timeout.
// A zero timeout falls back to DefaultHTTPTimeout.
func NewClient(token string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultHTTPTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    DefaultBaseURL,
		token:      token,
	}
}

// SetBaseURL overrides the API endpoint. This is intended for testing purposes.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// contentTypePage is one page of the content-type collection endpoint.
type contentTypePage struct {
	Total int           `json:"total"`
	Skip  int           `json:"skip"`
	Limit int           `json:"limit"`
	Items []ContentType `json:"items"`
}

// apiError is the error envelope the management API returns on failure.
type apiError struct {
	Sys     Sys    `json:"sys"`
	Message string `json:"message"`
}

// ContentTypes fetches the complete content-type list for one environment,
// following the collection paging until the reported total is exhausted.
// The returned order is the API's stored order; it is never re-sorted.
func (c *Client) ContentTypes(ctx context.Context, spaceID, environment string) ([]ContentType, error) {
	var all []ContentType

	skip := 0
	for {
		page, err := c.fetchPage(ctx, spaceID, environment, skip)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Items...)

		if len(page.Items) == 0 || len(all) >= page.Total {
			return all, nil
		}
		skip += len(page.Items)
	}
}

// fetchPage retrieves one page of content types starting at the given offset.
func (c *Client) fetchPage(ctx context.Context, spaceID, environment string, skip int) (*contentTypePage, error) {
	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/content_types",
		c.baseURL, url.PathEscape(spaceID), url.PathEscape(environment))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	q := req.URL.Query()
	q.Set("limit", strconv.Itoa(pageLimit))
	q.Set("skip", strconv.Itoa(skip))
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/vnd.contentful.management.v1+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching content types: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("contentful: %s (status %d)", apiErr.Message, resp.StatusCode)
		}
		return nil, fmt.Errorf("contentful: unexpected status %d", resp.StatusCode)
	}

	var page contentTypePage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decoding content types: %w", err)
	}

	return &page, nil
}

// LoadFile reads a previously exported content-type collection from disk.
func LoadFile(path string) ([]ContentType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}
	return ParseExport(data)
}

// ParseExport decodes an exported content-type collection. Both a bare array
// of content types and the collection envelope with an "items" key are
// accepted, so raw API responses and CLI exports work interchangeably.
func ParseExport(data []byte) ([]ContentType, error) {
	var list []ContentType
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var page contentTypePage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("decoding schema export: %w", err)
	}
	return page.Items, nil
}
