// Implements the Notion API client.

package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// BaseURL is the Notion API base URL.
	BaseURL = "https://api.notion.com/v1"
	// APIVersion is the pinned Notion API version.
	APIVersion = "2022-06-28"
)

// Client is a Notion API client.
//
// Calls are not retried nor throttled; any error is returned to the caller.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Notion API client.
func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: BaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithBaseURL returns a copy of the client talking to another endpoint.
func (c *Client) WithBaseURL(u string) *Client {
	d := *c
	d.baseURL = u
	return &d
}

// do performs an HTTP request and returns the response body.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", APIVersion)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	slog.DebugContext(ctx, "notion", "method", method, "path", path, "status", resp.StatusCode, "dur", time.Since(start))

	if resp.StatusCode >= 400 {
		var apiErr Error
		if err := json.Unmarshal(respBody, &apiErr); err != nil || apiErr.Message == "" {
			return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
		}
		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode
		}
		return nil, &apiErr
	}

	return respBody, nil
}

// Search searches for pages and databases.
func (c *Client) Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	if req.PageSize == 0 {
		req.PageSize = 100
	}

	data, err := c.do(ctx, http.MethodPost, "/search", req)
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	return &resp, nil
}

// SearchDatabases returns the first page of databases shared with the
// integration.
func (c *Client) SearchDatabases(ctx context.Context) ([]Database, error) {
	resp, err := c.Search(ctx, &SearchRequest{
		Filter: &SearchFilter{Value: "database", Property: "object"},
	})
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// GetDatabase retrieves a database by ID.
func (c *Client) GetDatabase(ctx context.Context, id string) (*Database, error) {
	data, err := c.do(ctx, http.MethodGet, "/databases/"+id, nil)
	if err != nil {
		return nil, err
	}

	var db Database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("failed to parse database response: %w", err)
	}
	return &db, nil
}

// CreatePage creates a page and returns it as stored by Notion.
func (c *Client) CreatePage(ctx context.Context, req *CreatePageRequest) (*Page, error) {
	data, err := c.do(ctx, http.MethodPost, "/pages", req)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to parse page response: %w", err)
	}
	return &page, nil
}

// QueryDatabase queries a database for pages.
//
// Only the first page of results is returned; use NextCursor to continue.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, opts *QueryOptions) (*QueryResponse, error) {
	if opts == nil {
		opts = &QueryOptions{}
	}
	if opts.PageSize == 0 {
		opts.PageSize = 100
	}

	data, err := c.do(ctx, http.MethodPost, "/databases/"+databaseID+"/query", opts)
	if err != nil {
		return nil, err
	}

	var resp QueryResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse query response: %w", err)
	}
	return &resp, nil
}
