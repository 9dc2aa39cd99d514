// Package notion is a minimal client for the Notion API, covering the
// database query, page, and schema endpoints this application uses.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"
	defaultTimeout = 30 * time.Second
)

type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		baseURL: defaultBaseURL,
		token:   token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// QueryDatabase runs a filtered, sorted query against a database. Archived
// pages are excluded by the store itself and never appear in the results.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, req QueryRequest) (QueryResponse, error) {
	body, err := c.do(ctx, http.MethodPost, "/v1/databases/"+databaseID+"/query", req)
	if err != nil {
		return QueryResponse{}, fmt.Errorf("query database %s: %w", databaseID, err)
	}

	var res QueryResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return QueryResponse{}, fmt.Errorf("query database %s: parse response: %w", databaseID, err)
	}
	return res, nil
}

// RetrieveDatabase fetches a database definition, including the configured
// options of its select and multi_select properties.
func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (Database, error) {
	body, err := c.do(ctx, http.MethodGet, "/v1/databases/"+databaseID, nil)
	if err != nil {
		return Database{}, fmt.Errorf("retrieve database %s: %w", databaseID, err)
	}

	var db Database
	if err := json.Unmarshal(body, &db); err != nil {
		return Database{}, fmt.Errorf("retrieve database %s: parse response: %w", databaseID, err)
	}
	return db, nil
}

func (c *Client) RetrievePage(ctx context.Context, pageID string) (Page, error) {
	body, err := c.do(ctx, http.MethodGet, "/v1/pages/"+pageID, nil)
	if err != nil {
		return Page{}, fmt.Errorf("retrieve page %s: %w", pageID, err)
	}

	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return Page{}, fmt.Errorf("retrieve page %s: parse response: %w", pageID, err)
	}
	return page, nil
}

func (c *Client) CreatePage(ctx context.Context, req CreatePageRequest) (Page, error) {
	body, err := c.do(ctx, http.MethodPost, "/v1/pages", req)
	if err != nil {
		return Page{}, fmt.Errorf("create page: %w", err)
	}

	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return Page{}, fmt.Errorf("create page: parse response: %w", err)
	}
	return page, nil
}

// UpdatePage patches the supplied properties and leaves every other property
// untouched. Setting Archived soft-deletes or restores the page.
func (c *Client) UpdatePage(ctx context.Context, pageID string, req UpdatePageRequest) (Page, error) {
	body, err := c.do(ctx, http.MethodPatch, "/v1/pages/"+pageID, req)
	if err != nil {
		return Page{}, fmt.Errorf("update page %s: %w", pageID, err)
	}

	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return Page{}, fmt.Errorf("update page %s: parse response: %w", pageID, err)
	}
	return page, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		if resp.StatusCode >= 500 {
			return nil, ErrServer
		}
		return nil, newAPIError(resp.StatusCode, body)
	}
}
