package grist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	appErr "github.com/xxxsen/gristry/internal/pkg/errors"
)

// Record is one row of a Grist table. Fields is kept raw so callers can
// decode the per-table column set they care about.
type Record struct {
	ID     int64           `json:"id"`
	Fields json.RawMessage `json:"fields"`
}

// TableFetcher fetches a named table as an ordered sequence of rows.
type TableFetcher interface {
	FetchTable(ctx context.Context, table string) ([]Record, error)
}

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient builds a client for a Grist document API. baseURL points at the
// document root (e.g. https://grist.example.com/api/docs/<docId>).
func NewClient(baseURL, apiKey string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

type recordsResponse struct {
	Records []Record `json:"records"`
}

func (c *Client) FetchTable(ctx context.Context, table string) ([]Record, error) {
	endpoint := fmt.Sprintf("%s/tables/%s/records", c.baseURL, url.PathEscape(table))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch table %s: %v", appErr.ErrUpstream, table, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: fetch table %s: %s: %s", appErr.ErrUpstream, table, resp.Status, strings.TrimSpace(string(body)))
	}
	var out recordsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode table %s: %v", appErr.ErrUpstream, table, err)
	}
	return out.Records, nil
}

var _ TableFetcher = (*Client)(nil)
