package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/phdsports/news-portal/internal/listing"
)

// Client reads the article listing over the HTTP API. It implements listing.Fetcher
// with the same fail-soft contract as the server side.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

var _ listing.Fetcher[Article] = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

func (c *Client) FetchPage(ctx context.Context, q listing.Query) listing.Page[Article] {
	page, err := c.articles(ctx, q)
	if err != nil {
		c.log.ErrorContext(ctx, "fetch articles failed", "error", err, "query", q)
		return listing.Page[Article]{Items: []Article{}}
	}

	return listing.Page[Article]{Items: page.Items, Total: page.Total, PageSize: page.PageSize}
}

func (c *Client) articles(ctx context.Context, q listing.Query) (*ArticlePage, error) {
	params := url.Values{}
	params.Set("category", q.Category)
	params.Set("search", q.Search)
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("pageSize", strconv.Itoa(q.PageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+apiV1Prefix+"/articles?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get articles: unexpected status %d", resp.StatusCode)
	}

	var page ArticlePage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}

	if page.Items == nil {
		page.Items = []Article{}
	}

	return &page, nil
}
