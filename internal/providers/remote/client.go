package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/league-pages/internal/domain/league"
	"github.com/preston-bernstein/league-pages/internal/providers"
)

// Config controls how the client reaches the league document.
type Config struct {
	URL        string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches the league document over HTTP.
type Client struct {
	url        string
	httpClient httpDoer
}

// NewClient constructs a client for the document at cfg.URL.
func NewClient(cfg Config) *Client {
	return &Client{
		url:        cfg.URL,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchDataset issues a single GET and decodes the body. Any 2xx status is success.
func (c *Client) FetchDataset(ctx context.Context) (league.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return league.Dataset{}, fmt.Errorf("%s: build request: %w", sourceName, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return league.Dataset{}, fmt.Errorf("%s: fetch %s: %w", sourceName, c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return league.Dataset{}, &providers.StatusError{
			Source:     sourceName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	ds, err := league.Decode(resp.Body)
	if err != nil {
		return league.Dataset{}, fmt.Errorf("%s: %w", sourceName, err)
	}
	return ds, nil
}
