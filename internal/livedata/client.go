package livedata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"parkpulse/internal/models"
	"parkpulse/internal/structures"
)

const maxResponseBodySize = 8 << 20 // 8 MB

type ClientInterface interface {
	FetchPark(ctx context.Context, parkID string) (*models.LiveResponse, error)
}

// Client fetches live entity data for a single park. Every failure mode
// (transport, non-2xx, malformed body) surfaces as an error scoped to that
// one park; callers decide how far it propagates.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(conf *structures.Config) ClientInterface {
	return &Client{
		baseURL: strings.TrimSuffix(conf.LiveData.BaseURL, "/"),
		http:    &http.Client{Timeout: conf.LiveData.Timeout},
	}
}

func (c *Client) FetchPark(ctx context.Context, parkID string) (*models.LiveResponse, error) {
	url := fmt.Sprintf("%s/v1/entity/%s/live", c.baseURL, parkID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch park %s: %w", parkID, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch park %s: %w", parkID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch park %s: unexpected status %d", parkID, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("fetch park %s: read body: %w", parkID, err)
	}

	var live models.LiveResponse
	if err := json.Unmarshal(body, &live); err != nil {
		return nil, fmt.Errorf("fetch park %s: decode body: %w", parkID, err)
	}
	return &live, nil
}
