package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"txn-dashboard/internal/models"
	"txn-dashboard/pkg/config"

	"go.uber.org/zap"
)

// FeedClient downloads the product transaction feed, a JSON array of
// transaction objects.
type FeedClient struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewFeedClient(cfg *config.FeedConfig, logger *zap.Logger) *FeedClient {
	return &FeedClient{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

func (c *FeedClient) Fetch(ctx context.Context) ([]*models.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrUpstreamFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Info("Fetching transaction feed", zap.String("url", c.url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Feed returned non-200 status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamFetch, resp.StatusCode)
	}

	var transactions []*models.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&transactions); err != nil {
		return nil, fmt.Errorf("%w: decode feed: %w", ErrUpstreamFetch, err)
	}

	c.logger.Info("Transaction feed fetched", zap.Int("items", len(transactions)))
	return transactions, nil
}
