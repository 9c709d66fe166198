// Package index persists canonical trial documents into an OpenSearch
// index, creating the index from the outbreak.info field mapping.
package index

import (
	"context"
	"errors"
	"fmt"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"trialsync/internal/config"
	"trialsync/internal/logger"
)

// Client errors.
var (
	ErrNoAddresses = errors.New("no index addresses configured")
	ErrPingFailed  = errors.New("index ping failed")
)

// Client manages the OpenSearch connection.
type Client struct {
	os     *opensearch.Client
	logger *logger.Logger
}

// NewClient creates a new OpenSearch client from the index config.
func NewClient(cfg config.IndexConfig, log *logger.Logger) (*Client, error) {
	if len(cfg.Addresses) == 0 {
		return nil, ErrNoAddresses
	}

	osClient, err := opensearch.NewClient(opensearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create opensearch client: %w", err)
	}

	return &Client{os: osClient, logger: log}, nil
}

// Ping verifies the cluster is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req := opensearchapi.PingRequest{}

	resp, err := req.Do(ctx, c.os)
	if err != nil {
		return fmt.Errorf("ping request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("%w: %s", ErrPingFailed, resp.Status())
	}

	return nil
}
