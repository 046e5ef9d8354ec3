package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Lookup fetches street addresses for convenience stores. The pipeline calls
// it once per file, before any adapter runs, so adapters see a completed
// book.
type Lookup interface {
	FetchAddresses(ctx context.Context, names StoreNames) (*AddressBook, error)
}

// Client queries the store-address service over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *zap.Logger
}

// ClientConfig holds the store-address service settings.
type ClientConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// NewClient creates a store-address client.
func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: cfg.Endpoint,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

type lookupRequest struct {
	SevenStores  []string `json:"sevenStores"`
	FamilyStores []string `json:"familyStores"`
}

// FetchAddresses resolves the given store names. A transport or decode
// failure does not surface as an error: every requested store gets an
// "ERROR: ..." address instead, so each affected order reports its own
// address problem downstream rather than the whole file failing.
func (c *Client) FetchAddresses(ctx context.Context, names StoreNames) (*AddressBook, error) {
	if names.Empty() {
		return NewAddressBook(), nil
	}

	book, err := c.fetch(ctx, names)
	if err != nil {
		c.logger.Error("查詢門市地址失敗", zap.Error(err))
		return errorBook(names), nil
	}
	return book, nil
}

func (c *Client) fetch(ctx context.Context, names StoreNames) (*AddressBook, error) {
	body, err := json.Marshal(lookupRequest{
		SevenStores:  names.Seven,
		FamilyStores: names.Family,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store address request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("store address service returned %d", resp.StatusCode)
	}

	book := NewAddressBook()
	if err := json.NewDecoder(resp.Body).Decode(book); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return book, nil
}

func errorBook(names StoreNames) *AddressBook {
	book := NewAddressBook()
	for _, name := range names.Seven {
		book.Seven[name] = fmt.Sprintf("ERROR: 查詢失敗 - %s", name)
	}
	for _, name := range names.Family {
		book.Family[name] = fmt.Sprintf("ERROR: 查詢失敗 - %s", name)
	}
	return book
}
