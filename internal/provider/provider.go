// Package provider implements the aggregation-provider boundary: token
// exchange and read-only retrieval of account and transaction snapshots.
// The analysis engine never talks to it directly; it only sees the plain
// collections this package returns.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/smartfinance/smartfinance-go/pkg/smartfinance"
)

const (
	tokenEndpoint        = "/v1/token/exchange"
	accountsEndpoint     = "/v1/accounts"
	transactionsEndpoint = "/v1/transactions"

	contentType = "application/json"
	userAgent   = "smartfinance-go/1.0.0"
)

// Options configures the provider client.
type Options struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
	MaxRetries   int
	Logger       zerolog.Logger

	// HTTPClient allows substituting the underlying client, mainly in tests.
	HTTPClient *http.Client
}

// Client talks to the aggregation provider's REST API. It implements
// smartfinance.DataProvider and is safe for concurrent use.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *retryablehttp.Client
	logger       zerolog.Logger

	// authMu serializes token exchanges; mu guards token reads and writes.
	authMu sync.Mutex
	mu     sync.Mutex
	token  string
}

// New creates a provider client.
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = opts.MaxRetries
	retryClient.Logger = nil
	if opts.HTTPClient != nil {
		retryClient.HTTPClient = opts.HTTPClient
	}
	retryClient.HTTPClient.Timeout = opts.Timeout

	return &Client{
		baseURL:      opts.BaseURL,
		clientID:     opts.ClientID,
		clientSecret: opts.ClientSecret,
		httpClient:   retryClient,
		logger:       opts.Logger,
	}
}

// Authenticate exchanges the client credentials for a bearer token. It is
// called lazily by the fetch methods when no token is held.
func (c *Client) Authenticate(ctx context.Context) error {
	body := map[string]string{
		"clientId":     c.clientID,
		"clientSecret": c.clientSecret,
	}

	var result struct {
		AccessToken string `json:"accessToken"`
		ExpiresIn   int    `json:"expiresIn"`
	}
	if err := c.post(ctx, tokenEndpoint, body, &result); err != nil {
		return errors.Wrap(err, "token exchange failed")
	}
	if result.AccessToken == "" {
		return errors.New("token exchange returned an empty token")
	}

	c.setToken(result.AccessToken)
	c.logger.Debug().Int("expiresIn", result.ExpiresIn).Msg("provider token exchanged")
	return nil
}

// Accounts retrieves the current account snapshots.
func (c *Client) Accounts(ctx context.Context) ([]smartfinance.Account, error) {
	var result struct {
		Accounts []wireAccount `json:"accounts"`
	}
	if err := c.getAuthed(ctx, accountsEndpoint, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get accounts")
	}

	accounts := make([]smartfinance.Account, 0, len(result.Accounts))
	for _, wa := range result.Accounts {
		a, err := wa.toAccount()
		if err != nil {
			return nil, errors.Wrapf(err, "account %s", wa.ID)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// Transactions retrieves transactions dated within [start, end].
func (c *Client) Transactions(ctx context.Context, start, end time.Time) ([]smartfinance.Transaction, error) {
	path := fmt.Sprintf("%s?start=%s&end=%s",
		transactionsEndpoint,
		start.UTC().Format("2006-01-02"),
		end.UTC().Format("2006-01-02"))

	var result struct {
		Transactions []wireTransaction `json:"transactions"`
	}
	if err := c.getAuthed(ctx, path, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get transactions")
	}

	txns := make([]smartfinance.Transaction, 0, len(result.Transactions))
	for _, wt := range result.Transactions {
		t, err := wt.toTransaction()
		if err != nil {
			return nil, errors.Wrapf(err, "transaction %s", wt.ID)
		}
		txns = append(txns, t)
	}

	c.logger.Debug().Int("count", len(txns)).Msg("transactions fetched")
	return txns, nil
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// invalidateToken drops the held token so the next call re-authenticates.
func (c *Client) invalidateToken() {
	c.setToken("")
}

func (c *Client) ensureToken(ctx context.Context) error {
	c.authMu.Lock()
	defer c.authMu.Unlock()
	if c.currentToken() != "" {
		return nil
	}
	return c.Authenticate(ctx)
}

// getAuthed performs an authenticated GET. A 401 invalidates the held token
// and retries once with a fresh one, covering expiry between calls.
func (c *Client) getAuthed(ctx context.Context, path string, result interface{}) error {
	if err := c.ensureToken(ctx); err != nil {
		return err
	}

	err := c.get(ctx, path, result)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		c.logger.Debug().Msg("provider token rejected, re-authenticating")
		c.invalidateToken()
		if err := c.ensureToken(ctx); err != nil {
			return err
		}
		return c.get(ctx, path, result)
	}
	return err
}

func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, result)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, result interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request")
	}
	return c.do(ctx, http.MethodPost, path, payload, result)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, result interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", contentType)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", userAgent)
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return errors.Wrap(err, "failed to parse response")
		}
	}
	return nil
}

// APIError represents a non-200 provider response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}
