package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/finsync/internal/core/domain"
	"github.com/custodia-labs/finsync/internal/core/ports/driven"
)

// Ensure Client implements the provider interfaces.
var (
	_ driven.SyncProvider        = (*Client)(nil)
	_ driven.TransactionProvider = (*Client)(nil)
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// maxErrorBody bounds how much of an error response is read.
	maxErrorBody = 4 << 10
)

// Config configures the provider client.
type Config struct {
	BaseURL   string
	Token     string
	Timeout   time.Duration
	UserAgent string

	// HTTPClient overrides the transport. The token is not applied to it.
	HTTPClient *http.Client
}

// Client talks to the aggregation provider over HTTP.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewClient creates a provider client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrBaseURLRequired
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("aggregator: parse base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("aggregator: unsupported URL scheme %q", base.Scheme)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	hc := cfg.HTTPClient
	if hc == nil {
		if cfg.Token != "" {
			ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
			hc = oauth2.NewClient(context.Background(), ts)
		} else {
			hc = &http.Client{}
		}
		hc.Timeout = timeout
	}

	return &Client{
		baseURL:   base,
		http:      hc,
		userAgent: cfg.UserAgent,
	}, nil
}

// TriggerSync asks the provider to refresh the account behind account.LinkedID.
// Any 2xx response counts as success.
func (c *Client) TriggerSync(ctx context.Context, account domain.Account) error {
	resp, err := c.do(ctx, http.MethodPost, account.LinkedID, "sync")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// transactionsResponse is the wire shape of the transactions endpoint.
type transactionsResponse struct {
	Transactions []struct {
		ID          string          `json:"id"`
		Date        time.Time       `json:"date"`
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
	} `json:"transactions"`
}

// FetchTransactions lists booked transactions for an account, newest first.
// The provider is queried by LinkedID; results are keyed by the local ID.
func (c *Client) FetchTransactions(ctx context.Context, account domain.Account) ([]domain.Transaction, error) {
	resp, err := c.do(ctx, http.MethodGet, account.LinkedID, "transactions")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body transactionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("aggregator: decode transactions: %w", err)
	}

	txns := make([]domain.Transaction, 0, len(body.Transactions))
	for _, t := range body.Transactions {
		txns = append(txns, domain.Transaction{
			ID:          t.ID,
			AccountID:   account.ID,
			Date:        t.Date,
			Description: t.Description,
			Amount:      t.Amount,
		})
	}
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})

	return txns, nil
}

// do sends a request for a provider account sub-resource and converts non-2xx
// responses into *APIError. The caller closes the body on success.
func (c *Client) do(ctx context.Context, method, linkedID, resource string) (*http.Response, error) {
	if strings.TrimSpace(linkedID) == "" {
		return nil, fmt.Errorf("%w: account is not linked", domain.ErrInvalidInput)
	}

	endpoint := c.baseURL.JoinPath("accounts", url.PathEscape(linkedID), resource)

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("aggregator: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("aggregator: %s %s: %w", method, resource, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
			URL:        endpoint.String(),
		}
	}

	return resp, nil
}

// readErrorMessage extracts a message from an error body.
// JSON bodies of the form {"error": "..."} or {"message": "..."} are unwrapped.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}

	return strings.TrimSpace(string(raw))
}
