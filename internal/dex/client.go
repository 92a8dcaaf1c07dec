// Package dex implements a minimal DexScreener API client for looking up a
// single trading pair by token or pair address.
package dex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/anjalxbt/mooncap/internal/logger"
)

const defaultBaseURL = "https://api.dexscreener.com/latest/dex"

// Sentinel errors returned by lookups.
var (
	// ErrNoPairs means the API answered but the response held no pair data.
	ErrNoPairs = errors.New("no pair data found in response")
)

// Client talks to the DexScreener latest/dex endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        logger.Logger
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used in tests).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a DexScreener client with a 10s request timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: defaultBaseURL,
		log:     logger.NewEnvLogger("[dex]"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// response is the envelope DexScreener wraps pair lists in.
type response struct {
	Pairs []Pair `json:"pairs"`
}

// Pair is one trading pair record. Fields the API may omit are pointers so
// missing values are distinguishable from zeros.
type Pair struct {
	ChainID     string       `json:"chainId"`
	DexID       string       `json:"dexId"`
	PairAddress string       `json:"pairAddress"`
	BaseToken   *Token       `json:"baseToken"`
	QuoteToken  *Token       `json:"quoteToken"`
	PriceNative *string      `json:"priceNative"`
	PriceUsd    *string      `json:"priceUsd"`
	Fdv         *float64     `json:"fdv"`
	MarketCap   *float64     `json:"marketCap"`
	Txns        *Txns        `json:"txns"`
	Volume      *Volume      `json:"volume"`
	PriceChange *PriceChange `json:"priceChange"`
	Liquidity   *Liquidity   `json:"liquidity"`
}

// Token identifies one side of a pair.
type Token struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// Txns holds buy/sell counts per window.
type Txns struct {
	M5  *TxnCount `json:"m5"`
	H1  *TxnCount `json:"h1"`
	H6  *TxnCount `json:"h6"`
	H24 *TxnCount `json:"h24"`
}

// TxnCount is a buy/sell tally.
type TxnCount struct {
	Buys  *uint64 `json:"buys"`
	Sells *uint64 `json:"sells"`
}

// Volume holds USD volume per window.
type Volume struct {
	H24 *float64 `json:"h24"`
	H6  *float64 `json:"h6"`
	H1  *float64 `json:"h1"`
	M5  *float64 `json:"m5"`
}

// PriceChange holds percentage price change per window.
type PriceChange struct {
	H1  *float64 `json:"h1"`
	H6  *float64 `json:"h6"`
	H24 *float64 `json:"h24"`
}

// Liquidity holds pool liquidity figures.
type Liquidity struct {
	Usd   *float64 `json:"usd"`
	Base  *float64 `json:"base"`
	Quote *float64 `json:"quote"`
}

// FetchPair looks up a pair record. It tries the /tokens/ endpoint first,
// which resolves token contract addresses, then falls back to
// /pairs/{chain}/{address} for pair addresses. The first pair found in
// either response wins.
func (c *Client) FetchPair(ctx context.Context, chain, address string) (*Pair, error) {
	tokenURL := fmt.Sprintf("%s/tokens/%s", c.baseURL, address)
	pair, err := c.tryFetch(ctx, tokenURL)
	if err == nil {
		return pair, nil
	}
	c.log.Debug("token lookup failed (%v), falling back to pair lookup", err)

	pairURL := fmt.Sprintf("%s/pairs/%s/%s", c.baseURL, chain, address)
	return c.tryFetch(ctx, pairURL)
}

// tryFetch requests one URL and extracts the first pair from the response.
func (c *Client) tryFetch(ctx context.Context, url string) (*Pair, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status: %s", resp.Status)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w", err)
	}

	if len(body.Pairs) == 0 {
		return nil, ErrNoPairs
	}

	return &body.Pairs[0], nil
}
