package dex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pairJSON = `{
	"pairs": [
		{
			"chainId": "solana",
			"dexId": "raydium",
			"pairAddress": "PairAddr111",
			"baseToken": {"address": "TokAddr111", "name": "Moon Token", "symbol": "MOON"},
			"priceUsd": "0.00012345",
			"fdv": 90000,
			"marketCap": 75000,
			"txns": {"h24": {"buys": 150, "sells": 90}},
			"volume": {"h24": 12345.67},
			"priceChange": {"h1": 2.5, "h24": -7.25},
			"liquidity": {"usd": 4200}
		},
		{
			"chainId": "solana",
			"dexId": "orca",
			"pairAddress": "PairAddr222",
			"marketCap": 100
		}
	]
}`

func TestFetchPairTokenLookup(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(pairJSON))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	pair, err := client.FetchPair(context.Background(), "solana", "TokAddr111")
	require.NoError(t, err)

	assert.Equal(t, "/tokens/TokAddr111", gotPath)
	assert.Equal(t, "PairAddr111", pair.PairAddress, "first pair in the response wins")
	require.NotNil(t, pair.BaseToken)
	assert.Equal(t, "MOON", pair.BaseToken.Symbol)
	require.NotNil(t, pair.MarketCap)
	assert.Equal(t, 75000.0, *pair.MarketCap)
	require.NotNil(t, pair.PriceUsd)
	assert.Equal(t, "0.00012345", *pair.PriceUsd)
}

func TestFetchPairFallsBackToPairEndpoint(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/tokens/PairAddr111" {
			// Token lookup finds nothing for a pair address.
			w.Write([]byte(`{"pairs": []}`))
			return
		}
		w.Write([]byte(pairJSON))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	pair, err := client.FetchPair(context.Background(), "solana", "PairAddr111")
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, "/tokens/PairAddr111", paths[0])
	assert.Equal(t, "/pairs/solana/PairAddr111", paths[1])
	assert.Equal(t, "PairAddr111", pair.PairAddress)
}

func TestFetchPairNoPairsAnywhere(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pairs": []}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.FetchPair(context.Background(), "solana", "nothing")
	assert.ErrorIs(t, err, ErrNoPairs)
}

func TestFetchPairNullPairsField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pairs": null}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.FetchPair(context.Background(), "solana", "nothing")
	assert.ErrorIs(t, err, ErrNoPairs)
}

func TestFetchPairServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.FetchPair(context.Background(), "solana", "addr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestFetchPairMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pairs": [`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := client.FetchPair(context.Background(), "solana", "addr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON parse error")
}

func TestFetchPairContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(pairJSON))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchPair(ctx, "solana", "addr")
	assert.Error(t, err)
}

func TestSparseRecordDecodesWithNilFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pairs": [{"chainId": "solana", "pairAddress": "X"}]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	pair, err := client.FetchPair(context.Background(), "solana", "X")
	require.NoError(t, err)

	assert.Nil(t, pair.MarketCap)
	assert.Nil(t, pair.Fdv)
	assert.Nil(t, pair.PriceUsd)
	assert.Nil(t, pair.Txns)
	assert.Nil(t, pair.BaseToken)
}

func TestNewClientOptions(t *testing.T) {
	client := NewClient(
		WithBaseURL("http://example.test"),
		WithTimeout(3*time.Second),
	)

	assert.Equal(t, "http://example.test", client.baseURL)
	assert.Equal(t, 3*time.Second, client.httpClient.Timeout)

	// Empty base URL override keeps the default.
	def := NewClient(WithBaseURL(""))
	assert.Equal(t, defaultBaseURL, def.baseURL)
}
