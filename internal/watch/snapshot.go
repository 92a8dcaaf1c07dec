package watch

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anjalxbt/mooncap/internal/dex"
)

// Snapshot holds the derived metrics from one successful fetch. Every
// numeric field defaults to zero when the source field is missing, so
// downstream code never sees a null.
type Snapshot struct {
	TokenName   string
	TokenSymbol string

	PriceUsd     float64
	MarketCapUsd float64
	FdvUsd       float64

	Volume24hUsd float64
	LiquidityUsd float64

	PriceChange1hPct  float64
	PriceChange24hPct float64

	Buys24h  uint64
	Sells24h uint64
}

// SnapshotFromPair maps a raw API pair record into a Snapshot.
// The primary metric is market cap, falling back to fully-diluted
// valuation when market cap is absent, then to zero.
func SnapshotFromPair(p *dex.Pair) Snapshot {
	var s Snapshot
	if p == nil {
		return s
	}

	if p.BaseToken != nil {
		s.TokenName = p.BaseToken.Name
		s.TokenSymbol = p.BaseToken.Symbol
	}

	if p.PriceUsd != nil {
		// Prices arrive as decimal strings with more precision than a
		// float literal would survive round-tripping through JSON.
		if d, err := decimal.NewFromString(strings.TrimSpace(*p.PriceUsd)); err == nil {
			s.PriceUsd = d.InexactFloat64()
		}
	}

	switch {
	case p.MarketCap != nil:
		s.MarketCapUsd = *p.MarketCap
	case p.Fdv != nil:
		s.MarketCapUsd = *p.Fdv
	}
	if p.Fdv != nil {
		s.FdvUsd = *p.Fdv
	}

	if p.Volume != nil && p.Volume.H24 != nil {
		s.Volume24hUsd = *p.Volume.H24
	}

	if p.PriceChange != nil {
		if p.PriceChange.H1 != nil {
			s.PriceChange1hPct = *p.PriceChange.H1
		}
		if p.PriceChange.H24 != nil {
			s.PriceChange24hPct = *p.PriceChange.H24
		}
	}

	if p.Liquidity != nil && p.Liquidity.Usd != nil {
		s.LiquidityUsd = *p.Liquidity.Usd
	}

	if p.Txns != nil && p.Txns.H24 != nil {
		if p.Txns.H24.Buys != nil {
			s.Buys24h = *p.Txns.H24.Buys
		}
		if p.Txns.H24.Sells != nil {
			s.Sells24h = *p.Txns.H24.Sells
		}
	}

	return s
}
