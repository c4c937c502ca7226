package server

import (
	"time"

	"github.com/cryptodigest/cryptodigest/pkg/domain"
)

// StaticMarketProvider serves a fixed market snapshot. It stands in for a
// real market-data integration behind the MarketProvider interface.
type StaticMarketProvider struct {
	now func() time.Time
}

// NewStaticMarketProvider creates a provider returning fixed quotes
func NewStaticMarketProvider() *StaticMarketProvider {
	return &StaticMarketProvider{now: time.Now}
}

// Snapshot returns the fixed stock and crypto quotes stamped with the
// current time
func (p *StaticMarketProvider) Snapshot() domain.MarketSnapshot {
	return domain.MarketSnapshot{
		Stocks: []domain.MarketQuote{
			{Symbol: "AAPL", Name: "Apple Inc.", Price: 175.23, Change24h: 2.15, ChangePercentage24h: 1.24},
			{Symbol: "GOOGL", Name: "Alphabet Inc.", Price: 142.56, Change24h: -1.83, ChangePercentage24h: -1.27},
			{Symbol: "MSFT", Name: "Microsoft Corporation", Price: 378.91, Change24h: 4.67, ChangePercentage24h: 1.25},
			{Symbol: "TSLA", Name: "Tesla, Inc.", Price: 248.50, Change24h: -8.24, ChangePercentage24h: -3.21},
			{Symbol: "NVDA", Name: "NVIDIA Corporation", Price: 456.78, Change24h: 12.34, ChangePercentage24h: 2.78},
		},
		Cryptos: []domain.MarketQuote{
			{Symbol: "BTC", Name: "Bitcoin", Price: 43250.67, Change24h: 891.23, ChangePercentage24h: 2.10, MarketCap: 847000000000},
			{Symbol: "ETH", Name: "Ethereum", Price: 2678.45, Change24h: -45.67, ChangePercentage24h: -1.68, MarketCap: 321000000000},
			{Symbol: "BNB", Name: "Binance Coin", Price: 345.12, Change24h: 8.97, ChangePercentage24h: 2.67, MarketCap: 51000000000},
			{Symbol: "SOL", Name: "Solana", Price: 78.34, Change24h: 3.21, ChangePercentage24h: 4.28, MarketCap: 33000000000},
			{Symbol: "ADA", Name: "Cardano", Price: 0.52, Change24h: 0.018, ChangePercentage24h: 3.57, MarketCap: 18000000000},
		},
		LastUpdated: p.now().UTC(),
	}
}
