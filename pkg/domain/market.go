package domain

import "time"

// MarketQuote is a single instrument snapshot in the market-data feed
type MarketQuote struct {
	Symbol              string  `json:"symbol"`
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	Change24h           float64 `json:"change_24h"`
	ChangePercentage24h float64 `json:"change_percentage_24h"`
	MarketCap           float64 `json:"market_cap,omitempty"`
	Volume24h           float64 `json:"volume_24h,omitempty"`
}

// MarketSnapshot groups stock and crypto quotes taken at one point in time
type MarketSnapshot struct {
	Stocks      []MarketQuote `json:"stocks"`
	Cryptos     []MarketQuote `json:"cryptos"`
	LastUpdated time.Time     `json:"last_updated"`
}

// InstitutionalHolding records a large institution's position in an asset.
// Part of the data model for admin tooling, not used by the generation job
// and not exposed over HTTP.
type InstitutionalHolding struct {
	ID                    string
	InstitutionName       string
	AssetSymbol           string
	AssetName             string
	HoldingAmount         float64
	HoldingValueUSD       float64
	PercentageOfPortfolio float64
	LastUpdated           time.Time
	ChangeAmount          *float64
	ChangePercentage      *float64
}
