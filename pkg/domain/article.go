package domain

import "time"

// Article represents a published news article. Articles are append-only:
// once created they are never updated or deleted.
type Article struct {
	ID                string
	Title             string
	Content           string
	Summary           string
	Category          string
	Tags              []string
	SEOKeywords       []string
	PublishedAt       time.Time
	SourceName        string
	SourceAttribution string
	AIGenerated       bool
}

// GeneratedArticle is the fixed-shape record the generation service must
// produce for every source.
type GeneratedArticle struct {
	Title             string   `json:"title"`
	Content           string   `json:"content"`
	Summary           string   `json:"summary"`
	Tags              []string `json:"tags"`
	SEOKeywords       []string `json:"seo_keywords"`
	SourceAttribution string   `json:"source_attribution"`
}

// categories with dedicated keyword lists, everything else falls back to general
const (
	CategoryFinance = "finance"
	CategoryCrypto  = "crypto"
	CategoryGeneral = "general"
)

// CategoryKeywords maps an article category to the candidate topic
// keywords the prompt builder draws from.
var CategoryKeywords = map[string][]string{
	CategoryFinance: {"market analysis", "stock market", "financial news", "economic indicators", "investment trends"},
	CategoryCrypto:  {"cryptocurrency", "bitcoin", "blockchain", "defi", "crypto market"},
	CategoryGeneral: {"financial markets", "economic news", "investment", "trading", "market update"},
}

// KeywordsFor returns the keyword list for a category, falling back to
// the general list for unrecognized categories.
func KeywordsFor(category string) (normalized string, keywords []string) {
	if kw, ok := CategoryKeywords[category]; ok {
		return category, kw
	}
	return CategoryGeneral, CategoryKeywords[CategoryGeneral]
}
