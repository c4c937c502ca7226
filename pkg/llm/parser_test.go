package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArticle(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		content := `{
  "title": "Fed Holds Rates Steady",
  "content": "According to Reuters Finance, the Federal Reserve kept rates unchanged.",
  "summary": "Reuters Finance reports no change in rates.",
  "tags": ["breaking-news", "finance"],
  "seo_keywords": ["fed", "rates"],
  "source_attribution": "Information sourced from Reuters Finance"
}`
		generated, err := parseArticle(content, "Reuters Finance")
		require.NoError(t, err)
		assert.Equal(t, "Fed Holds Rates Steady", generated.Title)
		assert.Equal(t, []string{"breaking-news", "finance"}, generated.Tags)
		assert.Equal(t, []string{"fed", "rates"}, generated.SEOKeywords)
		assert.Equal(t, "Information sourced from Reuters Finance", generated.SourceAttribution)
	})

	t.Run("object wrapped in prose and fences", func(t *testing.T) {
		content := "Sure! Here is your article:\n```json\n" +
			`{"title": "t", "content": "c", "summary": "s"}` + "\n```\nLet me know if you need changes."
		generated, err := parseArticle(content, "CNBC")
		require.NoError(t, err)
		assert.Equal(t, "t", generated.Title)
	})

	t.Run("defaults for optional fields", func(t *testing.T) {
		generated, err := parseArticle(`{"title": "t", "content": "c", "summary": "s"}`, "MarketWatch")
		require.NoError(t, err)
		assert.Equal(t, []string{}, generated.Tags)
		assert.Equal(t, []string{}, generated.SEOKeywords)
		assert.Equal(t, "Source: MarketWatch", generated.SourceAttribution)
	})

	t.Run("no json object", func(t *testing.T) {
		_, err := parseArticle("I cannot produce that article.", "CNBC")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no json object found")
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := parseArticle(`{"title": "t", "content": }`, "CNBC")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed output")
	})

	t.Run("missing required fields", func(t *testing.T) {
		tests := []string{
			`{"content": "c", "summary": "s"}`,
			`{"title": "t", "summary": "s"}`,
			`{"title": "t", "content": "c"}`,
		}
		for _, content := range tests {
			_, err := parseArticle(content, "CNBC")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "missing required fields")
		}
	})
}
