package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptodigest/cryptodigest/pkg/domain"
)

func TestArticleRepository_CreateArticle(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	published := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	article := &domain.Article{
		Title:             "Bitcoin Breaks New High",
		Content:           "According to CoinDesk, bitcoin reached a new all-time high today.",
		Summary:           "CoinDesk reports a new bitcoin record.",
		Category:          domain.CategoryCrypto,
		Tags:              []string{"breaking-news", "crypto", "bitcoin"},
		SEOKeywords:       []string{"bitcoin", "crypto market"},
		PublishedAt:       published,
		SourceName:        "CoinDesk",
		SourceAttribution: "Information sourced from CoinDesk",
		AIGenerated:       true,
	}

	require.NoError(t, repos.Article.CreateArticle(ctx, article))
	require.NotEmpty(t, article.ID, "missing ID is generated on insert")

	articles, err := repos.Article.GetArticles(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	got := articles[0]
	assert.Equal(t, article.ID, got.ID)
	assert.Equal(t, "Bitcoin Breaks New High", got.Title)
	assert.Equal(t, article.Content, got.Content)
	assert.Equal(t, article.Summary, got.Summary)
	assert.Equal(t, domain.CategoryCrypto, got.Category)
	assert.Equal(t, []string{"breaking-news", "crypto", "bitcoin"}, got.Tags)
	assert.Equal(t, []string{"bitcoin", "crypto market"}, got.SEOKeywords)
	assert.WithinDuration(t, published, got.PublishedAt, time.Second)
	assert.Equal(t, "CoinDesk", got.SourceName)
	assert.Equal(t, "Information sourced from CoinDesk", got.SourceAttribution)
	assert.True(t, got.AIGenerated)
}

func TestArticleRepository_CreateArticleDefaults(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	article := &domain.Article{Title: "t", Content: "c", Summary: "s", Category: domain.CategoryFinance}
	require.NoError(t, repos.Article.CreateArticle(ctx, article))

	assert.NotEmpty(t, article.ID)
	assert.WithinDuration(t, time.Now().UTC(), article.PublishedAt, 5*time.Second)

	// nil slices round-trip as empty, not nil
	articles, err := repos.Article.GetArticles(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, []string{}, articles[0].Tags)
	assert.Equal(t, []string{}, articles[0].SEOKeywords)
}

func TestArticleRepository_GetArticles(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		category := domain.CategoryFinance
		if i%2 == 0 {
			category = domain.CategoryCrypto
		}
		article := &domain.Article{
			Title:       fmt.Sprintf("article %d", i),
			Content:     "content",
			Summary:     "summary",
			Category:    category,
			PublishedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repos.Article.CreateArticle(ctx, article))
	}

	t.Run("most recent first", func(t *testing.T) {
		articles, err := repos.Article.GetArticles(ctx, "", 10)
		require.NoError(t, err)
		require.Len(t, articles, 5)
		assert.Equal(t, "article 4", articles[0].Title)
		assert.Equal(t, "article 0", articles[4].Title)
	})

	t.Run("category filter", func(t *testing.T) {
		articles, err := repos.Article.GetArticles(ctx, domain.CategoryCrypto, 10)
		require.NoError(t, err)
		require.Len(t, articles, 3)
		for _, a := range articles {
			assert.Equal(t, domain.CategoryCrypto, a.Category)
		}
	})

	t.Run("all means no filter", func(t *testing.T) {
		articles, err := repos.Article.GetArticles(ctx, "all", 10)
		require.NoError(t, err)
		assert.Len(t, articles, 5)
	})

	t.Run("limit applies", func(t *testing.T) {
		articles, err := repos.Article.GetArticles(ctx, "", 2)
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "article 4", articles[0].Title)
		assert.Equal(t, "article 3", articles[1].Title)
	})

	t.Run("zero limit defaults to 20", func(t *testing.T) {
		articles, err := repos.Article.GetArticles(ctx, "", 0)
		require.NoError(t, err)
		assert.Len(t, articles, 5)
	})
}

func TestArticleRepository_Counts(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	cutoff := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	articles := []domain.Article{
		{Title: "old finance", Content: "c", Summary: "s", Category: domain.CategoryFinance, PublishedAt: cutoff.Add(-24 * time.Hour)},
		{Title: "new finance", Content: "c", Summary: "s", Category: domain.CategoryFinance, PublishedAt: cutoff.Add(time.Hour)},
		{Title: "new crypto", Content: "c", Summary: "s", Category: domain.CategoryCrypto, PublishedAt: cutoff.Add(2 * time.Hour)},
	}
	for i := range articles {
		require.NoError(t, repos.Article.CreateArticle(ctx, &articles[i]))
	}

	total, err := repos.Article.CountArticles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	since, err := repos.Article.CountArticlesSince(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 2, since)

	finance, err := repos.Article.CountArticlesByCategory(ctx, domain.CategoryFinance)
	require.NoError(t, err)
	assert.Equal(t, 2, finance)

	crypto, err := repos.Article.CountArticlesByCategory(ctx, domain.CategoryCrypto)
	require.NoError(t, err)
	assert.Equal(t, 1, crypto)
}

func TestArticleRepository_GetRecentArticles(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		article := &domain.Article{
			Title:       fmt.Sprintf("article %d", i),
			Content:     "c",
			Summary:     "s",
			Category:    domain.CategoryGeneral,
			PublishedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repos.Article.CreateArticle(ctx, article))
	}

	recent, err := repos.Article.GetRecentArticles(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "article 6", recent[0].Title)
}
