package server

import (
	"context"
	"time"

	"github.com/cryptodigest/cryptodigest/pkg/domain"
	"github.com/cryptodigest/cryptodigest/pkg/repository"
)

// RepositoryAdapter bridges the repository layer to the server's Database
// interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates an adapter over the repositories
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// GetArticles delegates to the article repository
func (a *RepositoryAdapter) GetArticles(ctx context.Context, category string, limit int) ([]domain.Article, error) {
	return a.repos.Article.GetArticles(ctx, category, limit)
}

// GetRecentArticles delegates to the article repository
func (a *RepositoryAdapter) GetRecentArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	return a.repos.Article.GetRecentArticles(ctx, limit)
}

// CountArticles delegates to the article repository
func (a *RepositoryAdapter) CountArticles(ctx context.Context) (int, error) {
	return a.repos.Article.CountArticles(ctx)
}

// CountArticlesSince delegates to the article repository
func (a *RepositoryAdapter) CountArticlesSince(ctx context.Context, ts time.Time) (int, error) {
	return a.repos.Article.CountArticlesSince(ctx, ts)
}

// CountArticlesByCategory delegates to the article repository
func (a *RepositoryAdapter) CountArticlesByCategory(ctx context.Context, category string) (int, error) {
	return a.repos.Article.CountArticlesByCategory(ctx, category)
}

// GetSources delegates to the source repository
func (a *RepositoryAdapter) GetSources(ctx context.Context, activeOnly bool) ([]domain.NewsSource, error) {
	return a.repos.Source.GetSources(ctx, activeOnly)
}

// CountSources delegates to the source repository
func (a *RepositoryAdapter) CountSources(ctx context.Context) (total, active int, err error) {
	return a.repos.Source.CountSources(ctx)
}

// GetLiveStreams delegates to the stream repository
func (a *RepositoryAdapter) GetLiveStreams(ctx context.Context, category, region string, limit int) ([]domain.LiveStream, error) {
	return a.repos.Stream.GetLiveStreams(ctx, category, region, limit)
}
