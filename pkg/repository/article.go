package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cryptodigest/cryptodigest/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID                string    `db:"id"`
	Title             string    `db:"title"`
	Content           string    `db:"content"`
	Summary           string    `db:"summary"`
	Category          string    `db:"category"`
	Tags              string    `db:"tags"`
	SEOKeywords       string    `db:"seo_keywords"`
	PublishedAt       time.Time `db:"published_at"`
	SourceName        string    `db:"source_name"`
	SourceAttribution string    `db:"source_attribution"`
	AIGenerated       bool      `db:"ai_generated"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// CreateArticle inserts a new article. A missing ID gets a generated one
// and a zero publication time is set to now, both reflected back on the
// passed article.
func (r *ArticleRepository) CreateArticle(ctx context.Context, article *domain.Article) error {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	if article.PublishedAt.IsZero() {
		article.PublishedAt = time.Now().UTC()
	}

	sqlArticle := &articleSQL{
		ID:                article.ID,
		Title:             article.Title,
		Content:           article.Content,
		Summary:           article.Summary,
		Category:          article.Category,
		Tags:              marshalStrings(article.Tags),
		SEOKeywords:       marshalStrings(article.SEOKeywords),
		PublishedAt:       article.PublishedAt,
		SourceName:        article.SourceName,
		SourceAttribution: article.SourceAttribution,
		AIGenerated:       article.AIGenerated,
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO articles (id, title, content, summary, category, tags, seo_keywords,
			                      published_at, source_name, source_attribution, ai_generated)
			VALUES (:id, :title, :content, :summary, :category, :tags, :seo_keywords,
			        :published_at, :source_name, :source_attribution, :ai_generated)
		`
		_, err := r.db.NamedExecContext(ctx, query, sqlArticle)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("create article: %w", err)}
		}
		return nil
	})
}

// GetArticles retrieves articles most-recent-first, optionally filtered
// by category. The "all" category and the empty string mean no filter.
func (r *ArticleRepository) GetArticles(ctx context.Context, category string, limit int) ([]domain.Article, error) {
	if limit <= 0 {
		limit = 20
	}

	query := "SELECT * FROM articles"
	args := []interface{}{}
	if category != "" && category != "all" {
		query += " WHERE category = ?"
		args = append(args, category)
	}
	query += " ORDER BY published_at DESC LIMIT ?"
	args = append(args, limit)

	var sqlArticles []articleSQL
	if err := r.db.SelectContext(ctx, &sqlArticles, query, args...); err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}

	articles := make([]domain.Article, len(sqlArticles))
	for i, a := range sqlArticles {
		articles[i] = *r.toDomainArticle(&a)
	}
	return articles, nil
}

// GetRecentArticles retrieves the most recently published articles
func (r *ArticleRepository) GetRecentArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	return r.GetArticles(ctx, "", limit)
}

// CountArticles returns the total number of articles
func (r *ArticleRepository) CountArticles(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles"); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// CountArticlesSince returns the number of articles published at or after ts
func (r *ArticleRepository) CountArticlesSince(ctx context.Context, ts time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles WHERE published_at >= ?", ts)
	if err != nil {
		return 0, fmt.Errorf("count articles since: %w", err)
	}
	return count, nil
}

// CountArticlesByCategory returns the number of articles in a category
func (r *ArticleRepository) CountArticlesByCategory(ctx context.Context, category string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles WHERE category = ?", category)
	if err != nil {
		return 0, fmt.Errorf("count articles by category: %w", err)
	}
	return count, nil
}

func (r *ArticleRepository) toDomainArticle(a *articleSQL) *domain.Article {
	return &domain.Article{
		ID:                a.ID,
		Title:             a.Title,
		Content:           a.Content,
		Summary:           a.Summary,
		Category:          a.Category,
		Tags:              unmarshalStrings(a.Tags),
		SEOKeywords:       unmarshalStrings(a.SEOKeywords),
		PublishedAt:       a.PublishedAt,
		SourceName:        a.SourceName,
		SourceAttribution: a.SourceAttribution,
		AIGenerated:       a.AIGenerated,
	}
}
