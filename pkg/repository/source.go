package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cryptodigest/cryptodigest/pkg/domain"
)

// SourceRepository handles news-source database operations
type SourceRepository struct {
	db *sqlx.DB
}

// sourceSQL represents a news source for SQL operations
type sourceSQL struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	URL         string     `db:"url"`
	Category    string     `db:"category"`
	IsActive    bool       `db:"is_active"`
	LastScraped *time.Time `db:"last_scraped"`
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(database *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: database}
}

// CreateSource inserts a new source, keyed by its unique name. Inserting
// an already-known name is a no-op, which makes seeding idempotent.
func (r *SourceRepository) CreateSource(ctx context.Context, source *domain.NewsSource) error {
	if source.ID == "" {
		source.ID = uuid.NewString()
	}

	sqlSource := &sourceSQL{
		ID:          source.ID,
		Name:        source.Name,
		URL:         source.URL,
		Category:    source.Category,
		IsActive:    source.IsActive,
		LastScraped: source.LastScraped,
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO news_sources (id, name, url, category, is_active, last_scraped)
			VALUES (:id, :name, :url, :category, :is_active, :last_scraped)
			ON CONFLICT(name) DO NOTHING
		`
		_, err := r.db.NamedExecContext(ctx, query, sqlSource)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("create source: %w", err)}
		}
		return nil
	})
}

// GetSources retrieves sources, optionally only active ones
func (r *SourceRepository) GetSources(ctx context.Context, activeOnly bool) ([]domain.NewsSource, error) {
	query := "SELECT * FROM news_sources"
	if activeOnly {
		query += " WHERE is_active = 1"
	}
	query += " ORDER BY name"

	var sqlSources []sourceSQL
	if err := r.db.SelectContext(ctx, &sqlSources, query); err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	sources := make([]domain.NewsSource, len(sqlSources))
	for i, s := range sqlSources {
		sources[i] = domain.NewsSource{
			ID:          s.ID,
			Name:        s.Name,
			URL:         s.URL,
			Category:    s.Category,
			IsActive:    s.IsActive,
			LastScraped: s.LastScraped,
		}
	}
	return sources, nil
}

// CountSources returns total and active source counts
func (r *SourceRepository) CountSources(ctx context.Context) (total, active int, err error) {
	if err = r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM news_sources"); err != nil {
		return 0, 0, fmt.Errorf("count sources: %w", err)
	}
	if err = r.db.GetContext(ctx, &active, "SELECT COUNT(*) FROM news_sources WHERE is_active = 1"); err != nil {
		return 0, 0, fmt.Errorf("count active sources: %w", err)
	}
	return total, active, nil
}

// defaultSources is the fixed seed list of news outlets
var defaultSources = []domain.NewsSource{
	{Name: "Financial Times", URL: "https://www.ft.com", Category: domain.CategoryFinance, IsActive: true},
	{Name: "Bloomberg", URL: "https://www.bloomberg.com", Category: domain.CategoryFinance, IsActive: true},
	{Name: "Reuters Finance", URL: "https://www.reuters.com/business/finance", Category: domain.CategoryFinance, IsActive: true},
	{Name: "Wall Street Journal", URL: "https://www.wsj.com", Category: domain.CategoryFinance, IsActive: true},
	{Name: "MarketWatch", URL: "https://www.marketwatch.com", Category: domain.CategoryFinance, IsActive: true},
	{Name: "CNBC", URL: "https://www.cnbc.com", Category: domain.CategoryFinance, IsActive: true},
	{Name: "Yahoo Finance", URL: "https://finance.yahoo.com", Category: domain.CategoryFinance, IsActive: true},
	{Name: "CoinDesk", URL: "https://www.coindesk.com", Category: domain.CategoryCrypto, IsActive: true},
	{Name: "Cointelegraph", URL: "https://cointelegraph.com", Category: domain.CategoryCrypto, IsActive: true},
	{Name: "CoinMarketCap News", URL: "https://coinmarketcap.com/news", Category: domain.CategoryCrypto, IsActive: true},
	{Name: "The Block", URL: "https://www.theblock.co", Category: domain.CategoryCrypto, IsActive: true},
	{Name: "Decrypt", URL: "https://decrypt.co", Category: domain.CategoryCrypto, IsActive: true},
}

// SeedDefaults inserts the default source list. Inserts are keyed by the
// unique source name, so concurrent cold starts cannot double-seed.
func (r *SourceRepository) SeedDefaults(ctx context.Context) error {
	total, _, err := r.CountSources(ctx)
	if err != nil {
		return fmt.Errorf("check existing sources: %w", err)
	}

	for _, src := range defaultSources {
		s := src
		if err := r.CreateSource(ctx, &s); err != nil {
			return fmt.Errorf("seed source %q: %w", s.Name, err)
		}
	}

	if total == 0 {
		lgr.Printf("[INFO] seeded %d default news sources", len(defaultSources))
	}
	return nil
}
