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

// StreamRepository handles live-stream database operations
type StreamRepository struct {
	db *sqlx.DB
}

// streamSQL represents a live stream for SQL operations
type streamSQL struct {
	ID           string     `db:"id"`
	Title        string     `db:"title"`
	Description  string     `db:"description"`
	SourceName   string     `db:"source_name"`
	EmbedURL     string     `db:"embed_url"`
	ThumbnailURL string     `db:"thumbnail_url"`
	Category     string     `db:"category"`
	Language     string     `db:"language"`
	IsLive       bool       `db:"is_live"`
	ViewersCount *int       `db:"viewers_count"`
	StartedAt    time.Time  `db:"started_at"`
	ScheduledFor *time.Time `db:"scheduled_for"`
	Tags         string     `db:"tags"`
	Region       string     `db:"region"`
	IsDirectLink bool       `db:"is_direct_link"`
}

// NewStreamRepository creates a new stream repository
func NewStreamRepository(database *sqlx.DB) *StreamRepository {
	return &StreamRepository{db: database}
}

// CreateStream inserts a new live stream, keyed by its unique title.
// Inserting an already-known title is a no-op.
func (r *StreamRepository) CreateStream(ctx context.Context, stream *domain.LiveStream) error {
	if stream.ID == "" {
		stream.ID = uuid.NewString()
	}
	if stream.Language == "" {
		stream.Language = "en"
	}
	if stream.Region == "" {
		stream.Region = "global"
	}
	if stream.StartedAt.IsZero() {
		stream.StartedAt = time.Now().UTC()
	}

	sqlStream := &streamSQL{
		ID:           stream.ID,
		Title:        stream.Title,
		Description:  stream.Description,
		SourceName:   stream.SourceName,
		EmbedURL:     stream.EmbedURL,
		ThumbnailURL: stream.ThumbnailURL,
		Category:     stream.Category,
		Language:     stream.Language,
		IsLive:       stream.IsLive,
		ViewersCount: stream.ViewersCount,
		StartedAt:    stream.StartedAt,
		ScheduledFor: stream.ScheduledFor,
		Tags:         marshalStrings(stream.Tags),
		Region:       stream.Region,
		IsDirectLink: stream.IsDirectLink,
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO live_streams (id, title, description, source_name, embed_url, thumbnail_url,
			                          category, language, is_live, viewers_count, started_at,
			                          scheduled_for, tags, region, is_direct_link)
			VALUES (:id, :title, :description, :source_name, :embed_url, :thumbnail_url,
			        :category, :language, :is_live, :viewers_count, :started_at,
			        :scheduled_for, :tags, :region, :is_direct_link)
			ON CONFLICT(title) DO NOTHING
		`
		_, err := r.db.NamedExecContext(ctx, query, sqlStream)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("create stream: %w", err)}
		}
		return nil
	})
}

// GetLiveStreams retrieves live streams most-recent-first with optional
// category and region filters, capped at limit
func (r *StreamRepository) GetLiveStreams(ctx context.Context, category, region string, limit int) ([]domain.LiveStream, error) {
	if limit <= 0 {
		limit = 20
	}

	query := "SELECT * FROM live_streams WHERE is_live = 1"
	args := []interface{}{}
	if category != "" {
		query += " AND category = ?"
		args = append(args, category)
	}
	if region != "" {
		query += " AND region = ?"
		args = append(args, region)
	}
	query += " ORDER BY started_at DESC LIMIT ?"
	args = append(args, limit)

	var sqlStreams []streamSQL
	if err := r.db.SelectContext(ctx, &sqlStreams, query, args...); err != nil {
		return nil, fmt.Errorf("get live streams: %w", err)
	}

	streams := make([]domain.LiveStream, len(sqlStreams))
	for i, s := range sqlStreams {
		streams[i] = domain.LiveStream{
			ID:           s.ID,
			Title:        s.Title,
			Description:  s.Description,
			SourceName:   s.SourceName,
			EmbedURL:     s.EmbedURL,
			ThumbnailURL: s.ThumbnailURL,
			Category:     s.Category,
			Language:     s.Language,
			IsLive:       s.IsLive,
			ViewersCount: s.ViewersCount,
			StartedAt:    s.StartedAt,
			ScheduledFor: s.ScheduledFor,
			Tags:         unmarshalStrings(s.Tags),
			Region:       s.Region,
			IsDirectLink: s.IsDirectLink,
		}
	}
	return streams, nil
}

// CountStreams returns the total number of streams
func (r *StreamRepository) CountStreams(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM live_streams"); err != nil {
		return 0, fmt.Errorf("count streams: %w", err)
	}
	return count, nil
}

// defaultStreams is the fixed seed list of financial live streams
var defaultStreams = []domain.LiveStream{
	{
		Title:        "CNBC Live - Breaking Financial News",
		Description:  "Live coverage of breaking financial news, market updates, and expert analysis from CNBC",
		SourceName:   "CNBC",
		EmbedURL:     "https://www.cnbc.com/live-tv/",
		ThumbnailURL: "https://sc.cnbcfm.com/applications/cnbc.com/staticcontent/img/cnbc_logo.svg",
		Category:     domain.CategoryFinance,
		Language:     "en",
		Region:       "us",
		Tags:         []string{"breaking-news", "markets", "stocks"},
		IsLive:       true,
		IsDirectLink: true,
	},
	{
		Title:        "Bloomberg Markets Live",
		Description:  "Live market coverage and financial analysis from Bloomberg experts",
		SourceName:   "Bloomberg",
		EmbedURL:     "https://www.bloomberg.com/live",
		ThumbnailURL: "https://assets.bwbx.io/s3/javelin/public/modules/tv/images/livestream-cover-bg.jpg",
		Category:     domain.CategoryFinance,
		Language:     "en",
		Region:       "global",
		Tags:         []string{"markets", "analysis", "trading"},
		IsLive:       true,
		IsDirectLink: true,
	},
	{
		Title:        "Yahoo Finance Live",
		Description:  "Real-time market news and analysis covering stocks, crypto, and economy",
		SourceName:   "Yahoo Finance",
		EmbedURL:     "https://finance.yahoo.com/live/",
		ThumbnailURL: "https://s.yimg.com/cv/apiv2/social/images/yahoo_default_logo.png",
		Category:     domain.CategoryFinance,
		Language:     "en",
		Region:       "us",
		Tags:         []string{"live-market", "stocks", "crypto"},
		IsLive:       true,
		IsDirectLink: true,
	},
	{
		Title:        "MarketWatch Live Coverage",
		Description:  "Real-time market updates and financial news from MarketWatch",
		SourceName:   "MarketWatch",
		EmbedURL:     "https://www.marketwatch.com/",
		ThumbnailURL: "https://mw3.wsj.net/mw5/content/logos/mw_logo_social.png",
		Category:     domain.CategoryFinance,
		Language:     "en",
		Region:       "us",
		Tags:         []string{"markets", "stocks", "live-updates"},
		IsLive:       true,
		IsDirectLink: true,
	},
	{
		Title:        "CoinDesk Live - Breaking Crypto News",
		Description:  "Live coverage of cryptocurrency market movements and blockchain developments",
		SourceName:   "CoinDesk",
		EmbedURL:     "https://www.coindesk.com/",
		ThumbnailURL: "https://www.coindesk.com/resizer/_RvfKZu7vQKWo_7HP8_SEKHl1Ro=/1200x628/cloudfront-us-east-1.images.arcpublishing.com/coindesk/DUXEIQ4MTJGATOZ6KTPG5DFBXY.png",
		Category:     domain.CategoryCrypto,
		Language:     "en",
		Region:       "global",
		Tags:         []string{"crypto-news", "blockchain", "defi"},
		IsLive:       true,
		IsDirectLink: true,
	},
	{
		Title:        "Cointelegraph Live Updates",
		Description:  "Latest cryptocurrency news and live market analysis from Cointelegraph",
		SourceName:   "Cointelegraph",
		EmbedURL:     "https://cointelegraph.com/",
		ThumbnailURL: "https://images.cointelegraph.com/images/1200_aHR0cHM6Ly9zMy5jb2ludGVsZWdyYXBoLmNvbS91cGxvYWRzLzIwMjEtMTAvNGNkNDFhYjEtOTU5Yy00YzQ5LWI2YWUtNzU4NWQzM2I5Yjk1LmpwZw==.jpg",
		Category:     domain.CategoryCrypto,
		Language:     "en",
		Region:       "global",
		Tags:         []string{"cryptocurrency", "bitcoin", "analysis"},
		IsLive:       true,
		IsDirectLink: true,
	},
}

// SeedDefaults inserts the default live-stream list. Inserts are keyed by
// the unique stream title, so concurrent cold starts cannot double-seed.
func (r *StreamRepository) SeedDefaults(ctx context.Context) error {
	total, err := r.CountStreams(ctx)
	if err != nil {
		return fmt.Errorf("check existing streams: %w", err)
	}

	for _, stream := range defaultStreams {
		s := stream
		if err := r.CreateStream(ctx, &s); err != nil {
			return fmt.Errorf("seed stream %q: %w", s.Title, err)
		}
	}

	if total == 0 {
		lgr.Printf("[INFO] seeded %d default live streams", len(defaultStreams))
	}
	return nil
}
