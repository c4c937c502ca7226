package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/cryptodigest/cryptodigest/pkg/auth"
	"github.com/cryptodigest/cryptodigest/pkg/domain"
	"github.com/cryptodigest/cryptodigest/pkg/scheduler"
)

// rootHandler returns API status
func (s *Server) rootHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]string{
		"message": "cryptodigest API",
		"status":  "active",
		"version": s.version,
	})
}

// articlesHandler lists articles, optionally filtered by category
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := r.URL.Query().Get("category")
	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	articles, err := s.db.GetArticles(ctx, category, limit)
	if err != nil {
		log.Printf("[ERROR] failed to get articles: %v", err)
		renderError(w, r, fmt.Errorf("error fetching articles: %w", err), http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, articlesView(articles))
}

// marketDataHandler returns the market snapshot
func (s *Server) marketDataHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.market.Snapshot())
}

// seoStatsHandler returns aggregate article counts
func (s *Server) seoStatsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := s.db.CountArticles(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to count articles: %v", err)
		renderError(w, r, fmt.Errorf("error fetching seo stats: %w", err), http.StatusInternalServerError)
		return
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	todayCount, err := s.db.CountArticlesSince(ctx, today)
	if err != nil {
		log.Printf("[ERROR] failed to count today's articles: %v", err)
		renderError(w, r, fmt.Errorf("error fetching seo stats: %w", err), http.StatusInternalServerError)
		return
	}

	financeCount, err := s.db.CountArticlesByCategory(ctx, domain.CategoryFinance)
	if err != nil {
		log.Printf("[ERROR] failed to count finance articles: %v", err)
		renderError(w, r, fmt.Errorf("error fetching seo stats: %w", err), http.StatusInternalServerError)
		return
	}

	cryptoCount, err := s.db.CountArticlesByCategory(ctx, domain.CategoryCrypto)
	if err != nil {
		log.Printf("[ERROR] failed to count crypto articles: %v", err)
		renderError(w, r, fmt.Errorf("error fetching seo stats: %w", err), http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"total_articles":   total,
		"articles_today":   todayCount,
		"finance_articles": financeCount,
		"crypto_articles":  cryptoCount,
		"last_updated":     time.Now().UTC(),
	})
}

// adminLoginHandler exchanges a credential pair for a bearer token
func (s *Server) adminLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid login request"), http.StatusBadRequest)
		return
	}

	token, err := s.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			renderError(w, r, err, http.StatusUnauthorized)
			return
		}
		log.Printf("[ERROR] login failed: %v", err)
		renderError(w, r, fmt.Errorf("login failed"), http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// adminStatsHandler returns aggregate counts and the most recent articles
func (s *Server) adminStatsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totalArticles, err := s.db.CountArticles(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to count articles: %v", err)
		renderError(w, r, fmt.Errorf("error fetching admin stats: %w", err), http.StatusInternalServerError)
		return
	}

	totalSources, activeSources, err := s.db.CountSources(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to count sources: %v", err)
		renderError(w, r, fmt.Errorf("error fetching admin stats: %w", err), http.StatusInternalServerError)
		return
	}

	recent, err := s.db.GetRecentArticles(ctx, 5)
	if err != nil {
		log.Printf("[ERROR] failed to get recent articles: %v", err)
		renderError(w, r, fmt.Errorf("error fetching admin stats: %w", err), http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"total_articles":  totalArticles,
		"total_sources":   totalSources,
		"active_sources":  activeSources,
		"recent_articles": articlesView(recent),
	})
}

// generateNowHandler submits a manual generation trigger, fire-and-forget
func (s *Server) generateNowHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.scheduler.TriggerNow(); err != nil {
		if errors.Is(err, scheduler.ErrQueueFull) {
			renderError(w, r, err, http.StatusServiceUnavailable)
			return
		}
		log.Printf("[ERROR] failed to trigger generation: %v", err)
		renderError(w, r, fmt.Errorf("error triggering article generation: %w", err), http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusAccepted, map[string]string{"message": "article generation started"})
}

// newsSourcesHandler lists all news sources
func (s *Server) newsSourcesHandler(w http.ResponseWriter, r *http.Request) {
	sources, err := s.db.GetSources(r.Context(), false)
	if err != nil {
		log.Printf("[ERROR] failed to get news sources: %v", err)
		renderError(w, r, fmt.Errorf("error fetching news sources: %w", err), http.StatusInternalServerError)
		return
	}

	views := make([]sourceJSON, len(sources))
	for i, src := range sources {
		views[i] = sourceJSON{
			ID:          src.ID,
			Name:        src.Name,
			URL:         src.URL,
			Category:    src.Category,
			IsActive:    src.IsActive,
			LastScraped: src.LastScraped,
		}
	}
	renderJSON(w, r, http.StatusOK, views)
}

// liveStreamsHandler lists active live streams with optional filters
func (s *Server) liveStreamsHandler(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	region := r.URL.Query().Get("region")

	streams, err := s.db.GetLiveStreams(r.Context(), category, region, 20)
	if err != nil {
		log.Printf("[ERROR] failed to get live streams: %v", err)
		renderError(w, r, fmt.Errorf("error fetching live streams: %w", err), http.StatusInternalServerError)
		return
	}

	views := make([]streamJSON, len(streams))
	for i, stream := range streams {
		views[i] = streamJSON{
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
			Tags:         stream.Tags,
			Region:       stream.Region,
			IsDirectLink: stream.IsDirectLink,
		}
	}
	renderJSON(w, r, http.StatusOK, views)
}

// articleJSON is the wire form of a domain article
type articleJSON struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Content           string    `json:"content"`
	Summary           string    `json:"summary"`
	Category          string    `json:"category"`
	Tags              []string  `json:"tags"`
	SEOKeywords       []string  `json:"seo_keywords"`
	PublishedAt       time.Time `json:"published_at"`
	SourceName        string    `json:"source_name,omitempty"`
	SourceAttribution string    `json:"source_attribution,omitempty"`
	AIGenerated       bool      `json:"ai_generated"`
}

type sourceJSON struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	URL         string     `json:"url"`
	Category    string     `json:"category"`
	IsActive    bool       `json:"is_active"`
	LastScraped *time.Time `json:"last_scraped,omitempty"`
}

type streamJSON struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	SourceName   string     `json:"source_name"`
	EmbedURL     string     `json:"embed_url"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	Category     string     `json:"category"`
	Language     string     `json:"language"`
	IsLive       bool       `json:"is_live"`
	ViewersCount *int       `json:"viewers_count,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	Tags         []string   `json:"tags"`
	Region       string     `json:"region"`
	IsDirectLink bool       `json:"is_direct_link"`
}

func articlesView(articles []domain.Article) []articleJSON {
	views := make([]articleJSON, len(articles))
	for i, a := range articles {
		views[i] = articleJSON{
			ID:                a.ID,
			Title:             a.Title,
			Content:           a.Content,
			Summary:           a.Summary,
			Category:          a.Category,
			Tags:              a.Tags,
			SEOKeywords:       a.SEOKeywords,
			PublishedAt:       a.PublishedAt.UTC(),
			SourceName:        a.SourceName,
			SourceAttribution: a.SourceAttribution,
			AIGenerated:       a.AIGenerated,
		}
	}
	return views
}
