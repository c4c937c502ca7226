package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptodigest/cryptodigest/pkg/auth"
	"github.com/cryptodigest/cryptodigest/pkg/domain"
	"github.com/cryptodigest/cryptodigest/pkg/scheduler"
	"github.com/cryptodigest/cryptodigest/server/mocks"
)

type testDeps struct {
	db    *mocks.DatabaseMock
	sched *mocks.SchedulerMock
	auth  *mocks.AuthenticatorMock
}

// newTestServer builds a server with happy-path mocks, individual tests
// override the funcs they care about
func newTestServer(t *testing.T) (*httptest.Server, *testDeps) {
	t.Helper()

	deps := &testDeps{
		db: &mocks.DatabaseMock{
			GetArticlesFunc: func(context.Context, string, int) ([]domain.Article, error) { return nil, nil },
			GetRecentArticlesFunc: func(context.Context, int) ([]domain.Article, error) { return nil, nil },
			CountArticlesFunc: func(context.Context) (int, error) { return 0, nil },
			CountArticlesSinceFunc: func(context.Context, time.Time) (int, error) { return 0, nil },
			CountArticlesByCategoryFunc: func(context.Context, string) (int, error) { return 0, nil },
			GetSourcesFunc: func(context.Context, bool) ([]domain.NewsSource, error) { return nil, nil },
			CountSourcesFunc: func(context.Context) (int, int, error) { return 0, 0, nil },
			GetLiveStreamsFunc: func(context.Context, string, string, int) ([]domain.LiveStream, error) { return nil, nil },
		},
		sched: &mocks.SchedulerMock{TriggerNowFunc: func() error { return nil }},
		auth: &mocks.AuthenticatorMock{
			LoginFunc: func(username, password string) (string, error) {
				if username == "admin" && password == "cryptoadmin123" {
					return "test-token", nil
				}
				return "", auth.ErrInvalidCredentials
			},
			VerifyTokenFunc: func(token string) (string, error) {
				if token == "test-token" {
					return "admin", nil
				}
				return "", auth.ErrInvalidToken
			},
		},
	}

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":0", 30 * time.Second },
	}

	srv := New(cfg, deps.db, deps.sched, deps.auth, NewStaticMarketProvider(), "test", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts, deps
}

func TestServer_Root(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "cryptodigest API", body["message"])
	assert.Equal(t, "active", body["status"])
	assert.Equal(t, "test", body["version"])

	assert.Equal(t, "cryptodigest", resp.Header.Get("App-Name"))
	assert.Equal(t, "test", resp.Header.Get("App-Version"))
}

func TestServer_Ping(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
}

func TestServer_Articles(t *testing.T) {
	ts, deps := newTestServer(t)

	published := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deps.db.GetArticlesFunc = func(_ context.Context, category string, limit int) ([]domain.Article, error) {
		return []domain.Article{{
			ID:                "a1",
			Title:             "Bitcoin News",
			Content:           "content",
			Summary:           "summary",
			Category:          domain.CategoryCrypto,
			Tags:              []string{"crypto"},
			SEOKeywords:       []string{"bitcoin"},
			PublishedAt:       published,
			SourceName:        "CoinDesk",
			SourceAttribution: "Information sourced from CoinDesk",
			AIGenerated:       true,
		}}, nil
	}

	resp, err := http.Get(ts.URL + "/api/articles?category=crypto&limit=5")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var articles []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&articles))
	require.Len(t, articles, 1)
	assert.Equal(t, "a1", articles[0]["id"])
	assert.Equal(t, "Bitcoin News", articles[0]["title"])
	assert.Equal(t, "crypto", articles[0]["category"])
	assert.Equal(t, true, articles[0]["ai_generated"])

	calls := deps.db.GetArticlesCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "crypto", calls[0].Category)
	assert.Equal(t, 5, calls[0].Limit)
}

func TestServer_ArticlesDefaults(t *testing.T) {
	ts, deps := newTestServer(t)

	tests := []struct {
		name  string
		query string
		limit int
	}{
		{"no params", "", 20},
		{"bad limit", "?limit=abc", 20},
		{"negative limit", "?limit=-5", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/api/articles" + tt.query)
			require.NoError(t, err)
			resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)

			calls := deps.db.GetArticlesCalls()
			assert.Equal(t, tt.limit, calls[len(calls)-1].Limit)
		})
	}
}

func TestServer_ArticlesError(t *testing.T) {
	ts, deps := newTestServer(t)
	deps.db.GetArticlesFunc = func(context.Context, string, int) ([]domain.Article, error) {
		return nil, errors.New("db gone")
	}

	resp, err := http.Get(ts.URL + "/api/articles")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestServer_MarketData(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/market-data")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snapshot struct {
		Stocks      []map[string]interface{} `json:"stocks"`
		Cryptos     []map[string]interface{} `json:"cryptos"`
		LastUpdated time.Time                `json:"last_updated"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snapshot))
	assert.Len(t, snapshot.Stocks, 5)
	assert.Len(t, snapshot.Cryptos, 5)
	assert.Equal(t, "AAPL", snapshot.Stocks[0]["symbol"])
	assert.Equal(t, "BTC", snapshot.Cryptos[0]["symbol"])
	assert.False(t, snapshot.LastUpdated.IsZero())
}

func TestServer_SeoStats(t *testing.T) {
	ts, deps := newTestServer(t)

	deps.db.CountArticlesFunc = func(context.Context) (int, error) { return 42, nil }
	deps.db.CountArticlesSinceFunc = func(_ context.Context, ts time.Time) (int, error) {
		assert.Equal(t, time.Now().UTC().Truncate(24*time.Hour), ts)
		return 7, nil
	}
	deps.db.CountArticlesByCategoryFunc = func(_ context.Context, category string) (int, error) {
		if category == domain.CategoryFinance {
			return 25, nil
		}
		return 17, nil
	}

	resp, err := http.Get(ts.URL + "/api/seo-stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.InDelta(t, 42, stats["total_articles"], 0.01)
	assert.InDelta(t, 7, stats["articles_today"], 0.01)
	assert.InDelta(t, 25, stats["finance_articles"], 0.01)
	assert.InDelta(t, 17, stats["crypto_articles"], 0.01)
	assert.NotEmpty(t, stats["last_updated"])
}

func TestServer_AdminLogin(t *testing.T) {
	ts, _ := newTestServer(t)

	t.Run("valid credentials", func(t *testing.T) {
		body := strings.NewReader(`{"username": "admin", "password": "cryptoadmin123"}`)
		resp, err := http.Post(ts.URL+"/api/admin/login", "application/json", body)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "test-token", result["access_token"])
		assert.Equal(t, "bearer", result["token_type"])
	})

	t.Run("bad credentials", func(t *testing.T) {
		body := strings.NewReader(`{"username": "admin", "password": "wrong"}`)
		resp, err := http.Post(ts.URL+"/api/admin/login", "application/json", body)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/admin/login", "application/json", strings.NewReader("{broken"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_AdminStats(t *testing.T) {
	ts, deps := newTestServer(t)

	deps.db.CountArticlesFunc = func(context.Context) (int, error) { return 10, nil }
	deps.db.CountSourcesFunc = func(context.Context) (int, int, error) { return 12, 11, nil }
	deps.db.GetRecentArticlesFunc = func(_ context.Context, limit int) ([]domain.Article, error) {
		assert.Equal(t, 5, limit)
		return []domain.Article{{ID: "a1", Title: "recent"}}, nil
	}

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/admin/stats", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer test-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.InDelta(t, 10, stats["total_articles"], 0.01)
	assert.InDelta(t, 12, stats["total_sources"], 0.01)
	assert.InDelta(t, 11, stats["active_sources"], 0.01)

	recent, ok := stats["recent_articles"].([]interface{})
	require.True(t, ok)
	assert.Len(t, recent, 1)
}

func TestServer_AdminEndpointsRequireAuth(t *testing.T) {
	ts, _ := newTestServer(t)

	endpoints := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/stats"},
		{http.MethodPost, "/api/admin/generate-now"},
		{http.MethodGet, "/api/news-sources"},
	}

	for _, ep := range endpoints {
		t.Run(ep.path+" no token", func(t *testing.T) {
			req, err := http.NewRequest(ep.method, ts.URL+ep.path, http.NoBody)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})

		t.Run(ep.path+" bad token", func(t *testing.T) {
			req, err := http.NewRequest(ep.method, ts.URL+ep.path, http.NoBody)
			require.NoError(t, err)
			req.Header.Set("Authorization", "Bearer garbage")

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, auth.ErrInvalidToken.Error(), body["error"])
		})
	}
}

func TestServer_GenerateNow(t *testing.T) {
	ts, deps := newTestServer(t)

	t.Run("accepted", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/admin/generate-now", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer test-token")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusAccepted, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "article generation started", body["message"])
		assert.Len(t, deps.sched.TriggerNowCalls(), 1)
	})

	t.Run("queue full", func(t *testing.T) {
		deps.sched.TriggerNowFunc = func() error { return scheduler.ErrQueueFull }

		req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/admin/generate-now", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer test-token")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestServer_NewsSources(t *testing.T) {
	ts, deps := newTestServer(t)

	deps.db.GetSourcesFunc = func(_ context.Context, activeOnly bool) ([]domain.NewsSource, error) {
		assert.False(t, activeOnly, "admin listing includes inactive sources")
		return []domain.NewsSource{
			{ID: "s1", Name: "CoinDesk", URL: "https://www.coindesk.com", Category: domain.CategoryCrypto, IsActive: true},
			{ID: "s2", Name: "Dormant Wire", Category: domain.CategoryFinance, IsActive: false},
		}, nil
	}

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/news-sources", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer test-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sources []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sources))
	require.Len(t, sources, 2)
	assert.Equal(t, "CoinDesk", sources[0]["name"])
	assert.Equal(t, false, sources[1]["is_active"])
}

func TestServer_LiveStreams(t *testing.T) {
	ts, deps := newTestServer(t)

	deps.db.GetLiveStreamsFunc = func(_ context.Context, category, region string, limit int) ([]domain.LiveStream, error) {
		assert.Equal(t, "crypto", category)
		assert.Equal(t, "global", region)
		assert.Equal(t, 20, limit)
		return []domain.LiveStream{{
			ID:           "ls1",
			Title:        "CoinDesk Live",
			SourceName:   "CoinDesk",
			EmbedURL:     "https://www.coindesk.com/",
			Category:     domain.CategoryCrypto,
			Language:     "en",
			IsLive:       true,
			StartedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Tags:         []string{"crypto-news"},
			Region:       "global",
			IsDirectLink: true,
		}}, nil
	}

	resp, err := http.Get(ts.URL + "/api/live-streams?category=crypto&region=global")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var streams []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&streams))
	require.Len(t, streams, 1)
	assert.Equal(t, "CoinDesk Live", streams[0]["title"])
	assert.Equal(t, true, streams[0]["is_live"])
	assert.Equal(t, true, streams[0]["is_direct_link"])
}
