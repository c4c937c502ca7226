package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptodigest/cryptodigest/pkg/domain"
)

func TestSourceRepository_CreateSource(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	source := &domain.NewsSource{Name: "Test Wire", URL: "https://example.com", Category: domain.CategoryFinance, IsActive: true}
	require.NoError(t, repos.Source.CreateSource(ctx, source))
	require.NotEmpty(t, source.ID)

	sources, err := repos.Source.GetSources(ctx, false)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "Test Wire", sources[0].Name)
	assert.Equal(t, "https://example.com", sources[0].URL)
	assert.True(t, sources[0].IsActive)
	assert.Nil(t, sources[0].LastScraped)
}

func TestSourceRepository_CreateSourceDuplicateName(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	first := &domain.NewsSource{Name: "Test Wire", URL: "https://one.example.com", Category: domain.CategoryFinance, IsActive: true}
	require.NoError(t, repos.Source.CreateSource(ctx, first))

	// same name again is silently ignored, the original row survives
	second := &domain.NewsSource{Name: "Test Wire", URL: "https://two.example.com", Category: domain.CategoryCrypto, IsActive: false}
	require.NoError(t, repos.Source.CreateSource(ctx, second))

	sources, err := repos.Source.GetSources(ctx, false)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "https://one.example.com", sources[0].URL)
}

func TestSourceRepository_GetSourcesActiveOnly(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	active := &domain.NewsSource{Name: "Active Wire", Category: domain.CategoryFinance, IsActive: true}
	inactive := &domain.NewsSource{Name: "Dormant Wire", Category: domain.CategoryFinance, IsActive: false}
	require.NoError(t, repos.Source.CreateSource(ctx, active))
	require.NoError(t, repos.Source.CreateSource(ctx, inactive))

	all, err := repos.Source.GetSources(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	activeOnly, err := repos.Source.GetSources(ctx, true)
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, "Active Wire", activeOnly[0].Name)
}

func TestSourceRepository_SeedDefaults(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repos.Source.SeedDefaults(ctx))

	total, active, err := repos.Source.CountSources(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Equal(t, 12, active)

	// seeding again changes nothing
	require.NoError(t, repos.Source.SeedDefaults(ctx))
	total, active, err = repos.Source.CountSources(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Equal(t, 12, active)

	sources, err := repos.Source.GetSources(ctx, true)
	require.NoError(t, err)

	byCategory := map[string]int{}
	names := map[string]bool{}
	for _, s := range sources {
		byCategory[s.Category]++
		names[s.Name] = true
	}
	assert.Equal(t, 7, byCategory[domain.CategoryFinance])
	assert.Equal(t, 5, byCategory[domain.CategoryCrypto])
	assert.True(t, names["Bloomberg"])
	assert.True(t, names["CoinDesk"])
}
