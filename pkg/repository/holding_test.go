package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptodigest/cryptodigest/pkg/domain"
)

func TestHoldingRepository_CreateAndGet(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	change := 1200.5
	changePct := 2.4
	holdings := []domain.InstitutionalHolding{
		{
			InstitutionName:       "MicroStrategy",
			AssetSymbol:           "BTC",
			AssetName:             "Bitcoin",
			HoldingAmount:         214000,
			HoldingValueUSD:       14_500_000_000,
			PercentageOfPortfolio: 92.5,
			ChangeAmount:          &change,
			ChangePercentage:      &changePct,
		},
		{
			InstitutionName:       "Grayscale",
			AssetSymbol:           "ETH",
			AssetName:             "Ethereum",
			HoldingAmount:         3_000_000,
			HoldingValueUSD:       9_800_000_000,
			PercentageOfPortfolio: 41.0,
		},
	}
	for i := range holdings {
		require.NoError(t, repos.Holding.CreateHolding(ctx, &holdings[i]))
		assert.NotEmpty(t, holdings[i].ID)
		assert.WithinDuration(t, time.Now().UTC(), holdings[i].LastUpdated, 5*time.Second)
	}

	got, err := repos.Holding.GetHoldings(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// largest USD value first
	assert.Equal(t, "MicroStrategy", got[0].InstitutionName)
	assert.Equal(t, "Grayscale", got[1].InstitutionName)

	require.NotNil(t, got[0].ChangeAmount)
	assert.InEpsilon(t, 1200.5, *got[0].ChangeAmount, 0.001)
	require.NotNil(t, got[0].ChangePercentage)
	assert.InEpsilon(t, 2.4, *got[0].ChangePercentage, 0.001)
	assert.Nil(t, got[1].ChangeAmount)
	assert.Nil(t, got[1].ChangePercentage)
}
