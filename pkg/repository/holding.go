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

// HoldingRepository handles institutional-holding database operations
type HoldingRepository struct {
	db *sqlx.DB
}

// holdingSQL represents an institutional holding for SQL operations
type holdingSQL struct {
	ID                    string    `db:"id"`
	InstitutionName       string    `db:"institution_name"`
	AssetSymbol           string    `db:"asset_symbol"`
	AssetName             string    `db:"asset_name"`
	HoldingAmount         float64   `db:"holding_amount"`
	HoldingValueUSD       float64   `db:"holding_value_usd"`
	PercentageOfPortfolio float64   `db:"percentage_of_portfolio"`
	LastUpdated           time.Time `db:"last_updated"`
	ChangeAmount          *float64  `db:"change_amount"`
	ChangePercentage      *float64  `db:"change_percentage"`
}

// NewHoldingRepository creates a new holding repository
func NewHoldingRepository(database *sqlx.DB) *HoldingRepository {
	return &HoldingRepository{db: database}
}

// CreateHolding inserts a new institutional holding
func (r *HoldingRepository) CreateHolding(ctx context.Context, holding *domain.InstitutionalHolding) error {
	if holding.ID == "" {
		holding.ID = uuid.NewString()
	}
	if holding.LastUpdated.IsZero() {
		holding.LastUpdated = time.Now().UTC()
	}

	sqlHolding := &holdingSQL{
		ID:                    holding.ID,
		InstitutionName:       holding.InstitutionName,
		AssetSymbol:           holding.AssetSymbol,
		AssetName:             holding.AssetName,
		HoldingAmount:         holding.HoldingAmount,
		HoldingValueUSD:       holding.HoldingValueUSD,
		PercentageOfPortfolio: holding.PercentageOfPortfolio,
		LastUpdated:           holding.LastUpdated,
		ChangeAmount:          holding.ChangeAmount,
		ChangePercentage:      holding.ChangePercentage,
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO institutional_holdings (id, institution_name, asset_symbol, asset_name,
			                                    holding_amount, holding_value_usd, percentage_of_portfolio,
			                                    last_updated, change_amount, change_percentage)
			VALUES (:id, :institution_name, :asset_symbol, :asset_name,
			        :holding_amount, :holding_value_usd, :percentage_of_portfolio,
			        :last_updated, :change_amount, :change_percentage)
		`
		_, err := r.db.NamedExecContext(ctx, query, sqlHolding)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("create holding: %w", err)}
		}
		return nil
	})
}

// GetHoldings retrieves holdings ordered by USD value, largest first
func (r *HoldingRepository) GetHoldings(ctx context.Context) ([]domain.InstitutionalHolding, error) {
	var sqlHoldings []holdingSQL
	query := "SELECT * FROM institutional_holdings ORDER BY holding_value_usd DESC"
	if err := r.db.SelectContext(ctx, &sqlHoldings, query); err != nil {
		return nil, fmt.Errorf("get holdings: %w", err)
	}

	holdings := make([]domain.InstitutionalHolding, len(sqlHoldings))
	for i, h := range sqlHoldings {
		holdings[i] = domain.InstitutionalHolding{
			ID:                    h.ID,
			InstitutionName:       h.InstitutionName,
			AssetSymbol:           h.AssetSymbol,
			AssetName:             h.AssetName,
			HoldingAmount:         h.HoldingAmount,
			HoldingValueUSD:       h.HoldingValueUSD,
			PercentageOfPortfolio: h.PercentageOfPortfolio,
			LastUpdated:           h.LastUpdated,
			ChangeAmount:          h.ChangeAmount,
			ChangePercentage:      h.ChangePercentage,
		}
	}
	return holdings, nil
}
