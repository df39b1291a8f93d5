package repository

import (
	"context"
	"time"

	"spendguard/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var savedPurchaseColumns = []string{
	"id", "user_id", "item_name", "amount_saved", "currency", "website",
	"url", "description", "saved_date", "distribution_method", "goals_updated", "created_at",
}

type SavedPurchaseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSavedPurchaseRepository(db *pgxpool.Pool, logger *zap.Logger) *SavedPurchaseRepository {
	return &SavedPurchaseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SavedPurchaseRepository) Create(ctx context.Context, sp *models.SavedPurchase) error {
	query := squirrel.Insert("saved_purchases").
		Columns(savedPurchaseColumns...).
		Values(sp.ID, sp.UserID, sp.ItemName, sp.AmountSaved, sp.Currency, sp.Website, sp.URL, sp.Description, sp.SavedDate, sp.DistributionMethod, sp.GoalsUpdated, sp.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListBetween returns the user's saved purchases with saved_date in
// [start, end], newest first.
func (r *SavedPurchaseRepository) ListBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*models.SavedPurchase, error) {
	query := squirrel.Select(savedPurchaseColumns...).
		From("saved_purchases").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"saved_date": start}).
		Where(squirrel.LtOrEq{"saved_date": end}).
		OrderBy("saved_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var saved []*models.SavedPurchase
	for rows.Next() {
		var sp models.SavedPurchase
		if err := rows.Scan(
			&sp.ID, &sp.UserID, &sp.ItemName, &sp.AmountSaved, &sp.Currency, &sp.Website,
			&sp.URL, &sp.Description, &sp.SavedDate, &sp.DistributionMethod, &sp.GoalsUpdated, &sp.CreatedAt,
		); err != nil {
			return nil, err
		}
		saved = append(saved, &sp)
	}

	return saved, rows.Err()
}
