package repository

import (
	"context"
	"time"

	"spendguard/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var purchaseColumns = []string{
	"id", "user_id", "item_name", "price", "currency", "category",
	"website", "url", "description", "purchase_date", "created_at",
}

// PurchaseFilter narrows purchase listings.
type PurchaseFilter struct {
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     uint64
	Offset    uint64
	SortAsc   bool
}

// CategoryStat aggregates spending within one category.
type CategoryStat struct {
	TotalSpent float64
	Count      int64
}

type PurchaseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPurchaseRepository(db *pgxpool.Pool, logger *zap.Logger) *PurchaseRepository {
	return &PurchaseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PurchaseRepository) Create(ctx context.Context, purchase *models.Purchase) error {
	query := squirrel.Insert("purchases").
		Columns(purchaseColumns...).
		Values(purchase.ID, purchase.UserID, purchase.ItemName, purchase.Price, purchase.Currency, purchase.Category, purchase.Website, purchase.URL, purchase.Description, purchase.PurchaseDate, purchase.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListBetween returns the user's purchases with purchase_date in [start, end).
func (r *PurchaseRepository) ListBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*models.Purchase, error) {
	query := squirrel.Select(purchaseColumns...).
		From("purchases").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"purchase_date": start}).
		Where(squirrel.Lt{"purchase_date": end}).
		OrderBy("purchase_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryPurchases(ctx, query)
}

// List returns the user's purchases matching the filter.
func (r *PurchaseRepository) List(ctx context.Context, userID uuid.UUID, filter PurchaseFilter) ([]*models.Purchase, error) {
	query := squirrel.Select(purchaseColumns...).
		From("purchases").
		Where(filterConditions(userID, filter)).
		PlaceholderFormat(squirrel.Dollar)

	if filter.SortAsc {
		query = query.OrderBy("purchase_date ASC")
	} else {
		query = query.OrderBy("purchase_date DESC")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	return r.queryPurchases(ctx, query)
}

// Count returns how many purchases match the filter, ignoring pagination.
func (r *PurchaseRepository) Count(ctx context.Context, userID uuid.UUID, filter PurchaseFilter) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("purchases").
		Where(filterConditions(userID, filter)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// TotalSpent sums the price of all the user's purchases.
func (r *PurchaseRepository) TotalSpent(ctx context.Context, userID uuid.UUID) (float64, error) {
	query := squirrel.Select("COALESCE(SUM(price), 0)").
		From("purchases").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var total float64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// CategoryBreakdown sums spending and counts purchases per category.
func (r *PurchaseRepository) CategoryBreakdown(ctx context.Context, userID uuid.UUID) (map[string]CategoryStat, error) {
	query := squirrel.Select("category", "COALESCE(SUM(price), 0)", "COUNT(*)").
		From("purchases").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("category").
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

	breakdown := make(map[string]CategoryStat)
	for rows.Next() {
		var category string
		var stat CategoryStat
		if err := rows.Scan(&category, &stat.TotalSpent, &stat.Count); err != nil {
			return nil, err
		}
		breakdown[category] = stat
	}

	return breakdown, rows.Err()
}

func filterConditions(userID uuid.UUID, filter PurchaseFilter) squirrel.And {
	conditions := squirrel.And{squirrel.Eq{"user_id": userID}}
	if filter.Category != "" {
		conditions = append(conditions, squirrel.Eq{"category": filter.Category})
	}
	if filter.StartDate != nil {
		conditions = append(conditions, squirrel.GtOrEq{"purchase_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		conditions = append(conditions, squirrel.LtOrEq{"purchase_date": *filter.EndDate})
	}
	return conditions
}

func (r *PurchaseRepository) queryPurchases(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Purchase, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []*models.Purchase
	for rows.Next() {
		purchase, err := scanPurchase(rows)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, purchase)
	}

	return purchases, rows.Err()
}

func scanPurchase(row pgx.Row) (*models.Purchase, error) {
	var p models.Purchase
	if err := row.Scan(
		&p.ID, &p.UserID, &p.ItemName, &p.Price, &p.Currency, &p.Category,
		&p.Website, &p.URL, &p.Description, &p.PurchaseDate, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
