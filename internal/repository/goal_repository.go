package repository

import (
	"context"
	"errors"
	"time"

	"spendguard/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var goalColumns = []string{
	"id", "user_id", "name", "type", "target_amount", "current_amount",
	"period", "is_default", "created_at", "updated_at",
}

type GoalRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewGoalRepository(db *pgxpool.Pool, logger *zap.Logger) *GoalRepository {
	return &GoalRepository{
		db:     db,
		logger: logger,
	}
}

func (r *GoalRepository) Create(ctx context.Context, goal *models.Goal) error {
	query := squirrel.Insert("goals").
		Columns(goalColumns...).
		Values(goal.ID, goal.UserID, goal.Name, goal.Type, goal.TargetAmount, goal.CurrentAmount, goal.Period, goal.IsDefault, goal.CreatedAt, goal.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListByUser returns all of the user's goals, default goal first, then newest first.
func (r *GoalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Goal, error) {
	query := squirrel.Select(goalColumns...).
		From("goals").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("is_default DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryGoals(ctx, query)
}

// ListByUserAndTypes returns the user's goals restricted to the given types.
func (r *GoalRepository) ListByUserAndTypes(ctx context.Context, userID uuid.UUID, types []models.GoalType) ([]*models.Goal, error) {
	query := squirrel.Select(goalColumns...).
		From("goals").
		Where(squirrel.Eq{"user_id": userID, "type": types}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryGoals(ctx, query)
}

// GetDefaultDailySpendingGoal returns the user's default daily_spending goal,
// or nil when no such goal exists.
func (r *GoalRepository) GetDefaultDailySpendingGoal(ctx context.Context, userID uuid.UUID) (*models.Goal, error) {
	query := squirrel.Select(goalColumns...).
		From("goals").
		Where(squirrel.Eq{
			"user_id":    userID,
			"type":       models.GoalTypeDailySpending,
			"is_default": true,
		}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	goal, err := scanGoal(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// ClearDefaults unsets is_default on every goal of the user except the given
// goal ID. Pass uuid.Nil to clear defaults on all goals.
func (r *GoalRepository) ClearDefaults(ctx context.Context, userID, exceptGoalID uuid.UUID) error {
	builder := squirrel.Update("goals").
		Set("is_default", false).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"user_id": userID, "is_default": true}).
		PlaceholderFormat(squirrel.Dollar)

	if exceptGoalID != uuid.Nil {
		builder = builder.Where(squirrel.NotEq{"id": exceptGoalID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// Update applies the given column values to the goal owned by the user and
// returns the updated row, or nil when no goal matches.
func (r *GoalRepository) Update(ctx context.Context, userID, goalID uuid.UUID, fields map[string]interface{}) (*models.Goal, error) {
	builder := squirrel.Update("goals").
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": goalID, "user_id": userID}).
		Suffix("RETURNING " + joinColumns(goalColumns)).
		PlaceholderFormat(squirrel.Dollar)

	for column, value := range fields {
		builder = builder.Set(column, value)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	goal, err := scanGoal(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// AddToCurrentAmount increments the goal's current_amount by delta.
func (r *GoalRepository) AddToCurrentAmount(ctx context.Context, goalID uuid.UUID, delta float64) error {
	query := squirrel.Update("goals").
		Set("current_amount", squirrel.Expr("current_amount + ?", delta)).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": goalID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ResetDaily zeroes current_amount on the user's daily spending goals and
// returns the number of goals modified.
func (r *GoalRepository) ResetDaily(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := squirrel.Update("goals").
		Set("current_amount", 0).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{
			"user_id": userID,
			"type":    models.GoalTypeDailySpending,
			"period":  models.PeriodDaily,
		}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *GoalRepository) queryGoals(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Goal, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []*models.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

func scanGoal(row pgx.Row) (*models.Goal, error) {
	var goal models.Goal
	if err := row.Scan(
		&goal.ID, &goal.UserID, &goal.Name, &goal.Type, &goal.TargetAmount, &goal.CurrentAmount,
		&goal.Period, &goal.IsDefault, &goal.CreatedAt, &goal.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &goal, nil
}
