package activity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	"github.com/m04kA/HD-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/HD-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий журнала действий пользователей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория активности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись в журнал активности
func (r *Repository) Create(ctx context.Context, entry *domain.UserActivity) (*domain.UserActivity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("user_activities").
		Columns("user_id", "activity_type", "details").
		Values(entry.UserID, entry.Type, entry.Details).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	entry.CreatedAt = createdAt.Time

	return entry, nil
}

// GetByUserID получает журнал действий пользователя, сначала новые
// limit <= 0 означает без ограничения
func (r *Repository) GetByUserID(ctx context.Context, userID int64, limit int) ([]*domain.UserActivity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "user_id", "activity_type", "details", "created_at").
		From("user_activities").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(limit))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.UserActivity, 0)
	for rows.Next() {
		var entry domain.UserActivity
		var createdAt sql.NullTime

		err := rows.Scan(&entry.ID, &entry.UserID, &entry.Type, &entry.Details, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		entry.CreatedAt = createdAt.Time

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
