package prediction

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	"github.com/m04kA/HD-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/HD-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий записей о вызовах модели предсказания
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория предсказаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запись о выполненном предсказании
func (r *Repository) Create(ctx context.Context, rec *domain.PredictionRecord) (*domain.PredictionRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("prediction_records").
		Columns(
			"user_id",
			"age",
			"sex",
			"cp",
			"trestbps",
			"chol",
			"fbs",
			"restecg",
			"thalach",
			"exang",
			"oldpeak",
			"slope",
			"predicted_class",
			"probability_score",
		).
		Values(
			rec.UserID,
			rec.Features.Age,
			rec.Features.Sex,
			rec.Features.CP,
			rec.Features.Trestbps,
			rec.Features.Chol,
			rec.Features.FBS,
			rec.Features.Restecg,
			rec.Features.Thalach,
			rec.Features.Exang,
			rec.Features.Oldpeak,
			rec.Features.Slope,
			rec.PredictedClass,
			rec.Probability,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rec.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	rec.CreatedAt = createdAt.Time

	return rec, nil
}

// GetByUserID получает историю предсказаний пользователя, сначала новые
// limit <= 0 означает без ограничения
func (r *Repository) GetByUserID(ctx context.Context, userID int64, limit int) ([]*domain.PredictionRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"user_id",
		"age",
		"sex",
		"cp",
		"trestbps",
		"chol",
		"fbs",
		"restecg",
		"thalach",
		"exang",
		"oldpeak",
		"slope",
		"predicted_class",
		"probability_score",
		"created_at",
	).
		From("prediction_records").
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

	records := make([]*domain.PredictionRecord, 0)
	for rows.Next() {
		var rec domain.PredictionRecord
		var createdAt sql.NullTime

		err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Features.Age,
			&rec.Features.Sex,
			&rec.Features.CP,
			&rec.Features.Trestbps,
			&rec.Features.Chol,
			&rec.Features.FBS,
			&rec.Features.Restecg,
			&rec.Features.Thalach,
			&rec.Features.Exang,
			&rec.Features.Oldpeak,
			&rec.Features.Slope,
			&rec.PredictedClass,
			&rec.Probability,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		rec.CreatedAt = createdAt.Time

		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
