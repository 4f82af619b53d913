package doctor

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	"github.com/m04kA/HD-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/HD-AppointmentService/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки unique_violation в PostgreSQL
const pqUniqueViolation = "23505"

// doctorColumns колонки таблицы doctors в порядке сканирования
var doctorColumns = []string{
	"id",
	"full_name",
	"specialization",
	"qualifications",
	"experience_years",
	"hospital",
	"address",
	"city",
	"area",
	"phone_number",
	"email",
	"availability",
	"rating",
	"consultation_fee",
	"created_at",
	"updated_at",
}

// Repository репозиторий справочника врачей
// Расписание хранится в JSONB колонке availability:
// {"days": ["Monday", ...], "startTime": "09:00", "endTime": "17:00"}
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория врачей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового врача
func (r *Repository) Create(ctx context.Context, doc *domain.Doctor) (*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	availability, err := json.Marshal(doc.Schedule)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal schedule: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("doctors").
		Columns(
			"full_name",
			"specialization",
			"qualifications",
			"experience_years",
			"hospital",
			"address",
			"city",
			"area",
			"phone_number",
			"email",
			"availability",
			"rating",
			"consultation_fee",
		).
		Values(
			doc.FullName,
			doc.Specialization,
			doc.Qualifications,
			doc.ExperienceYears,
			doc.Hospital,
			doc.Address,
			doc.City,
			doc.Area,
			doc.PhoneNumber,
			doc.Email,
			availability,
			doc.Rating,
			doc.ConsultationFee,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&doc.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	doc.CreatedAt = createdAt.Time
	doc.UpdatedAt = updatedAt.Time

	return doc, nil
}

// GetByID получает врача по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(doctorColumns...).
		From("doctors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	doc, err := scanDoctor(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		if errors.Is(err, ErrScheduleMalformed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: GetByID - scan doctor: %v", ErrScanRow, err)
	}

	return doc, nil
}

// GetSchedule получает недельное расписание врача
// Единственное чтение, которое нужно ядру бронирования
func (r *Repository) GetSchedule(ctx context.Context, id int64) (*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("availability").
		From("doctors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - scan availability: %v", ErrScanRow, err)
	}

	schedule, err := unmarshalSchedule(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - doctor_id=%d: %v", ErrScheduleMalformed, id, err)
	}

	return schedule, nil
}

// Search ищет врачей по городу, району и специализации
// Все фильтры опциональны; результат отсортирован по рейтингу
func (r *Repository) Search(ctx context.Context, filter domain.DoctorSearchFilter) ([]*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(doctorColumns...).
		From("doctors").
		OrderBy("rating DESC, full_name ASC")

	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *filter.City})
	}
	if filter.Area != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"area": *filter.Area})
	}
	if filter.Specialization != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"specialization": *filter.Specialization})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	doctors := make([]*domain.Doctor, 0)
	for rows.Next() {
		doc, err := scanDoctor(rows)
		if err != nil {
			// Врач с кривым расписанием не должен ронять весь поиск
			if errors.Is(err, ErrScheduleMalformed) {
				continue
			}
			return nil, fmt.Errorf("%w: Search - scan row: %v", ErrScanRow, err)
		}
		doctors = append(doctors, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Search - rows error: %v", ErrScanRow, err)
	}

	return doctors, nil
}

// UpdateSchedule обновляет недельное расписание врача
// Единственный путь мутации расписания после создания профиля
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, schedule *domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	availability, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - marshal schedule: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("doctors").
		Set("availability", availability).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDoctorNotFound
	}

	return nil
}

// Delete удаляет врача из справочника
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("doctors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDoctorNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanDoctor сканирует одну строку в модель врача
func scanDoctor(row rowScanner) (*domain.Doctor, error) {
	var doc domain.Doctor
	var raw []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&doc.ID,
		&doc.FullName,
		&doc.Specialization,
		&doc.Qualifications,
		&doc.ExperienceYears,
		&doc.Hospital,
		&doc.Address,
		&doc.City,
		&doc.Area,
		&doc.PhoneNumber,
		&doc.Email,
		&raw,
		&doc.Rating,
		&doc.ConsultationFee,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	schedule, err := unmarshalSchedule(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: doctor_id=%d: %v", ErrScheduleMalformed, doc.ID, err)
	}
	doc.Schedule = *schedule

	doc.CreatedAt = createdAt.Time
	doc.UpdatedAt = updatedAt.Time

	return &doc, nil
}

// unmarshalSchedule разбирает JSONB availability в доменную модель
// Без валидации инвариантов: их проверяет вызывающий код, которому
// нужно решить, как деградировать
func unmarshalSchedule(raw []byte) (*domain.WeeklySchedule, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("availability is empty")
	}
	var schedule domain.WeeklySchedule
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}
