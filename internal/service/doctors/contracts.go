package doctors

import (
	"context"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
)

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	Create(ctx context.Context, doctor *domain.Doctor) (*domain.Doctor, error)
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	Search(ctx context.Context, filter domain.DoctorSearchFilter) ([]*domain.Doctor, error)
	UpdateSchedule(ctx context.Context, id int64, schedule *domain.WeeklySchedule) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
