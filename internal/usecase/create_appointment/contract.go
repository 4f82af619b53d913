package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	"github.com/m04kA/HD-AppointmentService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей на прием
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	// ListScheduledTimes получает занятые слоты врача на дату
	// Внутри транзакции выполняет блокирующее чтение (FOR UPDATE)
	ListScheduledTimes(ctx context.Context, doctorID int64, date time.Time) ([]types.TimeString, error)
}

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	GetSchedule(ctx context.Context, doctorID int64) (*domain.WeeklySchedule, error)
}

// ActivityRepository интерфейс журнала действий пользователей
type ActivityRepository interface {
	Create(ctx context.Context, entry *domain.UserActivity) (*domain.UserActivity, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
