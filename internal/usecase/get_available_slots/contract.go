package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	"github.com/m04kA/HD-AppointmentService/pkg/types"
)

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	// GetSchedule получает недельное расписание врача
	GetSchedule(ctx context.Context, doctorID int64) (*domain.WeeklySchedule, error)
}

// AppointmentRepository интерфейс репозитория записей на прием
type AppointmentRepository interface {
	// ListScheduledTimes получает занятые слоты врача на конкретную дату
	ListScheduledTimes(ctx context.Context, doctorID int64, date time.Time) ([]types.TimeString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
