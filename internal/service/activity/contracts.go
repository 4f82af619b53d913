package activity

import (
	"context"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
)

// ActivityRepository интерфейс репозитория журнала активности
type ActivityRepository interface {
	GetByUserID(ctx context.Context, userID int64, limit int) ([]*domain.UserActivity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
