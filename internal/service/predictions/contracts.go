package predictions

import (
	"context"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
)

// PredictionRepository интерфейс репозитория записей предсказаний
type PredictionRepository interface {
	GetByUserID(ctx context.Context, userID int64, limit int) ([]*domain.PredictionRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
