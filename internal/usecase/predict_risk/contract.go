package predict_risk

import (
	"context"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	"github.com/m04kA/HD-AppointmentService/internal/integrations/predictor"
)

// PredictionRepository интерфейс репозитория записей предсказаний
type PredictionRepository interface {
	Create(ctx context.Context, rec *domain.PredictionRecord) (*domain.PredictionRecord, error)
}

// ActivityRepository интерфейс журнала действий пользователей
type ActivityRepository interface {
	Create(ctx context.Context, entry *domain.UserActivity) (*domain.UserActivity, error)
}

// PredictorClient интерфейс клиента сервиса модели предсказания
type PredictorClient interface {
	Predict(ctx context.Context, features predictor.PredictRequest) (*predictor.PredictResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
