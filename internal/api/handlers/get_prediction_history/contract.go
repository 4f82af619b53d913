package get_prediction_history

import (
	"context"

	"github.com/m04kA/HD-AppointmentService/internal/service/predictions/models"
)

type PredictionService interface {
	GetUserPredictions(ctx context.Context, userID int64, limit int) (*models.PredictionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
