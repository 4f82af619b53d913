package predict_risk

import (
	"context"

	predictRisk "github.com/m04kA/HD-AppointmentService/internal/usecase/predict_risk"
)

type PredictRiskUseCase interface {
	Execute(ctx context.Context, req *predictRisk.Request) (*predictRisk.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
