package predict_risk

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	"github.com/m04kA/HD-AppointmentService/internal/integrations/predictor"
)

// UseCase use case для предсказания риска сердечного заболевания
type UseCase struct {
	predictionRepo PredictionRepository
	activityRepo   ActivityRepository
	predictor      PredictorClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	predictionRepo PredictionRepository,
	activityRepo ActivityRepository,
	predictorClient PredictorClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		predictionRepo: predictionRepo,
		activityRepo:   activityRepo,
		predictor:      predictorClient,
		logger:         logger,
	}
}

// Execute выполняет use case предсказания риска
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PredictRisk: user=%d", req.UserID)

	// 1. Валидация входных признаков
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PredictRisk: validation failed: %v", err)
		return nil, err
	}

	// 2. Вызываем модель
	prediction, err := uc.predictor.Predict(ctx, toPredictRequest(&req.Features))
	if err != nil {
		if errors.Is(err, predictor.ErrServiceUnavailable) {
			uc.logger.Error("PredictRisk: predictor unavailable for user id=%d: %v", req.UserID, err)
			return nil, ErrPredictorUnavailable
		}
		uc.logger.Error("PredictRisk: predictor call failed for user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: predictor call failed: %v", ErrInternal, err)
	}

	// 3. Сохраняем запись о предсказании
	record := &domain.PredictionRecord{
		UserID:         req.UserID,
		Features:       req.Features,
		PredictedClass: prediction.PredictedClass,
		Probability:    prediction.Probability,
	}

	created, err := uc.predictionRepo.Create(ctx, record)
	if err != nil {
		uc.logger.Error("PredictRisk: failed to persist prediction for user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to persist prediction: %v", ErrInternal, err)
	}

	uc.logger.Info("PredictRisk: user=%d, class=%d, risk=%d%% (%s)",
		req.UserID, created.PredictedClass, created.RiskPercentage(), created.RiskLevel())

	// 4. Фиксируем действие пользователя, ошибки журнала не критичны
	uc.logActivity(ctx, created)

	return &Response{
		ID:             created.ID,
		UserID:         created.UserID,
		PredictedClass: created.PredictedClass,
		Probability:    created.Probability,
		RiskPercentage: created.RiskPercentage(),
		RiskLevel:      created.RiskLevel(),
		CreatedAt:      created.CreatedAt,
	}, nil
}

func (uc *UseCase) logActivity(ctx context.Context, rec *domain.PredictionRecord) {
	details := fmt.Sprintf("prediction_id=%d, risk=%s", rec.ID, rec.RiskLevel())

	entry := &domain.UserActivity{
		UserID:  rec.UserID,
		Type:    domain.ActivityPredictionMade,
		Details: &details,
	}

	if _, err := uc.activityRepo.Create(ctx, entry); err != nil {
		uc.logger.Warn("PredictRisk: failed to log user activity: %v", err)
	}
}

func toPredictRequest(f *domain.PredictionFeatures) predictor.PredictRequest {
	return predictor.PredictRequest{
		Age:      f.Age,
		Sex:      f.Sex,
		CP:       f.CP,
		Trestbps: f.Trestbps,
		Chol:     f.Chol,
		FBS:      f.FBS,
		Restecg:  f.Restecg,
		Thalach:  f.Thalach,
		Exang:    f.Exang,
		Oldpeak:  f.Oldpeak,
		Slope:    f.Slope,
	}
}
