package predictions

import (
	"context"
	"fmt"

	"github.com/m04kA/HD-AppointmentService/internal/service/predictions/models"
)

// Service сервис истории предсказаний
type Service struct {
	predictionRepo PredictionRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса предсказаний
func NewService(predictionRepo PredictionRepository, logger Logger) *Service {
	return &Service{
		predictionRepo: predictionRepo,
		logger:         logger,
	}
}

// GetUserPredictions получает историю предсказаний пользователя, сначала новые
// limit <= 0 означает без ограничения
func (s *Service) GetUserPredictions(ctx context.Context, userID int64, limit int) (*models.PredictionListResponse, error) {
	s.logger.Info("GetUserPredictions: fetching predictions for user=%d, limit=%d", userID, limit)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	predictions, err := s.predictionRepo.GetByUserID(ctx, userID, limit)
	if err != nil {
		s.logger.Error("GetUserPredictions: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserPredictions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserPredictions: successfully fetched %d predictions for user=%d", len(predictions), userID)
	return models.FromDomainPredictionList(predictions), nil
}
