package activity

import (
	"context"
	"fmt"

	"github.com/m04kA/HD-AppointmentService/internal/service/activity/models"
)

// Service сервис журнала действий пользователей
type Service struct {
	activityRepo ActivityRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса активности
func NewService(activityRepo ActivityRepository, logger Logger) *Service {
	return &Service{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// GetUserActivity получает журнал действий пользователя, сначала новые
// limit <= 0 означает без ограничения
func (s *Service) GetUserActivity(ctx context.Context, userID int64, limit int) (*models.ActivityListResponse, error) {
	s.logger.Info("GetUserActivity: fetching activity for user=%d, limit=%d", userID, limit)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	entries, err := s.activityRepo.GetByUserID(ctx, userID, limit)
	if err != nil {
		s.logger.Error("GetUserActivity: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserActivity - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserActivity: successfully fetched %d entries for user=%d", len(entries), userID)
	return models.FromDomainActivityList(entries), nil
}
