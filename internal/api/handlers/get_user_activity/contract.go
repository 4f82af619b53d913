package get_user_activity

import (
	"context"

	"github.com/m04kA/HD-AppointmentService/internal/service/activity/models"
)

type ActivityService interface {
	GetUserActivity(ctx context.Context, userID int64, limit int) (*models.ActivityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
