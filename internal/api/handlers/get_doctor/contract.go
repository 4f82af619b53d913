package get_doctor

import (
	"context"

	"github.com/m04kA/HD-AppointmentService/internal/service/doctors/models"
)

type DoctorService interface {
	GetByID(ctx context.Context, id int64) (*models.DoctorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
