package update_doctor_schedule

import (
	"context"

	"github.com/m04kA/HD-AppointmentService/internal/service/doctors/models"
)

type DoctorService interface {
	UpdateSchedule(ctx context.Context, doctorID int64, req *models.UpdateScheduleRequest) (*models.DoctorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
