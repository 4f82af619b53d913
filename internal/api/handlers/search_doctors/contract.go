package search_doctors

import (
	"context"

	"github.com/m04kA/HD-AppointmentService/internal/service/doctors/models"
)

type DoctorService interface {
	Search(ctx context.Context, req *models.SearchDoctorsRequest) (*models.DoctorListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
