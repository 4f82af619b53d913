package create_doctor

import (
	"errors"
	"net/http"

	"github.com/m04kA/HD-AppointmentService/internal/api/handlers"
	"github.com/m04kA/HD-AppointmentService/internal/service/doctors"
	"github.com/m04kA/HD-AppointmentService/internal/service/doctors/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDuplicateEmail     = "врач с таким email уже существует"
	msgInvalidSchedule    = "некорректное расписание"
)

type Handler struct {
	service DoctorService
	logger  Logger
}

func NewHandler(service DoctorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/doctors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDoctorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /doctors - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	doctor, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, doctors.ErrDuplicateEmail):
			h.logger.Warn("POST /doctors - Duplicate email: %s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateEmail)

		case errors.Is(err, doctors.ErrInvalidSchedule):
			h.logger.Warn("POST /doctors - Invalid schedule: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, doctors.ErrInvalidInput):
			h.logger.Warn("POST /doctors - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /doctors - Failed to create doctor: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /doctors - Doctor created successfully: doctor_id=%d", doctor.ID)
	handlers.RespondJSON(w, http.StatusCreated, doctor)
}
