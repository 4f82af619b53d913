package search_doctors

import (
	"net/http"

	"github.com/m04kA/HD-AppointmentService/internal/api/handlers"
	"github.com/m04kA/HD-AppointmentService/internal/service/doctors/models"
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

// Handle GET /api/v1/doctors/search
// Query params: city, area, specialization (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.SearchDoctorsRequest{}

	query := r.URL.Query()
	if city := query.Get("city"); city != "" {
		req.City = &city
	}
	if area := query.Get("area"); area != "" {
		req.Area = &area
	}
	if specialization := query.Get("specialization"); specialization != "" {
		req.Specialization = &specialization
	}

	result, err := h.service.Search(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /doctors/search - Failed to search doctors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /doctors/search - Returned %d doctors", len(result.Doctors))
	handlers.RespondJSON(w, http.StatusOK, result)
}
