package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/HD-AppointmentService/internal/api/handlers"
	"github.com/m04kA/HD-AppointmentService/internal/api/middleware"
	createAppointment "github.com/m04kA/HD-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgDoctorNotFound      = "врач не найден"
	msgDoctorNotAvailable  = "врач не принимает в выбранную дату"
	msgOutsideWorkingHours = "время вне рабочих часов врача"
	msgSlotTaken           = "выбранный слот уже занят"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Конфликт слота несет альтернативные слоты
		var slotTaken *createAppointment.SlotTakenError
		if errors.As(err, &slotTaken) {
			h.logger.Warn("POST /appointments - Slot taken: user_id=%d, doctor_id=%d, date=%s, time=%s",
				userID, req.DoctorID, req.Date, req.Time)
			handlers.RespondJSON(w, http.StatusConflict, FromAlternatives(msgSlotTaken, slotTaken.Alternatives))
			return
		}

		switch {
		case errors.Is(err, createAppointment.ErrDoctorNotFound):
			h.logger.Warn("POST /appointments - Doctor not found: doctor_id=%d", req.DoctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, createAppointment.ErrDoctorNotAvailable):
			h.logger.Warn("POST /appointments - Doctor not available: user_id=%d, doctor_id=%d, date=%s",
				userID, req.DoctorID, req.Date)
			handlers.RespondBadRequest(w, msgDoctorNotAvailable)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: user_id=%d, doctor_id=%d, time=%s",
				userID, req.DoctorID, req.Time)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, doctor_id=%d, error=%v",
				userID, req.DoctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, user_id=%d, doctor_id=%d",
		result.ID, userID, req.DoctorID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
