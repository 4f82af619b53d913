package predict_risk

import (
	"errors"
	"net/http"

	"github.com/m04kA/HD-AppointmentService/internal/api/handlers"
	"github.com/m04kA/HD-AppointmentService/internal/api/middleware"
	predictRisk "github.com/m04kA/HD-AppointmentService/internal/usecase/predict_risk"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgPredictorUnavailable = "сервис предсказания временно недоступен"
)

type Handler struct {
	useCase PredictRiskUseCase
	logger  Logger
}

func NewHandler(useCase PredictRiskUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/predictions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /predictions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req PredictRiskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /predictions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, predictRisk.ErrInvalidInput):
			h.logger.Warn("POST /predictions - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, predictRisk.ErrPredictorUnavailable):
			h.logger.Error("POST /predictions - Predictor unavailable: user_id=%d", userID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgPredictorUnavailable)

		default:
			h.logger.Error("POST /predictions - Failed to predict: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /predictions - Prediction created successfully: prediction_id=%d, user_id=%d, risk=%s",
		result.ID, userID, result.RiskLevel)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
