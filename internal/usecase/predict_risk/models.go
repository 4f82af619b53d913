package predict_risk

import (
	"time"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
)

// Request модель запроса на предсказание риска
type Request struct {
	UserID   int64                     // ID пользователя
	Features domain.PredictionFeatures // Клинические признаки
}

// Response модель ответа с результатом предсказания
type Response struct {
	ID             int64            // ID сохраненной записи
	UserID         int64            // ID пользователя
	PredictedClass int              // Класс, предсказанный моделью (0/1)
	Probability    *float64         // Вероятность положительного класса, если модель ее вернула
	RiskPercentage int              // Риск в процентах
	RiskLevel      domain.RiskLevel // Категория риска
	CreatedAt      time.Time        // Время предсказания
}
