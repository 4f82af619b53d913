package predict_risk

import (
	"fmt"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
)

// Допустимые диапазоны клинических признаков
const (
	minAge, maxAge           = 1, 120
	minTrestbps, maxTrestbps = 50, 300
	minChol, maxChol         = 50, 800
	minThalach, maxThalach   = 40, 250
	minOldpeak, maxOldpeak   = 0, 10
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	return validateFeatures(&req.Features)
}

// validateFeatures проверяет признаки на попадание в допустимые диапазоны
func validateFeatures(f *domain.PredictionFeatures) error {
	if f.Age < minAge || f.Age > maxAge {
		return fmt.Errorf("%w: age must be between %d and %d", ErrInvalidInput, minAge, maxAge)
	}

	if f.Sex != 0 && f.Sex != 1 {
		return fmt.Errorf("%w: sex must be 0 or 1", ErrInvalidInput)
	}

	if f.CP < 0 || f.CP > 3 {
		return fmt.Errorf("%w: cp must be between 0 and 3", ErrInvalidInput)
	}

	if f.Trestbps < minTrestbps || f.Trestbps > maxTrestbps {
		return fmt.Errorf("%w: trestbps must be between %d and %d", ErrInvalidInput, minTrestbps, maxTrestbps)
	}

	if f.Chol < minChol || f.Chol > maxChol {
		return fmt.Errorf("%w: chol must be between %d and %d", ErrInvalidInput, minChol, maxChol)
	}

	if f.FBS != 0 && f.FBS != 1 {
		return fmt.Errorf("%w: fbs must be 0 or 1", ErrInvalidInput)
	}

	if f.Restecg < 0 || f.Restecg > 2 {
		return fmt.Errorf("%w: restecg must be between 0 and 2", ErrInvalidInput)
	}

	if f.Thalach < minThalach || f.Thalach > maxThalach {
		return fmt.Errorf("%w: thalach must be between %d and %d", ErrInvalidInput, minThalach, maxThalach)
	}

	if f.Exang != nil && *f.Exang != 0 && *f.Exang != 1 {
		return fmt.Errorf("%w: exang must be 0 or 1", ErrInvalidInput)
	}

	if f.Oldpeak < minOldpeak || f.Oldpeak > maxOldpeak {
		return fmt.Errorf("%w: oldpeak must be between %d and %d", ErrInvalidInput, minOldpeak, maxOldpeak)
	}

	if f.Slope < 0 || f.Slope > 2 {
		return fmt.Errorf("%w: slope must be between 0 and 2", ErrInvalidInput)
	}

	return nil
}
