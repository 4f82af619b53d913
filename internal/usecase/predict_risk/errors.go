package predict_risk

import "errors"

var (
	// ErrInvalidInput возвращается при признаках вне допустимых диапазонов
	ErrInvalidInput = errors.New("predict_risk: invalid input data")

	// ErrPredictorUnavailable возвращается, когда сервис модели недоступен
	ErrPredictorUnavailable = errors.New("predict_risk: predictor service unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("predict_risk: internal error")
)
