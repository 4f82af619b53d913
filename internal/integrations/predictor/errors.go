package predictor

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("predictor client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе модели
	ErrInvalidResponse = errors.New("predictor client: invalid response")

	// ErrServiceUnavailable возвращается, когда сервис модели недоступен
	ErrServiceUnavailable = errors.New("predictor service unavailable")
)
