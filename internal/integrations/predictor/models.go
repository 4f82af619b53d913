package predictor

// PredictRequest входные признаки для модели предсказания
type PredictRequest struct {
	Age      float64 `json:"age"`
	Sex      int     `json:"sex"`
	CP       int     `json:"cp"`
	Trestbps float64 `json:"trestbps"`
	Chol     float64 `json:"chol"`
	FBS      int     `json:"fbs"`
	Restecg  int     `json:"restecg"`
	Thalach  float64 `json:"thalach"`
	Exang    *int    `json:"exang,omitempty"`
	Oldpeak  float64 `json:"oldpeak"`
	Slope    int     `json:"slope"`
}

// PredictResponse ответ модели предсказания
type PredictResponse struct {
	PredictedClass int      `json:"prediction"`
	Probability    *float64 `json:"probability,omitempty"`
}

// ErrorResponse модель ошибки от сервиса модели
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
