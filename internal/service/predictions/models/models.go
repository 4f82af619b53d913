package models

import (
	"time"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
)

// PredictionResponse ответ с данными одного предсказания
type PredictionResponse struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	PredictedClass int       `json:"predictedClass"`
	Probability    *float64  `json:"probability,omitempty"`
	RiskPercentage int       `json:"riskPercentage"`
	RiskLevel      string    `json:"riskLevel"`
	CreatedAt      time.Time `json:"createdAt"`

	Features FeaturesResponse `json:"features"`
}

// FeaturesResponse клинические признаки, с которыми был сделан запрос
type FeaturesResponse struct {
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

// PredictionListResponse ответ со списком предсказаний
type PredictionListResponse struct {
	Predictions []PredictionResponse `json:"predictions"`
}

// FromDomainPrediction конвертирует domain модель в DTO
func FromDomainPrediction(p *domain.PredictionRecord) *PredictionResponse {
	if p == nil {
		return nil
	}

	return &PredictionResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		PredictedClass: p.PredictedClass,
		Probability:    p.Probability,
		RiskPercentage: p.RiskPercentage(),
		RiskLevel:      string(p.RiskLevel()),
		CreatedAt:      p.CreatedAt,
		Features: FeaturesResponse{
			Age:      p.Features.Age,
			Sex:      p.Features.Sex,
			CP:       p.Features.CP,
			Trestbps: p.Features.Trestbps,
			Chol:     p.Features.Chol,
			FBS:      p.Features.FBS,
			Restecg:  p.Features.Restecg,
			Thalach:  p.Features.Thalach,
			Exang:    p.Features.Exang,
			Oldpeak:  p.Features.Oldpeak,
			Slope:    p.Features.Slope,
		},
	}
}

// FromDomainPredictionList конвертирует список domain моделей в DTO
func FromDomainPredictionList(predictions []*domain.PredictionRecord) *PredictionListResponse {
	result := make([]PredictionResponse, 0, len(predictions))
	for _, p := range predictions {
		if p == nil {
			continue
		}
		result = append(result, *FromDomainPrediction(p))
	}
	return &PredictionListResponse{Predictions: result}
}
