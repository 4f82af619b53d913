package predict_risk

import (
	"time"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	predictRisk "github.com/m04kA/HD-AppointmentService/internal/usecase/predict_risk"
)

// PredictRiskRequest HTTP request model
type PredictRiskRequest struct {
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

// PredictRiskResponse HTTP response model
type PredictRiskResponse struct {
	ID             int64    `json:"id"`
	PredictedClass int      `json:"predictedClass"`
	Probability    *float64 `json:"probability,omitempty"`
	RiskPercentage int      `json:"riskPercentage"`
	RiskLevel      string   `json:"riskLevel"`
	CreatedAt      string   `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PredictRiskRequest) ToUseCaseRequest(userID int64) *predictRisk.Request {
	return &predictRisk.Request{
		UserID: userID,
		Features: domain.PredictionFeatures{
			Age:      r.Age,
			Sex:      r.Sex,
			CP:       r.CP,
			Trestbps: r.Trestbps,
			Chol:     r.Chol,
			FBS:      r.FBS,
			Restecg:  r.Restecg,
			Thalach:  r.Thalach,
			Exang:    r.Exang,
			Oldpeak:  r.Oldpeak,
			Slope:    r.Slope,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *predictRisk.Response) *PredictRiskResponse {
	return &PredictRiskResponse{
		ID:             resp.ID,
		PredictedClass: resp.PredictedClass,
		Probability:    resp.Probability,
		RiskPercentage: resp.RiskPercentage,
		RiskLevel:      string(resp.RiskLevel),
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
