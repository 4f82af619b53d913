package domain

import "time"

// RiskLevel categorizes a prediction's risk percentage
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// PredictionFeatures clinical input features for the heart-disease classifier
// The model itself is an external oracle; the service only validates ranges
// and persists what was sent and received
type PredictionFeatures struct {
	Age      float64
	Sex      int
	CP       int
	Trestbps float64
	Chol     float64
	FBS      int
	Restecg  int
	Thalach  float64
	Exang    *int
	Oldpeak  float64
	Slope    int
}

// PredictionRecord represents a persisted model invocation for a user
type PredictionRecord struct {
	ID             int64
	UserID         int64
	Features       PredictionFeatures
	PredictedClass int
	Probability    *float64
	CreatedAt      time.Time
}

// Risk level thresholds (percent)
const (
	riskHighThreshold   = 70
	riskMediumThreshold = 40
)

// RiskPercentage derives the risk percentage from the model output
// Falls back to fixed values when the model reported no probability
func (p *PredictionRecord) RiskPercentage() int {
	if p.Probability != nil {
		return int(*p.Probability*100 + 0.5)
	}
	if p.PredictedClass == 1 {
		return 75
	}
	return 15
}

// RiskLevel categorizes the prediction into low/medium/high
func (p *PredictionRecord) RiskLevel() RiskLevel {
	pct := p.RiskPercentage()
	switch {
	case pct >= riskHighThreshold:
		return RiskHigh
	case pct >= riskMediumThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}
