package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	"github.com/m04kA/HD-AppointmentService/pkg/ptr"
)

func TestPredictionRecord_RiskPercentage(t *testing.T) {
	tests := []struct {
		name        string
		probability *float64
		class       int
		wantPct     int
		wantLevel   domain.RiskLevel
	}{
		{"high probability", ptr.Ptr(0.82), 1, 82, domain.RiskHigh},
		{"boundary high", ptr.Ptr(0.70), 1, 70, domain.RiskHigh},
		{"medium probability", ptr.Ptr(0.55), 1, 55, domain.RiskMedium},
		{"boundary medium", ptr.Ptr(0.40), 0, 40, domain.RiskMedium},
		{"low probability", ptr.Ptr(0.12), 0, 12, domain.RiskLow},
		{"rounding up", ptr.Ptr(0.695), 1, 70, domain.RiskHigh},
		// Модель без вероятности: фиксированные значения по классу
		{"no probability positive class", nil, 1, 75, domain.RiskHigh},
		{"no probability negative class", nil, 0, 15, domain.RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := domain.PredictionRecord{
				PredictedClass: tt.class,
				Probability:    tt.probability,
			}

			assert.Equal(t, tt.wantPct, rec.RiskPercentage())
			assert.Equal(t, tt.wantLevel, rec.RiskLevel())
		})
	}
}
