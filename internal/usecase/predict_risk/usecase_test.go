package predict_risk_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	"github.com/m04kA/HD-AppointmentService/internal/integrations/predictor"
	"github.com/m04kA/HD-AppointmentService/internal/usecase/predict_risk"
	"github.com/m04kA/HD-AppointmentService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockPredictionRepo struct {
	createErr error
	saved     *domain.PredictionRecord
}

func (m *mockPredictionRepo) Create(ctx context.Context, rec *domain.PredictionRecord) (*domain.PredictionRecord, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	out := *rec
	out.ID = 101
	out.CreatedAt = time.Now()
	m.saved = &out
	return &out, nil
}

type mockActivityRepo struct {
	entries []*domain.UserActivity
}

func (m *mockActivityRepo) Create(ctx context.Context, entry *domain.UserActivity) (*domain.UserActivity, error) {
	m.entries = append(m.entries, entry)
	return entry, nil
}

type mockPredictor struct {
	resp *predictor.PredictResponse
	err  error
	got  *predictor.PredictRequest
}

func (m *mockPredictor) Predict(ctx context.Context, req predictor.PredictRequest) (*predictor.PredictResponse, error) {
	m.got = &req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func validFeatures() domain.PredictionFeatures {
	return domain.PredictionFeatures{
		Age:      54,
		Sex:      1,
		CP:       2,
		Trestbps: 130,
		Chol:     246,
		FBS:      0,
		Restecg:  1,
		Thalach:  150,
		Exang:    ptr.Ptr(0),
		Oldpeak:  1.4,
		Slope:    1,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &mockPredictionRepo{}
	acts := &mockActivityRepo{}
	model := &mockPredictor{
		resp: &predictor.PredictResponse{PredictedClass: 1, Probability: ptr.Ptr(0.82)},
	}
	uc := predict_risk.NewUseCase(repo, acts, model, nopLogger{})

	resp, err := uc.Execute(context.Background(), &predict_risk.Request{UserID: 42, Features: validFeatures()})

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, 1, resp.PredictedClass)
	assert.Equal(t, 82, resp.RiskPercentage)
	assert.Equal(t, domain.RiskHigh, resp.RiskLevel)

	// Признаки дошли до модели без искажений
	require.NotNil(t, model.got)
	assert.Equal(t, 54.0, model.got.Age)
	assert.Equal(t, 2, model.got.CP)

	// Запись сохранена и действие зафиксировано
	require.NotNil(t, repo.saved)
	assert.Equal(t, int64(42), repo.saved.UserID)
	require.Len(t, acts.entries, 1)
	assert.Equal(t, domain.ActivityPredictionMade, acts.entries[0].Type)
}

func TestExecute_NoProbabilityFallback(t *testing.T) {
	model := &mockPredictor{resp: &predictor.PredictResponse{PredictedClass: 0}}
	uc := predict_risk.NewUseCase(&mockPredictionRepo{}, &mockActivityRepo{}, model, nopLogger{})

	resp, err := uc.Execute(context.Background(), &predict_risk.Request{UserID: 42, Features: validFeatures()})

	require.NoError(t, err)
	assert.Equal(t, 15, resp.RiskPercentage)
	assert.Equal(t, domain.RiskLow, resp.RiskLevel)
}

func TestExecute_PredictorUnavailable(t *testing.T) {
	model := &mockPredictor{err: predictor.ErrServiceUnavailable}
	uc := predict_risk.NewUseCase(&mockPredictionRepo{}, &mockActivityRepo{}, model, nopLogger{})

	_, err := uc.Execute(context.Background(), &predict_risk.Request{UserID: 42, Features: validFeatures()})

	assert.ErrorIs(t, err, predict_risk.ErrPredictorUnavailable)
}

func TestExecute_PersistFails(t *testing.T) {
	model := &mockPredictor{resp: &predictor.PredictResponse{PredictedClass: 0}}
	repo := &mockPredictionRepo{createErr: errors.New("connection refused")}
	uc := predict_risk.NewUseCase(repo, &mockActivityRepo{}, model, nopLogger{})

	_, err := uc.Execute(context.Background(), &predict_risk.Request{UserID: 42, Features: validFeatures()})

	assert.ErrorIs(t, err, predict_risk.ErrInternal)
}

func TestExecute_FeatureValidation(t *testing.T) {
	uc := predict_risk.NewUseCase(&mockPredictionRepo{}, &mockActivityRepo{}, &mockPredictor{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*domain.PredictionFeatures)
	}{
		{"age too low", func(f *domain.PredictionFeatures) { f.Age = 0 }},
		{"age too high", func(f *domain.PredictionFeatures) { f.Age = 121 }},
		{"bad sex", func(f *domain.PredictionFeatures) { f.Sex = 2 }},
		{"bad cp", func(f *domain.PredictionFeatures) { f.CP = 4 }},
		{"trestbps too low", func(f *domain.PredictionFeatures) { f.Trestbps = 40 }},
		{"chol too high", func(f *domain.PredictionFeatures) { f.Chol = 900 }},
		{"bad fbs", func(f *domain.PredictionFeatures) { f.FBS = -1 }},
		{"bad restecg", func(f *domain.PredictionFeatures) { f.Restecg = 3 }},
		{"thalach too high", func(f *domain.PredictionFeatures) { f.Thalach = 260 }},
		{"bad exang", func(f *domain.PredictionFeatures) { f.Exang = ptr.Ptr(2) }},
		{"oldpeak negative", func(f *domain.PredictionFeatures) { f.Oldpeak = -0.5 }},
		{"bad slope", func(f *domain.PredictionFeatures) { f.Slope = 3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := validFeatures()
			tt.mutate(&features)

			_, err := uc.Execute(context.Background(), &predict_risk.Request{UserID: 42, Features: features})

			assert.ErrorIs(t, err, predict_risk.ErrInvalidInput)
		})
	}
}

func TestExecute_MissingExangIsValid(t *testing.T) {
	model := &mockPredictor{resp: &predictor.PredictResponse{PredictedClass: 0}}
	uc := predict_risk.NewUseCase(&mockPredictionRepo{}, &mockActivityRepo{}, model, nopLogger{})

	features := validFeatures()
	features.Exang = nil

	_, err := uc.Execute(context.Background(), &predict_risk.Request{UserID: 42, Features: features})

	require.NoError(t, err)
}
