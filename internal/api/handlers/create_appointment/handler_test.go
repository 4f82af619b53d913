package create_appointment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/create_appointment"
	"github.com/m04kA/HD-AppointmentService/internal/api/middleware"
	"github.com/m04kA/HD-AppointmentService/internal/domain"
	createAppointment "github.com/m04kA/HD-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/HD-AppointmentService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *createAppointment.Response
	err  error
	got  *createAppointment.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func doRequest(t *testing.T, uc *stubUseCase, userID string, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := handler.NewHandler(uc, nopLogger{})
	protected := middleware.Auth(http.HandlerFunc(h.Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	w := httptest.NewRecorder()

	protected.ServeHTTP(w, req)
	return w
}

const validBody = `{"doctorId": 7, "date": "2026-01-05", "time": "10:30", "reason": "плановый осмотр"}`

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{
		resp: &createAppointment.Response{
			ID:        1,
			UserID:    42,
			DoctorID:  7,
			Date:      time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			Time:      "10:30",
			Reason:    "плановый осмотр",
			Status:    "scheduled",
			CreatedAt: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	w := doRequest(t, uc, "42", validBody)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp handler.AppointmentResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-01-05", resp.Date)
	assert.Equal(t, "10:30", resp.Time)
	assert.Equal(t, "scheduled", resp.Status)

	// userID берётся из заголовка, а не из тела
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(42), uc.got.UserID)
}

func TestHandle_SlotTakenConflict(t *testing.T) {
	uc := &stubUseCase{
		err: &createAppointment.SlotTakenError{
			Alternatives: []domain.DaySlots{
				{
					Date:           time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
					AvailableSlots: []types.TimeString{"09:00", "09:30"},
				},
			},
		},
	}

	w := doRequest(t, uc, "42", validBody)

	require.Equal(t, http.StatusConflict, w.Code)

	var resp handler.SlotTakenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Error)
	require.Len(t, resp.Alternatives, 1)
	assert.Equal(t, "2026-01-06", resp.Alternatives[0].Date)
	assert.Equal(t, []string{"09:00", "09:30"}, resp.Alternatives[0].AvailableSlots)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	w := doRequest(t, &stubUseCase{}, "", validBody)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandle_BadUserHeader(t *testing.T) {
	w := doRequest(t, &stubUseCase{}, "abc", validBody)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	w := doRequest(t, &stubUseCase{}, "42", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	body := `{"doctorId": 7, "date": "05.01.2026", "time": "10:30", "reason": "осмотр"}`

	w := doRequest(t, &stubUseCase{}, "42", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_DoctorNotFound(t *testing.T) {
	uc := &stubUseCase{err: createAppointment.ErrDoctorNotFound}

	w := doRequest(t, uc, "42", validBody)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandle_OutsideWorkingHours(t *testing.T) {
	uc := &stubUseCase{err: createAppointment.ErrOutsideWorkingHours}

	w := doRequest(t, uc, "42", validBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &stubUseCase{err: createAppointment.ErrInternal}

	w := doRequest(t, uc, "42", validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
