package appointments_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/HD-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/HD-AppointmentService/internal/service/appointments"
	"github.com/m04kA/HD-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/HD-AppointmentService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockAppointmentRepo struct {
	byID map[int64]*domain.Appointment

	cancelled       []int64
	updatedStatuses map[int64]domain.AppointmentStatus
}

func newMockAppointmentRepo(appts ...*domain.Appointment) *mockAppointmentRepo {
	m := &mockAppointmentRepo{
		byID:            make(map[int64]*domain.Appointment),
		updatedStatuses: make(map[int64]domain.AppointmentStatus),
	}
	for _, a := range appts {
		m.byID[a.ID] = a
	}
	return m
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	a, ok := m.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (m *mockAppointmentRepo) GetByUserID(ctx context.Context, userID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0)
	for _, a := range m.byID {
		if a.UserID != userID {
			continue
		}
		if status != nil && a.Status != *status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAppointmentRepo) GetByDoctorWithFilter(ctx context.Context, filter domain.DoctorAppointmentsFilter) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0)
	for _, a := range m.byID {
		if a.DoctorID != filter.DoctorID {
			continue
		}
		if !filter.IncludeInactive && !a.IsActive() {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	if _, ok := m.byID[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	m.updatedStatuses[id] = status
	return nil
}

func (m *mockAppointmentRepo) Cancel(ctx context.Context, id int64, reason string) error {
	if _, ok := m.byID[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	m.cancelled = append(m.cancelled, id)
	return nil
}

type mockActivityRepo struct {
	entries []*domain.UserActivity
}

func (m *mockActivityRepo) Create(ctx context.Context, entry *domain.UserActivity) (*domain.UserActivity, error) {
	m.entries = append(m.entries, entry)
	return entry, nil
}

func scheduledAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:       1,
		UserID:   42,
		DoctorID: 7,
		Date:     time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Time:     "10:30",
		Reason:   "плановый осмотр",
		Status:   domain.StatusScheduled,
	}
}

func TestGetByID_OwnerOnly(t *testing.T) {
	repo := newMockAppointmentRepo(scheduledAppointment())
	svc := appointments.NewService(repo, &mockActivityRepo{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-01-05", resp.Date)
	assert.Equal(t, "10:30", resp.Time)

	// Чужая запись недоступна
	_, err = svc.GetByID(context.Background(), 1, 99)
	assert.ErrorIs(t, err, appointments.ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := appointments.NewService(newMockAppointmentRepo(), &mockActivityRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 404, 42)

	assert.ErrorIs(t, err, appointments.ErrAppointmentNotFound)
}

func TestGetUserAppointments_StatusFilter(t *testing.T) {
	cancelled := scheduledAppointment()
	cancelled.ID = 2
	cancelled.Status = domain.StatusCancelled

	repo := newMockAppointmentRepo(scheduledAppointment(), cancelled)
	svc := appointments.NewService(repo, &mockActivityRepo{}, nopLogger{})

	resp, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: 42,
		Status: ptr.Ptr("cancelled"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "cancelled", resp.Appointments[0].Status)

	// Некорректный статус отклоняется
	_, err = svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: 42,
		Status: ptr.Ptr("done"),
	})
	assert.ErrorIs(t, err, appointments.ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	repo := newMockAppointmentRepo(scheduledAppointment())
	acts := &mockActivityRepo{}
	svc := appointments.NewService(repo, acts, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		UserID:             42,
		CancellationReason: "не смогу прийти",
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.cancelled)

	// Отмена фиксируется в журнале активности
	require.Len(t, acts.entries, 1)
	assert.Equal(t, domain.ActivityAppointmentCancelled, acts.entries[0].Type)
	assert.Equal(t, int64(42), acts.entries[0].UserID)
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := newMockAppointmentRepo(scheduledAppointment())
	svc := appointments.NewService(repo, &mockActivityRepo{}, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: 99})

	assert.ErrorIs(t, err, appointments.ErrAccessDenied)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_AlreadyCompleted(t *testing.T) {
	completed := scheduledAppointment()
	completed.Status = domain.StatusCompleted

	repo := newMockAppointmentRepo(completed)
	svc := appointments.NewService(repo, &mockActivityRepo{}, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: 42})

	assert.ErrorIs(t, err, appointments.ErrCannotCancel)
}

func TestComplete(t *testing.T) {
	repo := newMockAppointmentRepo(scheduledAppointment())
	svc := appointments.NewService(repo, &mockActivityRepo{}, nopLogger{})

	err := svc.Complete(context.Background(), 1, &models.CompleteAppointmentRequest{DoctorID: 7})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.updatedStatuses[1])
}

func TestComplete_WrongDoctor(t *testing.T) {
	repo := newMockAppointmentRepo(scheduledAppointment())
	svc := appointments.NewService(repo, &mockActivityRepo{}, nopLogger{})

	err := svc.Complete(context.Background(), 1, &models.CompleteAppointmentRequest{DoctorID: 8})

	assert.ErrorIs(t, err, appointments.ErrAccessDenied)
	assert.Empty(t, repo.updatedStatuses)
}

func TestComplete_AlreadyCancelled(t *testing.T) {
	cancelled := scheduledAppointment()
	cancelled.Status = domain.StatusCancelled

	repo := newMockAppointmentRepo(cancelled)
	svc := appointments.NewService(repo, &mockActivityRepo{}, nopLogger{})

	err := svc.Complete(context.Background(), 1, &models.CompleteAppointmentRequest{DoctorID: 7})

	assert.ErrorIs(t, err, appointments.ErrCannotComplete)
}
