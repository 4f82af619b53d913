package get_available_slots_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	doctorRepo "github.com/m04kA/HD-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/HD-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/HD-AppointmentService/pkg/types"
)

// 2026-01-05 - понедельник
var monday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockDoctorRepo struct {
	schedule *domain.WeeklySchedule
	err      error
}

func (m *mockDoctorRepo) GetSchedule(ctx context.Context, doctorID int64) (*domain.WeeklySchedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.schedule, nil
}

type mockAppointmentRepo struct {
	booked []types.TimeString
	err    error
}

func (m *mockAppointmentRepo) ListScheduledTimes(ctx context.Context, doctorID int64, date time.Time) ([]types.TimeString, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.booked, nil
}

func mondaySchedule() *domain.WeeklySchedule {
	return &domain.WeeklySchedule{
		Days:      []string{"Monday"},
		StartTime: "09:00",
		EndTime:   "11:00",
	}
}

func TestExecute_FreeSlots(t *testing.T) {
	uc := get_available_slots.NewUseCase(
		&mockDoctorRepo{schedule: mondaySchedule()},
		&mockAppointmentRepo{booked: []types.TimeString{"09:30", "10:30"}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &get_available_slots.Request{DoctorID: 7, Date: monday})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.DoctorID)
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, resp.Slots)
}

func TestExecute_NoBookings(t *testing.T) {
	uc := get_available_slots.NewUseCase(
		&mockDoctorRepo{schedule: mondaySchedule()},
		&mockAppointmentRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &get_available_slots.Request{DoctorID: 7, Date: monday})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, resp.Slots)
}

func TestExecute_NonWorkingDay(t *testing.T) {
	uc := get_available_slots.NewUseCase(
		&mockDoctorRepo{schedule: mondaySchedule()},
		&mockAppointmentRepo{},
		nopLogger{},
	)

	// 2026-01-06 - вторник
	tuesday := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &get_available_slots.Request{DoctorID: 7, Date: tuesday})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	uc := get_available_slots.NewUseCase(
		&mockDoctorRepo{err: doctorRepo.ErrDoctorNotFound},
		&mockAppointmentRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &get_available_slots.Request{DoctorID: 7, Date: monday})

	assert.ErrorIs(t, err, get_available_slots.ErrDoctorNotFound)
}

func TestExecute_MalformedScheduleDegradesToEmpty(t *testing.T) {
	// Битое расписание в хранилище не роняет запрос:
	// пациент видит врача без свободных слотов
	uc := get_available_slots.NewUseCase(
		&mockDoctorRepo{err: doctorRepo.ErrScheduleMalformed},
		&mockAppointmentRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &get_available_slots.Request{DoctorID: 7, Date: monday})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InconsistentScheduleDegradesToEmpty(t *testing.T) {
	schedule := &domain.WeeklySchedule{
		Days:      []string{"Monday"},
		StartTime: "17:00",
		EndTime:   "09:00",
	}
	uc := get_available_slots.NewUseCase(
		&mockDoctorRepo{schedule: schedule},
		&mockAppointmentRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &get_available_slots.Request{DoctorID: 7, Date: monday})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := get_available_slots.NewUseCase(&mockDoctorRepo{}, &mockAppointmentRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &get_available_slots.Request{DoctorID: 0, Date: monday})
	assert.ErrorIs(t, err, get_available_slots.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &get_available_slots.Request{DoctorID: 7})
	assert.ErrorIs(t, err, get_available_slots.ErrInvalidInput)
}

func TestExecute_BookedSlotsQueryFails(t *testing.T) {
	uc := get_available_slots.NewUseCase(
		&mockDoctorRepo{schedule: mondaySchedule()},
		&mockAppointmentRepo{err: errors.New("connection refused")},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &get_available_slots.Request{DoctorID: 7, Date: monday})

	assert.ErrorIs(t, err, get_available_slots.ErrInternal)
}
