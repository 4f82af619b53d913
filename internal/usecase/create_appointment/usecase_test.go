package create_appointment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/HD-AppointmentService/internal/infra/storage/appointment"
	doctorRepo "github.com/m04kA/HD-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/HD-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/HD-AppointmentService/pkg/types"
)

// 2026-01-05 - понедельник
var monday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockAppointmentRepo struct {
	// занятые слоты по дате (ключ - YYYY-MM-DD)
	booked    map[string][]types.TimeString
	createErr error
	created   []*domain.Appointment
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	out := *appt
	out.ID = int64(len(m.created) + 1)
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	m.created = append(m.created, &out)
	return &out, nil
}

func (m *mockAppointmentRepo) ListScheduledTimes(ctx context.Context, doctorID int64, date time.Time) ([]types.TimeString, error) {
	return m.booked[date.Format(domain.DateFormat)], nil
}

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

type mockActivityRepo struct {
	entries []*domain.UserActivity
}

func (m *mockActivityRepo) Create(ctx context.Context, entry *domain.UserActivity) (*domain.UserActivity, error) {
	m.entries = append(m.entries, entry)
	return entry, nil
}

// passthroughTxManager выполняет функцию без реальной транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newUseCase(appts *mockAppointmentRepo, docs *mockDoctorRepo, acts *mockActivityRepo) *create_appointment.UseCase {
	return create_appointment.NewUseCase(appts, docs, acts, passthroughTxManager{}, nopLogger{})
}

func validRequest() *create_appointment.Request {
	return &create_appointment.Request{
		UserID:   42,
		DoctorID: 7,
		Date:     monday,
		Time:     "09:00",
		Reason:   "боль в груди при нагрузке",
	}
}

func mondayTuesdaySchedule() *domain.WeeklySchedule {
	return &domain.WeeklySchedule{
		Days:      []string{"Monday", "Tuesday"},
		StartTime: "09:00",
		EndTime:   "10:00",
	}
}

func TestExecute_Success(t *testing.T) {
	appts := &mockAppointmentRepo{booked: map[string][]types.TimeString{}}
	docs := &mockDoctorRepo{schedule: mondayTuesdaySchedule()}
	acts := &mockActivityRepo{}
	uc := newUseCase(appts, docs, acts)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, int64(7), resp.DoctorID)
	assert.Equal(t, types.TimeString("09:00"), resp.Time)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)

	// Действие попало в журнал активности
	require.Len(t, acts.entries, 1)
	assert.Equal(t, domain.ActivityAppointmentCreated, acts.entries[0].Type)
	assert.Equal(t, int64(42), acts.entries[0].UserID)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(&mockAppointmentRepo{}, &mockDoctorRepo{}, &mockActivityRepo{})

	tests := []struct {
		name   string
		mutate func(*create_appointment.Request)
	}{
		{"zero user", func(r *create_appointment.Request) { r.UserID = 0 }},
		{"negative doctor", func(r *create_appointment.Request) { r.DoctorID = -1 }},
		{"zero date", func(r *create_appointment.Request) { r.Date = time.Time{} }},
		{"bad time", func(r *create_appointment.Request) { r.Time = "9am" }},
		{"empty reason", func(r *create_appointment.Request) { r.Reason = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, create_appointment.ErrInvalidInput)
		})
	}
}

func TestExecute_DoctorNotFound(t *testing.T) {
	docs := &mockDoctorRepo{err: doctorRepo.ErrDoctorNotFound}
	uc := newUseCase(&mockAppointmentRepo{}, docs, &mockActivityRepo{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, create_appointment.ErrDoctorNotFound)
}

func TestExecute_MalformedSchedule(t *testing.T) {
	docs := &mockDoctorRepo{err: doctorRepo.ErrScheduleMalformed}
	uc := newUseCase(&mockAppointmentRepo{}, docs, &mockActivityRepo{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, create_appointment.ErrDoctorNotAvailable)
}

func TestExecute_NonWorkingDay(t *testing.T) {
	schedule := &domain.WeeklySchedule{
		Days:      []string{"Friday"},
		StartTime: "09:00",
		EndTime:   "17:00",
	}
	uc := newUseCase(&mockAppointmentRepo{}, &mockDoctorRepo{schedule: schedule}, &mockActivityRepo{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, create_appointment.ErrDoctorNotAvailable)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	uc := newUseCase(&mockAppointmentRepo{}, &mockDoctorRepo{schedule: mondayTuesdaySchedule()}, &mockActivityRepo{})

	for _, slot := range []types.TimeString{"08:30", "10:00", "09:15"} {
		req := validRequest()
		req.Time = slot

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, create_appointment.ErrOutsideWorkingHours, "slot %s", slot)
	}
}

func TestExecute_SlotTaken_ReturnsAlternatives(t *testing.T) {
	appts := &mockAppointmentRepo{
		booked: map[string][]types.TimeString{
			"2026-01-05": {"09:00"},
		},
	}
	acts := &mockActivityRepo{}
	uc := newUseCase(appts, &mockDoctorRepo{schedule: mondayTuesdaySchedule()}, acts)

	_, err := uc.Execute(context.Background(), validRequest())

	var slotTaken *create_appointment.SlotTakenError
	require.ErrorAs(t, err, &slotTaken)

	// В неделе после 5 января врач принимает во вторник 6-го и в понедельник 12-го
	require.Len(t, slotTaken.Alternatives, 2)

	assert.Equal(t, "2026-01-06", slotTaken.Alternatives[0].Date.Format(domain.DateFormat))
	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, slotTaken.Alternatives[0].AvailableSlots)

	assert.Equal(t, "2026-01-12", slotTaken.Alternatives[1].Date.Format(domain.DateFormat))
	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, slotTaken.Alternatives[1].AvailableSlots)

	// Несостоявшаяся запись в журнал не попадает
	assert.Empty(t, acts.entries)
}

func TestExecute_SlotTaken_SkipsFullyBookedDays(t *testing.T) {
	appts := &mockAppointmentRepo{
		booked: map[string][]types.TimeString{
			"2026-01-05": {"09:00"},
			// Вторник занят полностью
			"2026-01-06": {"09:00", "09:30"},
		},
	}
	uc := newUseCase(appts, &mockDoctorRepo{schedule: mondayTuesdaySchedule()}, &mockActivityRepo{})

	_, err := uc.Execute(context.Background(), validRequest())

	var slotTaken *create_appointment.SlotTakenError
	require.ErrorAs(t, err, &slotTaken)

	require.Len(t, slotTaken.Alternatives, 1)
	assert.Equal(t, "2026-01-12", slotTaken.Alternatives[0].Date.Format(domain.DateFormat))
}

func TestExecute_LostSlotRace(t *testing.T) {
	// Слот свободен при проверке, но INSERT упирается в uniq_scheduled_slot:
	// параллельная транзакция заняла слот первой
	appts := &mockAppointmentRepo{
		booked:    map[string][]types.TimeString{},
		createErr: appointmentRepo.ErrSlotTaken,
	}
	uc := newUseCase(appts, &mockDoctorRepo{schedule: mondayTuesdaySchedule()}, &mockActivityRepo{})

	_, err := uc.Execute(context.Background(), validRequest())

	var slotTaken *create_appointment.SlotTakenError
	require.ErrorAs(t, err, &slotTaken)
	require.Len(t, slotTaken.Alternatives, 2)
}

// statefulStore моделирует хранилище с частичным уникальным индексом:
// слот держит только приём в статусе scheduled, отмена освобождает его
type statefulStore struct {
	appointments []*domain.Appointment
}

func (s *statefulStore) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	for _, a := range s.appointments {
		if a.DoctorID == appt.DoctorID && a.Date.Equal(appt.Date) && a.Time == appt.Time && a.IsActive() {
			return nil, appointmentRepo.ErrSlotTaken
		}
	}
	out := *appt
	out.ID = int64(len(s.appointments) + 1)
	s.appointments = append(s.appointments, &out)
	return &out, nil
}

func (s *statefulStore) ListScheduledTimes(ctx context.Context, doctorID int64, date time.Time) ([]types.TimeString, error) {
	times := make([]types.TimeString, 0)
	for _, a := range s.appointments {
		if a.DoctorID == doctorID && a.Date.Equal(date) && a.IsActive() {
			times = append(times, a.Time)
		}
	}
	return times, nil
}

func (s *statefulStore) cancel(id int64) {
	for _, a := range s.appointments {
		if a.ID == id {
			a.Status = domain.StatusCancelled
		}
	}
}

func TestExecute_CancelFreesSlot(t *testing.T) {
	store := &statefulStore{}
	uc := create_appointment.NewUseCase(store, &mockDoctorRepo{schedule: mondayTuesdaySchedule()}, &mockActivityRepo{}, passthroughTxManager{}, nopLogger{})

	// Первый пациент занимает слот
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	firstID := resp.ID

	// Второй пациент получает конфликт на тот же слот
	second := validRequest()
	second.UserID = 43

	_, err = uc.Execute(context.Background(), second)
	var slotTaken *create_appointment.SlotTakenError
	require.ErrorAs(t, err, &slotTaken)

	// После отмены слот немедленно освобождается и бронируется снова
	store.cancel(firstID)

	resp, err = uc.Execute(context.Background(), second)
	require.NoError(t, err)
	assert.NotEqual(t, firstID, resp.ID)
	assert.Equal(t, int64(43), resp.UserID)
}

func TestExecute_CreateFails(t *testing.T) {
	appts := &mockAppointmentRepo{
		booked:    map[string][]types.TimeString{},
		createErr: errors.New("connection refused"),
	}
	uc := newUseCase(appts, &mockDoctorRepo{schedule: mondayTuesdaySchedule()}, &mockActivityRepo{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, create_appointment.ErrInternal)
}
