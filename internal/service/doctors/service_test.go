package doctors_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	doctorRepo "github.com/m04kA/HD-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/HD-AppointmentService/internal/service/doctors"
	"github.com/m04kA/HD-AppointmentService/internal/service/doctors/models"
	"github.com/m04kA/HD-AppointmentService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockDoctorRepo struct {
	byID      map[int64]*domain.Doctor
	createErr error

	searchGot      *domain.DoctorSearchFilter
	schedules      map[int64]*domain.WeeklySchedule
	updateSchedErr error
}

func newMockDoctorRepo(docs ...*domain.Doctor) *mockDoctorRepo {
	m := &mockDoctorRepo{
		byID:      make(map[int64]*domain.Doctor),
		schedules: make(map[int64]*domain.WeeklySchedule),
	}
	for _, d := range docs {
		m.byID[d.ID] = d
	}
	return m
}

func (m *mockDoctorRepo) Create(ctx context.Context, doc *domain.Doctor) (*domain.Doctor, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	out := *doc
	out.ID = int64(len(m.byID) + 1)
	m.byID[out.ID] = &out
	return &out, nil
}

func (m *mockDoctorRepo) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	d, ok := m.byID[id]
	if !ok {
		return nil, doctorRepo.ErrDoctorNotFound
	}
	return d, nil
}

func (m *mockDoctorRepo) Search(ctx context.Context, filter domain.DoctorSearchFilter) ([]*domain.Doctor, error) {
	m.searchGot = &filter
	out := make([]*domain.Doctor, 0, len(m.byID))
	for _, d := range m.byID {
		out = append(out, d)
	}
	return out, nil
}

func (m *mockDoctorRepo) UpdateSchedule(ctx context.Context, id int64, schedule *domain.WeeklySchedule) error {
	if m.updateSchedErr != nil {
		return m.updateSchedErr
	}
	d, ok := m.byID[id]
	if !ok {
		return doctorRepo.ErrDoctorNotFound
	}
	m.schedules[id] = schedule
	d.Schedule = *schedule
	return nil
}

func (m *mockDoctorRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return doctorRepo.ErrDoctorNotFound
	}
	delete(m.byID, id)
	return nil
}

func validSchedule() domain.WeeklySchedule {
	return domain.WeeklySchedule{
		Days:      []string{"Monday", "Wednesday"},
		StartTime: "09:00",
		EndTime:   "17:00",
	}
}

func validCreateRequest() *models.CreateDoctorRequest {
	return &models.CreateDoctorRequest{
		FullName:        "Иванова Анна Сергеевна",
		Specialization:  "Кардиолог",
		Qualifications:  "к.м.н.",
		ExperienceYears: 12,
		Hospital:        "ГКБ №1",
		City:            "Москва",
		Area:            "Хамовники",
		Email:           "a.ivanova@clinic.example",
		Availability:    validSchedule(),
		Rating:          4.8,
		ConsultationFee: 3500,
	}
}

func TestCreate(t *testing.T) {
	repo := newMockDoctorRepo()
	svc := doctors.NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Кардиолог", resp.Specialization)
	assert.Equal(t, validSchedule(), resp.Availability)
}

func TestCreate_Validation(t *testing.T) {
	svc := doctors.NewService(newMockDoctorRepo(), nopLogger{})

	tests := []struct {
		name    string
		mutate  func(*models.CreateDoctorRequest)
		wantErr error
	}{
		{"empty name", func(r *models.CreateDoctorRequest) { r.FullName = "  " }, doctors.ErrInvalidInput},
		{"empty specialization", func(r *models.CreateDoctorRequest) { r.Specialization = "" }, doctors.ErrInvalidInput},
		{"empty email", func(r *models.CreateDoctorRequest) { r.Email = "" }, doctors.ErrInvalidInput},
		{"negative experience", func(r *models.CreateDoctorRequest) { r.ExperienceYears = -1 }, doctors.ErrInvalidInput},
		{"rating out of range", func(r *models.CreateDoctorRequest) { r.Rating = 5.5 }, doctors.ErrInvalidInput},
		{"negative fee", func(r *models.CreateDoctorRequest) { r.ConsultationFee = -100 }, doctors.ErrInvalidInput},
		{"broken schedule", func(r *models.CreateDoctorRequest) { r.Availability.EndTime = "08:00" }, doctors.ErrInvalidSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo := newMockDoctorRepo()
	repo.createErr = doctorRepo.ErrDuplicateEmail
	svc := doctors.NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, doctors.ErrDuplicateEmail)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := doctors.NewService(newMockDoctorRepo(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, doctors.ErrDoctorNotFound)
}

func TestSearch_PassesFilter(t *testing.T) {
	repo := newMockDoctorRepo(&domain.Doctor{ID: 1, FullName: "Иванова А.С.", Schedule: validSchedule()})
	svc := doctors.NewService(repo, nopLogger{})

	resp, err := svc.Search(context.Background(), &models.SearchDoctorsRequest{
		City:           ptr.Ptr("Москва"),
		Specialization: ptr.Ptr("Кардиолог"),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Doctors, 1)

	require.NotNil(t, repo.searchGot)
	assert.Equal(t, "Москва", *repo.searchGot.City)
	assert.Equal(t, "Кардиолог", *repo.searchGot.Specialization)
	assert.Nil(t, repo.searchGot.Area)
}

func TestUpdateSchedule(t *testing.T) {
	repo := newMockDoctorRepo(&domain.Doctor{ID: 1, FullName: "Иванова А.С.", Schedule: validSchedule()})
	svc := doctors.NewService(repo, nopLogger{})

	newSchedule := domain.WeeklySchedule{
		Days:      []string{"Friday"},
		StartTime: "10:00",
		EndTime:   "14:00",
	}

	resp, err := svc.UpdateSchedule(context.Background(), 1, &models.UpdateScheduleRequest{Availability: newSchedule})

	require.NoError(t, err)
	assert.Equal(t, newSchedule, resp.Availability)
	assert.Equal(t, &newSchedule, repo.schedules[1])
}

func TestUpdateSchedule_InvalidSchedule(t *testing.T) {
	repo := newMockDoctorRepo(&domain.Doctor{ID: 1, Schedule: validSchedule()})
	svc := doctors.NewService(repo, nopLogger{})

	broken := domain.WeeklySchedule{
		Days:      []string{"Someday"},
		StartTime: "09:00",
		EndTime:   "17:00",
	}

	_, err := svc.UpdateSchedule(context.Background(), 1, &models.UpdateScheduleRequest{Availability: broken})

	assert.ErrorIs(t, err, doctors.ErrInvalidSchedule)
	assert.Empty(t, repo.schedules)
}

func TestUpdateSchedule_DoctorNotFound(t *testing.T) {
	svc := doctors.NewService(newMockDoctorRepo(), nopLogger{})

	_, err := svc.UpdateSchedule(context.Background(), 404, &models.UpdateScheduleRequest{Availability: validSchedule()})

	assert.ErrorIs(t, err, doctors.ErrDoctorNotFound)
}
