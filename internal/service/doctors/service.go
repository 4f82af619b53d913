package doctors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	doctorRepo "github.com/m04kA/HD-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/HD-AppointmentService/internal/service/doctors/models"
)

// Service сервис справочника врачей
type Service struct {
	doctorRepo DoctorRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса врачей
func NewService(doctorRepo DoctorRepository, logger Logger) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

// Create добавляет врача в справочник
func (s *Service) Create(ctx context.Context, req *models.CreateDoctorRequest) (*models.DoctorResponse, error) {
	s.logger.Info("Create: creating doctor %q, specialization=%s", req.FullName, req.Specialization)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.doctorRepo.Create(ctx, req.ToDomainDoctor())
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDuplicateEmail) {
			s.logger.Warn("Create: email %s already registered", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created doctor id=%d", created.ID)
	return models.FromDomainDoctor(created), nil
}

// GetByID получает врача по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.DoctorResponse, error) {
	s.logger.Info("GetByID: fetching doctor id=%d", id)

	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("GetByID: doctor id=%d not found", id)
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("GetByID: repository error for doctor id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDoctor(doctor), nil
}

// Search ищет врачей по городу, району и специализации
// Результат отсортирован по рейтингу по убыванию
func (s *Service) Search(ctx context.Context, req *models.SearchDoctorsRequest) (*models.DoctorListResponse, error) {
	s.logger.Info("Search: city=%v, area=%v, specialization=%v", req.City, req.Area, req.Specialization)

	doctors, err := s.doctorRepo.Search(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: found %d doctors", len(doctors))
	return models.FromDomainDoctorList(doctors), nil
}

// UpdateSchedule обновляет недельное расписание врача
// Расписание проверяется на согласованность до записи в БД
func (s *Service) UpdateSchedule(ctx context.Context, doctorID int64, req *models.UpdateScheduleRequest) (*models.DoctorResponse, error) {
	s.logger.Info("UpdateSchedule: updating schedule for doctor id=%d", doctorID)

	if err := req.Availability.Validate(); err != nil {
		s.logger.Warn("UpdateSchedule: invalid schedule for doctor id=%d: %v", doctorID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	if err := s.doctorRepo.UpdateSchedule(ctx, doctorID, &req.Availability); err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("UpdateSchedule: doctor id=%d not found", doctorID)
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("UpdateSchedule: repository error for doctor id=%d: %v", doctorID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		s.logger.Error("UpdateSchedule: failed to reload doctor id=%d: %v", doctorID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: successfully updated schedule for doctor id=%d", doctorID)
	return models.FromDomainDoctor(doctor), nil
}

// Delete удаляет врача из справочника
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting doctor id=%d", id)

	if err := s.doctorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("Delete: doctor id=%d not found", id)
			return ErrDoctorNotFound
		}
		s.logger.Error("Delete: repository error for doctor id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted doctor id=%d", id)
	return nil
}

// Вспомогательные методы

func validateCreateRequest(req *models.CreateDoctorRequest) error {
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Specialization) == "" {
		return fmt.Errorf("%w: specialization is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if req.ExperienceYears < 0 {
		return fmt.Errorf("%w: experienceYears must not be negative", ErrInvalidInput)
	}

	if req.Rating < 0 || req.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
	}

	if req.ConsultationFee < 0 {
		return fmt.Errorf("%w: consultationFee must not be negative", ErrInvalidInput)
	}

	if err := req.Availability.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	return nil
}
