package models

import (
	"time"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
)

// Request модели

// CreateDoctorRequest запрос на добавление врача в справочник
type CreateDoctorRequest struct {
	FullName        string                `json:"fullName"`
	Specialization  string                `json:"specialization"`
	Qualifications  string                `json:"qualifications"`
	ExperienceYears int                   `json:"experienceYears"`
	Hospital        string                `json:"hospital"`
	Address         string                `json:"address"`
	City            string                `json:"city"`
	Area            string                `json:"area"`
	PhoneNumber     string                `json:"phoneNumber"`
	Email           string                `json:"email"`
	Availability    domain.WeeklySchedule `json:"availability"`
	Rating          float64               `json:"rating"`
	ConsultationFee float64               `json:"consultationFee"`
}

// ToDomainDoctor конвертирует request в domain модель
func (r *CreateDoctorRequest) ToDomainDoctor() *domain.Doctor {
	return &domain.Doctor{
		FullName:        r.FullName,
		Specialization:  r.Specialization,
		Qualifications:  r.Qualifications,
		ExperienceYears: r.ExperienceYears,
		Hospital:        r.Hospital,
		Address:         r.Address,
		City:            r.City,
		Area:            r.Area,
		PhoneNumber:     r.PhoneNumber,
		Email:           r.Email,
		Schedule:        r.Availability,
		Rating:          r.Rating,
		ConsultationFee: r.ConsultationFee,
	}
}

// UpdateScheduleRequest запрос на обновление недельного расписания врача
type UpdateScheduleRequest struct {
	Availability domain.WeeklySchedule `json:"availability"`
}

// SearchDoctorsRequest запрос на поиск врачей в справочнике
type SearchDoctorsRequest struct {
	City           *string `json:"city,omitempty"`
	Area           *string `json:"area,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *SearchDoctorsRequest) ToDomainFilter() domain.DoctorSearchFilter {
	return domain.DoctorSearchFilter{
		City:           r.City,
		Area:           r.Area,
		Specialization: r.Specialization,
	}
}

// Response модели

// DoctorResponse ответ с данными врача
type DoctorResponse struct {
	ID              int64                 `json:"id"`
	FullName        string                `json:"fullName"`
	Specialization  string                `json:"specialization"`
	Qualifications  string                `json:"qualifications"`
	ExperienceYears int                   `json:"experienceYears"`
	Hospital        string                `json:"hospital"`
	Address         string                `json:"address"`
	City            string                `json:"city"`
	Area            string                `json:"area"`
	PhoneNumber     string                `json:"phoneNumber"`
	Email           string                `json:"email"`
	Availability    domain.WeeklySchedule `json:"availability"`
	Rating          float64               `json:"rating"`
	ConsultationFee float64               `json:"consultationFee"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// DoctorListResponse ответ со списком врачей
type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
}

// Методы конвертации

// FromDomainDoctor конвертирует domain модель в DTO
func FromDomainDoctor(d *domain.Doctor) *DoctorResponse {
	if d == nil {
		return nil
	}

	return &DoctorResponse{
		ID:              d.ID,
		FullName:        d.FullName,
		Specialization:  d.Specialization,
		Qualifications:  d.Qualifications,
		ExperienceYears: d.ExperienceYears,
		Hospital:        d.Hospital,
		Address:         d.Address,
		City:            d.City,
		Area:            d.Area,
		PhoneNumber:     d.PhoneNumber,
		Email:           d.Email,
		Availability:    d.Schedule,
		Rating:          d.Rating,
		ConsultationFee: d.ConsultationFee,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// FromDomainDoctorList конвертирует список domain моделей в DTO
func FromDomainDoctorList(doctors []*domain.Doctor) *DoctorListResponse {
	result := make([]DoctorResponse, 0, len(doctors))
	for _, d := range doctors {
		if d == nil {
			continue
		}
		result = append(result, *FromDomainDoctor(d))
	}
	return &DoctorListResponse{Doctors: result}
}
