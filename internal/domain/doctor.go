package domain

import "time"

// Doctor represents a doctor profile with its recurring weekly schedule
type Doctor struct {
	ID              int64
	FullName        string
	Specialization  string
	Qualifications  string
	ExperienceYears int
	Hospital        string
	Address         string
	City            string
	Area            string
	PhoneNumber     string
	Email           string
	Schedule        WeeklySchedule
	Rating          float64
	ConsultationFee float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DoctorSearchFilter фильтр для поиска врачей в справочнике
type DoctorSearchFilter struct {
	City           *string // Фильтр по городу (опционально)
	Area           *string // Фильтр по району (опционально)
	Specialization *string // Фильтр по специализации (опционально)
}
