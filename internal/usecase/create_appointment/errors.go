package create_appointment

import (
	"errors"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
)

var (
	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("create_appointment: doctor not found")

	// ErrDoctorNotAvailable возвращается, когда врач не принимает в указанную дату
	ErrDoctorNotAvailable = errors.New("create_appointment: doctor is not available on this date")

	// ErrOutsideWorkingHours возвращается, когда время не попадает в сетку слотов врача
	ErrOutsideWorkingHours = errors.New("create_appointment: time is outside doctor working hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// SlotTakenError возвращается, когда запрошенный слот уже занят
// Несет список альтернативных слотов на ближайшие дни
type SlotTakenError struct {
	Alternatives []domain.DaySlots
}

func (e *SlotTakenError) Error() string {
	return "create_appointment: slot is already taken"
}
