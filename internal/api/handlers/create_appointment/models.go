package create_appointment

import (
	"time"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	createAppointment "github.com/m04kA/HD-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/HD-AppointmentService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	DoctorID int64  `json:"doctorId"`
	Date     string `json:"date"` // "2025-10-15"
	Time     string `json:"time"` // "10:30"
	Reason   string `json:"reason"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	DoctorID  int64  `json:"doctorId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// SlotTakenResponse HTTP response при конфликте слота
type SlotTakenResponse struct {
	Error        string             `json:"error"`
	Alternatives []AlternativeSlots `json:"alternatives"`
}

// AlternativeSlots свободные слоты одного дня
type AlternativeSlots struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID int64) (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:   userID,
		DoctorID: r.DoctorID,
		Date:     date,
		Time:     slotTime,
		Reason:   r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		DoctorID:  resp.DoctorID,
		Date:      resp.Date.Format(domain.DateFormat),
		Time:      resp.Time.String(),
		Reason:    resp.Reason,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}

// FromAlternatives конвертирует альтернативные слоты в HTTP response
func FromAlternatives(message string, alternatives []domain.DaySlots) *SlotTakenResponse {
	result := make([]AlternativeSlots, 0, len(alternatives))
	for _, day := range alternatives {
		slots := make([]string, 0, len(day.AvailableSlots))
		for _, s := range day.AvailableSlots {
			slots = append(slots, s.String())
		}
		result = append(result, AlternativeSlots{
			Date:           day.Date.Format(domain.DateFormat),
			AvailableSlots: slots,
		})
	}

	return &SlotTakenResponse{
		Error:        message,
		Alternatives: result,
	}
}
