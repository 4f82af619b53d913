package create_appointment

import (
	"time"

	"github.com/m04kA/HD-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи на прием
type Request struct {
	UserID   int64            // ID пациента
	DoctorID int64            // ID врача
	Date     time.Time        // Дата приема (без времени)
	Time     types.TimeString // Время начала слота (например, "10:30")
	Reason   string           // Причина обращения
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64            // ID созданной записи
	UserID    int64            // ID пациента
	DoctorID  int64            // ID врача
	Date      time.Time        // Дата приема
	Time      types.TimeString // Время начала
	Reason    string           // Причина обращения
	Status    string           // Статус записи
	CreatedAt time.Time        // Время создания
	UpdatedAt time.Time        // Время обновления
}
