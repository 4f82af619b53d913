package domain

import "time"

// ActivityType вид действия пользователя, попадающий в журнал активности
type ActivityType string

const (
	ActivityAppointmentCreated   ActivityType = "appointment_created"
	ActivityAppointmentCancelled ActivityType = "appointment_cancelled"
	ActivityPredictionMade       ActivityType = "prediction_made"
)

// UserActivity represents one audit record of a user action
type UserActivity struct {
	ID        int64
	UserID    int64
	Type      ActivityType
	Details   *string
	CreatedAt time.Time
}
