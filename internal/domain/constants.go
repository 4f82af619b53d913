package domain

// Slot grid constants
const (
	// SlotStepMinutes шаг сетки слотов - все приёмы выровнены по 30 минут
	SlotStepMinutes = 30

	// AlternativeSearchDays глубина поиска альтернативных дат при конфликте слота
	AlternativeSearchDays = 7
)

// Business validation constants
const (
	MaxReasonLength             = 1000
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не блокирующих слот
// Завершённый или отменённый приём немедленно освобождает своё время
var InactiveStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
}
