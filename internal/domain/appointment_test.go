package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
)

func TestAppointment_Lifecycle(t *testing.T) {
	scheduled := domain.Appointment{Status: domain.StatusScheduled}
	completed := domain.Appointment{Status: domain.StatusCompleted}
	cancelled := domain.Appointment{Status: domain.StatusCancelled}

	// Слот держит только запись в статусе scheduled:
	// отмена или завершение немедленно освобождают время
	assert.True(t, scheduled.IsActive())
	assert.False(t, completed.IsActive())
	assert.False(t, cancelled.IsActive())

	assert.True(t, scheduled.CanBeCancelled())
	assert.False(t, completed.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())

	assert.True(t, scheduled.CanBeCompleted())
	assert.False(t, completed.CanBeCompleted())
	assert.False(t, cancelled.CanBeCompleted())
}
