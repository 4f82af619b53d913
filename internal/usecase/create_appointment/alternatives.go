package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
)

// findAlternatives собирает свободные слоты врача на ближайшие дни после даты,
// на которую не удалось записаться. Дни без приема и полностью занятые дни
// в результат не попадают
func (uc *UseCase) findAlternatives(
	ctx context.Context,
	doctorID int64,
	schedule *domain.WeeklySchedule,
	after time.Time,
) ([]domain.DaySlots, error) {
	alternatives := make([]domain.DaySlots, 0, domain.AlternativeSearchDays)

	for offset := 1; offset <= domain.AlternativeSearchDays; offset++ {
		date := after.AddDate(0, 0, offset)

		grid := domain.SlotGrid(schedule, date)
		if len(grid) == 0 {
			continue
		}

		booked, err := uc.appointmentRepo.ListScheduledTimes(ctx, doctorID, date)
		if err != nil {
			return nil, err
		}

		free := domain.SubtractBooked(grid, booked)
		if len(free) == 0 {
			continue
		}

		alternatives = append(alternatives, domain.DaySlots{
			Date:           date,
			AvailableSlots: free,
		})
	}

	return alternatives, nil
}
