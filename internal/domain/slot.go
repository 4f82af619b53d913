package domain

import (
	"time"

	"github.com/m04kA/HD-AppointmentService/pkg/types"
)

// DaySlots represents one day's free slots, offered as an alternative
// when a requested slot is already taken
type DaySlots struct {
	Date           time.Time
	AvailableSlots []types.TimeString
}

// HasAvailability returns true if the day has at least one free slot
func (d *DaySlots) HasAvailability() bool {
	return len(d.AvailableSlots) > 0
}

// SlotGrid returns every bookable slot start for the given date according
// to the doctor's weekly schedule. Slots are SlotStepMinutes apart; a slot
// starts at every step strictly before EndTime, so the final slot may run
// past EndTime — the grid is never clipped or rounded. Returns an empty
// grid for non-working days.
func SlotGrid(schedule *WeeklySchedule, date time.Time) []types.TimeString {
	grid := make([]types.TimeString, 0)

	if schedule == nil || !schedule.WorksOn(date) {
		return grid
	}

	current := schedule.StartTime
	for current.IsBefore(schedule.EndTime) {
		grid = append(grid, current)

		next, err := current.AddMinutes(SlotStepMinutes)
		// AddMinutes работает по модулю суток: перенос через полночь
		// означает конец сетки, а не новый круг
		if err != nil || !next.IsAfter(current) {
			break
		}
		current = next
	}

	return grid
}

// SubtractBooked removes already-taken slot starts from the grid,
// preserving order. The input grid is not modified.
func SubtractBooked(grid []types.TimeString, booked []types.TimeString) []types.TimeString {
	if len(booked) == 0 {
		free := make([]types.TimeString, len(grid))
		copy(free, grid)
		return free
	}

	taken := make(map[types.TimeString]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	free := make([]types.TimeString, 0, len(grid))
	for _, slot := range grid {
		if _, ok := taken[slot]; ok {
			continue
		}
		free = append(free, slot)
	}

	return free
}

// ContainsSlot reports whether the grid contains the given slot start.
func ContainsSlot(grid []types.TimeString, slot types.TimeString) bool {
	for _, s := range grid {
		if s == slot {
			return true
		}
	}
	return false
}
