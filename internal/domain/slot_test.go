package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
	"github.com/m04kA/HD-AppointmentService/pkg/types"
)

// 2026-01-05 - понедельник
var monday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func weekdaySchedule(days []string, start, end types.TimeString) *domain.WeeklySchedule {
	return &domain.WeeklySchedule{
		Days:      days,
		StartTime: start,
		EndTime:   end,
	}
}

func TestSlotGrid_FullWorkingDay(t *testing.T) {
	schedule := weekdaySchedule([]string{"Monday"}, "09:00", "17:00")

	grid := domain.SlotGrid(schedule, monday)

	// 8 часов по 30 минут = 16 слотов
	require.Len(t, grid, 16)
	assert.Equal(t, types.TimeString("09:00"), grid[0])
	assert.Equal(t, types.TimeString("09:30"), grid[1])
	// Последний слот начинается в 16:30 и заканчивается ровно в 17:00
	assert.Equal(t, types.TimeString("16:30"), grid[15])
}

func TestSlotGrid_NonWorkingDay(t *testing.T) {
	schedule := weekdaySchedule([]string{"Tuesday"}, "09:00", "17:00")

	grid := domain.SlotGrid(schedule, monday)

	assert.Empty(t, grid)
}

func TestSlotGrid_NilSchedule(t *testing.T) {
	grid := domain.SlotGrid(nil, monday)

	assert.Empty(t, grid)
}

func TestSlotGrid_SingleSlotWindow(t *testing.T) {
	schedule := weekdaySchedule([]string{"Monday"}, "09:00", "09:30")

	grid := domain.SlotGrid(schedule, monday)

	require.Len(t, grid, 1)
	assert.Equal(t, types.TimeString("09:00"), grid[0])
}

func TestSlotGrid_WindowShorterThanSlot(t *testing.T) {
	// Окно 20 минут: слот стартует до конца окна и не обрезается
	schedule := weekdaySchedule([]string{"Monday"}, "09:00", "09:20")

	grid := domain.SlotGrid(schedule, monday)

	require.Len(t, grid, 1)
	assert.Equal(t, types.TimeString("09:00"), grid[0])
}

func TestSlotGrid_UnalignedEndTime(t *testing.T) {
	// Конец окна не кратен шагу сетки: слот 10:00 стартует до 10:15
	// и потому входит в сетку, хотя выходит за конец окна
	schedule := weekdaySchedule([]string{"Monday"}, "09:00", "10:15")

	grid := domain.SlotGrid(schedule, monday)

	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, grid)
}

func TestSlotGrid_LateEveningWindow(t *testing.T) {
	// Сетка у границы суток заканчивается, а не начинает новый круг
	schedule := weekdaySchedule([]string{"Monday"}, "23:00", "23:45")

	grid := domain.SlotGrid(schedule, monday)

	assert.Equal(t, []types.TimeString{"23:00", "23:30"}, grid)
}

func TestSubtractBooked(t *testing.T) {
	grid := []types.TimeString{"09:00", "09:30", "10:00", "10:30"}
	booked := []types.TimeString{"09:30", "10:30"}

	free := domain.SubtractBooked(grid, booked)

	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, free)
}

func TestSubtractBooked_EmptyBooked(t *testing.T) {
	grid := []types.TimeString{"09:00", "09:30"}

	free := domain.SubtractBooked(grid, nil)

	assert.Equal(t, grid, free)

	// Результат - копия, исходная сетка не разделяется
	free[0] = "23:00"
	assert.Equal(t, types.TimeString("09:00"), grid[0])
}

func TestSubtractBooked_BookedOutsideGrid(t *testing.T) {
	grid := []types.TimeString{"09:00", "09:30"}
	booked := []types.TimeString{"12:00"}

	free := domain.SubtractBooked(grid, booked)

	assert.Equal(t, grid, free)
}

func TestSubtractBooked_AllTaken(t *testing.T) {
	grid := []types.TimeString{"09:00", "09:30"}
	booked := []types.TimeString{"09:00", "09:30"}

	free := domain.SubtractBooked(grid, booked)

	assert.Empty(t, free)
}

func TestContainsSlot(t *testing.T) {
	grid := []types.TimeString{"09:00", "09:30", "10:00"}

	assert.True(t, domain.ContainsSlot(grid, "09:30"))
	assert.False(t, domain.ContainsSlot(grid, "09:15"))
	assert.False(t, domain.ContainsSlot(nil, "09:00"))
}
