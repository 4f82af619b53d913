package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HD-AppointmentService/internal/domain"
)

func TestWeeklySchedule_Validate(t *testing.T) {
	tests := []struct {
		name     string
		schedule domain.WeeklySchedule
		wantErr  bool
	}{
		{
			name: "valid schedule",
			schedule: domain.WeeklySchedule{
				Days:      []string{"Monday", "Wednesday", "Friday"},
				StartTime: "09:00",
				EndTime:   "17:00",
			},
		},
		{
			name: "empty days is valid",
			schedule: domain.WeeklySchedule{
				Days:      []string{},
				StartTime: "09:00",
				EndTime:   "17:00",
			},
		},
		{
			name: "missing start time",
			schedule: domain.WeeklySchedule{
				Days:    []string{"Monday"},
				EndTime: "17:00",
			},
			wantErr: true,
		},
		{
			name: "missing end time",
			schedule: domain.WeeklySchedule{
				Days:      []string{"Monday"},
				StartTime: "09:00",
			},
			wantErr: true,
		},
		{
			name: "start after end",
			schedule: domain.WeeklySchedule{
				Days:      []string{"Monday"},
				StartTime: "17:00",
				EndTime:   "09:00",
			},
			wantErr: true,
		},
		{
			name: "start equals end",
			schedule: domain.WeeklySchedule{
				Days:      []string{"Monday"},
				StartTime: "09:00",
				EndTime:   "09:00",
			},
			wantErr: true,
		},
		{
			name: "unknown weekday",
			schedule: domain.WeeklySchedule{
				Days:      []string{"Monday", "Пятница"},
				StartTime: "09:00",
				EndTime:   "17:00",
			},
			wantErr: true,
		},
		{
			name: "garbage start time",
			schedule: domain.WeeklySchedule{
				Days:      []string{"Monday"},
				StartTime: "25:99",
				EndTime:   "17:00",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schedule.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrScheduleMalformed)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestWeeklySchedule_WorksOn(t *testing.T) {
	schedule := domain.WeeklySchedule{
		Days:      []string{"Monday", "Friday"},
		StartTime: "09:00",
		EndTime:   "17:00",
	}

	// 2026-01-05 - понедельник, 2026-01-09 - пятница
	assert.True(t, schedule.WorksOn(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.True(t, schedule.WorksOn(time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)))
	assert.False(t, schedule.WorksOn(time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)))
	assert.False(t, schedule.WorksOn(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)))
}
