package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HD-AppointmentService/pkg/types"
)

var (
	// ErrScheduleMalformed возвращается, когда недельное расписание врача
	// некорректно (нет времени начала/конца, неизвестный день недели)
	ErrScheduleMalformed = errors.New("domain: doctor schedule is malformed")
)

// WeeklySchedule represents a doctor's recurring weekly availability:
// the set of weekdays the doctor works, plus daily start and end times.
// Invariant: StartTime < EndTime, Days is a subset of the seven weekday names.
type WeeklySchedule struct {
	Days      []string         `json:"days"`      // "Monday" ... "Sunday"
	StartTime types.TimeString `json:"startTime"` // "09:00"
	EndTime   types.TimeString `json:"endTime"`   // "17:00"
}

// weekdayNames допустимые названия дней недели (формат time.Weekday.String)
var weekdayNames = map[string]struct{}{
	"Monday":    {},
	"Tuesday":   {},
	"Wednesday": {},
	"Thursday":  {},
	"Friday":    {},
	"Saturday":  {},
	"Sunday":    {},
}

// Validate проверяет инварианты расписания
func (s *WeeklySchedule) Validate() error {
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return fmt.Errorf("%w: start and end times are required", ErrScheduleMalformed)
	}
	if err := s.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrScheduleMalformed, err)
	}
	if err := s.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrScheduleMalformed, err)
	}
	if !s.StartTime.IsBefore(s.EndTime) {
		return fmt.Errorf("%w: startTime %s must be before endTime %s",
			ErrScheduleMalformed, s.StartTime, s.EndTime)
	}
	for _, day := range s.Days {
		if _, ok := weekdayNames[day]; !ok {
			return fmt.Errorf("%w: unknown weekday %q", ErrScheduleMalformed, day)
		}
	}
	return nil
}

// WorksOn возвращает true, если врач принимает в день недели даты date
func (s *WeeklySchedule) WorksOn(date time.Time) bool {
	name := date.Weekday().String()
	for _, day := range s.Days {
		if day == name {
			return true
		}
	}
	return false
}
