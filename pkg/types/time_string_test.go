package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HD-AppointmentService/pkg/types"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := types.NewTimeStringFromString("10:30")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:30"), ts)

	// Нормализация однозначного часа
	ts, err = types.NewTimeStringFromString("9:05")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:05"), ts)
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	for _, s := range []string{"", "25:00", "10:60", "abc", "10-30"} {
		_, err := types.NewTimeStringFromString(s)
		assert.ErrorIs(t, err, types.ErrInvalidTimeString, "input %q", s)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := types.TimeString("09:30")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), next)

	_, err = types.TimeString("bad").AddMinutes(30)
	assert.Error(t, err)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, types.TimeString("09:00").IsBefore("09:30"))
	assert.False(t, types.TimeString("09:30").IsBefore("09:00"))
	assert.False(t, types.TimeString("09:00").IsBefore("09:00"))

	assert.True(t, types.TimeString("17:00").IsAfter("09:00"))
	assert.False(t, types.TimeString("09:00").IsAfter("17:00"))
}

func TestTimeString_MinutesUntil(t *testing.T) {
	m, err := types.TimeString("09:00").MinutesUntil("10:30")
	require.NoError(t, err)
	assert.Equal(t, 90, m)

	m, err = types.TimeString("10:30").MinutesUntil("09:00")
	require.NoError(t, err)
	assert.Equal(t, -90, m)
}

func TestTimeString_Scan(t *testing.T) {
	var ts types.TimeString

	// Postgres TIME приходит как "HH:MM:SS"
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, types.TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:00:00")))
	assert.Equal(t, types.TimeString("08:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 5, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, types.TimeString("14:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := types.TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", v)

	v, err = types.TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = types.TimeString("bad").Value()
	assert.Error(t, err)
}
