package usecase

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestValidateScheduleTime_Missing(t *testing.T) {
	_, err := ValidateScheduleTime(nil)
	var scheduleErr *InvalidScheduleError
	require.ErrorAs(t, err, &scheduleErr)
	assert.Equal(t, ScheduleMissing, scheduleErr.Reason)

	_, err = ValidateScheduleTime(floatPtr(0))
	require.ErrorAs(t, err, &scheduleErr)
	assert.Equal(t, ScheduleMissing, scheduleErr.Reason)
}

func TestValidateScheduleTime_NotANumber(t *testing.T) {
	var scheduleErr *InvalidScheduleError

	_, err := ValidateScheduleTime(floatPtr(math.NaN()))
	require.ErrorAs(t, err, &scheduleErr)
	assert.Equal(t, ScheduleNotANumber, scheduleErr.Reason)

	_, err = ValidateScheduleTime(floatPtr(math.Inf(1)))
	require.ErrorAs(t, err, &scheduleErr)
	assert.Equal(t, ScheduleNotANumber, scheduleErr.Reason)
}

func TestValidateScheduleTime_TooSoon(t *testing.T) {
	// Just inside the lower bound; well under ten minutes from now.
	candidate := float64(time.Now().Unix() + 60)
	_, err := ValidateScheduleTime(floatPtr(candidate))
	var scheduleErr *InvalidScheduleError
	require.ErrorAs(t, err, &scheduleErr)
	assert.Equal(t, ScheduleTooSoon, scheduleErr.Reason)
}

func TestValidateScheduleTime_TooLate(t *testing.T) {
	candidate := float64(time.Now().Unix() + 76*86400)
	_, err := ValidateScheduleTime(floatPtr(candidate))
	var scheduleErr *InvalidScheduleError
	require.ErrorAs(t, err, &scheduleErr)
	assert.Equal(t, ScheduleTooLate, scheduleErr.Reason)
}

func TestValidateScheduleTime_ValidFloorsFraction(t *testing.T) {
	base := time.Now().Unix() + 3600
	candidate := float64(base) + 0.9
	ts, err := ValidateScheduleTime(floatPtr(candidate))
	require.NoError(t, err)
	assert.Equal(t, base, ts)
}

func TestValidateScheduleTime_WindowIsFresh(t *testing.T) {
	// A candidate slightly past the minimum lead stays valid when validated
	// immediately, proving the window is anchored to the current clock.
	candidate := float64(time.Now().Unix() + scheduleMinLeadSeconds + 30)
	ts, err := ValidateScheduleTime(floatPtr(candidate))
	require.NoError(t, err)
	assert.Equal(t, int64(candidate), ts)
}
