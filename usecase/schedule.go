package usecase

import (
	"math"
	"time"
)

const (
	// scheduleMinLeadSeconds is the shortest allowed lead time for a
	// scheduled publish.
	scheduleMinLeadSeconds = 600
	// scheduleMaxLeadSeconds is the longest allowed lead time (~75 days).
	scheduleMaxLeadSeconds = 75 * 86400
)

// ValidateScheduleTime checks a requested publish time against the platform
// window [now+10m, now+75d]. The window is recomputed from a fresh clock
// reading on every call so validation stays correct under request queuing or
// retry delay. On success the candidate is floored to an integer unix
// timestamp.
func ValidateScheduleTime(candidate *float64) (int64, error) {
	if candidate == nil || *candidate == 0 {
		return 0, &InvalidScheduleError{Reason: ScheduleMissing}
	}
	v := *candidate
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InvalidScheduleError{Reason: ScheduleNotANumber}
	}
	now := time.Now().Unix()
	if v < float64(now+scheduleMinLeadSeconds) {
		return 0, &InvalidScheduleError{Reason: ScheduleTooSoon}
	}
	if v > float64(now+scheduleMaxLeadSeconds) {
		return 0, &InvalidScheduleError{Reason: ScheduleTooLate}
	}
	return int64(math.Floor(v)), nil
}
