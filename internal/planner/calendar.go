package planner

import (
	"time"

	"github.com/chu-physmed/rotation-planner/backend/internal/domain"
)

// normalizeDate truncates a timestamp to midnight UTC so that dates coming
// from JSON, the database or AddDate arithmetic always compare equal.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isWorkingDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// previousGuardDay returns the most recent day before d that can hold a
// guard: the previous calendar day, stepping over Saturday and Sunday so
// that a Friday evening is held against the following Monday.
func previousGuardDay(d time.Time) time.Time {
	d = d.AddDate(0, 0, -1)
	for !isWorkingDay(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// workingDays enumerates the Monday-to-Friday dates of rng in chronological
// order, both ends inclusive.
func workingDays(rng domain.ScheduleRange) ([]time.Time, error) {
	start := normalizeDate(rng.Start)
	end := normalizeDate(rng.End)

	if start.After(end) {
		return nil, ErrInvalidRange
	}

	days := []time.Time{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isWorkingDay(d) {
			days = append(days, d)
		}
	}

	return days, nil
}
