package availability

import "time"

// Search horizon and working-day bounds. The one-hour candidate step and the
// 09:00-17:00 window are fixed scheduling constraints, not configuration.
const (
	horizonStartOffsetDays = 2
	horizonEndOffsetDays   = 15

	workdayStartHour = 9
	workdayEndHour   = 17

	// Earliest time a technician is assumed able to leave home when nothing
	// precedes a candidate on that day.
	earliestDepartureHour = 8
)

// HorizonDays returns the eligible calendar days for a search starting from
// now: two through fifteen days ahead inclusive, Sundays excluded. Each
// element is midnight in loc.
func HorizonDays(now time.Time, loc *time.Location) []time.Time {
	local := now.In(loc)
	base := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	days := make([]time.Time, 0, horizonEndOffsetDays-horizonStartOffsetDays+1)
	for offset := horizonStartOffsetDays; offset <= horizonEndOffsetDays; offset++ {
		day := base.AddDate(0, 0, offset)
		if day.Weekday() == time.Sunday {
			continue
		}
		days = append(days, day)
	}
	return days
}

// HorizonBounds returns the half-open [from, to) window covering every day
// HorizonDays can yield, for fetching commitments in one query.
func HorizonBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	base := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return base.AddDate(0, 0, horizonStartOffsetDays), base.AddDate(0, 0, horizonEndOffsetDays+1)
}
