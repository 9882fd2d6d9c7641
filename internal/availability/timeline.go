package availability

import (
	"sort"
	"time"
)

// Timeline is the ordered busy-interval sequence for one technician on one
// calendar day, bracketed by two synthetic bounds. The leading bound ends at
// the earliest departure time and carries the technician's home zip, so it
// doubles as the default preceding event when nothing else precedes a
// candidate. The trailing bound walls off everything past the working day.
type Timeline struct {
	Date      time.Time
	Intervals []BusyInterval
}

// BuildTimeline assembles the timeline for tech on day (midnight in the
// search location) from that technician's appointments and blocks.
// Commitments belonging to other technicians or other days are ignored.
// Source data is assumed consistent: intervals are not deduplicated.
func BuildTimeline(tech Technician, day time.Time, appointments []Appointment, blocks []Block) Timeline {
	loc := day.Location()
	nextMidnight := day.AddDate(0, 0, 1)

	var busy []BusyInterval
	for _, appt := range appointments {
		if appt.Technician != tech.Name {
			continue
		}
		start := appt.StartAt.In(loc)
		if !sameDay(start, day) {
			continue
		}
		busy = append(busy, BusyInterval{
			Start:   start,
			End:     start.Add(time.Duration(appt.DurationMinutes) * time.Minute),
			ZipCode: appt.ZipCode,
			Kind:    KindAppointment,
		})
	}

	for _, block := range blocks {
		if block.Technician != tech.Name {
			continue
		}
		if !sameDay(block.Date.In(loc), day) {
			continue
		}
		busy = append(busy, BusyInterval{
			Start: day.Add(time.Duration(block.StartMinute) * time.Minute),
			End:   day.Add(time.Duration(block.EndMinute) * time.Minute),
			Kind:  KindBlock,
		})
	}

	sort.Slice(busy, func(i, j int) bool {
		return busy[i].Start.Before(busy[j].Start)
	})

	intervals := make([]BusyInterval, 0, len(busy)+2)
	intervals = append(intervals, BusyInterval{
		Start:   day,
		End:     day.Add(earliestDepartureHour * time.Hour),
		ZipCode: tech.ZipCode,
		Kind:    KindBound,
	})
	intervals = append(intervals, busy...)
	intervals = append(intervals, BusyInterval{
		Start: day.Add(workdayEndHour * time.Hour),
		End:   nextMidnight,
		Kind:  KindBound,
	})

	return Timeline{Date: day, Intervals: intervals}
}

// Preceding returns the last interval whose end is at or before t. The
// leading bound always qualifies for any candidate within working hours,
// so there is always a preceding event.
func (tl Timeline) Preceding(t time.Time) BusyInterval {
	prev := tl.Intervals[0]
	for _, iv := range tl.Intervals[1:] {
		if iv.End.After(t) {
			continue
		}
		if iv.End.After(prev.End) {
			prev = iv
		}
	}
	return prev
}

// ConflictsWith reports whether the span [start, end) overlaps any interval
// on the timeline, synthetic bounds included.
func (tl Timeline) ConflictsWith(start, end time.Time) bool {
	for _, iv := range tl.Intervals {
		if iv.Overlaps(start, end) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
