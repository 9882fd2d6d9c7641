package availability

import (
	"context"
	"log"
	"time"

	"grooming-dashboard-backend/internal/travel"
)

// CandidateSlots enumerates candidate start times at one-hour steps across
// the working window and validates each against the timeline.
//
// A candidate at t survives when:
//   - a route exists from the preceding event's location (home zip when the
//     preceding event carries none) to the customer;
//   - the technician can physically arrive: t >= precedingEnd + travel;
//   - the occupied span [t, t+travel+service+margin) overlaps no interval on
//     the timeline, synthetic bounds included.
//
// The full-timeline overlap check matters: travel slack can push a span into
// a later, non-adjacent interval that a neighbor-only check would miss.
// Oracle failures are absorbed per candidate; only cancellation aborts.
func CandidateSlots(ctx context.Context, tl Timeline, homeZip, customerZip string, serviceDuration, margin time.Duration, oracle travel.Oracle) ([]Slot, error) {
	var slots []Slot

	for hour := workdayStartHour; hour < workdayEndHour; hour++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := tl.Date.Add(time.Duration(hour) * time.Hour)
		prev := tl.Preceding(start)

		origin := prev.ZipCode
		if origin == "" {
			origin = homeZip
		}

		est, err := oracle.Estimate(ctx, origin, customerZip)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("travel estimate %s -> %s failed, skipping %s candidate: %v",
				origin, customerZip, start.Format("2006-01-02 15:04"), err)
			continue
		}
		if est.Unreachable {
			continue
		}

		travelTime := time.Duration(est.Minutes) * time.Minute
		if start.Before(prev.End.Add(travelTime)) {
			continue
		}

		end := start.Add(travelTime + serviceDuration + margin)
		if tl.ConflictsWith(start, end) {
			continue
		}

		slots = append(slots, Slot{
			Time:       start.Format("15:04"),
			TravelTime: est.Minutes,
		})
	}

	return slots, nil
}
