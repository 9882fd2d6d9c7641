package availability

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"grooming-dashboard-backend/internal/geo"
	"grooming-dashboard-backend/internal/travel"
)

// Searcher runs multi-technician availability searches. It owns no state
// beyond its collaborators; every search works on an injected Snapshot.
type Searcher struct {
	resolver      geo.Resolver
	oracle        travel.Oracle
	loc           *time.Location
	maxConcurrent int
}

// NewSearcher creates a Searcher. maxConcurrent bounds simultaneous travel
// oracle calls during prefetch.
func NewSearcher(resolver geo.Resolver, oracle travel.Oracle, loc *time.Location, maxConcurrent int) *Searcher {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Searcher{
		resolver:      resolver,
		oracle:        oracle,
		loc:           loc,
		maxConcurrent: maxConcurrent,
	}
}

// Request is one availability search.
type Request struct {
	ZipCode        string
	ServiceMinutes int
	MarginMinutes  int
	Now            time.Time
}

// Search finds appointment options across the horizon for every qualified
// technician. A locality resolution failure is returned wrapped around
// geo.ErrNotFound; an empty roster match or zero free slots is a successful
// empty result, not an error.
func (s *Searcher) Search(ctx context.Context, req Request, snap Snapshot) ([]Option, error) {
	locality, err := s.resolver.Locality(ctx, req.ZipCode)
	if err != nil {
		return nil, fmt.Errorf("resolve locality for %q: %w", req.ZipCode, err)
	}

	qualified := Qualify(snap.Technicians, locality, req.ZipCode)
	if len(qualified) == 0 {
		return []Option{}, nil
	}

	days := HorizonDays(req.Now, s.loc)

	type techDay struct {
		tech Technician
		tl   Timeline
	}
	pairs := make([]techDay, 0, len(qualified)*len(days))
	for _, day := range days {
		for _, tech := range qualified {
			pairs = append(pairs, techDay{
				tech: tech,
				tl:   BuildTimeline(tech, day, snap.Appointments, snap.Blocks),
			})
		}
	}

	// Candidates sharing a preceding event share the same travel query, so
	// the distinct origins are known before any candidate is evaluated.
	oracle := newMemoOracle(s.oracle)
	origins := make(map[string]struct{})
	for _, p := range pairs {
		for hour := workdayStartHour; hour < workdayEndHour; hour++ {
			prev := p.tl.Preceding(p.tl.Date.Add(time.Duration(hour) * time.Hour))
			origin := prev.ZipCode
			if origin == "" {
				origin = p.tech.ZipCode
			}
			origins[origin] = struct{}{}
		}
	}

	s.prefetch(ctx, oracle, origins, req.ZipCode)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	service := time.Duration(req.ServiceMinutes) * time.Minute
	margin := time.Duration(req.MarginMinutes) * time.Minute

	options := make([]Option, 0)
	for _, p := range pairs {
		slots, err := CandidateSlots(ctx, p.tl, p.tech.ZipCode, req.ZipCode, service, margin, oracle)
		if err != nil {
			return nil, err
		}
		if len(slots) == 0 {
			continue
		}
		options = append(options, Option{
			Technician:     p.tech.Name,
			Restrictions:   p.tech.Restrictions,
			Date:           p.tl.Date.Format("2006-01-02"),
			AvailableSlots: slots,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Date < options[j].Date
	})
	return options, nil
}

// prefetch warms the request-scoped memo with every distinct travel query,
// bounded by maxConcurrent. Failures are left for candidate evaluation to
// absorb; prefetch itself never fails the search.
func (s *Searcher) prefetch(ctx context.Context, oracle travel.Oracle, origins map[string]struct{}, destination string) {
	sem := make(chan struct{}, s.maxConcurrent)
	var wg sync.WaitGroup

	for origin := range origins {
		if origin == destination {
			continue // same-zip shortcut needs no call
		}
		wg.Add(1)
		go func(o string) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			if _, err := oracle.Estimate(ctx, o, destination); err != nil {
				log.Printf("prefetch travel %s -> %s: %v", o, destination, err)
			}
		}(origin)
	}
	wg.Wait()
}

// memoOracle memoizes oracle results, errors included, for the lifetime of
// one search. Identical origin and destination short-circuit to zero.
type memoOracle struct {
	inner travel.Oracle

	mu      sync.Mutex
	results map[string]memoEntry
}

type memoEntry struct {
	est travel.Estimate
	err error
}

func newMemoOracle(inner travel.Oracle) *memoOracle {
	return &memoOracle{
		inner:   inner,
		results: make(map[string]memoEntry),
	}
}

func (m *memoOracle) Estimate(ctx context.Context, originZip, destinationZip string) (travel.Estimate, error) {
	if originZip == destinationZip {
		return travel.Estimate{Minutes: 0}, nil
	}

	key := originZip + "|" + destinationZip
	m.mu.Lock()
	entry, ok := m.results[key]
	m.mu.Unlock()
	if ok {
		return entry.est, entry.err
	}

	est, err := m.inner.Estimate(ctx, originZip, destinationZip)
	if err != nil && ctx.Err() != nil {
		// Cancellation is not a property of the route; do not memoize it.
		return est, err
	}

	m.mu.Lock()
	m.results[key] = memoEntry{est: est, err: err}
	m.mu.Unlock()
	return est, err
}
