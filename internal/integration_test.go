package internal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grooming-dashboard-backend/config"
	"grooming-dashboard-backend/internal/availability"
	"grooming-dashboard-backend/internal/db"
	"grooming-dashboard-backend/internal/model"
	"grooming-dashboard-backend/internal/store"
	"grooming-dashboard-backend/internal/travel"
)

type staticResolver struct{ name string }

func (r staticResolver) Locality(context.Context, string) (string, error) {
	return r.name, nil
}

type staticOracle struct{ minutes int }

func (o staticOracle) Estimate(context.Context, string, string) (travel.Estimate, error) {
	return travel.Estimate{Minutes: o.minutes}, nil
}

// TestSearchAgainstDatabase runs the full search path against a real (in-memory
// sqlite) database: migrate, seed through the store, snapshot, search.
func TestSearchAgainstDatabase(t *testing.T) {
	gormDB, err := db.Init(&config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    "file::memory:?cache=shared",
	})
	require.NoError(t, err)

	s := store.NewGormStore(gormDB)
	ctx := context.Background()

	require.NoError(t, s.UpsertTechnician(ctx, &model.Technician{
		Name:         "Ana",
		ZipCode:      "85001",
		Restrictions: "no cats",
		Cities:       "Phoenix, 85009",
		UpdatedAt:    time.Now(),
	}))

	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.CreateAppointment(ctx, &model.Appointment{
		Technician:      "Ana",
		Customer:        "Jones",
		ZipCode:         "85003",
		StartAt:         day.Add(10 * time.Hour),
		DurationMinutes: 120,
	}))
	require.NoError(t, s.CreateBlock(ctx, &model.UnavailabilityBlock{
		Technician: "Ana",
		Date:       day,
		Start:      "15:00",
		End:        "17:00",
	}))

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	from, to := availability.HorizonBounds(now, time.UTC)
	snap, err := s.Snapshot(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, snap.Technicians, 1)
	require.Len(t, snap.Appointments, 1)
	require.Len(t, snap.Blocks, 1)

	searcher := availability.NewSearcher(staticResolver{name: "Phoenix"}, staticOracle{}, time.UTC, 2)
	options, err := searcher.Search(ctx, availability.Request{
		ZipCode:        "85009",
		ServiceMinutes: 60,
		Now:            now,
	}, snap)
	require.NoError(t, err)
	require.Len(t, options, 12, "one option per non-Sunday horizon day")

	byDate := make(map[string]availability.Option, len(options))
	for _, opt := range options {
		assert.Equal(t, "Ana", opt.Technician)
		assert.Equal(t, "no cats", opt.Restrictions)
		byDate[opt.Date] = opt
	}

	// The seeded appointment and block carve up the first Monday.
	booked, ok := byDate["2026-08-31"]
	require.True(t, ok)
	times := make([]string, 0, len(booked.AvailableSlots))
	for _, slot := range booked.AvailableSlots {
		times = append(times, slot.Time)
	}
	assert.Equal(t, []string{"09:00", "12:00", "13:00", "14:00"}, times)

	// A day with no commitments offers every working hour.
	open, ok := byDate["2026-09-01"]
	require.True(t, ok)
	assert.Len(t, open.AvailableSlots, 8)
}
