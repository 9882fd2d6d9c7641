package api

import (
	"time"

	"grooming-dashboard-backend/internal/availability"
	"grooming-dashboard-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    store.Store
	searcher *availability.Searcher
	loc      *time.Location
	now      func() time.Time
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, searcher *availability.Searcher, loc *time.Location) *Handler {
	return &Handler{
		store:    s,
		searcher: searcher,
		loc:      loc,
		now:      time.Now,
	}
}
