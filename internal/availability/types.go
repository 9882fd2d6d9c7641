package availability

import "time"

// Technician is a roster entry as seen by the search. Cities holds the
// serviced localities and/or zip codes already split into entries.
type Technician struct {
	Name         string
	ZipCode      string
	Restrictions string
	Cities       []string
}

// Appointment is a confirmed visit. The zip code is where the technician
// ends up when the visit is over.
type Appointment struct {
	Technician      string
	ZipCode         string
	StartAt         time.Time
	DurationMinutes int
}

// Block is a declared no-work window on one calendar day, expressed in
// minutes since midnight. Blocks carry no location.
type Block struct {
	Technician  string
	Date        time.Time
	StartMinute int
	EndMinute   int
}

// Snapshot is the read-only roster and commitment data one search runs
// against. It is built fresh per request and never mutated by the search.
type Snapshot struct {
	Technicians  []Technician
	Appointments []Appointment
	Blocks       []Block
}

// IntervalKind distinguishes the sources of a busy interval.
type IntervalKind string

const (
	KindAppointment IntervalKind = "appointment"
	KindBlock       IntervalKind = "block"
	KindBound       IntervalKind = "bound"
)

// BusyInterval is a span during which a technician is unavailable.
// ZipCode is empty for blocks and the trailing day bound.
type BusyInterval struct {
	Start   time.Time
	End     time.Time
	ZipCode string
	Kind    IntervalKind
}

// Overlaps reports whether [start, end) intersects the interval.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && end.After(b.Start)
}

// Slot is one accepted candidate start time.
type Slot struct {
	Time       string `json:"time"`
	TravelTime int    `json:"travelTime"`
}

// Option is one technician/day pair with at least one free slot.
type Option struct {
	Technician     string `json:"technician"`
	Restrictions   string `json:"restrictions"`
	Date           string `json:"date"`
	AvailableSlots []Slot `json:"availableSlots"`
}
