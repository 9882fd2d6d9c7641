package availability

import (
	"context"
	"sync"

	"grooming-dashboard-backend/internal/travel"
)

// fakeOracle answers travel queries from a function and counts calls.
type fakeOracle struct {
	mu    sync.Mutex
	calls int
	fn    func(origin, destination string) (travel.Estimate, error)
}

func (f *fakeOracle) Estimate(_ context.Context, origin, destination string) (travel.Estimate, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.fn == nil {
		return travel.Estimate{Minutes: 0}, nil
	}
	return f.fn(origin, destination)
}

func (f *fakeOracle) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeResolver returns a fixed locality or error.
type fakeResolver struct {
	name string
	err  error
}

func (f *fakeResolver) Locality(context.Context, string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.name, nil
}
