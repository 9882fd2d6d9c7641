package travel

import "context"

// Estimate is a tagged driving-time result. Unreachable means the estimation
// service found no drivable route between the two zip codes; Minutes is
// meaningless in that case and must not be used in arithmetic.
type Estimate struct {
	Minutes     int
	Unreachable bool
}

// Oracle estimates driving time between two zip codes.
// Implementations must be safe for concurrent use.
type Oracle interface {
	Estimate(ctx context.Context, originZip, destinationZip string) (Estimate, error)
}
