package travel

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedOracle memoizes successful estimates of an inner Oracle across
// requests. The same (origin, destination) pair recurs constantly in
// availability searches, so even a short TTL removes most upstream calls.
type CachedOracle struct {
	inner Oracle
	store *cache.Cache
}

// NewCachedOracle wraps an Oracle with a TTL cache.
func NewCachedOracle(inner Oracle, ttl time.Duration) *CachedOracle {
	return &CachedOracle{
		inner: inner,
		store: cache.New(ttl, 2*ttl),
	}
}

// Estimate returns a cached estimate when present, otherwise delegates.
// Unreachable results are cached too; errors are not.
func (o *CachedOracle) Estimate(ctx context.Context, originZip, destinationZip string) (Estimate, error) {
	key := originZip + "|" + destinationZip
	if v, found := o.store.Get(key); found {
		return v.(Estimate), nil
	}

	est, err := o.inner.Estimate(ctx, originZip, destinationZip)
	if err != nil {
		return Estimate{}, err
	}

	o.store.SetDefault(key, est)
	return est, nil
}
