package dataset

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Loader serves the colour list from the cache, fetching it when missing,
// stale or when a refresh is requested.
type Loader struct {
	Store  *Store
	Client *http.Client
	TTL    time.Duration
	Now    func() time.Time
}

func (l *Loader) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// Get returns the list for source. If fetching fails and an expired copy
// is cached, the expired copy is returned.
func (l *Loader) Get(ctx context.Context, source string, refresh bool) ([]Color, error) {
	if l.Store != nil && !refresh {
		colors, err := l.Store.Load(source, l.TTL, l.now())
		if err == nil {
			logger().Debug("cache hit", "source", source, "count", len(colors))
			return colors, nil
		}
		if !errors.Is(err, ErrNotCached) {
			return nil, err
		}
	}

	colors, err := Fetch(ctx, l.Client, source)
	if err != nil {
		if l.Store != nil {
			if stale, serr := l.Store.Load(source, 0, l.now()); serr == nil {
				logger().Warn("fetch failed, using cached copy", "source", source, "err", err)
				return stale, nil
			}
		}
		return nil, err
	}

	if l.Store != nil {
		if err := l.Store.Save(source, colors, l.now()); err != nil {
			logger().Warn("failed to cache colours", "source", source, "err", err)
		}
	}
	return colors, nil
}
