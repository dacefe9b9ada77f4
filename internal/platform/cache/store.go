package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/riskibarqy/driveahead/internal/platform/resilience"
)

// Store is a time-bucketed cache. A value written in bucket N is only ever
// returned while the clock is still inside bucket N, where
// bucket = floor(unix nanoseconds / ttl nanoseconds).
type Store struct {
	items    *gocache.Cache
	ttl      time.Duration
	now      func() time.Time
	observer func(hit bool)
	flight   resilience.SingleFlight
	// wallClock is false once WithClock swaps the clock; go-cache expiry
	// follows the wall clock, so elapsed buckets are pruned on Set instead.
	wallClock bool
}

type Option func(*Store)

// WithClock overrides the clock used to compute buckets.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
			s.wallClock = false
		}
	}
}

// WithObserver is called once per lookup with the hit/miss outcome.
func WithObserver(fn func(hit bool)) Option {
	return func(s *Store) {
		s.observer = fn
	}
}

func NewStore(ttl time.Duration, opts ...Option) *Store {
	if ttl < time.Second {
		ttl = time.Second
	}

	s := &Store{
		// entries carry their own expiry; the janitor sweeps elapsed buckets.
		items:     gocache.New(gocache.NoExpiration, ttl),
		ttl:       ttl,
		now:       time.Now,
		wallClock: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Bucket returns the bucket index for t.
func (s *Store) Bucket(t time.Time) int64 {
	return t.UnixNano() / int64(s.ttl)
}

// Key joins a resource and the current bucket.
func (s *Store) Key(resource string) string {
	return resource + "#" + strconv.FormatInt(s.Bucket(s.now()), 10)
}

func (s *Store) Get(_ context.Context, resource string) (any, bool) {
	if resource == "" {
		return nil, false
	}

	value, ok := s.items.Get(s.Key(resource))
	s.observe(ok)
	return value, ok
}

// Set stores value for the current bucket if no value is present yet.
// It reports whether this call wrote the entry.
func (s *Store) Set(_ context.Context, resource string, value any) bool {
	if resource == "" {
		return false
	}

	now := s.now()
	bucket := s.Bucket(now)
	key := resource + "#" + strconv.FormatInt(bucket, 10)
	if !s.wallClock {
		s.pruneBefore(bucket)
		return s.items.Add(key, value, gocache.NoExpiration) == nil
	}
	return s.items.Add(key, value, s.untilBucketEnd(now, bucket)) == nil
}

func (s *Store) Delete(_ context.Context, resource string) {
	if resource == "" {
		return
	}
	s.items.Delete(s.Key(resource))
}

// Len counts entries, including those of elapsed buckets not yet swept.
func (s *Store) Len() int {
	return s.items.ItemCount()
}

// GetOrLoad returns the value of the current bucket, invoking loader at most
// once per (resource, bucket) across concurrent callers. Failed loads are not cached.
// The loader runs detached from ctx cancellation, so a caller that gives up
// gets ctx.Err() while joiners still receive the loaded value.
func (s *Store) GetOrLoad(ctx context.Context, resource string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if resource == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, resource); ok {
		return value, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	results := s.flight.DoChan(s.Key(resource), func() (any, error) {
		if cached, ok := s.items.Get(s.Key(resource)); ok {
			return cached, nil
		}

		loaded, loadErr := loader(loadCtx)
		if loadErr != nil {
			return nil, loadErr
		}
		if !s.Set(loadCtx, resource, loaded) {
			if cached, ok := s.items.Get(s.Key(resource)); ok {
				return cached, nil
			}
		}
		return loaded, nil
	})

	select {
	case res := <-results:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Store) untilBucketEnd(now time.Time, bucket int64) time.Duration {
	end := time.Unix(0, (bucket+1)*int64(s.ttl))
	d := end.Sub(now)
	if d <= 0 {
		return time.Nanosecond
	}
	return d
}

// pruneBefore drops entries written in buckets older than current.
func (s *Store) pruneBefore(current int64) {
	for key := range s.items.Items() {
		idx := strings.LastIndexByte(key, '#')
		if idx < 0 {
			continue
		}
		bucket, err := strconv.ParseInt(key[idx+1:], 10, 64)
		if err != nil || bucket >= current {
			continue
		}
		s.items.Delete(key)
	}
}

func (s *Store) observe(hit bool) {
	if s.observer != nil {
		s.observer(hit)
	}
}
