package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "2025", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	failing := func(context.Context) (any, error) {
		calls.Add(1)
		return nil, errLoad
	}

	for i := 0; i < 2; i++ {
		if _, err := store.GetOrLoad(context.Background(), "current", failing); !errors.Is(err, errLoad) {
			t.Fatalf("attempt %d: expected load error, got %v", i, err)
		}
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d entries", store.Len())
	}
}

func TestStore_BucketRollover(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_100, 0)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	var hits, misses atomic.Int32
	store := NewStore(300*time.Second, WithClock(clock), WithObserver(func(hit bool) {
		if hit {
			hits.Add(1)
			return
		}
		misses.Add(1)
	}))

	if !store.Set(context.Background(), "2025", "first") {
		t.Fatalf("expected first write to succeed")
	}
	if store.Set(context.Background(), "2025", "second") {
		t.Fatalf("expected second write in same bucket to be rejected")
	}

	got, ok := store.Get(context.Background(), "2025")
	if !ok || got != "first" {
		t.Fatalf("got=%v ok=%v, want first", got, ok)
	}

	mu.Lock()
	now = now.Add(300 * time.Second)
	mu.Unlock()

	if _, ok := store.Get(context.Background(), "2025"); ok {
		t.Fatalf("expected miss after bucket advanced")
	}
	if hits.Load() != 1 || misses.Load() != 1 {
		t.Fatalf("hits=%d misses=%d, want 1/1", hits.Load(), misses.Load())
	}
}

func TestStore_Bucket(t *testing.T) {
	t.Parallel()

	store := NewStore(300 * time.Second)
	cases := []struct {
		unix int64
		want int64
	}{
		{unix: 0, want: 0},
		{unix: 299, want: 0},
		{unix: 300, want: 1},
		{unix: 1_700_000_100, want: 5_666_667},
	}
	for _, tc := range cases {
		if got := store.Bucket(time.Unix(tc.unix, 0)); got != tc.want {
			t.Fatalf("Bucket(%d)=%d want=%d", tc.unix, got, tc.want)
		}
	}
}

func TestStore_Bucket_FractionalTTL(t *testing.T) {
	t.Parallel()

	store := NewStore(1500 * time.Millisecond)
	cases := []struct {
		at   time.Time
		want int64
	}{
		{at: time.Unix(1, 499_999_999), want: 0},
		{at: time.Unix(1, 500_000_000), want: 1},
		{at: time.Unix(2, 0), want: 1},
		{at: time.Unix(3, 0), want: 2},
	}
	for _, tc := range cases {
		if got := store.Bucket(tc.at); got != tc.want {
			t.Fatalf("Bucket(%v)=%d want=%d", tc.at.UnixNano(), got, tc.want)
		}
	}
}

func TestStore_InjectedClockOwnsExpiry(t *testing.T) {
	t.Parallel()

	// frozen 10ms before the bucket ends; wall time moving on must not evict.
	frozen := time.Unix(100, 990_000_000)
	store := NewStore(time.Second, WithClock(func() time.Time { return frozen }))

	if !store.Set(context.Background(), "current/driverStandings", "standings") {
		t.Fatalf("expected write to succeed")
	}
	time.Sleep(30 * time.Millisecond)

	got, ok := store.Get(context.Background(), "current/driverStandings")
	if !ok || got != "standings" {
		t.Fatalf("got=%v ok=%v, want standings while the clock stays in the bucket", got, ok)
	}
}

func TestStore_RolloverPrunesElapsedBuckets(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_100, 0)
	var mu sync.Mutex
	store := NewStore(300*time.Second, WithClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}))

	store.Set(context.Background(), "2025", "first")
	store.Set(context.Background(), "current/drivers", "roster")

	mu.Lock()
	now = now.Add(300 * time.Second)
	mu.Unlock()

	if !store.Set(context.Background(), "2025", "second") {
		t.Fatalf("expected write in the new bucket to succeed")
	}
	if got := store.Len(); got != 1 {
		t.Fatalf("expected elapsed buckets to be pruned, got %d entries", got)
	}
	if got, ok := store.Get(context.Background(), "2025"); !ok || got != "second" {
		t.Fatalf("got=%v ok=%v, want second", got, ok)
	}
}

func TestStore_GetOrLoad_CallerCancelDoesNotAbortSharedLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loader := func(ctx context.Context) (any, error) {
		calls.Add(1)
		select {
		case <-time.After(100 * time.Millisecond):
			return "season", nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := store.GetOrLoad(leaderCtx, "2025", loader)
		leaderErr <- err
	}()

	time.Sleep(10 * time.Millisecond)
	joined := make(chan any, 1)
	joinErr := make(chan error, 1)
	go func() {
		v, err := store.GetOrLoad(context.Background(), "2025", loader)
		joinErr <- err
		joined <- v
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	if err := <-leaderErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("leader: expected context.Canceled, got %v", err)
	}
	if err := <-joinErr; err != nil {
		t.Fatalf("joiner: unexpected error %v", err)
	}
	if v := <-joined; v != "season" {
		t.Fatalf("joiner: got %v, want season", v)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
	if _, ok := store.Get(context.Background(), "2025"); !ok {
		t.Fatalf("expected the detached load to be cached")
	}
}

var (
	errUnexpectedValue = errors.New("unexpected loaded value")
	errLoad            = errors.New("load failed")
)
