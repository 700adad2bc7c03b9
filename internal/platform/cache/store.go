package cache

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Gedeon250/football-api-app/internal/platform/resilience"
)

// snapshot is never mutated after it is published, so value and fetchedAt
// always describe the same fetch.
type snapshot[T any] struct {
	value     T
	fetchedAt time.Time
}

// Slot holds a single process-wide value together with the time it was
// fetched. Readers see either the previous or the next snapshot, never a mix.
type Slot[T any] struct {
	current atomic.Pointer[snapshot[T]]
	ttl     time.Duration
	flight  resilience.SingleFlight[*snapshot[T]]
	now     func() time.Time
	keep    func(T) bool
}

func NewSlot[T any](ttl time.Duration) *Slot[T] {
	return &Slot[T]{
		ttl: ttl,
		now: time.Now,
	}
}

// WithClock replaces the time source. It must be called before the slot is shared.
func (s *Slot[T]) WithClock(now func() time.Time) *Slot[T] {
	if now != nil {
		s.now = now
	}
	return s
}

// WithCacheIf stores a loaded value only when keep returns true. Rejected
// values are still returned to the caller but the next read loads again.
// It must be called before the slot is shared.
func (s *Slot[T]) WithCacheIf(keep func(T) bool) *Slot[T] {
	s.keep = keep
	return s
}

func (s *Slot[T]) TTL() time.Duration {
	return s.ttl
}

// Get returns the cached value when it is younger than the TTL.
func (s *Slot[T]) Get() (T, time.Time, bool) {
	var zero T
	snap := s.current.Load()
	if snap == nil {
		return zero, time.Time{}, false
	}
	if s.ttl <= 0 || s.now().Sub(snap.fetchedAt) >= s.ttl {
		return zero, time.Time{}, false
	}
	return snap.value, snap.fetchedAt, true
}

func (s *Slot[T]) Set(value T, fetchedAt time.Time) {
	s.current.Store(&snapshot[T]{value: value, fetchedAt: fetchedAt})
}

func (s *Slot[T]) Clear() {
	s.current.Store(nil)
}

// GetOrLoad returns the fresh cached value or runs loader once for all
// concurrent callers. A failed load leaves the slot untouched.
func (s *Slot[T]) GetOrLoad(ctx context.Context, loader func(context.Context) (T, error)) (T, bool, error) {
	value, _, cached, err := s.Load(ctx, loader)
	return value, cached, err
}

type loadResult[T any] struct {
	snap   *snapshot[T]
	cached bool
	err    error
}

// Load is GetOrLoad that also reports when the returned value was fetched.
//
// The shared load runs on a context detached from any single caller's
// cancellation, so one caller going away neither fails the others nor leaves
// the slot cold. loader must bound its own duration. Each caller stops
// waiting when its own ctx ends.
func (s *Slot[T]) Load(ctx context.Context, loader func(context.Context) (T, error)) (T, time.Time, bool, error) {
	var zero T
	if loader == nil {
		return zero, time.Time{}, false, fmt.Errorf("loader is required")
	}

	if value, fetchedAt, ok := s.Get(); ok {
		return value, fetchedAt, true, nil
	}
	if err := ctx.Err(); err != nil {
		return zero, time.Time{}, false, err
	}

	shared := context.WithoutCancel(ctx)
	done := make(chan loadResult[T], 1)
	go func() {
		cached := false
		snap, err, _ := s.flight.Do("slot", func() (*snapshot[T], error) {
			if value, fetchedAt, ok := s.Get(); ok {
				cached = true
				return &snapshot[T]{value: value, fetchedAt: fetchedAt}, nil
			}

			loaded, loadErr := loader(shared)
			if loadErr != nil {
				return nil, loadErr
			}
			next := &snapshot[T]{value: loaded, fetchedAt: s.now()}
			if s.keep == nil || s.keep(loaded) {
				s.current.Store(next)
			}
			return next, nil
		})
		if err == nil && snap == nil {
			err = fmt.Errorf("cache load returned no value")
		}
		done <- loadResult[T]{snap: snap, cached: cached, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return zero, time.Time{}, false, res.err
		}
		return res.snap.value, res.snap.fetchedAt, res.cached, nil
	case <-ctx.Done():
		return zero, time.Time{}, false, ctx.Err()
	}
}
