package resilience

import (
	"fmt"
	"sync"

	"github.com/sourcegraph/conc/panics"
)

// SingleFlight deduplicates concurrent calls for the same key.
type SingleFlight[T any] struct {
	mu    sync.Mutex
	calls map[string]*call[T]
}

type call[T any] struct {
	wg  sync.WaitGroup
	val T
	err error
}

// Do runs fn once per in-flight key. Callers that arrive while fn is running
// wait and receive the same result; shared reports whether that happened.
// A panic in fn is returned as an error to the caller and every waiter.
func (g *SingleFlight[T]) Do(key string, fn func() (T, error)) (value T, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call[T])
	}

	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		c.wg.Wait()
		return c.val, c.err, true
	}

	c := &call[T]{}
	c.wg.Add(1)
	g.calls[key] = c
	g.mu.Unlock()

	defer func() {
		c.wg.Done()
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
	}()

	var catcher panics.Catcher
	catcher.Try(func() { c.val, c.err = fn() })
	if recovered := catcher.Recovered(); recovered != nil {
		var zero T
		c.val, c.err = zero, fmt.Errorf("singleflight %q: %w", key, recovered.AsError())
	}
	return c.val, c.err, false
}
