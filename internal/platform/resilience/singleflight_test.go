package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight[string]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			got, err, _ := g.Do("competitions", func() (string, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if got != "ok" {
				t.Errorf("unexpected value: %q", got)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_ForgetsKeyAfterError(t *testing.T) {
	var g SingleFlight[int]
	boom := errors.New("boom")

	if _, err, _ := g.Do("k", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	got, err, shared := g.Do("k", func() (int, error) { return 7, nil })
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if got != 7 || shared {
		t.Fatalf("expected fresh call result 7, got=%d shared=%v", got, shared)
	}
}

func TestSingleFlight_PanicBecomesErrorForWaiters(t *testing.T) {
	var g SingleFlight[*int]
	entered := make(chan struct{})
	release := make(chan struct{})

	leaderErr := make(chan error, 1)
	go func() {
		_, err, _ := g.Do("k", func() (*int, error) {
			close(entered)
			<-release
			panic("boom")
		})
		leaderErr <- err
	}()
	<-entered

	type result struct {
		val    *int
		err    error
		shared bool
	}
	waiter := make(chan result, 1)
	go func() {
		v, err, shared := g.Do("k", func() (*int, error) {
			panic("late waiter ran its own call")
		})
		waiter <- result{val: v, err: err, shared: shared}
	}()

	// Give the waiter time to join the in-flight call.
	time.Sleep(20 * time.Millisecond)
	close(release)

	if err := <-leaderErr; err == nil {
		t.Fatalf("expected leader to get an error from the panic")
	}
	got := <-waiter
	if got.err == nil || got.val != nil {
		t.Fatalf("expected waiter error and nil value, got val=%v err=%v", got.val, got.err)
	}
	if !got.shared {
		t.Logf("waiter joined after the leader finished")
	}
	if _, err, _ := g.Do("k", func() (*int, error) { return new(int), nil }); err != nil {
		t.Fatalf("key must be usable after a panic: %v", err)
	}
}
