package timectrl

import (
	"runtime"
	"sync"
	"time"
)

// Mode describes how the TimeController advances between ticks.
type Mode int

const (
	// RealTime waits out each tick on the wall clock.
	RealTime Mode = iota
	// Accelerated fires ticks back-to-back as fast as the loop can run.
	// Tests use this so periodic work finishes instantly.
	Accelerated
)

// TimeController drives the server's periodic re-estimation loop and
// notifies registered listeners on every tick.
type TimeController struct {
	mu        sync.RWMutex
	StartTime time.Time
	Tick      time.Duration
	Mode      Mode

	currentTime time.Time

	listeners []func(time.Time)
}

// NewTimeController constructs a controller.
func NewTimeController(start time.Time, tick time.Duration, mode Mode) *TimeController {
	return &TimeController{
		StartTime:   start,
		Tick:        tick,
		Mode:        mode,
		currentTime: start,
	}
}

// Now returns the controller's current time.
func (tc *TimeController) Now() time.Time {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.currentTime
}

// SetTime overrides the controller's current time.
func (tc *TimeController) SetTime(t time.Time) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.currentTime = t
}

// AddListener registers a callback invoked on every tick. Register all
// listeners before calling Start.
func (tc *TimeController) AddListener(fn func(time.Time)) {
	tc.listeners = append(tc.listeners, fn)
}

// Start runs the controller until the specified duration has elapsed,
// or forever when duration is zero and stop is never closed. It returns
// a channel that is closed when the controller finishes. Closing stop
// ends the loop early.
func (tc *TimeController) Start(duration time.Duration, stop <-chan struct{}) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		tc.mu.Lock()
		now := tc.StartTime
		tc.currentTime = now
		tc.mu.Unlock()

		var ticker *time.Ticker
		if tc.Mode == RealTime {
			ticker = time.NewTicker(tc.Tick)
			defer ticker.Stop()
		}

		elapsed := time.Duration(0)
		for {
			if duration > 0 && elapsed >= duration {
				return
			}

			if ticker != nil {
				select {
				case <-ticker.C:
				case <-stop:
					return
				}
			} else {
				select {
				case <-stop:
					return
				default:
					// Yield so a spinning accelerated loop cannot
					// starve the goroutine that closes stop.
					runtime.Gosched()
				}
			}

			now = now.Add(tc.Tick)
			elapsed += tc.Tick

			tc.mu.Lock()
			tc.currentTime = now
			tc.mu.Unlock()

			for _, fn := range tc.listeners {
				fn(now)
			}
		}
	}()
	return done
}
