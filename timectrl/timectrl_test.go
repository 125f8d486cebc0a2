package timectrl

import (
	"testing"
	"time"
)

func TestTimeControllerSetTime(t *testing.T) {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	tc := NewTimeController(start, time.Second, RealTime)

	newNow := start.Add(42 * time.Second)
	tc.SetTime(newNow)

	if got := tc.Now(); !got.Equal(newNow) {
		t.Fatalf("Now() = %v, want %v", got, newNow)
	}
}

func TestTimeControllerStartUpdatesNow(t *testing.T) {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	tc := NewTimeController(start, 5*time.Millisecond, Accelerated)

	done := tc.Start(15*time.Millisecond, nil)
	<-done

	expected := start.Add(15 * time.Millisecond)
	if got := tc.Now(); !got.Equal(expected) {
		t.Fatalf("Now() = %v, want %v", got, expected)
	}
}

func TestTimeControllerNotifiesListeners(t *testing.T) {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	tc := NewTimeController(start, 10*time.Millisecond, Accelerated)

	var ticks []time.Time
	tc.AddListener(func(now time.Time) { ticks = append(ticks, now) })

	<-tc.Start(30*time.Millisecond, nil)

	if len(ticks) != 3 {
		t.Fatalf("listener saw %d ticks, want 3", len(ticks))
	}
	if !ticks[0].Equal(start.Add(10 * time.Millisecond)) {
		t.Errorf("first tick = %v, want %v", ticks[0], start.Add(10*time.Millisecond))
	}
}

func TestTimeControllerAcceleratedUnboundedStops(t *testing.T) {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	tc := NewTimeController(start, time.Millisecond, Accelerated)

	stop := make(chan struct{})
	done := tc.Start(0, stop)

	go close(stop)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("accelerated controller did not stop after stop channel closed")
	}
}

func TestTimeControllerStops(t *testing.T) {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	tc := NewTimeController(start, time.Millisecond, RealTime)

	stop := make(chan struct{})
	done := tc.Start(0, stop)
	close(stop)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("controller did not stop after stop channel closed")
	}
}
