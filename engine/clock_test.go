package engine

import (
	"testing"
	"time"
)

func TestSystemClockMonotonic(t *testing.T) {
	var c SystemClock
	t1 := c.Now()
	time.Sleep(5 * time.Millisecond)
	if t2 := c.Now(); t2.Sub(t1) < 5*time.Millisecond {
		t.Errorf("expected at least 5ms between readings, got %v", t2.Sub(t1))
	}
}

func TestMockClock(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMockClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now = %v, want %v", c.Now(), start)
	}
	c.Advance(90 * time.Second)
	if want := start.Add(90 * time.Second); !c.Now().Equal(want) {
		t.Errorf("after Advance: %v, want %v", c.Now(), want)
	}
	later := start.Add(time.Hour)
	c.Set(later)
	if !c.Now().Equal(later) {
		t.Errorf("after Set: %v, want %v", c.Now(), later)
	}
}

func TestStopwatchLap(t *testing.T) {
	c := NewMockClock(time.Unix(0, 0))
	sw := NewStopwatch(c)

	c.Advance(16 * time.Millisecond)
	if d := sw.Lap(); d != 16*time.Millisecond {
		t.Errorf("first lap = %v, want 16ms", d)
	}
	if d := sw.Lap(); d != 0 {
		t.Errorf("immediate lap = %v, want 0", d)
	}
	c.Set(time.Unix(0, 0))
	if d := sw.Lap(); d != 0 {
		t.Errorf("lap after clock moved back = %v, want 0", d)
	}
}
