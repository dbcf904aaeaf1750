package core

import (
	"testing"
	"time"
)

func TestTimerOneShot(t *testing.T) {
	tm := NewTimer(100*time.Millisecond, false)

	if n := tm.Tick(60 * time.Millisecond); n != 0 {
		t.Errorf("Tick() = %d, expected 0 before expiry", n)
	}
	if tm.Finished() {
		t.Error("timer should not be finished yet")
	}
	if f := tm.Fraction(); f < 0.59 || f > 0.61 {
		t.Errorf("Fraction() = %f, expected 0.6", f)
	}

	if n := tm.Tick(60 * time.Millisecond); n != 1 {
		t.Errorf("Tick() = %d, expected 1 at expiry", n)
	}
	if !tm.Finished() || !tm.JustFinished() {
		t.Error("timer should be finished and just finished")
	}

	// One-shot timers stay finished without firing again.
	if n := tm.Tick(time.Second); n != 0 {
		t.Errorf("Tick() after expiry = %d, expected 0", n)
	}
	if tm.JustFinished() {
		t.Error("JustFinished should clear on the next Tick")
	}
	if !tm.Finished() {
		t.Error("one-shot timer should stay finished")
	}

	tm.Reset()
	if tm.Finished() || tm.Fraction() != 0 {
		t.Error("Reset should rewind the timer")
	}
}

func TestTimerRepeatingCarriesOvershoot(t *testing.T) {
	tm := NewTimer(500*time.Millisecond, true)

	if n := tm.Tick(1200 * time.Millisecond); n != 2 {
		t.Fatalf("Tick(1.2s) = %d, expected 2 completions", n)
	}
	if f := tm.Fraction(); f < 0.39 || f > 0.41 {
		t.Errorf("Fraction() = %f, expected 0.4 after overshoot", f)
	}
	if n := tm.Tick(400 * time.Millisecond); n != 1 {
		t.Errorf("Tick(0.4s) = %d, expected 1", n)
	}
	if r := tm.Remaining(); r != 400*time.Millisecond {
		t.Errorf("Remaining() = %v, expected 400ms", r)
	}
}

func TestTimerStartsFinished(t *testing.T) {
	tm := NewFinishedTimer(200 * time.Millisecond)
	if !tm.Finished() {
		t.Error("NewFinishedTimer should start finished")
	}
	if tm.Remaining() != 0 {
		t.Errorf("Remaining() = %v, expected 0", tm.Remaining())
	}
	tm.Reset()
	tm.Tick(100 * time.Millisecond)
	if tm.Finished() {
		t.Error("timer should run again after Reset")
	}
}

func TestTimerZeroDt(t *testing.T) {
	tm := NewTimer(time.Second, true)
	if n := tm.Tick(0); n != 0 {
		t.Errorf("Tick(0) = %d, expected 0", n)
	}
}

func TestTimerSetDuration(t *testing.T) {
	tm := NewTimer(time.Second, true)
	tm.Tick(600 * time.Millisecond)
	tm.SetDuration(500 * time.Millisecond)

	if n := tm.Tick(time.Millisecond); n != 1 {
		t.Fatalf("Tick after shrinking = %d, want 1", n)
	}
	if tm.Duration() != 500*time.Millisecond {
		t.Errorf("Duration() = %v", tm.Duration())
	}
}
