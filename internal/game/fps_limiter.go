package game

import (
	"time"

	"cube-maze/internal/config"
)

const spinWindow = 200 * time.Microsecond

// FPSLimiter paces frames to config.GetFPSLimit.
type FPSLimiter struct {
	next time.Time
	now  func() time.Time
}

func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{now: time.Now}
}

// Wait blocks until the next frame is due. It sleeps most of the interval
// and spins the rest.
func (f *FPSLimiter) Wait() {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}
	target := time.Second / time.Duration(limit)

	if f.next.IsZero() {
		f.next = f.now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := f.next.Sub(f.now())
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// Resync after a hitch instead of rushing to catch up.
	if late := f.now().Sub(f.next); late > target {
		f.next = f.now().Add(target)
	}
}

// Ticker converts frame time into a whole number of fixed simulation steps.
type Ticker struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
}

// NewTicker runs rate steps per second and never more than maxSteps per
// frame, dropping time beyond that.
func NewTicker(rate, maxSteps int) *Ticker {
	return &Ticker{step: time.Second / time.Duration(rate), maxSteps: maxSteps}
}

// Advance adds elapsed time and returns the number of steps to run.
func (t *Ticker) Advance(elapsed time.Duration) int {
	t.acc += elapsed
	n := int(t.acc / t.step)
	if n > t.maxSteps {
		n = t.maxSteps
		t.acc = 0
		return n
	}
	t.acc -= time.Duration(n) * t.step
	return n
}
