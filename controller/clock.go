package controller

import "time"

// Sleeper waits for the gate to settle after a move
type Sleeper interface {
	Sleep(time.Duration)
}

// SystemClock sleeps in real time
type SystemClock struct{}

var _ Sleeper = SystemClock{}

func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// FakeClock records requested sleeps without waiting. It is used for tests and simulations.
type FakeClock struct {
	Elapsed time.Duration
	Sleeps  []time.Duration
}

var _ Sleeper = &FakeClock{}

func (c *FakeClock) Sleep(d time.Duration) {
	c.Elapsed += d
	c.Sleeps = append(c.Sleeps, d)
}
