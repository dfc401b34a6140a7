package controller

import (
	"errors"
	"time"

	"github.com/designmakeandteach/tinysorter"
	"github.com/designmakeandteach/tinysorter/actuator"
)

// Category is a bin that the gate can drop objects into
type Category struct {
	Name     string
	Position tinysorter.Position
}

// Config has the positions and timings for the sorting gate
type Config struct {
	Range  actuator.Range
	Center tinysorter.Position

	// Categories maps each sort Command to its bin. Commands without an entry jiggle.
	Categories map[tinysorter.Command]Category

	// StartupDwell is the time to wait at Center before the loop begins
	StartupDwell time.Duration
	// DropDwell is how long the gate stays in a drop position
	DropDwell time.Duration
	// RecenterDwell is how long to wait after returning to Center from a drop
	RecenterDwell time.Duration

	Jiggle tinysorter.JiggleProfile

	// Verbose logs every MotionStep
	Verbose bool
}

// DefaultConfig returns the calibration used for the cereal and marshmallow sorter
func DefaultConfig() Config {
	return Config{
		Range:  actuator.DefaultRange,
		Center: 90,
		Categories: map[tinysorter.Command]Category{
			tinysorter.CommandCereal: {Name: "Cereal", Position: 10},
			tinysorter.CommandMallow: {Name: "Mallow", Position: 170},
		},
		StartupDwell:  2 * time.Second,
		DropDwell:     2 * time.Second,
		RecenterDwell: 1 * time.Second,
		Jiggle: tinysorter.JiggleProfile{
			Amplitude: 15,
			Repeats:   4,
			Delay:     100 * time.Millisecond,
		},
	}
}

// Validate checks that the positions fit the range and the timings make sense
func (c Config) Validate() error {
	if c.Range.Min > c.Range.Max {
		return errors.New("invalid range: " + c.Range.String())
	}
	if !c.Range.Contains(c.Center) {
		return errors.New("center position is outside of range " + c.Range.String())
	}
	for cmd, cat := range c.Categories {
		if cmd == tinysorter.CommandNone {
			return errors.New("category " + cat.Name + " cannot use CommandNone")
		}
		if !c.Range.Contains(cat.Position) {
			return errors.New("position for " + cat.Name + " is outside of range " + c.Range.String())
		}
	}
	if c.StartupDwell < 0 || c.DropDwell < 0 || c.RecenterDwell < 0 || c.Jiggle.Delay < 0 {
		return errors.New("dwell durations cannot be negative")
	}
	if c.Jiggle.Amplitude < 0 {
		return errors.New("jiggle amplitude cannot be negative")
	}
	if c.Jiggle.Repeats < 0 {
		return errors.New("jiggle repeats cannot be negative")
	}
	return nil
}
