package actuator

import (
	"io"
	"strconv"

	"github.com/designmakeandteach/tinysorter"
)

// Simulated is an Actuator without hardware. It records every commanded angle and optionally
// prints each move.
type Simulated struct {
	rng     Range
	out     io.Writer
	current tinysorter.Position
	history []tinysorter.Position
}

var _ Actuator = &Simulated{}

// NewSimulated creates a Simulated actuator. out may be nil.
func NewSimulated(rng Range, out io.Writer) *Simulated {
	return &Simulated{rng: rng, out: out}
}

func (s *Simulated) SetAngle(p tinysorter.Position) {
	p = s.rng.Clamp(p)
	s.current = p
	s.history = append(s.history, p)

	if s.out != nil {
		_, _ = io.WriteString(s.out, "servo: "+strconv.Itoa(int(p))+"\n")
	}
}

// Angle returns the current angle
func (s *Simulated) Angle() tinysorter.Position {
	return s.current
}

// History returns every angle set so far, in order
func (s *Simulated) History() []tinysorter.Position {
	return append([]tinysorter.Position(nil), s.history...)
}

// Reset clears the recorded history
func (s *Simulated) Reset() {
	s.history = nil
}
