package actuator

import (
	"strconv"

	"github.com/designmakeandteach/tinysorter"
)

// Actuator moves the sorting gate. SetAngle returns as soon as the move is commanded; callers
// wait for the gate to settle.
type Actuator interface {
	SetAngle(tinysorter.Position)
}

// Range is the inclusive angle range an actuator accepts
type Range struct {
	Min tinysorter.Position
	Max tinysorter.Position
}

// DefaultRange is the range of a standard hobby servo
var DefaultRange = Range{Min: 0, Max: 180}

// Clamp limits p to the Range
func (r Range) Clamp(p tinysorter.Position) tinysorter.Position {
	if p < r.Min {
		return r.Min
	}
	if p > r.Max {
		return r.Max
	}
	return p
}

// Contains reports whether p is inside the Range
func (r Range) Contains(p tinysorter.Position) bool {
	return p >= r.Min && p <= r.Max
}

func (r Range) String() string {
	return "[" + strconv.Itoa(int(r.Min)) + ", " + strconv.Itoa(int(r.Max)) + "]"
}

// Driver is the hardware servo interface. tinygo.org/x/drivers/servo.Servo implements it.
type Driver interface {
	SetAngle(angle int) error
}

// Servo is an Actuator backed by a servo Driver
type Servo struct {
	driver  Driver
	rng     Range
	current tinysorter.Position
}

var _ Actuator = &Servo{}

func NewServo(driver Driver, rng Range) *Servo {
	return &Servo{driver: driver, rng: rng}
}

// SetAngle implements Actuator. A driver error means the link to the servo is gone and the
// board has no way to recover, so it panics.
func (s *Servo) SetAngle(p tinysorter.Position) {
	p = s.rng.Clamp(p)

	err := s.driver.SetAngle(int(p))
	if err != nil {
		panic("error setting servo angle: " + err.Error())
	}

	s.current = p
}

// Angle returns the last commanded angle
func (s *Servo) Angle() tinysorter.Position {
	return s.current
}
