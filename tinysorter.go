package tinysorter

import "time"

// Command is the sort action decoded from the serial link
type Command int

const (
	CommandNone Command = iota
	CommandCereal
	CommandMallow
)

const (
	CerealDigit = '1'
	MallowDigit = '2'
)

func (c Command) String() string {
	switch c {
	case CommandCereal:
		return "Cereal"
	case CommandMallow:
		return "Mallow"
	default:
		fallthrough
	case CommandNone:
		return "None"
	}
}

// Decode maps a digit received from the detector to a Command. Digits without a category
// and the zero byte (no input) are CommandNone.
func Decode(digit byte) Command {
	switch digit {
	case CerealDigit:
		return CommandCereal
	case MallowDigit:
		return CommandMallow
	default:
		return CommandNone
	}
}

// IsDigit reports whether b is an ASCII decimal digit
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Position is a servo angle in degrees
type Position int

// MotionStep moves the actuator to Position and then waits Dwell for it to settle
type MotionStep struct {
	Position Position
	Dwell    time.Duration
}

// JiggleProfile controls the idle vibration around the center position
type JiggleProfile struct {
	Amplitude Position
	Repeats   int
	Delay     time.Duration
}
