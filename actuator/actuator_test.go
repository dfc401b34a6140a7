package actuator

import (
	"bytes"
	"errors"
	"testing"

	"github.com/designmakeandteach/tinysorter"
	"github.com/stretchr/testify/assert"
)

type fakeDriver struct {
	angles []int
	err    error
}

func (f *fakeDriver) SetAngle(angle int) error {
	if f.err != nil {
		return f.err
	}
	f.angles = append(f.angles, angle)
	return nil
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		in       tinysorter.Position
		expected tinysorter.Position
	}{
		{"Min", 0, 0},
		{"Max", 180, 180},
		{"Center", 90, 90},
		{"BelowMin", -15, 0},
		{"AboveMax", 195, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DefaultRange.Clamp(tt.in))
			assert.True(t, DefaultRange.Contains(DefaultRange.Clamp(tt.in)))
		})
	}
}

func TestServoSetAngle(t *testing.T) {
	d := &fakeDriver{}
	s := NewServo(d, Range{Min: 10, Max: 170})

	for _, p := range []tinysorter.Position{90, 0, 180, 45} {
		s.SetAngle(p)
		assert.Equal(t, Range{Min: 10, Max: 170}.Clamp(p), s.Angle())
	}

	assert.Equal(t, []int{90, 10, 170, 45}, d.angles)
}

func TestServoSetAngleDriverError(t *testing.T) {
	s := NewServo(&fakeDriver{err: errors.New("pwm gone")}, DefaultRange)

	assert.PanicsWithValue(t, "error setting servo angle: pwm gone", func() {
		s.SetAngle(90)
	})
}

func TestSimulated(t *testing.T) {
	var out bytes.Buffer
	s := NewSimulated(DefaultRange, &out)

	s.SetAngle(90)
	s.SetAngle(200)
	s.SetAngle(-5)

	assert.Equal(t, tinysorter.Position(0), s.Angle())
	assert.Equal(t, []tinysorter.Position{90, 180, 0}, s.History())
	assert.Equal(t, "servo: 90\nservo: 180\nservo: 0\n", out.String())

	s.Reset()
	assert.Empty(t, s.History())
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "[0, 180]", DefaultRange.String())
}
