//go:build tinygo

package device

import (
	"errors"

	"github.com/designmakeandteach/tinysorter/actuator"

	"tinygo.org/x/drivers/servo"
)

// NewServo creates the gate servo. Angles outside of rng are clamped before they reach the PWM.
func NewServo(cfg ServoConfig, rng actuator.Range) (*actuator.Servo, error) {
	s, err := servo.New(cfg.PWM, cfg.Pin)
	if err != nil {
		return nil, errors.New("error creating servo: " + err.Error())
	}
	return actuator.NewServo(s, rng), nil
}
