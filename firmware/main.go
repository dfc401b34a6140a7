//go:build tinygo

package main

import (
	"machine"

	"github.com/designmakeandteach/tinysorter/command"
	"github.com/designmakeandteach/tinysorter/controller"
	"github.com/designmakeandteach/tinysorter/firmware/device"
)

// useBlockingRead selects the newline-terminated LineReader for boards where the serial driver
// cannot report how many bytes are buffered
const useBlockingRead = false

func main() {
	servoCfg := device.ServoConfig{
		PWM: machine.PWM5,
		Pin: machine.GP10,
	}
	cfg := controller.DefaultConfig()

	gate, err := device.NewServo(servoCfg, cfg.Range)
	if err != nil {
		panic(err)
	}

	var source command.Source = command.NewPoller(machine.Serial)
	if useBlockingRead {
		source = command.NewLineReader(machine.Serial)
	}

	c, err := controller.New(cfg, source, gate, controller.SystemClock{}, machine.Serial)
	if err != nil {
		panic(err)
	}

	c.Run(controller.Forever)
}
