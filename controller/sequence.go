package controller

import "github.com/designmakeandteach/tinysorter"

// DumpSequence moves to the Category's drop position and back to Center
func DumpSequence(cfg Config, cat Category) []tinysorter.MotionStep {
	return []tinysorter.MotionStep{
		{Position: cat.Position, Dwell: cfg.DropDwell},
		{Position: cfg.Center, Dwell: cfg.RecenterDwell},
	}
}

// JiggleSequence alternates above and below Center. It does not include the extra delay that
// follows the last step.
func JiggleSequence(cfg Config) []tinysorter.MotionStep {
	j := cfg.Jiggle
	steps := make([]tinysorter.MotionStep, 0, 2*j.Repeats)
	for i := 0; i < j.Repeats; i++ {
		steps = append(steps,
			tinysorter.MotionStep{Position: cfg.Center + j.Amplitude, Dwell: j.Delay},
			tinysorter.MotionStep{Position: cfg.Center - j.Amplitude, Dwell: j.Delay},
		)
	}
	return steps
}
