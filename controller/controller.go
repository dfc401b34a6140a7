package controller

import (
	"errors"
	"io"
	"strconv"

	"github.com/designmakeandteach/tinysorter"
	"github.com/designmakeandteach/tinysorter/actuator"
	"github.com/designmakeandteach/tinysorter/command"
)

// Controller runs the sorting loop. It reads commands from the detector and moves the gate to
// the matching bin, or jiggles the gate while nothing is detected.
type Controller struct {
	source   command.Source
	actuator actuator.Actuator
	clock    Sleeper
	out      io.Writer
	cfg      Config

	stats Stats
}

// Stats counts what each loop iteration did
type Stats struct {
	Iterations int
	Sorted     map[tinysorter.Command]int
	Jiggles    int
}

// New creates a Controller. Diagnostic lines are written to out.
func New(cfg Config, source command.Source, act actuator.Actuator, clock Sleeper, out io.Writer) (*Controller, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, errors.New("invalid config: " + err.Error())
	}
	if source == nil || act == nil {
		return nil, errors.New("source and actuator are required")
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if out == nil {
		out = io.Discard
	}

	return &Controller{
		source:   source,
		actuator: act,
		clock:    clock,
		out:      out,
		cfg:      cfg,
		stats:    Stats{Sorted: map[tinysorter.Command]int{}},
	}, nil
}

// Forever is the Run predicate for the board, where the loop never ends
func Forever() bool {
	return false
}

// Run moves to Center and then runs the loop until done returns true. done is checked before
// every iteration.
func (c *Controller) Run(done func() bool) {
	c.Start()
	for !done() {
		c.Step()
	}
}

// Start moves the gate to Center and waits for it to settle
func (c *Controller) Start() {
	c.log("Waiting for data")
	c.execute(tinysorter.MotionStep{Position: c.cfg.Center, Dwell: c.cfg.StartupDwell})
}

// Step polls once and then either sorts or jiggles. It returns the Command that was acted on.
func (c *Controller) Step() tinysorter.Command {
	c.stats.Iterations++

	digit, ok := c.source.Poll()
	input := "None"
	if ok {
		input = string(digit)
	}
	c.log("Received: input: " + input)

	cmd := tinysorter.CommandNone
	if ok {
		cmd = tinysorter.Decode(digit)
	}

	cat, found := c.cfg.Categories[cmd]
	if !found {
		c.Jiggle()
		return tinysorter.CommandNone
	}

	c.Dump(cmd, cat)
	return cmd
}

// Dump drops into the Category's bin and returns to Center. Anything received while the gate was
// moving is discarded so it is not sorted as a new object.
func (c *Controller) Dump(cmd tinysorter.Command, cat Category) {
	c.log(cat.Name + " Detected")
	c.execute(DumpSequence(c.cfg, cat)...)

	_, _ = c.source.Poll()

	c.stats.Sorted[cmd]++
}

// Jiggle shakes the gate around Center to keep objects moving
func (c *Controller) Jiggle() {
	c.log("Jiggle!")
	c.execute(JiggleSequence(c.cfg)...)
	c.clock.Sleep(c.cfg.Jiggle.Delay)

	c.stats.Jiggles++
}

// Stats returns a copy of the iteration counters
func (c *Controller) Stats() Stats {
	sorted := make(map[tinysorter.Command]int, len(c.stats.Sorted))
	for k, v := range c.stats.Sorted {
		sorted[k] = v
	}
	return Stats{
		Iterations: c.stats.Iterations,
		Sorted:     sorted,
		Jiggles:    c.stats.Jiggles,
	}
}

func (c *Controller) execute(steps ...tinysorter.MotionStep) {
	for _, step := range steps {
		if c.cfg.Verbose {
			c.log("Move: " + strconv.Itoa(int(step.Position)))
		}
		c.actuator.SetAngle(step.Position)
		c.clock.Sleep(step.Dwell)
	}
}

func (c *Controller) log(msg string) {
	_, _ = io.WriteString(c.out, msg+"\n")
}
