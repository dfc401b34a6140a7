package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/designmakeandteach/tinysorter"
	"github.com/designmakeandteach/tinysorter/actuator"
	"github.com/designmakeandteach/tinysorter/bridge"
	"github.com/designmakeandteach/tinysorter/command"
	"github.com/designmakeandteach/tinysorter/controller"
)

const usage = `Usage: tinysorter <command> [flags]

Commands:
  send   forward detector labels from stdin to the sorter over serial
  sim    run the sorting loop locally, reading command digits from stdin
  ports  list USB serial ports
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "send":
		err = runSend(os.Args[2:])
	case "sim":
		err = runSim(os.Args[2:])
	case "ports":
		err = runPorts()
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runSend(args []string) error {
	cfg, err := bridge.ConfigFromEnv()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("send", flag.ExitOnError)
	fs.StringVar(&cfg.SerialPort, "port", cfg.SerialPort, "Serial port of the sorter. Default is the first USB serial port. Use \""+bridge.SerialPortNone+"\" for a dry run")
	fs.StringVar(&cfg.BaudRate, "baud", cfg.BaudRate, "Baud rate")
	fs.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "Minimum detector confidence to send a command")
	_ = fs.Parse(args)

	b, err := bridge.New(cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return b.Run(ctx, os.Stdin, os.Stdout)
}

func runSim(args []string) error {
	cfg := controller.DefaultConfig()

	var iterations int
	var fast, blocking bool
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	fs.IntVar(&iterations, "iterations", 0, "Stop after this many loop iterations. Default runs until stdin is closed")
	fs.BoolVar(&fast, "fast", false, "Skip real dwell times")
	fs.BoolVar(&blocking, "blocking", false, "Read newline-terminated input instead of polling")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Log every gate movement")
	_ = fs.Parse(args)

	var clock controller.Sleeper = controller.SystemClock{}
	if fast {
		clock = &controller.FakeClock{}
	}

	buf := command.Feed(os.Stdin)
	var source command.Source = command.NewPoller(buf)
	if blocking {
		source = command.NewLineReader(buf)
	}

	c, err := controller.New(cfg, source, actuator.NewSimulated(cfg.Range, os.Stdout), clock, os.Stdout)
	if err != nil {
		return err
	}

	count := 0
	c.Run(func() bool {
		if iterations > 0 {
			count++
			return count > iterations
		}
		return buf.Drained()
	})

	stats := c.Stats()
	fmt.Printf("iterations=%d cereal=%d mallow=%d jiggles=%d\n",
		stats.Iterations,
		stats.Sorted[tinysorter.CommandCereal],
		stats.Sorted[tinysorter.CommandMallow],
		stats.Jiggles,
	)

	return nil
}

func runPorts() error {
	ports, err := bridge.GetSerialPorts()
	if err != nil {
		return err
	}
	for i, p := range ports {
		fmt.Println(strconv.Itoa(i) + ": " + p)
	}
	return nil
}
