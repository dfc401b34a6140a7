package bridge

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// SerialPortNone is used in place of a port name to run without a board attached
const SerialPortNone = "None"

// ErrNoUSBSerial is returned when no USB serial ports are detected
var ErrNoUSBSerial = errors.New("no USB serial ports found")

// Bridge forwards detections to the sorter over serial and relays the sorter's status output
type Bridge struct {
	cfg  Config
	port io.ReadWriteCloser
}

// NewFromEnv creates a Bridge using ConfigFromEnv
func NewFromEnv() (*Bridge, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// New opens the serial port from cfg. When no port is configured, the first USB serial port
// is used.
func New(cfg Config) (*Bridge, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.SerialPort == "" {
		ports, err := GetSerialPorts()
		if err != nil {
			return nil, fmt.Errorf("error detecting serial port: %w", err)
		}
		cfg.SerialPort = ports[0]
	}

	if cfg.SerialPort == SerialPortNone {
		return NewWithPort(cfg, nopPort{}), nil
	}

	baud, _ := strconv.Atoi(cfg.BaudRate)
	port, err := serial.Open(cfg.SerialPort, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("error opening serial port %q: %w", cfg.SerialPort, err)
	}

	return NewWithPort(cfg, port), nil
}

// NewWithPort creates a Bridge on an already open port
func NewWithPort(cfg Config, port io.ReadWriteCloser) *Bridge {
	return &Bridge{cfg: cfg, port: port}
}

// GetSerialPorts returns the names of the detected USB serial ports
func GetSerialPorts() ([]string, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("error listing serial ports: %w", err)
	}

	var ports []string
	for _, p := range details {
		if p.IsUSB {
			ports = append(ports, p.Name)
		}
	}
	if len(ports) == 0 {
		return nil, ErrNoUSBSerial
	}

	return ports, nil
}

// Close closes the serial port
func (b *Bridge) Close() error {
	return b.port.Close()
}

// Send writes a single command digit to the sorter
func (b *Bridge) Send(digit byte) error {
	_, err := b.port.Write([]byte{digit})
	if err != nil {
		return fmt.Errorf("error writing to serial: %w", err)
	}
	return nil
}

// Run reads detector lines from in and sends each accepted detection to the sorter. Everything
// the sorter prints is copied to out. Run returns when in is exhausted or ctx is done.
func (b *Bridge) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	go func() {
		_, _ = io.Copy(out, b.port)
	}()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("error reading input: %w", err)
					}
				default:
				}
				return nil
			}

			digit, ok := ParseDetection(line, b.cfg)
			if !ok {
				continue
			}

			err := b.Send(digit)
			if err != nil {
				return err
			}
		}
	}
}

// nopPort discards writes and has nothing to read
type nopPort struct{}

func (nopPort) Read([]byte) (int, error)    { return 0, io.EOF }
func (nopPort) Write(p []byte) (int, error) { return len(p), nil }
func (nopPort) Close() error                { return nil }
