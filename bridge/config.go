package bridge

import (
	"fmt"
	"os"
	"strconv"
)

// Config has the settings for the host side of the serial link
type Config struct {
	SerialPort string
	BaudRate   string

	// Threshold is the confidence a detection must exceed before it is sent to the sorter
	Threshold float64

	// Labels are the detector class names for the first and second category. A detection of
	// Labels[0] sends '1' and Labels[1] sends '2'.
	Labels [2]string
}

// DefaultConfig matches the settings the detector sketch used
func DefaultConfig() Config {
	return Config{
		BaudRate:  "9600",
		Threshold: 0.9,
		Labels:    [2]string{"cereal", "marshmallow"},
	}
}

// ConfigFromEnv reads SERIAL_PORT, BAUD_RATE, CONFIDENCE_THRESHOLD, CATEGORY_A_LABEL and
// CATEGORY_B_LABEL on top of DefaultConfig
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("SERIAL_PORT"); v != "" {
		cfg.SerialPort = v
	}
	if v := os.Getenv("BAUD_RATE"); v != "" {
		cfg.BaudRate = v
	}
	if v := os.Getenv("CONFIDENCE_THRESHOLD"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CONFIDENCE_THRESHOLD: %w", err)
		}
		cfg.Threshold = threshold
	}
	if v := os.Getenv("CATEGORY_A_LABEL"); v != "" {
		cfg.Labels[0] = v
	}
	if v := os.Getenv("CATEGORY_B_LABEL"); v != "" {
		cfg.Labels[1] = v
	}

	return cfg, cfg.Validate()
}

// Validate checks the Config values
func (c Config) Validate() error {
	baud, err := strconv.Atoi(c.BaudRate)
	if err != nil || baud <= 0 {
		return fmt.Errorf("invalid baud rate: %q", c.BaudRate)
	}
	if c.Threshold < 0 || c.Threshold >= 1 {
		return fmt.Errorf("threshold must be in [0, 1): %v", c.Threshold)
	}
	if c.Labels[0] == "" || c.Labels[1] == "" {
		return fmt.Errorf("both category labels are required")
	}
	return nil
}
