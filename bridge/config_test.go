package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("SERIAL_PORT", "")
		t.Setenv("BAUD_RATE", "")
		t.Setenv("CONFIDENCE_THRESHOLD", "")
		t.Setenv("CATEGORY_A_LABEL", "")
		t.Setenv("CATEGORY_B_LABEL", "")

		cfg, err := ConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("SERIAL_PORT", "/dev/ttyACM0")
		t.Setenv("BAUD_RATE", "115200")
		t.Setenv("CONFIDENCE_THRESHOLD", "0.75")
		t.Setenv("CATEGORY_A_LABEL", "red")
		t.Setenv("CATEGORY_B_LABEL", "blue")

		cfg, err := ConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, Config{
			SerialPort: "/dev/ttyACM0",
			BaudRate:   "115200",
			Threshold:  0.75,
			Labels:     [2]string{"red", "blue"},
		}, cfg)
	})

	t.Run("InvalidThreshold", func(t *testing.T) {
		t.Setenv("CONFIDENCE_THRESHOLD", "very")

		_, err := ConfigFromEnv()
		assert.ErrorContains(t, err, "invalid CONFIDENCE_THRESHOLD")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		expectedErr string
	}{
		{"Default", func(*Config) {}, ""},
		{"ZeroBaud", func(c *Config) { c.BaudRate = "0" }, `invalid baud rate: "0"`},
		{"ThresholdTooHigh", func(c *Config) { c.Threshold = 1 }, "threshold must be in [0, 1): 1"},
		{"MissingLabel", func(c *Config) { c.Labels[1] = "" }, "both category labels are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.expectedErr)
		})
	}
}
