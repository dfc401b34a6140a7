package controller

import (
	"testing"
	"time"

	"github.com/designmakeandteach/tinysorter"
	"github.com/designmakeandteach/tinysorter/actuator"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		expectedErr string
	}{
		{"Default", func(*Config) {}, ""},
		{
			"InvertedRange",
			func(c *Config) { c.Range = actuator.Range{Min: 180, Max: 0} },
			"invalid range: [180, 0]",
		},
		{
			"CenterOutOfRange",
			func(c *Config) { c.Center = -1 },
			"center position is outside of range [0, 180]",
		},
		{
			"CategoryOutOfRange",
			func(c *Config) {
				c.Categories[tinysorter.CommandMallow] = Category{Name: "Mallow", Position: 181}
			},
			"position for Mallow is outside of range [0, 180]",
		},
		{
			"CategoryForNone",
			func(c *Config) {
				c.Categories[tinysorter.CommandNone] = Category{Name: "Other", Position: 45}
			},
			"category Other cannot use CommandNone",
		},
		{
			"NegativeDwell",
			func(c *Config) { c.DropDwell = -time.Second },
			"dwell durations cannot be negative",
		},
		{
			"NegativeAmplitude",
			func(c *Config) { c.Jiggle.Amplitude = -15 },
			"jiggle amplitude cannot be negative",
		},
		{
			"NegativeRepeats",
			func(c *Config) { c.Jiggle.Repeats = -1 },
			"jiggle repeats cannot be negative",
		},
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

func TestSequences(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []tinysorter.MotionStep{
		{Position: 10, Dwell: 2 * time.Second},
		{Position: 90, Dwell: time.Second},
	}, DumpSequence(cfg, cfg.Categories[tinysorter.CommandCereal]))

	jiggle := JiggleSequence(cfg)
	assert.Len(t, jiggle, 8)
	for i, step := range jiggle {
		expected := tinysorter.Position(105)
		if i%2 == 1 {
			expected = 75
		}
		assert.Equal(t, expected, step.Position)
		assert.Equal(t, 100*time.Millisecond, step.Dwell)
	}

	cfg.Jiggle.Repeats = 0
	assert.Empty(t, JiggleSequence(cfg))
}
