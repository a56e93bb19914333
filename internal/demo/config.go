package demo

import (
	"fmt"
	"strings"
	"time"
)

// Speed controls the playback pace.
type Speed string

const (
	SpeedFast   Speed = "fast"   // 250ms per step
	SpeedNormal Speed = "normal" // 800ms per step
	SpeedSlow   Speed = "slow"   // 2s per step
)

// ParseSpeed validates and normalizes a speed value.
func ParseSpeed(value string) (Speed, error) {
	switch Speed(strings.ToLower(strings.TrimSpace(value))) {
	case SpeedFast, SpeedNormal, SpeedSlow:
		return Speed(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("invalid demo speed %q (valid: fast, normal, slow)", value)
	}
}

// Config controls demo playback behavior.
type Config struct {
	Speed     Speed
	StepDelay time.Duration
	Loop      bool
	Steps     []Step
}

// NewConfig builds a playback config for speed using the default scenario.
func NewConfig(speed Speed, loop bool) Config {
	c := Config{Speed: speed, Loop: loop, Steps: DefaultScenario()}
	switch speed {
	case SpeedFast:
		c.StepDelay = 250 * time.Millisecond
	case SpeedSlow:
		c.StepDelay = 2 * time.Second
	default:
		c.StepDelay = 800 * time.Millisecond
	}
	return c
}
