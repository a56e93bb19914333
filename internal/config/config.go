// Package config loads the bar's appearance and animation settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pablasso/sectionbar/internal/anim"
	"github.com/pablasso/sectionbar/internal/render"
	"gopkg.in/yaml.v3"
)

// Config is the host-supplied configuration. Zero-valued fields take the
// defaults from Default when loaded; pointer fields are the ones where zero
// (or false) is a meaningful setting.
type Config struct {
	SplitBlockColor            string    `yaml:"split_block_color"`
	SplitBlockWidth            *int      `yaml:"split_block_width"`
	SplitBlockHeight           *int      `yaml:"split_block_height"`
	ProgressColor              string    `yaml:"progress_color"`
	ProgressHeight             int       `yaml:"progress_height"`
	SectionAnimation           *bool     `yaml:"section_animation"`
	SectionAnimationBlinkColor string    `yaml:"section_animation_blink_color"`
	Animation                  Animation `yaml:"animation"`
	Track                      Track     `yaml:"track"`
}

// Animation tunes the selection pulse.
type Animation struct {
	MinStep   int           `yaml:"min_step"`
	MaxStep   int           `yaml:"max_step"`
	Increment int           `yaml:"increment"`
	Interval  time.Duration `yaml:"interval"`
}

// Track sets horizontal padding around the bar, in cells.
type Track struct {
	PaddingLeft  *int `yaml:"padding_left"`
	PaddingRight *int `yaml:"padding_right"`
}

// Padding returns the left and right padding.
func (t Track) Padding() (left, right int) {
	return intValue(t.PaddingLeft), intValue(t.PaddingRight)
}

// Default returns the built-in configuration.
func Default() Config {
	enabled := true
	return Config{
		SplitBlockColor:            "#FFFFFF",
		SplitBlockWidth:            intPtr(1),
		SplitBlockHeight:           intPtr(3),
		ProgressColor:              "#5FAFAF",
		ProgressHeight:             1,
		SectionAnimation:           &enabled,
		SectionAnimationBlinkColor: "#FFD75F",
		Animation: Animation{
			MinStep:   anim.DefaultMinStep,
			MaxStep:   anim.DefaultMaxStep,
			Increment: anim.DefaultIncrement,
			Interval:  anim.DefaultInterval,
		},
		Track: Track{
			PaddingLeft:  intPtr(2),
			PaddingRight: intPtr(2),
		},
	}
}

// Load reads a YAML file and fills unset fields from Default. An empty path
// returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML, applies defaults, and validates the result.
func Parse(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set pointers are kept as-is so an explicit 0 or false survives.
	if err := mergo.Merge(&cfg, Default(), mergo.WithoutDereference); err != nil {
		return Config{}, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks sizes, colors, and animation bounds.
func (c Config) Validate() error {
	if c.ProgressHeight <= 0 {
		return fmt.Errorf("progress_height must be > 0, got %d", c.ProgressHeight)
	}
	if w := intValue(c.SplitBlockWidth); w < 0 {
		return fmt.Errorf("split_block_width must be >= 0, got %d", w)
	}
	if h := intValue(c.SplitBlockHeight); h < 0 {
		return fmt.Errorf("split_block_height must be >= 0, got %d", h)
	}
	if left, right := c.Track.Padding(); left < 0 || right < 0 {
		return fmt.Errorf("track padding must be >= 0")
	}
	for name, hex := range map[string]string{
		"split_block_color":             c.SplitBlockColor,
		"progress_color":                c.ProgressColor,
		"section_animation_blink_color": c.SectionAnimationBlinkColor,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%s: invalid color %q", name, hex)
		}
	}
	if err := c.AnimationParams().Validate(); err != nil {
		return fmt.Errorf("animation: %w", err)
	}
	return nil
}

// AnimationEnabled reports whether selected sections pulse.
func (c Config) AnimationEnabled() bool {
	return c.SectionAnimation == nil || *c.SectionAnimation
}

// AnimationParams converts the animation block.
func (c Config) AnimationParams() anim.Params {
	return anim.Params{
		MinStep:   c.Animation.MinStep,
		MaxStep:   c.Animation.MaxStep,
		Increment: c.Animation.Increment,
		Interval:  c.Animation.Interval,
	}
}

// Style converts colors and sizes for the renderer. Call Validate first;
// unparseable colors fall back to black.
func (c Config) Style() render.Style {
	return render.Style{
		ProgressColor:    mustHex(c.ProgressColor),
		SplitBlockColor:  mustHex(c.SplitBlockColor),
		BlinkColor:       mustHex(c.SectionAnimationBlinkColor),
		ProgressHeight:   c.ProgressHeight,
		SplitBlockWidth:  intValue(c.SplitBlockWidth),
		SplitBlockHeight: intValue(c.SplitBlockHeight),
	}
}

// Frame returns the render surface for a bar width cells wide.
func (c Config) Frame(width int) render.Frame {
	left, right := c.Track.Padding()
	return render.Frame{
		Width:        width,
		Height:       c.Height(),
		PaddingLeft:  left,
		PaddingRight: right,
	}
}

// Height returns the number of rows the bar occupies.
func (c Config) Height() int {
	if h := intValue(c.SplitBlockHeight); h > c.ProgressHeight {
		return h
	}
	return c.ProgressHeight
}

func intPtr(v int) *int {
	return &v
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func mustHex(s string) colorful.Color {
	col, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return col
}
