// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"hudkit/internal/hud"
)

// Default configuration values.
const (
	DefaultGracePeriod = "400ms"
	DefaultLinger      = "750ms"
	DefaultEffect      = "bordered"
)

// Config represents the hudkit configuration.
type Config struct {
	HUD   HUDConfig  `toml:"hud"`
	Tasks []TaskSpec `toml:"tasks"`
}

// HUDConfig tunes the overlay controller. Durations are Go duration strings
// ("400ms", "1.5s").
type HUDConfig struct {
	GracePeriod            string `toml:"grace_period"`            // delay before first showing (0 = immediate)
	Linger                 string `toml:"linger"`                  // how long the done state stays up
	DimsBackground         bool   `toml:"dims_background"`         // dim the view beneath the HUD
	LeadingMargin          int    `toml:"leading_margin"`          // horizontal offset toward trailing edge
	TrailingMargin         int    `toml:"trailing_margin"`         // horizontal offset toward leading edge
	InteractionPassthrough bool   `toml:"interaction_passthrough"` // let input reach the view beneath
	Effect                 string `toml:"effect"`                  // bordered, shaded, none
}

// TaskSpec is a demo task entry.
type TaskSpec struct {
	Name    string `toml:"name"`
	Command string `toml:"command"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		HUD: HUDConfig{
			GracePeriod:    DefaultGracePeriod,
			Linger:         DefaultLinger,
			DimsBackground: true,
			Effect:         DefaultEffect,
		},
		Tasks: []TaskSpec{
			{Name: "quick", Command: "true"},
			{Name: "medium", Command: "sleep 1"},
			{Name: "slow", Command: "sleep 3"},
			{Name: "failing", Command: "sleep 1; false"},
		},
	}
}

// DefaultPath returns the conventional config location
// (~/.config/hudkit/config.toml).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "hudkit", "config.toml"), nil
}

// Load reads the config at path, overlaying defaults. A missing file yields
// the defaults; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks durations, margins, and the effect name.
func (c *Config) Validate() error {
	if _, err := parseDuration("hud.grace_period", c.HUD.GracePeriod); err != nil {
		return err
	}
	if _, err := parseDuration("hud.linger", c.HUD.Linger); err != nil {
		return err
	}
	switch c.HUD.Effect {
	case "", "bordered", "shaded", "none":
	default:
		return fmt.Errorf("hud.effect: unknown effect %q", c.HUD.Effect)
	}
	for _, t := range c.Tasks {
		if t.Name == "" || t.Command == "" {
			return fmt.Errorf("tasks: name and command are both required")
		}
	}
	return nil
}

// GraceDuration returns the parsed grace period. Call Validate first;
// unparsable values degrade to zero (show immediately).
func (h HUDConfig) GraceDuration() time.Duration {
	d, _ := parseDuration("", h.GracePeriod)
	return d
}

// LingerDuration returns how long the done state stays visible before the
// delayed hide fires.
func (h HUDConfig) LingerDuration() time.Duration {
	d, _ := parseDuration("", h.Linger)
	return d
}

// EffectValue maps the effect name onto the surface chrome.
func (h HUDConfig) EffectValue() hud.Effect {
	switch h.Effect {
	case "shaded":
		return hud.EffectShaded
	case "none":
		return hud.EffectNone
	default:
		return hud.EffectBordered
	}
}

// Apply copies the HUD tuning onto a live controller and its surface. Used
// at startup and again on hot reload.
func (h HUDConfig) Apply(c *hud.Controller) {
	c.GracePeriod = h.GraceDuration()
	c.DimsBackground = h.DimsBackground
	c.LeadingMargin = h.LeadingMargin
	c.TrailingMargin = h.TrailingMargin
	c.InteractionPassthrough = h.InteractionPassthrough
	c.Surface().SetEffect(h.EffectValue())
}

func parseDuration(key, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must be non-negative", key)
	}
	return d, nil
}
