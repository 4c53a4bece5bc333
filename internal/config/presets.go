package config

import (
	"fmt"
	"math"
	"strings"
)

// SpeedPreset scales the balls' starting velocities.
type SpeedPreset string

const (
	SpeedCalm    SpeedPreset = "calm"
	SpeedNormal  SpeedPreset = "normal"
	SpeedFrantic SpeedPreset = "frantic"
)

// SpeedPresets lists the presets in menu order.
func SpeedPresets() []SpeedPreset {
	return []SpeedPreset{SpeedCalm, SpeedNormal, SpeedFrantic}
}

// ParseSpeedPreset converts a string to a preset. The empty string is normal.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch SpeedPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", SpeedNormal:
		return SpeedNormal, nil
	case SpeedCalm:
		return SpeedCalm, nil
	case SpeedFrantic:
		return SpeedFrantic, nil
	}
	return SpeedNormal, fmt.Errorf("config: unknown speed preset %q", s)
}

// Factor returns the velocity multiplier of the preset.
func (p SpeedPreset) Factor() float64 {
	switch p {
	case SpeedCalm:
		return 0.5
	case SpeedFrantic:
		return 1.5
	default:
		return 1
	}
}

// ApplySpeedPreset scales both balls' velocity ranges, or fixed vectors, by
// the preset factor. Range bounds are rounded half away from zero, which
// keeps Min <= Max.
func ApplySpeedPreset(cfg *PaintWarConfig, preset SpeedPreset) {
	f := preset.Factor()
	if f == 1 {
		return
	}
	cfg.Balls.White.Velocity = cfg.Balls.White.Velocity.scaled(f)
	cfg.Balls.Black.Velocity = cfg.Balls.Black.Velocity.scaled(f)
}

func (v VelocityConfig) scaled(f float64) VelocityConfig {
	out := VelocityConfig{X: v.X.scaled(f), Y: v.Y.scaled(f)}
	if v.Fixed != nil {
		out.Fixed = &Vec{X: v.Fixed.X * f, Y: v.Fixed.Y * f}
	}
	return out
}

func (r Range) scaled(f float64) Range {
	return Range{
		Min: int(math.Round(float64(r.Min) * f)),
		Max: int(math.Round(float64(r.Max) * f)),
	}
}
