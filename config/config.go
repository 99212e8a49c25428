/*
 * config.go, part of forceplot.
 *
 * Copyright 2021 The forceplot authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package config holds the settings of a forceplot run: which file to
// read, the force cutoff and the look and pace of the animation.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultInput    = "./OUTCAR"
	DefaultCutoff   = 0.05
	DefaultPause    = 100 * time.Millisecond
	DefaultYMin     = -0.1
	DefaultYMax     = 0.1
	DefaultFontSize = 12
	DefaultWidth    = 13.33 //inches
	DefaultHeight   = 6.5   //inches
	DefaultBarColor    = "#000000"
	DefaultCutoffColor = "#ff0000"
)

// Surface kinds.
const (
	SurfaceAuto  = "auto"
	SurfaceImage = "image"
	SurfaceText  = "text"
)

// Figure controls the size and fonts of the chart drawn for each step.
type Figure struct {
	Width    float64 `yaml:"width"`     // inches
	Height   float64 `yaml:"height"`    // inches
	FontSize float64 `yaml:"font_size"` // points
	BarColor string  `yaml:"bar_color"`
	// CutoffColor is the color of the dashed lines at +/- the cutoff.
	CutoffColor string `yaml:"cutoff_color"`
}

// Config is built once, before reading the input, and not changed afterwards.
type Config struct {
	Input    string        `yaml:"input"`
	Cutoff   float64       `yaml:"cutoff"`
	Pause    time.Duration `yaml:"pause"`
	YRange   [2]float64    `yaml:"y_range"`
	Surface  string        `yaml:"surface"`
	LogLevel string        `yaml:"log_level"`
	Figure   Figure        `yaml:"figure"`
}

// Default returns the configuration used when nothing else is given.
func Default() *Config {
	return &Config{
		Input:    DefaultInput,
		Cutoff:   DefaultCutoff,
		Pause:    DefaultPause,
		YRange:   [2]float64{DefaultYMin, DefaultYMax},
		Surface:  SurfaceAuto,
		LogLevel: "info",
		Figure: Figure{
			Width:       DefaultWidth,
			Height:      DefaultHeight,
			FontSize:    DefaultFontSize,
			BarColor:    DefaultBarColor,
			CutoffColor: DefaultCutoffColor,
		},
	}
}

// Parse reads a YAML document on top of the defaults, so only the
// settings that differ from the defaults need to be given, and validates
// the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load reads and parses the configuration file path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the settings make sense together.
func (C *Config) Validate() error {
	if C.Input == "" {
		return fmt.Errorf("input cannot be empty")
	}
	if C.Cutoff <= 0 {
		return fmt.Errorf("cutoff must be positive, got %g", C.Cutoff)
	}
	if C.Pause < 0 {
		return fmt.Errorf("pause cannot be negative, got %s", C.Pause)
	}
	if C.YRange[0] >= C.YRange[1] {
		return fmt.Errorf("y_range minimum (%g) must be smaller than its maximum (%g)", C.YRange[0], C.YRange[1])
	}
	switch C.Surface {
	case SurfaceAuto, SurfaceImage, SurfaceText:
	default:
		return fmt.Errorf("invalid surface: %s (must be auto, image or text)", C.Surface)
	}
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(C.LogLevel)] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", C.LogLevel)
	}
	if C.Figure.Width <= 0 || C.Figure.Height <= 0 {
		return fmt.Errorf("figure size must be positive, got %gx%g", C.Figure.Width, C.Figure.Height)
	}
	if C.Figure.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %g", C.Figure.FontSize)
	}
	if _, err := ParseColor(C.Figure.BarColor); err != nil {
		return fmt.Errorf("bar_color: %w", err)
	}
	if _, err := ParseColor(C.Figure.CutoffColor); err != nil {
		return fmt.Errorf("cutoff_color: %w", err)
	}
	return nil
}

// ParseColor reads a color given as "#rrggbb" or "#rgb".
func ParseColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("bad length")
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q, expected #rrggbb: %w", s, err)
	}
	return c, nil
}
