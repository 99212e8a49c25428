/*
 * root.go, part of forceplot.
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

package main

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vaspviz/forceplot"
	"github.com/vaspviz/forceplot/chemplot"
	"github.com/vaspviz/forceplot/config"
	"github.com/vaspviz/forceplot/display"
	"github.com/vaspviz/forceplot/outcar"
)

var (
	configPath string
	inputPath  string
	cutoff     float64
	pause      time.Duration
	yMin       float64
	yMax       float64
	surfaceArg string
	logLevel   string
)

func newRootCmd(stdout *os.File, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forceplot",
		Short: "Animate the forces of a VASP geometry optimization",
		Long: `Animate the forces on the ions, at each ionic step, of a VASP geometry optimization.

Reads the force blocks of an OUTCAR file (plain, gzip or zstd compressed) and
shows them as bar charts, one per ionic step, with dashed lines at +/- the force
cutoff. With no flags, ./OUTCAR is read with a 0.05 eV/Å cutoff.

Examples:
  # Watch the optimization in the current directory
  forceplot

  # A tighter criterion and a slower animation
  forceplot --cutoff 0.01 --ymin -0.05 --ymax 0.05 --pause 500ms

  # Settings from a file, flags still win
  forceplot --config forceplot.yaml --surface text`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				newLogger("info", stderr).WithError(err).Error("bad configuration")
				return loggedError{err}
			}
			log := newLogger(cfg.LogLevel, stderr)
			if err := run(cfg, stdout, log); err != nil {
				entry := log.WithField("input", cfg.Input)
				var ferr forceplot.FileError
				if errors.As(err, &ferr) && ferr.FileName() != "" {
					entry = entry.WithField("file", ferr.FileName())
				}
				entry.Error(forceplot.ErrTrace(err))
				return loggedError{err}
			}
			return nil
		},
	}
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML file with settings")
	flags.StringVarP(&inputPath, "input", "i", config.DefaultInput, "VASP output to read")
	flags.Float64Var(&cutoff, "cutoff", config.DefaultCutoff, "Force cutoff, in eV/Å, drawn as dashed lines")
	flags.DurationVarP(&pause, "pause", "p", config.DefaultPause, "Time each step is shown")
	flags.Float64Var(&yMin, "ymin", config.DefaultYMin, "Lower end of the force axis")
	flags.Float64Var(&yMax, "ymax", config.DefaultYMax, "Upper end of the force axis")
	flags.StringVarP(&surfaceArg, "surface", "s", config.SurfaceAuto, "Where to draw: auto, image (true color terminal) or text")
	flags.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	return rootCmd
}

// loggedError marks an error that has already been logged.
type loggedError struct{ error }

func (e loggedError) Unwrap() error { return e.error }

// runCommand executes cmd. Errors found by cobra itself, before the
// command runs (bad flags, extra arguments), are logged to stderr.
func runCommand(cmd *cobra.Command, stderr io.Writer) error {
	err := cmd.Execute()
	if err != nil && !errors.As(err, new(loggedError)) {
		newLogger("info", stderr).WithError(err).Error("bad command line, see forceplot --help")
	}
	return err
}

// buildConfig starts from the defaults, or the config file if one is
// given, and applies the flags set in the command line on top.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = inputPath
	}
	if flags.Changed("cutoff") {
		cfg.Cutoff = cutoff
	}
	if flags.Changed("pause") {
		cfg.Pause = pause
	}
	if flags.Changed("ymin") {
		cfg.YRange[0] = yMin
	}
	if flags.Changed("ymax") {
		cfg.YRange[1] = yMax
	}
	if flags.Changed("surface") {
		cfg.Surface = strings.ToLower(surfaceArg)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(logLevel)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// run reads the forces from cfg.Input and animates them on stdout.
func run(cfg *config.Config, stdout *os.File, log logrus.FieldLogger) error {
	steps, err := outcar.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"input": cfg.Input, "steps": steps.Len()}).Debug("forces read")
	if steps.Len() == 0 {
		log.WithField("input", cfg.Input).Info("no force blocks found, nothing to show")
		return nil
	}
	style, err := chemplot.StyleFor(cfg)
	if err != nil {
		return err
	}
	surface, err := display.New(cfg.Surface, stdout, style)
	if err != nil {
		return err
	}
	defer surface.Close()
	A := &display.Animator{Surface: surface, Pause: cfg.Pause, Cutoff: cfg.Cutoff, Log: log}
	return A.Play(steps)
}
