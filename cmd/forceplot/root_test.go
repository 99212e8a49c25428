/*
 * root_test.go, part of forceplot.
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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaspviz/forceplot/config"
)

const fixture = "../../test/OUTCAR_opt"

// execute runs the command with args, and returns what it wrote to
// stdout and stderr.
func execute(Te *testing.T, args ...string) (string, string, error) {
	Te.Helper()
	out, err := os.Create(filepath.Join(Te.TempDir(), "stdout"))
	require.NoError(Te, err)
	defer out.Close()
	var stderr bytes.Buffer
	cmd := newRootCmd(out, &stderr)
	cmd.SetArgs(args)
	runErr := runCommand(cmd, &stderr)
	data, err := os.ReadFile(out.Name())
	require.NoError(Te, err)
	return string(data), stderr.String(), runErr
}

func TestRunText(Te *testing.T) {
	stdout, _, err := execute(Te, "--input", fixture, "--surface", "text", "--pause", "0s")
	require.NoError(Te, err)
	for _, n := range []string{"1", "2", "3"} {
		assert.Contains(Te, stdout, "Ionic-step number "+n)
	}
	assert.NotContains(Te, stdout, "Ionic-step number 4")
}

func TestRunMissingInput(Te *testing.T) {
	_, stderr, err := execute(Te, "--input", filepath.Join(Te.TempDir(), "OUTCAR"), "--pause", "0s")
	require.Error(Te, err)
	assert.Contains(Te, stderr, "Unable to open file")
	assert.Contains(Te, stderr, "level=error")
	assert.Contains(Te, stderr, "file=")
	assert.Equal(Te, 1, strings.Count(stderr, "level=error"), "errors are logged once")
}

func TestRunMalformedInput(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "OUTCAR")
	require.NoError(Te, os.WriteFile(name, []byte("TOTAL\nh\nh\n1 2 3\n---\n"), 0o644))
	stdout, stderr, err := execute(Te, "--input", name, "--surface", "text", "--pause", "0s")
	require.Error(Te, err)
	assert.Empty(Te, stdout)
	assert.Contains(Te, stderr, "line 4")
}

func TestRunNoBlocks(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "OUTCAR")
	require.NoError(Te, os.WriteFile(name, []byte("just some text\n"), 0o644))
	stdout, stderr, err := execute(Te, "--input", name, "--surface", "text")
	require.NoError(Te, err)
	assert.Empty(Te, stdout)
	assert.Contains(Te, stderr, "no force blocks found")
}

func TestRejectsArguments(Te *testing.T) {
	_, stderr, err := execute(Te, "OUTCAR")
	require.Error(Te, err)
	assert.Contains(Te, stderr, "level=error")
	assert.Contains(Te, stderr, "OUTCAR")

	_, stderr, err = execute(Te, "--bogus")
	require.Error(Te, err)
	assert.Contains(Te, stderr, "unknown flag: --bogus")

	_, stderr, err = execute(Te, "--pause", "soon")
	require.Error(Te, err)
	assert.NotEmpty(Te, stderr)
}

func TestBadFlags(Te *testing.T) {
	_, stderr, err := execute(Te, "--input", fixture, "--ymin", "0.2")
	require.Error(Te, err)
	assert.Contains(Te, stderr, "bad configuration")

	_, _, err = execute(Te, "--input", fixture, "--surface", "window")
	assert.Error(Te, err)
}

func TestBuildConfig(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "forceplot.yaml")
	require.NoError(Te, os.WriteFile(path, []byte("cutoff: 0.02\npause: 1s\nsurface: text\n"), 0o644))

	var stderr bytes.Buffer
	cmd := newRootCmd(os.Stdout, &stderr)
	require.NoError(Te, cmd.ParseFlags([]string{"--config", path, "--pause", "20ms", "--ymax", "0.3"}))
	cfg, err := buildConfig(cmd)
	require.NoError(Te, err)
	assert.Equal(Te, 0.02, cfg.Cutoff)
	assert.Equal(Te, 20*time.Millisecond, cfg.Pause)
	assert.Equal(Te, [2]float64{config.DefaultYMin, 0.3}, cfg.YRange)
	assert.Equal(Te, config.SurfaceText, cfg.Surface)
	assert.Equal(Te, config.DefaultInput, cfg.Input)

	//no flags at all gives the defaults
	cmd = newRootCmd(os.Stdout, &stderr)
	require.NoError(Te, cmd.ParseFlags(nil))
	cfg, err = buildConfig(cmd)
	require.NoError(Te, err)
	assert.Equal(Te, config.Default(), cfg)
}
