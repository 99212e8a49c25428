/*
 * outcar_test.go, part of forceplot.
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

package outcar

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaspviz/forceplot"
)

var rootdirtest string = "../test"

const exampleBlock = `TOTAL
header1
header2
1 2 3 0.01 -0.02 0.03
4 5 6 0.04 0.05 -0.06
---
`

func TestExampleBlock(Te *testing.T) {
	run, err := Read(strings.NewReader(exampleBlock))
	require.NoError(Te, err)
	require.Equal(Te, 1, run.Len())
	assert.Equal(Te, forceplot.Step{0.01, -0.02, 0.03, 0.04, 0.05, -0.06}, run[0])
}

// syntheticLog writes k force blocks of n atoms each, surrounded by
// other output. The components of atom a in block b are b+a/10, -(b+a/10) and a.
func syntheticLog(k, n int) string {
	var sb strings.Builder
	sb.WriteString(" running on 4 total cores\n some output\n\n")
	for b := 0; b < k; b++ {
		fmt.Fprintf(&sb, "---- Iteration %d ----\n", b+1)
		sb.WriteString(" POSITION      TOTAL-FORCE (eV/Angst)\n -----------\n x y z fx fy fz\n")
		for a := 0; a < n; a++ {
			v := float64(b) + float64(a)/10
			fmt.Fprintf(&sb, "  0.000 1.000 2.000   %.4f %.4f %d\n", v, -v, a)
		}
		sb.WriteString(" -----------\n total drift: 0.0 0.0 0.0\n\n")
	}
	return sb.String()
}

func TestBlockCountAndLength(Te *testing.T) {
	for _, c := range []struct{ k, n int }{{1, 1}, {3, 2}, {7, 25}, {0, 4}} {
		run, err := Read(strings.NewReader(syntheticLog(c.k, c.n)))
		require.NoError(Te, err)
		require.Equal(Te, c.k, run.Len(), "blocks=%d atoms=%d", c.k, c.n)
		for b, step := range run {
			require.Equal(Te, 3*c.n, step.Len())
			require.Equal(Te, c.n, step.Atoms())
			for a := 0; a < c.n; a++ {
				v := float64(b) + float64(a)/10
				assert.InDelta(Te, v, step.Atom(a)[0], 1e-9)
				assert.InDelta(Te, -v, step.Atom(a)[1], 1e-9)
				assert.Equal(Te, float64(a), step.Atom(a)[2])
			}
		}
	}
}

func TestReadFile(Te *testing.T) {
	run, err := ReadFile(filepath.Join(rootdirtest, "OUTCAR_opt"))
	require.NoError(Te, err)
	require.Equal(Te, 3, run.Len())
	for _, step := range run {
		assert.Equal(Te, 6, step.Len())
	}
	assert.Equal(Te, forceplot.Step{0.084210, -0.063150, 0.021005, -0.084210, 0.063150, -0.021005}, run[0])
	assert.Equal(Te, [3]float64{-0.004150, 0.002210, -0.001003}, run[2].Atom(1))
}

func TestIdempotent(Te *testing.T) {
	name := filepath.Join(rootdirtest, "OUTCAR_opt")
	first, err := ReadFile(name)
	require.NoError(Te, err)
	second, err := ReadFile(name)
	require.NoError(Te, err)
	assert.Equal(Te, first, second)
}

func TestNoMarkers(Te *testing.T) {
	run, err := Read(strings.NewReader("nothing to see here\n---\n total drift 1 2 3 4 5 6\n"))
	require.NoError(Te, err)
	assert.NotNil(Te, run)
	assert.Equal(Te, 0, run.Len())

	run, err = Read(strings.NewReader(""))
	require.NoError(Te, err)
	assert.Equal(Te, 0, run.Len())
}

func TestEmptyBlock(Te *testing.T) {
	run, err := Read(strings.NewReader("TOTAL\nh1\nh2\n---\n"))
	require.NoError(Te, err)
	require.Equal(Te, 1, run.Len())
	assert.Equal(Te, 0, run[0].Len())
}

func TestShortLine(Te *testing.T) {
	_, err := Read(strings.NewReader("TOTAL\nh1\nh2\n1 2 3\n---\n"))
	require.Error(Te, err)
	var e Error
	require.True(Te, errors.As(err, &e))
	assert.True(Te, strings.HasPrefix(e.Message(), ShortLine))
	assert.Equal(Te, 4, e.Line())
	assert.True(Te, e.Critical())
	assert.Equal(Te, []string{"block", "read", "Read"}, e.Decorate(""))
}

func TestBadNumber(Te *testing.T) {
	_, err := Read(strings.NewReader("TOTAL\nh1\nh2\n1 2 3 0.1 abc 0.3\n---\n"))
	require.Error(Te, err)
	var e Error
	require.True(Te, errors.As(err, &e))
	assert.True(Te, strings.HasPrefix(e.Message(), BadNumber))
	assert.Equal(Te, 4, e.Line())
	assert.Contains(Te, err.Error(), `"abc"`)
	assert.NotNil(Te, errors.Unwrap(err))
}

func TestUnterminated(Te *testing.T) {
	for _, in := range []string{
		"TOTAL\nh1\nh2\n1 2 3 0.1 0.2 0.3\n",
		"TOTAL\nh1\n",
		"TOTAL",
	} {
		_, err := Read(strings.NewReader(in))
		require.Error(Te, err, "%q", in)
		var e Error
		require.True(Te, errors.As(err, &e))
		assert.Equal(Te, UnterminatedBlock, e.Message())
	}
}

func TestLineEndings(Te *testing.T) {
	crlf := strings.ReplaceAll(exampleBlock, "\n", "\r\n")
	run, err := Read(strings.NewReader(crlf))
	require.NoError(Te, err)
	require.Equal(Te, 1, run.Len())
	assert.Equal(Te, 6, run[0].Len())

	//no newline after the terminator
	run, err = Read(strings.NewReader(strings.TrimSuffix(exampleBlock, "\n")))
	require.NoError(Te, err)
	assert.Equal(Te, 1, run.Len())
}

func TestMissingFile(Te *testing.T) {
	_, err := ReadFile(filepath.Join(Te.TempDir(), "OUTCAR"))
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, fs.ErrNotExist))
	var e Error
	require.True(Te, errors.As(err, &e))
	assert.Equal(Te, UnableToOpen, e.Message())
	assert.Equal(Te, []string{"Open", "ReadFile"}, e.Decorate(""))
}

func TestCompressed(Te *testing.T) {
	plain, err := os.ReadFile(filepath.Join(rootdirtest, "OUTCAR_opt"))
	require.NoError(Te, err)
	want, err := ReadFile(filepath.Join(rootdirtest, "OUTCAR_opt"))
	require.NoError(Te, err)
	dir := Te.TempDir()

	gzname := filepath.Join(dir, "OUTCAR.gz")
	f, err := os.Create(gzname)
	require.NoError(Te, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write(plain)
	require.NoError(Te, err)
	require.NoError(Te, gz.Close())
	require.NoError(Te, f.Close())

	zstname := filepath.Join(dir, "OUTCAR.zst")
	f, err = os.Create(zstname)
	require.NoError(Te, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(Te, err)
	_, err = zw.Write(plain)
	require.NoError(Te, err)
	require.NoError(Te, zw.Close())
	require.NoError(Te, f.Close())

	for _, name := range []string{gzname, zstname} {
		got, err := ReadFile(name)
		require.NoError(Te, err, name)
		assert.Equal(Te, want, got, name)
	}
}

func TestTinyFile(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "OUTCAR")
	require.NoError(Te, os.WriteFile(name, []byte("x\n"), 0o644))
	run, err := ReadFile(name)
	require.NoError(Te, err)
	assert.Equal(Te, 0, run.Len())
}

type failCloser struct{ err error }

func (C failCloser) Close() error { return C.err }

func TestCloseErrors(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "OUTCAR")
	require.NoError(Te, os.WriteFile(name, []byte(exampleBlock), 0o644))

	//The decompressor error is reported, and the file still gets closed.
	f, err := os.Open(name)
	require.NoError(Te, err)
	decErr := errors.New("corrupt stream")
	F := &file{Reader: f, f: f, dec: failCloser{decErr}}
	assert.ErrorIs(Te, F.Close(), decErr)
	assert.ErrorIs(Te, f.Close(), os.ErrClosed)

	//Without a decompressor, the file error comes through.
	rc, err := Open(name)
	require.NoError(Te, err)
	require.NoError(Te, rc.Close())
	assert.ErrorIs(Te, rc.Close(), os.ErrClosed)
}
