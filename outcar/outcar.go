/*
 * outcar.go, part of forceplot.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vaspviz/forceplot"
)

const (
	//Marker is contained in the line that starts a force block.
	Marker = "TOTAL"
	//Terminator is contained in the line that ends a force block.
	Terminator = "---"
	//HeaderLines is the number of lines skipped after the marker line.
	HeaderLines = 2
	//FirstForceField is the (0-based) index of the x component in a force line.
	FirstForceField = 3
)

// ReadFile reads all the force blocks in the file name, in order.
// The file is closed before ReadFile returns.
func ReadFile(name string) (forceplot.Run, error) {
	f, err := Open(name)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	defer f.Close()
	run, err := read(f, name)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	return run, nil
}

// Read reads all the force blocks from r, in order. A reader without
// force blocks gives an empty, non-nil, Run.
func Read(r io.Reader) (forceplot.Run, error) {
	run, err := read(r, "")
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return run, nil
}

func read(r io.Reader, filename string) (forceplot.Run, error) {
	L := &lineReader{r: bufio.NewReader(r), filename: filename}
	run := make(forceplot.Run, 0, 16)
	for {
		line, err := L.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, L.error(ReadFailed, err, "read")
		}
		if !strings.Contains(line, Marker) {
			continue
		}
		step, err := L.block()
		if err != nil {
			return nil, errDecorate(err, "read")
		}
		run = append(run, step)
	}
	return run, nil
}

// lineReader keeps track of the line number, so errors can point
// to the offending line.
type lineReader struct {
	r        *bufio.Reader
	filename string
	n        int
}

// next returns the next line, without the trailing newline. The last
// line of the input doesn't need to end in a newline. It returns io.EOF
// only when there are no more lines.
func (L *lineReader) next() (string, error) {
	line, err := L.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	L.n++
	return strings.TrimRight(line, "\r\n"), nil
}

// block reads one force block, starting right after the marker line,
// and ending with (and consuming) the terminator line.
func (L *lineReader) block() (forceplot.Step, error) {
	for i := 0; i < HeaderLines; i++ {
		if _, err := L.next(); err != nil {
			return nil, L.endError(err, "block")
		}
	}
	forces := make(forceplot.Step, 0, 3*64)
	for {
		line, err := L.next()
		if err != nil {
			return nil, L.endError(err, "block")
		}
		if strings.Contains(line, Terminator) {
			return forceplot.NewStep(forces)
		}
		fields := strings.Fields(line)
		if len(fields) < FirstForceField+forceplot.Components {
			return nil, L.error(fmt.Sprintf("%s (%d found)", ShortLine, len(fields)), nil, "block")
		}
		for _, field := range fields[FirstForceField : FirstForceField+forceplot.Components] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, L.error(fmt.Sprintf("%s %q", BadNumber, field), err, "block")
			}
			forces = append(forces, v)
		}
	}
}

func (L *lineReader) endError(err error, caller string) error {
	if err == io.EOF {
		return L.error(UnterminatedBlock, nil, caller)
	}
	return L.error(ReadFailed, err, caller)
}

func (L *lineReader) error(message string, cause error, caller string) error {
	return Error{message: message, filename: L.filename, line: L.n, deco: []string{caller}, critical: true, cause: cause}
}
