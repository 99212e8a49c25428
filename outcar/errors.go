/*
 * errors.go, part of forceplot.
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

import "fmt"

//errDecorate adds the caller's name to err, if err is an outcar Error.
//Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return err
	}
	e.deco = append(e.deco, caller)
	return e
}

// Error is the error type of the outcar package. It fulfills forceplot.FileError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //1-based, 0 if the error is not about a particular line.
	deco     []string
	critical bool
	cause    error
}

func (err Error) Error() string {
	name := err.filename
	if name == "" {
		name = "input"
	}
	msg := err.message
	if err.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, err.cause)
	}
	if err.line > 0 {
		return fmt.Sprintf("outcar %s line %d: %s", name, err.line, msg)
	}
	return fmt.Sprintf("outcar %s: %s", name, msg)
}

// Decorate adds new information to the error and returns the decoration slice.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Unwrap returns the underlying error, if any.
func (err Error) Unwrap() error { return err.cause }

// FileName returns the file the failing read was associated to.
func (err Error) FileName() string { return err.filename }

// Line returns the line where the problem was found, or 0.
func (err Error) Line() int { return err.line }

// Message returns the error message, without file, line or cause.
func (err Error) Message() string { return err.message }

// Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen      = "Unable to open file"
	UnableToDecode    = "Unable to set up decompression"
	ReadFailed        = "Error reading file"
	ShortLine         = "Force line has fewer than 6 fields"
	BadNumber         = "Non-numeric force component"
	UnterminatedBlock = "Input ended inside a force block"
)
