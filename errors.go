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

package forceplot

import (
	"fmt"
	"strings"
)

// Error is the interface for errors that all packages in this module implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing its type or wrapping it around something else.
type Error interface {
	Error() string
	//Decorate adds the name of a caller (and optionally extra info, as "FunctionName: info")
	//to the error, and returns the whole chain. An empty string adds nothing.
	Decorate(string) []string
	//Critical is false only for errors that can be ignored.
	Critical() bool
}

// FileError is an Error associated to an input file.
type FileError interface {
	Error
	FileName() string
}

// CError is the general error type of the forceplot package.
type CError struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err CError) Error() string {
	if err.filename == "" {
		return err.message
	}
	return fmt.Sprintf("%s: %s", err.filename, err.message)
}

// Decorate adds deco to the decoration slice of the error and returns the resulting slice.
func (err CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error, if any.
func (err CError) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise.
func (err CError) Critical() bool { return err.critical }

// ErrTrace returns the message of err followed by the chain of
// decorations, if err implements Error. Otherwise it returns err.Error().
func ErrTrace(err error) string {
	e, ok := err.(Error)
	if !ok {
		return err.Error()
	}
	deco := e.Decorate("")
	if len(deco) == 0 {
		return e.Error()
	}
	return fmt.Sprintf("%s (%s)", e.Error(), strings.Join(deco, " <- "))
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrIndexOutOfRange = PanicMsg("forceplot: atom index out of range")
)
