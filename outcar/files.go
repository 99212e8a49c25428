/*
 * files.go, part of forceplot.
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
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// file is an open input file, possibly behind a decompressor.
type file struct {
	io.Reader
	f   *os.File
	dec io.Closer //nil for plain text
}

// Close closes the decompressor, if any, and the file. It returns the
// first error found.
func (F *file) Close() error {
	var err error
	if F.dec != nil {
		err = F.dec.Close()
	}
	if ferr := F.f.Close(); err == nil {
		err = ferr
	}
	return err
}

// Open opens the file name for reading. If the file starts with a gzip
// or zstd header, the returned reader gives the decompressed contents.
// The caller must close the returned ReadCloser.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{message: UnableToOpen, filename: name, deco: []string{"Open"}, critical: true, cause: err}
	}
	buf := bufio.NewReader(f)
	//Peek fails for files shorter than the magic number, those are just plain text.
	head, _ := buf.Peek(len(zstdMagic))
	F := &file{Reader: buf, f: f}
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		gz, err := gzip.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, Error{message: UnableToDecode, filename: name, deco: []string{"gzip.NewReader", "Open"}, critical: true, cause: err}
		}
		F.Reader = gz
		F.dec = gz
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, Error{message: UnableToDecode, filename: name, deco: []string{"zstd.NewReader", "Open"}, critical: true, cause: err}
		}
		rc := zr.IOReadCloser()
		F.Reader = rc
		F.dec = rc
	}
	return F, nil
}
