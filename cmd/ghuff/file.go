// Copyright 2025 The huff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"os"
)

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it removes the information of the
// operation returning the error.
type userPathError struct {
	Path string
	Err  error
}

func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *userPathError) Unwrap() error { return e.Err }

// userError strips the operation information from path errors. Users
// of the program don't care whether lstat or open noticed that a file
// does not exist.
func userError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return &userPathError{Path: pe.Path, Err: pe.Err}
	}
	return err
}

// errNoRegular indicates that a file is not regular.
var errNoRegular = errors.New("no regular file")

// openInput opens the input file for processing. Only regular files
// are accepted.
func openInput(path string) (f *os.File, err error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, userError(err)
	}
	if !fi.Mode().IsRegular() {
		return nil, &userPathError{Path: path, Err: errNoRegular}
	}
	if f, err = os.Open(path); err != nil {
		return nil, userError(err)
	}
	return f, nil
}

// perm derives the permissions for an output file from the input file.
func perm(f *os.File) os.FileMode {
	const defaultPerm os.FileMode = 0666

	fi, err := f.Stat()
	if err != nil {
		return defaultPerm
	}
	return fi.Mode() & defaultPerm
}

// writer writes an output file. The data lands in a temporary file
// that is renamed to the target only after SetSuccess was called, so a
// failed run does not leave partial output behind.
type writer struct {
	f       *os.File
	name    string
	bw      *bufio.Writer
	success bool
}

// newWriter creates the output writer. An existing target is an error
// unless force is set.
func newWriter(path string, perm os.FileMode, force bool) (w *writer, err error) {
	if _, err = os.Stat(path); !os.IsNotExist(err) {
		if !force {
			return nil, &userPathError{Path: path,
				Err: errors.New("file exists")}
		}
		if err = os.Remove(path); err != nil {
			return nil, userError(err)
		}
	}
	f, err := os.OpenFile(path+".tmp",
		os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return nil, userError(err)
	}
	return &writer{f: f, name: path, bw: bufio.NewWriter(f)}, nil
}

func (w *writer) Write(p []byte) (n int, err error) {
	return w.bw.Write(p)
}

// SetSuccess marks the output as complete.
func (w *writer) SetSuccess() { w.success = true }

var errInval = errors.New("invalid value")

// Close finishes the writer. Without success the temporary file is
// removed; with success it moves to the target name.
func (w *writer) Close() error {
	if w.f == nil {
		return errInval
	}
	f := w.f
	w.f = nil
	if !w.success {
		f.Close()
		return os.Remove(f.Name())
	}
	if err := w.bw.Flush(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), w.name)
}
