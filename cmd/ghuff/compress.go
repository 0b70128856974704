// Copyright 2025 The huff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/huffio/huff"
	"github.com/huffio/huff/internal/xlog"
)

func newCompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "compress <input> <output>",
		Aliases: []string{"zap"},
		Short:   "compress a file into the huff format",
		Long: `Compress reads the input file, builds a code tree from its symbol
frequencies and writes a single huff stream to the output file.

An empty input has no symbol frequencies and no tree. It is reported
and no output file is written.`,
		Args: cobra.ExactArgs(2),
		RunE: runCompress,
	}
}

func runCompress(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	return compressFile(args[0], args[1], opts)
}

// compressFile encodes the file at input into a huff stream at output.
func compressFile(input, output string, opts *options) error {
	f, err := openInput(input)
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return userError(err)
	}
	if len(data) == 0 {
		xlog.Printf(opts.log, "%s is empty and cannot be compressed",
			input)
		return nil
	}
	w, err := newWriter(output, perm(f), opts.force)
	if err != nil {
		return err
	}
	defer w.Close()
	hw := huff.NewWriter(w)
	if _, err = hw.Write(data); err != nil {
		return err
	}
	if err = hw.Close(); err != nil {
		return err
	}
	w.SetSuccess()
	if err = w.Close(); err != nil {
		return err
	}
	xlog.Printf(opts.log, "encoded %d bytes into %d bits", len(data),
		hw.BitCount())
	return nil
}
