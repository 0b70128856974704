// Copyright 2025 The huff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"

	"github.com/spf13/cobra"

	"github.com/huffio/huff"
	"github.com/huffio/huff/internal/xlog"
)

func newDecompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "decompress <input> <output>",
		Aliases: []string{"unzap"},
		Short:   "decompress a huff file",
		Long: `Decompress reads a huff stream from the input file, checks it
against its checksum and writes the decoded data to the output file.`,
		Args: cobra.ExactArgs(2),
		RunE: runDecompress,
	}
}

func runDecompress(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	return decompressFile(args[0], args[1], opts)
}

// decompressFile decodes the huff stream at input into output.
func decompressFile(input, output string, opts *options) error {
	f, err := openInput(input)
	if err != nil {
		return err
	}
	defer f.Close()
	r, err := huff.NewReader(bufio.NewReader(f))
	if err != nil {
		return err
	}
	w, err := newWriter(output, perm(f), opts.force)
	if err != nil {
		return err
	}
	defer w.Close()
	n, err := io.Copy(w, r)
	if err != nil {
		return err
	}
	w.SetSuccess()
	if err = w.Close(); err != nil {
		return err
	}
	xlog.Printf(opts.log, "decoded %d bytes", n)
	return nil
}
