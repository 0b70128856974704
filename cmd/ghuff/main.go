// Ghuff compresses and decompresses files in the huff format.
//
// Usage:
//
//	ghuff compress <input> <output>
//	ghuff decompress <input> <output>
//
// Both commands are also available under their traditional names zap
// and unzap.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ghuff",
		Short: "compress and decompress files in the huff format",
		Long: `Ghuff compresses files into the huff format, a container for
Huffman-coded data that carries the code tree next to the payload, and
decompresses such files back to their original form.`,
	}
	root.PersistentFlags().BoolP("quiet", "q", false,
		"suppress progress messages")
	root.PersistentFlags().BoolP("force", "f", false,
		"overwrite existing output files")
	root.PersistentFlags().String("config", "",
		"config file (default $GHUFF_CONFIG, then the user config directory)")
	root.AddCommand(newCompressCmd(), newDecompressCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
