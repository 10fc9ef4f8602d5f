package asm

import (
	"os"
	"strings"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/statement"
	"github.com/spf13/cobra"
)

var dumpPatches []string

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print the listing of a memory image",
	Long: `Reads machine words from a text file (or stdin) and prints the listing of
the disassembled memory image. Words are whitespace or comma separated numbers in
decimal, 0x or 0b notation, '#' starts a comment.

Words can be overwritten before dumping with --patch address=word. Patched words
are flagged as altered in the listing.

Example:
  rvasm asm dump image.txt
  rvasm asm dump image.txt --patch 0x00400004=0x00000013`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lines, err := readLines(args0(args))
		if err != nil {
			fail(1, "%v", err)
		}

		words, err := parseWords(lines)
		if err != nil {
			fail(1, "%v", err)
		}

		base, err := baseAddress()
		if err != nil {
			fail(1, "%v", err)
		}

		catalogue, err := catalogue()
		if err != nil {
			fail(1, "loading instruction catalogue: %v", err)
		}

		statements := make([]*statement.Statement, len(words))
		byAddress := make(map[uint32]int, len(words))

		for i, word := range words {
			statements[i] = statement.Decode(word, base+int32(i*statement.WordBytes), catalogue)
			byAddress[uint32(statements[i].Address())] = i
		}

		for _, patch := range dumpPatches {
			addressText, wordText, found := strings.Cut(patch, "=")
			if !found {
				fail(1, "invalid patch %q, expected address=word", patch)
			}

			address, err := parseWord(addressText)
			if err != nil {
				fail(1, "patch %q: %v", patch, err)
			}

			word, err := parseWord(wordText)
			if err != nil {
				fail(1, "patch %q: %v", patch, err)
			}

			i, found := byAddress[uint32(address)]
			if !found {
				fail(1, "patch address %#08x is outside of the image", uint32(address))
			}

			statements[i] = statements[i].Patch(word, catalogue)
		}

		if err := statement.DumpListing(os.Stdout, statements, displayConfig(), displayStyle()); err != nil {
			fail(1, "%v", err)
		}
	},
}

func init() {
	AsmCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringArrayVarP(&dumpPatches, "patch", "p", nil, "Overwrite the word at an address, address=word (can be repeated)")
}
