package asm

import (
	"fmt"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/render"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/statement"
	"github.com/spf13/cobra"
)

var decodeBits bool

var decodeCmd = &cobra.Command{
	Use:   "decode <word>...",
	Short: "Disassemble machine words",
	Long: `Disassembles 32 bit machine words given as arguments (decimal, 0x or 0b
notation). Words are placed at consecutive addresses starting from --address.
Words matching no instruction are shown as <INVALID>.

Example:
  rvasm asm decode 0x0020a733 0xf9c12283`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		words, err := parseWords(args)
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

		config := displayConfig()
		style := displayStyle()

		for i, word := range words {
			s := statement.Decode(word, base+int32(i*statement.WordBytes), catalogue)

			fmt.Printf("%v  %v  %v\n",
				render.FormatNumber(s.Address(), config.AddressBase),
				render.FormatNumber(word, render.Base_Hexadecimal),
				s.StyledDisplayText(config, style))

			if decodeBits {
				fmt.Printf("    %v\n", s.MachineBits())
			}
		}
	},
}

func init() {
	AsmCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().BoolVarP(&decodeBits, "bits", "b", false, "Print the machine bits of each word")
}
