package asm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/instructions"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/render"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/tokens"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// AsmCmd groups the encoder and disassembler commands
var AsmCmd = &cobra.Command{
	Use:   "asm",
	Short: "Encode and decode RISC-V instructions",
}

var colorError = color.New(color.FgRed, color.Bold)

func init() {
	AsmCmd.PersistentFlags().StringP("address", "a", "", "Address of the first statement (default text.base_address, 0x00400000)")
	cobra.CheckErr(viper.BindPFlag("text.base_address", AsmCmd.PersistentFlags().Lookup("address")))
}

func fail(code int, format string, args ...any) {
	colorError.Fprint(os.Stderr, "Error: ")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}

func displayConfig() render.DisplayConfig {
	return render.NewDisplayConfig(viper.GetBool("display.hex_addresses"), viper.GetBool("display.hex_values"))
}

func displayStyle() render.Style {
	if color.NoColor {
		return nil
	}

	return render.DefaultPalette.Style()
}

// Parses a 32 bit number (decimal, 0x or 0b), keeping its low 32 bits
func parseWord(text string) (int32, error) {
	value, ok := tokens.ParseInteger(strings.TrimSpace(text))
	if !ok {
		return 0, fmt.Errorf("invalid number %q", text)
	}

	return int32(value), nil
}

func baseAddress() (int32, error) {
	address, err := parseWord(viper.GetString("text.base_address"))
	if err != nil {
		return 0, fmt.Errorf("invalid base address: %w", err)
	}

	return address, nil
}

// Returns the builtin instruction catalogue, extended with the definitions of
// catalogue.file if set
func catalogue() (*instructions.InstructionsDescriptor, error) {
	return instructions.ExtendWithFile(viper.GetString("catalogue.file"))
}

// Reads all lines of the given file, or stdin if path is "-" or empty
func readLines(path string) ([]string, error) {
	var input io.Reader = os.Stdin

	if path != "" && path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		input = file
	}

	var lines []string
	scanner := bufio.NewScanner(input)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}

// Parses the machine words of a text: whitespace or comma separated numbers,
// '#' starts a comment
func parseWords(lines []string) ([]int32, error) {
	var words []int32

	for i, line := range lines {
		if comment := strings.IndexByte(line, '#'); comment >= 0 {
			line = line[:comment]
		}

		for _, field := range strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
			word, err := parseWord(field)
			if err != nil {
				return nil, fmt.Errorf("line %v: %w", i+1, err)
			}

			words = append(words, word)
		}
	}

	return words, nil
}
