package asm

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/registers"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/render"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/statement"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/tokens"
	"github.com/spf13/cobra"
)

var (
	encodeStatements []string
	encodeSymbols    []string
	encodeListing    bool
	encodeVerbose    bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode assembly statements into machine words",
	Long: `Encodes RISC-V assembly statements into 32 bit machine words.

Statements are read one per line from the given file, from stdin if no file is
given, or from the --statement flags. Statements are placed at consecutive word
addresses starting from --address. A line may start with a label ("loop:"),
which is defined as a symbol at the address of the statement that follows.

Example:
  rvasm asm encode program.s
  rvasm asm encode -e "slt x14, x1, x2" -e "beq x0, x0, done" --symbol done=0x00400010`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEncode,
}

func init() {
	AsmCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringArrayVarP(&encodeStatements, "statement", "e", nil, "Statement to encode (can be repeated)")
	encodeCmd.Flags().StringArrayVarP(&encodeSymbols, "symbol", "s", nil, "Symbol definition name=address (can be repeated)")
	encodeCmd.Flags().BoolVarP(&encodeListing, "listing", "l", false, "Print a listing instead of one word per line")
	encodeCmd.Flags().BoolVarP(&encodeVerbose, "verbose", "v", false, "Print the machine bits and the source line of each statement")
}

func stripComment(line string) string {
	if comment := strings.IndexByte(line, '#'); comment >= 0 {
		return line[:comment]
	}

	return line
}

// Removes leading labels from the lines, defining each label at the address of
// the statement of its line (or the next statement if the line has only the label).
// Addresses are counted the way statement.Assembler.Parse() places statements: one
// word per line with tokens, valid or not
func defineLabels(lines []string, base int32, tokenizer *tokens.Tokenizer, symbols *statement.Symbols) []string {
	result := make([]string, len(lines))
	address := base

	for i, line := range lines {
		code := strings.TrimSpace(stripComment(line))

		for {
			label, rest, found := strings.Cut(code, ":")
			if !found || label == "" || strings.ContainsAny(label, " \t,()") {
				break
			}

			symbols.Define(label, address)
			code = strings.TrimSpace(rest)
		}

		result[i] = code

		if list, err := tokenizer.Tokenize(code, i+1); err != nil || len(list) > 0 {
			address += statement.WordBytes
		}
	}

	return result
}

func runEncode(cmd *cobra.Command, args []string) {
	base, err := baseAddress()
	if err != nil {
		fail(1, "%v", err)
	}

	catalogue, err := catalogue()
	if err != nil {
		fail(1, "loading instruction catalogue: %v", err)
	}

	file := "<command line>"
	lines := encodeStatements

	if len(lines) == 0 {
		file = "<stdin>"
		if len(args) > 0 {
			file = args[0]
		}

		lines, err = readLines(args0(args))
		if err != nil {
			fail(1, "reading %v: %v", file, err)
		}
	}

	symbols := statement.NewSymbols(nil)

	for _, definition := range encodeSymbols {
		name, value, found := strings.Cut(definition, "=")
		if !found {
			fail(1, "invalid symbol definition %q, expected name=address", definition)
		}

		address, err := parseWord(value)
		if err != nil {
			fail(1, "symbol %v: %v", name, err)
		}

		symbols.Define(strings.TrimSpace(name), address)
	}

	tokenizer := tokens.NewTokenizer(registers.Default)
	code := defineLabels(lines, base, tokenizer, symbols)

	assembler := statement.Assembler{
		Symbols:   symbols,
		Registers: registers.Default,
		Logger:    slog.Default().With(slog.String("command", "encode")),
	}

	var errs statement.ErrorList
	statements := assembler.Parse(file, code, base, tokenizer, catalogue, &errs)
	assembler.Assemble(statements, &errs)

	for _, err := range errs.Errors() {
		colorError.Fprint(os.Stderr, "Error: ")
		fmt.Fprintln(os.Stderr, err)
	}

	config := displayConfig()
	style := displayStyle()

	if encodeListing {
		if err := statement.DumpListing(os.Stdout, statements, config, style); err != nil {
			fail(1, "%v", err)
		}
	} else {
		for _, s := range statements {
			if s.State() != statement.State_Encoded {
				continue
			}

			fmt.Printf("%v  %v  %v\n",
				render.FormatNumber(s.Address(), config.AddressBase),
				render.FormatNumber(s.BinaryWord(), render.Base_Hexadecimal),
				s.StyledDisplayText(config, style))

			if encodeVerbose {
				fmt.Printf("    %v  ; line %v: %v\n", s.MachineBits(), s.Source().Line, strings.TrimSpace(lines[s.Source().Line-1]))
			}
		}
	}

	if errs.HasErrors() {
		os.Exit(2)
	}
}

func args0(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return ""
}
