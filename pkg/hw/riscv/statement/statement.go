package statement

import (
	"strconv"
	"strings"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/encoding"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/instructions"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/render"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/tokens"
	"github.com/Manu343726/rvasm/pkg/utils"
)

// Where a statement comes from
type Source struct {
	// Source file name
	File string

	// Source line (starting from 1)
	Line int

	// Source line text
	Text string

	// Complete token list of the line, as written
	OriginalTokens tokens.List

	// Mnemonic and operand tokens the statement is built from
	Tokens tokens.List
}

// One assembly statement: an instruction instance at a text segment address
type Statement struct {
	source      Source
	instruction instructions.Instruction

	// Text segment address the machine word is stored at
	address int32

	// Resolved operands, in instruction field order. Branch and jump offsets
	// are stored linear (Not permuted)
	operands     [encoding.MaxOperands]int32
	operandCount int

	// Deferred display form
	display *render.ElementList

	// Display form with all numbers in decimal
	basicAssembly string

	// Fully resolved instruction template
	machineBits string
	binaryWord  int32

	// Set when the machine word was overwritten after assembly
	altered bool

	state State
}

// Creates a statement from source, ready to be built. Its machine word is 0 until built
func New(source Source, address int32, instr instructions.Instruction) *Statement {
	return &Statement{
		source:      source,
		instruction: instr,
		address:     address,
		display:     &render.ElementList{},
		state:       State_Raw,
	}
}

func (s *Statement) Source() Source {
	return s.source
}

// Returns the instruction definition of the statement. Nil for decoded words that
// match no instruction
func (s *Statement) Instruction() instructions.Instruction {
	return s.instruction
}

func (s *Statement) Address() int32 {
	return s.address
}

func (s *Statement) State() State {
	return s.state
}

// Returns the i-th operand, or -1 if out of range
func (s *Statement) Operand(i int) int32 {
	if i >= 0 && i < s.operandCount {
		return s.operands[i]
	}

	return -1
}

// Returns a copy of the resolved operands
func (s *Statement) Operands() []int32 {
	return append([]int32(nil), s.operands[:s.operandCount]...)
}

func (s *Statement) OperandCount() int {
	return s.operandCount
}

func (s *Statement) BinaryWord() int32 {
	return s.binaryWord
}

// Returns the machine word as a 32 character bit string. Empty if not built
func (s *Statement) MachineBits() string {
	return s.machineBits
}

// Returns the basic assembly form with all numbers in decimal. Empty if not built
// from source
func (s *Statement) BasicAssembly() string {
	return s.basicAssembly
}

// Returns the elements of the display form
func (s *Statement) Display() *render.ElementList {
	return s.display
}

// Renders the display form. Numbers are formatted with the given settings
func (s *Statement) DisplayText(config render.DisplayConfig) string {
	return s.display.Render(config)
}

// Renders the display form decorating each element with a style
func (s *Statement) StyledDisplayText(config render.DisplayConfig, style render.Style) string {
	return s.display.RenderStyled(config, style)
}

func (s *Statement) Altered() bool {
	return s.altered
}

func (s *Statement) SetAltered(altered bool) {
	s.altered = altered
}

// Overrides the basic assembly text. Used when the statement is generated by
// pseudo instruction expansion
func (s *Statement) SetBasicAssembly(text string) {
	s.basicAssembly = text
}

// Overrides the machine word bit string
func (s *Statement) SetMachineBits(bits string) {
	s.machineBits = bits
}

// Overrides the machine word
func (s *Statement) SetBinaryWord(word int32) {
	s.binaryWord = word
}

// Overrides the source text of the statement
func (s *Statement) SetSourceText(text string) {
	s.source.Text = text
}

func pad(builder *strings.Builder, column int) {
	for builder.Len() < column {
		builder.WriteByte(' ')
	}
}

// Debugging representation: address, mnemonic, operands, hex operands and the
// machine word split in groups of bits
func (s *Statement) String() string {
	var builder strings.Builder

	builder.WriteString("[")
	builder.WriteString(render.FormatNumber(s.address, render.Base_Hexadecimal))
	builder.WriteString("]")

	if s.basicAssembly != "" {
		mnemonic, operands, _ := strings.Cut(s.basicAssembly, " ")
		pad(&builder, 16)
		builder.WriteString(mnemonic)
		pad(&builder, 24)
		builder.WriteString(operands)
	} else {
		pad(&builder, 16)
		builder.WriteString(render.FormatNumber(s.binaryWord, render.Base_Hexadecimal))
	}

	pad(&builder, 40)
	builder.WriteString(";  ")

	for _, operand := range s.Operands() {
		builder.WriteString(strconv.FormatUint(uint64(uint32(operand)), 16))
		builder.WriteString(" ")
	}

	if len(s.machineBits) == encoding.WordBits {
		if word, err := encoding.ParseWord(s.machineBits); err == nil {
			builder.WriteString("[")
			builder.WriteString(render.FormatNumber(word, render.Base_Hexadecimal))
			builder.WriteString("]  ")
		}

		builder.WriteString(strings.Join(utils.SplitWidths(s.machineBits, 6, 5, 5, 5, 5), "|"))
	}

	return builder.String()
}
