package instructions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/encoding"
	"github.com/Manu343726/rvasm/pkg/utils"
)

// Common interface of basic and pseudo instruction definitions
type Instruction interface {
	// Instruction mnemonic
	Name() string

	// Operand slots of the instruction
	Syntax() Syntax

	// Number of operands the instruction takes
	OperandCount() int

	// Full documentation of the instruction
	Documentation(leftpad int) string
}

var ErrInvalidDefinition = errors.New("invalid instruction definition")

// An instruction encoded as exactly one machine word
type BasicInstruction struct {
	Mnemonic string

	// Example statement the syntax was derived from
	Example string

	Description string

	// Immediate layout rules
	Format Format

	// 32 bit template, most significant bit first. Operand i occupies the
	// positions holding encoding.OperandMarker(i)
	Template string

	Operands Syntax

	mask  uint32
	match uint32
}

func (i *BasicInstruction) Name() string {
	return i.Mnemonic
}

func (i *BasicInstruction) Syntax() Syntax {
	return i.Operands
}

func (i *BasicInstruction) OperandCount() int {
	return i.Operands.OperandCount()
}

func (i *BasicInstruction) String() string {
	return i.Example
}

// Returns true if the word is an encoding of this instruction
func (i *BasicInstruction) MatchesWord(word int32) bool {
	return uint32(word)&i.mask == i.match
}

func validTemplateChar(c byte) bool {
	return c == '0' || c == '1' || encoding.MarkerOperand(c) >= 0
}

// Builds a basic instruction definition. Spaces in the template are ignored
func NewBasicInstruction(example string, format Format, template string, description string) (*BasicInstruction, error) {
	template = strings.ReplaceAll(template, " ", "")

	if len(template) != encoding.WordBits {
		return nil, utils.MakeError(ErrInvalidDefinition, "template of '%v' is %v bits long, expected %v", example, len(template), encoding.WordBits)
	}

	for i := range template {
		if !validTemplateChar(template[i]) {
			return nil, utils.MakeError(ErrInvalidDefinition, "template of '%v' has invalid character '%c' at bit %v", example, template[i], encoding.WordBits-1-i)
		}
	}

	mnemonic, syntax, err := ParseSyntax(example)
	if err != nil {
		return nil, err
	}

	operands := syntax.OperandCount()

	if fields := encoding.OperandCount(template); fields != operands {
		return nil, utils.MakeError(ErrInvalidDefinition, "'%v' has %v operands but its template declares %v operand fields", example, operands, fields)
	}

	for i := operands; i < encoding.MaxOperands; i++ {
		if encoding.FieldWidth(template, encoding.OperandMarker(i)) > 0 {
			return nil, utils.MakeError(ErrInvalidDefinition, "template of '%v' uses marker '%c' for missing operand %v", example, encoding.OperandMarker(i), i)
		}
	}

	if relative := format.RelativeOperand(); relative >= 0 && operands != relative+1 {
		return nil, utils.MakeError(ErrInvalidDefinition, "%v instruction '%v' must have %v operands", format, example, relative+1)
	}

	instr := &BasicInstruction{
		Mnemonic:    mnemonic,
		Example:     example,
		Description: description,
		Format:      format,
		Template:    template,
		Operands:    syntax,
	}

	instr.mask, instr.match = encoding.LiteralBits(template)
	return instr, nil
}

// Returns the layout of the instruction fields within a machine word
func (i *BasicInstruction) Fields() []utils.AsciiFrameField {
	var fields []utils.AsciiFrameField
	operands := i.Operands.Operands()
	seen := map[byte]int{}

	for end := len(i.Template); end > 0; {
		c := i.Template[end-1]
		begin := end - 1

		for begin > 0 && i.Template[begin-1] == c {
			begin--
		}

		name := i.Template[begin:end]

		if encoding.IsMarker(c) {
			operand := encoding.MarkerOperand(c)
			width := encoding.FieldWidth(i.Template, c)
			low := seen[c]
			seen[c] += end - begin
			name = operands[operand].Example.Text

			if end-begin < width {
				name = fmt.Sprintf("%v[%v:%v]", name, low+end-begin-1, low)
			}
		}

		fields = append(fields, utils.AsciiFrameField{
			Name:  name,
			Begin: encoding.WordBits - end,
			Width: end - begin,
		})

		end = begin
	}

	return fields
}

// Returns full documentation for the instruction
func (i *BasicInstruction) Documentation(leftpad int) string {
	var builder strings.Builder
	leftpadStr := strings.Repeat(" ", leftpad)

	builder.WriteString(leftpadStr)
	builder.WriteString(fmt.Sprintf("%v (%v format)\n\n", i.Example, i.Format))

	leftpadStr += "  "
	leftpad += 2

	builder.WriteString(leftpadStr)
	builder.WriteString("Description:\n\n  ")
	builder.WriteString(leftpadStr)
	builder.WriteString(i.Description)
	builder.WriteString("\n\n")
	builder.WriteString(leftpadStr)
	builder.WriteString("Memory layout:\n\n")

	asciiFrame, err := utils.AsciiFrame(i.Fields(), encoding.WordBits, "bits", utils.AsciiFrameUnitLayout_RightToLeft, leftpad+2)
	if err != nil {
		panic(fmt.Errorf("error generating documentation for instruction %v: %w", i.Mnemonic, err))
	}

	builder.WriteString(asciiFrame)
	return builder.String()
}

// An instruction the assembler expands into one or more basic instructions.
// Pseudo instructions are descriptive only: they cannot be encoded
type PseudoInstruction struct {
	Mnemonic string

	// Example statement the syntax was derived from
	Example string

	Description string

	// Basic instructions the example expands to
	Expansion []string

	Operands Syntax
}

func (p *PseudoInstruction) Name() string {
	return p.Mnemonic
}

func (p *PseudoInstruction) Syntax() Syntax {
	return p.Operands
}

func (p *PseudoInstruction) OperandCount() int {
	return p.Operands.OperandCount()
}

func (p *PseudoInstruction) String() string {
	return p.Example
}

// Builds a pseudo instruction definition
func NewPseudoInstruction(example string, description string, expansion ...string) (*PseudoInstruction, error) {
	mnemonic, syntax, err := ParseSyntax(example)
	if err != nil {
		return nil, err
	}

	return &PseudoInstruction{
		Mnemonic:    mnemonic,
		Example:     example,
		Description: description,
		Expansion:   expansion,
		Operands:    syntax,
	}, nil
}

func (p *PseudoInstruction) Documentation(leftpad int) string {
	var builder strings.Builder
	leftpadStr := strings.Repeat(" ", leftpad)

	builder.WriteString(leftpadStr)
	builder.WriteString(fmt.Sprintf("%v (pseudo instruction)\n\n", p.Example))
	builder.WriteString(leftpadStr)
	builder.WriteString("  Description:\n\n    ")
	builder.WriteString(leftpadStr)
	builder.WriteString(p.Description)
	builder.WriteString("\n\n")
	builder.WriteString(leftpadStr)
	builder.WriteString("  Expands to:\n\n")

	for _, instr := range p.Expansion {
		builder.WriteString(leftpadStr)
		builder.WriteString("    ")
		builder.WriteString(instr)
		builder.WriteString("\n")
	}

	return builder.String()
}
