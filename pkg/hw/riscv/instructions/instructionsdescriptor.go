package instructions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/tokens"
	"github.com/Manu343726/rvasm/pkg/utils"
)

// Contains information about all the instructions known by the assembler
type InstructionsDescriptor struct {
	instructions []Instruction
	byName       map[string][]Instruction
	basic        []*BasicInstruction
}

// Returns all instructions, in catalogue order
func (d *InstructionsDescriptor) AllInstructions() []Instruction {
	return d.instructions
}

// Returns all basic instructions, in catalogue order
func (d *InstructionsDescriptor) BasicInstructions() []*BasicInstruction {
	return d.basic
}

var (
	ErrUnknownMnemonic  = errors.New("unknown instruction mnemonic")
	ErrOperandsMismatch = errors.New("operands do not match any form of the instruction")
)

// Returns the instructions with the given mnemonic
func (d *InstructionsDescriptor) Instructions(mnemonic string) []Instruction {
	return d.byName[mnemonic]
}

// Returns the first instruction with the given mnemonic whose syntax accepts
// the operand tokens (mnemonic excluded). Basic instructions are preferred over
// pseudo instructions
func (d *InstructionsDescriptor) FindByMnemonic(mnemonic string, operands tokens.List) (Instruction, error) {
	candidates, hasMnemonic := d.byName[mnemonic]

	if !hasMnemonic {
		return nil, utils.MakeError(ErrUnknownMnemonic, "'%v'", mnemonic)
	}

	for _, candidate := range candidates {
		if candidate.Syntax().Matches(operands) {
			return candidate, nil
		}
	}

	return nil, utils.MakeError(ErrOperandsMismatch, "'%v %v', expected one of: %v", mnemonic, operands, strings.Join(utils.Map(candidates, func(instr Instruction) string {
		return fmt.Sprint(instr)
	}), "; "))
}

// Returns the instruction matching a tokenized statement
func (d *InstructionsDescriptor) Match(statement tokens.List) (Instruction, error) {
	if len(statement) == 0 || statement[0].Kind != tokens.Kind_Operator {
		return nil, utils.MakeError(ErrUnknownMnemonic, "statement '%v' has no mnemonic", statement)
	}

	return d.FindByMnemonic(statement[0].Text, statement[1:])
}

// Returns the first basic instruction, in catalogue order, whose template literal
// bits match the word
func (d *InstructionsDescriptor) FindByBinaryCode(word int32) (*BasicInstruction, bool) {
	for _, instr := range d.basic {
		if instr.MatchesWord(word) {
			return instr, true
		}
	}

	return nil, false
}

// Returns full documentation of all the instructions
func (d *InstructionsDescriptor) Documentation(leftpad int) string {
	var builder strings.Builder

	for _, instr := range d.instructions {
		builder.WriteString(instr.Documentation(leftpad))
		builder.WriteString("\n")
	}

	return builder.String()
}

// Initializes an instructions descriptor with the given instructions. Catalogue
// order is kept: it decides which instruction wins when more than one matches
func NewInstructionsDescriptor(instructions []Instruction) *InstructionsDescriptor {
	d := &InstructionsDescriptor{
		instructions: instructions,
		byName:       make(map[string][]Instruction),
	}

	for _, instr := range instructions {
		switch i := instr.(type) {
		case *BasicInstruction:
			d.basic = append(d.basic, i)
		case *PseudoInstruction:
		default:
			panic(fmt.Errorf("unsupported instruction definition type %T", instr))
		}
	}

	// basic instructions first so that they win over pseudo instructions with the same syntax
	for _, instr := range d.basic {
		d.byName[instr.Name()] = append(d.byName[instr.Name()], instr)
	}

	for _, instr := range instructions {
		if _, isBasic := instr.(*BasicInstruction); !isBasic {
			d.byName[instr.Name()] = append(d.byName[instr.Name()], instr)
		}
	}

	return d
}

// Returns a new descriptor with the instructions of both descriptors. Instructions
// of the other descriptor go last
func (d *InstructionsDescriptor) Extend(other *InstructionsDescriptor) *InstructionsDescriptor {
	all := make([]Instruction, 0, len(d.instructions)+len(other.instructions))
	all = append(all, d.instructions...)
	all = append(all, other.instructions...)
	return NewInstructionsDescriptor(all)
}
