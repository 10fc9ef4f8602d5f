package instructions

import (
	"errors"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/tokens"
	"github.com/Manu343726/rvasm/pkg/utils"
)

// Kind of an element of the syntax of an instruction
type SlotKind uint

const (
	Slot_Register SlotKind = iota
	Slot_FloatingPointRegister
	// Signed 12 bit immediate (displayed sign extended)
	Slot_Immediate12
	Slot_RoundingMode
	Slot_LeftParen
	Slot_RightParen
	// Any other operand (labels, wide immediates, CSRs)
	Slot_Other
)

func (k SlotKind) String() string {
	switch k {
	case Slot_Register:
		return "register"
	case Slot_FloatingPointRegister:
		return "floating point register"
	case Slot_Immediate12:
		return "12 bit immediate"
	case Slot_RoundingMode:
		return "rounding mode"
	case Slot_LeftParen:
		return "("
	case Slot_RightParen:
		return ")"
	case Slot_Other:
		return "other"
	}

	panic("unreachable")
}

// One element of the syntax of an instruction
type Slot struct {
	Kind SlotKind

	// Token of the example statement the slot was derived from
	Example tokens.Token
}

// Returns true if the slot consumes an operand (It's not a parenthesis)
func (s Slot) IsOperand() bool {
	return s.Kind != Slot_LeftParen && s.Kind != Slot_RightParen
}

// Returns true if the token can be written where the slot is
func (s Slot) Accepts(token tokens.Token) bool {
	switch s.Example.Kind {
	case tokens.Kind_Operator,
		tokens.Kind_Register,
		tokens.Kind_FloatingPointRegister,
		tokens.Kind_RoundingMode,
		tokens.Kind_Identifier,
		tokens.Kind_LeftParen,
		tokens.Kind_RightParen:
		return token.Kind == s.Example.Kind
	case tokens.Kind_ControlAndStatusRegister:
		return token.Kind == tokens.Kind_ControlAndStatusRegister ||
			(token.Kind == tokens.Kind_Integer && tokens.Width12U.Contains(int64(token.Value)))
	case tokens.Kind_Integer:
		return token.Kind == tokens.Kind_Integer && s.Example.Width.Contains(int64(token.Value))
	}

	panic("unreachable")
}

func slotKindOf(token tokens.Token) SlotKind {
	switch token.Kind {
	case tokens.Kind_Register:
		return Slot_Register
	case tokens.Kind_FloatingPointRegister:
		return Slot_FloatingPointRegister
	case tokens.Kind_RoundingMode:
		return Slot_RoundingMode
	case tokens.Kind_LeftParen:
		return Slot_LeftParen
	case tokens.Kind_RightParen:
		return Slot_RightParen
	case tokens.Kind_Integer:
		if token.Width == tokens.Width12 {
			return Slot_Immediate12
		}

		return Slot_Other
	case tokens.Kind_Operator, tokens.Kind_ControlAndStatusRegister, tokens.Kind_Identifier:
		return Slot_Other
	}

	panic("unreachable")
}

// Ordered operand slots of an instruction, mnemonic excluded
type Syntax []Slot

// Returns the number of slots that consume an operand
func (s Syntax) OperandCount() int {
	return len(utils.Filter(s, Slot.IsOperand))
}

// Returns the operand slots (parenthesis excluded)
func (s Syntax) Operands() Syntax {
	return utils.Filter(s, Slot.IsOperand)
}

// Returns true if the operand tokens (mnemonic excluded) fit the syntax one by one
func (s Syntax) Matches(operands tokens.List) bool {
	if len(operands) != len(s) {
		return false
	}

	for i, slot := range s {
		if !slot.Accepts(operands[i]) {
			return false
		}
	}

	return true
}

var ErrInvalidSyntax = errors.New("invalid instruction syntax")

// Derives the mnemonic and the syntax of an instruction from an example statement
// such as "lw t1, -100(t2)"
func ParseSyntax(example string) (string, Syntax, error) {
	list, err := tokens.Tokenize(example, 0)

	if err != nil {
		return "", nil, utils.MakeError(ErrInvalidSyntax, "example '%v': %v", example, err)
	}

	if len(list) == 0 || list[0].Kind != tokens.Kind_Operator {
		return "", nil, utils.MakeError(ErrInvalidSyntax, "example '%v' has no mnemonic", example)
	}

	return list[0].Text, utils.Map(list[1:], func(token tokens.Token) Slot {
		return Slot{
			Kind:    slotKindOf(token),
			Example: token,
		}
	}), nil
}
