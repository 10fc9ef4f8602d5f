package statement

import (
	"fmt"
	"strconv"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/encoding"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/instructions"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/render"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/tokens"
	"github.com/Manu343726/rvasm/pkg/utils"
)

const (
	branchRangeBits = 12
	jumpRangeBits   = 20
)

func (s *Statement) errorAt(token tokens.Token, err error, format string, args ...any) *AssemblyError {
	return &AssemblyError{
		File:    s.source.File,
		Line:    s.source.Line,
		Column:  token.Column,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

func (s *Statement) internalError(err error, format string, args ...any) *AssemblyError {
	return &AssemblyError{
		File:    s.source.File,
		Line:    s.source.Line,
		Message: InternalErrorPrefix + fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// Returns the format of the statement instruction. Pseudo instructions have no
// relative operands
func (s *Statement) format() instructions.Format {
	if basic, isBasic := s.instruction.(*instructions.BasicInstruction); isBasic {
		return basic.Format
	}

	return instructions.Format_Normal
}

// Resolves the statement operand tokens into operand values, and builds the basic
// assembly display form. On error the statement is left untouched
func (s *Statement) BuildAssemblyForm(symbols SymbolTable, regs RegisterTables) error {
	list := s.source.Tokens

	if len(list) == 0 || s.instruction == nil {
		return s.internalError(ErrInvalidState, "statement has no tokens or instruction to build from")
	}

	display := &render.ElementList{}
	var operands [encoding.MaxOperands]int32
	count := 0

	display.AddText(list[0].Text + " ")

	for i := 1; i < len(list); i++ {
		token := list[i]
		isOperand := true
		var value int32

		switch token.Kind {
		case tokens.Kind_Register:
			number, err := regs.General(token.Text)
			if err != nil {
				return s.errorAt(token, fmt.Errorf("%w: %w", ErrInvalidRegister, err), "invalid register name '%v'", token.Text)
			}

			value = int32(number)
			display.AddText("x" + strconv.Itoa(number))
		case tokens.Kind_FloatingPointRegister:
			number, err := regs.FloatingPoint(token.Text)
			if err != nil {
				return s.errorAt(token, fmt.Errorf("%w: %w", ErrInvalidRegister, err), "invalid floating point register name '%v'", token.Text)
			}

			value = int32(number)
			display.AddText("f" + strconv.Itoa(number))
		case tokens.Kind_ControlAndStatusRegister:
			number, err := regs.ControlAndStatus(token.Text)
			if err != nil {
				return s.errorAt(token, fmt.Errorf("%w: %w", ErrInvalidRegister, err), "invalid CSR name '%v'", token.Text)
			}

			value = int32(number)
			display.AddText(strconv.Itoa(number))
		case tokens.Kind_RoundingMode:
			mode, valid := tokens.RoundingModes[token.Text]
			if !valid {
				return s.errorAt(token, utils.MakeError(ErrInvalidRoundingMode, "'%v'", token.Text), "invalid rounding mode '%v'", token.Text)
			}

			value = mode
			display.AddText(token.Text)
		case tokens.Kind_Identifier:
			address, err := symbols.Resolve(token.Text, s.source.Line)
			if err != nil {
				return s.errorAt(token, fmt.Errorf("%w: %w", ErrUnresolvedSymbol, err), "symbol \"%v\" not found in symbol table", token.Text)
			}

			switch format := s.format(); format {
			case instructions.Format_Branch, instructions.Format_Jump:
				bits, name := branchRangeBits, "branch"
				if format == instructions.Format_Jump {
					bits, name = jumpRangeBits, "jump"
				}

				offset := address - s.address
				if offset >= 1<<bits || offset < -(1<<bits) {
					return s.errorAt(token, utils.MakeError(ErrRangeExceeded, "offset %v to '%v'", offset, token.Text), "%v target address beyond %v-bit range", name, bits)
				}

				value = offset
				display.AddValue(offset)
			case instructions.Format_Normal:
				value = address
				display.AddAddress(address)
			default:
				panic(fmt.Errorf("unhandled instruction format %v", format))
			}
		case tokens.Kind_Integer:
			value = token.Value

			if token.Width == tokens.Width5 {
				display.AddShortValue(value)
			} else {
				display.AddValue(value)
			}
		case tokens.Kind_Operator, tokens.Kind_LeftParen, tokens.Kind_RightParen:
			isOperand = false
			display.AddText(token.Text)
		default:
			panic(fmt.Errorf("unhandled token kind %v", token.Kind))
		}

		if isOperand {
			if count >= encoding.MaxOperands {
				return s.internalError(ErrOperandMaskMismatch, "statement has more than %v operands", encoding.MaxOperands)
			}

			operands[count] = value
			count++
		}

		if i < len(list)-1 && !token.Kind.IsParen() && !list[i+1].Kind.IsParen() {
			display.AddText(",")
		}
	}

	s.operands = operands
	s.operandCount = count
	s.display = display
	s.basicAssembly = display.Render(render.DisplayConfig{})
	s.state = State_AssemblyBuilt
	return nil
}

// Builds the machine word from the resolved operands. Decoded statements can be
// encoded back too. Fails only on internal consistency errors. On error the
// statement is left untouched
func (s *Statement) BuildMachineWord() error {
	basic, isBasic := s.instruction.(*instructions.BasicInstruction)

	if !isBasic {
		return s.internalError(ErrNotBasicInstruction, "pseudo-instruction expansion contained a pseudo-instruction")
	}

	if s.state == State_Raw {
		return s.internalError(ErrInvalidState, "cannot encode a statement in %v state", s.state)
	}

	bits := basic.Template
	insert := func(operand int, value int32) error {
		var err error
		bits, err = encoding.Insert(bits, encoding.OperandMarker(operand), value)

		if err != nil {
			return s.internalError(fmt.Errorf("%w: %w", ErrOperandMaskMismatch, err), "mismatch in number of operands in statement vs mask")
		}

		return nil
	}

	var err error

	switch basic.Format {
	case instructions.Format_Jump:
		if err = insert(0, s.operands[0]); err == nil {
			err = insert(1, encoding.ToJumpImmediate(s.operands[1]))
		}
	case instructions.Format_Branch:
		if err = insert(0, s.operands[0]); err == nil {
			if err = insert(1, s.operands[1]); err == nil {
				err = insert(2, encoding.ToBranchImmediate(s.operands[2]))
			}
		}
	case instructions.Format_Normal:
		for i := 0; i < s.operandCount && err == nil; i++ {
			err = insert(i, s.operands[i])
		}
	default:
		panic(fmt.Errorf("unhandled instruction format %v", basic.Format))
	}

	if err != nil {
		return err
	}

	word, err := encoding.ParseWord(bits)
	if err != nil {
		return s.internalError(fmt.Errorf("%w: %w", ErrOperandMaskMismatch, err), "mismatch in number of operands in statement vs mask")
	}

	s.machineBits = bits
	s.binaryWord = word
	s.state = State_Encoded
	return nil
}
