package statement

import (
	"fmt"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/encoding"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/instructions"
)

// Builds a statement from a machine word, with no source. Words that are not an
// encoding of any catalogue instruction give a statement with no instruction and
// no operands, displayed as InvalidOperator
func Decode(word int32, address int32, catalogue BinaryLookup) *Statement {
	s := &Statement{
		address:     address,
		binaryWord:  word,
		machineBits: encoding.FormatWord(word),
		state:       State_Decoded,
	}

	instr, found := catalogue.FindByBinaryCode(word)

	if !found {
		s.display = Disassemble(nil, nil)
		return s
	}

	s.instruction = instr
	template := instr.Template

	switch instr.Format {
	case instructions.Format_Jump:
		s.operands[0] = encoding.Extract(template, encoding.OperandMarker(0), word)
		s.operands[1] = encoding.FromJumpImmediate(encoding.Extract(template, encoding.OperandMarker(1), word))
		s.operandCount = 2
	case instructions.Format_Branch:
		s.operands[0] = encoding.Extract(template, encoding.OperandMarker(0), word)
		s.operands[1] = encoding.Extract(template, encoding.OperandMarker(1), word)
		s.operands[2] = encoding.FromBranchImmediate(encoding.Extract(template, encoding.OperandMarker(2), word))
		s.operandCount = 3
	case instructions.Format_Normal:
		s.operandCount = encoding.OperandCount(template)

		for i := 0; i < s.operandCount; i++ {
			s.operands[i] = encoding.Extract(template, encoding.OperandMarker(i), word)
		}
	default:
		panic(fmt.Errorf("unhandled instruction format %v", instr.Format))
	}

	s.display = Disassemble(instr, s.Operands())
	return s
}

// Returns a new statement at the same address holding the given machine word,
// flagged as altered. The original statement is not modified. Callers patching
// program memory are responsible for serializing patches and reads of the same
// address
func (s *Statement) Patch(word int32, catalogue BinaryLookup) *Statement {
	patched := Decode(word, s.address, catalogue)
	patched.altered = true
	return patched
}
