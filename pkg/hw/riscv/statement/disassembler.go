package statement

import (
	"strconv"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/instructions"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/render"
	"github.com/Manu343726/rvasm/pkg/utils"
)

// Display form of words that do not encode any known instruction
const InvalidOperator = "<INVALID>"

var roundingModeNames = [8]string{"rne", "rtz", "rdn", "rup", "rmm", "invalid", "invalid", "dyn"}

// Returns the name of a rounding mode encoding
func RoundingModeName(mode int32) string {
	if mode >= 0 && int(mode) < len(roundingModeNames) {
		return roundingModeNames[mode]
	}

	return "invalid"
}

// Builds the display form of an instruction from its operand values, following
// the instruction syntax. A nil instruction gives InvalidOperator
func Disassemble(instr *instructions.BasicInstruction, operands []int32) *render.ElementList {
	list := &render.ElementList{}

	if instr == nil {
		list.AddText(InvalidOperator)
		return list
	}

	list.AddText(instr.Mnemonic + " ")
	syntax := instr.Syntax()
	slot := 0

	for _, operand := range operands {
		if slot > 0 && slot < len(syntax) && syntax[slot].IsOperand() {
			list.AddText(",")
		}

		for emitted := false; !emitted && slot < len(syntax); slot++ {
			switch syntax[slot].Kind {
			case instructions.Slot_LeftParen:
				list.AddText("(")
			case instructions.Slot_RightParen:
				list.AddText(")")
			case instructions.Slot_Register:
				list.AddText("x" + strconv.Itoa(int(operand)))
				emitted = true
			case instructions.Slot_FloatingPointRegister:
				list.AddText("f" + strconv.Itoa(int(operand)))
				emitted = true
			case instructions.Slot_Immediate12:
				list.AddValue(utils.SignExtend(operand, 12))
				emitted = true
			case instructions.Slot_RoundingMode:
				list.AddText(RoundingModeName(operand))
				emitted = true
			case instructions.Slot_Other:
				list.AddValue(operand)
				emitted = true
			default:
				panic("unreachable")
			}
		}
	}

	for ; slot < len(syntax); slot++ {
		switch syntax[slot].Kind {
		case instructions.Slot_LeftParen:
			list.AddText("(")
		case instructions.Slot_RightParen:
			list.AddText(")")
		}
	}

	return list
}
