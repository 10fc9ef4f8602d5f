package instructions

func basic(example string, format Format, template string, description string) Instruction {
	instr, err := NewBasicInstruction(example, format, template, description)

	if err != nil {
		panic(err)
	}

	return instr
}

func pseudo(example string, description string, expansion ...string) Instruction {
	instr, err := NewPseudoInstruction(example, description, expansion...)

	if err != nil {
		panic(err)
	}

	return instr
}

// RV32I base integer instructions
func BaseIntegerInstructions() []Instruction {
	return []Instruction{
		basic("lui t1, 100000", Format_Normal, "ssssssssssssssssssss fffff 0110111", "Load upper immediate: set t1 to the 20 bit immediate shifted left 12 bits"),
		basic("auipc t1, 100000", Format_Normal, "ssssssssssssssssssss fffff 0010111", "Add upper immediate to pc: set t1 to pc + (immediate << 12)"),
		basic("jal t1, target", Format_Jump, "ssssssssssssssssssss fffff 1101111", "Jump and link: set t1 to pc + 4, then jump to target"),
		basic("jalr t1, -100(t2)", Format_Normal, "ssssssssssss ttttt 000 fffff 1100111", "Jump and link register: set t1 to pc + 4, then jump to t2 + immediate"),

		basic("beq t1, t2, label", Format_Branch, "ttttttt sssss fffff 000 ttttt 1100011", "Branch if equal"),
		basic("bne t1, t2, label", Format_Branch, "ttttttt sssss fffff 001 ttttt 1100011", "Branch if not equal"),
		basic("blt t1, t2, label", Format_Branch, "ttttttt sssss fffff 100 ttttt 1100011", "Branch if less than (signed)"),
		basic("bge t1, t2, label", Format_Branch, "ttttttt sssss fffff 101 ttttt 1100011", "Branch if greater than or equal (signed)"),
		basic("bltu t1, t2, label", Format_Branch, "ttttttt sssss fffff 110 ttttt 1100011", "Branch if less than (unsigned)"),
		basic("bgeu t1, t2, label", Format_Branch, "ttttttt sssss fffff 111 ttttt 1100011", "Branch if greater than or equal (unsigned)"),

		basic("lb t1, -100(t2)", Format_Normal, "ssssssssssss ttttt 000 fffff 0000011", "Load byte: set t1 to the sign extended byte at t2 + immediate"),
		basic("lh t1, -100(t2)", Format_Normal, "ssssssssssss ttttt 001 fffff 0000011", "Load halfword: set t1 to the sign extended halfword at t2 + immediate"),
		basic("lw t1, -100(t2)", Format_Normal, "ssssssssssss ttttt 010 fffff 0000011", "Load word: set t1 to the word at t2 + immediate"),
		basic("lbu t1, -100(t2)", Format_Normal, "ssssssssssss ttttt 100 fffff 0000011", "Load byte unsigned: set t1 to the zero extended byte at t2 + immediate"),
		basic("lhu t1, -100(t2)", Format_Normal, "ssssssssssss ttttt 101 fffff 0000011", "Load halfword unsigned: set t1 to the zero extended halfword at t2 + immediate"),
		basic("sb t1, -100(t2)", Format_Normal, "sssssss fffff ttttt 000 sssss 0100011", "Store byte: store the low byte of t1 at t2 + immediate"),
		basic("sh t1, -100(t2)", Format_Normal, "sssssss fffff ttttt 001 sssss 0100011", "Store halfword: store the low halfword of t1 at t2 + immediate"),
		basic("sw t1, -100(t2)", Format_Normal, "sssssss fffff ttttt 010 sssss 0100011", "Store word: store t1 at t2 + immediate"),

		basic("addi t1, t2, -100", Format_Normal, "tttttttttttt sssss 000 fffff 0010011", "Add immediate: set t1 to t2 + immediate"),
		basic("slti t1, t2, -100", Format_Normal, "tttttttttttt sssss 010 fffff 0010011", "Set less than immediate: set t1 to 1 if t2 < immediate (signed), 0 otherwise"),
		basic("sltiu t1, t2, -100", Format_Normal, "tttttttttttt sssss 011 fffff 0010011", "Set less than immediate unsigned: set t1 to 1 if t2 < immediate (unsigned), 0 otherwise"),
		basic("xori t1, t2, -100", Format_Normal, "tttttttttttt sssss 100 fffff 0010011", "Bitwise xor immediate"),
		basic("ori t1, t2, -100", Format_Normal, "tttttttttttt sssss 110 fffff 0010011", "Bitwise or immediate"),
		basic("andi t1, t2, -100", Format_Normal, "tttttttttttt sssss 111 fffff 0010011", "Bitwise and immediate"),
		basic("slli t1, t2, 10", Format_Normal, "0000000 ttttt sssss 001 fffff 0010011", "Shift left logical by the 5 bit immediate"),
		basic("srli t1, t2, 10", Format_Normal, "0000000 ttttt sssss 101 fffff 0010011", "Shift right logical by the 5 bit immediate"),
		basic("srai t1, t2, 10", Format_Normal, "0100000 ttttt sssss 101 fffff 0010011", "Shift right arithmetic by the 5 bit immediate"),

		basic("add t1, t2, t3", Format_Normal, "0000000 ttttt sssss 000 fffff 0110011", "Addition: set t1 to t2 + t3"),
		basic("sub t1, t2, t3", Format_Normal, "0100000 ttttt sssss 000 fffff 0110011", "Subtraction: set t1 to t2 - t3"),
		basic("sll t1, t2, t3", Format_Normal, "0000000 ttttt sssss 001 fffff 0110011", "Shift left logical by the low 5 bits of t3"),
		basic("slt t1, t2, t3", Format_Normal, "0000000 ttttt sssss 010 fffff 0110011", "Set less than: set t1 to 1 if t2 < t3 (signed), 0 otherwise"),
		basic("sltu t1, t2, t3", Format_Normal, "0000000 ttttt sssss 011 fffff 0110011", "Set less than unsigned: set t1 to 1 if t2 < t3 (unsigned), 0 otherwise"),
		basic("xor t1, t2, t3", Format_Normal, "0000000 ttttt sssss 100 fffff 0110011", "Bitwise xor"),
		basic("srl t1, t2, t3", Format_Normal, "0000000 ttttt sssss 101 fffff 0110011", "Shift right logical by the low 5 bits of t3"),
		basic("sra t1, t2, t3", Format_Normal, "0100000 ttttt sssss 101 fffff 0110011", "Shift right arithmetic by the low 5 bits of t3"),
		basic("or t1, t2, t3", Format_Normal, "0000000 ttttt sssss 110 fffff 0110011", "Bitwise or"),
		basic("and t1, t2, t3", Format_Normal, "0000000 ttttt sssss 111 fffff 0110011", "Bitwise and"),

		basic("fence 1, 1", Format_Normal, "0000 ffff ssss 00000 000 00000 0001111", "Order memory accesses: predecessor set, successor set"),
		basic("fence.i", Format_Normal, "0000 0000 0000 00000 001 00000 0001111", "Synchronize instruction and data streams"),
		basic("ecall", Format_Normal, "000000000000 00000 000 00000 1110011", "Issue a system call"),
		basic("ebreak", Format_Normal, "000000000001 00000 000 00000 1110011", "Pause execution and return control to the debugger"),
	}
}

// Zicsr control and status register instructions
func ControlAndStatusInstructions() []Instruction {
	return []Instruction{
		basic("csrrw t0, fcsr, t1", Format_Normal, "ssssssssssss ttttt 001 fffff 1110011", "Atomic read/write CSR: set t0 to the CSR, then write t1 into it"),
		basic("csrrs t0, fcsr, t1", Format_Normal, "ssssssssssss ttttt 010 fffff 1110011", "Atomic read and set CSR bits: set t0 to the CSR, then set the bits of t1 in it"),
		basic("csrrc t0, fcsr, t1", Format_Normal, "ssssssssssss ttttt 011 fffff 1110011", "Atomic read and clear CSR bits: set t0 to the CSR, then clear the bits of t1 in it"),
		basic("csrrwi t0, fcsr, 10", Format_Normal, "ssssssssssss ttttt 101 fffff 1110011", "Atomic read/write CSR immediate"),
		basic("csrrsi t0, fcsr, 10", Format_Normal, "ssssssssssss ttttt 110 fffff 1110011", "Atomic read and set CSR bits immediate"),
		basic("csrrci t0, fcsr, 10", Format_Normal, "ssssssssssss ttttt 111 fffff 1110011", "Atomic read and clear CSR bits immediate"),
	}
}

// RV32M multiplication and division instructions
func MultiplyInstructions() []Instruction {
	return []Instruction{
		basic("mul t1, t2, t3", Format_Normal, "0000001 ttttt sssss 000 fffff 0110011", "Multiplication: set t1 to the low 32 bits of t2 * t3"),
		basic("mulh t1, t2, t3", Format_Normal, "0000001 ttttt sssss 001 fffff 0110011", "Multiplication: set t1 to the high 32 bits of t2 * t3 (signed)"),
		basic("mulhsu t1, t2, t3", Format_Normal, "0000001 ttttt sssss 010 fffff 0110011", "Multiplication: set t1 to the high 32 bits of t2 * t3 (t2 signed, t3 unsigned)"),
		basic("mulhu t1, t2, t3", Format_Normal, "0000001 ttttt sssss 011 fffff 0110011", "Multiplication: set t1 to the high 32 bits of t2 * t3 (unsigned)"),
		basic("div t1, t2, t3", Format_Normal, "0000001 ttttt sssss 100 fffff 0110011", "Division: set t1 to t2 / t3 (signed)"),
		basic("divu t1, t2, t3", Format_Normal, "0000001 ttttt sssss 101 fffff 0110011", "Division: set t1 to t2 / t3 (unsigned)"),
		basic("rem t1, t2, t3", Format_Normal, "0000001 ttttt sssss 110 fffff 0110011", "Remainder: set t1 to t2 % t3 (signed)"),
		basic("remu t1, t2, t3", Format_Normal, "0000001 ttttt sssss 111 fffff 0110011", "Remainder: set t1 to t2 % t3 (unsigned)"),
	}
}

// RV32F single precision floating point instructions
func FloatingPointInstructions() []Instruction {
	return []Instruction{
		basic("flw f1, -100(t1)", Format_Normal, "ssssssssssss ttttt 010 fffff 0000111", "Load a single precision value from t1 + immediate"),
		basic("fsw f1, -100(t1)", Format_Normal, "sssssss fffff ttttt 010 sssss 0100111", "Store a single precision value at t1 + immediate"),

		basic("fmadd.s f1, f2, f3, f4, dyn", Format_Normal, "qqqqq 00 ttttt sssss ppp fffff 1000011", "Fused multiply add: set f1 to f2 * f3 + f4"),
		basic("fmsub.s f1, f2, f3, f4, dyn", Format_Normal, "qqqqq 00 ttttt sssss ppp fffff 1000111", "Fused multiply subtract: set f1 to f2 * f3 - f4"),
		basic("fnmsub.s f1, f2, f3, f4, dyn", Format_Normal, "qqqqq 00 ttttt sssss ppp fffff 1001011", "Fused negated multiply subtract: set f1 to -(f2 * f3) + f4"),
		basic("fnmadd.s f1, f2, f3, f4, dyn", Format_Normal, "qqqqq 00 ttttt sssss ppp fffff 1001111", "Fused negated multiply add: set f1 to -(f2 * f3) - f4"),

		basic("fadd.s f1, f2, f3, dyn", Format_Normal, "0000000 ttttt sssss qqq fffff 1010011", "Floating add: set f1 to f2 + f3"),
		basic("fsub.s f1, f2, f3, dyn", Format_Normal, "0000100 ttttt sssss qqq fffff 1010011", "Floating subtract: set f1 to f2 - f3"),
		basic("fmul.s f1, f2, f3, dyn", Format_Normal, "0001000 ttttt sssss qqq fffff 1010011", "Floating multiply: set f1 to f2 * f3"),
		basic("fdiv.s f1, f2, f3, dyn", Format_Normal, "0001100 ttttt sssss qqq fffff 1010011", "Floating divide: set f1 to f2 / f3"),
		basic("fsqrt.s f1, f2, dyn", Format_Normal, "0101100 00000 sssss ttt fffff 1010011", "Floating square root: set f1 to the square root of f2"),

		basic("fsgnj.s f1, f2, f3", Format_Normal, "0010000 ttttt sssss 000 fffff 1010011", "Set f1 to f2 with the sign of f3"),
		basic("fsgnjn.s f1, f2, f3", Format_Normal, "0010000 ttttt sssss 001 fffff 1010011", "Set f1 to f2 with the opposite sign of f3"),
		basic("fsgnjx.s f1, f2, f3", Format_Normal, "0010000 ttttt sssss 010 fffff 1010011", "Set f1 to f2 with the sign of f2 xor the sign of f3"),
		basic("fmin.s f1, f2, f3", Format_Normal, "0010100 ttttt sssss 000 fffff 1010011", "Floating minimum"),
		basic("fmax.s f1, f2, f3", Format_Normal, "0010100 ttttt sssss 001 fffff 1010011", "Floating maximum"),

		basic("fcvt.w.s t1, f1, dyn", Format_Normal, "1100000 00000 sssss ttt fffff 1010011", "Convert a float to a signed integer"),
		basic("fcvt.wu.s t1, f1, dyn", Format_Normal, "1100000 00001 sssss ttt fffff 1010011", "Convert a float to an unsigned integer"),
		basic("fmv.x.w t1, f1", Format_Normal, "1110000 00000 sssss 000 fffff 1010011", "Move the bits of a float into an integer register"),
		basic("fclass.s t1, f1", Format_Normal, "1110000 00000 sssss 001 fffff 1010011", "Classify a float: set one bit of t1 depending on the class of f1"),
		basic("feq.s t1, f1, f2", Format_Normal, "1010000 ttttt sssss 010 fffff 1010011", "Set t1 to 1 if f1 == f2, 0 otherwise"),
		basic("flt.s t1, f1, f2", Format_Normal, "1010000 ttttt sssss 001 fffff 1010011", "Set t1 to 1 if f1 < f2, 0 otherwise"),
		basic("fle.s t1, f1, f2", Format_Normal, "1010000 ttttt sssss 000 fffff 1010011", "Set t1 to 1 if f1 <= f2, 0 otherwise"),
		basic("fcvt.s.w f1, t1, dyn", Format_Normal, "1101000 00000 sssss ttt fffff 1010011", "Convert a signed integer to a float"),
		basic("fcvt.s.wu f1, t1, dyn", Format_Normal, "1101000 00001 sssss ttt fffff 1010011", "Convert an unsigned integer to a float"),
		basic("fmv.w.x f1, t1", Format_Normal, "1111000 00000 sssss 000 fffff 1010011", "Move the bits of an integer register into a float"),
	}
}

// Common pseudo instructions. They document the syntax the assembler accepts but
// never reach machine word synthesis by themselves
func PseudoInstructions() []Instruction {
	return []Instruction{
		pseudo("nop", "No operation", "addi x0, x0, 0"),
		pseudo("mv t1, t2", "Copy t2 into t1", "addi t1, t2, 0"),
		pseudo("not t1, t2", "Bitwise not", "xori t1, t2, -1"),
		pseudo("neg t1, t2", "Two's complement negation", "sub t1, x0, t2"),
		pseudo("li t1, -100", "Load a 12 bit immediate", "addi t1, x0, -100"),
		pseudo("li t1, 1000000000", "Load a 32 bit immediate", "lui t1, upper", "addi t1, t1, lower"),
		pseudo("la t1, label", "Load the address of a label", "auipc t1, upper", "addi t1, t1, lower"),
		pseudo("j label", "Jump to label", "jal x0, label"),
		pseudo("jal label", "Jump to label and link into ra", "jal ra, label"),
		pseudo("jr t1", "Jump to the address in t1", "jalr x0, 0(t1)"),
		pseudo("ret", "Return from a subroutine", "jalr x0, 0(ra)"),
		pseudo("call label", "Call a far subroutine", "auipc ra, upper", "jalr ra, lower(ra)"),
		pseudo("beqz t1, label", "Branch if t1 is zero", "beq t1, x0, label"),
		pseudo("bnez t1, label", "Branch if t1 is not zero", "bne t1, x0, label"),
		pseudo("fadd.s f1, f2, f3", "Floating add with the dynamic rounding mode", "fadd.s f1, f2, f3, dyn"),
		pseudo("csrr t1, fcsr", "Read a CSR", "csrrs t1, fcsr, x0"),
		pseudo("csrw fcsr, t1", "Write a CSR", "csrrw x0, fcsr, t1"),
	}
}

// Returns the complete RV32IMF + Zicsr instruction set, pseudo instructions included
func AllInstructions() []Instruction {
	var all []Instruction
	all = append(all, BaseIntegerInstructions()...)
	all = append(all, ControlAndStatusInstructions()...)
	all = append(all, MultiplyInstructions()...)
	all = append(all, FloatingPointInstructions()...)
	all = append(all, PseudoInstructions()...)
	return all
}

// Default instruction catalogue
var Instructions = NewInstructionsDescriptor(AllInstructions())
