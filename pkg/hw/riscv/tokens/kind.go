package tokens

// Token classes produced by the tokenizer
type Kind uint

const (
	// Instruction mnemonic
	Kind_Operator Kind = iota
	// General purpose register, either by number (x5) or ABI name (t0)
	Kind_Register
	// Floating point register (f1, fa0)
	Kind_FloatingPointRegister
	// Control and status register name (fcsr)
	Kind_ControlAndStatusRegister
	// Floating point rounding mode mnemonic (rne, dyn)
	Kind_RoundingMode
	// Symbol reference (labels)
	Kind_Identifier
	// Numeric literal
	Kind_Integer
	Kind_LeftParen
	Kind_RightParen
)

func (k Kind) String() string {
	switch k {
	case Kind_Operator:
		return "operator"
	case Kind_Register:
		return "register"
	case Kind_FloatingPointRegister:
		return "floating point register"
	case Kind_ControlAndStatusRegister:
		return "control and status register"
	case Kind_RoundingMode:
		return "rounding mode"
	case Kind_Identifier:
		return "identifier"
	case Kind_Integer:
		return "integer"
	case Kind_LeftParen:
		return "left paren"
	case Kind_RightParen:
		return "right paren"
	}

	panic("unreachable")
}

// Returns true for both parenthesis kinds
func (k Kind) IsParen() bool {
	return k == Kind_LeftParen || k == Kind_RightParen
}

// Width class of an integer literal: the narrowest operand field the literal fits in
type IntegerWidth uint

const (
	// Unsigned 5 bit (shift amounts, register numbers): [0, 31]
	Width5 IntegerWidth = iota
	// Unsigned 6 bit: [0, 63]
	Width6
	// Signed 12 bit: [-2048, 2047]
	Width12
	// Unsigned 12 bit (CSR numbers): [0, 4095]
	Width12U
	// 20 bit, either signed or unsigned: [-524288, 1048575]
	Width20
	// Anything else representable in 32 bits
	Width32
)

var integerWidths = []IntegerWidth{Width5, Width6, Width12, Width12U, Width20, Width32}

// Returns the inclusive range of values of the width class
func (w IntegerWidth) Range() (min int64, max int64) {
	switch w {
	case Width5:
		return 0, 31
	case Width6:
		return 0, 63
	case Width12:
		return -2048, 2047
	case Width12U:
		return 0, 4095
	case Width20:
		return -524288, 1048575
	case Width32:
		return -2147483648, 4294967295
	}

	panic("unreachable")
}

// Returns true if the value can be written as a literal of this width class
func (w IntegerWidth) Contains(value int64) bool {
	min, max := w.Range()
	return value >= min && value <= max
}

func (w IntegerWidth) String() string {
	switch w {
	case Width5:
		return "5 bit"
	case Width6:
		return "6 bit"
	case Width12:
		return "12 bit"
	case Width12U:
		return "12 bit unsigned"
	case Width20:
		return "20 bit"
	case Width32:
		return "32 bit"
	}

	panic("unreachable")
}

// Returns the narrowest width class containing the value. Second return value is
// false if the value does not fit in 32 bits
func WidthOf(value int64) (IntegerWidth, bool) {
	for _, width := range integerWidths {
		if width.Contains(value) {
			return width, true
		}
	}

	return Width32, false
}
