package tokens

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/registers"
	"github.com/Manu343726/rvasm/pkg/utils"
)

// Rounding mode mnemonics and their encodings in the rm instruction field
var RoundingModes = map[string]int32{
	"rne": 0,
	"rtz": 1,
	"rdn": 2,
	"rup": 3,
	"rmm": 4,
	"dyn": 7,
}

var ErrInvalidToken = errors.New("invalid token")

// Splits assembly lines into classified tokens. Only instruction statements are
// supported: one mnemonic followed by comma separated operands, where memory
// operands can use the offset(register) syntax. Anything after a '#' is a comment
type Tokenizer struct {
	Registers *registers.Tables
}

// Returns a tokenizer classifying register names with the given register tables
func NewTokenizer(tables *registers.Tables) *Tokenizer {
	return &Tokenizer{
		Registers: tables,
	}
}

// Tokenizes a line with the default RISC-V register tables
func Tokenize(line string, lineNumber int) (List, error) {
	return NewTokenizer(registers.Default).Tokenize(line, lineNumber)
}

type rawToken struct {
	text   string
	column int
}

func isSeparator(r byte) bool {
	return r == ',' || r == ' ' || r == '\t'
}

func split(line string) []rawToken {
	var result []rawToken
	begin := -1

	flush := func(end int) {
		if begin >= 0 {
			result = append(result, rawToken{text: line[begin:end], column: begin + 1})
			begin = -1
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case c == '#':
			flush(i)
			return result
		case isSeparator(c):
			flush(i)
		case c == '(' || c == ')':
			flush(i)
			result = append(result, rawToken{text: string(c), column: i + 1})
		default:
			if begin < 0 {
				begin = i
			}
		}
	}

	flush(len(line))
	return result
}

// Parses a numeric literal in decimal, hexadecimal (0x) or binary (0b) notation.
// Hexadecimal and binary literals are read as raw 32 bit patterns
func ParseInteger(text string) (int64, bool) {
	negative := false
	digits := text

	if rest, found := strings.CutPrefix(digits, "-"); found {
		negative = true
		digits = rest
	} else if rest, found := strings.CutPrefix(digits, "+"); found {
		digits = rest
	}

	base := 10
	lower := strings.ToLower(digits)

	if rest, found := strings.CutPrefix(lower, "0x"); found {
		base = 16
		digits = rest
	} else if rest, found := strings.CutPrefix(lower, "0b"); found {
		base = 2
		digits = rest
	}

	if len(digits) == 0 {
		return 0, false
	}

	value, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, false
	}

	result := int64(value)

	if base != 10 {
		result = int64(int32(uint32(value)))
	}

	if negative {
		result = -result
	}

	return result, true
}

func isIdentifier(text string) bool {
	for i, r := range text {
		valid := r == '_' || r == '.' || r == '$' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r))

		if !valid {
			return false
		}
	}

	return len(text) > 0
}

func (t *Tokenizer) classify(raw rawToken, lineNumber int, first bool) (Token, error) {
	token := Token{
		Text:   raw.text,
		Line:   lineNumber,
		Column: raw.column,
	}

	switch {
	case raw.text == "(":
		token.Kind = Kind_LeftParen
	case raw.text == ")":
		token.Kind = Kind_RightParen
	case first:
		if !isIdentifier(raw.text) {
			return token, utils.MakeError(ErrInvalidToken, "line %v column %v: '%v' is not a valid mnemonic", lineNumber, raw.column, raw.text)
		}

		token.Kind = Kind_Operator
	default:
		if _, isRoundingMode := RoundingModes[raw.text]; isRoundingMode {
			token.Kind = Kind_RoundingMode
		} else if _, err := t.Registers.General(raw.text); err == nil {
			token.Kind = Kind_Register
		} else if _, err := t.Registers.FloatingPoint(raw.text); err == nil {
			token.Kind = Kind_FloatingPointRegister
		} else if _, err := t.Registers.ControlAndStatus(raw.text); err == nil {
			token.Kind = Kind_ControlAndStatusRegister
		} else if value, isInteger := ParseInteger(raw.text); isInteger {
			width, fits := WidthOf(value)

			if !fits {
				return token, utils.MakeError(ErrInvalidToken, "line %v column %v: '%v' does not fit in 32 bits", lineNumber, raw.column, raw.text)
			}

			token.Kind = Kind_Integer
			token.Value = int32(value)
			token.Width = width
		} else if isIdentifier(raw.text) {
			token.Kind = Kind_Identifier
		} else {
			return token, utils.MakeError(ErrInvalidToken, "line %v column %v: unrecognized token '%v'", lineNumber, raw.column, raw.text)
		}
	}

	return token, nil
}

// Splits a source line into tokens. Commas are separators and never produce a token
func (t *Tokenizer) Tokenize(line string, lineNumber int) (List, error) {
	raw := split(line)
	result := make(List, 0, len(raw))

	for i, rawToken := range raw {
		token, err := t.classify(rawToken, lineNumber, i == 0)

		if err != nil {
			return nil, err
		}

		result = append(result, token)
	}

	return result, nil
}
