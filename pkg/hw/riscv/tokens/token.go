package tokens

import (
	"fmt"
	"strings"
)

// A classified piece of an assembly source line
type Token struct {
	Kind Kind

	// Source text of the token
	Text string

	// Numeric value of integer tokens. Zero for any other kind
	Value int32

	// Width class of integer tokens
	Width IntegerWidth

	// Source line number (starting from 1)
	Line int

	// Source column (starting from 1)
	Column int
}

func (t Token) String() string {
	return t.Text
}

// Returns a debug representation of the token including its classification
func (t Token) Describe() string {
	if t.Kind == Kind_Integer {
		return fmt.Sprintf("%v (%v %v)", t.Text, t.Width, t.Kind)
	}

	return fmt.Sprintf("%v (%v)", t.Text, t.Kind)
}

// Ordered sequence of tokens of one statement
type List []Token

// Returns the number of tokens that are not parenthesis
func (l List) OperandCount() int {
	count := 0

	for _, token := range l {
		if !token.Kind.IsParen() {
			count++
		}
	}

	return count
}

// Returns the source text of the tokens, with a space after the operator and
// commas between operands
func (l List) String() string {
	var builder strings.Builder

	for i, token := range l {
		builder.WriteString(token.Text)

		if token.Kind == Kind_Operator {
			builder.WriteString(" ")
		} else if i < len(l)-1 && !token.Kind.IsParen() && !l[i+1].Kind.IsParen() {
			builder.WriteString(", ")
		}
	}

	return strings.TrimSpace(builder.String())
}
