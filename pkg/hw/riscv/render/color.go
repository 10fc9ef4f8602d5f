package render

import (
	"strings"

	"github.com/fatih/color"
)

// Colors of each part of a rendered instruction
type Palette struct {
	Mnemonic    *color.Color
	Register    *color.Color
	Number      *color.Color
	Punctuation *color.Color
}

var DefaultPalette = Palette{
	Mnemonic:    color.New(color.FgYellow, color.Bold),
	Register:    color.New(color.FgGreen),
	Number:      color.New(color.FgCyan),
	Punctuation: color.New(color.FgWhite),
}

func isPunctuation(text string) bool {
	return strings.Trim(text, ",() ") == ""
}

// Returns a style coloring instructions rendered by the disassembler or the
// assembler: the first element is the mnemonic, other text elements are either
// punctuation or register names
func (p Palette) Style() Style {
	return func(i int, element Element, text string) string {
		switch {
		case element.Kind != Element_Text:
			return p.Number.Sprint(text)
		case i == 0:
			mnemonic := strings.TrimRight(text, " ")
			return p.Mnemonic.Sprint(mnemonic) + text[len(mnemonic):]
		case isPunctuation(text):
			return p.Punctuation.Sprint(text)
		default:
			return p.Register.Sprint(text)
		}
	}
}
