package render

import "strings"

type ElementKind uint

const (
	// Literal text
	Element_Text ElementKind = iota
	// Number displayed in the address base
	Element_Address
	// Number displayed in the value base
	Element_Value
	// Narrow number (5 bits or less) always displayed in decimal
	Element_ShortValue
)

func (k ElementKind) String() string {
	switch k {
	case Element_Text:
		return "text"
	case Element_Address:
		return "address"
	case Element_Value:
		return "value"
	case Element_ShortValue:
		return "short value"
	}

	panic("unreachable")
}

// One unit of deferred output
type Element struct {
	Kind ElementKind

	// Text of Element_Text elements
	Text string

	// Number of numeric elements
	Value int32
}

// Returns the element text under the given display settings
func (e Element) Render(config DisplayConfig) string {
	switch e.Kind {
	case Element_Text:
		return e.Text
	case Element_Address:
		return FormatNumber(e.Value, config.AddressBase)
	case Element_Value:
		return FormatNumber(e.Value, config.ValueBase)
	case Element_ShortValue:
		return FormatNumber(e.Value, Base_Decimal)
	}

	panic("unreachable")
}

// Decorates the rendered text of the i-th element of a list
type Style func(i int, element Element, text string) string

// Sequence of display elements whose numbers are formatted when rendered, so that
// the same list can be displayed under different settings
type ElementList struct {
	elements []Element
}

func (l *ElementList) AddText(text string) {
	l.elements = append(l.elements, Element{Kind: Element_Text, Text: text})
}

func (l *ElementList) AddAddress(address int32) {
	l.elements = append(l.elements, Element{Kind: Element_Address, Value: address})
}

func (l *ElementList) AddValue(value int32) {
	l.elements = append(l.elements, Element{Kind: Element_Value, Value: value})
}

func (l *ElementList) AddShortValue(value int32) {
	l.elements = append(l.elements, Element{Kind: Element_ShortValue, Value: value})
}

// Returns the elements of the list, in order
func (l *ElementList) Elements() []Element {
	return l.elements
}

// Returns the number of elements in the list
func (l *ElementList) Len() int {
	return len(l.elements)
}

// Renders the list under the given display settings
func (l *ElementList) Render(config DisplayConfig) string {
	return l.RenderStyled(config, nil)
}

// Renders the list under the given display settings, decorating each element
// with the given style. A nil style renders plain text
func (l *ElementList) RenderStyled(config DisplayConfig, style Style) string {
	var builder strings.Builder

	for i, element := range l.elements {
		text := element.Render(config)

		if style != nil {
			text = style(i, element, text)
		}

		builder.WriteString(text)
	}

	return builder.String()
}

func (l *ElementList) String() string {
	return l.Render(DisplayConfig{})
}
