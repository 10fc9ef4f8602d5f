package render

import (
	"fmt"
	"strconv"
)

// Numeric base used to display numbers
type Base uint

const (
	Base_Decimal Base = iota
	Base_Hexadecimal
)

func (b Base) String() string {
	switch b {
	case Base_Decimal:
		return "decimal"
	case Base_Hexadecimal:
		return "hexadecimal"
	}

	panic("unreachable")
}

// Display settings read at render time
type DisplayConfig struct {
	// Base of addresses
	AddressBase Base

	// Base of any other number, except short values which are always decimal
	ValueBase Base
}

// Returns the display configuration of the given base flags
func NewDisplayConfig(hexAddresses bool, hexValues bool) DisplayConfig {
	config := DisplayConfig{}

	if hexAddresses {
		config.AddressBase = Base_Hexadecimal
	}

	if hexValues {
		config.ValueBase = Base_Hexadecimal
	}

	return config
}

// Formats a 32 bit value. Decimal values are signed, hexadecimal values are the
// full 32 bit pattern ("0x" followed by 8 digits)
func FormatNumber(value int32, base Base) string {
	switch base {
	case Base_Decimal:
		return strconv.Itoa(int(value))
	case Base_Hexadecimal:
		return fmt.Sprintf("0x%08x", uint32(value))
	}

	panic("unreachable")
}
