package encoding

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Manu343726/rvasm/pkg/utils"
)

// Number of bits of a machine word, and characters of a template
const WordBits = 32

// Maximum number of operand fields a template can declare
const MaxOperands = 5

// Template markers of each operand position, first operand first
var operandMarkers = [MaxOperands]byte{'f', 's', 't', 'q', 'p'}

// Returns the template marker used by the i-th operand
func OperandMarker(i int) byte {
	return operandMarkers[i]
}

// Returns true if the character is a template marker (Not a literal bit)
func IsMarker(c byte) bool {
	return c != '0' && c != '1'
}

// Returns the operand position a marker stands for, or -1 if the character is
// not an operand marker
func MarkerOperand(c byte) int {
	for i, marker := range operandMarkers {
		if marker == c {
			return i
		}
	}

	return -1
}

var (
	ErrMarkerNotFound  = errors.New("marker not found in template")
	ErrInvalidTemplate = errors.New("invalid instruction template")
)

// Returns the number of bits the given marker occupies in the template
func FieldWidth(template string, marker byte) int {
	return strings.Count(template, string(marker))
}

// Returns the number of operand fields declared by the template. Operand
// markers are expected to be used in order, so the count stops at the first
// marker not present in the template
func OperandCount(template string) int {
	count := 0

	for count < MaxOperands && FieldWidth(template, OperandMarker(count)) > 0 {
		count++
	}

	return count
}

// Gathers the bits of the word at the template positions holding the marker.
// The leftmost marker position becomes the most significant bit of the result.
// Returns 0 if the marker is not in the template
func Extract(template string, marker byte, word int32) int32 {
	var out uint32

	for i := 0; i < len(template) && i < WordBits; i++ {
		if template[i] == marker {
			out = (out << 1) | ((uint32(word) >> (WordBits - 1 - i)) & 1)
		}
	}

	return int32(out)
}

// Scatters the two's complement representation of value over the template
// positions holding the marker, most significant bit first. The value is
// truncated to as many bits as marker positions there are.
//
// Returns ErrMarkerNotFound if the template has no such marker
func Insert(template string, marker byte, value int32) (string, error) {
	width := FieldWidth(template, marker)

	if width == 0 {
		return template, utils.MakeError(ErrMarkerNotFound, "'%c' in template %v", marker, template)
	}

	bits := utils.FormatUintBinary(uint64(uint32(value)&utils.AllOnes[uint32](width)), width)
	result := []byte(template)
	next := 0

	for i := range result {
		if result[i] == marker {
			result[i] = bits[next]
			next++
		}
	}

	return string(result), nil
}

// Parses a fully resolved template (32 characters, all of them '0' or '1') into
// a machine word
func ParseWord(bits string) (int32, error) {
	if len(bits) != WordBits {
		return 0, utils.MakeError(ErrInvalidTemplate, "%v is %v bits long, expected %v", bits, len(bits), WordBits)
	}

	word, err := strconv.ParseUint(bits, 2, WordBits)

	if err != nil {
		return 0, utils.MakeError(ErrInvalidTemplate, "%v has unresolved fields", bits)
	}

	return int32(uint32(word)), nil
}

// Formats a machine word as a 32 character bit string
func FormatWord(word int32) string {
	return utils.FormatUintBinary(uint64(uint32(word)), WordBits)
}

// Returns the mask of literal bits of a template and their values. A word
// matches the template when word&mask == match
func LiteralBits(template string) (mask uint32, match uint32) {
	for i := 0; i < len(template) && i < WordBits; i++ {
		bit := uint32(1) << (WordBits - 1 - i)

		switch template[i] {
		case '1':
			mask |= bit
			match |= bit
		case '0':
			mask |= bit
		}
	}

	return mask, match
}
