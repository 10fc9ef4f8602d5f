package utils

import (
	"fmt"
	"strconv"
)

// Formats an uint value into a fixed width binary string of n bits
func FormatUintBinary(value uint64, bits int) string {
	leadingZerosFormat := "%0" + fmt.Sprint(bits) + "s"
	return fmt.Sprintf(leadingZerosFormat, strconv.FormatUint(value, 2))
}

// Splits a string into consecutive chunks of the given widths. The last chunk
// takes whatever is left of the string
func SplitWidths(input string, widths ...int) []string {
	chunks := make([]string, 0, len(widths)+1)

	for _, width := range widths {
		if width > len(input) {
			width = len(input)
		}

		chunks = append(chunks, input[:width])
		input = input[width:]
	}

	if len(input) > 0 {
		chunks = append(chunks, input)
	}

	return chunks
}
