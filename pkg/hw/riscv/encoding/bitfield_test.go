package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sltTemplate    = "0000000tttttsssss010fffff0110011"
	branchTemplate = "tttttttsssssfffff000ttttt1100011"
	jumpTemplate   = "ssssssssssssssssssssfffff1101111"
)

func TestExtract_ContiguousField(t *testing.T) {
	// slt x14, x1, x2
	word := int32(0x0020A733)

	assert.Equal(t, int32(14), Extract(sltTemplate, 'f', word))
	assert.Equal(t, int32(1), Extract(sltTemplate, 's', word))
	assert.Equal(t, int32(2), Extract(sltTemplate, 't', word))
}

func TestExtract_SplitFieldFollowsTemplateOrder(t *testing.T) {
	// beq x1, x2, -4: the 't' field is imm[12|10:5] followed by imm[4:1|11]
	word := asWord(0xFE208EE3)

	assert.Equal(t, int32(0xFFD), Extract(branchTemplate, 't', word))
	assert.Equal(t, int32(1), Extract(branchTemplate, 'f', word))
	assert.Equal(t, int32(2), Extract(branchTemplate, 's', word))
}

func TestExtract_MissingMarkerReturnsZero(t *testing.T) {
	assert.Equal(t, int32(0), Extract(sltTemplate, 'q', -1))
}

func TestInsert_ScattersMostSignificantBitFirst(t *testing.T) {
	result, err := Insert(branchTemplate, 't', 0xFFD)
	require.NoError(t, err)
	assert.Equal(t, "1111111sssssfffff00011101"+"1100011", result)
}

func TestInsert_TruncatesToFieldWidth(t *testing.T) {
	result, err := Insert(sltTemplate, 'f', 0x3F)
	require.NoError(t, err)
	assert.Equal(t, "0000000tttttsssss01011111"+"0110011", result)

	result, err = Insert(sltTemplate, 'f', -1)
	require.NoError(t, err)
	assert.Equal(t, int32(31), Extract(sltTemplate, 'f', mustWord(t, mustResolve(t, result))))
}

func TestInsert_MissingMarkerFails(t *testing.T) {
	result, err := Insert(sltTemplate, 'p', 3)
	assert.ErrorIs(t, err, ErrMarkerNotFound)
	assert.Equal(t, sltTemplate, result)
}

func TestExtractInsert_InverseLaw(t *testing.T) {
	templates := []string{
		sltTemplate,
		branchTemplate,
		jumpTemplate,
		"qqqqqttttt01sssss1pppppfffff0010",
		"f0s0t0q0p0fffffff0000000000sssss",
	}

	values := []int32{0, 1, -1, 2, 5, 31, -32, 0x7FF, -2048, 0x55555555, -0x55555556, 0x7FFFFFFF, -0x80000000}

	for _, template := range templates {
		for i := 0; i < MaxOperands; i++ {
			marker := OperandMarker(i)
			width := FieldWidth(template, marker)

			if width == 0 {
				continue
			}

			for _, value := range values {
				inserted, err := Insert(template, marker, value)
				require.NoError(t, err)

				// Resolve every other marker so the template parses into a word
				word := mustWord(t, mustResolve(t, inserted))
				mask := uint32(1)<<width - 1
				if width == WordBits {
					mask = ^uint32(0)
				}

				assert.Equal(t, int32(uint32(value)&mask), Extract(template, marker, word),
					"template %v marker %c value %v", template, marker, value)
			}
		}
	}
}

func TestOperandCount(t *testing.T) {
	assert.Equal(t, 3, OperandCount(sltTemplate))
	assert.Equal(t, 2, OperandCount(jumpTemplate))
	assert.Equal(t, 0, OperandCount("00000000000000000000000001110011"))
	assert.Equal(t, 4, OperandCount("0000000tttttsssssqqqfffff1010011"))
}

func TestParseWord(t *testing.T) {
	word, err := ParseWord("11111110001000001000111011100011")
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFE208EE3), uint32(word))

	_, err = ParseWord(sltTemplate)
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	_, err = ParseWord("0101")
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestFormatWord(t *testing.T) {
	assert.Equal(t, "00000000001000001010011100110011", FormatWord(0x0020A733))
	assert.Equal(t, "11111111111111111111111111111111", FormatWord(-1))
}

func TestLiteralBits(t *testing.T) {
	mask, match := LiteralBits(sltTemplate)
	assert.Equal(t, uint32(0xFE00707F), mask)
	assert.Equal(t, uint32(0x00002033), match)

	assert.Equal(t, match, uint32(0x0020A733)&mask)
}

// Replaces every marker left in the template with '0'
func mustResolve(t *testing.T, template string) string {
	t.Helper()

	result := []byte(template)
	for i := range result {
		if IsMarker(result[i]) {
			result[i] = '0'
		}
	}

	return string(result)
}

func mustWord(t *testing.T, bits string) int32 {
	t.Helper()

	word, err := ParseWord(bits)
	require.NoError(t, err)
	return word
}

func asWord(bits uint32) int32 {
	return int32(bits)
}
