package instructions

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/encoding"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/tokens"
	"github.com/Manu343726/rvasm/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asWord(word uint32) int32 {
	return int32(word)
}

func match(t *testing.T, statement string) (Instruction, error) {
	list, err := tokens.Tokenize(statement, 1)
	require.NoError(t, err)
	return Instructions.Match(list)
}

func TestInstructions_CatalogueIsConsistent(t *testing.T) {
	require.NotEmpty(t, Instructions.BasicInstructions())

	for _, instr := range Instructions.BasicInstructions() {
		assert.Len(t, instr.Template, encoding.WordBits, instr.Example)
		assert.Equal(t, encoding.OperandCount(instr.Template), instr.OperandCount(), instr.Example)
		assert.Equal(t, len(instr.Operands.Operands()), instr.OperandCount(), instr.Example)
		assert.LessOrEqual(t, instr.OperandCount(), encoding.MaxOperands, instr.Example)

		if relative := instr.Format.RelativeOperand(); relative >= 0 {
			assert.Equal(t, relative+1, instr.OperandCount(), instr.Example)
		}
	}
}

func TestInstructions_EveryBasicInstructionIsReachableByBinaryCode(t *testing.T) {
	for _, instr := range Instructions.BasicInstructions() {
		found, ok := Instructions.FindByBinaryCode(int32(instr.match))

		require.True(t, ok, instr.Example)
		assert.Same(t, instr, found, "%v is shadowed by %v", instr.Example, found.Example)
	}
}

func TestInstructions_EveryBasicInstructionMatchesItsExample(t *testing.T) {
	for _, instr := range Instructions.BasicInstructions() {
		found, err := match(t, instr.Example)

		require.NoError(t, err, instr.Example)
		assert.Same(t, instr, found, instr.Example)
	}
}

func TestInstructions_FindByBinaryCode(t *testing.T) {
	cases := map[uint32]string{
		0x0020A733: "slt",
		0xFE208EE3: "beq",
		0x00000073: "ecall",
		0x00100073: "ebreak",
		0x008000EF: "jal",
		0x00A28293: "addi",
		0x0000100F: "fence.i",
		0x003110F3: "csrrw",
		0x203100C3: "fmadd.s",
	}

	for word, mnemonic := range cases {
		instr, found := Instructions.FindByBinaryCode(asWord(word))

		require.True(t, found, "%08x", word)
		assert.Equal(t, mnemonic, instr.Name(), "%08x", word)
	}

	_, found := Instructions.FindByBinaryCode(0)
	assert.False(t, found)

	_, found = Instructions.FindByBinaryCode(-1)
	assert.False(t, found)
}

func TestInstructions_FindByMnemonic(t *testing.T) {
	instr, err := match(t, "addi t0, t1, 5")
	require.NoError(t, err)
	assert.IsType(t, &BasicInstruction{}, instr)
	assert.Equal(t, "addi", instr.Name())

	instr, err = match(t, "nop")
	require.NoError(t, err)
	assert.IsType(t, &PseudoInstruction{}, instr)

	instr, err = match(t, "fadd.s f1, f2, f3")
	require.NoError(t, err)
	assert.IsType(t, &PseudoInstruction{}, instr)

	instr, err = match(t, "fadd.s f1, f2, f3, rne")
	require.NoError(t, err)
	assert.IsType(t, &BasicInstruction{}, instr)

	instr, err = match(t, "jal label")
	require.NoError(t, err)
	assert.IsType(t, &PseudoInstruction{}, instr)

	instr, err = match(t, "csrrw t0, 3, t1")
	require.NoError(t, err)
	assert.Equal(t, "csrrw", instr.Name())

	instr, err = match(t, "lw a0, 8(sp)")
	require.NoError(t, err)
	assert.Equal(t, "lw", instr.Name())
}

func TestInstructions_FindByMnemonicErrors(t *testing.T) {
	_, err := match(t, "frobnicate t0")
	assert.ErrorIs(t, err, ErrUnknownMnemonic)

	_, err = match(t, "add t0, t1, 5")
	assert.ErrorIs(t, err, ErrOperandsMismatch)

	_, err = match(t, "addi t0, t1, 5000")
	assert.ErrorIs(t, err, ErrOperandsMismatch)

	_, err = match(t, "beq t0, t1, 16")
	assert.ErrorIs(t, err, ErrOperandsMismatch)

	_, err = Instructions.Match(nil)
	assert.ErrorIs(t, err, ErrUnknownMnemonic)
}

func TestSyntax_SlotKinds(t *testing.T) {
	mnemonic, syntax, err := ParseSyntax("lw t1, -100(t2)")
	require.NoError(t, err)

	assert.Equal(t, "lw", mnemonic)
	assert.Equal(t, []SlotKind{Slot_Register, Slot_Immediate12, Slot_LeftParen, Slot_Register, Slot_RightParen}, utils.Map(syntax, func(s Slot) SlotKind { return s.Kind }))
	assert.Equal(t, 3, syntax.OperandCount())

	_, syntax, err = ParseSyntax("fadd.s f1, f2, f3, dyn")
	require.NoError(t, err)
	assert.Equal(t, []SlotKind{Slot_FloatingPointRegister, Slot_FloatingPointRegister, Slot_FloatingPointRegister, Slot_RoundingMode}, utils.Map(syntax, func(s Slot) SlotKind { return s.Kind }))

	_, syntax, err = ParseSyntax("csrrwi t0, fcsr, 10")
	require.NoError(t, err)
	assert.Equal(t, []SlotKind{Slot_Register, Slot_Other, Slot_Other}, utils.Map(syntax, func(s Slot) SlotKind { return s.Kind }))

	_, _, err = ParseSyntax("")
	assert.ErrorIs(t, err, ErrInvalidSyntax)
}

func TestNewBasicInstruction_InvalidDefinitions(t *testing.T) {
	cases := map[string]struct {
		example  string
		format   Format
		template string
	}{
		"short template":       {"add t1, t2, t3", Format_Normal, "0000000 ttttt sssss 000 fffff 011001"},
		"invalid character":    {"add t1, t2, t3", Format_Normal, "0000000 ttttt sssss 000 fffff 011001x"},
		"missing operand":      {"add t1, t2, t3", Format_Normal, "0000000 00000 sssss 000 fffff 0110011"},
		"extra operand":        {"add t1, t2", Format_Normal, "0000000 ttttt sssss 000 fffff 0110011"},
		"marker out of order":  {"add t1, t2", Format_Normal, "0000000 00000 ttttt 000 fffff 0110011"},
		"branch with 2 fields": {"jal t1, target", Format_Branch, "ssssssssssssssssssss fffff 1101111"},
	}

	for name, c := range cases {
		_, err := NewBasicInstruction(c.example, c.format, c.template, "")
		assert.ErrorIs(t, err, ErrInvalidDefinition, name)
	}
}

func TestBasicInstruction_Fields(t *testing.T) {
	instr, err := NewBasicInstruction("beq t1, t2, label", Format_Branch, "ttttttt sssss fffff 000 ttttt 1100011", "")
	require.NoError(t, err)

	assert.Equal(t, []utils.AsciiFrameField{
		{Name: "1100011", Begin: 0, Width: 7},
		{Name: "label[4:0]", Begin: 7, Width: 5},
		{Name: "000", Begin: 12, Width: 3},
		{Name: "t1", Begin: 15, Width: 5},
		{Name: "t2", Begin: 20, Width: 5},
		{Name: "label[11:5]", Begin: 25, Width: 7},
	}, instr.Fields())

	doc := instr.Documentation(0)
	assert.Contains(t, doc, "beq t1, t2, label (branch format)")
	assert.Contains(t, doc, "Memory layout")
	assert.Contains(t, doc, "label[11:5]")
}

func TestInstructionsDescriptor_Documentation(t *testing.T) {
	doc := Instructions.Documentation(2)

	assert.Contains(t, doc, "slt t1, t2, t3 (normal format)")
	assert.Contains(t, doc, "nop (pseudo instruction)")
	assert.Contains(t, doc, "addi x0, x0, 0")
}

func TestLoadCatalogue_RoundTrip(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, Instructions.WriteYAML(&buffer))

	loaded, err := LoadCatalogue(&buffer)
	require.NoError(t, err)

	require.Len(t, loaded.AllInstructions(), len(Instructions.AllInstructions()))

	for i, instr := range Instructions.BasicInstructions() {
		other := loaded.BasicInstructions()[i]

		assert.Equal(t, instr.Example, other.Example)
		assert.Equal(t, instr.Template, other.Template)
		assert.Equal(t, instr.Format, other.Format)
	}
}

func TestLoadCatalogue_Extend(t *testing.T) {
	extra, err := LoadCatalogue(strings.NewReader(`
instructions:
  - example: "czero.eqz t1, t2, t3"
    format: normal
    template: "0000111 ttttt sssss 101 fffff 0110011"
    description: Conditional zero
pseudo:
  - example: "seqz t1, t2"
    expansion: ["sltiu t1, t2, 1"]
`))
	require.NoError(t, err)

	extended := Instructions.Extend(extra)

	instr, found := extended.FindByBinaryCode(asWord(0x0E7352B3))
	require.True(t, found)
	assert.Equal(t, "czero.eqz", instr.Name())

	assert.Len(t, extended.Instructions("seqz"), 1)
	assert.Empty(t, Instructions.Instructions("seqz"))
}

func TestLoadCatalogue_Errors(t *testing.T) {
	inputs := []string{
		"instructions:\n  - example: \"add t1, t2, t3\"\n    format: sideways\n    template: \"0000000 ttttt sssss 000 fffff 0110011\"\n",
		"instructions:\n  - example: \"add t1, t2, t3\"\n    template: \"0000000\"\n",
		"instructions:\n  - example: \"add t1, t2, t3\"\n    opcode: 51\n",
		"instructions: [",
	}

	for _, input := range inputs {
		_, err := LoadCatalogue(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrInvalidCatalogue, input)
	}
}

func TestExtendWithFile(t *testing.T) {
	builtin, err := ExtendWithFile("")
	require.NoError(t, err)
	assert.Same(t, Instructions, builtin)

	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pseudo:\n  - example: \"seqz t1, t2\"\n    expansion: [\"sltiu t1, t2, 1\"]\n"), 0o644))

	extended, err := ExtendWithFile(path)
	require.NoError(t, err)
	assert.Len(t, extended.Instructions("seqz"), 1)
	assert.Len(t, extended.AllInstructions(), len(Instructions.AllInstructions())+1)

	require.NoError(t, os.WriteFile(path, []byte("instructions: ["), 0o644))
	_, err = ExtendWithFile(path)
	assert.ErrorIs(t, err, ErrInvalidCatalogue)

	_, err = ExtendWithFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
