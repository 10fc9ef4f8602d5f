package statement

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/instructions"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/registers"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/render"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_UnsignedAddresses(t *testing.T) {
	at := func(address uint32) *Statement {
		return Decode(0, int32(address), instructions.Instructions)
	}

	statements := []*Statement{at(0xFFFF0000), at(0x80000000), at(0x00400000), at(0x7FFFFFFC)}
	SortByAddress(statements)

	addresses := make([]uint32, len(statements))
	for i, s := range statements {
		addresses[i] = uint32(s.Address())
	}

	assert.Equal(t, []uint32{0x00400000, 0x7FFFFFFC, 0x80000000, 0xFFFF0000}, addresses)

	for _, a := range statements {
		for _, b := range statements {
			assert.Equal(t, -Compare(b, a), a.Compare(b))
		}

		assert.Zero(t, Compare(a, a))
	}

	assert.Negative(t, Compare(at(0x7FFFFFFC), at(0x80000000)))
	assert.Positive(t, Compare(at(0xFFFFFFFC), at(0x00000000)))
}

func TestSymbols_ParentFallback(t *testing.T) {
	global := NewSymbols(nil)
	global.Define("main", 0x00400000)
	global.Define("shared", 1)

	local := NewSymbols(global)
	local.Define("shared", 2)

	address, err := local.Resolve("main", 3)
	require.NoError(t, err)
	assert.Equal(t, int32(0x00400000), address)

	address, err = local.Resolve("shared", 3)
	require.NoError(t, err)
	assert.Equal(t, int32(2), address)

	_, err = local.Resolve("missing", 3)
	assert.ErrorIs(t, err, ErrSymbolNotFound)

	assert.Equal(t, []string{"main", "shared"}, global.Names())
}

func TestErrorList(t *testing.T) {
	var errs ErrorList
	assert.False(t, errs.HasErrors())
	assert.NoError(t, errs.Err())

	errs.Add(&AssemblyError{File: "a.s", Line: 2, Column: 5, Message: "bad register", Err: ErrInvalidRegister})
	errs.Add(errors.New("plain"))

	require.Equal(t, 2, errs.Len())
	assert.True(t, errs.HasErrors())
	assert.Equal(t, "a.s:2:5: bad register", errs.Errors()[0].Error())
	assert.Equal(t, "<unknown>:0:0: plain", errs.Errors()[1].Error())
	assert.ErrorIs(t, errs.Err(), ErrInvalidRegister)
}

func TestAssembler_ContinuesAfterErrors(t *testing.T) {
	var logs bytes.Buffer
	assembler := &Assembler{
		Symbols:   testSymbols(),
		Registers: registers.Default,
		Logger:    slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}

	var errs ErrorList
	statements := assembler.Parse("prog.s", []string{
		"slt x14, x1, x2",
		"",
		"beq t0, t1, nowhere # unresolved",
		"bogus x1",
		"add x1, x2, x3",
		"nop",
	}, base, tokens.NewTokenizer(registers.Default), instructions.Instructions, &errs)

	require.Len(t, statements, 3)
	require.Equal(t, 2, errs.Len())
	assert.ErrorIs(t, errs.Errors()[0], instructions.ErrUnknownMnemonic)
	assert.Equal(t, 4, errs.Errors()[0].Line)
	assert.ErrorIs(t, errs.Errors()[1], ErrPseudoInstruction)
	assert.False(t, errs.Errors()[1].IsInternal())
	assert.Equal(t, 6, errs.Errors()[1].Line)

	assert.Equal(t, base, statements[0].Address())
	assert.Equal(t, base+4, statements[1].Address())
	assert.Equal(t, base+12, statements[2].Address())
	assert.Equal(t, 5, statements[2].Source().Line)

	encoded := assembler.Assemble(statements, &errs)

	assert.Equal(t, 2, encoded)
	require.Equal(t, 3, errs.Len())
	assert.ErrorIs(t, errs.Errors()[2], ErrUnresolvedSymbol)

	assert.Equal(t, State_Encoded, statements[0].State())
	assert.Equal(t, State_Raw, statements[1].State())
	assert.Equal(t, State_Encoded, statements[2].State())

	assert.Contains(t, logs.String(), "statement assembly failed")
	assert.Contains(t, logs.String(), "statement encoded")
}

func TestAssembler_LabelsAfterRejectedLine(t *testing.T) {
	symbols := NewSymbols(nil)
	symbols.Define("loop", 0x1004)

	assembler := &Assembler{Symbols: symbols, Registers: registers.Default}

	var errs ErrorList
	statements := assembler.Parse("loop.s", []string{
		"bogus x1",
		"add x1, x1, x1",
		"beq x0, x0, loop",
	}, 0x1000, tokens.NewTokenizer(registers.Default), instructions.Instructions, &errs)

	require.Len(t, statements, 2)
	assert.Equal(t, int32(0x1004), statements[0].Address())
	assert.Equal(t, int32(0x1008), statements[1].Address())

	assert.Equal(t, 2, assembler.Assemble(statements, &errs))
	assert.Equal(t, 1, errs.Len())
	assert.Equal(t, int32(-4), statements[1].Operand(2))
	assert.Equal(t, asWord(0xFE000EE3), statements[1].BinaryWord())
}

func TestAssembler_InvalidTokenTakesAnAddress(t *testing.T) {
	assembler := &Assembler{Symbols: testSymbols(), Registers: registers.Default}

	var errs ErrorList
	statements := assembler.Parse("bad.s", []string{
		"add x1, x2, @",
		"# comment only",
		"add x1, x2, x3",
	}, base, tokens.NewTokenizer(registers.Default), instructions.Instructions, &errs)

	require.Len(t, statements, 1)
	require.Equal(t, 1, errs.Len())
	assert.ErrorIs(t, errs.Errors()[0], tokens.ErrInvalidToken)
	assert.Equal(t, base+4, statements[0].Address())
}

func TestAssembler_EveryCatalogueEntryAvoidsInternalErrors(t *testing.T) {
	assembler := &Assembler{Symbols: testSymbols(), Registers: registers.Default}

	for _, instr := range instructions.Instructions.AllInstructions() {
		var example string

		switch instr := instr.(type) {
		case *instructions.BasicInstruction:
			example = instr.Example
		case *instructions.PseudoInstruction:
			example = instr.Example
		default:
			t.Fatalf("unexpected instruction type %T", instr)
		}

		var errs ErrorList
		statements := assembler.Parse("all.s", []string{example}, base, tokens.NewTokenizer(registers.Default), instructions.Instructions, &errs)
		assembler.Assemble(statements, &errs)

		for _, err := range errs.Errors() {
			assert.False(t, err.IsInternal(), "%v: %v", example, err)
		}

		if errs.HasErrors() {
			assert.IsType(t, &instructions.PseudoInstruction{}, instr, example)
			assert.ErrorIs(t, errs.Errors()[0], ErrPseudoInstruction, example)
			assert.Empty(t, statements, example)
		} else {
			require.Len(t, statements, 1, example)
			assert.Equal(t, State_Encoded, statements[0].State(), example)
		}
	}
}

func TestDumpListing(t *testing.T) {
	assembled, err := assemble(t, "slt x14, x1, x2", base+4)
	require.NoError(t, err)

	patched := Decode(0, base+8, instructions.Instructions).Patch(0x003100B3, instructions.Instructions)
	invalid := Decode(-1, base, instructions.Instructions)

	var buf bytes.Buffer
	require.NoError(t, DumpListing(&buf, []*Statement{patched, assembled, invalid}, render.NewDisplayConfig(true, false), nil))

	output := buf.String()
	assert.Contains(t, output, "=== Listing (3 statements) ===")
	assert.Contains(t, output, "  [   0] 0x00400000  ffffffff  <INVALID>\n")
	assert.Contains(t, output, "  [   1] 0x00400004  0020a733  slt x14,x1,x2  ; line 1: slt x14, x1, x2\n")
	assert.Contains(t, output, "  [   2] 0x00400008  003100b3  add x1,x2,x3  (altered)\n")
	assert.Contains(t, output, "1 words do not encode any known instruction")
}

var errDiskFull = errors.New("disk full")

// Fails the n-th write
type failingWriter struct {
	writes int
	failAt int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++

	if w.writes == w.failAt {
		return 0, errDiskFull
	}

	return len(p), nil
}

func TestDumpListing_WriteErrors(t *testing.T) {
	assembled, err := assemble(t, "slt x14, x1, x2", base)
	require.NoError(t, err)

	statements := []*Statement{
		assembled,
		Decode(0, base+4, instructions.Instructions).Patch(-1, instructions.Instructions),
	}

	// header, two rows and the invalid words trailer
	for failAt := 1; failAt <= 4; failAt++ {
		w := &failingWriter{failAt: failAt}
		assert.ErrorIs(t, DumpListing(w, statements, render.DisplayConfig{}, nil), errDiskFull, "write #%v", failAt)
		assert.Equal(t, failAt, w.writes)
	}

	w := &failingWriter{}
	assert.NoError(t, DumpListing(w, statements, render.DisplayConfig{}, nil))
	assert.Equal(t, 4, w.writes)
}
