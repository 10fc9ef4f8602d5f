package statement

import (
	"log/slog"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/instructions"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/render"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/tokens"
	"github.com/Manu343726/rvasm/pkg/utils"
)

// Size in bytes of a machine word
const WordBytes = 4

// Finds the instruction definition of a tokenized statement
type InstructionMatcher interface {
	Match(statement tokens.List) (instructions.Instruction, error)
}

// Runs both build phases over a sequence of statements
type Assembler struct {
	Symbols   SymbolTable
	Registers RegisterTables

	// Logger for build progress. slog.Default() if nil
	Logger *slog.Logger
}

func (a *Assembler) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}

	return slog.Default()
}

func hex(value int32) string {
	return render.FormatNumber(value, render.Base_Hexadecimal)
}

// Tokenizes source lines and creates one statement per instruction, at consecutive
// word addresses starting from base. Lines with no instruction are skipped. Every
// other line takes a word address, even if it cannot be tokenized, matches no
// instruction or matches a pseudo-instruction. Those lines are reported to the
// error list
func (a *Assembler) Parse(file string, lines []string, base int32, tokenizer *tokens.Tokenizer, matcher InstructionMatcher, errs *ErrorList) []*Statement {
	log := a.logger()
	var statements []*Statement
	next := base

	for i, text := range lines {
		line := i + 1
		list, err := tokenizer.Tokenize(text, line)

		if err == nil && len(list) == 0 {
			continue
		}

		address := next
		next += WordBytes

		if err != nil {
			errs.Add(&AssemblyError{File: file, Line: line, Message: err.Error(), Err: err})
			continue
		}

		instr, err := matcher.Match(list)
		if err != nil {
			errs.Add(&AssemblyError{File: file, Line: line, Column: list[0].Column, Message: err.Error(), Err: err})
			continue
		}

		if _, isPseudo := instr.(*instructions.PseudoInstruction); isPseudo {
			err := utils.MakeError(ErrPseudoInstruction, "'%v'", instr.Name())
			errs.Add(&AssemblyError{File: file, Line: line, Column: list[0].Column, Message: err.Error(), Err: err})
			continue
		}

		log.Debug("statement parsed", slog.String("file", file), slog.Int("line", line), slog.String("instruction", instr.Name()), slog.String("address", hex(address)))

		statements = append(statements, New(Source{
			File:           file,
			Line:           line,
			Text:           text,
			OriginalTokens: list,
			Tokens:         list,
		}, address, instr))
	}

	return statements
}

// Builds the assembly form and the machine word of each statement. A statement
// failing to build is reported to the error list and skipped, the rest of the
// statements are still built. Returns the number of statements encoded
func (a *Assembler) Assemble(statements []*Statement, errs *ErrorList) int {
	log := a.logger()
	encoded := 0

	for _, s := range statements {
		log := log.With(slog.String("file", s.source.File), slog.Int("line", s.source.Line), slog.String("address", hex(s.address)))

		if err := s.BuildAssemblyForm(a.Symbols, a.Registers); err != nil {
			log.Warn("statement assembly failed", slog.Any("error", err))
			errs.Add(err)
			continue
		}

		if err := s.BuildMachineWord(); err != nil {
			log.Warn("statement encoding failed", slog.Any("error", err))
			errs.Add(err)
			continue
		}

		log.Debug("statement encoded", slog.String("basic", s.basicAssembly), slog.String("word", hex(s.binaryWord)))
		encoded++
	}

	log.Debug("assembly finished", slog.Int("statements", len(statements)), slog.Int("encoded", encoded), slog.Int("errors", errs.Len()))
	return encoded
}
