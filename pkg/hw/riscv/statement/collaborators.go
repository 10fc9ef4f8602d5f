package statement

import (
	"errors"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/instructions"
	"github.com/Manu343726/rvasm/pkg/utils"
)

// Finds the basic instruction a machine word is an encoding of
type BinaryLookup interface {
	FindByBinaryCode(word int32) (*instructions.BasicInstruction, bool)
}

// Register name lookup tables
type RegisterTables interface {
	General(name string) (int, error)
	FloatingPoint(name string) (int, error)
	ControlAndStatus(name string) (int, error)
}

// Resolves symbols (labels) to absolute addresses
type SymbolTable interface {
	Resolve(name string, line int) (int32, error)
}

var ErrSymbolNotFound = errors.New("symbol not found")

// Map backed symbol table. Symbols not found are looked up in the parent table,
// if any, so that a file local table can fall back to the global one
type Symbols struct {
	symbols map[string]int32
	parent  SymbolTable
}

// Returns an empty symbol table. Parent can be nil
func NewSymbols(parent SymbolTable) *Symbols {
	return &Symbols{
		symbols: make(map[string]int32),
		parent:  parent,
	}
}

// Defines (or redefines) a symbol
func (s *Symbols) Define(name string, address int32) {
	s.symbols[name] = address
}

// Returns the names of all the symbols defined in this table, sorted
func (s *Symbols) Names() []string {
	return utils.SortedKeys(s.symbols)
}

func (s *Symbols) Resolve(name string, line int) (int32, error) {
	if address, found := s.symbols[name]; found {
		return address, nil
	}

	if s.parent != nil {
		return s.parent.Resolve(name, line)
	}

	return 0, utils.MakeError(ErrSymbolNotFound, "'%v' (line %v)", name, line)
}
