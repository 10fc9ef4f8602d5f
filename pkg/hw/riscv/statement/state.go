package statement

// Lifecycle state of a statement
type State uint

const (
	// Built from source, operands not resolved yet
	State_Raw State = iota
	// Operands resolved and basic assembly display form built
	State_AssemblyBuilt
	// Machine word built from the resolved operands
	State_Encoded
	// Built from a raw machine word, with no source
	State_Decoded
)

func (s State) String() string {
	switch s {
	case State_Raw:
		return "raw"
	case State_AssemblyBuilt:
		return "assembly built"
	case State_Encoded:
		return "encoded"
	case State_Decoded:
		return "decoded"
	}

	panic("unreachable")
}

// Returns true if the statement holds a valid machine word
func (s State) HasMachineWord() bool {
	return s == State_Encoded || s == State_Decoded
}
