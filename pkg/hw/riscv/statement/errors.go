package statement

import (
	"errors"
	"fmt"
)

var (
	ErrUnresolvedSymbol    = errors.New("unresolved symbol")
	ErrInvalidRegister     = errors.New("invalid register")
	ErrInvalidRoundingMode = errors.New("invalid rounding mode")
	ErrRangeExceeded       = errors.New("target out of range")
	ErrPseudoInstruction   = errors.New("pseudo-instruction expansion not supported")

	// Internal consistency errors: they point to a bug in the instruction
	// catalogue or in the pseudo instruction expansion, not in the user program
	ErrNotBasicInstruction = errors.New("not a basic instruction")
	ErrOperandMaskMismatch = errors.New("operand count does not match instruction template")
	ErrInvalidState        = errors.New("invalid statement state")
)

// Prefix of the messages of internal consistency errors
const InternalErrorPrefix = "INTERNAL ERROR: "

// An error found while building a statement, located in the statement source
type AssemblyError struct {
	// Source file name. Empty if unknown
	File string

	// Source line (starting from 1). Zero if unknown
	Line int

	// Source column (starting from 1). Zero if the error refers to the whole statement
	Column int

	// Human readable description of the error
	Message string

	// Error category, a wrapped sentinel error
	Err error
}

func (e *AssemblyError) Error() string {
	file := e.File

	if file == "" {
		file = "<unknown>"
	}

	return fmt.Sprintf("%v:%v:%v: %v", file, e.Line, e.Column, e.Message)
}

func (e *AssemblyError) Unwrap() error {
	return e.Err
}

// Returns true if the error is an internal consistency error
func (e *AssemblyError) IsInternal() bool {
	return errors.Is(e.Err, ErrNotBasicInstruction) || errors.Is(e.Err, ErrOperandMaskMismatch) || errors.Is(e.Err, ErrInvalidState)
}

// Append only list of assembly errors
type ErrorList struct {
	errors []*AssemblyError
}

// Appends an error to the list. Errors other than *AssemblyError are wrapped into
// one with no location
func (l *ErrorList) Add(err error) {
	var assemblyError *AssemblyError

	if !errors.As(err, &assemblyError) {
		assemblyError = &AssemblyError{
			Message: err.Error(),
			Err:     err,
		}
	}

	l.errors = append(l.errors, assemblyError)
}

// Returns the errors in the order they were added
func (l *ErrorList) Errors() []*AssemblyError {
	return l.errors
}

func (l *ErrorList) Len() int {
	return len(l.errors)
}

func (l *ErrorList) HasErrors() bool {
	return len(l.errors) > 0
}

// Returns all the errors joined in one error, or nil if the list is empty
func (l *ErrorList) Err() error {
	if len(l.errors) == 0 {
		return nil
	}

	errs := make([]error, len(l.errors))

	for i, err := range l.errors {
		errs[i] = err
	}

	return errors.Join(errs...)
}
