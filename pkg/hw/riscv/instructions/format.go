package instructions

import (
	"errors"

	"github.com/Manu343726/rvasm/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Immediate layout rules of an instruction
type Format uint

const (
	// Operands are stored as is in their fields
	Format_Normal Format = iota
	// Third operand is a PC relative offset stored as a permuted 12 bit immediate
	Format_Branch
	// Second operand is a PC relative offset stored as a permuted 20 bit immediate
	Format_Jump
)

func (f Format) String() string {
	switch f {
	case Format_Normal:
		return "normal"
	case Format_Branch:
		return "branch"
	case Format_Jump:
		return "jump"
	}

	panic("unreachable")
}

// Returns the index of the operand holding a PC relative offset, or -1 if the format
// has no such operand
func (f Format) RelativeOperand() int {
	switch f {
	case Format_Normal:
		return -1
	case Format_Branch:
		return 2
	case Format_Jump:
		return 1
	}

	panic("unreachable")
}

var ErrUnknownFormat = errors.New("unknown instruction format")

// Parses a format name
func ParseFormat(name string) (Format, error) {
	for _, format := range []Format{Format_Normal, Format_Branch, Format_Jump} {
		if format.String() == name {
			return format, nil
		}
	}

	return Format_Normal, utils.MakeError(ErrUnknownFormat, "'%v' (expected normal, branch or jump)", name)
}

func (f Format) MarshalYAML() (any, error) {
	return f.String(), nil
}

func (f *Format) UnmarshalYAML(value *yaml.Node) error {
	var name string

	if err := value.Decode(&name); err != nil {
		return err
	}

	format, err := ParseFormat(name)
	if err != nil {
		return err
	}

	*f = format
	return nil
}
