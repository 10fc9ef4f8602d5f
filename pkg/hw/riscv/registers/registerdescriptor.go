package registers

import (
	"github.com/Manu343726/rvasm/pkg/utils"
)

type RegisterDescriptor struct {
	// Register class
	Class *RegisterClassDescriptor

	// Register number, as encoded in instruction operand fields
	Number int

	// ABI name of the register, used instead of the default RegisterNamePrefix + Number name
	CustomName string

	// Other names the register can be referred by
	Aliases []string

	// Register description (for documentation/debugging)
	Description string
}

// Returns the register name
func (d *RegisterDescriptor) Name() string {
	if len(d.CustomName) > 0 {
		return d.CustomName
	} else {
		return d.Class.DefaultRegisterName(d.Number)
	}
}

func (d *RegisterDescriptor) String() string {
	return d.Name()
}

// Returns true if the register can be referred by the given name
func (d *RegisterDescriptor) HasName(name string) bool {
	if name == d.Name() {
		return true
	}

	for _, alias := range d.Aliases {
		if alias == name {
			return true
		}
	}

	return false
}

// Creates multiple consecutive numbered registers, named after the given ABI names
func MakeRegisters(abiNames []string) []*RegisterDescriptor {
	return utils.Iota(len(abiNames), func(i int) *RegisterDescriptor {
		return &RegisterDescriptor{
			Number:     i,
			CustomName: abiNames[i],
		}
	})
}
