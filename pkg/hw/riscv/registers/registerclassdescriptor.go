package registers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Manu343726/rvasm/pkg/utils"
)

type RegisterClassDescriptor struct {
	Class       RegisterClass
	Description string

	// Prefix of the numeric register names (x5, f3). Empty if registers can only be referred by name
	RegisterNamePrefix string

	registers []*RegisterDescriptor
	byNumber  map[int]*RegisterDescriptor
}

// Returns the number of registers in the class
func (d *RegisterClassDescriptor) TotalRegisters() int {
	return len(d.registers)
}

// Returns the set of all registers in the class
func (d *RegisterClassDescriptor) AllRegisters() []*RegisterDescriptor {
	return d.registers
}

var ErrUnknownRegister = errors.New("unknown register")

// Returns a register of the class given its number
func (d *RegisterClassDescriptor) Register(number int) (*RegisterDescriptor, error) {
	if register, hasRegister := d.byNumber[number]; hasRegister {
		return register, nil
	} else {
		return nil, utils.MakeError(ErrUnknownRegister, "register with number '%v' not found in %v", number, d.Class)
	}
}

// Returns a register of the class given its name. Both numeric names (prefix + number) and
// ABI names are accepted
func (d *RegisterClassDescriptor) RegisterByName(name string) (*RegisterDescriptor, error) {
	if len(d.RegisterNamePrefix) > 0 {
		if numberStr, hasPrefix := strings.CutPrefix(name, d.RegisterNamePrefix); hasPrefix {
			number, err := strconv.Atoi(numberStr)

			if err == nil && numberStr == strconv.Itoa(number) {
				return d.Register(number)
			}
		}
	}

	for _, register := range d.registers {
		if register.HasName(name) {
			return register, nil
		}
	}

	return nil, utils.MakeError(ErrUnknownRegister, "'%v' is not one of the %v", name, d.Class)
}

// Returns the number of the register with the given name
func (d *RegisterClassDescriptor) Lookup(name string) (int, error) {
	register, err := d.RegisterByName(name)

	if err != nil {
		return -1, err
	}

	return register.Number, nil
}

// Returns the name used to refer to a register of the class in case the register didn't specify a custom one
func (d *RegisterClassDescriptor) DefaultRegisterName(number int) string {
	if len(d.RegisterNamePrefix) > 0 {
		return d.RegisterNamePrefix + fmt.Sprint(number)
	}

	return fmt.Sprint(number)
}

// Initializes a register class descriptor with the given registers
func NewRegisterClassDescriptor(descriptor *RegisterClassDescriptor, registers []*RegisterDescriptor) *RegisterClassDescriptor {
	descriptor.registers = registers
	descriptor.byNumber = make(map[int]*RegisterDescriptor, len(registers))

	for _, register := range registers {
		if _, duplicated := descriptor.byNumber[register.Number]; duplicated {
			panic(fmt.Errorf("duplicated register number %v in %v", register.Number, descriptor.Class))
		}

		register.Class = descriptor
		descriptor.byNumber[register.Number] = register
	}

	return descriptor
}

// Returns a table with the number, names and description of each register of the class
func (d *RegisterClassDescriptor) Documentation(leftpad int) string {
	var builder strings.Builder
	padding := strings.Repeat(" ", leftpad)

	fmt.Fprintf(&builder, "%v (%v registers)\n", d.Description, len(d.registers))

	for _, register := range d.registers {
		names := register.Name()

		if register.CustomName != "" && len(d.RegisterNamePrefix) > 0 {
			names = d.DefaultRegisterName(register.Number) + "/" + names
		}

		for _, alias := range register.Aliases {
			names += "/" + alias
		}

		fmt.Fprintf(&builder, "%v%4d  %-16v %v\n", padding, register.Number, names, register.Description)
	}

	return builder.String()
}
