package registers

type RegisterClass uint

const (
	// General purpose integer registers (x0-x31)
	RegisterClass_General RegisterClass = iota

	// Floating point registers (f0-f31)
	RegisterClass_FloatingPoint

	// Control and status registers
	RegisterClass_ControlAndStatus

	// Number of register classes
	TOTAL_REGISTER_CLASSES
)

func (rc RegisterClass) String() string {
	switch rc {
	case RegisterClass_General:
		return "general purpose integer registers"
	case RegisterClass_FloatingPoint:
		return "floating point registers"
	case RegisterClass_ControlAndStatus:
		return "control and status registers"
	}

	panic("unreachable")
}
