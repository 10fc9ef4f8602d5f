package registers

import "github.com/Manu343726/rvasm/pkg/utils"

// Integer register file, x0-x31
var General = GeneralPurpose()

// Floating point register file, f0-f31
var FloatingPoint = FloatingPointRegisters()

// Control and status registers known by the assembler
var ControlAndStatus = ControlAndStatusRegisters()

// Register lookup tables of all the register classes
type Tables struct {
	classes [TOTAL_REGISTER_CLASSES]*RegisterClassDescriptor
}

// Returns the descriptor of a register class
func (t *Tables) Class(rc RegisterClass) *RegisterClassDescriptor {
	return t.classes[rc]
}

// Returns the number of a general purpose register given its name (x5, t0, ...)
func (t *Tables) General(name string) (int, error) {
	return t.classes[RegisterClass_General].Lookup(name)
}

// Returns the number of a floating point register given its name (f5, ft5, ...)
func (t *Tables) FloatingPoint(name string) (int, error) {
	return t.classes[RegisterClass_FloatingPoint].Lookup(name)
}

// Returns the number (CSR address) of a control and status register given its name
func (t *Tables) ControlAndStatus(name string) (int, error) {
	return t.classes[RegisterClass_ControlAndStatus].Lookup(name)
}

// Initializes the lookup tables with a descriptor for each register class
func NewTables(classes ...*RegisterClassDescriptor) *Tables {
	classMap := utils.GenMap(classes, func(class *RegisterClassDescriptor) RegisterClass {
		return class.Class
	})

	t := &Tables{}

	for _, class := range utils.Iota(int(TOTAL_REGISTER_CLASSES), func(i int) RegisterClass { return RegisterClass(i) }) {
		descriptor, hasClass := classMap[class]

		if !hasClass {
			panic("missing entry for register class '" + class.String() + "'. Make sure you've added an entry for all register classes in the NewTables() call")
		}

		t.classes[class] = descriptor
	}

	return t
}

// Register tables of the RV32IMF + Zicsr architecture
var Default = NewTables(General, FloatingPoint, ControlAndStatus)

// General purpose integer registers descriptor
func GeneralPurpose() *RegisterClassDescriptor {
	registers := MakeRegisters([]string{
		"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
		"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
		"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
		"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
	})

	registers[0].Description = "Hard-wired zero"
	registers[1].Description = "Return address"
	registers[2].Description = "Stack pointer"
	registers[3].Description = "Global pointer"
	registers[4].Description = "Thread pointer"
	registers[8].Aliases = []string{"fp"}
	registers[8].Description = "Saved register / frame pointer"

	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:              RegisterClass_General,
		Description:        "General purpose 32 bit integer registers",
		RegisterNamePrefix: "x",
	}, registers)
}

// Floating point registers descriptor
func FloatingPointRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:              RegisterClass_FloatingPoint,
		Description:        "Single precision floating point registers",
		RegisterNamePrefix: "f",
	}, MakeRegisters([]string{
		"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7",
		"fs0", "fs1", "fa0", "fa1", "fa2", "fa3", "fa4", "fa5",
		"fa6", "fa7", "fs2", "fs3", "fs4", "fs5", "fs6", "fs7",
		"fs8", "fs9", "fs10", "fs11", "ft8", "ft9", "ft10", "ft11",
	}))
}

func csr(number int, name string, description string) *RegisterDescriptor {
	return &RegisterDescriptor{
		Number:      number,
		CustomName:  name,
		Description: description,
	}
}

// Control and status registers descriptor. Registers are numbered by their CSR address
func ControlAndStatusRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:       RegisterClass_ControlAndStatus,
		Description: "User level control and status registers",
	}, []*RegisterDescriptor{
		csr(0x000, "ustatus", "User status"),
		csr(0x001, "fflags", "Floating point accrued exceptions"),
		csr(0x002, "frm", "Floating point dynamic rounding mode"),
		csr(0x003, "fcsr", "Floating point control and status (frm + fflags)"),
		csr(0x004, "uie", "User interrupt enable"),
		csr(0x005, "utvec", "User trap handler base address"),
		csr(0x040, "uscratch", "Scratch register for user trap handlers"),
		csr(0x041, "uepc", "User exception program counter"),
		csr(0x042, "ucause", "User trap cause"),
		csr(0x043, "utval", "User bad address or instruction"),
		csr(0x044, "uip", "User interrupt pending"),
		csr(0xC00, "cycle", "Cycle counter"),
		csr(0xC01, "time", "Timer"),
		csr(0xC02, "instret", "Instructions retired counter"),
		csr(0xC80, "cycleh", "Upper 32 bits of cycle"),
		csr(0xC81, "timeh", "Upper 32 bits of time"),
		csr(0xC82, "instreth", "Upper 32 bits of instret"),
	})
}
