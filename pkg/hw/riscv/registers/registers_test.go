package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables_GeneralByNumberAndName(t *testing.T) {
	cases := map[string]int{
		"x0":   0,
		"zero": 0,
		"x14":  14,
		"a4":   14,
		"t0":   5,
		"fp":   8,
		"s0":   8,
		"x31":  31,
		"t6":   31,
	}

	for name, expected := range cases {
		number, err := Default.General(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, number, name)
	}
}

func TestTables_GeneralRejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"x32", "x-1", "x05", "f1", "foo", ""} {
		number, err := Default.General(name)
		assert.ErrorIs(t, err, ErrUnknownRegister, name)
		assert.Equal(t, -1, number)
	}
}

func TestTables_FloatingPoint(t *testing.T) {
	number, err := Default.FloatingPoint("f10")
	require.NoError(t, err)
	assert.Equal(t, 10, number)

	number, err = Default.FloatingPoint("fa0")
	require.NoError(t, err)
	assert.Equal(t, 10, number)

	_, err = Default.FloatingPoint("x1")
	assert.ErrorIs(t, err, ErrUnknownRegister)
}

func TestTables_ControlAndStatus(t *testing.T) {
	number, err := Default.ControlAndStatus("fcsr")
	require.NoError(t, err)
	assert.Equal(t, 3, number)

	number, err = Default.ControlAndStatus("cycle")
	require.NoError(t, err)
	assert.Equal(t, 0xC00, number)

	_, err = Default.ControlAndStatus("mstatus")
	assert.ErrorIs(t, err, ErrUnknownRegister)
}

func TestRegisterDescriptor_Name(t *testing.T) {
	register, err := General.Register(2)
	require.NoError(t, err)
	assert.Equal(t, "sp", register.Name())
	assert.Equal(t, General, register.Class)

	assert.Equal(t, "x7", General.DefaultRegisterName(7))
	assert.Equal(t, "3", ControlAndStatus.DefaultRegisterName(3))
}

func TestRegisterClassDescriptor_Documentation(t *testing.T) {
	doc := General.Documentation(2)

	assert.Contains(t, doc, "(32 registers)")
	assert.Contains(t, doc, "x8/s0/fp")
	assert.Contains(t, doc, "x14/a4")
}
