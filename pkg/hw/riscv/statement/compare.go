package statement

import (
	"cmp"
	"slices"
)

// Orders statements by address. Addresses are compared as unsigned 32 bit values,
// so statements in the upper half of the address space go after the ones in the
// lower half
func Compare(a *Statement, b *Statement) int {
	return cmp.Compare(uint32(a.address), uint32(b.address))
}

// Same as Compare(s, other)
func (s *Statement) Compare(other *Statement) int {
	return Compare(s, other)
}

// Sorts statements by address, keeping the relative order of statements at the
// same address
func SortByAddress(statements []*Statement) {
	slices.SortStableFunc(statements, Compare)
}
