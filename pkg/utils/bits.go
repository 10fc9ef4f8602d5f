package utils

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Returns the size in bits of n bytes
func Bits(bytes int) int {
	return bytes * 8
}

// Returns the size in bytes of values of a type
func Sizeof[T any]() int {
	var val T
	return int(unsafe.Sizeof(val))
}

// Returns the size in bits of values of a type
func SizeofBits[T any]() int {
	return Bits(Sizeof[T]())
}

// Returns an all ones bitmask of n bits of the given unsigned integer type
func AllOnes[T constraints.Unsigned](bits int) T {
	if bits >= SizeofBits[T]() {
		return ^T(0)
	}

	return (T(1) << bits) - T(1)
}

// Reinterprets the n least significant bits of a value as a two's complement
// number of n bits, replicating bit n-1 over all the upper bits
func SignExtend[T constraints.Signed](value T, bits int) T {
	shift := SizeofBits[T]() - bits
	return (value << shift) >> shift
}

// Returns true if the value fits in a two's complement signed integer of n bits
func FitsSigned[T constraints.Signed](value T, bits int) bool {
	return SignExtend(value, bits) == value
}

// Returns true if the value fits in an unsigned integer of n bits
func FitsUnsigned[T constraints.Integer](value T, bits int) bool {
	return value >= 0 && uint64(value) <= AllOnes[uint64](bits)
}
