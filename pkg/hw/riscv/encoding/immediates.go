package encoding

// Jump (J-type) immediates are stored as imm[20|10:1|11|19:12] and branch
// (B-type) immediates as imm[12|10:5] ... imm[4:1|11]. The functions below
// convert a byte offset into the 20 (12) bit value that, scattered over the
// jump (branch) template field, puts every immediate bit in its place, and back.
// Offsets are halfword aligned so bit 0 is dropped on the way in and restored
// as 0 on the way out.

// Converts a byte offset into the permuted 20 bit jump immediate
func ToJumpImmediate(address int32) int32 {
	address = address >> 1
	return (address & (1 << 19)) | // sign stays in place
		((address & 0x3FF) << 9) | // imm[10:1]
		((address & (1 << 10)) >> 2) | // imm[11]
		((address & 0x7F800) >> 11) // imm[19:12]
}

// Converts a permuted 20 bit jump immediate back into a sign extended byte offset
func FromJumpImmediate(immediate int32) int32 {
	tmp := (immediate & (1 << 19)) |
		((immediate & 0x7FE00) >> 9) |
		((immediate & (1 << 8)) << 2) |
		((immediate & 0xFF) << 11)
	return (tmp << 12) >> 11
}

// Converts a byte offset into the permuted 12 bit branch immediate
func ToBranchImmediate(address int32) int32 {
	address = address >> 1
	return (address & (1 << 11)) | // sign stays in place
		((address & 0x3FF) << 1) | // imm[10:1]
		((address & (1 << 10)) >> 10) // imm[11]
}

// Converts a permuted 12 bit branch immediate back into a sign extended byte offset
func FromBranchImmediate(immediate int32) int32 {
	tmp := (immediate & (1 << 11)) |
		((immediate & 0x7FE) >> 1) |
		((immediate & 1) << 10)
	return (tmp << 20) >> 19
}
