// Package encoding implements the bit level codecs used to build and take
// apart RISC-V machine words.
//
// Instruction formats are described by 32 character templates, most
// significant bit first. Each character is either a literal bit ('0' or '1')
// or a marker naming the operand field the bit belongs to. Fields need not be
// contiguous: the bits of a field are the template positions holding its
// marker, in left to right order.
//
// Branch and jump immediates are stored permuted (see [ToBranchImmediate] and
// [ToJumpImmediate]) so that their bits land in the positions the hardware
// expects when scattered over a template.
package encoding
