// Package statement models one RISC-V assembly statement across its three
// representations: source tokens, resolved operand values and the 32 bit
// machine word.
//
// Statements built from source go through two phases. BuildAssemblyForm
// resolves the operand tokens (registers, symbols, literals) into the operand
// array and builds the basic assembly display form. BuildMachineWord scatters
// the operands over the instruction template to produce the machine word.
// Statements built from a raw word with Decode take the inverse path and get
// their display form from the disassembler.
package statement
