/*
 * synacore - Instruction set definition
 *
 * Copyright 2026, The Synacore Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package isa names the 22 opcodes of the VM's instruction set and how many
// operand words follow each one in the instruction stream.
package isa

// Op identifies one opcode.
type Op uint16

// The 22 opcodes, in their numeric order.
const (
	Halt Op = iota
	Set
	Push
	Pop
	Eq
	Gt
	Jmp
	Jt
	Jf
	Add
	Mult
	Mod
	And
	Or
	Not
	Rmem
	Wmem
	Call
	Ret
	Out
	In
	Noop

	opCount // one past the last valid opcode
)

var operandCount = [opCount]int{
	Halt: 0,
	Set:  2,
	Push: 1,
	Pop:  1,
	Eq:   3,
	Gt:   3,
	Jmp:  1,
	Jt:   2,
	Jf:   2,
	Add:  3,
	Mult: 3,
	Mod:  3,
	And:  3,
	Or:   3,
	Not:  2,
	Rmem: 2,
	Wmem: 2,
	Call: 1,
	Ret:  0,
	Out:  1,
	In:   1,
	Noop: 0,
}

var mnemonic = [opCount]string{
	Halt: "halt",
	Set:  "set",
	Push: "push",
	Pop:  "pop",
	Eq:   "eq",
	Gt:   "gt",
	Jmp:  "jmp",
	Jt:   "jt",
	Jf:   "jf",
	Add:  "add",
	Mult: "mult",
	Mod:  "mod",
	And:  "and",
	Or:   "or",
	Not:  "not",
	Rmem: "rmem",
	Wmem: "wmem",
	Call: "call",
	Ret:  "ret",
	Out:  "out",
	In:   "in",
	Noop: "noop",
}

// Valid reports whether w names one of the 22 defined opcodes.
func Valid(w uint16) bool {
	return w < uint16(opCount)
}

// OperandCount returns the number of operand words that follow op in the
// instruction stream. The caller must have already checked Valid.
func OperandCount(op Op) int {
	return operandCount[op]
}

// String returns the opcode's mnemonic, used in trace logging and fault
// diagnostics.
func (op Op) String() string {
	if uint16(op) >= uint16(opCount) {
		return "invalid"
	}
	return mnemonic[op]
}
