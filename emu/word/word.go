/*
 * synacore - Word domain: the 15-bit value space and register references
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

// Package word defines the 16-bit value space shared by memory, the operand
// stack and the CPU: which words are literals, which denote registers, and
// which are simply invalid.
package word

const (
	// Size is the number of addressable memory words (2^15) and also the
	// number of distinct literal values 0..32767.
	Size = 1 << 15

	// Max is the highest valid literal value.
	Max = Size - 1

	// RegBase is the first word that denotes a register reference.
	RegBase = Size

	// RegCount is the number of registers, R0..R7.
	RegCount = 8

	// RegLimit is one past the last valid register reference; words at or
	// above this are reserved and invalid.
	RegLimit = RegBase + RegCount
)

// IsLiteral reports whether w is a plain value 0..32767.
func IsLiteral(w uint16) bool {
	return w <= Max
}

// IsRegister reports whether w denotes one of R0..R7.
func IsRegister(w uint16) bool {
	return w >= RegBase && w < RegLimit
}

// IsValid reports whether w is either a literal or a register reference.
func IsValid(w uint16) bool {
	return w < RegLimit
}

// RegisterIndex returns the register index a register-reference word denotes.
// The caller must have already checked IsRegister(w).
func RegisterIndex(w uint16) int {
	return int(w - RegBase)
}
