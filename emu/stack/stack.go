/*
 * synacore - Operand stack
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

// Package stack is the VM's operand stack: an unbounded LIFO of words, kept
// separate from addressable memory and used by push/pop/call/ret.
package stack

import "github.com/jrcarver/synacore/emu/vmerr"

// Stack is a LIFO store of words. The zero value is an empty stack.
type Stack struct {
	data []uint16
}

// New returns an empty Stack.
func New() *Stack {
	return &Stack{}
}

// Push appends v to the top of the stack.
func (s *Stack) Push(v uint16) {
	s.data = append(s.data, v)
}

// Pop removes and returns the top of the stack. It fails if the stack is
// empty.
func (s *Stack) Pop() (uint16, error) {
	if len(s.data) == 0 {
		return 0, vmerr.ErrStackUnderflow
	}
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return v, nil
}

// Empty reports whether the stack holds no words.
func (s *Stack) Empty() bool {
	return len(s.data) == 0
}

// Len returns the number of words on the stack.
func (s *Stack) Len() int {
	return len(s.data)
}
