/*
 * synacore - VM error taxonomy
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

// Package vmerr holds the sentinel errors for each category of VM failure
// and the Fault type that wraps one of them with enough context (PC, opcode,
// raw operand words) to diagnose a run that aborted.
package vmerr

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per category in spec §7. Category 1 (image I/O) is
// reported directly by the loader as a wrapped *os.PathError and has no
// sentinel here.
var (
	ErrMalformedOperand = errors.New("malformed operand")
	ErrUnknownOpcode    = errors.New("unknown opcode")
	ErrDivideByZero     = errors.New("division by zero")
	ErrMemoryRange      = errors.New("memory address out of range")
	ErrStackUnderflow   = errors.New("stack underflow")
	ErrHostIO           = errors.New("host i/o error")

	// ErrStepLimitExceeded is a host-level abort, not a VM error category:
	// it exists only so a caller can bound runaway programs without a hard
	// process kill.
	ErrStepLimitExceeded = errors.New("instruction step limit exceeded")
)

// Fault reports the PC, opcode and raw operand words in effect when a run
// aborted, wrapping the sentinel error that names the failure category.
type Fault struct {
	PC       uint16
	Op       uint16
	Operands []uint16
	Err      error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("pc=%d op=%d operands=%v: %s", f.PC, f.Op, f.Operands, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// New builds a Fault for the instruction currently being decoded or
// executed at pc.
func New(pc uint16, op uint16, operands []uint16, err error) *Fault {
	cp := make([]uint16, len(operands))
	copy(cp, operands)
	return &Fault{PC: pc, Op: op, Operands: cp, Err: err}
}
