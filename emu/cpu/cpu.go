/*
 * synacore - CPU: fetch-decode-dispatch loop
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

// Package cpu is the VM's execution engine: it owns the program counter,
// the eight registers, and the fetch-decode-dispatch loop over the 22
// opcodes in package isa. Every piece of mutable state lives on the CPU
// value itself; nothing here is a package-level global, so a process can
// run more than one VM at once.
package cpu

import (
	"errors"
	"io"
	"log/slog"

	"github.com/jrcarver/synacore/emu/isa"
	"github.com/jrcarver/synacore/emu/memory"
	"github.com/jrcarver/synacore/emu/stack"
	"github.com/jrcarver/synacore/emu/vmerr"
	"github.com/jrcarver/synacore/emu/word"
)

// CPU holds all state of one running VM: memory, the operand stack, the
// eight registers and the program counter.
type CPU struct {
	mem   *memory.Memory
	stack *stack.Stack
	regs  [word.RegCount]uint16
	pc    uint16

	in  io.ByteReader
	out io.Writer

	log      *slog.Logger
	steps    uint64
	maxSteps uint64
	halted   bool
}

// New returns a CPU ready to run the program already loaded into mem. PC
// starts at 0 and every register starts at 0, per spec. log may be nil, in
// which case the CPU logs nothing. maxSteps, if nonzero, bounds the number
// of instructions Run will execute before giving up with
// vmerr.ErrStepLimitExceeded — a host-level safety valve, not part of the
// VM's own error taxonomy.
func New(mem *memory.Memory, in io.ByteReader, out io.Writer, log *slog.Logger, maxSteps uint64) *CPU {
	return &CPU{
		mem:      mem,
		stack:    stack.New(),
		in:       in,
		out:      out,
		log:      log,
		maxSteps: maxSteps,
	}
}

// PC returns the current program counter.
func (c *CPU) PC() uint16 {
	return c.pc
}

// Halted reports whether the VM has reached halt, a ret on an empty stack,
// or end of input on an in instruction.
func (c *CPU) Halted() bool {
	return c.halted
}

// Steps returns the number of instructions executed so far.
func (c *CPU) Steps() uint64 {
	return c.steps
}

// Run executes instructions until the VM halts or a fault aborts the run.
func (c *CPU) Run() error {
	for !c.halted {
		if c.maxSteps != 0 && c.steps >= c.maxSteps {
			return vmerr.ErrStepLimitExceeded
		}
		if err := c.Step(); err != nil {
			if c.log != nil {
				c.log.Error("run aborted", "error", err)
			}
			return err
		}
		c.steps++
	}
	return nil
}

// Step fetches, decodes and executes exactly one instruction, or takes the
// clean-halt transition (halt, ret on empty stack, in on EOF). It returns a
// *vmerr.Fault for any of the error categories in spec §7.
func (c *CPU) Step() error {
	opWord, err := c.mem.Load(c.pc)
	if err != nil {
		return vmerr.New(c.pc, 0, nil, err)
	}

	if !isa.Valid(opWord) {
		return vmerr.New(c.pc, opWord, nil, vmerr.ErrUnknownOpcode)
	}
	op := isa.Op(opWord)
	n := isa.OperandCount(op)

	operands := make([]uint16, n)
	for i := 0; i < n; i++ {
		operands[i], err = c.mem.Load(c.pc + 1 + uint16(i))
		if err != nil {
			return vmerr.New(c.pc, opWord, operands, err)
		}
	}
	next := c.pc + 1 + uint16(n)

	if c.log != nil {
		c.log.Debug("exec", "pc", c.pc, "op", op.String(), "operands", operands)
	}

	fault := func(err error) error { return vmerr.New(c.pc, opWord, operands, err) }

	switch op {
	case isa.Halt:
		c.halted = true

	case isa.Set:
		dst, err := c.dstIndex(operands[0])
		if err != nil {
			return fault(err)
		}
		v, err := c.val(operands[1])
		if err != nil {
			return fault(err)
		}
		c.regs[dst] = v
		c.pc = next

	case isa.Push:
		v, err := c.val(operands[0])
		if err != nil {
			return fault(err)
		}
		c.stack.Push(v)
		c.pc = next

	case isa.Pop:
		dst, err := c.dstIndex(operands[0])
		if err != nil {
			return fault(err)
		}
		v, err := c.stack.Pop()
		if err != nil {
			return fault(err)
		}
		c.regs[dst] = v
		c.pc = next

	case isa.Eq, isa.Gt:
		dst, err := c.dstIndex(operands[0])
		if err != nil {
			return fault(err)
		}
		b, err := c.val(operands[1])
		if err != nil {
			return fault(err)
		}
		cc, err := c.val(operands[2])
		if err != nil {
			return fault(err)
		}
		cond := b == cc
		if op == isa.Gt {
			cond = b > cc
		}
		c.regs[dst] = boolWord(cond)
		c.pc = next

	case isa.Jmp:
		target, err := c.val(operands[0])
		if err != nil {
			return fault(err)
		}
		c.pc = target

	case isa.Jt, isa.Jf:
		a, err := c.val(operands[0])
		if err != nil {
			return fault(err)
		}
		target, err := c.val(operands[1])
		if err != nil {
			return fault(err)
		}
		take := a != 0
		if op == isa.Jf {
			take = a == 0
		}
		if take {
			c.pc = target
		} else {
			c.pc = next
		}

	case isa.Add, isa.Mult, isa.Mod, isa.And, isa.Or:
		dst, err := c.dstIndex(operands[0])
		if err != nil {
			return fault(err)
		}
		b, err := c.val(operands[1])
		if err != nil {
			return fault(err)
		}
		cc, err := c.val(operands[2])
		if err != nil {
			return fault(err)
		}
		result, err := arith(op, b, cc)
		if err != nil {
			return fault(err)
		}
		c.regs[dst] = result
		c.pc = next

	case isa.Not:
		dst, err := c.dstIndex(operands[0])
		if err != nil {
			return fault(err)
		}
		b, err := c.val(operands[1])
		if err != nil {
			return fault(err)
		}
		c.regs[dst] = (^b) & word.Max
		c.pc = next

	case isa.Rmem:
		dst, err := c.dstIndex(operands[0])
		if err != nil {
			return fault(err)
		}
		addr, err := c.val(operands[1])
		if err != nil {
			return fault(err)
		}
		v, err := c.mem.Load(addr)
		if err != nil {
			return fault(err)
		}
		c.regs[dst] = v
		c.pc = next

	case isa.Wmem:
		addr, err := c.val(operands[0])
		if err != nil {
			return fault(err)
		}
		v, err := c.val(operands[1])
		if err != nil {
			return fault(err)
		}
		if err := c.mem.Store(addr, v); err != nil {
			return fault(err)
		}
		c.pc = next

	case isa.Call:
		target, err := c.val(operands[0])
		if err != nil {
			return fault(err)
		}
		c.stack.Push(next)
		c.pc = target

	case isa.Ret:
		target, err := c.stack.Pop()
		if err != nil {
			c.halted = true
			return nil
		}
		c.pc = target

	case isa.Out:
		v, err := c.val(operands[0])
		if err != nil {
			return fault(err)
		}
		if _, err := c.out.Write([]byte{byte(v % 256)}); err != nil {
			return fault(errJoin(vmerr.ErrHostIO, err))
		}
		c.pc = next

	case isa.In:
		dst, err := c.dstIndex(operands[0])
		if err != nil {
			return fault(err)
		}
		b, err := c.in.ReadByte()
		if errors.Is(err, io.EOF) {
			c.halted = true
			return nil
		}
		if err != nil {
			return fault(errJoin(vmerr.ErrHostIO, err))
		}
		c.regs[dst] = uint16(b)
		c.pc = next

	case isa.Noop:
		c.pc = next
	}

	return nil
}

// val resolves an operand word read from the instruction stream to its
// value: a literal is its own value, a register reference is the register's
// current contents.
func (c *CPU) val(w uint16) (uint16, error) {
	switch {
	case word.IsLiteral(w):
		return w, nil
	case word.IsRegister(w):
		return c.regs[word.RegisterIndex(w)], nil
	default:
		return 0, vmerr.ErrMalformedOperand
	}
}

// dstIndex resolves a destination operand word to the register index it
// must name. A literal in a destination position is an error.
func (c *CPU) dstIndex(w uint16) (int, error) {
	if !word.IsRegister(w) {
		return 0, vmerr.ErrMalformedOperand
	}
	return word.RegisterIndex(w), nil
}

func boolWord(v bool) uint16 {
	if v {
		return 1
	}
	return 0
}

// arith computes the mod-32768 arithmetic/bitwise instructions. b and c have
// already been resolved to their values; aliasing between the destination
// and either source register is safe because both are read before this is
// called.
func arith(op isa.Op, b, c uint16) (uint16, error) {
	switch op {
	case isa.Add:
		return uint16((uint32(b) + uint32(c)) % word.Size), nil
	case isa.Mult:
		return uint16((uint32(b) * uint32(c)) % word.Size), nil
	case isa.Mod:
		if c == 0 {
			return 0, vmerr.ErrDivideByZero
		}
		return b % c, nil
	case isa.And:
		return b & c, nil
	case isa.Or:
		return b | c, nil
	default:
		return 0, vmerr.ErrUnknownOpcode
	}
}

// errJoin mirrors errors.Join but keeps Is/As working against both the
// sentinel category error and the concrete I/O error underneath it.
func errJoin(sentinel, underlying error) error {
	return errors.Join(sentinel, underlying)
}
