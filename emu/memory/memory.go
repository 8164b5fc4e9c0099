/*
 * synacore - Word-addressed memory
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

// Package memory is the VM's word-addressed store: 2^15 cells, each holding
// one 16-bit word, indexed directly by address with no byte-doubling.
package memory

import (
	"fmt"

	"github.com/jrcarver/synacore/emu/vmerr"
	"github.com/jrcarver/synacore/emu/word"
)

// Memory is the VM's main store. The zero value is ready to use: every cell
// starts at 0.
type Memory struct {
	cells [word.Size]uint16
}

// New returns a freshly zeroed Memory.
func New() *Memory {
	return &Memory{}
}

// Load returns the word at addr. It fails if addr is outside 0..32767.
func (m *Memory) Load(addr uint16) (uint16, error) {
	if int(addr) >= word.Size {
		return 0, fmt.Errorf("load at address %d: %w", addr, vmerr.ErrMemoryRange)
	}
	return m.cells[addr], nil
}

// Store writes value at addr. It fails if addr is outside 0..32767 or value
// is not itself a valid word (0..32767).
func (m *Memory) Store(addr, value uint16) error {
	if int(addr) >= word.Size {
		return fmt.Errorf("store at address %d: %w", addr, vmerr.ErrMemoryRange)
	}
	if value > word.Max {
		return fmt.Errorf("store at address %d: value %d exceeds word range: %w", addr, value, vmerr.ErrMalformedOperand)
	}
	m.cells[addr] = value
	return nil
}

// Fill writes value at addr without validating that value is itself a valid
// word. It exists for the image loader, which copies raw bytes off disk
// verbatim the way the reference implementation does. The CPU writes only
// through Store, which rejects any value above 32767, so this relaxed path
// is never available to running code.
func (m *Memory) Fill(addr, value uint16) error {
	if int(addr) >= word.Size {
		return fmt.Errorf("fill at address %d: %w", addr, vmerr.ErrMemoryRange)
	}
	m.cells[addr] = value
	return nil
}
