/*
 * synacore - CPU test cases.
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

package cpu

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jrcarver/synacore/emu/memory"
	"github.com/jrcarver/synacore/emu/vmerr"
)

const regBase = 32768

func newTestCPU(t *testing.T, program []uint16, stdin string) (*CPU, *bytes.Buffer) {
	t.Helper()

	mem := memory.New()
	for i, w := range program {
		if err := mem.Fill(uint16(i), w); err != nil {
			t.Fatalf("Fill(%d, %d) returned error: %v", i, w, err)
		}
	}

	out := &bytes.Buffer{}
	in := bufio.NewReader(strings.NewReader(stdin))
	return New(mem, in, out, nil, 0), out
}

func runProgram(t *testing.T, program []uint16, stdin string) (string, error) {
	t.Helper()
	c, out := newTestCPU(t, program, stdin)
	err := c.Run()
	return out.String(), err
}

// Scenario 1: print "A" and halt.
func TestScenarioPrintAndHalt(t *testing.T) {
	got, err := runProgram(t, []uint16{19, 65, 0}, "")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got != "A" {
		t.Errorf("stdout got %q expected %q", got, "A")
	}
}

// Scenario 2: set a register, then print it.
func TestScenarioSetAndRead(t *testing.T) {
	got, err := runProgram(t, []uint16{1, regBase, 42, 19, regBase, 0}, "")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got != string(rune(42)) {
		t.Errorf("stdout got %q expected byte 42", got)
	}
}

// Scenario 3: call a subroutine that prints, then ret and print again.
func TestScenarioCallRet(t *testing.T) {
	got, err := runProgram(t, []uint16{17, 5, 19, 89, 0, 19, 88, 18}, "")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got != "XY" {
		t.Errorf("stdout got %q expected %q", got, "XY")
	}
}

// Scenario 4: jf skips the dead branch and prints 'Y'.
func TestScenarioConditionalJump(t *testing.T) {
	program := []uint16{1, regBase, 0, 8, regBase, 9, 19, 78, 0, 19, 89, 0}
	got, err := runProgram(t, program, "")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got != "Y" {
		t.Errorf("stdout got %q expected %q", got, "Y")
	}
}

// Scenario 5: echo one byte read from stdin.
func TestScenarioEcho(t *testing.T) {
	got, err := runProgram(t, []uint16{20, regBase, 19, regBase, 0}, "Q")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got != "Q" {
		t.Errorf("stdout got %q expected %q", got, "Q")
	}
}

// Scenario 6: arithmetic wraps modulo 32768.
func TestScenarioArithmeticWrap(t *testing.T) {
	program := []uint16{9, regBase, 32767, 2, 19, regBase, 0}
	got, err := runProgram(t, program, "")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got != string(rune(1)) {
		t.Errorf("stdout got %q expected byte 1", got)
	}
}

func TestAddWraps(t *testing.T) {
	c, _ := newTestCPU(t, []uint16{9, regBase, 32767, 1, 0}, "")
	if err := c.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if c.regs[0] != 0 {
		t.Errorf("R0 got %d expected 0", c.regs[0])
	}
}

func TestMultWraps(t *testing.T) {
	c, _ := newTestCPU(t, []uint16{10, regBase, 32767, 32767, 0}, "")
	if err := c.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if c.regs[0] != 1 {
		t.Errorf("R0 got %d expected 1", c.regs[0])
	}
}

func TestNotMasksTo15Bits(t *testing.T) {
	c, _ := newTestCPU(t, []uint16{14, regBase, 0, 0}, "")
	if err := c.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if c.regs[0] != 32767 {
		t.Errorf("not 0 got %d expected 32767", c.regs[0])
	}

	c2, _ := newTestCPU(t, []uint16{14, regBase, 32767, 0}, "")
	if err := c2.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if c2.regs[0] != 0 {
		t.Errorf("not 32767 got %d expected 0", c2.regs[0])
	}
}

func TestModByZeroIsError(t *testing.T) {
	c, _ := newTestCPU(t, []uint16{11, regBase, 10, 0, 0}, "")
	err := c.Run()
	if !errors.Is(err, vmerr.ErrDivideByZero) {
		t.Errorf("Run error got %v, expected ErrDivideByZero", err)
	}
}

func TestRegisterReferenceOutOfRangeIsMalformed(t *testing.T) {
	c, _ := newTestCPU(t, []uint16{1, regBase, 32776, 0}, "")
	err := c.Run()
	if !errors.Is(err, vmerr.ErrMalformedOperand) {
		t.Errorf("Run error got %v, expected ErrMalformedOperand", err)
	}
}

func TestRmemReadsWrittenWord(t *testing.T) {
	// wmem 100 7, then rmem r0 100: both addresses are literals inside
	// 0..32767. The out-of-range address check in emu/memory is covered
	// by memory_test.go.
	c, _ := newTestCPU(t, []uint16{16, 100, 7, 15, regBase, 100, 0}, "")
	if err := c.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if c.regs[0] != 7 {
		t.Errorf("R0 got %d expected 7", c.regs[0])
	}
}

func TestPopEmptyIsStackUnderflow(t *testing.T) {
	c, _ := newTestCPU(t, []uint16{3, regBase, 0}, "")
	err := c.Run()
	if !errors.Is(err, vmerr.ErrStackUnderflow) {
		t.Errorf("Run error got %v, expected ErrStackUnderflow", err)
	}
}

func TestRetEmptyHaltsCleanly(t *testing.T) {
	c, _ := newTestCPU(t, []uint16{18}, "")
	if err := c.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !c.Halted() {
		t.Errorf("ret with empty stack did not halt")
	}
}

func TestInEOFHaltsCleanly(t *testing.T) {
	c, _ := newTestCPU(t, []uint16{20, regBase, 0}, "")
	if err := c.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !c.Halted() {
		t.Errorf("in on EOF did not halt")
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c, _ := newTestCPU(t, []uint16{2, 99, 3, regBase, 0}, "")
	if err := c.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if c.regs[0] != 99 {
		t.Errorf("R0 got %d expected 99", c.regs[0])
	}
	if !c.stack.Empty() {
		t.Errorf("stack not empty after matched push/pop")
	}
}

func TestNoopAdvancesPCByOne(t *testing.T) {
	c, _ := newTestCPU(t, []uint16{21, 0}, "")
	if err := c.Step(); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if c.PC() != 1 {
		t.Errorf("PC got %d expected 1", c.PC())
	}
	for _, r := range c.regs {
		if r != 0 {
			t.Errorf("noop modified a register: %v", c.regs)
		}
	}
}

func TestUnknownOpcodeIsError(t *testing.T) {
	c, _ := newTestCPU(t, []uint16{22}, "")
	err := c.Run()
	if !errors.Is(err, vmerr.ErrUnknownOpcode) {
		t.Errorf("Run error got %v, expected ErrUnknownOpcode", err)
	}
}

func TestAddDestinationAliasesSource(t *testing.T) {
	// add r0 r0 1: reads r0 (0) before writing it, so the result is 1, not 2.
	c, _ := newTestCPU(t, []uint16{9, regBase, regBase, 1, 0}, "")
	if err := c.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if c.regs[0] != 1 {
		t.Errorf("R0 got %d expected 1", c.regs[0])
	}
}

func TestMaxStepsAborts(t *testing.T) {
	mem := memory.New()
	// An infinite loop: jmp 0.
	if err := mem.Fill(0, 6); err != nil {
		t.Fatal(err)
	}
	if err := mem.Fill(1, 0); err != nil {
		t.Fatal(err)
	}
	c := New(mem, bufio.NewReader(strings.NewReader("")), &bytes.Buffer{}, nil, 10)
	err := c.Run()
	if !errors.Is(err, vmerr.ErrStepLimitExceeded) {
		t.Errorf("Run error got %v, expected ErrStepLimitExceeded", err)
	}
}
