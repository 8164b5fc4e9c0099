/*
 * synacore - Console input for the in instruction.
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

// Package console supplies the byte stream that backs the VM's in
// instruction. On a terminal it reads history-backed lines through liner; on
// a pipe or redirected file it reads raw bytes, so a recorded transcript
// replays byte-for-byte.
package console

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/peterh/liner"
)

// LineReader adapts a liner.State to io.ByteReader, one line (plus its
// trailing newline) at a time.
type LineReader struct {
	line   *liner.State
	prompt string
	buf    []byte
}

// NewLineReader returns a LineReader that prompts with prompt for each line.
func NewLineReader(prompt string) *LineReader {
	l := liner.NewLiner()
	l.SetCtrlCAborts(true)
	return &LineReader{line: l, prompt: prompt}
}

// ReadByte returns the next byte of console input, prompting for and
// buffering a full line when the current one is exhausted. It returns io.EOF
// once the user aborts the prompt (Ctrl-D or Ctrl-C).
func (r *LineReader) ReadByte() (byte, error) {
	for len(r.buf) == 0 {
		text, err := r.line.Prompt(r.prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return 0, io.EOF
			}
			return 0, err
		}
		r.line.AppendHistory(text)
		r.buf = append([]byte(text), '\n')
	}
	b := r.buf[0]
	r.buf = r.buf[1:]
	return b, nil
}

// Close releases the underlying terminal state.
func (r *LineReader) Close() error {
	return r.line.Close()
}

// ByteSource picks the right io.ByteReader for f: an interactive,
// history-backed LineReader when f is a character device (a terminal, but
// also e.g. /dev/null), or a plain buffered reader over f otherwise. The
// LineReader reads through liner, which uses the process's own standard
// input rather than f. The returned func closes any resource ByteSource
// opened; it is always safe to call.
func ByteSource(f *os.File, prompt string) (io.ByteReader, func() error) {
	if isTerminal(f) {
		r := NewLineReader(prompt)
		return r, r.Close
	}
	return bufio.NewReader(f), func() error { return nil }
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
