/*
 * synacore - Program image loader
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

// Package loader fills a Memory from a flat little-endian binary image: each
// pair of bytes becomes one word, starting at address 0. Cells beyond the
// image stay zero.
package loader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/jrcarver/synacore/emu/memory"
	"github.com/jrcarver/synacore/emu/word"
)

// ErrOddLength is returned when the image's byte count is not a multiple of
// two: every word is two bytes, so a trailing odd byte can never be decoded.
var ErrOddLength = errors.New("program image length is not a multiple of two bytes")

// ErrTooLarge is returned when the image holds more words than Memory can
// address.
var ErrTooLarge = errors.New("program image is larger than the addressable memory")

// Load reads r as a stream of little-endian 16-bit words and fills mem
// starting at address 0.
func Load(r io.Reader, mem *memory.Memory) error {
	var addr uint16
	var buf [2]byte

	for {
		n, err := io.ReadFull(r, buf[:])
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			if n == 1 {
				return ErrOddLength
			}
			return nil
		case err != nil:
			return fmt.Errorf("reading program image: %w", err)
		}

		if int(addr) >= word.Size {
			return ErrTooLarge
		}

		if err := mem.Fill(addr, binary.LittleEndian.Uint16(buf[:])); err != nil {
			return err
		}
		addr++
	}
}
