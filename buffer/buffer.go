//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package buffer holds the characters of a file being edited.
//
// A Buffer is a single contiguous slice of characters. Its capacity grows
// in fixed increments and is never given back when text is erased.
// Indices passed to the mutating functions are not checked beyond what the
// Go runtime does; callers validate them against Len first.
package buffer

import (
	"fmt"
	"unicode/utf8"
)

// Granularity is the allocation increment, in characters.
const Granularity = 4096

// A Buffer represents the text of a file being edited.
type Buffer struct {
	text []rune
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{text: make([]rune, 0, Granularity)}
}

// RawByte is the first of the 256 characters that stand for bytes of a
// file that are not valid UTF-8. They lie in the surrogate range, which
// no valid UTF-8 input can produce.
const RawByte rune = 0xDC00

// IsRawByte returns true if c stands for an undecodable byte.
func IsRawByte(c rune) bool {
	return c >= RawByte && c < RawByte+0x100
}

// FromSource returns a buffer holding the characters of src.
// Bytes that are not valid UTF-8 are kept as raw byte characters so that
// Bytes returns src unchanged.
func FromSource(src []byte) *Buffer {
	n := utf8.RuneCount(src)
	b := &Buffer{text: make([]rune, 0, roundUp(n))}
	for len(src) > 0 {
		r, size := utf8.DecodeRune(src)
		if r == utf8.RuneError && size == 1 {
			r = RawByte + rune(src[0])
		}
		b.text = append(b.text, r)
		src = src[size:]
	}
	return b
}

func roundUp(n int) int {
	if n == 0 {
		return Granularity
	}
	return (n + Granularity - 1) / Granularity * Granularity
}

// reserve makes room for n more characters.
func (b *Buffer) reserve(n int) {
	need := len(b.text) + n
	if need <= cap(b.text) {
		return
	}
	grown := make([]rune, len(b.text), roundUp(need))
	copy(grown, b.text)
	b.text = grown
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Cap returns the number of characters the buffer can hold without growing.
func (b *Buffer) Cap() int {
	return cap(b.text)
}

// At returns the character at index i.
func (b *Buffer) At(i int) rune {
	return b.text[i]
}

// Text returns the buffer contents. The slice aliases the buffer and must
// not be modified or retained across edits.
func (b *Buffer) Text() []rune {
	return b.text
}

// Slice returns the text in [lb, ub) as a string.
func (b *Buffer) Slice(lb, ub int) string {
	return string(b.text[lb:ub])
}

func (b *Buffer) String() string {
	return string(b.text)
}

// Bytes returns the UTF-8 encoding of the buffer, suitable for saving.
// Raw byte characters are written as the bytes they stand for.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, 0, len(b.text))
	for _, c := range b.text {
		if IsRawByte(c) {
			out = append(out, byte(c-RawByte))
			continue
		}
		out = utf8.AppendRune(out, c)
	}
	return out
}

// InsertChar inserts c before index i.
func (b *Buffer) InsertChar(i int, c rune) {
	b.reserve(1)
	b.text = b.text[:len(b.text)+1]
	copy(b.text[i+1:], b.text[i:])
	b.text[i] = c
}

// InsertRunes inserts rs before index i.
func (b *Buffer) InsertRunes(i int, rs []rune) {
	n := len(rs)
	if n == 0 {
		return
	}
	b.reserve(n)
	b.text = b.text[:len(b.text)+n]
	copy(b.text[i+n:], b.text[i:])
	copy(b.text[i:], rs)
}

// InsertString inserts s before index i.
func (b *Buffer) InsertString(i int, s string) {
	b.InsertRunes(i, []rune(s))
}

// Erase removes the characters in [lb, ub).
func (b *Buffer) Erase(lb, ub int) {
	if lb < 0 || lb > ub || ub > len(b.text) {
		panic(fmt.Sprintf("buffer: erase [%d, %d) out of range [0, %d]", lb, ub, len(b.text)))
	}
	n := copy(b.text[lb:], b.text[ub:])
	b.text = b.text[:lb+n]
}

// LineStart returns the index of the first character of the line containing i.
func (b *Buffer) LineStart(i int) int {
	for i > 0 && b.text[i-1] != '\n' {
		i--
	}
	return i
}

// LineEnd returns the index of the newline ending the line containing i,
// or Len if it is the last line.
func (b *Buffer) LineEnd(i int) int {
	for i < len(b.text) && b.text[i] != '\n' {
		i++
	}
	return i
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	n := 1
	for _, c := range b.text {
		if c == '\n' {
			n++
		}
	}
	return n
}

// LineOffset returns the index of the first character of line row.
// Rows past the end return the start of the last line.
func (b *Buffer) LineOffset(row int) int {
	off := 0
	for i, c := range b.text {
		if row == 0 {
			break
		}
		if c == '\n' {
			row--
			off = i + 1
		}
	}
	return off
}

// Position returns the row and column of index i.
func (b *Buffer) Position(i int) (row, col int) {
	start := 0
	for j := 0; j < i; j++ {
		if b.text[j] == '\n' {
			row++
			start = j + 1
		}
	}
	return row, i - start
}
