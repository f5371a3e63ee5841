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
package editor

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Motions move the cursor without changing the buffer.

func (e *Editor) ForwardChar(n int) {
	e.SetCursor(e.cursor + n)
}

func (e *Editor) BackwardChar(n int) {
	e.SetCursor(e.cursor - n)
}

// NextLine moves down n lines, keeping the column where the vertical
// motion started. Negative n moves up.
func (e *Editor) NextLine(n int) {
	column := e.column
	row, col := e.buffer.Position(e.cursor)
	if column < 0 {
		column = col
	}
	row = clipToRange(row+n, 0, e.buffer.LineCount()-1)
	start := e.buffer.LineOffset(row)
	end := e.buffer.LineEnd(start)
	e.SetCursor(clipToRange(start+column, start, end))
	e.column = column
}

func (e *Editor) PreviousLine(n int) {
	e.NextLine(-n)
}

func (e *Editor) BeginningOfLine() {
	e.SetCursor(e.buffer.LineStart(e.cursor))
}

func (e *Editor) EndOfLine() {
	e.SetCursor(e.buffer.LineEnd(e.cursor))
}

func (e *Editor) BeginningOfBuffer() {
	e.SetCursor(0)
}

func (e *Editor) EndOfBuffer() {
	e.SetCursor(e.buffer.Len())
}

// GotoLine moves to the start of line n, counting from one.
func (e *Editor) GotoLine(n int) {
	e.SetCursor(e.buffer.LineOffset(clipToRange(n-1, 0, e.buffer.LineCount()-1)))
}

func (e *Editor) PageDown() {
	e.NextLine(e.window.textRows())
}

func (e *Editor) PageUp() {
	e.NextLine(-e.window.textRows())
}

// A segment is a range of characters that uniseg treats as one word.
type segment struct {
	lb, ub int
	word   bool
}

// words splits the characters in [lb, ub) at word boundaries.
func (e *Editor) words(lb, ub int) []segment {
	segments := make([]segment, 0)
	rest := e.buffer.Slice(lb, ub)
	state := -1
	var word string
	for len(rest) > 0 {
		word, rest, state = uniseg.FirstWordInString(rest, state)
		n := len([]rune(word))
		s := segment{lb: lb, ub: lb + n}
		for _, c := range word {
			if unicode.IsLetter(c) || unicode.IsDigit(c) {
				s.word = true
				break
			}
		}
		segments = append(segments, s)
		lb += n
	}
	return segments
}

// ForwardWord moves to the end of the next word.
func (e *Editor) ForwardWord(n int) {
	for ; n > 0; n-- {
		pos := e.cursor
		for line := pos; line < e.buffer.Len(); {
			end := e.buffer.LineEnd(line)
			found := false
			for _, s := range e.words(pos, end) {
				if s.word {
					pos = s.ub
					found = true
					break
				}
			}
			if found {
				break
			}
			pos = end
			if end < e.buffer.Len() {
				pos = end + 1
			}
			line = pos
		}
		e.SetCursor(pos)
	}
}

// BackwardWord moves to the start of the previous word.
func (e *Editor) BackwardWord(n int) {
	for ; n > 0; n-- {
		pos := e.cursor
		for {
			start := e.buffer.LineStart(pos)
			segments := e.words(start, pos)
			found := false
			for i := len(segments) - 1; i >= 0; i-- {
				if segments[i].word {
					pos = segments[i].lb
					found = true
					break
				}
			}
			if found || start == 0 {
				if !found {
					pos = 0
				}
				break
			}
			pos = start - 1
		}
		e.SetCursor(pos)
	}
}

// Search moves to the next occurrence of text after the cursor, wrapping
// around the end of the buffer. It returns false if there is none.
func (e *Editor) Search(text string) bool {
	needle := []rune(text)
	hay := e.buffer.Text()
	if len(needle) == 0 || len(needle) > len(hay) {
		e.message = "not found: " + text
		return false
	}
	n := len(hay)
	for k := 1; k <= n; k++ {
		i := (e.cursor + k) % n
		if i+len(needle) > n {
			continue
		}
		if match(hay[i:], needle) {
			e.SetCursor(i)
			e.message = ""
			return true
		}
	}
	e.message = "not found: " + text
	return false
}

func match(text, prefix []rune) bool {
	for i, c := range prefix {
		if text[i] != c {
			return false
		}
	}
	return true
}
