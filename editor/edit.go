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
	"log"
	"strings"

	"github.com/timburks/chisel/indent"
	"github.com/timburks/chisel/operations"
	"github.com/timburks/chisel/skip"
)

// These editor primitives are the actions that keys and lisp functions invoke.

// InsertRune inserts c at the cursor. Runs of typed characters are undone together.
func (e *Editor) InsertRune(c rune) {
	if e.typing != nil && e.typing.Ub == e.cursor {
		e.buffer.InsertChar(e.cursor, c)
		e.cursor++
		e.typing.Extend(1)
		e.modified = true
		return
	}
	e.typing = nil
	inverse := (&operations.Insert{Offset: e.cursor, Text: string(c)}).Perform(e)
	e.undo = append(e.undo, inverse)
	e.modified = true
	e.typing = inverse.(*operations.Erase)
}

// InsertText inserts s at the cursor as a single operation.
func (e *Editor) InsertText(s string) {
	e.Perform(&operations.Insert{Offset: e.cursor, Text: s})
}

// Newline breaks the line at the cursor and indents the new line.
func (e *Editor) Newline() {
	e.InsertRune('\n')
	e.IndentLine()
}

// DeleteBackward erases the character before the cursor.
func (e *Editor) DeleteBackward() {
	if e.cursor == 0 {
		return
	}
	if e.typing != nil && e.typing.Ub == e.cursor && e.typing.Ub > e.typing.Lb {
		e.buffer.Erase(e.cursor-1, e.cursor)
		e.cursor--
		e.typing.Extend(-1)
		return
	}
	e.Perform(&operations.Erase{Lb: e.cursor - 1, Ub: e.cursor})
}

// DeleteForward erases the character under the cursor.
func (e *Editor) DeleteForward() {
	if e.cursor == e.buffer.Len() {
		return
	}
	e.Perform(&operations.Erase{Lb: e.cursor, Ub: e.cursor + 1})
}

// IndentLine reindents the line holding the cursor as the mode computes it.
func (e *Editor) IndentLine() {
	if e.mode == nil {
		return
	}
	r := e.mode.ComputeIndent(e.buffer.Text(), e.cursor)
	e.ApplyIndent(r)
}

// ApplyIndent replaces the leading whitespace of the cursor's line with r.
// A cursor inside the old whitespace moves to the end of the new one.
func (e *Editor) ApplyIndent(r indent.Result) {
	r = r.Expand(e.tabWidth, e.useTabs)
	text := e.buffer.Text()
	line := skip.LineStart(text, e.cursor)
	_, _, end := skip.LeadingWhitespace(text, line)
	want := r.String()
	cursor := e.cursor
	if string(text[line:end]) != want {
		e.Perform(&operations.Sequence{Operations: []operations.Operation{
			&operations.Erase{Lb: line, Ub: end},
			&operations.Insert{Offset: line, Text: want},
		}})
	}
	newEnd := line + len([]rune(want))
	if cursor < end {
		e.SetCursor(newEnd)
	} else {
		e.SetCursor(cursor + newEnd - end)
	}
}

// KillLine removes the text from the cursor to the end of the line, or
// the newline when the cursor is already at the end. Kills made one after
// another are collected together.
func (e *Editor) KillLine() {
	end := e.buffer.LineEnd(e.cursor)
	if end == e.cursor {
		if end == e.buffer.Len() {
			return
		}
		end++
	}
	text := e.buffer.Slice(e.cursor, end)
	if e.killAt == e.cursor && e.killDepth == len(e.undo) {
		text = e.kill + text
	}
	e.Perform(&operations.Erase{Lb: e.cursor, Ub: end})
	e.kill = text
	e.killAt = e.cursor
	e.killDepth = len(e.undo)
	if e.clipboard != nil {
		if err := e.clipboard.WriteAll(text); err != nil {
			log.Printf("clipboard: %v", err)
		}
	}
}

// Yank inserts the clipboard contents, or the last kill, count times.
func (e *Editor) Yank(count int) {
	text := e.kill
	if e.clipboard != nil {
		s, err := e.clipboard.ReadAll()
		if err != nil {
			log.Printf("clipboard: %v", err)
		} else if s != "" {
			text = s
		}
	}
	if text == "" {
		e.message = "nothing to yank"
		return
	}
	e.Perform(&operations.Paste{Text: text, Count: count})
}

// JoinLine joins the cursor's line with the one after it.
func (e *Editor) JoinLine(count int) {
	e.Perform(&operations.JoinLine{Count: count})
}

// CommentLine comments out the cursor's line with prefix, or removes
// the prefix from a line that already starts with it.
func (e *Editor) CommentLine(prefix string) {
	e.WrapLine(prefix, "")
}

// WrapLine puts open after the indentation of the cursor's line and close
// at its end, or removes them when the line is already wrapped.
func (e *Editor) WrapLine(open, close string) {
	text := e.buffer.Text()
	line := skip.LineStart(text, e.cursor)
	end := skip.LineEnd(text, e.cursor)
	_, _, first := skip.LeadingWhitespace(text, line)
	body := string(text[first:end])
	trimmed := strings.TrimRight(body, " \t")
	last := first + len([]rune(trimmed))
	cursor := e.cursor

	var ops []operations.Operation
	if strings.HasPrefix(trimmed, strings.TrimRight(open, " ")) &&
		strings.HasSuffix(trimmed, strings.TrimLeft(close, " ")) &&
		len(trimmed) >= len(strings.TrimRight(open, " "))+len(strings.TrimLeft(close, " ")) {
		o := []rune(open)
		if !strings.HasPrefix(trimmed, open) {
			o = []rune(strings.TrimRight(open, " "))
		}
		c := []rune(close)
		if !strings.HasSuffix(trimmed, close) {
			c = []rune(strings.TrimLeft(close, " "))
		}
		ops = []operations.Operation{
			&operations.Erase{Lb: last - len(c), Ub: last},
			&operations.Erase{Lb: first, Ub: first + len(o)},
		}
	} else {
		if trimmed == "" {
			return
		}
		ops = []operations.Operation{
			&operations.Insert{Offset: last, Text: close},
			&operations.Insert{Offset: first, Text: open},
		}
	}
	e.Perform(&operations.Sequence{Operations: ops})
	e.SetCursor(clipToRange(cursor, 0, e.buffer.LineEnd(line)))
}
