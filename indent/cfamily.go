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

package indent

import (
	"github.com/timburks/chisel/highlight"
	"github.com/timburks/chisel/skip"
	chisel "github.com/timburks/chisel/types"
)

// CFamily indents C and C++ by brace depth.
type CFamily struct {
	Highlighter highlight.Highlighter
	// Pause keywords make their next brace leave its body unindented.
	Pause []string
	// Outdent keywords start lines that sit one level left of their block.
	Outdent []string
	// Continue keywords indent the following line when it has no brace.
	Continue []string
}

// NewCFamily returns a C-family engine that finds comments and strings with h.
func NewCFamily(h highlight.Highlighter) *CFamily {
	return &CFamily{
		Highlighter: h,
		Pause:       []string{"namespace", "extern"},
		Outdent:     []string{"case", "default", "public", "private", "protected"},
		Continue:    []string{"else", "do"},
	}
}

// braces tracks the open braces and parentheses before a line.
// Each brace records whether it counts toward the depth.
type braces struct {
	open   []bool
	parens []int
	pause  bool
}

func (b *braces) depth() int {
	n := 0
	for _, counted := range b.open {
		if counted {
			n++
		}
	}
	return n
}

func (e *CFamily) scan(text []rune, ub int, rs skip.Regions) braces {
	var b braces
	for i := 0; i < ub; i++ {
		if r, ok := rs.Find(i); ok {
			i = r.Ub - 1
			continue
		}
		c := text[i]
		switch {
		case c == '{':
			b.open = append(b.open, !b.pause)
			b.pause = false
		case c == '}':
			if n := len(b.open); n > 0 {
				b.open = b.open[:n-1]
			}
			b.pause = false
		case c == ';':
			b.pause = false
		case c == '(':
			b.parens = append(b.parens, i)
		case c == ')':
			if n := len(b.parens); n > 0 {
				b.parens = b.parens[:n-1]
			}
		case isIdentStart(c) && (i == 0 || !isIdent(text[i-1])):
			j := wordAt(text, i, ub)
			if contains(e.Pause, string(text[i:j])) {
				b.pause = true
			}
			i = j - 1
		}
	}
	return b
}

// ComputeIndent returns the indentation of the line containing cursor.
func (e *CFamily) ComputeIndent(text []rune, cursor int) Result {
	line := skip.LineStart(text, cursor)
	end := skip.LineEnd(text, line)
	if span, ok := enclosing(e.Highlighter, text, line); ok {
		if span.Scope == chisel.ScopePreprocessor {
			return Result{Tabs: 1}
		}
		return current(text, line)
	}
	rs := Regions(e.Highlighter, text, end)
	b := e.scan(text, line, rs)
	depth := b.depth()

	first := skip.FirstSignificant(text, line, end, rs, skip.Blank)
	if first < end {
		switch {
		case text[first] == '}':
			if n := len(b.open); n == 0 || b.open[n-1] {
				depth--
			}
		case e.colonLine(text, first, end):
			depth--
		}
	}

	prev, last := skip.PreviousLine(text, line, rs)
	if prev < 0 {
		return clamp(depth)
	}
	if n := len(b.parens); n > 0 {
		return e.align(text, prev, b.parens)
	}
	if e.continues(text, last, first, end) {
		depth++
	}
	return clamp(depth)
}

// align places a line inside parentheses just past the first unmatched
// parenthesis of the previous line, or copies that line's indentation.
func (e *CFamily) align(text []rune, prev int, parens []int) Result {
	for _, p := range parens {
		if p >= prev {
			tabs, _, _ := skip.LeadingWhitespace(text, prev)
			return Result{Tabs: tabs, Spaces: p + 1 - prev - tabs}
		}
	}
	return current(text, prev)
}

// colonLine returns true for case labels, access specifiers and goto labels.
func (e *CFamily) colonLine(text []rune, first, end int) bool {
	if !isIdentStart(text[first]) {
		return false
	}
	j := wordAt(text, first, end)
	if contains(e.Outdent, string(text[first:j])) {
		for k := j; k < end; k++ {
			if text[k] == ':' {
				return true
			}
		}
		return false
	}
	for j < end && skip.Blank(text[j]) {
		j++
	}
	return j < end && text[j] == ':' && (j+1 == end || text[j+1] != ':')
}

// continues returns true if the previous statement is unfinished.
func (e *CFamily) continues(text []rune, last, first, end int) bool {
	brace := first < end && (text[first] == '{' || text[first] == '}')
	switch {
	case text[last] == '\\':
		return true
	case text[last] == ')':
		return !brace
	case contains(e.Continue, wordBefore(text, last)):
		return !brace
	}
	return false
}
