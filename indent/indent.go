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

// Package indent computes the indentation of a line from the text above it.
package indent

import (
	"unicode"

	"github.com/timburks/chisel/highlight"
	"github.com/timburks/chisel/skip"
	chisel "github.com/timburks/chisel/types"
)

// A Result is the leading whitespace of a line: tabs followed by spaces.
type Result struct {
	Tabs   int
	Spaces int
}

// Expand converts a result for a buffer indented with spaces.
func (r Result) Expand(width int, useTabs bool) Result {
	if useTabs {
		return r
	}
	return Result{Spaces: r.Tabs*width + r.Spaces}
}

// String returns the whitespace of the result.
func (r Result) String() string {
	s := make([]rune, 0, r.Tabs+r.Spaces)
	for i := 0; i < r.Tabs; i++ {
		s = append(s, '\t')
	}
	for i := 0; i < r.Spaces; i++ {
		s = append(s, ' ')
	}
	return string(s)
}

// An Engine computes the indentation of the line containing cursor.
type Engine interface {
	ComputeIndent(text []rune, cursor int) Result
}

func opaque(s chisel.Scope) bool {
	switch s {
	case chisel.ScopeComment, chisel.ScopeString, chisel.ScopeChar, chisel.ScopePreprocessor:
		return true
	}
	return false
}

// Regions returns the comments, strings and directives of text that begin
// before ub, as found by h.
func Regions(h highlight.Highlighter, text []rune, ub int) skip.Regions {
	rs := make(skip.Regions, 0)
	if h == nil {
		return rs
	}
	for start := 0; start < len(text); {
		span, ok := h.FindNextSpan(text, start)
		if !ok || span.Lb >= ub {
			break
		}
		if opaque(span.Scope) {
			rs = append(rs, skip.Region{Lb: span.Lb, Ub: span.Ub})
		}
		start = span.Ub
	}
	return rs
}

// enclosing returns the opaque span that contains the newline ending the
// line before line.
func enclosing(h highlight.Highlighter, text []rune, line int) (chisel.Span, bool) {
	if h == nil {
		return chisel.Span{}, false
	}
	for start := 0; start < len(text); {
		span, ok := h.FindNextSpan(text, start)
		if !ok || span.Lb >= line {
			break
		}
		if span.Ub >= line && opaque(span.Scope) {
			return span, true
		}
		start = span.Ub
	}
	return chisel.Span{}, false
}

// current returns the existing indentation of the line starting at line.
func current(text []rune, line int) Result {
	tabs, spaces, _ := skip.LeadingWhitespace(text, line)
	return Result{Tabs: tabs, Spaces: spaces}
}

func clamp(depth int) Result {
	if depth < 0 {
		depth = 0
	}
	return Result{Tabs: depth}
}

func isIdentStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isIdent(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

// wordAt returns the end of the word starting at i.
func wordAt(text []rune, i, ub int) int {
	for i < ub && isIdent(text[i]) {
		i++
	}
	return i
}

// wordBefore returns the word ending at last, inclusive.
func wordBefore(text []rune, last int) string {
	if last < 0 || !isIdent(text[last]) {
		return ""
	}
	i := last
	for i > 0 && isIdent(text[i-1]) {
		i--
	}
	return string(text[i : last+1])
}

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}

// Copy repeats the indentation of the previous non-blank line.
type Copy struct{}

// ComputeIndent returns the indentation of the previous non-blank line.
func (Copy) ComputeIndent(text []rune, cursor int) Result {
	line := skip.LineStart(text, cursor)
	for line > 0 {
		line = skip.LineStart(text, line-1)
		if skip.FirstSignificant(text, line, skip.LineEnd(text, line), nil, skip.Blank) < skip.LineEnd(text, line) {
			return current(text, line)
		}
	}
	return Result{}
}

// Flat indents assembly: one tab for instructions, none for labels.
type Flat struct{}

// ComputeIndent returns zero for lines ending in a colon and for the last
// line of the buffer, and one tab otherwise.
func (Flat) ComputeIndent(text []rune, cursor int) Result {
	line := skip.LineStart(text, cursor)
	end := skip.LineEnd(text, line)
	if end == len(text) {
		return Result{}
	}
	if last := skip.LastSignificant(text, line, end, nil, skip.Blank); last >= 0 && text[last] == ':' {
		return Result{}
	}
	return Result{Tabs: 1}
}
