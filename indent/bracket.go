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
	"strings"

	"github.com/timburks/chisel/highlight"
	"github.com/timburks/chisel/skip"
)

// Bracket indents by the nesting of (), [] and {}.
type Bracket struct {
	Highlighter highlight.Highlighter
	// Punctuation lists the characters that end a complete line.
	// A previous line ending in anything else continues onto the next one.
	// An empty Punctuation disables continuation lines.
	Punctuation string
	// NoExtra keywords ending a line do not continue it.
	NoExtra []string
	// Outdent keywords start lines that sit one level left of their block.
	Outdent []string
}

// NewBracket returns a bracket engine that finds comments and strings with h.
func NewBracket(h highlight.Highlighter) *Bracket {
	return &Bracket{
		Highlighter: h,
		Punctuation: ";{}()[],",
		NoExtra:     []string{"where", "else"},
	}
}

const (
	openers = "([{"
	closers = ")]}"
)

// ComputeIndent returns the indentation of the line containing cursor.
func (e *Bracket) ComputeIndent(text []rune, cursor int) Result {
	line := skip.LineStart(text, cursor)
	end := skip.LineEnd(text, line)
	if _, ok := enclosing(e.Highlighter, text, line); ok {
		return current(text, line)
	}
	rs := Regions(e.Highlighter, text, end)
	depth := 0
	for i := 0; i < line; i++ {
		if r, ok := rs.Find(i); ok {
			i = r.Ub - 1
			continue
		}
		switch c := text[i]; {
		case strings.ContainsRune(openers, c):
			depth++
		case strings.ContainsRune(closers, c):
			depth--
		}
	}
	first := skip.FirstSignificant(text, line, end, rs, skip.Blank)
	closer := first < end && strings.ContainsRune(closers, text[first])
	if closer {
		depth--
	} else if first < end && isIdentStart(text[first]) &&
		contains(e.Outdent, string(text[first:wordAt(text, first, end)])) {
		depth--
	}
	_, last := skip.PreviousLine(text, line, rs)
	if last >= 0 && e.Punctuation != "" && !closer &&
		!strings.ContainsRune(e.Punctuation, text[last]) &&
		!contains(e.NoExtra, wordBefore(text, last)) {
		depth++
	}
	return clamp(depth)
}
