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
	"unicode"

	"github.com/timburks/chisel/highlight"
	"github.com/timburks/chisel/skip"
)

// Markup indents HTML and XML by element nesting.
type Markup struct {
	Highlighter highlight.Highlighter
	// Void elements never have a closing tag.
	Void []string
}

// NewMarkup returns a markup engine that finds comments with h.
func NewMarkup(h highlight.Highlighter) *Markup {
	return &Markup{
		Highlighter: h,
		Void: []string{
			"area", "base", "br", "col", "embed", "hr", "img", "input",
			"link", "meta", "param", "source", "track", "wbr",
		},
	}
}

// tag reads the tag starting at i and returns its name, whether it closes
// an element, whether it closes itself, and the index after it.
func tag(text []rune, i, ub int, rs skip.Regions) (name string, closing, selfClosing bool, next int) {
	j := i + 1
	if j < ub && text[j] == '/' {
		closing = true
		j++
	}
	k := j
	for k < ub && (text[k] == '-' || text[k] == ':' || text[k] == '_' || unicode.IsLetter(text[k]) || unicode.IsDigit(text[k])) {
		k++
	}
	name = strings.ToLower(string(text[j:k]))
	for ; k < ub; k++ {
		if r, ok := rs.Find(k); ok {
			k = r.Ub - 1
			continue
		}
		if text[k] == '>' {
			selfClosing = text[k-1] == '/'
			return name, closing, selfClosing, k + 1
		}
	}
	return name, closing, false, k
}

// ComputeIndent returns the indentation of the line containing cursor.
func (e *Markup) ComputeIndent(text []rune, cursor int) Result {
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
		if text[i] != '<' {
			continue
		}
		name, closing, selfClosing, next := tag(text, i, len(text), rs)
		switch {
		case name == "":
		case closing:
			depth--
		case !selfClosing && !contains(e.Void, name):
			depth++
		}
		if next > i+1 && next <= line {
			i = next - 1
		}
	}
	first := skip.FirstSignificant(text, line, end, rs, skip.Blank)
	if first+1 < end && text[first] == '<' && text[first+1] == '/' {
		depth--
	}
	return clamp(depth)
}
