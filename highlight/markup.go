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

package highlight

import (
	"unicode"

	chisel "github.com/timburks/chisel/types"
)

// Markup highlights HTML and XML.
type Markup struct {
	palette Palette
}

// NewMarkup returns a markup highlighter.
func NewMarkup(p Palette) *Markup {
	return &Markup{palette: p}
}

func isNameChar(c rune) bool {
	return c == '-' || c == '_' || c == ':' || c == '.' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

// FindNextSpan returns the next span at or after start.
func (m *Markup) FindNextSpan(text []rune, start int) (chisel.Span, bool) {
	for pos := start; pos < len(text); {
		t := m.step(text, pos)
		if t.stop {
			return chisel.Span{}, false
		}
		if t.scope != chisel.ScopeNone {
			return m.palette.span(t.lb, t.ub, t.scope), true
		}
		pos = t.ub
	}
	return chisel.Span{}, false
}

func (m *Markup) step(text []rune, pos int) token {
	c := text[pos]
	switch {
	case hasPrefix(text, pos, "<!--"):
		end := index(text, pos+4, []rune("-->"))
		if end < 0 {
			return stop(pos)
		}
		return token{lb: pos, ub: end + 3, scope: chisel.ScopeComment}
	case hasPrefix(text, pos, "<![CDATA["):
		end := index(text, pos+9, []rune("]]>"))
		if end < 0 {
			return stop(pos)
		}
		return token{lb: pos, ub: end + 3, scope: chisel.ScopeString}
	case hasPrefix(text, pos, "<!") || hasPrefix(text, pos, "<?"):
		end := index(text, pos+2, []rune(">"))
		if end < 0 {
			return stop(pos)
		}
		return token{lb: pos, ub: end + 1, scope: chisel.ScopePreprocessor}
	case c == '<':
		i := pos + 1
		if i < len(text) && text[i] == '/' {
			i++
		}
		j := i
		for j < len(text) && isNameChar(text[j]) {
			j++
		}
		if j == i {
			return plain(pos, pos+1)
		}
		return token{lb: pos, ub: j, scope: chisel.ScopeTag}
	case c == '&':
		for i := pos + 1; i < len(text) && i-pos <= 32; i++ {
			if text[i] == ';' {
				if i == pos+1 {
					break
				}
				return token{lb: pos, ub: i + 1, scope: chisel.ScopeChar}
			}
			if !(text[i] == '#' || unicode.IsLetter(text[i]) || unicode.IsDigit(text[i])) {
				break
			}
		}
		return plain(pos, pos+1)
	}
	if !insideTag(text, pos) {
		return m.blanks(text, pos)
	}
	switch {
	case c == '>':
		return token{lb: pos, ub: pos + 1, scope: chisel.ScopeTag}
	case c == '/' && pos+1 < len(text) && text[pos+1] == '>':
		return token{lb: pos, ub: pos + 2, scope: chisel.ScopeTag}
	case c == '"' || c == '\'':
		end := index(text, pos+1, []rune{c})
		if end < 0 {
			return plain(pos, pos+1)
		}
		return token{lb: pos, ub: end + 1, scope: chisel.ScopeString}
	case isNameChar(c):
		i := pos + 1
		for i < len(text) && isNameChar(text[i]) {
			i++
		}
		j := i
		for j < len(text) && unicode.IsSpace(text[j]) {
			j++
		}
		if j < len(text) && text[j] == '=' {
			return token{lb: pos, ub: i, scope: chisel.ScopeAttribute}
		}
		return plain(pos, i)
	}
	return m.blanks(text, pos)
}

func (m *Markup) blanks(text []rune, pos int) token {
	if !isBlank(text[pos]) {
		return plain(pos, pos+1)
	}
	i := pos + 1
	for i < len(text) && isBlank(text[i]) {
		i++
	}
	if i == len(text) || text[i] == '\n' {
		return token{lb: pos, ub: i, scope: chisel.ScopeTrailingSpace}
	}
	return plain(pos, i)
}

// insideTag returns true if the nearest angle bracket before pos opens a tag.
func insideTag(text []rune, pos int) bool {
	for i := pos - 1; i >= 0; i-- {
		switch text[i] {
		case '>':
			return false
		case '<':
			return true
		}
	}
	return false
}
