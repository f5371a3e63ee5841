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

// Asm highlights assembly listings in either AT&T or Intel syntax.
type Asm struct {
	palette Palette
}

// NewAsm returns an assembly highlighter.
func NewAsm(p Palette) *Asm {
	return &Asm{palette: p}
}

func isAsmIdent(c rune) bool {
	return c == '_' || c == '.' || c == '$' || c == '@' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

// FindNextSpan returns the next span at or after start.
func (a *Asm) FindNextSpan(text []rune, start int) (chisel.Span, bool) {
	for pos := start; pos < len(text); {
		lb, ub, scope := a.step(text, pos)
		if scope != chisel.ScopeNone {
			return a.palette.span(lb, ub, scope), true
		}
		pos = ub
	}
	return chisel.Span{}, false
}

func (a *Asm) step(text []rune, pos int) (int, int, chisel.Scope) {
	c := text[pos]
	switch {
	case c == ';' || c == '#' || hasPrefix(text, pos, "//"):
		return pos, lineEnd(text, pos), chisel.ScopeComment
	case c == '"':
		t := closeQuote(text, pos, chisel.ScopeString, true)
		return t.lb, t.ub, t.scope
	case c == '%' && pos+1 < len(text) && unicode.IsLetter(text[pos+1]):
		i := pos + 1
		for i < len(text) && isAsmIdent(text[i]) {
			i++
		}
		return pos, i, chisel.ScopeVariable
	case c == '$' && pos+1 < len(text) && unicode.IsDigit(text[pos+1]):
		i := pos + 1
		for i < len(text) && isAsmIdent(text[i]) {
			i++
		}
		return pos, i, chisel.ScopeNumber
	case unicode.IsDigit(c):
		i := pos + 1
		for i < len(text) && (unicode.IsLetter(text[i]) || unicode.IsDigit(text[i])) {
			i++
		}
		return pos, i, chisel.ScopeNumber
	case isAsmIdent(c):
		i := pos + 1
		for i < len(text) && isAsmIdent(text[i]) {
			i++
		}
		switch {
		case i < len(text) && text[i] == ':':
			return pos, i + 1, chisel.ScopeLabel
		case c == '.':
			return pos, i, chisel.ScopePreprocessor
		case firstWord(text, pos):
			return pos, i, chisel.ScopeKeyword
		}
		return pos, i, chisel.ScopeNone
	case isBlank(c):
		i := pos + 1
		for i < len(text) && isBlank(text[i]) {
			i++
		}
		if i == len(text) || text[i] == '\n' {
			return pos, i, chisel.ScopeTrailingSpace
		}
		return pos, i, chisel.ScopeNone
	}
	return pos, pos + 1, chisel.ScopeNone
}

// firstWord returns true if the word at pos is the first word of its line
// or the first word after a label.
func firstWord(text []rune, pos int) bool {
	i := pos - 1
	for i >= 0 && isBlank(text[i]) {
		i--
	}
	if i < 0 || text[i] == '\n' {
		return true
	}
	if text[i] != ':' {
		return false
	}
	for i--; i >= 0 && isAsmIdent(text[i]); i-- {
	}
	for i >= 0 && isBlank(text[i]) {
		i--
	}
	return i < 0 || text[i] == '\n'
}
