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
	"log"
	"slices"
	"sort"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	chisel "github.com/timburks/chisel/types"
)

// Chroma highlights any language known to chroma.
// Spans of the most recently tokenised text are memoized.
type Chroma struct {
	lexer   chroma.Lexer
	palette Palette

	text      []rune
	spans     []chisel.Span
	tokenised int
}

// MatchChroma returns a chroma highlighter for a file name, or nil if
// chroma has no lexer for it.
func MatchChroma(filename string, p Palette) *Chroma {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return nil
	}
	return NewChroma(lexer, p)
}

// NewChroma returns a highlighter using a chroma lexer.
func NewChroma(lexer chroma.Lexer, p Palette) *Chroma {
	return &Chroma{lexer: chroma.Coalesce(lexer), palette: p}
}

// Name returns the name of the chroma lexer.
func (c *Chroma) Name() string {
	return c.lexer.Config().Name
}

// FindNextSpan returns the next span at or after start.
func (c *Chroma) FindNextSpan(text []rune, start int) (chisel.Span, bool) {
	spans := c.tokenise(text)
	i := sort.Search(len(spans), func(i int) bool { return spans[i].Lb >= start })
	if i == len(spans) {
		return chisel.Span{}, false
	}
	return spans[i], true
}

// Spans returns the spans overlapping [lb, ub) after lexing text once.
func (c *Chroma) Spans(text []rune, lb, ub int) []chisel.Span {
	spans := c.tokenise(text)
	i := sort.Search(len(spans), func(i int) bool { return spans[i].Ub > lb })
	result := make([]chisel.Span, 0)
	for ; i < len(spans) && spans[i].Lb < ub; i++ {
		result = append(result, spans[i])
	}
	return result
}

func (c *Chroma) tokenise(text []rune) []chisel.Span {
	if c.spans != nil && slices.Equal(text, c.text) {
		return c.spans
	}
	c.tokenised++
	c.text = slices.Clone(text)
	c.spans = make([]chisel.Span, 0)
	s := string(text)
	it, err := c.lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, s)
	if err != nil {
		log.Printf("chroma %s: %v", c.Name(), err)
		return c.spans
	}
	pos := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		n := utf8.RuneCountInString(tok.Value)
		lb, ub := pos, pos+n
		pos = ub
		if ub > len(text) {
			ub = len(text)
		}
		if lb >= ub {
			continue
		}
		if scope := scopeOf(tok.Type); scope != chisel.ScopeNone {
			c.spans = append(c.spans, c.palette.span(lb, ub, scope))
		}
	}
	return c.spans
}

// scopeOf maps a chroma token type to a scope.
func scopeOf(t chroma.TokenType) chisel.Scope {
	switch {
	case t == chroma.KeywordType:
		return chisel.ScopeType
	case t.InCategory(chroma.Keyword):
		return chisel.ScopeKeyword
	case t == chroma.NameFunction || t == chroma.NameFunctionMagic || t == chroma.NameBuiltin:
		return chisel.ScopeFunction
	case t == chroma.NameTag:
		return chisel.ScopeTag
	case t == chroma.NameAttribute:
		return chisel.ScopeAttribute
	case t == chroma.NameLabel:
		return chisel.ScopeLabel
	case t == chroma.NameConstant:
		return chisel.ScopeMacro
	case t == chroma.NameVariable || t == chroma.NameVariableGlobal || t == chroma.NameVariableInstance:
		return chisel.ScopeVariable
	case t == chroma.LiteralStringChar:
		return chisel.ScopeChar
	case t.InSubCategory(chroma.LiteralString):
		return chisel.ScopeString
	case t.InSubCategory(chroma.LiteralNumber):
		return chisel.ScopeNumber
	case t.InSubCategory(chroma.CommentPreproc):
		return chisel.ScopePreprocessor
	case t.InCategory(chroma.Comment):
		return chisel.ScopeComment
	case t.InCategory(chroma.Operator) || t == chroma.Punctuation:
		return chisel.ScopeOperator
	}
	return chisel.ScopeNone
}
