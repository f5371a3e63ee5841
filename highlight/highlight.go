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

// Package highlight finds syntax-highlighted spans in text.
//
// Every highlighter answers the same question: starting at an offset, where
// is the next span? A highlighter keeps no state between calls, so callers
// enumerate a region by calling again at the end of the previous span.
package highlight

import (
	chisel "github.com/timburks/chisel/types"
)

// A Highlighter finds the first span with a lower bound at or after start.
// It returns false when the rest of text holds no spans.
type Highlighter interface {
	FindNextSpan(text []rune, start int) (chisel.Span, bool)
}

// A Ranged highlighter lists the spans of a range itself, when it can do
// so faster than repeated calls to FindNextSpan.
type Ranged interface {
	Spans(text []rune, lb, ub int) []chisel.Span
}

// Spans returns the spans of text that intersect [lb, ub).
// Scanning always starts at the beginning of text so that spans opened
// before lb are classified correctly.
func Spans(h Highlighter, text []rune, lb, ub int) []chisel.Span {
	if r, ok := h.(Ranged); ok {
		return r.Spans(text, lb, ub)
	}
	spans := make([]chisel.Span, 0)
	for start := 0; start < len(text); {
		span, ok := h.FindNextSpan(text, start)
		if !ok || span.Lb >= ub {
			break
		}
		if span.Ub > lb {
			spans = append(spans, span)
		}
		start = span.Ub
	}
	return spans
}

// A Palette maps scopes to display attributes.
type Palette map[chisel.Scope]chisel.Attr

// Attr returns the attribute for a scope. Unknown scopes use the defaults.
func (p Palette) Attr(s chisel.Scope) chisel.Attr {
	if a, ok := p[s]; ok {
		return a
	}
	return chisel.Attr{}
}

// With returns a copy of p with the entries of overrides replacing its own.
func (p Palette) With(overrides Palette) Palette {
	q := make(Palette, len(p)+len(overrides))
	for s, a := range p {
		q[s] = a
	}
	for s, a := range overrides {
		q[s] = a
	}
	return q
}

const (
	colorGray   chisel.Color = 0xf5
	colorOrange chisel.Color = 0xd1
)

// DefaultPalette returns the colors used when no theme is configured.
func DefaultPalette() Palette {
	return Palette{
		chisel.ScopeKeyword:       {Fg: chisel.ColorYellow | chisel.AttrBold},
		chisel.ScopeType:          {Fg: chisel.ColorGreen},
		chisel.ScopeFunction:      {Fg: chisel.ColorCyan},
		chisel.ScopeMacro:         {Fg: chisel.ColorMagenta},
		chisel.ScopeString:        {Fg: chisel.ColorRed},
		chisel.ScopeChar:          {Fg: colorOrange},
		chisel.ScopeNumber:        {Fg: chisel.ColorMagenta},
		chisel.ScopeComment:       {Fg: colorGray},
		chisel.ScopePreprocessor:  {Fg: chisel.ColorBlue | chisel.AttrBold},
		chisel.ScopeOperator:      {Fg: chisel.ColorWhite},
		chisel.ScopeVariable:      {Fg: chisel.ColorCyan},
		chisel.ScopeLabel:         {Fg: chisel.ColorYellow},
		chisel.ScopeTag:           {Fg: chisel.ColorBlue},
		chisel.ScopeAttribute:     {Fg: chisel.ColorGreen},
		chisel.ScopeTrailingSpace: {Bg: chisel.ColorRed},
	}
}

// span builds a span with its palette attribute.
func (p Palette) span(lb, ub int, s chisel.Scope) chisel.Span {
	return chisel.Span{Lb: lb, Ub: ub, Scope: s, Attr: p.Attr(s)}
}
