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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	chisel "github.com/timburks/chisel/types"
)

type expected struct {
	lb, ub int
	scope  chisel.Scope
}

func all(h Highlighter, s string) []expected {
	text := []rune(s)
	result := make([]expected, 0)
	for _, span := range Spans(h, text, 0, len(text)) {
		result = append(result, expected{span.Lb, span.Ub, span.Scope})
	}
	return result
}

func TestKeywordThenFunction(t *testing.T) {
	h := NewScanner(C(), DefaultPalette())
	spans := all(h, "int main(void)")
	require.GreaterOrEqual(t, len(spans), 2)
	assert.Equal(t, expected{0, 3, chisel.ScopeKeyword}, spans[0])
	assert.Equal(t, expected{4, 8, chisel.ScopeFunction}, spans[1])
	assert.Equal(t, expected{9, 13, chisel.ScopeKeyword}, spans[3])
}

func TestSpanAttributesFromPalette(t *testing.T) {
	p := DefaultPalette().With(Palette{chisel.ScopeKeyword: {Fg: chisel.ColorBlue}})
	h := NewScanner(C(), p)
	span, ok := h.FindNextSpan([]rune("int x;"), 0)
	require.True(t, ok)
	assert.Equal(t, chisel.Attr{Fg: chisel.ColorBlue}, span.Attr)
}

func TestUnterminatedBlockComment(t *testing.T) {
	h := NewScanner(C(), DefaultPalette())
	_, ok := h.FindNextSpan([]rune("/* never closes"), 0)
	assert.False(t, ok)

	spans := all(h, "x = 1; /* open\nint y;")
	assert.Equal(t, []expected{
		{2, 3, chisel.ScopeOperator},
		{4, 5, chisel.ScopeNumber},
		{5, 6, chisel.ScopeOperator},
	}, spans)
}

func TestCppRawString(t *testing.T) {
	h := NewScanner(CPP(), DefaultPalette())
	s := `R"abc(hello)abc" x`
	spans := all(h, s)
	require.NotEmpty(t, spans)
	assert.Equal(t, expected{0, 16, chisel.ScopeString}, spans[0])

	s = `R"abc(a)ab" )abc"`
	spans = all(h, s)
	require.Len(t, spans, 1)
	assert.Equal(t, expected{0, len(s), chisel.ScopeString}, spans[0])

	_, ok := h.FindNextSpan([]rune(`R"abc(never closed)ab"`), 0)
	assert.False(t, ok)
}

func TestCppRawDelimiterLength(t *testing.T) {
	h := NewScanner(CPP(), DefaultPalette())

	d := strings.Repeat("x", MaxDelimiter)
	s := `R"` + d + `(a)` + d + `"`
	spans := all(h, s)
	require.Len(t, spans, 1)
	assert.Equal(t, expected{0, len(s), chisel.ScopeString}, spans[0])

	d = strings.Repeat("x", MaxDelimiter+1)
	s = `R"` + d + `(a)` + d + `"`
	spans = all(h, s)
	for _, span := range spans {
		assert.GreaterOrEqual(t, span.lb, 2+len(d), "the opener is plain")
		assert.NotEqual(t, chisel.ScopeString, span.scope)
	}
}

func TestRustRawString(t *testing.T) {
	h := NewScanner(Rust(), DefaultPalette())
	s := `r##"a "# b"##;`
	spans := all(h, s)
	require.NotEmpty(t, spans)
	assert.Equal(t, expected{0, len(s) - 1, chisel.ScopeString}, spans[0])
}

func TestNestedComments(t *testing.T) {
	h := NewScanner(Rust(), DefaultPalette())
	c := "/* a /* b */ c */"
	spans := all(h, c+" x")
	require.Len(t, spans, 1)
	assert.Equal(t, expected{0, len(c), chisel.ScopeComment}, spans[0])

	h = NewScanner(C(), DefaultPalette())
	spans = all(h, c)
	require.NotEmpty(t, spans)
	assert.Equal(t, expected{0, 12, chisel.ScopeComment}, spans[0])
}

func TestRustLifetime(t *testing.T) {
	h := NewScanner(Rust(), DefaultPalette())
	spans := all(h, "fn f<'a>(x: &'a str)")
	assert.Contains(t, spans, expected{3, 4, chisel.ScopeFunction})
	assert.Contains(t, spans, expected{5, 7, chisel.ScopeLabel})
	spans = all(h, "let c = 'a';")
	assert.Contains(t, spans, expected{8, 11, chisel.ScopeChar})
}

func TestUnterminatedStringRestartsOnNextLine(t *testing.T) {
	h := NewScanner(C(), DefaultPalette())
	span, ok := h.FindNextSpan([]rune("\"abc\nint x;"), 0)
	require.True(t, ok)
	assert.Equal(t, 5, span.Lb)
	assert.Equal(t, 8, span.Ub)
	assert.Equal(t, chisel.ScopeKeyword, span.Scope)
}

func TestDirective(t *testing.T) {
	h := NewScanner(C(), DefaultPalette())
	s := "#define X \\\n  1\nint"
	spans := all(h, s)
	require.Len(t, spans, 2)
	assert.Equal(t, expected{0, 15, chisel.ScopePreprocessor}, spans[0])
	assert.Equal(t, expected{16, 19, chisel.ScopeKeyword}, spans[1])

	// not at the start of a line
	spans = all(h, "x # y")
	assert.NotContains(t, spans, expected{2, 5, chisel.ScopePreprocessor})
}

func TestMacro(t *testing.T) {
	h := NewScanner(C(), DefaultPalette())
	spans := all(h, "EOF Eof")
	assert.Equal(t, []expected{{0, 3, chisel.ScopeMacro}}, spans)
}

func TestShell(t *testing.T) {
	h := NewScanner(Shell(), DefaultPalette())
	spans := all(h, "echo $HOME # note")
	assert.Equal(t, []expected{
		{5, 10, chisel.ScopeVariable},
		{11, 17, chisel.ScopeComment},
	}, spans)

	spans = all(h, "a#b ${x}")
	assert.Equal(t, []expected{{4, 8, chisel.ScopeVariable}}, spans)

	spans = all(h, "x  \ny")
	assert.Equal(t, []expected{{1, 3, chisel.ScopeTrailingSpace}}, spans)

	_, ok := h.FindNextSpan([]rune("echo 'open\nquote"), 0)
	assert.False(t, ok)
}

func TestGoBacktick(t *testing.T) {
	h := NewScanner(Go(), DefaultPalette())
	spans := all(h, "x := `a\nb`")
	assert.Contains(t, spans, expected{5, 10, chisel.ScopeString})
	_, ok := h.FindNextSpan([]rune("`open"), 0)
	assert.False(t, ok)
}

func TestLisp(t *testing.T) {
	h := NewScanner(Lisp(), DefaultPalette())
	spans := all(h, "(define x-y 1) ; c")
	assert.Equal(t, []expected{
		{0, 1, chisel.ScopeOperator},
		{1, 7, chisel.ScopeKeyword},
		{12, 13, chisel.ScopeNumber},
		{13, 14, chisel.ScopeOperator},
		{15, 18, chisel.ScopeComment},
	}, spans)
}

func TestSpansWindow(t *testing.T) {
	h := NewScanner(C(), DefaultPalette())
	s := "/* a\nb */ int x;"
	spans := Spans(h, []rune(s), 5, 8)
	require.Len(t, spans, 1)
	assert.Equal(t, chisel.ScopeComment, spans[0].Scope)
	assert.Equal(t, 0, spans[0].Lb)
}

var alphabet = []rune("abRrxint_09\"'`()<>{}/*#$;:.\\ \t\n")

func highlighters() []Highlighter {
	p := DefaultPalette()
	return []Highlighter{
		NewScanner(C(), p),
		NewScanner(CPP(), p),
		NewScanner(Go(), p),
		NewScanner(Rust(), p),
		NewScanner(JavaScript(), p),
		NewScanner(Shell(), p),
		NewScanner(Lisp(), p),
		NewAsm(p),
		NewMarkup(p),
	}
}

func TestSpansAreMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.SliceOfN(rapid.SampledFrom(alphabet), 0, 120).Draw(t, "text")
		for _, h := range highlighters() {
			prev := 0
			for start := 0; start < len(text); {
				span, ok := h.FindNextSpan(text, start)
				if !ok {
					break
				}
				if span.Lb < start || span.Lb < prev || span.Ub <= span.Lb || span.Ub > len(text) {
					t.Fatalf("%T: bad span %+v after %d", h, span, start)
				}
				prev = span.Ub
				start = span.Ub
			}
		}
	})
}
