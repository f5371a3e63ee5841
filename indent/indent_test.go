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
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/timburks/chisel/highlight"
	"github.com/timburks/chisel/skip"
)

// lineOffset returns the offset of the start of row n.
func lineOffset(text []rune, n int) int {
	i := 0
	for ; n > 0 && i < len(text); i++ {
		if text[i] == '\n' {
			n--
		}
	}
	return i
}

func indentOf(e Engine, s string, row int) Result {
	text := []rune(s)
	return e.ComputeIndent(text, lineOffset(text, row))
}

func cEngine() Engine {
	return NewCFamily(highlight.NewScanner(highlight.C(), highlight.DefaultPalette()))
}

func TestOpenBrace(t *testing.T) {
	e := cEngine()
	assert.Equal(t, Result{1, 0}, indentOf(e, "if (x) {\n", 1))
	assert.Equal(t, Result{1, 0}, indentOf(e, "int f() {\n\treturn 0;\n}", 1))
	assert.Equal(t, Result{0, 0}, indentOf(e, "int f() {\n\treturn 0;\n}", 2))
	assert.Equal(t, Result{2, 0}, indentOf(e, "a {\nb {\n", 2))
}

func TestCursorAnywhereOnLine(t *testing.T) {
	e := cEngine()
	text := []rune("if (x) {\n  y;")
	for i := 9; i <= len(text); i++ {
		assert.Equal(t, Result{1, 0}, e.ComputeIndent(text, i))
	}
}

func TestPause(t *testing.T) {
	e := cEngine()
	s := "namespace a {\nint x;\n}\nint y;"
	assert.Equal(t, Result{0, 0}, indentOf(e, s, 1))
	assert.Equal(t, Result{0, 0}, indentOf(e, s, 2))
	assert.Equal(t, Result{0, 0}, indentOf(e, s, 3))

	s = "extern \"C\" {\nvoid f() {\nx;"
	assert.Equal(t, Result{0, 0}, indentOf(e, s, 1))
	assert.Equal(t, Result{1, 0}, indentOf(e, s, 2))

	// a semicolon cancels a pause keyword
	s = "extern int x;\nvoid f() {\n"
	assert.Equal(t, Result{1, 0}, indentOf(e, s, 2))
}

func TestClampsToZero(t *testing.T) {
	e := cEngine()
	assert.Equal(t, Result{0, 0}, indentOf(e, "}\n}", 0))
	assert.Equal(t, Result{0, 0}, indentOf(e, "}\n}", 1))
	assert.Equal(t, Result{0, 0}, indentOf(e, "}\n}\nx;", 2))
}

func TestColonLines(t *testing.T) {
	e := cEngine()
	s := "switch (x) {\ncase 1:\nbreak;\ndefault:\n}"
	assert.Equal(t, Result{0, 0}, indentOf(e, s, 1))
	assert.Equal(t, Result{1, 0}, indentOf(e, s, 2))
	assert.Equal(t, Result{0, 0}, indentOf(e, s, 3))

	s = "void f() {\nout:\nstd::x;\n"
	assert.Equal(t, Result{0, 0}, indentOf(e, s, 1))
	assert.Equal(t, Result{1, 0}, indentOf(e, s, 2))

	// a case label is outdented only once its colon is typed
	assert.Equal(t, Result{1, 0}, indentOf(e, "switch (x) {\ncase", 1))
}

func TestContinuation(t *testing.T) {
	e := cEngine()
	assert.Equal(t, Result{1, 0}, indentOf(e, "if (x)\ny;", 1))
	assert.Equal(t, Result{0, 0}, indentOf(e, "if (x)\n{", 1))
	assert.Equal(t, Result{1, 0}, indentOf(e, "else\nx;", 1))
	assert.Equal(t, Result{0, 0}, indentOf(e, "else\n{", 1))
	assert.Equal(t, Result{1, 0}, indentOf(e, "x = 1 + \\\n2;", 1))
	assert.Equal(t, Result{0, 0}, indentOf(e, "x;\n/* note */\ny;", 2))
	// a closing brace never continues the line above
	assert.Equal(t, Result{0, 0}, indentOf(e, "int a[] = {\n\tmax(a, b)\n};", 2))
	assert.Equal(t, Result{0, 0}, indentOf(e, "void f() {\n\tFOO(x)\n}", 2))
	assert.Equal(t, Result{0, 0}, indentOf(e, "if (x) {\n\tdo\n\t}", 2))
}

func TestAlignInsideParens(t *testing.T) {
	e := cEngine()
	assert.Equal(t, Result{0, 2}, indentOf(e, "f(a,\nb);", 1))
	assert.Equal(t, Result{1, 2}, indentOf(e, "\tf(a,\nb);", 1))
	// the paren opened two lines up: copy the previous line
	assert.Equal(t, Result{0, 2}, indentOf(e, "f(a,\n  b,\nc);", 2))
}

func TestOpaqueLines(t *testing.T) {
	e := cEngine()
	assert.Equal(t, Result{1, 0}, indentOf(e, "#define X \\\n  1\n", 1))
	assert.Equal(t, Result{0, 3}, indentOf(e, "{\n/* a\n   b */", 2))
	// braces in comments and strings do not count
	assert.Equal(t, Result{0, 0}, indentOf(e, "// {\nx = \"{\";\n", 2))
}

func TestBracket(t *testing.T) {
	e := NewBracket(highlight.NewScanner(highlight.Rust(), highlight.DefaultPalette()))
	s := "fn f() {\nlet x = [\n1,\n];\nlet y = a\n+ b;\n}"
	assert.Equal(t, Result{1, 0}, indentOf(e, s, 1))
	assert.Equal(t, Result{2, 0}, indentOf(e, s, 2))
	assert.Equal(t, Result{1, 0}, indentOf(e, s, 3))
	assert.Equal(t, Result{2, 0}, indentOf(e, s, 5))
	assert.Equal(t, Result{0, 0}, indentOf(e, s, 6))

	s = "impl T for U\nwhere\nT: X"
	assert.Equal(t, Result{1, 0}, indentOf(e, s, 1))
	assert.Equal(t, Result{0, 0}, indentOf(e, s, 2))

	g := NewBracket(highlight.NewScanner(highlight.Go(), highlight.DefaultPalette()))
	g.Punctuation = ""
	assert.Equal(t, Result{0, 0}, indentOf(g, "x := 1\ny := 2", 1))
	assert.Equal(t, Result{0, 3}, indentOf(g, "s := `a\n   b`", 1))
}

func TestFlat(t *testing.T) {
	var e Flat
	s := "main:\nmovl %eax, %ebx\n.L2:\n\n"
	assert.Equal(t, Result{0, 0}, indentOf(e, s, 0))
	assert.Equal(t, Result{1, 0}, indentOf(e, s, 1))
	assert.Equal(t, Result{0, 0}, indentOf(e, s, 2))
	assert.Equal(t, Result{1, 0}, indentOf(e, s, 3))
	assert.Equal(t, Result{0, 0}, indentOf(e, s, 4))

	// the last line of the buffer is never indented
	assert.Equal(t, Result{0, 0}, indentOf(e, "\tmov %eax, %ebx\n\tret", 1))
	// a label is a line ending in a colon
	assert.Equal(t, Result{1, 0}, indentOf(e, "foo: nop\n", 0))
	assert.Equal(t, Result{0, 0}, indentOf(e, "\tjmp 1f\n1:\t\n", 1))
}

func TestMarkup(t *testing.T) {
	e := NewMarkup(highlight.NewMarkup(highlight.DefaultPalette()))
	s := "<html>\n<body class=\"a>b\">\n<br>\n<img src=\"x\"/>\n<p>\n</p>\n<!-- <div> -->\n</body>"
	assert.Equal(t, Result{1, 0}, indentOf(e, s, 1))
	assert.Equal(t, Result{2, 0}, indentOf(e, s, 2))
	assert.Equal(t, Result{2, 0}, indentOf(e, s, 3))
	assert.Equal(t, Result{2, 0}, indentOf(e, s, 4))
	assert.Equal(t, Result{2, 0}, indentOf(e, s, 5))
	assert.Equal(t, Result{2, 0}, indentOf(e, s, 6))
	assert.Equal(t, Result{1, 0}, indentOf(e, s, 7))
}

func TestCopy(t *testing.T) {
	var e Copy
	assert.Equal(t, Result{1, 2}, indentOf(e, "\t  a\n\n", 2))
	assert.Equal(t, Result{0, 0}, indentOf(e, "a", 0))
}

func TestExpand(t *testing.T) {
	r := Result{Tabs: 2, Spaces: 1}
	assert.Equal(t, r, r.Expand(4, true))
	assert.Equal(t, Result{Spaces: 9}, r.Expand(4, false))
	assert.Equal(t, "\t\t ", r.String())
}

// apply replaces the leading whitespace of a line with r.
func apply(text []rune, line int, r Result) []rune {
	_, _, end := skip.LeadingWhitespace(text, line)
	out := make([]rune, 0, len(text)+r.Tabs+r.Spaces)
	out = append(out, text[:line]...)
	out = append(out, []rune(r.String())...)
	return append(out, text[end:]...)
}

var cLines = []string{
	"if (x) {", "}", "x = f(a,", "b);", "case 1:", "namespace n {",
	"/* c", "d */", "#define A \\", "else", "int y;", "", "  ", "\t\tz;",
	"out:", "while (y)", "\"{\"", "// }", "FOO(x)", "};", "max(a, b)",
	"foo: nop",
}

var markupLines = []string{
	"<div>", "</div>", "<br>", "<p class=\"x\">", "<!-- a", "b -->", "text", "",
}

func TestIdempotent(t *testing.T) {
	p := highlight.DefaultPalette()
	engines := []struct {
		engine Engine
		lines  []string
	}{
		{NewCFamily(highlight.NewScanner(highlight.C(), p)), cLines},
		{NewBracket(highlight.NewScanner(highlight.Rust(), p)), cLines},
		{NewMarkup(highlight.NewMarkup(p)), markupLines},
		{Flat{}, cLines},
		{Copy{}, cLines},
	}
	rapid.Check(t, func(t *rapid.T) {
		for _, c := range engines {
			lines := rapid.SliceOfN(rapid.SampledFrom(c.lines), 1, 12).Draw(t, "lines")
			text := []rune(strings.Join(lines, "\n"))
			row := rapid.IntRange(0, len(lines)-1).Draw(t, "row")
			line := lineOffset(text, row)
			first := c.engine.ComputeIndent(text, line)
			if first.Tabs < 0 || first.Spaces < 0 {
				t.Fatalf("negative indentation %+v", first)
			}
			applied := apply(text, line, first)
			second := c.engine.ComputeIndent(applied, line)
			if first != second {
				t.Fatalf("%T: %+v then %+v for %q row %d", c.engine, first, second, string(text), row)
			}
		}
	})
}
