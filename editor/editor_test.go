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
package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/timburks/chisel/highlight"
	"github.com/timburks/chisel/indent"
	"github.com/timburks/chisel/mode"
	chisel "github.com/timburks/chisel/types"
)

const source = "testdata/gettysburg.txt"

var (
	registry  = mode.NewRegistry(highlight.DefaultPalette())
	indentOne = indent.Result{Tabs: 1}
)

func setup(t *testing.T) *Editor {
	e := NewEditor(registry.ForFile(source))
	e.SetClipboard(nil)
	require.NoError(t, e.ReadFile(source))
	return e
}

func final(t *testing.T, e *Editor) {
	original, err := os.ReadFile(source)
	require.NoError(t, err)
	assert.Equal(t, string(original), string(e.Bytes()))
}

func withText(name, text string, cursor int) *Editor {
	e := NewEditor(registry.ForFile(name))
	e.SetClipboard(nil)
	e.Configure(4, false)
	e.buffer.InsertString(0, text)
	e.SetCursor(cursor)
	return e
}

// line returns the text of line n, counting from one.
func line(e *Editor, n int) string {
	start := e.buffer.LineOffset(n - 1)
	return e.buffer.Slice(start, e.buffer.LineEnd(start))
}

// read and write a file without changing it
func TestReadWriteInvariance(t *testing.T) {
	e := setup(t)
	path := filepath.Join(t.TempDir(), "final.txt")
	require.NoError(t, e.WriteFile(path))
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(e.Bytes()), string(written))
	assert.False(t, e.Modified())
	final(t, e)
}

func TestReadMissingFile(t *testing.T) {
	e := NewEditor(registry.ForFile("x.txt"))
	path := filepath.Join(t.TempDir(), "new.txt")
	require.NoError(t, e.ReadFile(path))
	assert.Equal(t, 0, e.Buffer().Len())
	assert.Equal(t, path, e.FileName())
	assert.Equal(t, "(new file)", e.Message())
	assert.Error(t, NewEditor(nil).WriteFile(""))
}

func TestInsert(t *testing.T) {
	e := setup(t)
	e.GotoLine(2)
	e.InsertText("hello, world!")
	assert.Equal(t, "hello, world!", line(e, 2))

	e.GotoLine(1)
	e.ForwardChar(4)
	e.InsertText("BIG LEAGUE ")
	assert.Equal(t, "THE BIG LEAGUE GETTYSBURG ADDRESS:", line(e, 1))

	e.GotoLine(3)
	e.EndOfLine()
	e.InsertText(" very")
	assert.Equal(t, "Four score and seven years ago our fathers brought forth on this very", line(e, 3))
	assert.True(t, e.Modified())

	for i := 0; i < 3; i++ {
		assert.True(t, e.Undo())
	}
	assert.False(t, e.Undo())
	final(t, e)
}

func TestKillLine(t *testing.T) {
	e := setup(t)
	e.GotoLine(21)
	for i := 0; i < 4; i++ {
		e.KillLine()
	}
	assert.Equal(t, "measure of devotion--that we here highly resolve that these dead shall", line(e, 21))
	assert.Equal(t, "the great task remaining before us--that from these honored dead we take\n"+
		"increased devotion to that cause for which they gave the last full\n", e.kill)

	e.GotoLine(1)
	e.Yank(1)
	assert.Equal(t, "the great task remaining before us--that from these honored dead we take", line(e, 1))
	e.Undo()
	for i := 0; i < 4; i++ {
		e.Undo()
	}
	final(t, e)
}

type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) ReadAll() (string, error) { return c.text, nil }
func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

func TestClipboard(t *testing.T) {
	e := withText("a.txt", "one\ntwo\n", 0)
	c := &fakeClipboard{}
	e.SetClipboard(c)
	e.KillLine()
	assert.Equal(t, "one", c.text)
	c.text = "three"
	e.Yank(2)
	assert.Equal(t, "threethree\ntwo\n", e.buffer.String())

	e = withText("a.txt", "", 0)
	e.Yank(1)
	assert.Equal(t, "nothing to yank", e.Message())
}

func TestTypingUndoesTogether(t *testing.T) {
	e := withText("a.txt", "ab", 1)
	for _, c := range "xyz" {
		e.InsertRune(c)
	}
	e.DeleteBackward()
	assert.Equal(t, "axyb", e.buffer.String())
	assert.Equal(t, 3, e.Cursor())
	e.Undo()
	assert.Equal(t, "ab", e.buffer.String())
	assert.Equal(t, 1, e.Cursor())

	e.DeleteBackward()
	e.DeleteForward()
	assert.Equal(t, "", e.buffer.String())
	e.DeleteBackward()
	e.DeleteForward()
	e.Undo()
	e.Undo()
	assert.Equal(t, "ab", e.buffer.String())
}

func TestNewlineIndents(t *testing.T) {
	e := withText("a.c", "int f() {", 9)
	e.Newline()
	assert.Equal(t, "int f() {\n    ", e.buffer.String())
	assert.Equal(t, 14, e.Cursor())

	assert.True(t, e.Mode().Keypress(e, '}'))
	assert.Equal(t, "int f() {\n}", e.buffer.String())
	assert.Equal(t, 11, e.Cursor())
}

func TestApplyIndentMovesCursor(t *testing.T) {
	e := withText("a.go", "\t\t  x", 1)
	e.SetUseTabs(true)
	e.ApplyIndent(indentOne)
	assert.Equal(t, "\tx", e.buffer.String())
	assert.Equal(t, 1, e.Cursor())

	e.SetCursor(2)
	e.RestoreUseTabs()
	e.ApplyIndent(indentOne)
	assert.Equal(t, "    x", e.buffer.String())
	assert.Equal(t, 5, e.Cursor())
	assert.False(t, e.UseTabs())
}

func TestWordMotion(t *testing.T) {
	e := withText("a.txt", "hello, big\n  world", 0)
	stops := []int{}
	for i := 0; i < 4; i++ {
		e.ForwardWord(1)
		stops = append(stops, e.Cursor())
	}
	assert.Equal(t, []int{5, 10, 18, 18}, stops)

	stops = stops[:0]
	for i := 0; i < 4; i++ {
		e.BackwardWord(1)
		stops = append(stops, e.Cursor())
	}
	assert.Equal(t, []int{13, 7, 0, 0}, stops)
}

func TestLineMotion(t *testing.T) {
	e := withText("a.txt", "long line\nab\nanother line", 7)
	e.NextLine(1)
	assert.Equal(t, 12, e.Cursor())
	e.NextLine(1)
	assert.Equal(t, 20, e.Cursor())
	e.PreviousLine(5)
	assert.Equal(t, 7, e.Cursor())
	e.EndOfLine()
	assert.Equal(t, 9, e.Cursor())
	e.BeginningOfLine()
	assert.Equal(t, 0, e.Cursor())
	e.EndOfBuffer()
	assert.Equal(t, 25, e.Cursor())
	e.BeginningOfBuffer()
	e.BackwardChar(1)
	assert.Equal(t, 0, e.Cursor())
	e.GotoLine(99)
	assert.Equal(t, 13, e.Cursor())
}

func TestSearch(t *testing.T) {
	e := setup(t)
	require.True(t, e.Search("nation"))
	row, col := e.buffer.Position(e.Cursor())
	assert.Equal(t, 3, row)
	assert.Equal(t, 16, col)
	first := e.Cursor()
	require.True(t, e.Search("nation"))
	assert.Greater(t, e.Cursor(), first)
	assert.False(t, e.Search("zebra"))
	assert.Equal(t, "not found: zebra", e.Message())

	e.GotoLine(30)
	require.True(t, e.Search("THE"))
	assert.Equal(t, 0, e.Cursor())
}

func TestCommentLine(t *testing.T) {
	e := withText("a.c", "  x = 1;  \ny", 3)
	e.CommentLine("// ")
	assert.Equal(t, "  // x = 1;  \ny", e.buffer.String())
	e.CommentLine("// ")
	assert.Equal(t, "  x = 1;  \ny", e.buffer.String())

	e = withText("a.c", "//x\n", 0)
	e.CommentLine("// ")
	assert.Equal(t, "x\n", e.buffer.String())

	e = withText("a.html", "\t<p>hi</p>", 2)
	e.WrapLine("<!-- ", " -->")
	assert.Equal(t, "\t<!-- <p>hi</p> -->", e.buffer.String())
	e.WrapLine("<!-- ", " -->")
	assert.Equal(t, "\t<p>hi</p>", e.buffer.String())
	e.Undo()
	e.Undo()
	assert.Equal(t, "\t<p>hi</p>", e.buffer.String())

	e = withText("a.c", "   \n", 1)
	e.CommentLine("// ")
	assert.Equal(t, "   \n", e.buffer.String())
}

func TestJoinLine(t *testing.T) {
	e := setup(t)
	e.GotoLine(3)
	e.JoinLine(1)
	assert.Equal(t, "Four score and seven years ago our fathers brought forth on this "+
		"continent a new nation, conceived in liberty and dedicated to the", line(e, 3))
	e.Undo()
	final(t, e)
}

func TestGofmt(t *testing.T) {
	e := withText("main.go", "package main\nfunc  main(){}\n", 15)
	require.NoError(t, e.Gofmt())
	assert.Equal(t, "package main\n\nfunc main() {}\n", e.buffer.String())
	assert.Equal(t, 14, e.Cursor())
	e.Undo()
	assert.Equal(t, "package main\nfunc  main(){}\n", e.buffer.String())

	e = withText("main.go", "package main\nfunc {", 0)
	assert.Error(t, e.Gofmt())
	assert.Equal(t, "package main\nfunc {", e.buffer.String())
}

type cell struct {
	c    rune
	attr chisel.Attr
}

type display struct {
	size   chisel.Size
	cells  map[[2]int]cell
	cursor [2]int
}

func newDisplay(rows, cols int) *display {
	return &display{size: chisel.Size{Rows: rows, Cols: cols}, cells: make(map[[2]int]cell)}
}

func (d *display) Size() chisel.Size { return d.size }
func (d *display) SetCell(col, row int, c rune, attr chisel.Attr) {
	d.cells[[2]int{col, row}] = cell{c, attr}
}
func (d *display) SetCursor(col, row int) { d.cursor = [2]int{col, row} }

func (d *display) row(y int) string {
	s := make([]rune, d.size.Cols)
	for x := range s {
		s[x] = ' '
		if c, ok := d.cells[[2]int{x, y}]; ok {
			s[x] = c.c
		}
	}
	return strings.TrimRight(string(s), " ")
}

func TestRender(t *testing.T) {
	e := withText("main.go", "package main\n\tx", 15)
	d := newDisplay(5, 40)
	e.Render(d, "Def")

	assert.Equal(t, "package main", d.row(0))
	assert.Equal(t, "    x", d.row(1))
	assert.Equal(t, "~", d.row(2))
	assert.Contains(t, d.row(3), "(go) Def")
	assert.Contains(t, d.row(3), " 2/2 ")
	assert.Equal(t, [2]int{5, 1}, d.cursor)

	keyword := highlight.DefaultPalette().Attr(chisel.ScopeKeyword)
	assert.Equal(t, keyword, d.cells[[2]int{0, 0}].attr)
	assert.Equal(t, chisel.Attr{}, d.cells[[2]int{8, 0}].attr)
	assert.Equal(t, chisel.AttrReverse, d.cells[[2]int{0, 3}].attr.Fg)
}

func TestRenderScrolls(t *testing.T) {
	e := withText("a.txt", "1\n2\n3\n4\n5\n6", 0)
	d := newDisplay(4, 10)
	e.EndOfBuffer()
	e.Render(d, "")
	assert.Equal(t, "5", d.row(0))
	assert.Equal(t, "6", d.row(1))
	assert.Equal(t, [2]int{1, 1}, d.cursor)

	e.PageUp()
	assert.Equal(t, 7, e.Cursor())
}

func TestUndoRestoresText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		original := rapid.StringMatching(`[a-c {}\n]{0,20}`).Draw(t, "text")
		e := withText("a.c", original, 0)
		e.SetCursor(rapid.IntRange(0, e.buffer.Len()).Draw(t, "cursor"))
		for _, step := range rapid.SliceOfN(rapid.IntRange(0, 6), 0, 12).Draw(t, "steps") {
			switch step {
			case 0:
				e.InsertRune(rapid.RuneFrom([]rune("x}\n")).Draw(t, "c"))
			case 1:
				e.DeleteBackward()
			case 2:
				e.Newline()
			case 3:
				e.KillLine()
			case 4:
				e.Yank(1)
			case 5:
				e.ForwardWord(1)
			default:
				e.CommentLine("// ")
			}
		}
		for e.Undo() {
		}
		if got := e.buffer.String(); got != original {
			t.Fatalf("undo left %q, want %q", got, original)
		}
	})
}
