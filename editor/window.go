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
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/chisel/highlight"
	chisel "github.com/timburks/chisel/types"
)

// A Window is the part of the buffer shown on the display.
type Window struct {
	size   chisel.Size // size of the window, including the info bar
	offset chisel.Size // first row and display column shown
}

// textRows returns the number of rows available for text.
func (w *Window) textRows() int {
	if w.size.Rows < 2 {
		return 1
	}
	return w.size.Rows - 1
}

// Recompute the display offset to keep the cursor onscreen.
func (w *Window) adjustDisplayOffsetForScrolling(row, col int) {
	if row < w.offset.Rows {
		// scroll up
		w.offset.Rows = row
	}
	if row-w.offset.Rows >= w.textRows() {
		// scroll down
		w.offset.Rows = row - w.textRows() + 1
	}
	if col < w.offset.Cols {
		// scroll left
		w.offset.Cols = col
	}
	if col-w.offset.Cols >= w.size.Cols {
		// scroll right
		w.offset.Cols = col - w.size.Cols + 1
	}
}

// width returns the display width of c at display column x.
func (e *Editor) width(c rune, x int) int {
	if c == '\t' {
		return e.tabWidth - x%e.tabWidth
	}
	if w := runewidth.RuneWidth(c); w > 0 {
		return w
	}
	return 1
}

// displayColumn returns the display column of offset i.
func (e *Editor) displayColumn(i int) int {
	x := 0
	for j := e.buffer.LineStart(i); j < i; j++ {
		x += e.width(e.buffer.At(j), x)
	}
	return x
}

// Render draws the visible part of the buffer in the top rows of d, leaving
// the bottom row for the commander. The last row of the window is an info bar
// ending with flags.
func (e *Editor) Render(d chisel.Display, flags string) {
	size := d.Size()
	e.window.size = chisel.Size{Rows: size.Rows - 1, Cols: size.Cols}
	row, _ := e.buffer.Position(e.cursor)
	col := e.displayColumn(e.cursor)
	e.window.adjustDisplayOffsetForScrolling(row, col)
	w := e.window

	text := e.buffer.Text()
	lb := e.buffer.LineOffset(w.offset.Rows)
	last := w.offset.Rows + w.textRows() - 1
	ub := e.buffer.LineEnd(e.buffer.LineOffset(last))
	var spans []chisel.Span
	if e.mode != nil {
		spans = highlight.Spans(e.mode, text, lb, ub)
	}

	i := lb
	for y := 0; y < w.textRows(); y++ {
		if w.offset.Rows+y >= e.buffer.LineCount() {
			d.SetCell(0, y, '~', chisel.Attr{Fg: chisel.ColorBlue})
			continue
		}
		x := 0
		for ; i < len(text) && text[i] != '\n'; i++ {
			for len(spans) > 0 && spans[0].Ub <= i {
				spans = spans[1:]
			}
			attr := chisel.Attr{}
			if len(spans) > 0 && spans[0].Lb <= i {
				attr = spans[0].Attr
			}
			c := text[i]
			n := e.width(c, x)
			if c == '\t' {
				c = ' '
			}
			for k := 0; k < n; k++ {
				if sx := x + k - w.offset.Cols; sx >= 0 && sx < size.Cols {
					d.SetCell(sx, y, c, attr)
				}
				if c != ' ' {
					break
				}
			}
			x += n
		}
		i++
	}

	infoRow := e.window.textRows()
	info := e.computeInfoBarText(size.Cols, row, flags)
	x := 0
	for _, c := range info {
		d.SetCell(x, infoRow, c, chisel.Attr{Fg: chisel.AttrReverse})
		x += runewidth.RuneWidth(c)
	}
	d.SetCursor(col-w.offset.Cols, row-w.offset.Rows)
}

// Compute the text to display on the info bar.
func (e *Editor) computeInfoBarText(length, row int, flags string) string {
	name := e.fileName
	if name == "" {
		name = "*scratch*"
	}
	modified := "--"
	if e.modified {
		modified = "**"
	}
	modeName := ""
	if e.mode != nil {
		modeName = e.mode.Name()
	}
	finalText := fmt.Sprintf(" %d/%d ", row+1, e.buffer.LineCount())
	text := fmt.Sprintf(" %s %s (%s) %s", modified, name, modeName, flags)
	text = runewidth.Truncate(text, length-len(finalText), "")
	text = runewidth.FillRight(text, length-len(finalText))
	return text + finalText
}
