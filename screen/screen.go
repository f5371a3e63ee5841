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

// Package screen draws cells and reads keys with termbox.
package screen

import (
	"fmt"

	"github.com/nsf/termbox-go"

	chisel "github.com/timburks/chisel/types"
)

// The Screen is a terminal display.
type Screen struct {
	pending []chisel.Key // keys decoded but not yet returned
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputAlt)
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Size() chisel.Size {
	cols, rows := termbox.Size()
	return chisel.Size{Rows: rows, Cols: cols}
}

// SetCell draws c at a position. Colors are palette entries numbered from
// one, with the style bits termbox uses.
func (s *Screen) SetCell(col, row int, c rune, attr chisel.Attr) {
	termbox.SetCell(col, row, c, termbox.Attribute(attr.Fg), termbox.Attribute(attr.Bg))
}

func (s *Screen) SetCursor(col, row int) {
	termbox.SetCursor(col, row)
}

// Clear blanks the screen before a frame is drawn.
func (s *Screen) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

// Flush shows the frame that was drawn.
func (s *Screen) Flush() {
	termbox.Flush()
}

// GetNextEvent waits for input. A key typed with Alt arrives as an escape
// followed by the key.
func (s *Screen) GetNextEvent() chisel.Event {
	if len(s.pending) > 0 {
		k := s.pending[0]
		s.pending = s.pending[1:]
		return chisel.Event{Type: chisel.EventKey, Key: k}
	}
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		keys := decode(event)
		s.pending = append(s.pending, keys[1:]...)
		return chisel.Event{Type: chisel.EventKey, Key: keys[0]}
	case termbox.EventResize:
		termbox.Flush()
		return chisel.Event{Type: chisel.EventResize, Size: chisel.Size{Rows: event.Height, Cols: event.Width}}
	case termbox.EventError:
		return chisel.Event{Type: chisel.EventError}
	}
	return chisel.Event{Type: chisel.EventResize, Size: s.Size()}
}

// decode returns the keys of a termbox key event.
func decode(event termbox.Event) []chisel.Key {
	k := key(event.Key, event.Ch)
	if event.Mod&termbox.ModAlt != 0 && k != chisel.KeyEsc {
		return []chisel.Key{chisel.KeyEsc, k}
	}
	return []chisel.Key{k}
}

func key(k termbox.Key, ch rune) chisel.Key {
	if ch != 0 {
		return chisel.Key(ch)
	}
	// control keys and space share their codes with ASCII
	if k <= termbox.KeySpace || k == termbox.KeyBackspace2 {
		return chisel.Key(k)
	}
	switch k {
	case termbox.KeyF1:
		return chisel.KeyF1
	case termbox.KeyF2:
		return chisel.KeyF2
	case termbox.KeyF3:
		return chisel.KeyF3
	case termbox.KeyF4:
		return chisel.KeyF4
	case termbox.KeyF5:
		return chisel.KeyF5
	case termbox.KeyF6:
		return chisel.KeyF6
	case termbox.KeyF7:
		return chisel.KeyF7
	case termbox.KeyF8:
		return chisel.KeyF8
	case termbox.KeyF9:
		return chisel.KeyF9
	case termbox.KeyF10:
		return chisel.KeyF10
	case termbox.KeyF11:
		return chisel.KeyF11
	case termbox.KeyF12:
		return chisel.KeyF12
	case termbox.KeyInsert:
		return chisel.KeyInsert
	case termbox.KeyDelete:
		return chisel.KeyDelete
	case termbox.KeyHome:
		return chisel.KeyHome
	case termbox.KeyEnd:
		return chisel.KeyEnd
	case termbox.KeyPgup:
		return chisel.KeyPgup
	case termbox.KeyPgdn:
		return chisel.KeyPgdn
	case termbox.KeyArrowUp:
		return chisel.KeyArrowUp
	case termbox.KeyArrowDown:
		return chisel.KeyArrowDown
	case termbox.KeyArrowLeft:
		return chisel.KeyArrowLeft
	case termbox.KeyArrowRight:
		return chisel.KeyArrowRight
	default:
		return chisel.KeyUnsupported
	}
}
