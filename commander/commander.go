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

// Package commander converts user input into commands for the editor.
//
// Keys are resolved to chords by a bind.Dispatcher. Every bound chord runs
// a lisp expression, so key bindings, the M-x prompt and scripts share the
// primitives defined in lisp.go.
package commander

import (
	"fmt"
	"log"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/chisel/bind"
	"github.com/timburks/chisel/editor"
	"github.com/timburks/chisel/mode"
	chisel "github.com/timburks/chisel/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor      *editor.Editor
	registry    *mode.Registry
	dispatcher  *bind.Dispatcher
	switcher    *mode.Switcher
	prompt      *Prompt // minibuffer input in progress
	searchText  string  // text of the last search
	running     bool
	quitPending bool // a quit was refused because the buffer is modified
	confirmQuit bool
}

// NewCommander returns a commander of e that binds the default keymap.
func NewCommander(e *editor.Editor, r *mode.Registry) *Commander {
	c := &Commander{
		editor:     e,
		registry:   r,
		dispatcher: bind.NewDispatcher(),
		running:    true,
	}
	c.switcher = mode.NewSwitcher(c.dispatcher, c.action)
	if err := c.BindGlobal(DefaultBindings); err != nil {
		log.Printf("%+v", err)
	}
	if m := e.Mode(); m != nil {
		c.enterMode(m)
	}
	return c
}

func (c *Commander) Editor() *editor.Editor {
	return c.editor
}

func (c *Commander) Dispatcher() *bind.Dispatcher {
	return c.dispatcher
}

func (c *Commander) IsRunning() bool {
	return c.running
}

// action returns the action that evaluates expr, reporting errors as messages.
func (c *Commander) action(expr string) bind.Action {
	return func() {
		if _, err := c.eval(expr); err != nil {
			c.editor.SetMessage("%v", err)
		}
	}
}

// BindGlobal binds chords to lisp expressions in every mode.
func (c *Commander) BindGlobal(bindings []mode.Binding) error {
	for _, b := range bindings {
		chord, err := bind.ParseChord(b.Chord)
		if err != nil {
			return fmt.Errorf("binding %q: %w", b.Chord, err)
		}
		if err := c.dispatcher.Bind(bind.Global, chord, c.action(b.Expr)); err != nil {
			return fmt.Errorf("binding %q: %w", b.Chord, err)
		}
	}
	c.dispatcher.Organize()
	return nil
}

func (c *Commander) enterMode(m mode.Mode) {
	c.editor.SetMode(m)
	if err := c.switcher.Switch(c.editor, m); err != nil {
		log.Printf("%+v", err)
		c.editor.SetMessage("%v", err)
	}
}

// SetMode makes the named mode active.
func (c *Commander) SetMode(name string) error {
	m, ok := c.registry.Named(name)
	if !ok {
		return fmt.Errorf("unknown mode %q", name)
	}
	c.enterMode(m)
	return nil
}

// FindFile reads a file into the editor and enters the mode for its type.
func (c *Commander) FindFile(path string) error {
	if err := c.editor.ReadFile(path); err != nil {
		return err
	}
	c.enterMode(c.registry.ForFile(path))
	return nil
}

func (c *Commander) ProcessEvent(event chisel.Event) error {
	switch event.Type {
	case chisel.EventKey:
		c.ProcessKey(event.Key)
	case chisel.EventError:
		return fmt.Errorf("terminal input failed")
	}
	return nil
}

// NextKey returns the next key of a macro being replayed, or a key read from live.
func (c *Commander) NextKey(live func() chisel.Key) chisel.Key {
	return c.dispatcher.NextKey(live)
}

// ProcessKey handles one key. Keys go to the prompt while one is open;
// otherwise they are dispatched, and unbound keys are offered to the mode
// and then inserted if they are printable.
func (c *Commander) ProcessKey(k chisel.Key) {
	if c.dispatcher.Pending().Len() == 0 {
		c.confirmQuit = c.quitPending
		c.quitPending = false
	}
	if c.prompt != nil {
		c.dispatcher.Record(k)
		c.prompt.handle(c, k)
		return
	}
	outcome, k := c.dispatcher.Feed(k)
	switch outcome {
	case bind.Unbound:
		if c.dispatcher.Last().Len() > 1 {
			c.editor.SetMessage("%s is undefined", c.dispatcher.Last())
			return
		}
		e := c.editor
		if m := e.Mode(); m != nil && m.Keypress(e, k) {
			return
		}
		if k.IsPrintable() {
			e.InsertRune(rune(k))
			return
		}
		e.SetMessage("%s is undefined", c.dispatcher.Last())
	case bind.Dropped:
		c.editor.SetMessage("%s is too long", c.dispatcher.Last())
	}
}

// Quit stops the commander. A modified buffer is only abandoned when
// quit is asked for twice in a row.
func (c *Commander) Quit() {
	if c.editor.Modified() && !c.confirmQuit {
		c.quitPending = true
		c.editor.SetMessage("buffer modified; quit again to discard changes")
		return
	}
	c.running = false
}

// StatusLine returns the text of the bottom line and the column of the
// cursor in it, or -1 when the cursor belongs in the buffer.
func (c *Commander) StatusLine() (string, int) {
	if c.prompt != nil {
		text := c.prompt.String()
		return text, len([]rune(text))
	}
	if pending := c.dispatcher.Pending(); pending.Len() > 0 {
		return pending.String() + "-", -1
	}
	return c.editor.Message(), -1
}

// Render draws the editor and the status line.
func (c *Commander) Render(d chisel.Display) {
	flags := ""
	if c.dispatcher.Recording() {
		flags = "Def"
	}
	c.editor.Render(d, flags)
	size := d.Size()
	line, cursor := c.StatusLine()
	x, cursorX := 0, -1
	for i, ch := range []rune(line) {
		if i == cursor {
			cursorX = x
		}
		if x < size.Cols {
			d.SetCell(x, size.Rows-1, ch, chisel.Attr{})
		}
		x += runewidth.RuneWidth(ch)
	}
	if cursor >= 0 {
		if cursorX < 0 {
			cursorX = x
		}
		d.SetCursor(cursorX, size.Rows-1)
	}
}
