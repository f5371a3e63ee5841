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
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/timburks/chisel/buffer"
	"github.com/timburks/chisel/mode"
	"github.com/timburks/chisel/operations"
)

// The Editor manages the editing of text in a Buffer.
type Editor struct {
	buffer      *buffer.Buffer
	cursor      int               // offset of the cursor in the buffer
	column      int               // goal column of vertical motion, -1 if unset
	fileName    string            // file the buffer is saved to
	mode        mode.Mode         // active mode
	tabWidth    int               // display width of a tab
	useTabs     bool              // indent with tabs
	defaultTabs bool              // useTabs outside of modes that force tabs
	undo        []operations.Operation
	typing      *operations.Erase // inverse of the insert being typed
	kill        string            // text of the last kill
	killAt      int               // cursor after the last kill
	killDepth   int               // undo depth after the last kill
	clipboard   Clipboard
	message     string
	modified    bool
	window      Window
}

// NewEditor returns an editor of an empty buffer in mode m.
func NewEditor(m mode.Mode) *Editor {
	return &Editor{
		buffer:    buffer.New(),
		column:    -1,
		mode:      m,
		tabWidth:  8,
		killAt:    -1,
		clipboard: SystemClipboard(),
	}
}

// Configure sets the tab width and whether indentation uses tabs.
func (e *Editor) Configure(tabWidth int, useTabs bool) {
	if tabWidth > 0 {
		e.tabWidth = tabWidth
	}
	e.useTabs = useTabs
	e.defaultTabs = useTabs
}

// SetClipboard replaces the clipboard used by kill and yank. A nil
// clipboard keeps killed text inside the editor.
func (e *Editor) SetClipboard(c Clipboard) {
	e.clipboard = c
}

func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		b, err = nil, nil
		e.message = "(new file)"
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	e.buffer = buffer.FromSource(b)
	e.fileName = path
	e.cursor = 0
	e.column = -1
	e.undo = nil
	e.typing = nil
	e.modified = false
	e.window = Window{}
	return nil
}

// WriteFile saves the buffer to path, or to the file it was read from
// when path is empty.
func (e *Editor) WriteFile(path string) error {
	if path == "" {
		path = e.fileName
	}
	if path == "" {
		return errors.New("no file name")
	}
	if err := os.WriteFile(path, e.buffer.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if e.fileName == "" {
		e.fileName = path
	}
	e.modified = false
	e.message = fmt.Sprintf("wrote %s", path)
	log.Printf("wrote %s (%d characters)", path, e.buffer.Len())
	return nil
}

func (e *Editor) Bytes() []byte {
	return e.buffer.Bytes()
}

func (e *Editor) FileName() string {
	return e.fileName
}

func (e *Editor) Mode() mode.Mode {
	return e.mode
}

// SetMode changes the mode used to highlight and indent. Bindings are
// installed separately, by a mode.Switcher.
func (e *Editor) SetMode(m mode.Mode) {
	e.mode = m
}

func (e *Editor) Message() string {
	return e.message
}

func (e *Editor) SetMessage(format string, args ...interface{}) {
	e.message = fmt.Sprintf(format, args...)
}

func (e *Editor) Modified() bool {
	return e.modified
}

// Perform performs an operation and saves its inverse for undo.
func (e *Editor) Perform(op operations.Operation) {
	e.typing = nil
	if inverse := op.Perform(e); inverse != nil {
		e.undo = append(e.undo, inverse)
		e.modified = true
	}
}

// Undo reverts the last operation. It returns false when there is
// nothing to undo.
func (e *Editor) Undo() bool {
	e.typing = nil
	if len(e.undo) == 0 {
		e.message = "no further undo information"
		return false
	}
	last := len(e.undo) - 1
	undo := e.undo[last]
	e.undo = e.undo[0:last]
	undo.Perform(e)
	e.modified = true
	return true
}

// editable

func (e *Editor) Buffer() *buffer.Buffer {
	return e.buffer
}

func (e *Editor) Cursor() int {
	return e.cursor
}

// SetCursor moves the cursor to offset i, clipped to the buffer.
func (e *Editor) SetCursor(i int) {
	e.cursor = clipToRange(i, 0, e.buffer.Len())
	e.column = -1
	e.typing = nil
}

// session

func (e *Editor) SetUseTabs(useTabs bool) {
	e.useTabs = useTabs
}

func (e *Editor) RestoreUseTabs() {
	e.useTabs = e.defaultTabs
}

func (e *Editor) UseTabs() bool {
	return e.useTabs
}

func clipToRange(v, lb, ub int) int {
	if v < lb {
		return lb
	}
	if v > ub {
		return ub
	}
	return v
}
