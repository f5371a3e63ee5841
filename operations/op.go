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
package operations

import (
	"github.com/timburks/chisel/buffer"
)

// An Editable is the text and cursor that operations change.
type Editable interface {
	Buffer() *buffer.Buffer
	Cursor() int
	SetCursor(i int)
}

// An Operation changes an Editable and returns its inverse,
// or nil if it changed nothing.
type Operation interface {
	Perform(e Editable) Operation
}

// Op holds the state common to all operations.
// Inverses are marked Undo and put the cursor back where it was
// before the original operation.
type Op struct {
	Cursor int
	Undo   bool
}

func (op *Op) init(e Editable) {
	if op.Undo {
		return
	}
	op.Cursor = e.Cursor()
}

func (op *Op) finish(e Editable) {
	if op.Undo {
		e.SetCursor(op.Cursor)
	}
}

func (op *Op) copyForUndo(other *Op) {
	op.Cursor = other.Cursor
	op.Undo = true
}

// shift returns the position of cursor after n characters are inserted
// (n > 0) or erased (n < 0) at offset.
func shift(cursor, offset, n int) int {
	switch {
	case cursor < offset:
		return cursor
	case n < 0 && cursor < offset-n:
		return offset
	default:
		return cursor + n
	}
}
