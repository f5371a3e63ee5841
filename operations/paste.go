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

import "strings"

// Paste inserts Count copies of Text at the cursor and leaves the cursor
// after them.
type Paste struct {
	Op
	Text  string
	Count int
}

func (op *Paste) Perform(e Editable) Operation {
	op.init(e)
	count := op.Count
	if count < 1 {
		count = 1
	}
	insert := &Insert{Offset: e.Cursor(), Text: strings.Repeat(op.Text, count)}
	erase := insert.Perform(e)
	if erase == nil {
		return nil
	}
	op.finish(e)
	inverse := erase.(*Erase)
	inverse.copyForUndo(&op.Op)
	return inverse
}
