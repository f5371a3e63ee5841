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

// Insert adds text at an offset. The cursor moves past the text when it
// was at or after the offset.
type Insert struct {
	Op
	Offset int
	Text   string
}

func (op *Insert) Perform(e Editable) Operation {
	op.init(e)
	rs := []rune(op.Text)
	if len(rs) == 0 {
		return nil
	}
	e.Buffer().InsertRunes(op.Offset, rs)
	e.SetCursor(shift(e.Cursor(), op.Offset, len(rs)))
	op.finish(e)

	inverse := &Erase{Lb: op.Offset, Ub: op.Offset + len(rs)}
	inverse.copyForUndo(&op.Op)
	return inverse
}

// Erase removes the text in [Lb, Ub).
type Erase struct {
	Op
	Lb int
	Ub int
}

func (op *Erase) Perform(e Editable) Operation {
	op.init(e)
	if op.Lb >= op.Ub {
		return nil
	}
	b := e.Buffer()
	text := b.Slice(op.Lb, op.Ub)
	b.Erase(op.Lb, op.Ub)
	e.SetCursor(shift(e.Cursor(), op.Lb, op.Lb-op.Ub))
	op.finish(e)

	inverse := &Insert{Offset: op.Lb, Text: text}
	inverse.copyForUndo(&op.Op)
	return inverse
}

// Extend grows the erased range by n characters. It lets a run of typed
// characters be undone as one insert.
func (op *Erase) Extend(n int) {
	op.Ub += n
}

// Sequence performs operations in order and undoes them in reverse.
type Sequence struct {
	Op
	Operations []Operation
}

func (op *Sequence) Perform(e Editable) Operation {
	op.init(e)
	inverses := make([]Operation, 0, len(op.Operations))
	for _, o := range op.Operations {
		if inverse := o.Perform(e); inverse != nil {
			inverses = append([]Operation{inverse}, inverses...)
		}
	}
	op.finish(e)
	if len(inverses) == 0 {
		return nil
	}
	inverse := &Sequence{Operations: inverses}
	inverse.copyForUndo(&op.Op)
	return inverse
}
