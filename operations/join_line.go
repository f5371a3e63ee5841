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

// JoinLine joins the line holding the cursor with the Count lines after it.
// Each newline and the indentation following it become a single space;
// no space is added before a closing parenthesis or after an empty line.
type JoinLine struct {
	Op
	Count int
}

func (op *JoinLine) Perform(e Editable) Operation {
	op.init(e)
	count := op.Count
	if count < 1 {
		count = 1
	}
	b := e.Buffer()
	ops := make([]Operation, 0)
	for i := 0; i < count; i++ {
		end := b.LineEnd(e.Cursor())
		if end == b.Len() {
			break
		}
		next := end + 1
		for next < b.Len() && (b.At(next) == ' ' || b.At(next) == '\t') {
			next++
		}
		ops = append(ops, (&Erase{Lb: end, Ub: next}).Perform(e))
		if end > b.LineStart(end) && end < b.Len() && b.At(end) != '\n' && b.At(end) != ')' {
			ops = append(ops, (&Insert{Offset: end, Text: " "}).Perform(e))
		}
		e.SetCursor(end)
	}
	op.finish(e)
	if len(ops) == 0 {
		return nil
	}
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
	inverse := &Sequence{Operations: ops}
	inverse.copyForUndo(&op.Op)
	return inverse
}
