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
	"go/format"
	"log"

	"github.com/timburks/chisel/operations"
)

// Gofmt formats the buffer as Go source. The buffer is left unchanged when
// the source has syntax errors.
func (e *Editor) Gofmt() error {
	src := e.buffer.Bytes()
	out, err := format.Source(src)
	if err != nil {
		log.Printf("Syntax errors in code:\n%s", err)
		e.message = fmt.Sprintf("gofmt: %v", err)
		return fmt.Errorf("gofmt %s: %w", e.fileName, err)
	}
	if string(out) == string(src) {
		return nil
	}
	row, col := e.buffer.Position(e.cursor)
	e.Perform(&operations.Sequence{Operations: []operations.Operation{
		&operations.Erase{Lb: 0, Ub: e.buffer.Len()},
		&operations.Insert{Offset: 0, Text: string(out)},
	}})
	start := e.buffer.LineOffset(row)
	e.SetCursor(clipToRange(start+col, start, e.buffer.LineEnd(start)))
	return nil
}
