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
package screen

import (
	"testing"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"

	chisel "github.com/timburks/chisel/types"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		event termbox.Event
		keys  []chisel.Key
	}{
		{termbox.Event{Ch: 'a'}, []chisel.Key{'a'}},
		{termbox.Event{Ch: 'é'}, []chisel.Key{'é'}},
		{termbox.Event{Key: termbox.KeyCtrlX}, []chisel.Key{chisel.KeyCtrlX}},
		{termbox.Event{Key: termbox.KeySpace}, []chisel.Key{chisel.KeySpace}},
		{termbox.Event{Key: termbox.KeyEnter}, []chisel.Key{chisel.KeyEnter}},
		{termbox.Event{Key: termbox.KeyTab}, []chisel.Key{chisel.KeyTab}},
		{termbox.Event{Key: termbox.KeyBackspace2}, []chisel.Key{chisel.KeyBackspace}},
		{termbox.Event{Key: termbox.KeyCtrlUnderscore}, []chisel.Key{chisel.KeyCtrlSlash}},
		{termbox.Event{Key: termbox.KeyEsc}, []chisel.Key{chisel.KeyEsc}},
		{termbox.Event{Key: termbox.KeyF5}, []chisel.Key{chisel.KeyF5}},
		{termbox.Event{Key: termbox.KeyArrowLeft}, []chisel.Key{chisel.KeyArrowLeft}},
		{termbox.Event{Key: termbox.MouseLeft}, []chisel.Key{chisel.KeyUnsupported}},
		{termbox.Event{Mod: termbox.ModAlt, Ch: 'x'}, []chisel.Key{chisel.KeyEsc, 'x'}},
		{termbox.Event{Mod: termbox.ModAlt, Key: termbox.KeyEsc}, []chisel.Key{chisel.KeyEsc}},
	}
	for _, c := range cases {
		assert.Equal(t, c.keys, decode(c.event), "%+v", c.event)
	}
}
