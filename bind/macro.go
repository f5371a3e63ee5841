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

package bind

import (
	"errors"

	chisel "github.com/timburks/chisel/types"
)

// MaxMacroLen is the largest number of keys in a macro.
const MaxMacroLen = 1024

var (
	ErrNoMacro   = errors.New("no macro has been recorded")
	ErrReplaying = errors.New("a macro is being replayed")
)

// A Macro is a recorded key sequence and the position of its replay.
type Macro struct {
	keys      []chisel.Key
	recording bool
	replaying bool
	next      int
}

// Keys returns the recorded keys.
func (m *Macro) Keys() []chisel.Key {
	return append([]chisel.Key(nil), m.keys...)
}

func (m *Macro) record(k chisel.Key) {
	if !m.recording || m.replaying {
		return
	}
	if len(m.keys) == MaxMacroLen-1 {
		m.keys = append(m.keys, chisel.KeyUnsupported)
		m.recording = false
		return
	}
	m.keys = append(m.keys, k)
}

// stop ends recording. The chord that stopped it was recorded as it
// was typed; all of its keys but the last are removed, and the last
// one is the trigger that replay does not repeat. A recording stopped
// outside a chord gets a placeholder trigger.
func (m *Macro) stop(trigger Chord) {
	m.recording = false
	n := trigger.Len()
	if n == 0 || n > len(m.keys) {
		m.keys = append(m.keys, chisel.KeyUnsupported)
		return
	}
	last := m.keys[len(m.keys)-1]
	m.keys = append(m.keys[:len(m.keys)-n], last)
}

// Record adds a key handled outside of Feed, such as a key typed into
// a prompt, to the macro being recorded.
func (d *Dispatcher) Record(k chisel.Key) {
	d.macro.record(k)
}

// Macro returns the macro of the dispatcher.
func (d *Dispatcher) Macro() *Macro {
	return &d.macro
}

// Recording returns true while keys are being recorded.
func (d *Dispatcher) Recording() bool {
	return d.macro.recording
}

// Replaying returns true while recorded keys are being replayed.
func (d *Dispatcher) Replaying() bool {
	return d.macro.replaying
}

// ToggleRecord starts or stops recording.
func (d *Dispatcher) ToggleRecord() error {
	m := &d.macro
	if m.replaying {
		return ErrReplaying
	}
	if m.recording {
		m.stop(d.invoking)
		return nil
	}
	m.keys = m.keys[:0]
	m.recording = true
	return nil
}

// Replay starts replaying the macro, ending a recording in progress.
func (d *Dispatcher) Replay() error {
	m := &d.macro
	if m.replaying {
		return ErrReplaying
	}
	if m.recording {
		m.stop(d.invoking)
	}
	if len(m.keys) < 2 {
		return ErrNoMacro
	}
	m.replaying = true
	m.next = 0
	return nil
}

// NextKey returns the next key to feed. During a replay, all recorded
// keys but the trigger at the end are returned, and the key that
// follows them is read from live.
func (d *Dispatcher) NextKey(live func() chisel.Key) chisel.Key {
	m := &d.macro
	if m.replaying && m.next < len(m.keys)-1 {
		k := m.keys[m.next]
		m.next++
		return k
	}
	m.replaying = false
	return live()
}
