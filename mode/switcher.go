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

package mode

import (
	"errors"
	"fmt"
	"log"

	"github.com/timburks/chisel/bind"
)

// An ActionMaker turns the expression of a binding into an action.
type ActionMaker func(expr string) bind.Action

// A Switcher keeps one mode active and its bindings installed.
type Switcher struct {
	dispatcher *bind.Dispatcher
	action     ActionMaker
	active     Mode
}

// NewSwitcher returns a switcher that installs bindings in d.
func NewSwitcher(d *bind.Dispatcher, action ActionMaker) *Switcher {
	return &Switcher{dispatcher: d, action: action}
}

// Active returns the active mode, or nil.
func (w *Switcher) Active() Mode {
	return w.active
}

// Switch leaves the active mode and enters m. Bindings with malformed
// chords are skipped and reported together.
func (w *Switcher) Switch(s Session, m Mode) error {
	if w.active != nil {
		w.active.Leave(s)
		w.dispatcher.Unbind(w.active.Name())
	}
	w.active = m
	m.Enter(s)
	var errs []error
	for _, b := range m.Bindings() {
		c, err := bind.ParseChord(b.Chord)
		if err == nil {
			err = w.dispatcher.Bind(m.Name(), c, w.action(b.Expr))
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("mode %s: binding %q: %w", m.Name(), b.Chord, err))
		}
	}
	w.dispatcher.Organize()
	log.Printf("mode %s", m.Name())
	return errors.Join(errs...)
}
