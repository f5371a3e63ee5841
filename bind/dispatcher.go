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

// Package bind resolves key chords to actions and records keyboard macros.
//
// Entries live in one table sorted by chord. Keys are fed one at a time;
// the dispatcher accumulates them until they name a bound chord exactly,
// or until no bound chord starts with them.
package bind

import (
	"sort"

	chisel "github.com/timburks/chisel/types"
)

// Global owns the bindings that do not belong to a mode.
const Global = "global"

// An Action is run when its chord is typed.
type Action func()

// An Entry binds a chord to an action on behalf of an owner.
type Entry struct {
	Chord  Chord
	Action Action
	Owner  string
}

// An Outcome is the result of feeding one key.
type Outcome int

const (
	Pending Outcome = iota // the keys so far prefix a bound chord
	Invoked                // the keys so far named a chord and its action ran
	Unbound                // no chord starts with the keys so far
	Dropped                // the keys so far overflowed a chord
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Invoked:
		return "invoked"
	case Unbound:
		return "unbound"
	case Dropped:
		return "dropped"
	}
	return "unknown"
}

// A Dispatcher maps typed keys to actions.
type Dispatcher struct {
	entries  []Entry
	sorted   bool
	pending  Chord
	last     Chord
	invoking Chord
	macro    Macro
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{sorted: true}
}

// Bind adds an entry. The table must be organized before the entry is found.
func (d *Dispatcher) Bind(owner string, c Chord, a Action) error {
	if c.Len() == 0 {
		return ErrEmptyChord
	}
	d.entries = append(d.entries, Entry{Chord: c, Action: a, Owner: owner})
	d.sorted = false
	return nil
}

// Unbind removes all entries of an owner.
func (d *Dispatcher) Unbind(owner string) {
	kept := d.entries[:0]
	for _, e := range d.entries {
		if e.Owner != owner {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(d.entries); i++ {
		d.entries[i] = Entry{}
	}
	d.entries = kept
}

// Organize sorts the table by chord. Entries with equal chords keep the
// order in which they were bound, and the last of them wins.
func (d *Dispatcher) Organize() {
	sort.SliceStable(d.entries, func(i, j int) bool {
		return d.entries[i].Chord.Compare(d.entries[j].Chord) < 0
	})
	d.sorted = true
}

// Entries returns the effective entries in chord order.
func (d *Dispatcher) Entries() []Entry {
	if !d.sorted {
		d.Organize()
	}
	result := make([]Entry, 0, len(d.entries))
	for i, e := range d.entries {
		if i+1 < len(d.entries) && d.entries[i+1].Chord.Compare(e.Chord) == 0 {
			continue
		}
		result = append(result, e)
	}
	return result
}

// search finds the first entry at or after c, moving past equal chords
// to the last of them.
func (d *Dispatcher) search(c Chord) (int, bool) {
	i := sort.Search(len(d.entries), func(i int) bool {
		return d.entries[i].Chord.Compare(c) >= 0
	})
	if i == len(d.entries) || !d.entries[i].Chord.HasPrefix(c) {
		return i, false
	}
	if d.entries[i].Chord.Len() == c.Len() {
		for i+1 < len(d.entries) && d.entries[i+1].Chord.Compare(c) == 0 {
			i++
		}
	}
	return i, true
}

// Lookup returns the entry bound to exactly c.
func (d *Dispatcher) Lookup(c Chord) (Entry, bool) {
	if !d.sorted {
		d.Organize()
	}
	i, ok := d.search(c)
	if !ok || d.entries[i].Chord.Len() != c.Len() {
		return Entry{}, false
	}
	return d.entries[i], true
}

// Pending returns the keys typed toward a chord so far.
func (d *Dispatcher) Pending() Chord {
	return d.pending
}

// Last returns the keys that produced the most recent outcome.
func (d *Dispatcher) Last() Chord {
	return d.last
}

// Feed adds a key to the pending chord. An unbound key is returned for
// default handling, such as self-insertion.
func (d *Dispatcher) Feed(k chisel.Key) (Outcome, chisel.Key) {
	if !d.sorted {
		d.Organize()
	}
	d.macro.record(k)
	c, ok := d.pending.Append(k)
	if !ok {
		d.last = d.pending
		d.pending = Chord{}
		return Dropped, k
	}
	i, found := d.search(c)
	if !found {
		d.last = c
		d.pending = Chord{}
		return Unbound, k
	}
	e := d.entries[i]
	if e.Chord.Len() > c.Len() {
		d.pending = c
		return Pending, k
	}
	d.last = c
	d.pending = Chord{}
	d.invoking = c
	if e.Action != nil {
		e.Action()
	}
	d.invoking = Chord{}
	return Invoked, k
}

// Reset abandons the pending chord.
func (d *Dispatcher) Reset() {
	d.pending = Chord{}
}
