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
	"fmt"
	"strings"
	"unicode/utf8"

	chisel "github.com/timburks/chisel/types"
)

// MaxChordLen is the largest number of keys in a chord.
const MaxChordLen = 8

var (
	ErrChordTooLong = errors.New("chord too long")
	ErrEmptyChord   = errors.New("empty chord")
	ErrBadKey       = errors.New("unknown key")
)

// A Chord is a short sequence of keys that triggers an action.
type Chord struct {
	keys [MaxChordLen]chisel.Key
	n    int
}

// NewChord returns a chord of keys.
func NewChord(keys ...chisel.Key) (Chord, error) {
	var c Chord
	if len(keys) > MaxChordLen {
		return c, ErrChordTooLong
	}
	c.n = copy(c.keys[:], keys)
	return c, nil
}

// Len returns the number of keys in the chord.
func (c Chord) Len() int {
	return c.n
}

// Keys returns the keys of the chord.
func (c Chord) Keys() []chisel.Key {
	return append([]chisel.Key(nil), c.keys[:c.n]...)
}

// Append returns the chord extended by k, or false if it is full.
func (c Chord) Append(k chisel.Key) (Chord, bool) {
	if c.n == MaxChordLen {
		return c, false
	}
	c.keys[c.n] = k
	c.n++
	return c, true
}

// Compare orders chords by key, and a chord before the chords it prefixes.
func (c Chord) Compare(o Chord) int {
	for i := 0; i < c.n && i < o.n; i++ {
		if c.keys[i] < o.keys[i] {
			return -1
		}
		if c.keys[i] > o.keys[i] {
			return 1
		}
	}
	switch {
	case c.n < o.n:
		return -1
	case c.n > o.n:
		return 1
	}
	return 0
}

// HasPrefix returns true if p is a prefix of c.
func (c Chord) HasPrefix(p Chord) bool {
	if p.n > c.n {
		return false
	}
	for i := 0; i < p.n; i++ {
		if c.keys[i] != p.keys[i] {
			return false
		}
	}
	return true
}

var named = map[string]chisel.Key{
	"f1": chisel.KeyF1, "f2": chisel.KeyF2, "f3": chisel.KeyF3, "f4": chisel.KeyF4,
	"f5": chisel.KeyF5, "f6": chisel.KeyF6, "f7": chisel.KeyF7, "f8": chisel.KeyF8,
	"f9": chisel.KeyF9, "f10": chisel.KeyF10, "f11": chisel.KeyF11, "f12": chisel.KeyF12,
	"up": chisel.KeyArrowUp, "down": chisel.KeyArrowDown,
	"left": chisel.KeyArrowLeft, "right": chisel.KeyArrowRight,
	"home": chisel.KeyHome, "end": chisel.KeyEnd,
	"pgup": chisel.KeyPgup, "pgdn": chisel.KeyPgdn,
	"del": chisel.KeyDelete, "ins": chisel.KeyInsert,
	"tab": chisel.KeyTab, "ret": chisel.KeyEnter,
	"esc": chisel.KeyEsc, "bs": chisel.KeyBackspace,
}

var names = func() map[chisel.Key]string {
	m := make(map[chisel.Key]string, len(named))
	for name, k := range named {
		m[k] = "<" + name + ">"
	}
	return m
}()

// control maps the character after "C-" to its control key.
func control(c rune) (chisel.Key, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return chisel.KeyCtrlA + chisel.Key(c-'a'), true
	case c == '@':
		return chisel.KeyCtrlSpace, true
	case c == '[':
		return chisel.KeyEsc, true
	case c == '\\':
		return chisel.KeyCtrlBackslash, true
	case c == ']':
		return chisel.KeyCtrlRsqBracket, true
	case c == '^' || c == '6':
		return chisel.KeyCtrl6, true
	case c == '_' || c == '/':
		return chisel.KeyCtrlSlash, true
	}
	return 0, false
}

// parseKey appends the keys named by one token.
func parseKey(keys []chisel.Key, token string) ([]chisel.Key, error) {
	switch {
	case token == "SPC":
		return append(keys, chisel.KeySpace), nil
	case strings.HasPrefix(token, "M-") && len(token) > 2:
		return parseKey(append(keys, chisel.KeyEsc), token[2:])
	case token == "C-SPC":
		return append(keys, chisel.KeyCtrlSpace), nil
	case strings.HasPrefix(token, "C-") && utf8.RuneCountInString(token) == 3:
		r, _ := utf8.DecodeLastRuneInString(token)
		if k, ok := control(r); ok {
			return append(keys, k), nil
		}
	case strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">") && len(token) > 2:
		if k, ok := named[token[1:len(token)-1]]; ok {
			return append(keys, k), nil
		}
	case utf8.RuneCountInString(token) == 1:
		r, _ := utf8.DecodeRuneInString(token)
		return append(keys, chisel.Key(r)), nil
	}
	return keys, fmt.Errorf("%w: %q", ErrBadKey, token)
}

// ParseChord reads a chord written like "C-x C-s", "M-x" or "<f5>".
func ParseChord(s string) (Chord, error) {
	keys := make([]chisel.Key, 0, MaxChordLen)
	for _, token := range strings.Fields(s) {
		var err error
		keys, err = parseKey(keys, token)
		if err != nil {
			return Chord{}, err
		}
	}
	if len(keys) == 0 {
		return Chord{}, ErrEmptyChord
	}
	return NewChord(keys...)
}

// MustParseChord is like ParseChord but panics on malformed chords.
func MustParseChord(s string) Chord {
	c, err := ParseChord(s)
	if err != nil {
		panic(err)
	}
	return c
}

// KeyName returns the name of a key as written in a chord.
func KeyName(k chisel.Key) string {
	if name, ok := names[k]; ok {
		return name
	}
	switch {
	case k == chisel.KeySpace:
		return "SPC"
	case k == chisel.KeyCtrlSpace:
		return "C-SPC"
	case k >= chisel.KeyCtrlA && k <= chisel.KeyCtrlZ:
		return "C-" + string(rune('a'+k-chisel.KeyCtrlA))
	case k == chisel.KeyCtrlBackslash:
		return `C-\`
	case k == chisel.KeyCtrlRsqBracket:
		return "C-]"
	case k == chisel.KeyCtrl6:
		return "C-^"
	case k == chisel.KeyCtrlSlash:
		return "C-_"
	case k.IsPrintable():
		return string(rune(k))
	}
	return fmt.Sprintf("<%#x>", int(k))
}

// String returns the chord as ParseChord reads it.
// An escape followed by another key is written as a meta key.
func (c Chord) String() string {
	parts := make([]string, 0, c.n)
	for i := 0; i < c.n; i++ {
		if c.keys[i] == chisel.KeyEsc && i+1 < c.n {
			i++
			parts = append(parts, "M-"+KeyName(c.keys[i]))
			continue
		}
		parts = append(parts, KeyName(c.keys[i]))
	}
	return strings.Join(parts, " ")
}
