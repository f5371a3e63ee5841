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
package types

// A Key is a single key code read from the terminal.
// Printable keys are their rune, control keys use their ASCII codes
// and all other keys live above the Unicode range.
type Key rune

// Control keys
const (
	KeyCtrlSpace Key = iota
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	KeyEsc
	KeyCtrlBackslash
	KeyCtrlRsqBracket
	KeyCtrl6
	KeyCtrlSlash
)

const (
	KeyTab       = KeyCtrlI
	KeyEnter     = KeyCtrlM
	KeySpace     = Key(' ')
	KeyBackspace = Key(0x7f)
)

// Keys without a character, numbered past the last Unicode code point.
const (
	KeyF1 Key = 0x110000 + iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyUnsupported
)

// IsPrintable returns true for keys that insert themselves.
func (k Key) IsPrintable() bool {
	return k >= KeySpace && k != KeyBackspace && k < KeyF1
}

// Event types
const (
	EventKey = iota
	EventResize
	EventError
)

// An Event is a single input from the terminal.
type Event struct {
	Type int
	Key  Key
	Size Size
}

type Size struct {
	Rows int
	Cols int
}

// A Color is a terminal color. Zero is the terminal default and
// the 256 palette entries are numbered from one.
type Color uint16

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Style bits that may be combined with a foreground color.
const (
	AttrBold      Color = 0x0200
	AttrUnderline Color = 0x0400
	AttrReverse   Color = 0x0800
)

// An Attr is the foreground/background pair used to draw a character cell.
type Attr struct {
	Fg Color
	Bg Color
}

// A Scope classifies a highlighted span.
type Scope int

const (
	ScopeNone Scope = iota
	ScopeKeyword
	ScopeType
	ScopeFunction
	ScopeMacro
	ScopeString
	ScopeChar
	ScopeNumber
	ScopeComment
	ScopePreprocessor
	ScopeOperator
	ScopeVariable
	ScopeLabel
	ScopeTag
	ScopeAttribute
	ScopeTrailingSpace
	scopeCount
)

var scopeNames = [scopeCount]string{
	"none",
	"keyword",
	"type",
	"function",
	"macro",
	"string",
	"char",
	"number",
	"comment",
	"preprocessor",
	"operator",
	"variable",
	"label",
	"tag",
	"attribute",
	"trailing-space",
}

func (s Scope) String() string {
	if s < 0 || s >= scopeCount {
		return "unknown"
	}
	return scopeNames[s]
}

// ScopeNamed returns the scope with the given name.
func ScopeNamed(name string) (Scope, bool) {
	for i, n := range scopeNames {
		if n == name {
			return Scope(i), true
		}
	}
	return ScopeNone, false
}

// Scopes returns every scope that can be highlighted.
func Scopes() []Scope {
	s := make([]Scope, 0, scopeCount-1)
	for i := ScopeKeyword; i < scopeCount; i++ {
		s = append(s, i)
	}
	return s
}

// A Span is a highlighted range [Lb, Ub) of a buffer.
type Span struct {
	Lb    int
	Ub    int
	Scope Scope
	Attr  Attr
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	return s.Ub - s.Lb
}

// A Display draws character cells.
type Display interface {
	Size() Size
	SetCell(col, row int, c rune, attr Attr)
	SetCursor(col, row int)
}
