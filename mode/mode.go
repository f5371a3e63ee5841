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

// Package mode defines editing modes, which bundle the highlighting,
// indentation and key bindings of a file type.
package mode

import (
	"strings"

	"github.com/timburks/chisel/highlight"
	"github.com/timburks/chisel/indent"
	chisel "github.com/timburks/chisel/types"
)

// A Session is the editing state a mode acts on.
type Session interface {
	InsertRune(r rune)
	IndentLine()
	SetUseTabs(useTabs bool)
	RestoreUseTabs()
}

// A Binding maps a chord, written as bind.ParseChord reads it,
// to a lisp expression.
type Binding struct {
	Chord string
	Expr  string
}

// A Mode is the behavior of an editor for one kind of file.
type Mode interface {
	Name() string
	Enter(s Session)
	Leave(s Session)
	// Keypress handles a key that no binding claimed.
	// It returns false to let the key insert itself.
	Keypress(s Session, k chisel.Key) bool
	FindNextSpan(text []rune, start int) (chisel.Span, bool)
	ComputeIndent(text []rune, cursor int) indent.Result
	Bindings() []Binding
}

// A Language is a mode assembled from a highlighter and an indentation engine.
type Language struct {
	ModeName    string
	Highlighter highlight.Highlighter
	Engine      indent.Engine
	// Electric characters reindent their line when typed.
	Electric string
	Keys     []Binding
	// Tabs forces indentation with tabs.
	Tabs bool
}

func (l *Language) Name() string {
	return l.ModeName
}

func (l *Language) Enter(s Session) {
	if l.Tabs {
		s.SetUseTabs(true)
	}
}

func (l *Language) Leave(s Session) {
	if l.Tabs {
		s.RestoreUseTabs()
	}
}

func (l *Language) Keypress(s Session, k chisel.Key) bool {
	if !k.IsPrintable() || !strings.ContainsRune(l.Electric, rune(k)) {
		return false
	}
	s.InsertRune(rune(k))
	s.IndentLine()
	return true
}

func (l *Language) FindNextSpan(text []rune, start int) (chisel.Span, bool) {
	if l.Highlighter == nil {
		return chisel.Span{}, false
	}
	return l.Highlighter.FindNextSpan(text, start)
}

// Spans lists the spans of a range with the highlighter of the mode.
func (l *Language) Spans(text []rune, lb, ub int) []chisel.Span {
	if l.Highlighter == nil {
		return []chisel.Span{}
	}
	return highlight.Spans(l.Highlighter, text, lb, ub)
}

func (l *Language) ComputeIndent(text []rune, cursor int) indent.Result {
	if l.Engine == nil {
		return indent.Copy{}.ComputeIndent(text, cursor)
	}
	return l.Engine.ComputeIndent(text, cursor)
}

func (l *Language) Bindings() []Binding {
	return l.Keys
}
