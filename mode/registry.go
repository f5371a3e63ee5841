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
	"path/filepath"
	"sort"
	"strings"

	"github.com/timburks/chisel/highlight"
	"github.com/timburks/chisel/indent"
)

// Text is the name of the mode for files of no known type.
const Text = "text"

// A Constructor makes a new mode that draws with a palette.
type Constructor func(p highlight.Palette) Mode

// A Registry finds modes by name and by file name.
type Registry struct {
	palette      highlight.Palette
	constructors map[string]Constructor
	extensions   map[string]string
	extra        map[string][]Binding
}

// NewRegistry returns a registry of the built-in modes.
func NewRegistry(p highlight.Palette) *Registry {
	r := &Registry{
		palette:      p,
		constructors: make(map[string]Constructor),
		extensions:   make(map[string]string),
		extra:        make(map[string][]Binding),
	}
	r.Register("c", []string{".c", ".h"}, cMode(highlight.C))
	r.Register("cpp", []string{".cc", ".cpp", ".cxx", ".hpp", ".hh"}, cMode(highlight.CPP))
	r.Register("go", []string{".go"}, goMode)
	r.Register("rust", []string{".rs"}, bracketMode(highlight.Rust, "//"))
	r.Register("javascript", []string{".js", ".mjs", ".ts"}, bracketMode(highlight.JavaScript, "//"))
	r.Register("shell", []string{".sh", ".bash", ".zsh"}, copyMode(highlight.Shell, "#"))
	r.Register("lisp", []string{".lisp", ".lsp", ".el", ".scm"}, lispMode)
	r.Register("asm", []string{".s", ".S", ".asm"}, asmMode)
	r.Register("markup", []string{".html", ".htm", ".xml", ".svg"}, markupMode)
	r.Register(Text, nil, textMode)
	return r
}

// Register adds a mode and the file extensions that select it.
func (r *Registry) Register(name string, extensions []string, c Constructor) {
	r.constructors[name] = c
	for _, ext := range extensions {
		r.extensions[ext] = name
	}
}

// AddBindings appends bindings to every mode with a name.
func (r *Registry) AddBindings(name string, bindings []Binding) {
	r.extra[name] = append(r.extra[name], bindings...)
}

// Names returns the names of the registered modes.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Named makes the mode with a name.
func (r *Registry) Named(name string) (Mode, bool) {
	c, ok := r.constructors[name]
	if !ok {
		return nil, false
	}
	return r.withExtra(name, c(r.palette)), true
}

// ForFile makes the mode for a file name. Files of unknown type are
// highlighted by chroma when it knows them, and are plain text otherwise.
func (r *Registry) ForFile(filename string) Mode {
	if name, ok := r.extensions[filepath.Ext(filename)]; ok {
		m, _ := r.Named(name)
		return m
	}
	if name, ok := r.extensions[strings.ToLower(filepath.Ext(filename))]; ok {
		m, _ := r.Named(name)
		return m
	}
	if h := highlight.MatchChroma(filepath.Base(filename), r.palette); h != nil {
		return r.withExtra(Text, &Language{
			ModeName:    "chroma:" + strings.ToLower(h.Name()),
			Highlighter: h,
			Engine:      indent.Copy{},
		})
	}
	m, _ := r.Named(Text)
	return m
}

func (r *Registry) withExtra(name string, m Mode) Mode {
	extra := r.extra[name]
	if len(extra) == 0 {
		return m
	}
	if l, ok := m.(*Language); ok {
		l.Keys = append(append([]Binding(nil), l.Keys...), extra...)
	}
	return m
}

func commentKey(prefix string) Binding {
	return Binding{Chord: "M-;", Expr: `(comment-line "` + prefix + ` ")`}
}

func cMode(g func() highlight.Grammar) Constructor {
	return func(p highlight.Palette) Mode {
		h := highlight.NewScanner(g(), p)
		return &Language{
			ModeName:    g().Name,
			Highlighter: h,
			Engine:      indent.NewCFamily(h),
			Electric:    "{}:",
			Keys:        []Binding{commentKey("//")},
		}
	}
}

func goMode(p highlight.Palette) Mode {
	h := highlight.NewScanner(highlight.Go(), p)
	e := indent.NewBracket(h)
	e.Punctuation = ""
	e.Outdent = []string{"case", "default"}
	return &Language{
		ModeName:    "go",
		Highlighter: h,
		Engine:      e,
		Electric:    "})]:",
		Keys: []Binding{
			commentKey("//"),
			{Chord: "C-c C-f", Expr: "(gofmt)"},
		},
		Tabs: true,
	}
}

func bracketMode(g func() highlight.Grammar, comment string) Constructor {
	return func(p highlight.Palette) Mode {
		h := highlight.NewScanner(g(), p)
		return &Language{
			ModeName:    g().Name,
			Highlighter: h,
			Engine:      indent.NewBracket(h),
			Electric:    "})]",
			Keys:        []Binding{commentKey(comment)},
		}
	}
}

func copyMode(g func() highlight.Grammar, comment string) Constructor {
	return func(p highlight.Palette) Mode {
		return &Language{
			ModeName:    g().Name,
			Highlighter: highlight.NewScanner(g(), p),
			Engine:      indent.Copy{},
			Keys:        []Binding{commentKey(comment)},
		}
	}
}

func lispMode(p highlight.Palette) Mode {
	return &Language{
		ModeName:    "lisp",
		Highlighter: highlight.NewScanner(highlight.Lisp(), p),
		Engine:      indent.Copy{},
		Keys: []Binding{
			commentKey(";;"),
			{Chord: "C-c C-e", Expr: "(eval-buffer)"},
		},
	}
}

func asmMode(p highlight.Palette) Mode {
	return &Language{
		ModeName:    "asm",
		Highlighter: highlight.NewAsm(p),
		Engine:      indent.Flat{},
		Electric:    ":",
		Keys:        []Binding{commentKey("#")},
		Tabs:        true,
	}
}

func markupMode(p highlight.Palette) Mode {
	h := highlight.NewMarkup(p)
	return &Language{
		ModeName:    "markup",
		Highlighter: h,
		Engine:      indent.NewMarkup(h),
		Electric:    ">",
		Keys: []Binding{
			{Chord: "M-;", Expr: `(wrap-line "<!-- " " -->")`},
		},
	}
}

func textMode(p highlight.Palette) Mode {
	return &Language{
		ModeName: Text,
		Engine:   indent.Copy{},
	}
}
