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
package commander

import (
	"github.com/timburks/chisel/mode"
)

// DefaultBindings are the global key bindings. Modes and configuration
// files add to them.
var DefaultBindings = []mode.Binding{
	// motion
	{Chord: "C-f", Expr: "(forward-char)"},
	{Chord: "<right>", Expr: "(forward-char)"},
	{Chord: "C-b", Expr: "(backward-char)"},
	{Chord: "<left>", Expr: "(backward-char)"},
	{Chord: "C-n", Expr: "(next-line)"},
	{Chord: "<down>", Expr: "(next-line)"},
	{Chord: "C-p", Expr: "(previous-line)"},
	{Chord: "<up>", Expr: "(previous-line)"},
	{Chord: "C-a", Expr: "(beginning-of-line)"},
	{Chord: "<home>", Expr: "(beginning-of-line)"},
	{Chord: "C-e", Expr: "(end-of-line)"},
	{Chord: "<end>", Expr: "(end-of-line)"},
	{Chord: "M-f", Expr: "(forward-word)"},
	{Chord: "M-b", Expr: "(backward-word)"},
	{Chord: "M-<", Expr: "(beginning-of-buffer)"},
	{Chord: "M->", Expr: "(end-of-buffer)"},
	{Chord: "C-v", Expr: "(page-down)"},
	{Chord: "<pgdn>", Expr: "(page-down)"},
	{Chord: "M-v", Expr: "(page-up)"},
	{Chord: "<pgup>", Expr: "(page-up)"},
	{Chord: "M-g g", Expr: "(goto-line)"},
	{Chord: "C-s", Expr: "(search)"},

	// editing
	{Chord: "<ret>", Expr: "(newline)"},
	{Chord: "<tab>", Expr: "(indent-line)"},
	{Chord: "<bs>", Expr: "(delete-backward-char)"},
	{Chord: "C-h", Expr: "(delete-backward-char)"},
	{Chord: "C-d", Expr: "(delete-char)"},
	{Chord: "<del>", Expr: "(delete-char)"},
	{Chord: "C-k", Expr: "(kill-line)"},
	{Chord: "C-y", Expr: "(yank)"},
	{Chord: "M-j", Expr: "(join-line)"},
	{Chord: "C-_", Expr: "(undo)"},
	{Chord: "M-;", Expr: `(comment-line "# ")`},

	// files and modes
	{Chord: "C-x C-s", Expr: "(save-buffer)"},
	{Chord: "C-x C-w", Expr: "(write-file)"},
	{Chord: "C-x C-f", Expr: "(find-file)"},
	{Chord: "C-x m", Expr: "(set-mode)"},
	{Chord: "C-x C-c", Expr: "(quit)"},
	{Chord: "M-x", Expr: "(execute)"},
	{Chord: "C-g", Expr: "(keyboard-quit)"},

	// macros
	{Chord: "C-x (", Expr: "(start-macro)"},
	{Chord: "C-x )", Expr: "(end-macro)"},
	{Chord: "C-x e", Expr: "(call-macro)"},
	{Chord: "<f3>", Expr: "(start-macro)"},
	{Chord: "<f4>", Expr: "(end-or-call-macro)"},
}
