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
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/steelseries/golisp"

	"github.com/timburks/chisel/bind"
	"github.com/timburks/chisel/mode"
)

// active is the commander that lisp primitives act on while it evaluates.
var active *Commander

type primitive struct {
	args string
	impl func(c *Commander, args *golisp.Data) (*golisp.Data, error)
}

// motion wraps an editor motion that takes an optional count.
func motion(move func(c *Commander, n int)) primitive {
	return primitive{"0|1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		n, err := count(args)
		if err != nil {
			return nil, err
		}
		move(c, n)
		return nil, nil
	}}
}

// command wraps an action that takes no arguments.
func command(f func(c *Commander) error) primitive {
	return primitive{"0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return nil, f(c)
	}}
}

// prompted wraps an action that takes a string argument, prompting for it
// when it is missing.
func prompted(label string, f func(c *Commander, text string) error) primitive {
	return primitive{"0|1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		if golisp.Length(args) == 1 {
			s, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			return nil, f(c, s)
		}
		c.OpenPrompt(label, "", func(text string) {
			if err := f(c, text); err != nil {
				log.Printf("%s%s: %v", label, text, err)
				c.editor.SetMessage("%v", err)
			}
		})
		return nil, nil
	}}
}

var primitives = map[string]primitive{
	"forward-char":  motion(func(c *Commander, n int) { c.editor.ForwardChar(n) }),
	"backward-char": motion(func(c *Commander, n int) { c.editor.BackwardChar(n) }),
	"next-line":     motion(func(c *Commander, n int) { c.editor.NextLine(n) }),
	"previous-line": motion(func(c *Commander, n int) { c.editor.PreviousLine(n) }),
	"forward-word":  motion(func(c *Commander, n int) { c.editor.ForwardWord(n) }),
	"backward-word": motion(func(c *Commander, n int) { c.editor.BackwardWord(n) }),
	"yank":          motion(func(c *Commander, n int) { c.editor.Yank(n) }),
	"join-line":     motion(func(c *Commander, n int) { c.editor.JoinLine(n) }),

	"beginning-of-line":    command(func(c *Commander) error { c.editor.BeginningOfLine(); return nil }),
	"end-of-line":          command(func(c *Commander) error { c.editor.EndOfLine(); return nil }),
	"beginning-of-buffer":  command(func(c *Commander) error { c.editor.BeginningOfBuffer(); return nil }),
	"end-of-buffer":        command(func(c *Commander) error { c.editor.EndOfBuffer(); return nil }),
	"page-up":              command(func(c *Commander) error { c.editor.PageUp(); return nil }),
	"page-down":            command(func(c *Commander) error { c.editor.PageDown(); return nil }),
	"newline":              command(func(c *Commander) error { c.editor.Newline(); return nil }),
	"indent-line":          command(func(c *Commander) error { c.editor.IndentLine(); return nil }),
	"delete-char":          command(func(c *Commander) error { c.editor.DeleteForward(); return nil }),
	"delete-backward-char": command(func(c *Commander) error { c.editor.DeleteBackward(); return nil }),
	"kill-line":            command(func(c *Commander) error { c.editor.KillLine(); return nil }),
	"undo":                 command(func(c *Commander) error { c.editor.Undo(); return nil }),
	"gofmt":                command(func(c *Commander) error { return c.editor.Gofmt() }),
	"eval-buffer":          command((*Commander).EvalBuffer),
	"save-buffer":          command(func(c *Commander) error { return c.editor.WriteFile("") }),
	"quit":                 command(func(c *Commander) error { c.Quit(); return nil }),
	"keyboard-quit":        command(func(c *Commander) error { c.dispatcher.Reset(); c.editor.SetMessage("quit"); return nil }),
	"start-macro":          command((*Commander).StartMacro),
	"end-macro":            command((*Commander).EndMacro),
	"call-macro":           command((*Commander).CallMacro),
	"end-or-call-macro": command(func(c *Commander) error {
		if c.dispatcher.Recording() {
			return c.EndMacro()
		}
		return c.CallMacro()
	}),
	"execute": command(func(c *Commander) error {
		c.OpenPrompt("M-x ", "(", func(text string) {
			c.editor.SetMessage("%s", c.ParseEval(text))
		})
		return nil
	}),

	"search": prompted("Search: ", func(c *Commander, text string) error {
		if text == "" {
			text = c.searchText
		}
		c.searchText = text
		c.editor.Search(text)
		return nil
	}),
	"goto-line": prompted("Goto line: ", func(c *Commander, text string) error {
		n, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("goto-line: %w", err)
		}
		c.editor.GotoLine(n)
		return nil
	}),
	"find-file":  prompted("Find file: ", (*Commander).FindFile),
	"write-file": prompted("Write file: ", func(c *Commander, path string) error { return c.editor.WriteFile(path) }),
	"set-mode":   prompted("Mode: ", (*Commander).SetMode),

	"insert": {"1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		s, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		c.editor.InsertText(s)
		return nil, nil
	}},
	"comment-line": {"1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		prefix, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		c.editor.CommentLine(prefix)
		return nil, nil
	}},
	"wrap-line": {"2", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		open, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		close, err := stringArg(args, 1)
		if err != nil {
			return nil, err
		}
		c.editor.WrapLine(open, close)
		return nil, nil
	}},
	"message": {"1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		s, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		c.editor.SetMessage("%s", s)
		return nil, nil
	}},
	"bind-key": {"2", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		chord, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		expr, err := stringArg(args, 1)
		if err != nil {
			return nil, err
		}
		return nil, c.BindGlobal([]mode.Binding{{Chord: chord, Expr: expr}})
	}},
	"goto-char": {"1", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		n := golisp.Car(args)
		if !golisp.IntegerP(n) {
			return nil, errors.New("goto-char requires an integer argument")
		}
		c.editor.SetCursor(int(golisp.IntegerValue(n)))
		return nil, nil
	}},
	"point": {"0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(c.editor.Cursor())), nil
	}},
	"buffer-string": {"0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return golisp.StringWithValue(c.editor.Buffer().String()), nil
	}},
	"mode-name": {"0", func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		if m := c.editor.Mode(); m != nil {
			return golisp.StringWithValue(m.Name()), nil
		}
		return golisp.StringWithValue(""), nil
	}},
}

func init() {
	for name, p := range primitives {
		p := p
		golisp.MakePrimitiveFunction(name, p.args, func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			if active == nil {
				return nil, errors.New("no editor is active")
			}
			return p.impl(active, args)
		})
	}
}

// count returns the optional count argument of a motion.
func count(args *golisp.Data) (int, error) {
	if golisp.Length(args) == 0 {
		return 1, nil
	}
	n := golisp.Car(args)
	if !golisp.IntegerP(n) {
		return 0, errors.New("count must be an integer")
	}
	return int(golisp.IntegerValue(n)), nil
}

func stringArg(args *golisp.Data, i int) (string, error) {
	for ; i > 0; i-- {
		args = golisp.Cdr(args)
	}
	s := golisp.Car(args)
	if !golisp.StringP(s) {
		return "", fmt.Errorf("expected a string but got %s", golisp.String(s))
	}
	return golisp.StringValue(s), nil
}

// eval evaluates one expression with c as the active commander.
func (c *Commander) eval(expr string) (*golisp.Data, error) {
	previous := active
	active = c
	defer func() { active = previous }()
	value, err := golisp.ParseAndEval(expr)
	if err != nil {
		log.Printf("ERR %s: %+v", expr, err)
	}
	return value, err
}

// evalAll evaluates every expression of src and returns the value of the last.
func (c *Commander) evalAll(src string) (*golisp.Data, error) {
	previous := active
	active = c
	defer func() { active = previous }()
	return golisp.ParseAndEvalAll(src)
}

// ParseEval evaluates a lisp expression and returns its value or error as text.
func (c *Commander) ParseEval(command string) string {
	value, err := c.eval(command)
	if err != nil {
		return err.Error()
	}
	return golisp.String(value)
}

// EvalBuffer evaluates the buffer as a lisp program.
func (c *Commander) EvalBuffer() error {
	value, err := c.evalAll(c.editor.Buffer().String())
	if err != nil {
		log.Printf("ERR eval-buffer: %+v", err)
		return fmt.Errorf("eval-buffer: %w", err)
	}
	c.editor.SetMessage("%s", golisp.String(value))
	return nil
}

// EvalFile runs a lisp script against the editor.
func (c *Commander) EvalFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	if _, err := c.evalAll(string(src)); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	return nil
}

func (c *Commander) StartMacro() error {
	if c.dispatcher.Recording() {
		return errors.New("already defining a macro")
	}
	if err := c.dispatcher.ToggleRecord(); err != nil {
		log.Printf("start-macro: %v", err)
		return err
	}
	c.editor.SetMessage("defining macro")
	return nil
}

func (c *Commander) EndMacro() error {
	if !c.dispatcher.Recording() {
		return errors.New("not defining a macro")
	}
	if err := c.dispatcher.ToggleRecord(); err != nil {
		log.Printf("end-macro: %v", err)
		return err
	}
	c.editor.SetMessage("macro defined")
	return nil
}

func (c *Commander) CallMacro() error {
	err := c.dispatcher.Replay()
	if errors.Is(err, bind.ErrNoMacro) || errors.Is(err, bind.ErrReplaying) {
		log.Printf("call-macro: %v", err)
	}
	return err
}
