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
	chisel "github.com/timburks/chisel/types"
)

// A Prompt collects a line of text in the minibuffer.
type Prompt struct {
	label string
	text  []rune
	done  func(text string)
}

func (p *Prompt) String() string {
	return p.label + string(p.text)
}

// OpenPrompt starts collecting text. done is called with the text when
// it is entered, and not at all when the prompt is cancelled.
func (c *Commander) OpenPrompt(label, initial string, done func(text string)) {
	c.prompt = &Prompt{label: label, text: []rune(initial), done: done}
}

func (p *Prompt) handle(c *Commander, k chisel.Key) {
	switch {
	case k == chisel.KeyEnter:
		c.prompt = nil
		p.done(string(p.text))
	case k == chisel.KeyEsc || k == chisel.KeyCtrlG:
		c.prompt = nil
		c.editor.SetMessage("quit")
	case k == chisel.KeyBackspace || k == chisel.KeyCtrlH:
		if len(p.text) > 0 {
			p.text = p.text[:len(p.text)-1]
		}
	case k == chisel.KeyCtrlU:
		p.text = p.text[:0]
	case k.IsPrintable():
		p.text = append(p.text, rune(k))
	}
}
