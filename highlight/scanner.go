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

package highlight

import (
	"strings"
	"unicode"

	chisel "github.com/timburks/chisel/types"
)

// MaxDelimiter is the longest raw string delimiter that is recognized.
const MaxDelimiter = 16

// Raw string styles
const (
	RawNone = iota
	RawCpp  // R"delim( ... )delim"
	RawHash // r#" ... "#
)

// A Grammar describes the lexical classes of a language.
type Grammar struct {
	Name           string
	Keywords       []string
	Types          []string
	Directive      rune   // marker of a directive line, e.g. '#'
	LineComment    string // e.g. "//"
	CommentAtWord  bool   // line comments only start at a word boundary
	BlockOpen      string // e.g. "/*"
	BlockClose     string // e.g. "*/"
	NestedComments bool
	Quotes         string // string quotes with backslash escapes
	LiteralQuotes  string // string quotes without escapes
	CharQuote      rune   // character literal quote
	Lifetimes      bool   // a CharQuote not closed after one character starts a label
	RawQuotes      string // quotes of multi-line strings without escapes
	Raw            int    // raw string style
	Operators      string
	IdentExtra     string // characters allowed in identifiers besides letters, digits and '_'
	Functions      bool   // classify words followed by '(' as functions
	Generics       bool   // skip a balanced <...> list before looking for '('
	Macros         bool   // classify upper-case words as macros
	Variables      bool   // $name and ${...} are variables
	TrailingSpace  bool
}

// A Scanner highlights text described by a Grammar.
type Scanner struct {
	grammar  Grammar
	palette  Palette
	keywords map[string]bool
	types    map[string]bool
}

// NewScanner returns a scanner for a grammar using the colors of a palette.
func NewScanner(g Grammar, p Palette) *Scanner {
	s := &Scanner{
		grammar:  g,
		palette:  p,
		keywords: make(map[string]bool, len(g.Keywords)),
		types:    make(map[string]bool, len(g.Types)),
	}
	for _, k := range g.Keywords {
		s.keywords[k] = true
	}
	for _, t := range g.Types {
		s.types[t] = true
	}
	return s
}

// Grammar returns the grammar of the scanner.
func (s *Scanner) Grammar() Grammar {
	return s.grammar
}

// A token is the result of one scanning step.
// A token with ScopeNone is plain text that is skipped.
// A stop token ends the scan: nothing after it is highlighted.
type token struct {
	lb, ub int
	scope  chisel.Scope
	stop   bool
}

func plain(lb, ub int) token {
	return token{lb: lb, ub: ub}
}

func stop(lb int) token {
	return token{lb: lb, ub: lb, stop: true}
}

// FindNextSpan returns the next span at or after start.
func (s *Scanner) FindNextSpan(text []rune, start int) (chisel.Span, bool) {
	for pos := start; pos < len(text); {
		t := s.step(text, pos)
		if t.stop {
			return chisel.Span{}, false
		}
		if t.scope != chisel.ScopeNone {
			return s.palette.span(t.lb, t.ub, t.scope), true
		}
		pos = t.ub
	}
	return chisel.Span{}, false
}

// step scans the token at pos. Classes are tried in priority order
// because several of them can share a leading character.
func (s *Scanner) step(text []rune, pos int) token {
	if t, ok := s.lexDirective(text, pos); ok {
		return t
	}
	if t, ok := s.lexRaw(text, pos); ok {
		return t
	}
	if t, ok := s.lexQuoted(text, pos); ok {
		return t
	}
	if t, ok := s.lexLineComment(text, pos); ok {
		return t
	}
	if t, ok := s.lexBlockComment(text, pos); ok {
		return t
	}
	if t, ok := s.lexNumber(text, pos); ok {
		return t
	}
	if t, ok := s.lexVariable(text, pos); ok {
		return t
	}
	if t, ok := s.lexOperator(text, pos); ok {
		return t
	}
	if t, ok := s.lexWord(text, pos); ok {
		return t
	}
	if t, ok := s.lexBlanks(text, pos); ok {
		return t
	}
	return plain(pos, pos+1)
}

func hasPrefix(text []rune, pos int, prefix string) bool {
	if prefix == "" {
		return false
	}
	for _, c := range prefix {
		if pos >= len(text) || text[pos] != c {
			return false
		}
		pos++
	}
	return true
}

// index returns the first index at or after pos where needle starts, or -1.
func index(text []rune, pos int, needle []rune) int {
	for i := pos; i+len(needle) <= len(text); i++ {
		match := true
		for j, c := range needle {
			if text[i+j] != c {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func isBlank(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}

func lineEnd(text []rune, pos int) int {
	for pos < len(text) && text[pos] != '\n' {
		pos++
	}
	return pos
}

// atLineStart returns true if only blanks precede pos on its line.
func atLineStart(text []rune, pos int) bool {
	for i := pos - 1; i >= 0 && text[i] != '\n'; i-- {
		if !isBlank(text[i]) {
			return false
		}
	}
	return true
}

func (s *Scanner) isIdentStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func (s *Scanner) isIdent(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c) ||
		strings.ContainsRune(s.grammar.IdentExtra, c)
}

// lexDirective scans a directive line and its backslash continuations.
func (s *Scanner) lexDirective(text []rune, pos int) (token, bool) {
	if s.grammar.Directive == 0 || text[pos] != s.grammar.Directive || !atLineStart(text, pos) {
		return token{}, false
	}
	end := lineEnd(text, pos)
	for end < len(text) {
		last := end - 1
		if last > pos && text[last] == '\r' {
			last--
		}
		if last <= pos || text[last] != '\\' {
			break
		}
		end = lineEnd(text, end+1)
	}
	return token{lb: pos, ub: end, scope: chisel.ScopePreprocessor}, true
}

var cppRawPrefixes = []string{"R", "u8R", "uR", "UR", "LR"}

// lexRaw scans a raw string. The closing token is built from the
// delimiter captured at the opener and must match exactly.
func (s *Scanner) lexRaw(text []rune, pos int) (token, bool) {
	c := text[pos]
	if strings.ContainsRune(s.grammar.RawQuotes, c) {
		end := index(text, pos+1, []rune{c})
		if end < 0 {
			return stop(pos), true
		}
		return token{lb: pos, ub: end + 1, scope: chisel.ScopeString}, true
	}
	switch s.grammar.Raw {
	case RawCpp:
		for _, prefix := range cppRawPrefixes {
			if hasPrefix(text, pos, prefix+`"`) {
				return s.lexCppRaw(text, pos, len(prefix)), true
			}
		}
	case RawHash:
		if hasPrefix(text, pos, "r") {
			return s.lexHashRaw(text, pos, 1)
		}
		if hasPrefix(text, pos, "br") {
			return s.lexHashRaw(text, pos, 2)
		}
	}
	return token{}, false
}

func (s *Scanner) lexCppRaw(text []rune, pos, prefix int) token {
	open := pos + prefix + 1
	i := open
	for i < len(text) && i-open <= MaxDelimiter {
		c := text[i]
		if c == '(' {
			break
		}
		if c == ')' || c == '\\' || c == '"' || c == ' ' || c == '\t' || c == '\n' {
			return plain(pos, pos+prefix)
		}
		i++
	}
	if i >= len(text) {
		return plain(pos, pos+prefix)
	}
	if i-open > MaxDelimiter {
		// the whole overlong opener, up to its parenthesis, is plain
		for i < len(text) && text[i] != '(' && !strings.ContainsRune(")\\\" \t\n", text[i]) {
			i++
		}
		return plain(pos, i)
	}
	delimiter := text[open:i]
	closer := make([]rune, 0, len(delimiter)+2)
	closer = append(closer, ')')
	closer = append(closer, delimiter...)
	closer = append(closer, '"')
	end := index(text, i+1, closer)
	if end < 0 {
		return stop(pos)
	}
	return token{lb: pos, ub: end + len(closer), scope: chisel.ScopeString}
}

func (s *Scanner) lexHashRaw(text []rune, pos, prefix int) (token, bool) {
	i := pos + prefix
	for i < len(text) && text[i] == '#' {
		i++
	}
	hashes := i - pos - prefix
	if i >= len(text) || text[i] != '"' {
		return token{}, false
	}
	if hashes > MaxDelimiter {
		return plain(pos, pos+prefix), true
	}
	closer := make([]rune, 0, hashes+1)
	closer = append(closer, '"')
	for j := 0; j < hashes; j++ {
		closer = append(closer, '#')
	}
	end := index(text, i+1, closer)
	if end < 0 {
		return stop(pos), true
	}
	return token{lb: pos, ub: end + len(closer), scope: chisel.ScopeString}, true
}

// lexQuoted scans strings and character literals that end on their line.
// An unterminated literal is skipped up to the end of its line.
func (s *Scanner) lexQuoted(text []rune, pos int) (token, bool) {
	c := text[pos]
	switch {
	case strings.ContainsRune(s.grammar.Quotes, c):
		return closeQuote(text, pos, chisel.ScopeString, true), true
	case strings.ContainsRune(s.grammar.LiteralQuotes, c):
		return closeQuote(text, pos, chisel.ScopeString, false), true
	case s.grammar.CharQuote != 0 && c == s.grammar.CharQuote:
		if s.grammar.Lifetimes && !s.isCharLiteral(text, pos) {
			i := pos + 1
			for i < len(text) && s.isIdent(text[i]) {
				i++
			}
			if i == pos+1 {
				return plain(pos, i), true
			}
			return token{lb: pos, ub: i, scope: chisel.ScopeLabel}, true
		}
		return closeQuote(text, pos, chisel.ScopeChar, true), true
	}
	return token{}, false
}

func (s *Scanner) isCharLiteral(text []rune, pos int) bool {
	if pos+1 < len(text) && text[pos+1] == '\\' {
		return true
	}
	return pos+2 < len(text) && text[pos+2] == text[pos]
}

func closeQuote(text []rune, pos int, scope chisel.Scope, escapes bool) token {
	q := text[pos]
	for i := pos + 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			if escapes {
				i++
			}
		case q:
			return token{lb: pos, ub: i + 1, scope: scope}
		case '\n':
			if escapes {
				return plain(pos, i)
			}
		}
	}
	if !escapes {
		return stop(pos)
	}
	return plain(pos, len(text))
}

func (s *Scanner) commentBoundary(text []rune, pos int) bool {
	if pos == 0 {
		return true
	}
	c := text[pos-1]
	return c == '\n' || isBlank(c) || strings.ContainsRune(";|&(", c)
}

func (s *Scanner) lexLineComment(text []rune, pos int) (token, bool) {
	if !hasPrefix(text, pos, s.grammar.LineComment) {
		return token{}, false
	}
	if s.grammar.CommentAtWord && !s.commentBoundary(text, pos) {
		return token{}, false
	}
	return token{lb: pos, ub: lineEnd(text, pos), scope: chisel.ScopeComment}, true
}

// lexBlockComment scans a block comment, counting nested openers
// when the grammar allows them.
func (s *Scanner) lexBlockComment(text []rune, pos int) (token, bool) {
	g := s.grammar
	if !hasPrefix(text, pos, g.BlockOpen) {
		return token{}, false
	}
	openLen := len([]rune(g.BlockOpen))
	closeLen := len([]rune(g.BlockClose))
	depth := 1
	for i := pos + openLen; i < len(text); {
		switch {
		case hasPrefix(text, i, g.BlockClose):
			depth--
			i += closeLen
			if depth == 0 {
				return token{lb: pos, ub: i, scope: chisel.ScopeComment}, true
			}
		case g.NestedComments && hasPrefix(text, i, g.BlockOpen):
			depth++
			i += openLen
		default:
			i++
		}
	}
	return stop(pos), true
}

func (s *Scanner) lexNumber(text []rune, pos int) (token, bool) {
	if !unicode.IsDigit(text[pos]) {
		return token{}, false
	}
	i := pos + 1
	for i < len(text) {
		c := text[i]
		if c == '.' || c == '_' || (c == '\'' && s.grammar.Raw == RawCpp) ||
			unicode.IsLetter(c) || unicode.IsDigit(c) {
			i++
			continue
		}
		if (c == '+' || c == '-') && strings.ContainsRune("eEpP", text[i-1]) && !isHex(text[pos:i]) {
			i++
			continue
		}
		break
	}
	return token{lb: pos, ub: i, scope: chisel.ScopeNumber}, true
}

func isHex(number []rune) bool {
	return len(number) > 1 && number[0] == '0' && (number[1] == 'x' || number[1] == 'X')
}

func (s *Scanner) lexVariable(text []rune, pos int) (token, bool) {
	if !s.grammar.Variables || text[pos] != '$' || pos+1 >= len(text) {
		return token{}, false
	}
	c := text[pos+1]
	switch {
	case c == '{':
		for i := pos + 2; i < len(text) && text[i] != '\n'; i++ {
			if text[i] == '}' {
				return token{lb: pos, ub: i + 1, scope: chisel.ScopeVariable}, true
			}
		}
		return plain(pos, pos+1), true
	case s.isIdentStart(c):
		i := pos + 2
		for i < len(text) && (text[i] == '_' || unicode.IsLetter(text[i]) || unicode.IsDigit(text[i])) {
			i++
		}
		return token{lb: pos, ub: i, scope: chisel.ScopeVariable}, true
	case unicode.IsDigit(c) || strings.ContainsRune("@*#?$!-", c):
		return token{lb: pos, ub: pos + 2, scope: chisel.ScopeVariable}, true
	}
	return token{}, false
}

func (s *Scanner) lexOperator(text []rune, pos int) (token, bool) {
	i := pos
	for i < len(text) && strings.ContainsRune(s.grammar.Operators, text[i]) {
		// an operator run stops where a comment begins
		if i > pos && (hasPrefix(text, i, s.grammar.LineComment) || hasPrefix(text, i, s.grammar.BlockOpen)) {
			break
		}
		i++
	}
	if i == pos {
		return token{}, false
	}
	return token{lb: pos, ub: i, scope: chisel.ScopeOperator}, true
}

// lexWord classifies an identifier: keyword, type, function, macro or plain.
func (s *Scanner) lexWord(text []rune, pos int) (token, bool) {
	if !s.isIdentStart(text[pos]) {
		return token{}, false
	}
	i := pos + 1
	for i < len(text) && s.isIdent(text[i]) {
		i++
	}
	word := string(text[pos:i])
	switch {
	case s.keywords[word]:
		return token{lb: pos, ub: i, scope: chisel.ScopeKeyword}, true
	case s.types[word]:
		return token{lb: pos, ub: i, scope: chisel.ScopeType}, true
	case s.grammar.Functions && s.callFollows(text, i):
		return token{lb: pos, ub: i, scope: chisel.ScopeFunction}, true
	case s.grammar.Macros && isUpper(word):
		return token{lb: pos, ub: i, scope: chisel.ScopeMacro}, true
	}
	return plain(pos, i), true
}

// maxGeneric bounds the lookahead over a <...> argument list.
const maxGeneric = 256

// callFollows returns true if an opening parenthesis follows pos,
// skipping blanks and a balanced generic argument list.
func (s *Scanner) callFollows(text []rune, pos int) bool {
	i := skipBlanks(text, pos)
	if s.grammar.Generics && i < len(text) && text[i] == '<' {
		depth := 0
		for ; i < len(text) && i-pos < maxGeneric; i++ {
			c := text[i]
			if c == '<' {
				depth++
			} else if c == '>' {
				depth--
				if depth == 0 {
					break
				}
			} else if c == ';' || c == '{' || c == '}' || c == '\n' {
				return false
			}
		}
		if depth != 0 || i >= len(text) {
			return false
		}
		i = skipBlanks(text, i+1)
	}
	return i < len(text) && text[i] == '('
}

func skipBlanks(text []rune, i int) int {
	for i < len(text) && isBlank(text[i]) {
		i++
	}
	return i
}

// isUpper returns true for words with at least one upper-case letter
// and no lower-case letters.
func isUpper(word string) bool {
	upper := false
	for _, c := range word {
		if unicode.IsLower(c) {
			return false
		}
		if unicode.IsUpper(c) {
			upper = true
		}
	}
	return upper
}

// lexBlanks scans a run of blanks, which is a span only when it trails a line.
func (s *Scanner) lexBlanks(text []rune, pos int) (token, bool) {
	if !isBlank(text[pos]) {
		return token{}, false
	}
	i := pos + 1
	for i < len(text) && isBlank(text[i]) {
		i++
	}
	if s.grammar.TrailingSpace && (i == len(text) || text[i] == '\n') {
		return token{lb: pos, ub: i, scope: chisel.ScopeTrailingSpace}, true
	}
	return plain(pos, i), true
}
