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

// Package skip finds line boundaries and significant characters in text
// while treating designated regions, such as comments, as transparent.
package skip

import "sort"

// A Region is a range [Lb, Ub) of text that is skipped.
type Region struct {
	Lb int
	Ub int
}

// Regions are ordered by Lb and do not overlap.
type Regions []Region

// Find returns the region containing i.
func (rs Regions) Find(i int) (Region, bool) {
	n := sort.Search(len(rs), func(j int) bool { return rs[j].Ub > i })
	if n < len(rs) && rs[n].Lb <= i {
		return rs[n], true
	}
	return Region{}, false
}

// Contains returns true if i is inside a region.
func (rs Regions) Contains(i int) bool {
	_, ok := rs.Find(i)
	return ok
}

// A Predicate reports whether a character is insignificant.
type Predicate func(c rune) bool

// Blank treats spaces and tabs as insignificant.
func Blank(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}

// Space treats all whitespace, including newlines, as insignificant.
func Space(c rune) bool {
	return c == '\n' || Blank(c)
}

// LineStart returns the start of the line containing i.
func LineStart(text []rune, i int) int {
	for i > 0 && text[i-1] != '\n' {
		i--
	}
	return i
}

// LineEnd returns the index of the newline ending the line containing i,
// or len(text).
func LineEnd(text []rune, i int) int {
	for i < len(text) && text[i] != '\n' {
		i++
	}
	return i
}

// LeadingWhitespace returns the number of leading tabs and the number of
// blanks after them on the line starting at start, plus the index of the
// first character after the whitespace.
func LeadingWhitespace(text []rune, start int) (tabs, spaces, end int) {
	i := start
	for i < len(text) && text[i] == '\t' {
		tabs++
		i++
	}
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		spaces++
		i++
	}
	return tabs, spaces, i
}

// FirstSignificant returns the index of the first character in [lb, ub)
// that is neither insignificant nor inside a region, or ub.
func FirstSignificant(text []rune, lb, ub int, rs Regions, blank Predicate) int {
	for i := lb; i < ub; i++ {
		if r, ok := rs.Find(i); ok {
			i = r.Ub - 1
			continue
		}
		if !blank(text[i]) {
			return i
		}
	}
	return ub
}

// LastSignificant returns the index of the last character in [lb, ub)
// that is neither insignificant nor inside a region, or -1.
func LastSignificant(text []rune, lb, ub int, rs Regions, blank Predicate) int {
	for i := ub - 1; i >= lb; i-- {
		if r, ok := rs.Find(i); ok {
			i = r.Lb
			continue
		}
		if !blank(text[i]) {
			return i
		}
	}
	return -1
}

// PreviousLine returns the start of the nearest line before start that
// holds a significant character, and the index of that character.
// Both are -1 if there is none.
func PreviousLine(text []rune, start int, rs Regions) (line, last int) {
	last = LastSignificant(text, 0, start, rs, Space)
	if last < 0 {
		return -1, -1
	}
	return LineStart(text, last), last
}
