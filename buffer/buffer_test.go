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
package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewIsEmpty(t *testing.T) {
	b := New()
	require.Equal(t, 0, b.Len())
	require.Equal(t, Granularity, b.Cap())
	require.Equal(t, 1, b.LineCount())
}

func TestFromSourceRoundsCapacity(t *testing.T) {
	src := strings.Repeat("x", Granularity+1)
	b := FromSource([]byte(src))
	require.Equal(t, Granularity+1, b.Len())
	require.Equal(t, 2*Granularity, b.Cap())
	require.Equal(t, src, string(b.Bytes()))
}

func TestFromSourceKeepsLineEndings(t *testing.T) {
	src := "one\r\ntwo\n\nthree"
	b := FromSource([]byte(src))
	require.Equal(t, src, string(b.Bytes()))
	require.Equal(t, 4, b.LineCount())
}

func TestFromSourceDecodesUTF8(t *testing.T) {
	b := FromSource([]byte("héllo"))
	require.Equal(t, 5, b.Len())
	require.Equal(t, 'é', b.At(1))
}

func TestFromSourceKeepsInvalidBytes(t *testing.T) {
	for _, src := range [][]byte{
		{0xff, 'a'},
		[]byte("caf\xe9 \xc3\xa9\n"),
		{0xed, 0xb0, 0x80},
		{0xe2, 0x82},
	} {
		b := FromSource(src)
		assert.Equal(t, src, b.Bytes())
	}
	b := FromSource([]byte{0xff, 'a'})
	require.Equal(t, 2, b.Len())
	assert.True(t, IsRawByte(b.At(0)))
	assert.Equal(t, 'a', b.At(1))
}

func TestInsertAndErase(t *testing.T) {
	b := FromSource([]byte("held"))
	b.InsertChar(3, 'l')
	assert.Equal(t, "helld", b.String())
	b.InsertString(5, " world")
	assert.Equal(t, "helld world", b.String())
	b.Erase(3, 4)
	assert.Equal(t, "held world", b.String())
	b.InsertString(0, "")
	assert.Equal(t, "held world", b.String())
	b.Erase(0, b.Len())
	assert.Equal(t, "", b.String())
}

func TestCapacityGrowsAndNeverShrinks(t *testing.T) {
	b := New()
	b.InsertString(0, strings.Repeat("a", Granularity))
	require.Equal(t, Granularity, b.Cap())
	b.InsertChar(0, 'b')
	require.Equal(t, 2*Granularity, b.Cap())
	b.Erase(0, b.Len())
	require.Equal(t, 2*Granularity, b.Cap())
}

func TestEraseOutOfRangePanics(t *testing.T) {
	b := FromSource([]byte("abc"))
	require.Panics(t, func() { b.Erase(2, 1) })
	require.Panics(t, func() { b.Erase(0, 4) })
}

func TestLines(t *testing.T) {
	b := FromSource([]byte("ab\ncd\n\nef"))
	assert.Equal(t, 0, b.LineStart(1))
	assert.Equal(t, 3, b.LineStart(4))
	assert.Equal(t, 2, b.LineEnd(0))
	assert.Equal(t, 5, b.LineEnd(3))
	assert.Equal(t, 9, b.LineEnd(7))
	assert.Equal(t, 4, b.LineCount())
	assert.Equal(t, 0, b.LineOffset(0))
	assert.Equal(t, 3, b.LineOffset(1))
	assert.Equal(t, 6, b.LineOffset(2))
	assert.Equal(t, 7, b.LineOffset(3))
	assert.Equal(t, 7, b.LineOffset(99))

	row, col := b.Position(8)
	assert.Equal(t, 3, row)
	assert.Equal(t, 1, col)
}

// The buffer behaves like a plain string under any sequence of edits.
func TestBufferMatchesStringModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := New()
		model := []rune{}
		steps := rapid.IntRange(1, 50).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if len(model) > 0 && rapid.Bool().Draw(t, "erase") {
				lb := rapid.IntRange(0, len(model)).Draw(t, "lb")
				ub := rapid.IntRange(lb, len(model)).Draw(t, "ub")
				b.Erase(lb, ub)
				model = append(model[:lb:lb], model[ub:]...)
			} else {
				at := rapid.IntRange(0, len(model)).Draw(t, "at")
				s := rapid.StringN(0, 300, -1).Draw(t, "s")
				b.InsertString(at, s)
				rs := []rune(s)
				next := append([]rune{}, model[:at]...)
				next = append(next, rs...)
				model = append(next, model[at:]...)
			}
			if b.Len() > b.Cap() {
				t.Fatalf("size %d exceeds capacity %d", b.Len(), b.Cap())
			}
			if b.Cap()%Granularity != 0 {
				t.Fatalf("capacity %d is not a multiple of %d", b.Cap(), Granularity)
			}
		}
		if b.String() != string(model) {
			t.Fatalf("buffer %q != model %q", b.String(), string(model))
		}
	})
}

func TestBytesRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := rapid.SliceOf(rapid.Byte()).Draw(t, "src")
		got := FromSource(src).Bytes()
		if string(got) != string(src) {
			t.Fatalf("%q saved as %q", src, got)
		}
	})
}
