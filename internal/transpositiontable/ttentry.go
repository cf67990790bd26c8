//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package transpositiontable

import (
	. "github.com/l0rdl0l/Calito-chess-engine/internal/types"
)

// TtEntry is one slot of a 4-entry bucket. 16 bytes: a 64-bit Zobrist
// key, a 16-bit move, a 16-bit static eval, a 16-bit search value and
// an 8-bit depth plus value type.
type TtEntry struct {
	key   Key
	move  uint16
	eval  int16
	value int16
	depth int8
	vtype ValueType
}

// TtEntrySize is the size in bytes of a single TtEntry.
const TtEntrySize = 16

// priority orders bucket slots for replacement: an empty slot always
// loses, deeper entries win, and an EXACT entry outranks any
// non-EXACT one regardless of depth.
func (e *TtEntry) priority() int64 {
	if e.key == KeyNone {
		return -1
	}
	p := int64(e.depth)
	if e.vtype == Exact {
		p += 1 << 30
	}
	return p
}

func (e *TtEntry) Key() Key {
	return e.key
}

func (e *TtEntry) Move() Move {
	return Move(e.move)
}

func (e *TtEntry) Value() Value {
	return Value(e.value)
}

func (e *TtEntry) Eval() Value {
	return Value(e.eval)
}

func (e *TtEntry) Depth() int8 {
	return e.depth
}

func (e *TtEntry) Type() ValueType {
	return e.vtype
}
