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

// Package moveslice provides a growable container of Move with the
// caller-provided-linear-buffer semantics the move generator needs:
// callers pre-size it with NewMoveSlice(cap) and the generator appends
// into it without further allocation in the common case.
package moveslice

import (
	"fmt"
	"strings"

	. "github.com/l0rdl0l/Calito-chess-engine/internal/types"
)

// MoveSlice is a slice of Move with deque-like helpers.
type MoveSlice []Move

// NewMoveSlice creates a new move slice with the given capacity and 0
// elements. Identical to MoveSlice(make([]Move, 0, cap)).
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]Move, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// Cap returns the capacity of the underlying array.
func (ms *MoveSlice) Cap() int {
	return cap(*ms)
}

// PushBack appends a move at the end of the slice.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// PushFront prepends a move, shifting all existing elements by one.
func (ms *MoveSlice) PushFront(m Move) {
	*ms = append(*ms, MoveNone)
	copy((*ms)[1:], *ms)
	(*ms)[0] = m
}

// Front returns the first move. Panics if the slice is empty.
func (ms *MoveSlice) Front() Move {
	if len(*ms) == 0 {
		panic("MoveSlice: Front() called when empty")
	}
	return (*ms)[0]
}

// At returns the move at index i. Panics if i is out of range.
func (ms *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*ms) {
		panic("MoveSlice: index out of bounds")
	}
	return (*ms)[i]
}

// Set overwrites the move at index i. Panics if i is out of range.
func (ms *MoveSlice) Set(i int, move Move) {
	if i < 0 || i >= len(*ms) {
		panic("MoveSlice: index out of bounds")
	}
	(*ms)[i] = move
}

// Swap exchanges the moves at indices i and j.
func (ms *MoveSlice) Swap(i, j int) {
	(*ms)[i], (*ms)[j] = (*ms)[j], (*ms)[i]
}

// MoveToFront finds m in the slice and rotates it to index 0, shifting
// the intervening moves back by one. A no-op if m is not present. This
// is how TT and killer moves get sorted ahead of the rest of the list
// without needing a value bit-packed into Move itself.
func (ms *MoveSlice) MoveToFront(m Move) bool {
	return ms.moveToIndex(m, 0)
}

// moveToIndex finds m in the slice (at or after idx) and rotates it
// to position idx, shifting the intervening moves back by one.
func (ms *MoveSlice) moveToIndex(m Move, idx int) bool {
	for i := idx; i < len(*ms); i++ {
		if (*ms)[i] == m {
			if i == idx {
				return true
			}
			copy((*ms)[idx+1:i+1], (*ms)[idx:i])
			(*ms)[idx] = m
			return true
		}
	}
	return false
}

// Contains reports whether m is present in the slice.
func (ms *MoveSlice) Contains(m Move) bool {
	for _, x := range *ms {
		if x == m {
			return true
		}
	}
	return false
}

// Filter removes all elements for which f returns false, reusing the
// underlying array.
func (ms *MoveSlice) Filter(f func(index int) bool) {
	b := (*ms)[:0]
	for i, x := range *ms {
		if f(i) {
			b = append(b, x)
		}
	}
	*ms = b
}

// Clone returns a deep copy of the slice.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]Move, ms.Len(), ms.Cap())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Clear empties the slice but retains its capacity - useful for reusing
// a per-ply move buffer at high frequency without triggering GC.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// SortByScore performs a stable insertion sort over the slice from
// highest to lowest score, where scores[i] is the ordering key for
// (*ms)[i]. Move lists here are small (bounded by 343) and mostly
// pre-ordered by the TT/killer pass, so insertion sort beats a general
// sort for the common case.
func (ms *MoveSlice) SortByScore(scores []int) {
	l := len(*ms)
	for i := 1; i < l; i++ {
		tmpMove, tmpScore := (*ms)[i], scores[i]
		j := i
		for j > 0 && scores[j-1] < tmpScore {
			(*ms)[j] = (*ms)[j-1]
			scores[j] = scores[j-1]
			j--
		}
		(*ms)[j] = tmpMove
		scores[j] = tmpScore
	}
}

// String returns a debug representation of the move list.
func (ms *MoveSlice) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("MoveSlice: [%d] { ", len(*ms)))
	for i, m := range *ms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString(" }")
	return b.String()
}

// StringUci returns a space-separated list of the moves in UCI wire
// format, as used in a "pv" info field.
func (ms *MoveSlice) StringUci() string {
	var b strings.Builder
	for i, m := range *ms {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.String())
	}
	return b.String()
}
