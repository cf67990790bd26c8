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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/l0rdl0l/Calito-chess-engine/internal/types"
)

func TestNewMoveSlice(t *testing.T) {
	ms := NewMoveSlice(10)
	assert.EqualValues(t, 0, ms.Len())
	assert.EqualValues(t, 10, ms.Cap())
}

func TestPushBackAndAt(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(Move(1))
	ms.PushBack(Move(2))
	ms.PushBack(Move(3))
	assert.EqualValues(t, 3, ms.Len())
	assert.EqualValues(t, Move(1), ms.At(0))
	assert.EqualValues(t, Move(3), ms.At(2))
}

func TestPushFront(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(Move(1))
	ms.PushBack(Move(2))
	ms.PushFront(Move(9))
	assert.EqualValues(t, 3, ms.Len())
	assert.EqualValues(t, Move(9), ms.Front())
	assert.EqualValues(t, Move(1), ms.At(1))
	assert.EqualValues(t, Move(2), ms.At(2))
}

func TestFrontPanicsWhenEmpty(t *testing.T) {
	ms := NewMoveSlice(1)
	assert.Panics(t, func() { ms.Front() })
}

func TestAtPanicsOutOfBounds(t *testing.T) {
	ms := NewMoveSlice(1)
	ms.PushBack(Move(1))
	assert.Panics(t, func() { ms.At(5) })
}

func TestSetAndSwap(t *testing.T) {
	ms := NewMoveSlice(3)
	ms.PushBack(Move(1))
	ms.PushBack(Move(2))
	ms.Set(1, Move(9))
	assert.EqualValues(t, Move(9), ms.At(1))
	ms.Swap(0, 1)
	assert.EqualValues(t, Move(9), ms.At(0))
	assert.EqualValues(t, Move(1), ms.At(1))
}

func TestMoveToFront(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(Move(1))
	ms.PushBack(Move(2))
	ms.PushBack(Move(3))
	found := ms.MoveToFront(Move(3))
	assert.True(t, found)
	assert.EqualValues(t, Move(3), ms.At(0))
	assert.EqualValues(t, Move(1), ms.At(1))
	assert.EqualValues(t, Move(2), ms.At(2))
}

func TestMoveToFrontMissing(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(Move(1))
	found := ms.MoveToFront(Move(99))
	assert.False(t, found)
	assert.EqualValues(t, Move(1), ms.At(0))
}

func TestContains(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(Move(1))
	ms.PushBack(Move(2))
	assert.True(t, ms.Contains(Move(2)))
	assert.False(t, ms.Contains(Move(3)))
}

func TestFilter(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(Move(1))
	ms.PushBack(Move(2))
	ms.PushBack(Move(3))
	ms.Filter(func(i int) bool { return ms.At(i)%2 == 1 })
	assert.EqualValues(t, 2, ms.Len())
	assert.EqualValues(t, Move(1), ms.At(0))
	assert.EqualValues(t, Move(3), ms.At(1))
}

func TestClone(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(Move(1))
	clone := ms.Clone()
	clone.PushBack(Move(2))
	assert.EqualValues(t, 1, ms.Len())
	assert.EqualValues(t, 2, clone.Len())
}

func TestClear(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(Move(1))
	ms.PushBack(Move(2))
	ms.Clear()
	assert.EqualValues(t, 0, ms.Len())
	assert.EqualValues(t, 4, ms.Cap())
}

func TestSortByScore(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(Move(1))
	ms.PushBack(Move(2))
	ms.PushBack(Move(3))
	scores := []int{5, 20, 10}
	ms.SortByScore(scores)
	assert.EqualValues(t, Move(2), ms.At(0))
	assert.EqualValues(t, Move(3), ms.At(1))
	assert.EqualValues(t, Move(1), ms.At(2))
}

func TestStringUci(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(CreateMove(SqE2, SqE4, Normal))
	ms.PushBack(CreateMove(SqE7, SqE5, Normal))
	assert.Equal(t, "e2e4 e7e5", ms.StringUci())
}
