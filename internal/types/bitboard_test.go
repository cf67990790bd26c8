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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	Init()
	m.Run()
}

func TestBitAndHas(t *testing.T) {
	bb := Bit(SqE4)
	assert.True(t, bb.Has(SqE4))
	assert.False(t, bb.Has(SqE5))
	assert.Equal(t, 1, bb.PopCount())
}

func TestPushSquare(t *testing.T) {
	bb := BbZero.PushSquare(SqA1).PushSquare(SqH8)
	assert.Equal(t, 2, bb.PopCount())
	assert.True(t, bb.Has(SqA1))
	assert.True(t, bb.Has(SqH8))
}

func TestLsbMsb(t *testing.T) {
	bb := Bit(SqA8) | Bit(SqH1)
	assert.Equal(t, SqA8, bb.Lsb())
	assert.Equal(t, SqH1, bb.Msb())
	assert.Equal(t, SqNone, BbZero.Lsb())
	assert.Equal(t, SqNone, BbZero.Msb())
}

func TestPopLsb(t *testing.T) {
	bb := Bit(SqA8) | Bit(SqD4) | Bit(SqH1)
	var got []Square
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLsb()
		got = append(got, sq)
	}
	assert.Equal(t, []Square{SqA8, SqD4, SqH1}, got)
}

func TestForEach(t *testing.T) {
	bb := Bit(SqB2) | Bit(SqG7)
	var seen []Square
	ForEach(bb, func(sq Square) {
		seen = append(seen, sq)
	})
	assert.Equal(t, []Square{SqG7, SqB2}, seen)
	// bb is unaffected by ForEach - passed by value
	assert.Equal(t, 2, bb.PopCount())
}

func TestShiftDiscardsWraparound(t *testing.T) {
	assert.Equal(t, BbZero, Shift(Bit(SqA4), West))
	assert.Equal(t, BbZero, Shift(Bit(SqH4), East))
	assert.Equal(t, BbZero, Shift(Bit(SqA8), North))
	assert.Equal(t, BbZero, Shift(Bit(SqH1), South))
	assert.Equal(t, Bit(SqE5), Shift(Bit(SqE4), North))
	assert.Equal(t, Bit(SqF5), Shift(Bit(SqE4), Northeast))
}

func TestRayAndFirstBlocker(t *testing.T) {
	occ := Bit(SqE1) | Bit(SqE7)
	ray := Ray(North, SqE4)
	assert.True(t, ray.Has(SqE5))
	assert.True(t, ray.Has(SqE8))
	assert.False(t, ray.Has(SqE3))

	blocker := FirstBlocker(North, SqE4, occ)
	assert.Equal(t, Bit(SqE7), blocker)

	blocker = FirstBlocker(South, SqE4, occ)
	assert.Equal(t, Bit(SqE1), blocker)
}

func TestBlockedRay(t *testing.T) {
	occ := Bit(SqE7)
	withBlocker := BlockedRay(North, SqE4, occ, true)
	withoutBlocker := BlockedRay(North, SqE4, occ, false)
	assert.True(t, withBlocker.Has(SqE7))
	assert.False(t, withoutBlocker.Has(SqE7))
	assert.True(t, withBlocker.Has(SqE5))
	assert.True(t, withBlocker.Has(SqE6))
	assert.False(t, withBlocker.Has(SqE8))
}

func TestSliderAttacksRook(t *testing.T) {
	occ := Bit(SqE1) | Bit(SqA4) | Bit(SqH4)
	attacks := SliderAttacks(Rook, SqE4, occ)
	assert.True(t, attacks.Has(SqE1))
	assert.True(t, attacks.Has(SqA4))
	assert.True(t, attacks.Has(SqH4))
	assert.False(t, attacks.Has(SqD1))
}

func TestSliderAttacksBishop(t *testing.T) {
	occ := BbZero
	attacks := SliderAttacks(Bishop, SqE4, occ)
	assert.True(t, attacks.Has(SqA8))
	assert.True(t, attacks.Has(SqH1))
	assert.False(t, attacks.Has(SqE5))
}

func TestKnightAttacks(t *testing.T) {
	attacks := KnightAttacks(SqE4)
	assert.True(t, attacks.Has(SqD6))
	assert.True(t, attacks.Has(SqF2))
	assert.Equal(t, 8, attacks.PopCount())
}

func TestKnightAttacksCorner(t *testing.T) {
	attacks := KnightAttacks(SqA1)
	assert.Equal(t, 2, attacks.PopCount())
}

func TestKingAttacks(t *testing.T) {
	attacks := KingAttacks(SqE4)
	assert.Equal(t, 8, attacks.PopCount())
	assert.True(t, attacks.Has(SqD5))
}

func TestPawnAttacks(t *testing.T) {
	attacks := PawnAttacks(White, SqE4)
	assert.True(t, attacks.Has(SqD5))
	assert.True(t, attacks.Has(SqF5))
	assert.Equal(t, 2, attacks.PopCount())

	attacks = PawnAttacks(Black, SqE4)
	assert.True(t, attacks.Has(SqD3))
	assert.True(t, attacks.Has(SqF3))
}
