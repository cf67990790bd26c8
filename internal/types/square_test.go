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

func TestSquareNumbering(t *testing.T) {
	assert.EqualValues(t, 0, SqA8)
	assert.EqualValues(t, 7, SqH8)
	assert.EqualValues(t, 56, SqA1)
	assert.EqualValues(t, 63, SqH1)
}

func TestSquareFileRank(t *testing.T) {
	assert.Equal(t, FileA, SqA8.FileOf())
	assert.Equal(t, Rank8, SqA8.RankOf())
	assert.Equal(t, FileH, SqH1.FileOf())
	assert.Equal(t, Rank1, SqH1.RankOf())
}

func TestMakeSquareRoundTrip(t *testing.T) {
	for _, s := range []string{"a8", "h1", "e4", "d5", "a1", "h8"} {
		sq := MakeSquare(s)
		assert.True(t, sq.IsValid())
		assert.Equal(t, s, sq.String())
	}
}

func TestMakeSquareInvalid(t *testing.T) {
	assert.Equal(t, SqNone, MakeSquare(""))
	assert.Equal(t, SqNone, MakeSquare("e"))
	assert.Equal(t, SqNone, MakeSquare("z9"))
	assert.Equal(t, SqNone, MakeSquare("i1"))
}

func TestSquareOf(t *testing.T) {
	assert.Equal(t, SqE4, SquareOf(FileE, Rank4))
	assert.Equal(t, SqA8, SquareOf(FileA, Rank8))
	assert.Equal(t, SqH1, SquareOf(FileH, Rank1))
}

func TestSquareToDirectionEdges(t *testing.T) {
	assert.Equal(t, SqNone, SqA1.To(West))
	assert.Equal(t, SqNone, SqH8.To(East))
	assert.Equal(t, SqNone, SqA8.To(North))
	assert.Equal(t, SqNone, SqH1.To(South))
	assert.Equal(t, SqE5, SqE4.To(North))
	assert.Equal(t, SqE3, SqE4.To(South))
	assert.Equal(t, SqF4, SqE4.To(East))
	assert.Equal(t, SqD4, SqE4.To(West))
}

func TestSquareStringInvalid(t *testing.T) {
	assert.Equal(t, "-", SqNone.String())
}
