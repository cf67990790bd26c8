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
	"strconv"
	"strings"
)

// Value is a signed centipawn (or mate-distance encoded) search score.
type Value int16

const (
	ValueZero      Value = 0
	ValueDraw      Value = 0
	ValueInf       Value = 32767
	ValueNA        Value = -ValueInf - 1
	ValueMax       Value = 32000
	ValueMin       Value = -ValueMax
	ValueCheckMate Value = 32767 - 64

	// MaxDepth bounds the iterative-deepening driver and the
	// mate-distance threshold below.
	MaxDepth = 128

	ValueCheckMateThreshold = ValueCheckMate - MaxDepth
)

// IsValid checks if the value lies within the normal search range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue reports whether v encodes a mate distance rather
// than a centipawn score.
func (v Value) IsCheckMateValue() bool {
	a := absValue(v)
	return a > ValueCheckMateThreshold && a <= ValueCheckMate
}

func absValue(v Value) Value {
	if v < 0 {
		return -v
	}
	return v
}

// MateIn returns the encoded score for delivering mate in plyToMate
// plies (distance from the current node, not full moves).
func MateIn(plyToMate int) Value {
	return ValueCheckMate - Value(plyToMate)
}

// MatedIn returns the encoded score for being mated in plyToMate plies.
func MatedIn(plyToMate int) Value {
	return -ValueCheckMate + Value(plyToMate)
}

func (v Value) String() string {
	var b strings.Builder
	switch {
	case v.IsCheckMateValue():
		b.WriteString("mate ")
		if v < ValueZero {
			b.WriteString("-")
		}
		pliesToMate := int(ValueCheckMate - absValue(v))
		movesToMate := (pliesToMate + 1) / 2
		b.WriteString(strconv.Itoa(movesToMate))
	case v == ValueNA:
		b.WriteString("N/A")
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}
