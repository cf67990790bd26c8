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

// PieceType is the kind of a chess piece, independent of color.
// PtNone = 0 so a zeroed PieceType/array slot means "no piece"; the
// six kinds follow as King = 1, Pawn = 2, Knight = 3, Bishop = 4,
// Rook = 5, Queen = 6 (Pawn is not 1 and King is not 6).
type PieceType uint8

const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PtLength
)

// IsValid checks if pt is a valid, non-empty piece type.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// IsSliding reports whether the piece type moves along rays (bishop,
// rook, queen).
func (pt PieceType) IsSliding() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

var pieceTypeToChar = " KPNBRQ"

// String returns the upper-case character for the piece type.
func (pt PieceType) String() string {
	if pt >= PtLength {
		return "-"
	}
	return string(pieceTypeToChar[pt])
}

// pieceTypeValue gives centipawn-independent weights used for the
// evaluator's game-phase indicator (minors=1, rooks=2, queens=4).
var pieceTypeValue = [PtLength]int{PtNone: 0, King: 0, Pawn: 0, Knight: 1, Bishop: 1, Rook: 2, Queen: 4}

// GamePhaseValue returns the phase weight of the piece type.
func (pt PieceType) GamePhaseValue() int {
	return pieceTypeValue[pt]
}

// pieceTypeCpValue gives the centipawn material value per piece type,
// used by SEE and quiescence delta pruning. King carries a large
// sentinel so it always wins a SEE exchange comparison.
var pieceTypeCpValue = [PtLength]Value{
	PtNone: 0,
	King:   ValueMax,
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
}

// Value returns the centipawn material value of the piece type.
func (pt PieceType) Value() Value {
	return pieceTypeCpValue[pt]
}
