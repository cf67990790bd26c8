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
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a set of squares packed one-bit-per-square into a 64-bit
// word; bit i represents square i.
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// Bit returns the singleton bitboard for sq.
func Bit(sq Square) Bitboard {
	return Bitboard(1) << sq
}

// Has reports whether sq is a member of bb.
func (bb Bitboard) Has(sq Square) bool {
	return bb&Bit(sq) != 0
}

// PushSquare returns bb with sq added.
func (bb Bitboard) PushSquare(sq Square) Bitboard {
	return bb | Bit(sq)
}

// PopCount returns the number of set squares.
func (bb Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(bb))
}

// Lsb returns the lowest-indexed set square, or SqNone if bb is empty.
func (bb Bitboard) Lsb() Square {
	if bb == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(bb)))
}

// Msb returns the highest-indexed set square, or SqNone if bb is empty.
func (bb Bitboard) Msb() Square {
	if bb == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(bb)))
}

// PopLsb returns the lowest-indexed square and bb with that square
// cleared.
func (bb Bitboard) PopLsb() (Square, Bitboard) {
	sq := bb.Lsb()
	return sq, bb &^ Bit(sq)
}

// ForEach iterates the set squares of bb from lowest to highest,
// invoking f once per square. bb is consumed by value; the caller's
// copy is unaffected.
func ForEach(bb Bitboard, f func(sq Square)) {
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLsb()
		f(sq)
	}
}

// notFileA / notFileH mask out the squares that would otherwise wrap
// around the board edge during a single-step shift.
var notFileA, notFileH Bitboard

// Shift moves every square in bb one step in direction d, discarding
// squares that would cross a board edge (zero-filling the vacated
// side, per spec.md's shift<D> semantics).
func Shift(bb Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return bb >> 8
	case South:
		return bb << 8
	case East:
		return (bb & notFileH) << 1
	case West:
		return (bb & notFileA) >> 1
	case Northeast:
		return (bb & notFileH) >> 7
	case Southeast:
		return (bb & notFileH) << 9
	case Southwest:
		return (bb & notFileA) << 7
	case Northwest:
		return (bb & notFileA) >> 9
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// ray[d][sq] is the set of squares strictly beyond sq in direction d,
// out to the edge of the board - a precomputed table per spec.md §4.1.
var rayTable [8][SqLength]Bitboard

func directionSlot(d Direction) int {
	switch d {
	case North:
		return 0
	case East:
		return 1
	case South:
		return 2
	case West:
		return 3
	case Northeast:
		return 4
	case Southeast:
		return 5
	case Southwest:
		return 6
	case Northwest:
		return 7
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// Ray returns the precomputed ray of squares from sq in direction d.
func Ray(d Direction, sq Square) Bitboard {
	return rayTable[directionSlot(d)][sq]
}

// FirstBlocker returns the singleton bitboard of the nearest set bit of
// occ along direction d from sq, or BbZero if the ray is clear.
func FirstBlocker(d Direction, sq Square, occ Bitboard) Bitboard {
	blockers := Ray(d, sq) & occ
	if blockers == 0 {
		return BbZero
	}
	if d.IsNegative() {
		return Bit(blockers.Msb())
	}
	return Bit(blockers.Lsb())
}

// BlockedRay returns the squares from sq along d up to, and optionally
// including, the first blocker in occ.
func BlockedRay(d Direction, sq Square, occ Bitboard, includeBlocker bool) Bitboard {
	ray := Ray(d, sq)
	blocker := FirstBlocker(d, sq, occ)
	if blocker == 0 {
		return ray
	}
	blockerSq := blocker.Lsb()
	between := ray &^ Ray(d, blockerSq)
	if !includeBlocker {
		between &^= blocker
	}
	return between
}

var bishopDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}
var rookDirs = [4]Direction{North, East, South, West}

// SliderAttacks returns the attack set of a slider of the given piece
// type standing on sq with the board occupied as given. pt must be
// Bishop, Rook or Queen.
func SliderAttacks(pt PieceType, sq Square, occ Bitboard) Bitboard {
	var attacks Bitboard
	if pt == Bishop || pt == Queen {
		for _, d := range bishopDirs {
			attacks |= BlockedRay(d, sq, occ, true)
		}
	}
	if pt == Rook || pt == Queen {
		for _, d := range rookDirs {
			attacks |= BlockedRay(d, sq, occ, true)
		}
	}
	return attacks
}

var knightAttacksTable [SqLength]Bitboard
var kingAttacksTable [SqLength]Bitboard
var pawnAttacksTable [ColorLength][SqLength]Bitboard

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacksTable[sq]
}

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq Square) Bitboard {
	return kingAttacksTable[sq]
}

// PawnAttacks returns the pawn capture set from sq for the given color.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacksTable[c][sq]
}

var fileBb [8]Bitboard
var rankBb [8]Bitboard
var colorSquaresBb [2]Bitboard

// SquaresBb returns the set of all light squares for White and all
// dark squares for Black, used e.g. to relate a bishop's square color
// to the pawns standing on squares of that color.
func SquaresBb(c Color) Bitboard {
	return colorSquaresBb[c]
}

// Literal rank masks for the two pawn home ranks, usable before Init()
// has populated the rank table. Rank 8 occupies the low byte in this
// numbering (a8 = bit 0), rank 1 the high byte.
const (
	Rank7_Bb Bitboard = 0x000000000000FF00
	Rank2_Bb Bitboard = 0x00FF000000000000
)

var initialized bool

// Init pre-computes every table in the types package: file/rank masks,
// ray tables, piece attack tables, and the per-color rank helpers.
// It must be called once before any other function in this package
// that depends on precomputed state (SliderAttacks, KnightAttacks,
// KingAttacks, PawnAttacks, Color.PromotionRankBb, ...).
func Init() {
	if initialized {
		return
	}
	initFileRankBb()
	initNotFileMasks()
	initRayTable()
	initLeaperAttacks()
	initColorTables()
	initialized = true
}

func initFileRankBb() {
	for sq := SqA8; sq < SqNone; sq++ {
		fileBb[sq.FileOf()] |= Bit(sq)
		rankBb[sq.RankOf()] |= Bit(sq)
		if (int(sq.FileOf())+int(sq.RankOf()))%2 == 1 {
			colorSquaresBb[White] |= Bit(sq)
		} else {
			colorSquaresBb[Black] |= Bit(sq)
		}
	}
}

func initNotFileMasks() {
	notFileA = BbAll &^ fileBb[FileA]
	notFileH = BbAll &^ fileBb[FileH]
}

func initRayTable() {
	for sq := SqA8; sq < SqNone; sq++ {
		for _, d := range Directions {
			slot := directionSlot(d)
			cur := sq
			var r Bitboard
			for {
				next := cur.To(d)
				if next == SqNone {
					break
				}
				r |= Bit(next)
				cur = next
			}
			rayTable[slot][sq] = r
		}
	}
}

var knightSteps = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
var kingSteps = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

func initLeaperAttacks() {
	for sq := SqA8; sq < SqNone; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		for _, step := range knightSteps {
			nf, nr := f+step[0], r+step[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				knightAttacksTable[sq] |= Bit(SquareOf(File(nf), Rank(nr)))
			}
		}
		for _, step := range kingSteps {
			nf, nr := f+step[0], r+step[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				kingAttacksTable[sq] |= Bit(SquareOf(File(nf), Rank(nr)))
			}
		}
		if nf := f - 1; nf >= 0 && r+1 < 8 {
			pawnAttacksTable[White][sq] |= Bit(SquareOf(File(nf), Rank(r+1)))
		}
		if nf := f + 1; nf < 8 && r+1 < 8 {
			pawnAttacksTable[White][sq] |= Bit(SquareOf(File(nf), Rank(r+1)))
		}
		if nf := f - 1; nf >= 0 && r-1 >= 0 {
			pawnAttacksTable[Black][sq] |= Bit(SquareOf(File(nf), Rank(r-1)))
		}
		if nf := f + 1; nf < 8 && r-1 >= 0 {
			pawnAttacksTable[Black][sq] |= Bit(SquareOf(File(nf), Rank(r-1)))
		}
	}
}

// String renders the bitboard as an 8x8 grid, rank 8 first, for
// debugging.
func (bb Bitboard) String() string {
	var b strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := 0; f < 8; f++ {
			sq := SquareOf(File(f), Rank(r))
			if bb.Has(sq) {
				b.WriteString("1 ")
			} else {
				b.WriteString(". ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
