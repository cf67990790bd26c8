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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/l0rdl0l/Calito-chess-engine/internal/position"
	. "github.com/l0rdl0l/Calito-chess-engine/internal/types"
)

func TestAttacksTo(t *testing.T) {
	var p *position.Position
	var atk Bitboard

	p = position.NewPosition("2brr1k1/1pq1b1p1/p1np1p1p/P1p1p2n/1PNPPP2/2P1BNP1/4Q1BP/R2R2K1 w - -")
	occ := p.Occupied()

	// e5: pawns d4/f4, knights c4/f3
	atk = attacksTo(p, SqE5, occ, White)
	logTest.Debug("\n", atk.String())
	assert.Equal(t, SqD4.Bb()|SqF4.Bb()|SqC4.Bb()|SqF3.Bb(), atk)

	// f1: king g1, rook d1 (e1 empty), queen e2, bishop g2
	atk = attacksTo(p, SqF1, occ, White)
	logTest.Debug("\n", atk.String())
	assert.Equal(t, SqG1.Bb()|SqD1.Bb()|SqE2.Bb()|SqG2.Bb(), atk)

	// d4: pawn c3, knight f3, rook d1, bishop e3
	atk = attacksTo(p, SqD4, occ, White)
	logTest.Debug("\n", atk.String())
	assert.Equal(t, SqC3.Bb()|SqF3.Bb()|SqD1.Bb()|SqE3.Bb(), atk)

	// d4 from black: pawns c5/e5, knight c6 (rook d8 blocked by d6)
	atk = attacksTo(p, SqD4, occ, Black)
	logTest.Debug("\n", atk.String())
	assert.Equal(t, SqC5.Bb()|SqE5.Bb()|SqC6.Bb(), atk)

	// d6: queen c7, bishop e7, rook d8
	atk = attacksTo(p, SqD6, occ, Black)
	logTest.Debug("\n", atk.String())
	assert.Equal(t, SqC7.Bb()|SqE7.Bb()|SqD8.Bb(), atk)

	// f8: king g8, rook e8, bishop e7 (rook d8 blocked by e8)
	atk = attacksTo(p, SqF8, occ, Black)
	logTest.Debug("\n", atk.String())
	assert.Equal(t, SqG8.Bb()|SqE8.Bb()|SqE7.Bb(), atk)

	p = position.NewPosition("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3")
	occ = p.Occupied()

	// e5: knights d7/g6, queen e6, bishop b2 through c3/d4
	atk = attacksTo(p, SqE5, occ, Black)
	logTest.Debug("\n", atk.String())
	assert.Equal(t, SqD7.Bb()|SqG6.Bb()|SqE6.Bb()|SqB2.Bb(), atk)

	// b1: pawns a2/c2
	atk = attacksTo(p, SqB1, occ, Black)
	logTest.Debug("\n", atk.String())
	assert.Equal(t, SqA2.Bb()|SqC2.Bb(), atk)

	// g3: pawns f2/h2
	atk = attacksTo(p, SqG3, occ, White)
	logTest.Debug("\n", atk.String())
	assert.Equal(t, SqF2.Bb()|SqH2.Bb(), atk)
}

func TestRevealedAttacks(t *testing.T) {
	p := position.NewPosition("1k1r3q/1ppn3p/p4b2/4p3/8/P2N2P1/1PP1R1BP/2K1Q3 w - -")
	occ := p.Occupied()

	sq := SqE5

	// direct: knight d3, rook e2, knight d7, bishop f6
	atk := attacksTo(p, sq, occ, White) | attacksTo(p, sq, occ, Black)
	logTest.Debug("Direct\n", atk.String())
	assert.Equal(t, SqD3.Bb()|SqE2.Bb()|SqD7.Bb()|SqF6.Bb(), atk)

	// take away bishop on f6 - reveals the queen h8 behind it
	atk &^= Bit(SqF6)
	occ &^= Bit(SqF6)

	atk |= revealedAttacks(p, sq, occ, White) | revealedAttacks(p, sq, occ, Black)
	logTest.Debug("Revealed\n", atk.String())
	assert.Equal(t, SqD3.Bb()|SqE2.Bb()|SqD7.Bb()|SqH8.Bb(), atk)

	// take away rook on e2 - reveals the queen e1 behind it
	atk &^= Bit(SqE2)
	occ &^= Bit(SqE2)

	atk |= revealedAttacks(p, sq, occ, White) | revealedAttacks(p, sq, occ, Black)
	logTest.Debug("Revealed\n", atk.String())
	assert.Equal(t, SqD3.Bb()|SqD7.Bb()|SqH8.Bb()|SqE1.Bb(), atk)
}

func TestLeastValuablePiece(t *testing.T) {
	p := position.NewPosition("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3")
	atk := attacksTo(p, SqE5, p.Occupied(), Black)

	logTest.Debug("All attackers\n", atk.String())
	assert.Equal(t, SqD7.Bb()|SqG6.Bb()|SqE6.Bb()|SqB2.Bb(), atk)

	// both knights tie on value - the lower square index wins
	lva := leastValuableAttacker(p, atk, Black)
	logTest.Debug("Least valuable piece:", lva.String())
	assert.Equal(t, SqD7, lva)

	atk &^= Bit(lva)
	lva = leastValuableAttacker(p, atk, Black)
	logTest.Debug("Least valuable piece:", lva.String())
	assert.Equal(t, SqG6, lva)

	atk &^= Bit(lva)
	lva = leastValuableAttacker(p, atk, Black)
	logTest.Debug("Least valuable piece:", lva.String())
	assert.Equal(t, SqB2, lva)

	atk &^= Bit(lva)
	lva = leastValuableAttacker(p, atk, Black)
	logTest.Debug("Least valuable piece:", lva.String())
	assert.Equal(t, SqE6, lva)

	atk &^= Bit(lva)
	lva = leastValuableAttacker(p, atk, Black)
	logTest.Debug("Least valuable piece:", lva.String())
	assert.Equal(t, SqNone, lva)
}

func TestSeeSimpleExchanges(t *testing.T) {
	// undefended pawn: PxP wins a clean pawn
	p := position.NewPosition("k7/8/8/3p4/4P3/8/8/K7 w - -")
	m := CreateMove(SqE4, SqD5, Normal)
	assert.EqualValues(t, 100, see(p, m))

	// defended pawn: PxP, pxP trades evenly
	p = position.NewPosition("k7/8/2p5/3p4/4P3/8/8/K7 w - -")
	m = CreateMove(SqE4, SqD5, Normal)
	assert.EqualValues(t, 0, see(p, m))

	// defended pawn taken by a rook: RxP, pxR loses the exchange
	p = position.NewPosition("k7/8/2p5/3p4/8/8/3R4/K7 w - -")
	m = CreateMove(SqD2, SqD5, Normal)
	assert.EqualValues(t, -400, see(p, m))

	// en passant is always treated as a winning pawn capture
	p = position.NewPosition("k7/8/8/3pP3/8/8/8/K7 w - d6")
	m = CreateMove(SqE5, SqD6, EnPassant)
	assert.EqualValues(t, 100, see(p, m))
}
