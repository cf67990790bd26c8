/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	"github.com/l0rdl0l/Calito-chess-engine/internal/position"
	. "github.com/l0rdl0l/Calito-chess-engine/internal/types"
)

// see computes the Static Exchange Evaluation of move: the net material
// gain for the side to move after every attacker on the target square
// has traded off in ascending value order. Used to judge whether a
// capture is worth searching in quiescence.
func see(p *position.Position, move Move) Value {
	// en-passant is rare enough that we simply count it as a winning
	// capture and never cut it from quiescence.
	if move.Type() == EnPassant {
		return 100
	}

	// max attackers of one color that can ever stand on a square.
	gain := make([]Value, 0, 32)

	toSquare := move.To()
	fromSquare := move.From()
	movedPiece := p.PieceAt(fromSquare)
	side := p.NextPlayer()

	occ := p.Occupied()

	attackers := attacksTo(p, toSquare, occ, White) | attacksTo(p, toSquare, occ, Black)

	gain = append(gain, p.PieceAt(toSquare).TypeOf().Value())

	for {
		side = side.Flip()

		var capValue Value
		if move.Type() == Promotion && len(gain) == 1 {
			capValue = move.PromotionType().Value() - Pawn.Value() - gain[len(gain)-1]
		} else {
			capValue = movedPiece.TypeOf().Value() - gain[len(gain)-1]
		}
		gain = append(gain, capValue)

		// pruning: if the exchange cannot possibly change the final
		// score anymore, stop early.
		if max(-gain[len(gain)-2], gain[len(gain)-1]) < 0 {
			break
		}

		attackers &^= Bit(fromSquare)
		occ &^= Bit(fromSquare)

		// removing a piece can reveal a slider attack through it.
		attackers |= revealedAttacks(p, toSquare, occ, White) | revealedAttacks(p, toSquare, occ, Black)

		fromSquare = leastValuableAttacker(p, attackers, side)
		if fromSquare == SqNone {
			break
		}
		movedPiece = p.PieceAt(fromSquare)
	}

	// the last gain entry is always speculative - it was appended before
	// discovering whether the side to move still had an attacker - so the
	// minimax fold starts one below it.
	for i := len(gain) - 2; i > 0; i-- {
		gain[i-1] = -max(-gain[i-1], gain[i])
	}
	return gain[0]
}

// attacksTo returns all pieces of color attacking square given the
// occupancy occ (which may differ from the live position during a SEE
// exchange simulation).
func attacksTo(p *position.Position, square Square, occ Bitboard, color Color) Bitboard {
	colorPieces := p.PiecesBb(Pawn)&p.ColorPieces(color)&PawnAttacks(color.Flip(), square) |
		p.PiecesBb(Knight)&p.ColorPieces(color)&KnightAttacks(square) |
		p.PiecesBb(King)&p.ColorPieces(color)&KingAttacks(square) |
		(p.PiecesBb(Rook)|p.PiecesBb(Queen))&p.ColorPieces(color)&SliderAttacks(Rook, square, occ) |
		(p.PiecesBb(Bishop)|p.PiecesBb(Queen))&p.ColorPieces(color)&SliderAttacks(Bishop, square, occ)
	return colorPieces
}

// revealedAttacks returns only the slider attacks to square given occ,
// since only sliders can be unmasked by removing a blocking piece.
func revealedAttacks(p *position.Position, square Square, occ Bitboard, color Color) Bitboard {
	return (p.PiecesBb(Rook)|p.PiecesBb(Queen))&p.ColorPieces(color)&occ&SliderAttacks(Rook, square, occ) |
		(p.PiecesBb(Bishop)|p.PiecesBb(Queen))&p.ColorPieces(color)&occ&SliderAttacks(Bishop, square, occ)
}

// leastValuableAttacker returns the square of the cheapest attacker of
// color within bb, or SqNone if there is none.
func leastValuableAttacker(p *position.Position, bb Bitboard, color Color) Square {
	for _, pt := range [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
		if set := bb & p.PiecesBb(pt) & p.ColorPieces(color); set != BbZero {
			return set.Lsb()
		}
	}
	return SqNone
}

func max(x, y Value) Value {
	if x > y {
		return x
	}
	return y
}
