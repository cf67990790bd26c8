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

// MoveType distinguishes the handful of move shapes makeMove needs to
// special-case.
type MoveType uint8

const (
	Normal MoveType = iota
	EnPassant
	Castling
	Promotion
)

// Move is a legal or pseudo-legal chess move packed into 16 bits:
//
//	bits 0-5:   from square
//	bits 6-11:  to square
//	bits 12-13: MoveType
//	bits 14-15: flag - promotion piece (0=Knight,1=Bishop,2=Rook,3=Queen)
//	            for Promotion moves, or castle variant (0=king-side,
//	            1=queen-side) for Castling moves, else 0.
type Move uint16

const MoveNone Move = 0

var promotionPieceTypes = [4]PieceType{Knight, Bishop, Rook, Queen}

// CreateMove builds a Normal or EnPassant move.
func CreateMove(from, to Square, mt MoveType) Move {
	return Move(uint16(from) | uint16(to)<<6 | uint16(mt)<<12)
}

// CreatePromotion builds a Promotion move to the given piece type.
func CreatePromotion(from, to Square, promo PieceType) Move {
	var flag uint16
	for i, pt := range promotionPieceTypes {
		if pt == promo {
			flag = uint16(i)
		}
	}
	return Move(uint16(from) | uint16(to)<<6 | uint16(Promotion)<<12 | flag<<14)
}

// CastleVariant identifies which of the two castling moves per color a
// Castling move represents.
type CastleVariant uint8

const (
	CastleKingside CastleVariant = iota
	CastleQueenside
)

// CreateCastling builds a Castling move.
func CreateCastling(from, to Square, variant CastleVariant) Move {
	return Move(uint16(from) | uint16(to)<<6 | uint16(Castling)<<12 | uint16(variant)<<14)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3f)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3f)
}

// Type returns the move's special kind.
func (m Move) Type() MoveType {
	return MoveType((m >> 12) & 0x3)
}

// PromotionType returns the piece type a Promotion move promotes to.
// Only meaningful when Type() == Promotion.
func (m Move) PromotionType() PieceType {
	return promotionPieceTypes[(m>>14)&0x3]
}

// CastleVariant returns which castling move this is. Only meaningful
// when Type() == Castling.
func (m Move) CastleVariant() CastleVariant {
	return CastleVariant((m >> 14) & 0x3)
}

// IsValid reports whether m has a usable from/to pair. It does not
// check legality against any position.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From() != m.To()
}

// String renders the move in long algebraic notation as used on the
// UCI wire: fromSquare + toSquare + optional promotion letter.
func (m Move) String() string {
	if !m.IsValid() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.Type() == Promotion {
		s += promoLetter(m.PromotionType())
	}
	return s
}

// StringUci is an alias for String: the move's own representation is
// already the UCI wire format, so this exists only for callers that
// read more naturally with the explicit name (UCI response plumbing).
func (m Move) StringUci() string {
	return m.String()
}

func promoLetter(pt PieceType) string {
	switch pt {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	default:
		return ""
	}
}
