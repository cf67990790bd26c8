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

// Package movegen generates pseudo-legal and legal moves for a
// position: captures and non-captures for every piece type, castling
// and en passant included. Move ordering (TT move, killers, MVV-LVA)
// is not this package's job - it hands back a plain moveslice.MoveSlice
// and the search package orders it externally.
package movegen

import (
	"fmt"
	"strings"

	"github.com/op/go-logging"

	myLogging "github.com/l0rdl0l/Calito-chess-engine/internal/logging"
	"github.com/l0rdl0l/Calito-chess-engine/internal/moveslice"
	"github.com/l0rdl0l/Calito-chess-engine/internal/position"
	. "github.com/l0rdl0l/Calito-chess-engine/internal/types"
)

var log *logging.Logger

// MaxPseudoLegalMoves bounds the number of pseudo-legal moves any chess
// position can have; 218 is the known maximum, rounded up for headroom.
const MaxPseudoLegalMoves = 256

// Movegen generates moves for a position. It owns its own scratch
// buffers so repeated calls from a hot search loop do not allocate.
// Create one via NewMoveGen(); the zero value is not usable.
type Movegen struct {
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice
}

// GenMode selects which subset of moves to generate.
type GenMode int

const (
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = GenCap | GenNonCap
)

// NewMoveGen creates a new move generator with its scratch buffers
// pre-sized to MaxPseudoLegalMoves.
func NewMoveGen() *Movegen {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &Movegen{
		pseudoLegalMoves: moveslice.NewMoveSlice(MaxPseudoLegalMoves),
		legalMoves:       moveslice.NewMoveSlice(MaxPseudoLegalMoves),
	}
}

// GeneratePseudoLegalMoves fills and returns the generator's internal
// pseudo-legal move buffer for p. A pseudo-legal move may leave the
// mover's own king in check (only castling checks the king's path
// itself, since an unsafe destination there is a property of the move
// shape, not a post-hoc legality test); castling additionally never
// passes a square currently or about to be attacked.
//
// The returned slice is only valid until the next call on this
// generator - callers that need to keep it must Clone() it.
func (mg *Movegen) GeneratePseudoLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	mg.generatePawnMoves(p, mode, mg.pseudoLegalMoves)
	mg.generatePieceMoves(p, mode, mg.pseudoLegalMoves)
	mg.generateKingMoves(p, mode, mg.pseudoLegalMoves)
	if mode&GenNonCap != 0 {
		mg.generateCastling(p, mg.pseudoLegalMoves)
	}
	return mg.pseudoLegalMoves
}

// GenerateLegalMoves returns every legal move for p: the pseudo-legal
// list with every move that would leave the mover's own king in check
// filtered out.
//
// The returned slice is only valid until the next call on this
// generator - callers that need to keep it must Clone() it.
func (mg *Movegen) GenerateLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.GeneratePseudoLegalMoves(p, mode)
	mg.legalMoves.Clear()
	for i := 0; i < mg.pseudoLegalMoves.Len(); i++ {
		m := mg.pseudoLegalMoves.At(i)
		if p.IsLegalMove(m) {
			mg.legalMoves.PushBack(m)
		}
	}
	return mg.legalMoves
}

// HasLegalMove reports whether p's side to move has at least one
// legal move, without generating (or ordering) the full list. Used to
// tell checkmate/stalemate apart from an ordinary node.
func (mg *Movegen) HasLegalMove(p *position.Position) bool {
	mg.GeneratePseudoLegalMoves(p, GenAll)
	for i := 0; i < mg.pseudoLegalMoves.Len(); i++ {
		if p.IsLegalMove(mg.pseudoLegalMoves.At(i)) {
			return true
		}
	}
	return false
}

// ValidateMove reports whether m is a legal move in p.
func (mg *Movegen) ValidateMove(p *position.Position, m Move) bool {
	return mg.GenerateLegalMoves(p, GenAll).Contains(m)
}

// GetMoveFromUci parses a UCI long-algebraic move string (e.g. "e2e4",
// "e7e8q") and returns the matching legal move in p, or MoveNone if
// the string is malformed or names no legal move.
func (mg *Movegen) GetMoveFromUci(p *position.Position, uciMove string) Move {
	if len(uciMove) < 4 {
		return MoveNone
	}
	from := MakeSquare(uciMove[0:2])
	to := MakeSquare(uciMove[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone
	}
	var promo PieceType
	if len(uciMove) >= 5 {
		switch uciMove[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		}
	}
	legal := mg.GenerateLegalMoves(p, GenAll)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Type() == Promotion {
			if promo != PtNone && m.PromotionType() == promo {
				return m
			}
			continue
		}
		return m
	}
	return MoveNone
}

// GetMoveFromSan parses a short algebraic notation move (e.g. "Nf3",
// "exd5", "O-O", "e8=Q+") and returns the matching legal move in p, or
// MoveNone if it names no legal move.
func (mg *Movegen) GetMoveFromSan(p *position.Position, san string) Move {
	san = strings.TrimRight(san, "+#!?")
	legal := mg.GenerateLegalMoves(p, GenAll)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if sanOf(p, m) == san {
			return m
		}
	}
	return MoveNone
}

// sanOf renders m (assumed legal in p) in short algebraic notation.
func sanOf(p *position.Position, m Move) string {
	if m.Type() == Castling {
		if m.CastleVariant() == CastleKingside {
			return "O-O"
		}
		return "O-O-O"
	}
	pt := p.PieceAt(m.From()).TypeOf()
	capture := p.IsCapture(m)
	var b strings.Builder
	if pt == Pawn {
		if capture {
			b.WriteString(m.From().FileOf().String())
			b.WriteString("x")
		}
		b.WriteString(m.To().String())
		if m.Type() == Promotion {
			b.WriteString("=")
			b.WriteString(m.PromotionType().String())
		}
		return b.String()
	}
	b.WriteString(pt.String())
	if capture {
		b.WriteString("x")
	}
	b.WriteString(m.To().String())
	return b.String()
}

// String returns a debug rendering of the pseudo-legal moves currently
// held in the generator's buffer.
func (mg *Movegen) String() string {
	return fmt.Sprintf("Movegen pseudoLegal=%s legal=%s", mg.pseudoLegalMoves.String(), mg.legalMoves.String())
}

var pawnCaptureDirs = [ColorLength][2]Direction{
	{Northeast, Northwest},
	{Southeast, Southwest},
}

func (mg *Movegen) generatePawnMoves(p *position.Position, mode GenMode, moves *moveslice.MoveSlice) {
	us := p.NextPlayer()
	pawns := p.PiecesBb(Pawn) & p.OwnPieces()
	if pawns == BbZero {
		return
	}
	occ := p.Occupied()
	empty := BbAll &^ occ
	enemy := p.EnemyPieces()
	pushDir := us.PawnPushDirection()
	backDir := -pushDir
	promRank := us.PromotionRankBb()

	if mode&GenNonCap != 0 {
		singlePush := Shift(pawns, pushDir) & empty
		quietPush := singlePush &^ promRank
		ForEach(quietPush, func(to Square) {
			moves.PushBack(CreateMove(to.To(backDir), to, Normal))
		})
		promoPush := singlePush & promRank
		ForEach(promoPush, func(to Square) {
			pushPawnPromotions(moves, to.To(backDir), to)
		})
		doublePush := Shift(singlePush&^promRank, pushDir) & empty & us.PawnDoubleRank()
		ForEach(doublePush, func(to Square) {
			moves.PushBack(CreateMove(to.To(backDir).To(backDir), to, Normal))
		})
	}

	if mode&GenCap != 0 {
		for _, capDir := range pawnCaptureDirs[us] {
			targets := Shift(pawns, capDir) & enemy
			quiet := targets &^ promRank
			ForEach(quiet, func(to Square) {
				moves.PushBack(CreateMove(to.To(-capDir), to, Normal))
			})
			promo := targets & promRank
			ForEach(promo, func(to Square) {
				pushPawnPromotions(moves, to.To(-capDir), to)
			})
		}
		if ep := p.EnPassantSquare(); ep != SqNone {
			attackers := PawnAttacks(us.Flip(), ep) & pawns
			ForEach(attackers, func(from Square) {
				moves.PushBack(CreateMove(from, ep, EnPassant))
			})
		}
	}
}

func pushPawnPromotions(moves *moveslice.MoveSlice, from, to Square) {
	moves.PushBack(CreatePromotion(from, to, Queen))
	moves.PushBack(CreatePromotion(from, to, Rook))
	moves.PushBack(CreatePromotion(from, to, Bishop))
	moves.PushBack(CreatePromotion(from, to, Knight))
}

var pieceTypesToGenerate = [4]PieceType{Knight, Bishop, Rook, Queen}

func (mg *Movegen) generatePieceMoves(p *position.Position, mode GenMode, moves *moveslice.MoveSlice) {
	occ := p.Occupied()
	own := p.OwnPieces()
	enemy := p.EnemyPieces()
	for _, pt := range pieceTypesToGenerate {
		pieces := p.PiecesBb(pt) & own
		ForEach(pieces, func(from Square) {
			var attacks Bitboard
			if pt == Knight {
				attacks = KnightAttacks(from)
			} else {
				attacks = SliderAttacks(pt, from, occ)
			}
			attacks &^= own
			if mode&GenCap != 0 {
				ForEach(attacks&enemy, func(to Square) {
					moves.PushBack(CreateMove(from, to, Normal))
				})
			}
			if mode&GenNonCap != 0 {
				ForEach(attacks&^occ, func(to Square) {
					moves.PushBack(CreateMove(from, to, Normal))
				})
			}
		})
	}
}

func (mg *Movegen) generateKingMoves(p *position.Position, mode GenMode, moves *moveslice.MoveSlice) {
	us := p.NextPlayer()
	from := p.KingSquare(us)
	attacks := KingAttacks(from) &^ p.OwnPieces()
	if mode&GenCap != 0 {
		ForEach(attacks&p.EnemyPieces(), func(to Square) {
			moves.PushBack(CreateMove(from, to, Normal))
		})
	}
	if mode&GenNonCap != 0 {
		ForEach(attacks&^p.Occupied(), func(to Square) {
			moves.PushBack(CreateMove(from, to, Normal))
		})
	}
}

// generateCastling appends the side to move's available castling
// moves. A castling move is pseudo-legal only if the squares between
// king and rook are empty and the king's entire path - start,
// intermediate and destination square - is currently unattacked;
// unlike every other generator here this one is fully legal-checked up
// front, since GenerateLegalMoves's post-DoMove king-safety test alone
// would miss the "may not pass through check" rule.
func (mg *Movegen) generateCastling(p *position.Position, moves *moveslice.MoveSlice) {
	us := p.NextPlayer()
	rights := p.CastlingRights()
	occ := p.Occupied()

	var kingFrom, kingsideTo, queensideTo Square
	var kingsideClear, queensideClear Bitboard
	var kingsideRight, queensideRight CastlingRights
	if us == White {
		kingFrom, kingsideTo, queensideTo = SqE1, SqG1, SqC1
		kingsideClear = Bit(SqF1) | Bit(SqG1)
		queensideClear = Bit(SqD1) | Bit(SqC1) | Bit(SqB1)
		kingsideRight, queensideRight = CastlingWhiteOO, CastlingWhiteOOO
	} else {
		kingFrom, kingsideTo, queensideTo = SqE8, SqG8, SqC8
		kingsideClear = Bit(SqF8) | Bit(SqG8)
		queensideClear = Bit(SqD8) | Bit(SqC8) | Bit(SqB8)
		kingsideRight, queensideRight = CastlingBlackOO, CastlingBlackOOO
	}

	if rights.Has(kingsideRight) && occ&kingsideClear == BbZero &&
		!p.WouldKingBeInCheck(kingFrom) && !p.WouldKingBeInCheck(kingFrom.To(East)) && !p.WouldKingBeInCheck(kingsideTo) {
		moves.PushBack(CreateCastling(kingFrom, kingsideTo, CastleKingside))
	}
	if rights.Has(queensideRight) && occ&queensideClear == BbZero &&
		!p.WouldKingBeInCheck(kingFrom) && !p.WouldKingBeInCheck(kingFrom.To(West)) && !p.WouldKingBeInCheck(queensideTo) {
		moves.PushBack(CreateCastling(kingFrom, queensideTo, CastleQueenside))
	}
}
