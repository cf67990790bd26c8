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

// Package evaluator contains structures and functions to calculate
// the value of a chess position to be used in a chess engine search
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/l0rdl0l/Calito-chess-engine/internal/config"
	myLogging "github.com/l0rdl0l/Calito-chess-engine/internal/logging"
	"github.com/l0rdl0l/Calito-chess-engine/internal/position"
	. "github.com/l0rdl0l/Calito-chess-engine/internal/types"
)

var out = message.NewPrinter(language.German)

// GamePhaseMax is the sum of PieceType.GamePhaseValue() across one
// complete starting army of both colors (2N+2B+2R+Q per side), used to
// normalize the tapering factor fed to Score.ValueFromScore.
const GamePhaseMax = 24

// Evaluator holds the logger and pawn-structure cache used while
// evaluating. Pawn structure only changes on pawn moves and captures,
// so caching it keyed by PawnKey saves recomputing it on every call
// that shares a pawn skeleton. A single instance is otherwise stateless
// and safe to reuse across searches.
type Evaluator struct {
	log       *logging.Logger
	pawnCache *pawnCache
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	e := &Evaluator{log: myLogging.GetLog()}
	if config.Settings.Eval.UsePawnCache {
		e.pawnCache = newPawnCache()
	}
	return e
}

// Evaluate calculates a value for a chess position by summing material,
// piece-square, pawn-structure, mobility, rook-file, outpost and
// king-safety terms, then tapering mid/end game weights by the
// remaining material on the board. The returned value is always from
// the view of the position's side to move.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	var score Score

	phase := gamePhase(p)
	gpf := float64(phase) / float64(GamePhaseMax)
	if gpf > 1.0 {
		gpf = 1.0
	}

	score.Add(materialAndPsq(p))
	score.Add(e.pawnStructure(p))
	if config.Settings.Eval.UseMobility {
		score.Add(mobility(p))
	}
	score.Add(bishopPawns(p))
	score.Add(rookFiles(p))
	score.Add(outposts(p))
	score.Add(kingSafety(p, gpf))

	// Tempo bonus for the side to move - smaller alternation between
	// plies makes the search converge a little faster.
	score.MidGameValue += int(config.Settings.Eval.Tempo) * p.NextPlayer().Direction()

	value := score.ValueFromScore(gpf)
	return value * Value(p.NextPlayer().Direction())
}

var pawnCaptureDirs = [ColorLength][2]Direction{
	{Northeast, Northwest},
	{Southeast, Southwest},
}

// gamePhase sums the game-phase weight of every piece currently on the
// board, White and Black alike.
func gamePhase(p *position.Position) int {
	phase := 0
	for pt := Knight; pt <= Queen; pt++ {
		phase += p.PiecesBb(pt).PopCount() * pt.GamePhaseValue()
	}
	return phase
}

// materialAndPsq adds up centipawn material plus piece-square bonuses
// for every piece on the board, and a bonus for the bishop pair.
func materialAndPsq(p *position.Position) Score {
	var s Score
	for pt := Pawn; pt <= Queen; pt++ {
		for c := White; c < Color(ColorLength); c++ {
			bb := p.PiecesBb(pt) & p.ColorPieces(c)
			dir := c.Direction()
			mat := int(pt.Value()) * bb.PopCount()
			s.MidGameValue += mat * dir
			s.EndGameValue += mat * dir
			ForEach(bb, func(sq Square) {
				mg, eg := psq(pt, c, sq)
				s.MidGameValue += mg * dir
				s.EndGameValue += eg * dir
			})
		}
		if pt == Bishop {
			if (p.PiecesBb(Bishop) & p.ColorPieces(White)).PopCount() >= 2 {
				s.MidGameValue += int(config.Settings.Eval.BishopPairBonus)
				s.EndGameValue += int(config.Settings.Eval.BishopPairBonus)
			}
			if (p.PiecesBb(Bishop) & p.ColorPieces(Black)).PopCount() >= 2 {
				s.MidGameValue -= int(config.Settings.Eval.BishopPairBonus)
				s.EndGameValue -= int(config.Settings.Eval.BishopPairBonus)
			}
		}
	}
	// King is not counted in material but does carry a piece-square term.
	for c := White; c < Color(ColorLength); c++ {
		sq := p.KingSquare(c)
		dir := c.Direction()
		mg, eg := psq(King, c, sq)
		s.MidGameValue += mg * dir
		s.EndGameValue += eg * dir
	}
	return s
}

// psq returns the mid/end game piece-square bonus of a piece of type pt
// and color c standing on sq, from White's point of view (i.e. already
// signed the way materialAndPsq wants to add it after multiplying by
// color direction).
func psq(pt PieceType, c Color, sq Square) (int, int) {
	idx := sq
	if c == Black {
		idx = sq ^ 56
	}
	switch pt {
	case Pawn:
		return int(pawnPsqMg[idx]), int(pawnPsqEg[idx])
	case Knight:
		return int(knightPsqMg[idx]), int(knightPsqEg[idx])
	case Bishop:
		return int(bishopPsqMg[idx]), int(bishopPsqEg[idx])
	case Rook:
		return int(rookPsqMg[idx]), int(rookPsqEg[idx])
	case Queen:
		return int(queenPsqMg[idx]), int(queenPsqEg[idx])
	case King:
		return int(kingPsqMg[idx]), int(kingPsqEg[idx])
	default:
		return 0, 0
	}
}

// pawnStructure looks up the pawn-structure score for p's current pawn
// skeleton in the cache, computing and storing it on a miss.
func (e *Evaluator) pawnStructure(p *position.Position) Score {
	if e.pawnCache != nil {
		key := p.PawnKey()
		if entry := e.pawnCache.getEntry(key); entry != nil {
			return entry.score
		}
		s := computePawnStructure(p)
		e.pawnCache.put(key, &s)
		return s
	}
	return computePawnStructure(p)
}

// computePawnStructure evaluates isolation, doubling, blockage and
// passed status for every pawn on the board.
func computePawnStructure(p *position.Position) Score {
	var s Score
	for c := White; c < Color(ColorLength); c++ {
		us := c
		them := c.Flip()
		dir := us.Direction()
		ourPawns := p.PiecesBb(Pawn) & p.ColorPieces(us)
		theirPawns := p.PiecesBb(Pawn) & p.ColorPieces(them)

		ForEach(ourPawns, func(sq Square) {
			file := sq.FileOf()
			rank := sq.RankOf()

			// isolated: no own pawn on an adjacent file
			adjFiles := BbZero
			if file > FileA {
				adjFiles |= (file - 1).Bb()
			}
			if file < FileH {
				adjFiles |= (file + 1).Bb()
			}
			if ourPawns&adjFiles == BbZero {
				s.MidGameValue += int(config.Settings.Eval.PawnIsolatedMidMalus) * dir
				s.EndGameValue += int(config.Settings.Eval.PawnIsolatedEndMalus) * dir
			}

			// doubled: another own pawn further back on the same file
			behind := Ray(them.PawnPushDirection(), sq)
			if ourPawns&file.Bb()&behind != BbZero {
				s.MidGameValue += int(config.Settings.Eval.PawnDoubledMidMalus) * dir
				s.EndGameValue += int(config.Settings.Eval.PawnDoubledEndMalus) * dir
			}

			// blocked: any piece directly ahead
			aheadSq := sq.To(us.PawnPushDirection())
			if aheadSq != SqNone && p.Occupied().Has(aheadSq) {
				s.MidGameValue += int(config.Settings.Eval.PawnBlockedMidMalus) * dir
				s.EndGameValue += int(config.Settings.Eval.PawnBlockedEndMalus) * dir
			}

			// passed: no enemy pawn can ever stop or capture this pawn
			ahead := Ray(us.PawnPushDirection(), sq)
			frontSpan := ahead | Shift(ahead, East) | Shift(ahead, West)
			if theirPawns&frontSpan == BbZero {
				dist := promotionDistance(us, rank)
				s.MidGameValue += int(config.Settings.Eval.PawnPassedMidBonus[dist]) * dir
				s.EndGameValue += int(config.Settings.Eval.PawnPassedEndBonus[dist]) * dir
			}
		})
	}
	return s
}

// promotionDistance returns the number of ranks left to promote,
// clamped into the 0-7 index range used by the passed-pawn bonus tables.
func promotionDistance(c Color, rank Rank) int {
	var dist int
	if c == White {
		dist = int(Rank8) - int(rank)
	} else {
		dist = int(rank) - int(Rank1)
	}
	if dist < 0 {
		dist = 0
	}
	if dist > 7 {
		dist = 7
	}
	return dist
}

// mobility counts, for every minor and major piece, the number of
// squares it attacks that are neither occupied by a friendly piece nor
// attacked by an enemy pawn.
func mobility(p *position.Position) Score {
	var s Score
	occ := p.Occupied()
	for c := White; c < Color(ColorLength); c++ {
		us := c
		them := c.Flip()
		dir := us.Direction()
		own := p.ColorPieces(us)
		theirPawns := p.PiecesBb(Pawn) & p.ColorPieces(them)
		var pawnCover Bitboard
		for _, d := range pawnCaptureDirs[them] {
			pawnCover |= Shift(theirPawns, d)
		}
		for pt := Knight; pt <= Queen; pt++ {
			bonus := int(config.Settings.Eval.MobilityBonus[pt])
			ForEach(p.PiecesBb(pt)&own, func(sq Square) {
				var attacks Bitboard
				if pt == Knight {
					attacks = KnightAttacks(sq)
				} else {
					attacks = SliderAttacks(pt, sq, occ)
				}
				count := (attacks &^ own &^ pawnCover).PopCount()
				s.MidGameValue += count * bonus * dir
				s.EndGameValue += count * bonus * dir
			})
		}
	}
	return s
}

// bishopPawns penalizes own pawns standing on squares of the same
// color as an own bishop - they restrict the bishop permanently, and
// a blocked pawn (any piece directly ahead of it) can never get out
// of the way, so it is penalized separately.
func bishopPawns(p *position.Position) Score {
	var s Score
	occ := p.Occupied()
	for c := White; c < Color(ColorLength); c++ {
		us := c
		dir := us.Direction()
		ourPawns := p.PiecesBb(Pawn) & p.ColorPieces(us)
		blockedPawns := ourPawns & Shift(occ, -us.PawnPushDirection())
		ForEach(p.PiecesBb(Bishop)&p.ColorPieces(us), func(sq Square) {
			sameColor := SquaresBb(Black)
			if SquaresBb(White).Has(sq) {
				sameColor = SquaresBb(White)
			}
			samePawns := ourPawns & sameColor
			blocked := (samePawns & blockedPawns).PopCount()
			unblocked := samePawns.PopCount() - blocked
			malus := blocked*int(config.Settings.Eval.BishopPawnBlockedMalus) +
				unblocked*int(config.Settings.Eval.BishopPawnMalus)
			s.EndGameValue += malus * dir
		})
	}
	return s
}

// rookFiles rewards rooks standing on open (no pawns at all) or
// half-open (no own pawns) files.
func rookFiles(p *position.Position) Score {
	var s Score
	allPawns := p.PiecesBb(Pawn)
	for c := White; c < Color(ColorLength); c++ {
		us := c
		dir := us.Direction()
		ourPawns := allPawns & p.ColorPieces(us)
		ForEach(p.PiecesBb(Rook)&p.ColorPieces(us), func(sq Square) {
			fileBb := sq.FileOf().Bb()
			switch {
			case allPawns&fileBb == BbZero:
				s.MidGameValue += int(config.Settings.Eval.RookOnOpenFileBonus) * dir
			case ourPawns&fileBb == BbZero:
				s.MidGameValue += int(config.Settings.Eval.RookOnHalfOpenBonus) * dir
			}
		})
	}
	return s
}

// outposts rewards minor pieces standing on a square defended by an own
// pawn that can never be challenged by an enemy pawn.
func outposts(p *position.Position) Score {
	var s Score
	for c := White; c < Color(ColorLength); c++ {
		us := c
		them := us.Flip()
		dir := us.Direction()
		ourPawns := p.PiecesBb(Pawn) & p.ColorPieces(us)
		theirPawns := p.PiecesBb(Pawn) & p.ColorPieces(them)
		minors := (p.PiecesBb(Knight) | p.PiecesBb(Bishop)) & p.ColorPieces(us)
		ForEach(minors, func(sq Square) {
			if PawnAttacks(them, sq)&ourPawns == BbZero {
				return
			}
			ahead := Ray(us.PawnPushDirection(), sq)
			span := Shift(ahead, East) | Shift(ahead, West)
			if theirPawns&span == BbZero {
				s.MidGameValue += int(config.Settings.Eval.OutpostBonus) * dir
				s.EndGameValue += int(config.Settings.Eval.OutpostBonus) * dir
			}
		})
	}
	return s
}

// kingSafety weighs enemy pieces attacking the king ring (the king's
// square plus its adjacent squares) against own defenders of it, and
// adds a per-direction openness malus: for each of the eight rays
// from the king, the farther away the nearest friendly piece stands,
// the more exposed the king is along that line. The total is scaled
// down in the endgame via KingDangerEgScale.
func kingSafety(p *position.Position, gpf float64) Score {
	var s Score
	occ := p.Occupied()
	for c := White; c < Color(ColorLength); c++ {
		us := c
		them := us.Flip()
		dir := us.Direction()
		kingSq := p.KingSquare(us)
		ring := KingAttacks(kingSq) | kingSq.Bb()

		attackWeight := 0
		defendCount := 0
		for pt := Knight; pt <= Queen; pt++ {
			w := int(config.Settings.Eval.KingRingAttackWeight[pt])
			ForEach(p.PiecesBb(pt)&p.ColorPieces(them), func(sq Square) {
				var attacks Bitboard
				if pt == Knight {
					attacks = KnightAttacks(sq)
				} else {
					attacks = SliderAttacks(pt, sq, occ)
				}
				if attacks&ring != BbZero {
					attackWeight += w
				}
			})
			ForEach(p.PiecesBb(pt)&p.ColorPieces(us), func(sq Square) {
				var attacks Bitboard
				if pt == Knight {
					attacks = KnightAttacks(sq)
				} else {
					attacks = SliderAttacks(pt, sq, occ)
				}
				if attacks&ring != BbZero {
					defendCount++
				}
			})
		}
		malus := attackWeight - defendCount*int(config.Settings.Eval.KingRingDefendBonus)

		// open lines: per ray, the number of steps before the nearest
		// friendly piece. A piece on the adjacent square shields the
		// line completely and contributes nothing.
		own := p.ColorPieces(us)
		openSteps := 0
		for _, d := range Directions {
			shield := BlockedRay(d, kingSq, own, true).PopCount()
			if shield > 0 {
				openSteps += shield - 1
			}
		}
		malus += openSteps * int(config.Settings.Eval.KingOpenLineMalus)
		scaled := int(float64(malus) * config.Settings.Eval.KingDangerEgScale)
		s.MidGameValue -= malus * dir
		s.EndGameValue -= scaled * dir
	}
	return s
}

// Report prints a report about the evaluation of a position. Used in
// debugging and the UCI "eval" command.
func (e *Evaluator) Report(p *position.Position) string {
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position: %s\n", p.Fen()))
	report.WriteString(out.Sprintf("%s\n", p.String()))
	report.WriteString(out.Sprintf("Eval value  : %d (from the view of %s)\n", e.Evaluate(p), p.NextPlayer().String()))
	return report.String()
}
