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
	"github.com/l0rdl0l/Calito-chess-engine/internal/config"
	"github.com/l0rdl0l/Calito-chess-engine/internal/movegen"
	"github.com/l0rdl0l/Calito-chess-engine/internal/moveslice"
	"github.com/l0rdl0l/Calito-chess-engine/internal/position"
	. "github.com/l0rdl0l/Calito-chess-engine/internal/types"
)

// rootSearch drives the search from the root position. It is plain
// fail-soft PVS: the first root move is searched with a full window,
// every later move first with a null window and only re-searched with
// the full window when it beats alpha.
func (s *Search) rootSearch(p *position.Position, depth int, alpha, beta Value) Value {
	s.statistics.CurrentIterationDepth = depth
	s.statistics.CurrentSearchDepth = depth

	bestValue := Value(-ValueInf)
	for i := 0; i < s.rootMoves.Len(); i++ {
		if s.stopConditions() {
			break
		}

		m := s.rootMoves.At(i)
		s.statistics.CurrentRootMove = m
		s.statistics.CurrentRootMoveIndex = i
		s.sendCurrentRootMove(m, i+1)

		// the child's pv buffer may still hold a sibling's line
		s.pv[1].Clear()

		p.DoMove(m)
		s.nodesVisited++

		ext := 0
		if p.HasCheck() {
			ext = 1
		}

		var value Value
		if i == 0 {
			value = -s.search(p, depth-1+ext, 1, -beta, -alpha, true)
		} else {
			value = -s.search(p, depth-1+ext, 1, -alpha-1, -alpha, false)
			if value > alpha && value < beta && !s.stopConditions() {
				value = -s.search(p, depth-1+ext, 1, -beta, -alpha, true)
			}
		}
		p.UndoMove()

		// an aborted child returned a meaningless value - leave the
		// previous iteration's move values (and their order) untouched
		if s.stopConditions() {
			break
		}

		s.rootMoveValues[i] = value

		if value > bestValue {
			bestValue = value
			s.statistics.CurrentBestRootMove = m
			s.statistics.CurrentBestRootMoveValue = value
			if value > alpha {
				alpha = value
				savePV(m, s.pv[1], s.pv[0])
			}
		}
	}

	// sort the root moves for the next iteration and keep the parallel
	// value slice in the same order so index 0 stays the best move's
	// value.
	scores := valuesToScores(s.rootMoveValues[:s.rootMoves.Len()])
	s.rootMoves.SortByScore(scores)
	for i, sc := range scores {
		s.rootMoveValues[i] = Value(sc)
	}
	return bestValue
}

// search is the interior alpha-beta node. depth==0 hands off to
// quiescence search. It implements mate distance pruning, a
// transposition table probe/store, killer move ordering, MVV-LVA move
// ordering, PVS and check extension. Nothing else: no null move
// pruning, no late move reductions, no futility or history heuristics.
func (s *Search) search(p *position.Position, depth, ply int, alpha, beta Value, isPV bool) Value {
	if s.stopConditions() {
		return ValueNA
	}

	// hard ply bound - check extensions could otherwise grow the ply
	// past the per-ply buffers in long checking sequences.
	if ply >= MaxDepth {
		return s.evaluate(p)
	}

	if ply > 0 {
		if p.IsPositionDraw(ply) {
			return ValueDraw
		}
		if !isPV {
			alpha = maxValue(alpha, -ValueCheckMate+Value(ply))
			beta = minValue(beta, ValueCheckMate-Value(ply-1))
			if alpha >= beta {
				return alpha
			}
		}
	}

	if depth <= 0 {
		return s.qsearch(p, ply, alpha, beta, isPV)
	}

	if ply > s.statistics.CurrentExtraSearchDepth {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	origAlpha := alpha
	ttMove := MoveNone
	key := p.ZobristKey()
	entry := s.tt.Probe(key)
	if entry != nil {
		s.statistics.TTHit++
		ttMove = entry.Move()
		if int(entry.Depth()) == depth {
			ttValue := valueFromTT(entry.Value(), ply)
			switch entry.Type() {
			case Exact:
				s.statistics.TTCuts++
				return ttValue
			case LowerBound:
				if ttValue >= beta {
					s.statistics.TTCuts++
					return ttValue
				}
			case UpperBound:
				if ttValue <= alpha {
					s.statistics.TTCuts++
					return ttValue
				}
			}
		}
		s.statistics.TTNoCuts++
	} else {
		s.statistics.TTMiss++
	}

	moves := s.mg[ply].GenerateLegalMoves(p, movegen.GenAll)
	if moves.Len() == 0 {
		if p.HasCheck() {
			s.statistics.Checkmates++
			return -ValueCheckMate + Value(ply)
		}
		s.statistics.Stalemates++
		return ValueDraw
	}

	s.orderMoves(p, moves, ply, ttMove)

	bestValue := Value(-ValueInf)
	bestMove := MoveNone

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)

		// the child's pv buffer may still hold a sibling's line
		s.pv[ply+1].Clear()

		p.DoMove(m)
		s.nodesVisited++

		ext := 0
		if p.HasCheck() {
			ext = 1
		}

		var value Value
		if i == 0 {
			value = -s.search(p, depth-1+ext, ply+1, -beta, -alpha, isPV)
		} else {
			value = -s.search(p, depth-1+ext, ply+1, -alpha-1, -alpha, false)
			if value > alpha && value < beta {
				s.statistics.PvsResearches++
				value = -s.search(p, depth-1+ext, ply+1, -beta, -alpha, true)
			}
		}
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
				savePV(m, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if i == 0 {
						s.statistics.BetaCuts1st++
					}
					s.storeKiller(p, ply, m)
					break
				}
			}
		}
	}

	var vtype ValueType
	switch {
	case bestValue <= origAlpha:
		vtype = UpperBound
	case bestValue >= beta:
		vtype = LowerBound
	default:
		vtype = Exact
	}
	s.tt.Put(key, bestMove, int8(depth), valueToTT(bestValue, ply), vtype, ValueNA)

	return bestValue
}

// qsearch extends search past the horizon with captures only, using
// standing pat and delta pruning to keep the tree small. SEE-based
// pruning of clearly losing captures is gated by config so it can be
// switched off for debugging.
func (s *Search) qsearch(p *position.Position, ply int, alpha, beta Value, isPV bool) Value {
	if s.stopConditions() {
		return ValueNA
	}

	if ply >= MaxDepth {
		return s.evaluate(p)
	}

	if ply > s.statistics.CurrentExtraSearchDepth {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	inCheck := p.HasCheck()

	var standPat Value
	if !inCheck {
		standPat = s.evaluate(p)
		s.statistics.Evaluations++
		if standPat >= beta {
			s.statistics.StandpatCuts++
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	var moves *moveslice.MoveSlice
	if inCheck {
		moves = s.mg[ply].GenerateLegalMoves(p, movegen.GenAll)
		if moves.Len() == 0 {
			s.statistics.Checkmates++
			return -ValueCheckMate + Value(ply)
		}
	} else {
		moves = s.mg[ply].GenerateLegalMoves(p, movegen.GenCap)
	}

	s.orderMoves(p, moves, -1, MoveNone)

	bestValue := standPat
	if inCheck {
		bestValue = Value(-ValueInf)
	}

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)

		if !inCheck {
			if config.Settings.Search.UseSEE && see(p, m) < 0 {
				continue
			}
			gain := capturedValue(p, m)
			if standPat+gain+Value(config.Settings.Search.QsDeltaMargin) <= alpha {
				continue
			}
		}

		p.DoMove(m)
		s.nodesVisited++
		value := -s.qsearch(p, ply+1, -beta, -alpha, isPV)
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestValue {
			bestValue = value
			if value > alpha {
				alpha = value
				if value >= beta {
					return value
				}
			}
		}
	}

	return bestValue
}

// evaluate scores a leaf position. The evaluator already reports from
// the perspective of the side to move, which is what negamax needs
// throughout.
func (s *Search) evaluate(p *position.Position) Value {
	return s.evaluator.Evaluate(p)
}

// capturedValue returns the material value of the piece a capturing
// move removes from the board, used by qsearch's delta pruning.
func capturedValue(p *position.Position, m Move) Value {
	if m.Type() == EnPassant {
		return Pawn.Value()
	}
	return p.PieceAt(m.To()).TypeOf().Value()
}

// orderMoves pushes the transposition table move and the two killers
// stored for this ply to the front, then scores every remaining move
// MVV-LVA (captures ranked by victim value minus attacker value,
// quiet moves all below any capture) and sorts by that score. ply < 0
// means "no killer slot", used for quiescence search.
func (s *Search) orderMoves(p *position.Position, moves *moveslice.MoveSlice, ply int, ttMove Move) {
	scores := make([]int, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		scores[i] = mvvLvaScore(p, moves.At(i))
	}
	moves.SortByScore(scores)

	if ply >= 0 {
		for k := 1; k >= 0; k-- {
			killer := s.killers[ply][k]
			if killer != MoveNone {
				moves.MoveToFront(killer)
			}
		}
	}
	if ttMove != MoveNone {
		moves.MoveToFront(ttMove)
	}
}

// mvvLvaScore favors capturing the most valuable victim with the
// least valuable attacker; quiet moves all score below zero so they
// never outrank a capture.
func mvvLvaScore(p *position.Position, m Move) int {
	if m.Type() == EnPassant {
		return int(Pawn.Value())*16 - int(Pawn.Value())
	}
	victim := p.PieceAt(m.To())
	if victim == PieceNone {
		return -1
	}
	attacker := p.PieceAt(m.From())
	score := int(victim.TypeOf().Value())*16 - int(attacker.TypeOf().Value())
	if score < 0 {
		// the king's sentinel value would otherwise push its captures below the quiet moves
		score = 0
	}
	return score
}

// storeKiller records a quiet beta-cutoff move for this ply, keeping
// the two most recent distinct killers.
func (s *Search) storeKiller(p *position.Position, ply int, m Move) {
	if p.IsCapture(m) {
		return
	}
	if s.killers[ply][0] == m {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}

// savePV copies move followed by the remainder of src into dest, the
// standard triangular PV table update used when a new best line is
// found at a node.
func savePV(move Move, src, dest *moveslice.MoveSlice) {
	dest.Clear()
	dest.PushBack(move)
	for i := 0; i < src.Len(); i++ {
		dest.PushBack(src.At(i))
	}
}

// valuesToScores converts a Value slice into the plain int slice
// moveslice.SortByScore expects.
func valuesToScores(values []Value) []int {
	scores := make([]int, len(values))
	for i, v := range values {
		scores[i] = int(v)
	}
	return scores
}

// valueToTT adjusts a mate value found ply levels from the current
// search root into one that is independent of where in the tree it
// was stored, so a shallower or deeper probe can rebase it correctly.
func valueToTT(value Value, ply int) Value {
	if !value.IsCheckMateValue() {
		return value
	}
	if value > 0 {
		return value + Value(ply)
	}
	return value - Value(ply)
}

// valueFromTT reverses valueToTT when reading a stored mate value back
// out at a different ply than it was stored at.
func valueFromTT(value Value, ply int) Value {
	if !value.IsCheckMateValue() {
		return value
	}
	if value > 0 {
		return value - Value(ply)
	}
	return value + Value(ply)
}

func maxValue(a, b Value) Value {
	if a > b {
		return a
	}
	return b
}

func minValue(a, b Value) Value {
	if a < b {
		return a
	}
	return b
}
