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

package config

// evalConfiguration is the single runtime-replaceable parameter block
// spec.md §4.4 calls for: scalar weights for the evaluator's terms.
// Piece-square tables stay as compiled Go data in the evaluator
// package - too large to usefully hot-reload from a toml scalar block,
// and the teacher keeps its own positional tables the same way.
type evalConfiguration struct {
	Tempo int16

	UsePawnCache  bool
	PawnCacheSize int // in MB

	UseMobility   bool
	MobilityBonus [7]int16 // indexed by PieceType

	BishopPairBonus int16

	// per own pawn on a square of the same color as the bishop,
	// blocked pawns (piece directly ahead) penalized separately
	BishopPawnMalus        int16
	BishopPawnBlockedMalus int16

	PawnIsolatedMidMalus  int16
	PawnIsolatedEndMalus  int16
	PawnDoubledMidMalus   int16
	PawnDoubledEndMalus   int16
	PawnPassedMidBonus    [8]int16 // indexed by rank distance to promotion
	PawnPassedEndBonus    [8]int16
	PawnBlockedMidMalus   int16
	PawnBlockedEndMalus   int16

	RookOnOpenFileBonus int16
	RookOnHalfOpenBonus int16

	OutpostBonus int16

	KingRingAttackWeight [7]int16 // indexed by attacker PieceType
	KingRingDefendBonus  int16
	KingOpenLineMalus    int16   // per unshielded step on each of the eight rays from the king
	KingDangerEgScale    float64 // king-danger contribution scaled down in eg
}

func init() {
	Settings.Eval.Tempo = 18

	Settings.Eval.UsePawnCache = true
	Settings.Eval.PawnCacheSize = 16

	Settings.Eval.UseMobility = true
	Settings.Eval.MobilityBonus = [7]int16{0, 0, 0, 4, 5, 3, 2}

	Settings.Eval.BishopPairBonus = 30
	Settings.Eval.BishopPawnMalus = -4
	Settings.Eval.BishopPawnBlockedMalus = -8

	Settings.Eval.PawnIsolatedMidMalus = -10
	Settings.Eval.PawnIsolatedEndMalus = -20
	Settings.Eval.PawnDoubledMidMalus = -10
	Settings.Eval.PawnDoubledEndMalus = -25
	Settings.Eval.PawnPassedMidBonus = [8]int16{0, 90, 60, 35, 20, 10, 5, 0}
	Settings.Eval.PawnPassedEndBonus = [8]int16{0, 150, 100, 60, 35, 20, 10, 0}
	Settings.Eval.PawnBlockedMidMalus = -5
	Settings.Eval.PawnBlockedEndMalus = -15

	Settings.Eval.RookOnOpenFileBonus = 25
	Settings.Eval.RookOnHalfOpenBonus = 12

	Settings.Eval.OutpostBonus = 20

	Settings.Eval.KingRingAttackWeight = [7]int16{0, 0, 0, 2, 2, 3, 4}
	Settings.Eval.KingRingDefendBonus = 1
	Settings.Eval.KingOpenLineMalus = 3
	Settings.Eval.KingDangerEgScale = 0.3
}

// set defaults for configurations here in case a configuration is not
// available from the config file.
func setupEval() {
}
