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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/l0rdl0l/Calito-chess-engine/internal/config"
	"github.com/l0rdl0l/Calito-chess-engine/internal/movegen"
	"github.com/l0rdl0l/Calito-chess-engine/internal/moveslice"
	"github.com/l0rdl0l/Calito-chess-engine/internal/position"
	"github.com/l0rdl0l/Calito-chess-engine/internal/transpositiontable"
	. "github.com/l0rdl0l/Calito-chess-engine/internal/types"
	"github.com/l0rdl0l/Calito-chess-engine/internal/util"
)

func Test_savePV(t *testing.T) {
	src := moveslice.NewMoveSlice(10)
	dest := moveslice.NewMoveSlice(10)

	src.PushBack(Move(1234))
	src.PushBack(Move(2345))
	src.PushBack(Move(3456))
	src.PushBack(Move(4567))

	savePV(Move(9999), src, dest)

	assert.EqualValues(t, 5, dest.Len())
	assert.EqualValues(t, 9999, dest.At(0))
	assert.EqualValues(t, 4567, dest.At(4))
}

// newBareSearch builds a Search with the per-ply buffers initialized
// the way run() would, but without a worker goroutine, so search() can
// be driven directly. The TT is zero-sized so a probe can never return
// a deeper-than-requested value, which would make the comparison with
// a plain fixed-depth minimax unfair.
func newBareSearch() *Search {
	s := NewSearch()
	s.searchLimits = NewSearchLimits()
	s.tt = transpositiontable.NewTtTable(0)
	s.mg = make([]*movegen.Movegen, 0, MaxDepth+2)
	s.pv = make([]*moveslice.MoveSlice, 0, MaxDepth+2)
	for i := 0; i <= MaxDepth+1; i++ {
		s.mg = append(s.mg, movegen.NewMoveGen())
		s.pv = append(s.pv, moveslice.NewMoveSlice(MaxDepth+1))
	}
	return s
}

// mmSearch is a plain, window-free negamax over the identical tree
// search() explores: same legal move set, same check extension, same
// draw and mate handling, same quiescence leaves.
func mmSearch(s *Search, p *position.Position, depth, ply int) Value {
	if ply > 0 && p.IsPositionDraw(ply) {
		return ValueDraw
	}
	if depth <= 0 {
		return mmQsearch(s, p, ply)
	}
	moves := s.mg[ply].GenerateLegalMoves(p, movegen.GenAll).Clone()
	if moves.Len() == 0 {
		if p.HasCheck() {
			return -ValueCheckMate + Value(ply)
		}
		return ValueDraw
	}
	best := Value(-ValueInf)
	for i := 0; i < moves.Len(); i++ {
		p.DoMove(moves.At(i))
		ext := 0
		if p.HasCheck() {
			ext = 1
		}
		value := -mmSearch(s, p, depth-1+ext, ply+1)
		p.UndoMove()
		if value > best {
			best = value
		}
	}
	return best
}

func mmQsearch(s *Search, p *position.Position, ply int) Value {
	if ply >= MaxDepth {
		return s.evaluate(p)
	}
	inCheck := p.HasCheck()
	var best Value
	var moves *moveslice.MoveSlice
	if inCheck {
		best = Value(-ValueInf)
		moves = s.mg[ply].GenerateLegalMoves(p, movegen.GenAll)
		if moves.Len() == 0 {
			return -ValueCheckMate + Value(ply)
		}
	} else {
		best = s.evaluate(p)
		moves = s.mg[ply].GenerateLegalMoves(p, movegen.GenCap)
	}
	moves = moves.Clone()
	for i := 0; i < moves.Len(); i++ {
		p.DoMove(moves.At(i))
		value := -mmQsearch(s, p, ply+1)
		p.UndoMove()
		if value > best {
			best = value
		}
	}
	return best
}

// TestAlphaBetaMatchesMinimax checks the fail-soft window logic never
// changes the root value: with the heuristic quiescence pruning
// disabled, search() over a full window must return exactly what a
// plain minimax over the same tree returns.
func TestAlphaBetaMatchesMinimax(t *testing.T) {
	origSee := config.Settings.Search.UseSEE
	origMargin := config.Settings.Search.QsDeltaMargin
	config.Settings.Search.UseSEE = false
	config.Settings.Search.QsDeltaMargin = 10000
	defer func() {
		config.Settings.Search.UseSEE = origSee
		config.Settings.Search.QsDeltaMargin = origMargin
	}()

	fens := []string{
		"4k3/8/5K2/8/8/8/8/7R w - -",
		"k7/8/2p5/3p4/4P3/8/8/K7 w - -",
		"8/3k4/8/8/8/8/4K3/4R3 b - -",
		"7k/5Q2/6K1/8/8/8/8/8 w - -",
	}
	for _, fen := range fens {
		for depth := 1; depth <= 3; depth++ {
			ab := newBareSearch()
			p, _ := position.NewPositionFen(fen)
			got := ab.search(p, depth, 0, -ValueInf, ValueInf, true)

			mm := newBareSearch()
			pm, _ := position.NewPositionFen(fen)
			want := mmSearch(mm, pm, depth, 0)

			assert.Equal(t, want, got, "fen %s depth %d", fen, depth)
		}
	}
}

func TestMate(t *testing.T) {
	s := NewSearch()
	p, _ := position.NewPositionFen("8/8/8/8/8/3K4/R7/5k2 w - -")
	sl := NewSearchLimits()
	sl.Depth = 8
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	// mate in 4 for the side to move = 7 plies from the root
	assert.EqualValues(t, MateIn(7), s.lastSearchResult.BestValue)
}

func TestTimingTTSize(t *testing.T) {
	t.SkipNow()

	var results []string

	for ttSize := 1; ttSize < 10_000; ttSize = ttSize * 2 {
		out.Println("TT Size", ttSize)

		config.LogLevel = 2
		config.SearchLogLevel = 2
		config.Settings.Search.TTSizeMb = ttSize

		s := NewSearch()
		p := position.NewPosition()
		sl := NewSearchLimits()
		sl.TimeControl = true
		sl.MoveTime = 10 * time.Second
		s.StartSearch(*p, *sl)
		s.WaitWhileSearching()
		nps := util.Nps(s.nodesVisited, s.lastSearchResult.SearchTime)
		results = append(results, out.Sprintf("tt size: %-6d time: %-12s nodes: %-12d depth: %2d/%-2d nps: %-12d stats: %s tt: %s",
			ttSize, s.lastSearchResult.SearchTime, s.nodesVisited, s.lastSearchResult.SearchDepth, s.lastSearchResult.ExtraDepth,
			nps, s.statistics.String(), s.tt.String()))
	}

	out.Println()
	for _, r := range results {
		out.Println(r)
	}
}

func TestTiming(t *testing.T) {
	t.SkipNow()
	s := NewSearch()
	p := position.NewPosition("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3")
	sl := NewSearchLimits()
	sl.Depth = 10
	sl.MoveTime = 30 * time.Second
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	out.Println("TT  : ", s.tt.String())
	out.Println("NPS : ", util.Nps(s.nodesVisited, s.lastSearchResult.SearchTime))
}
