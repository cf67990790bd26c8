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
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/l0rdl0l/Calito-chess-engine/internal/config"
	"github.com/l0rdl0l/Calito-chess-engine/internal/evaluator"
	myLogging "github.com/l0rdl0l/Calito-chess-engine/internal/logging"
	"github.com/l0rdl0l/Calito-chess-engine/internal/movegen"
	"github.com/l0rdl0l/Calito-chess-engine/internal/moveslice"
	"github.com/l0rdl0l/Calito-chess-engine/internal/position"
	"github.com/l0rdl0l/Calito-chess-engine/internal/transpositiontable"
	. "github.com/l0rdl0l/Calito-chess-engine/internal/types"
	"github.com/l0rdl0l/Calito-chess-engine/internal/uciInterface"
	"github.com/l0rdl0l/Calito-chess-engine/internal/util"
)

var out = message.NewPrinter(language.German)

// Search represents the data structure for a chess engine search.
// Create new instance with NewSearch().
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	uciHandlerPtr uciInterface.UciDriver
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt        *transpositiontable.TtTable
	evaluator *evaluator.Evaluator

	lastSearchResult *Result

	stopFlag          *util.Bool
	startTime         time.Time
	hasResult         bool
	currentPosition   *position.Position
	searchLimits      *Limits
	timeLimit         time.Duration
	extraTime         time.Duration
	nodesVisited      uint64
	mg                []*movegen.Movegen
	pv                []*moveslice.MoveSlice
	rootMoves         *moveslice.MoveSlice
	rootMoveValues    []Value
	killers           [MaxDepth + 2][2]Move
	lastUciUpdateTime time.Time
	statistics        Statistics
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewSearch creates a new Search instance. If the given
// uci handler is nil all output will be sent to Stdout.
func NewSearch() *Search {
	s := &Search{
		log:           myLogging.GetLog(),
		slog:          myLogging.GetSearchLog(),
		uciHandlerPtr: nil,
		initSemaphore: semaphore.NewWeighted(int64(1)),
		isRunning:     semaphore.NewWeighted(int64(1)),
		stopFlag:      util.NewBool(false),
		tt:            nil,
		evaluator:     evaluator.NewEvaluator(),
	}
	return s
}

// NewGame stops any running searches and resets the search state
// to be ready for a different game. Any caches or states will be reset.
func (s *Search) NewGame() {
	s.StopSearch()
	if s.tt != nil {
		s.tt.Clear()
	}
}

// StartSearch starts the search on the given position with
// the given search limits. Search can be stopped with StopSearch().
// Search status can be checked with IsSearching()
// This takes a copy of the position and the search limits.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	// acquire init phase lock
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	// set position and searchLimits into the current search state
	s.currentPosition = &p
	s.searchLimits = &sl
	// run search
	go s.run(&p, &sl)
	// wait until search is running and initialization
	// is done before returning to caller
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch stops a running search as quickly as possible.
// The search stops gracefully and a result will be sent to UCI.
// This will wait for the search to be stopped before returning.
func (s *Search) StopSearch() {
	s.stopFlag.Store(true)
	s.WaitWhileSearching()
}

// PonderHit is called by the UCI user interface when the engine has
// been instructed to ponder before. The engine usually is in search
// mode without time control when this is sent. This command will
// then activate time control without interrupting the running search.
// If no search is running this has no effect.
func (s *Search) PonderHit() {
	if s.IsSearching() && s.searchLimits.Ponder {
		s.log.Debug("Ponderhit during search - activating time control")
		s.startTimer()
		return
	}
	s.log.Warning("Ponderhit received while not pondering")
}

// IsSearching checks if search is running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching checks if search is running and blocks until
// search has stopped.
func (s *Search) WaitWhileSearching() {
	// get and release semaphore. Will block if search is running
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// SetUciHandler sets the UCI handler to communicate with the
// UCI user interface. If not set output will be sent to Stdout.
func (s *Search) SetUciHandler(uciHandler uciInterface.UciDriver) {
	s.uciHandlerPtr = uciHandler
}

// GetUciHandlerPtr returns the current UciHandler or nil if none is set.
func (s *Search) GetUciHandlerPtr() uciInterface.UciDriver {
	return s.uciHandlerPtr
}

// IsReady signals the uciHandler that the search is ready.
// This is part if the UCI protocol to make sure a chess
// engine is initialized and ready to receive commands.
// When called this will initialize the search which might
// take a while. When finished this will call the uciHandler
// set in SetUciHandler to send "readyok" to the UCI user interface.
func (s *Search) IsReady() {
	s.initialize()
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendReadyOk()
	} else {
		s.log.Debug("uci >> readyok")
	}
}

// ClearHash clears the transposition table.
// Is ignored with a warning while searching.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		msg := "Can't clear hash while searching."
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return
	}
	if s.tt != nil {
		s.tt.Clear()
		s.sendInfoStringToUci("Hash cleared")
	}
}

// ResizeCache resizes and clears the transposition table.
// Is ignored with a warning while searching.
func (s *Search) ResizeCache() {
	if s.IsSearching() {
		msg := "Can't resize hash while searching."
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return
	}
	// just remove the tt pointer and re-initialize
	s.tt = nil
	s.initialize()
	// good point in time to let the garbage collector do its work
	s.log.Debug(util.GcWithStats())
	if s.tt != nil {
		s.sendInfoStringToUci(out.Sprintf("Hash resized: %s", s.tt.String()))
	}
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// run is called by StartSearch() in a separate goroutine. It runs the
// actual search until a search limit is reached or the search has
// been stopped by StopSearch().
func (s *Search) run(p *position.Position, sl *Limits) {
	// check if there is already a search running
	// and if not grab the isRunning semaphore
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		return
	}
	// release the running semaphore after the search has ended
	defer func() {
		s.isRunning.Release(1)
	}()

	// start search timer
	s.startTime = time.Now()

	s.log.Infof("Searching: %s", p.StringFen())

	// init new search run
	s.stopFlag.Store(false)
	s.hasResult = false
	s.timeLimit = 0
	s.extraTime = 0
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.lastUciUpdateTime = s.startTime
	s.initialize()

	// setup and report search limits
	s.setupSearchLimits(p, sl)

	// when not pondering and search is time controlled start timer
	if s.searchLimits.TimeControl && !s.searchLimits.Ponder {
		s.startTimer()
	}

	if s.tt != nil {
		s.log.Infof("Transposition Table: Using TT (%s)", s.tt.String())
	} else {
		s.log.Info("Transposition Table: Not using TT")
	}

	// Initialize ply based data
	s.mg = make([]*movegen.Movegen, 0, MaxDepth+2)
	s.pv = make([]*moveslice.MoveSlice, 0, MaxDepth+2)
	for i := 0; i <= MaxDepth+1; i++ {
		s.mg = append(s.mg, movegen.NewMoveGen())
		s.pv = append(s.pv, moveslice.NewMoveSlice(MaxDepth+1))
		s.killers[i][0] = MoveNone
		s.killers[i][1] = MoveNone
	}

	// release the init phase lock to signal the calling go routine
	// waiting in StartSearch() to return
	s.initSemaphore.Release(1)

	// Start the actual search with iterative deepening
	searchResult := s.iterativeDeepening(p)

	// If we arrive here during Ponder of Infinite mode and the search is not
	// stopped it means that the search was finished before it has been stopped
	// by stopSearchFlag or ponderhit,
	// We wait here until search has completed.
	if (s.searchLimits.Ponder || s.searchLimits.Infinite) && !s.stopFlag.Load() {
		s.log.Debug("Search finished before stopped or ponderhit! Waiting for stop/ponderhit to send result")
		for !s.stopFlag.Load() && (s.searchLimits.Ponder || s.searchLimits.Infinite) {
			time.Sleep(5 * time.Millisecond)
		}
	}

	// update search result with search time and pv
	searchResult.SearchTime = time.Since(s.startTime)
	searchResult.Pv = *s.pv[0]

	// print stats to log
	s.log.Info(out.Sprintf("Search finished after %s", searchResult.SearchTime))
	s.log.Info(out.Sprintf("Search depth was %d(%d) with %d nodes visited. NPS = %d nps",
		s.statistics.CurrentSearchDepth, s.statistics.CurrentExtraSearchDepth, s.nodesVisited,
		util.Nps(s.nodesVisited, searchResult.SearchTime)))
	s.log.Debugf("Search stats: %s", s.statistics.String())

	// print result to log
	s.log.Infof("Search result: %s", searchResult.String())

	// save result until overwritten by the next search
	s.lastSearchResult = searchResult
	s.hasResult = true

	// make sure timer stops as this could potentially still be running
	// when search finished without any stop signal/limit
	s.stopFlag.Store(true)

	// At the end of a search we send the result in any case even if
	// search has been stopped.
	s.sendResult(searchResult)
}

// iterativeDeepening starts a one ply search, then increments the
// search depth and does another search. This process is repeated
// until the time allocated for the search is exhausted or the depth
// limit is reached. Root moves are sorted by the previous iteration's
// values before each new iteration so the current best move always
// leads the list, which makes the result of an unfinished iteration
// still usable.
func (s *Search) iterativeDeepening(p *position.Position) *Result {
	// check repetition and 50 moves
	if s.checkDrawRepAnd50(p, 2) {
		msg := "Search called on DRAW by Repetition or 50-moves-rule"
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return &Result{BestValue: ValueDraw}
	}

	// generate all legal root moves
	s.rootMoves = s.mg[0].GenerateLegalMoves(p, movegen.GenAll)

	// a searchmoves option replaces the root move list with the legal
	// subset of the given moves, preserving the order they were given in
	if s.searchLimits.Moves.Len() > 0 {
		filtered := moveslice.NewMoveSlice(s.searchLimits.Moves.Len())
		for i := 0; i < s.searchLimits.Moves.Len(); i++ {
			if m := s.searchLimits.Moves.At(i); s.rootMoves.Contains(m) {
				filtered.PushBack(m)
			}
		}
		if filtered.Len() > 0 {
			s.rootMoves = filtered
		}
	}

	s.rootMoveValues = make([]Value, s.rootMoves.Len())

	// check if there are legal moves - if not it's mate or stalemate
	if s.rootMoves.Len() == 0 {
		if p.HasCheck() {
			s.statistics.Checkmates++
			msg := "Search called on a mate position"
			s.sendInfoStringToUci(msg)
			s.log.Warning(msg)
			return &Result{BestValue: -ValueCheckMate}
		}
		s.statistics.Stalemates++
		msg := "Search called on a stalemate position"
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return &Result{BestValue: ValueDraw}
	}

	// prepare max depth from search limits
	maxDepth := MaxDepth
	if s.searchLimits.Depth > 0 {
		maxDepth = s.searchLimits.Depth
	}
	if maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	// the full window must contain the mate range, otherwise a root
	// beta cutoff could settle for a longer mate than the best one
	alpha := -ValueInf
	beta := ValueInf

	for iterationDepth := 0; iterationDepth < maxDepth; {
		iterationDepth++

		s.statistics.CurrentIterationDepth = iterationDepth
		s.statistics.CurrentSearchDepth = iterationDepth
		if s.statistics.CurrentExtraSearchDepth < iterationDepth {
			s.statistics.CurrentExtraSearchDepth = iterationDepth
		}

		// killer moves only carry ordering information within one
		// iteration - stale killers from a shallower search hurt more
		// than they help
		for i := range s.killers {
			s.killers[i][0] = MoveNone
			s.killers[i][1] = MoveNone
		}

		iterationStart := time.Now()
		s.rootSearch(p, iterationDepth, alpha, beta)
		iterationTime := time.Since(iterationStart)

		// check if we need to stop
		// doing this after the first iteration ensures that
		// we have done at least one complete search and have
		// a pv (best) move
		// If we only have one move to play also stop the search
		if !s.stopConditions() && s.rootMoves.Len() > 1 {
			s.statistics.CurrentBestRootMove = s.rootMoves.At(0)
			s.statistics.CurrentBestRootMoveValue = s.rootMoveValues[0]
			s.sendIterationEndInfoToUci()
		} else {
			break
		}

		// a forced mate can't improve with more depth
		if s.rootMoveValues[0].IsCheckMateValue() {
			s.log.Debug("Mate found - stopping iterative deepening")
			break
		}

		// predictive time check: each iteration typically costs a
		// multiple of the previous one, so when the projected time for
		// the next depth would already overrun the budget there is no
		// point starting it
		if s.searchLimits.TimeControl && !s.searchLimits.Ponder && !s.searchLimits.Infinite {
			elapsed := time.Since(s.startTime)
			predicted := time.Duration(float64(iterationTime) * 1.5)
			if elapsed+predicted >= s.timeLimit+s.extraTime {
				s.log.Debugf("Estimated time for next iteration (%s) exceeds remaining time - stopping", predicted)
				break
			}
		}
	}

	// best move is the root move at index 0 after the rootSearch's
	// final sort, best value is its parallel score entry
	bestMove := s.rootMoves.At(0)
	bestValue := s.rootMoveValues[0]

	result := &Result{
		BestMove:    bestMove,
		BestValue:   bestValue,
		PonderMove:  MoveNone,
		SearchTime:  0,
		SearchDepth: s.statistics.CurrentIterationDepth,
		ExtraDepth:  s.statistics.CurrentExtraSearchDepth,
	}

	// see if we have a move we could ponder on
	if s.pv[0].Len() > 1 {
		result.PonderMove = s.pv[0].At(1)
	} else if s.tt != nil {
		p.DoMove(result.BestMove)
		ttEntry := s.tt.Probe(p.ZobristKey())
		p.UndoMove()
		if ttEntry != nil {
			s.statistics.TTHit++
			result.PonderMove = ttEntry.Move()
			s.log.Debugf(out.Sprintf("Using ponder move from hash: %s", result.PonderMove.StringUci()))
		}
	}

	return result
}

// initialize sets up the transposition table and other potentially
// time consuming setup tasks. This can be called several times
// without doing initialization again.
func (s *Search) initialize() {
	if s.tt == nil {
		sizeInMByte := config.Settings.Search.TTSizeMb
		if sizeInMByte <= 0 {
			sizeInMByte = 64
		}
		s.tt = transpositiontable.NewTtTable(sizeInMByte)
	}
}

// stopConditions checks if stopFlag is set or if nodesVisited have
// reached a potential maximum set in the search limits.
func (s *Search) stopConditions() bool {
	if s.stopFlag.Load() {
		return true
	}
	if s.searchLimits.Nodes > 0 && s.nodesVisited >= s.searchLimits.Nodes {
		s.stopFlag.Store(true)
	}
	if config.Settings.Search.MaxNodes > 0 && s.nodesVisited >= config.Settings.Search.MaxNodes {
		s.stopFlag.Store(true)
	}
	return s.stopFlag.Load()
}

// setupSearchLimits reports to log.debug on search limits for the search
// and sets up time control.
func (s *Search) setupSearchLimits(p *position.Position, sl *Limits) {
	if sl.Infinite {
		s.log.Info("Search mode: Infinite")
	}
	if sl.Ponder {
		s.log.Info("Search mode: Ponder")
	}
	if sl.Mate > 0 {
		s.log.Infof("Search mode: Search for mate in %d", sl.Mate)
	}
	if sl.TimeControl {
		s.timeLimit = s.setupTimeControl(p, sl)
		s.extraTime = 0
		if sl.MoveTime > 0 {
			s.log.Infof("Search mode: Time controlled: Time per move %s", sl.MoveTime)
		} else {
			s.log.Info(out.Sprintf("Search mode: Time controlled: White = %s (inc %s) Black = %s (inc %s) Moves to go: %d",
				sl.WhiteTime, sl.WhiteInc, sl.BlackTime, sl.BlackInc, sl.MovesToGo))
			s.log.Info(out.Sprintf("Search mode: Time limit     : %s", s.timeLimit))
		}
		if sl.Ponder {
			s.log.Info("Search mode: Ponder - time control postponed until ponderhit received")
		}
	} else {
		s.log.Info("Search mode: No time control")
	}
	if sl.Depth > 0 {
		s.log.Debugf("Search mode: Depth limited  : %d", sl.Depth)
	}
	if sl.Nodes > 0 {
		s.log.Infof(out.Sprintf("Search mode: Nodes limited  : %d", sl.Nodes))
	}
	if sl.Moves.Len() > 0 {
		s.log.Infof(out.Sprintf("Search mode: Moves limited  : %s", sl.Moves.StringUci()))
	}
}

// gamePhaseFactor returns a 0..1 measure of how much non-pawn material
// is still on the board, 1 being a full set of minor/major pieces and
// 0 an endgame with none left. setupTimeControl uses it to estimate
// how many moves remain in the game.
func gamePhaseFactor(p *position.Position) float64 {
	phase := 0
	for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
		phase += p.PiecesBb(pt).PopCount() * pt.GamePhaseValue()
	}
	return float64(phase) / float64(evaluator.GamePhaseMax)
}

// setupTimeControl sets up time control according to the given search
// limits and returns a limit on the duration for the current search.
func (s *Search) setupTimeControl(p *position.Position, sl *Limits) time.Duration {
	if sl.MoveTime > 0 { // mode time per move
		// we need a little room for executing the code
		duration := sl.MoveTime - (20 * time.Millisecond)
		if duration < 0 {
			s.log.Warningf("Very short move time: %s. ", sl.MoveTime)
			return sl.MoveTime
		}
		return duration
	}
	// remaining time - estimated time per move
	movesLeft := int64(sl.MovesToGo)
	if movesLeft == 0 { // default
		// we estimate minimum 15 more moves in final game phases
		// in early game phases this grows up to 40
		movesLeft = int64(15 + (25 * gamePhaseFactor(p)))
	}
	// time left for current player
	var timeLeft time.Duration
	switch p.NextPlayer() {
	case White:
		timeLeft = sl.WhiteTime + time.Duration(movesLeft*sl.WhiteInc.Nanoseconds())
	case Black:
		timeLeft = sl.BlackTime + time.Duration(movesLeft*sl.BlackInc.Nanoseconds())
	}
	// estimate time per move
	timeLimit := time.Duration(timeLeft.Nanoseconds() / movesLeft)
	// account for runtime of our code
	if timeLimit.Milliseconds() < 100 {
		// limits for very short available time reduced by another 20%
		timeLimit = time.Duration(int64(0.8 * float64(timeLimit.Nanoseconds())))
	} else {
		// reduced by 10%
		timeLimit = time.Duration(int64(0.9 * float64(timeLimit.Nanoseconds())))
	}
	return timeLimit
}

// startTimer starts a go routine which regularly checks the elapsed
// time against the time limit and extra time given. If time limit is
// reached this will set the stopFlag to true and terminate itself.
func (s *Search) startTimer() {
	go func() {
		timerStart := time.Now()
		s.log.Debugf("Timer started with time limit of %s", s.timeLimit)
		// as timeLimit changes due to extra times we can't set a fixed timeout
		// so we do a relaxed busy wait
		for time.Since(timerStart) < s.timeLimit+s.extraTime && !s.stopFlag.Load() {
			time.Sleep(5 * time.Millisecond)
		}
		if s.stopFlag.Load() {
			s.log.Debugf("Timer stopped early after wall time: %s (time limit %s and extra time %s)",
				time.Since(timerStart), s.timeLimit, s.extraTime)
		} else {
			s.log.Debugf("Timer stops search after wall time: %s (time limit %s and extra time %s)",
				time.Since(timerStart), s.timeLimit, s.extraTime)
			s.stopFlag.Store(true)
		}
	}()
}

// checkDrawRepAnd50 checks repetitions and the 50-moves rule. Returns
// true if the position is drawn for either reason.
func (s *Search) checkDrawRepAnd50(p *position.Position, distanceToRoot int) bool {
	return p.IsPositionDraw(distanceToRoot) || p.HalfMoveClock() >= 100
}

// sendResult sends the search result to the uci handler if a handler is available.
func (s *Search) sendResult(searchResult *Result) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendResult(searchResult.BestMove, searchResult.PonderMove)
	}
}

// sendInfoStringToUci sends an info string to the uci handler if a handler is available.
func (s *Search) sendInfoStringToUci(msg string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendInfoString(msg)
	}
}

// sendCurrentRootMove reports the root move currently being searched
// and its 1-based index, throttled to once a second like the rest of
// the search update stream.
func (s *Search) sendCurrentRootMove(m Move, moveNumber int) {
	if time.Since(s.lastUciUpdateTime) <= time.Second {
		return
	}
	s.sendSearchUpdateToUci()
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendCurrentRootMove(m, moveNumber)
	}
}

// sendSearchUpdateToUci sends UCI information about search - could be
// called each 500ms or so.
func (s *Search) sendSearchUpdateToUci() {
	if time.Since(s.lastUciUpdateTime) > time.Second {
		s.lastUciUpdateTime = time.Now()
		hashfull := 0
		if s.tt != nil {
			hashfull = s.tt.Hashfull()
		}
		if s.uciHandlerPtr != nil {
			s.uciHandlerPtr.SendSearchUpdate(
				s.statistics.CurrentSearchDepth,
				s.statistics.CurrentExtraSearchDepth,
				s.nodesVisited,
				s.getNps(),
				time.Since(s.startTime),
				hashfull)
		} else {
			s.log.Infof(out.Sprintf("depth %d seldepth %d nodes %d nps %d time %d hashful %d",
				s.statistics.CurrentSearchDepth,
				s.statistics.CurrentExtraSearchDepth,
				s.nodesVisited,
				s.getNps(),
				time.Since(s.startTime).Milliseconds(),
				hashfull))
		}
	}
}

// sendIterationEndInfoToUci sends UCI information after each depth iteration.
func (s *Search) sendIterationEndInfoToUci() {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendIterationEndInfo(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			*s.pv[0])
	} else {
		s.log.Infof(out.Sprintf("depth %d seldepth %d value %s nodes %d nps %d time %d pv %s",
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue.String(),
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime).Milliseconds(),
			s.pv[0].StringUci()))
	}
}

// getNps calculates current nps relative to s.startTime. Returns 0
// instead when the value exceeds 15M, which happens for very short times.
func (s *Search) getNps() uint64 {
	nps := util.Nps(s.nodesVisited, time.Since(s.startTime)+100)
	if nps > 15_000_000 { // sanity value for very short times
		nps = 0
	}
	return nps
}

// //////////////////////////////////////////////////////
// Getter and Setter
// //////////////////////////////////////////////////////

// LastSearchResult returns a copy of the last search result.
func (s *Search) LastSearchResult() Result {
	return *s.lastSearchResult
}

// NodesVisited returns the number of visited nodes in the last search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns a pointer to the search statistics of the last search.
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}
