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
	"fmt"
	"time"

	"github.com/l0rdl0l/Calito-chess-engine/internal/moveslice"
	. "github.com/l0rdl0l/Calito-chess-engine/internal/types"
)

// Result bundles everything a finished (or stopped) search iteration
// reports: the move to play, its value, the ponder move the opponent
// is expected to answer with and the principal variation backing it.
type Result struct {
	BestMove    Move
	BestValue   Value
	PonderMove  Move
	SearchTime  time.Duration
	SearchDepth int
	ExtraDepth  int
	Pv          moveslice.MoveSlice
}

// String renders the result the way it is logged to the search log
// and printed by "go" related test assertions.
func (r *Result) String() string {
	return fmt.Sprintf("Best Move: %s (%s) Ponder Move: %s Depth: %d/%d Time: %s PV: %s",
		r.BestMove.StringUci(), r.BestValue.String(), r.PonderMove.StringUci(),
		r.SearchDepth, r.ExtraDepth, r.SearchTime, r.Pv.StringUci())
}
