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

// Package uciInterface breaks the dependency cycle between search and
// uci: search needs to push progress back to whatever UCI transport is
// driving it without importing the uci package directly.
package uciInterface

import (
	"time"

	"github.com/l0rdl0l/Calito-chess-engine/internal/moveslice"
	. "github.com/l0rdl0l/Calito-chess-engine/internal/types"
)

// UciDriver is the set of outbound UCI messages the search package
// needs to be able to send while it runs. internal/uci.UciHandler is
// the production implementation.
type UciDriver interface {
	SendReadyOk()
	SendInfoString(info string)
	SendIterationEndInfo(depth, seldepth int, value Value, nodes, nps uint64, time time.Duration, pv moveslice.MoveSlice)
	SendSearchUpdate(depth, seldepth int, nodes, nps uint64, time time.Duration, hashfull int)
	SendCurrentRootMove(currMove Move, moveNumber int)
	SendCurrentLine(moveList moveslice.MoveSlice)
	SendResult(bestMove, ponderMove Move)
}
