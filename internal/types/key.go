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

import "strconv"

// Key is a 64-bit Zobrist hash identifying a position. Both position
// and transpositiontable need it; it lives here so neither package
// has to import the other just for this one type.
type Key uint64

// KeyNone is the zero key, never produced by a real Zobrist hash build
// (the side-to-move term alone makes an all-zero hash unreachable).
const KeyNone Key = 0

// MB is one megabyte, used throughout for sizing memory-bounded tables
// (transposition table, pawn cache) from a MiB config value.
const MB = 1024 * 1024

// MaxMoves bounds the number of plies a single game can reach, used to
// size the position's fixed history array so make/undo never allocates.
const MaxMoves = 512

// MaxLegalMoves is a safe upper bound on the number of legal moves any
// chess position can have, used to size move generator output buffers.
const MaxLegalMoves = 343

func (k Key) String() string {
	return strconv.FormatUint(uint64(k), 16)
}
