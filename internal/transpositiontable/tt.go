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

// Package transpositiontable implements a 4-way set-associative
// transposition table (cache) for a chess engine search. The TtTable
// type is not thread safe and needs to be synchronized externally if
// used from multiple threads - in particular Resize and Clear must
// not be called while a search is using the table.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/l0rdl0l/Calito-chess-engine/internal/logging"
	. "github.com/l0rdl0l/Calito-chess-engine/internal/types"
	"github.com/l0rdl0l/Calito-chess-engine/internal/util"
)

var out = message.NewPrinter(language.German)

// MaxSizeInMB is the maximal memory usage of the tt.
const MaxSizeInMB = 65_536

// bucketSize is the number of entries scanned together as a
// replacement group, addressed by masking the low bits of the hash.
const bucketSize = 4

// TtTable is the transposition table, an array of buckets of
// bucketSize entries each. Create with NewTtTable().
type TtTable struct {
	log             *logging.Logger
	data            []TtEntry
	sizeInByte      uint64
	numberOfBuckets uint64
	bucketMask      uint64
	numberOfEntries uint64
	Stats           TtStats
}

// TtStats holds statistical data on tt usage.
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable sized to at most sizeInMByte
// megabytes. The actual number of buckets is the largest power of 2
// that fits, so the bucket index can be taken with a bit mask.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{
		log: myLogging.GetLog(),
	}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize reallocates the table for sizeInMByte megabytes and clears
// it. A no-op if the resulting bucket count is unchanged.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	sizeInByte := uint64(sizeInMByte) * MB
	bucketBytes := uint64(bucketSize * TtEntrySize)
	var numberOfBuckets uint64
	if sizeInByte >= bucketBytes {
		numberOfBuckets = 1 << uint64(math.Floor(math.Log2(float64(sizeInByte/bucketBytes))))
	}

	if numberOfBuckets == tt.numberOfBuckets && tt.data != nil {
		return
	}

	tt.numberOfBuckets = numberOfBuckets
	tt.bucketMask = numberOfBuckets - 1
	tt.sizeInByte = numberOfBuckets * bucketBytes
	tt.data = make([]TtEntry, numberOfBuckets*bucketSize)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}

	tt.log.Info(out.Sprintf("TT Size %d MByte, %d buckets of %d entries (entry=%dByte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.numberOfBuckets, bucketSize, unsafe.Sizeof(TtEntry{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// bucket returns the slice of bucketSize entries this key maps to.
func (tt *TtTable) bucket(key Key) []TtEntry {
	idx := (uint64(key) & tt.bucketMask) * bucketSize
	return tt.data[idx : idx+bucketSize]
}

// Probe scans the bucket for key and returns a pointer to the
// matching entry, or nil if none of the bucketSize slots store it.
func (tt *TtTable) Probe(key Key) *TtEntry {
	if tt.numberOfBuckets == 0 {
		return nil
	}
	tt.Stats.numberOfProbes++
	b := tt.bucket(key)
	for i := range b {
		if b[i].key == key {
			tt.Stats.numberOfHits++
			return &b[i]
		}
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put inserts a search result into the table following the
// bucket-scan replacement policy: an exact-key match is overwritten
// when the new depth is at least as deep, or when the new entry is
// EXACT and the stored one is not. Otherwise the minimum-priority
// slot in the bucket is replaced, unless that slot holds an EXACT
// entry and the new one is not. Non-EXACT entries never record a
// move when they are upper bounds.
func (tt *TtTable) Put(key Key, move Move, depth int8, value Value, vtype ValueType, eval Value) {
	if tt.numberOfBuckets == 0 {
		return
	}
	tt.Stats.numberOfPuts++
	b := tt.bucket(key)

	for i := range b {
		if b[i].key == key {
			if depth >= b[i].depth || (vtype == Exact && b[i].vtype != Exact) {
				tt.Stats.numberOfUpdates++
				tt.store(&b[i], key, move, depth, value, vtype, eval)
			}
			return
		}
	}

	worst := 0
	worstPriority := b[0].priority()
	for i := 1; i < len(b); i++ {
		if p := b[i].priority(); p < worstPriority {
			worstPriority = p
			worst = i
		}
	}

	if b[worst].key == KeyNone {
		tt.numberOfEntries++
	} else {
		tt.Stats.numberOfCollisions++
	}
	if b[worst].vtype == Exact && vtype != Exact {
		return
	}
	tt.Stats.numberOfOverwrites++
	tt.store(&b[worst], key, move, depth, value, vtype, eval)
}

func (tt *TtTable) store(e *TtEntry, key Key, move Move, depth int8, value Value, vtype ValueType, eval Value) {
	e.key = key
	if vtype == UpperBound {
		e.move = uint16(MoveNone)
	} else {
		e.move = uint16(move)
	}
	e.eval = int16(eval)
	e.value = int16(value)
	e.depth = depth
	e.vtype = vtype
}

// Clear zero-fills the whole table.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.numberOfBuckets*bucketSize)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the transposition table is in permill, as
// reported by the UCI "hashfull" info field.
func (tt *TtTable) Hashfull() int {
	total := tt.numberOfBuckets * bucketSize
	if total == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / total)
}

// String returns a human-readable summary of size and usage stats.
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB buckets %d entries %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.numberOfBuckets, tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of occupied entries in the tt.
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}
