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

package config

// searchConfiguration holds the knobs the search package actually
// reads. Opening-book and lazy-SMP/pondering-correctness fields the
// teacher carried are dropped: those features are explicit Non-goals.
type searchConfiguration struct {
	// Transposition table
	TTSizeMb int

	// Quiescence search
	QsDeltaMargin int16
	UseSEE        bool

	// Node budget safety valve (0 = unlimited, bounded only by time)
	MaxNodes uint64

	// Ponder acceptance (no behavioral effect beyond accepting the
	// UCI option - ponder scheduling itself lives in the controller)
	UsePonder bool
}

func init() {
	Settings.Search.TTSizeMb = 256
	Settings.Search.QsDeltaMargin = 200
	Settings.Search.UseSEE = true
	Settings.Search.MaxNodes = 0
	Settings.Search.UsePonder = true
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupSearch() {
	if Settings.Search.TTSizeMb <= 0 {
		Settings.Search.TTSizeMb = 256
	}
}
