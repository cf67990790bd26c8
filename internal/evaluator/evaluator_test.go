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

package evaluator

import (
	"os"
	"path"
	"runtime"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/l0rdl0l/Calito-chess-engine/internal/config"
	"github.com/l0rdl0l/Calito-chess-engine/internal/logging"
	"github.com/l0rdl0l/Calito-chess-engine/internal/position"
	. "github.com/l0rdl0l/Calito-chess-engine/internal/types"
)

var logTest *logging2.Logger

// make tests run in the projects root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

// Setup the tests.
func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestEvaluateSymmetric(t *testing.T) {
	config.Settings.Eval.Tempo = 0
	e := NewEvaluator()
	p := position.NewPosition()
	value := e.Evaluate(p)
	logTest.Debug(e.Report(p))
	assert.EqualValues(t, 0, value)
}

func TestEvaluateFromSideToMoveView(t *testing.T) {
	e := NewEvaluator()
	config.Settings.Eval.Tempo = 0
	p, _ := position.NewPositionFen("4k3/8/8/8/8/8/4Q3/4K3 w - -")
	white := e.Evaluate(p)

	p, _ = position.NewPositionFen("4k3/8/8/8/8/8/4Q3/4K3 b - -")
	black := e.Evaluate(p)

	assert.EqualValues(t, white, -black)
	assert.Greater(t, white, Value(0))
}

func TestEvaluateMaterialImbalance(t *testing.T) {
	e := NewEvaluator()
	p, _ := position.NewPositionFen("4k3/8/8/8/8/8/8/3QK3 w - -")
	value := e.Evaluate(p)
	assert.Greater(t, value, Value(800))
}

func TestPawnCacheIsUsed(t *testing.T) {
	config.Settings.Eval.UsePawnCache = true
	e := NewEvaluator()
	p := position.NewPosition()

	assert.EqualValues(t, 0, e.pawnCache.len())
	e.Evaluate(p)
	assert.EqualValues(t, 1, e.pawnCache.len())
	assert.EqualValues(t, 0, e.pawnCache.hits)

	e.Evaluate(p)
	assert.EqualValues(t, 1, e.pawnCache.hits)
}

func TestGamePhase(t *testing.T) {
	p := position.NewPosition()
	assert.EqualValues(t, GamePhaseMax, gamePhase(p))

	p, _ = position.NewPositionFen("4k3/8/8/8/8/8/8/4K3 w - -")
	assert.EqualValues(t, 0, gamePhase(p))
}
