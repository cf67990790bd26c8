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

// Package position represents the board state of a chess game: a
// square->piece array kept coherent with six per-kind bitboards, a
// bitboard of the side to move's own pieces, make/undo via a fixed
// history stack, and an incrementally maintained Zobrist hash.
//
// Create a new instance with NewPosition(...) to get the chess start
// position, or NewPositionFen(fen) for an arbitrary one.
package position

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/l0rdl0l/Calito-chess-engine/internal/assert"
	myLogging "github.com/l0rdl0l/Calito-chess-engine/internal/logging"
	. "github.com/l0rdl0l/Calito-chess-engine/internal/types"
)

var log *logging.Logger

var packageInitialized = false

// initialize package: Init is the dot-imported types.Init and builds
// the bitboard tables the zobrist setup and every Position depend on.
// It is idempotent, so tests calling it again from their own TestMain
// is harmless.
func init() {
	if !packageInitialized {
		Init()
		initZobrist()
		packageInitialized = true
	}
}

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const maxHistory = MaxMoves

// state flag for the cached HasCheck() result
const (
	flagTBD int = iota
	flagFalse
	flagTrue
)

// Position is the central mutable board state. Construct it with
// NewPosition or NewPositionFen; mutate it only via DoMove/UndoMove
// (strict LIFO).
type Position struct {
	// zobristKey is the incremental hash of the current state, used as
	// the transposition table key.
	zobristKey Key

	// piecesBb[pt] is the set of squares occupied by piece kind pt,
	// regardless of color - the simplified, six-bitboard model.
	piecesBb [PtLength]Bitboard
	// ownPieces is the set of squares occupied by the side to move.
	ownPieces Bitboard
	// occupied is the set of all occupied squares.
	occupied Bitboard
	// board is redundant with the bitboards above; kept coherent on
	// every mutation so callers can do O(1) square lookups.
	board [SqLength]Piece

	nextPlayer      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	fullMoveNumber  int

	kingSquare   [ColorLength]Square
	hasCheckFlag int

	historyCounter int
	history        [maxHistory]historyState
}

// historyState is one entry of the make/undo stack: everything needed
// to invert a move without a full board copy. The per-kind bitboards
// and the board array are NOT saved here; undo restores them by
// inverting the move instead, using capturedPiece to know what to put
// back.
type historyState struct {
	zobristKey      Key
	move            Move
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	ownPieces       Bitboard
	occupied        Bitboard
	hasCheckFlag    int
}

// //////////////////////////////////////////////////////////
// Construction
// //////////////////////////////////////////////////////////

// NewPosition creates a new position. Called without an argument it
// is the standard starting position; an extra argument is parsed as a
// FEN string (a malformed FEN falls back silently to the start
// position - use NewPositionFen directly to observe the error).
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		p, _ := NewPositionFen(StartFen)
		return p
	}
	p, _ := NewPositionFen(fen[0])
	return p
}

// NewPositionFen creates a position from the given FEN string. Returns
// an error if the FEN is malformed.
func NewPositionFen(fen string) (*Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{}
	if err := p.setupBoard(fen); err != nil {
		log.Errorf("fen for position setup not valid and position can't be created: %s", err)
		return nil, err
	}
	return p, nil
}

var fenRegex = regexp.MustCompile(
	`^\s*([pnbrqkPNBRQK1-8]+(?:/[pnbrqkPNBRQK1-8]+){7})\s+([wb])\s+(-|[KQkq]{1,4})\s+(-|[a-h][36])(?:\s+(\d+)\s+(\d+))?\s*$`)

func (p *Position) setupBoard(fen string) error {
	m := fenRegex.FindStringSubmatch(fen)
	if m == nil {
		return fmt.Errorf("InvalidFEN: %q is not a well-formed FEN string", fen)
	}

	*p = Position{}
	p.enPassantSquare = SqNone
	for c := White; c < Color(ColorLength); c++ {
		p.kingSquare[c] = SqNone
	}

	sq := SqA8
	for _, r := range strings.Split(m[1], "/") {
		for _, ch := range r {
			if ch >= '1' && ch <= '8' {
				sq += Square(ch - '0')
				continue
			}
			pc := PieceFromChar(string(ch))
			if pc == PieceNone {
				return fmt.Errorf("InvalidFEN: unexpected piece character %q in %q", ch, fen)
			}
			p.putPieceAt(sq, pc)
			if pc.TypeOf() == King {
				p.kingSquare[pc.ColorOf()] = sq
			}
			sq++
		}
	}
	if p.kingSquare[White] == SqNone || p.kingSquare[Black] == SqNone {
		return fmt.Errorf("InvalidFEN: both sides must have exactly one king: %q", fen)
	}

	var whitePieces Bitboard
	for s := SqA8; s < SqLength; s++ {
		if p.board[s] != PieceNone && p.board[s].ColorOf() == White {
			whitePieces = whitePieces.PushSquare(s)
		}
	}

	if m[2] == "b" {
		p.nextPlayer = Black
		p.zobristKey ^= zobristBase.nextPlayer
		p.ownPieces = p.occupied &^ whitePieces
	} else {
		p.nextPlayer = White
		p.ownPieces = whitePieces
	}

	if m[3] != "-" {
		for _, ch := range m[3] {
			switch ch {
			case 'K':
				p.castlingRights.Add(CastlingWhiteOO)
			case 'Q':
				p.castlingRights.Add(CastlingWhiteOOO)
			case 'k':
				p.castlingRights.Add(CastlingBlackOO)
			case 'q':
				p.castlingRights.Add(CastlingBlackOOO)
			}
		}
	}
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]

	if m[4] != "-" {
		p.enPassantSquare = MakeSquare(m[4])
		p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
	}

	p.halfMoveClock = 0
	if m[5] != "" {
		if v, err := strconv.Atoi(m[5]); err == nil {
			p.halfMoveClock = v
		}
	}
	p.fullMoveNumber = 1
	if m[6] != "" {
		if v, err := strconv.Atoi(m[6]); err == nil && v >= 1 {
			p.fullMoveNumber = v
		}
	}

	return nil
}

// //////////////////////////////////////////////////////////
// Accessors
// //////////////////////////////////////////////////////////

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color { return p.nextPlayer }

// PieceAt returns the piece on sq, or PieceNone if it is empty.
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// PiecesBb returns the squares occupied by piece kind pt, either color.
func (p *Position) PiecesBb(pt PieceType) Bitboard { return p.piecesBb[pt] }

// OwnPieces returns the squares occupied by the side to move.
func (p *Position) OwnPieces() Bitboard { return p.ownPieces }

// EnemyPieces returns the squares occupied by the side not to move.
func (p *Position) EnemyPieces() Bitboard { return p.occupied &^ p.ownPieces }

// Occupied returns the set of all occupied squares.
func (p *Position) Occupied() Bitboard { return p.occupied }

// ColorPieces returns the squares occupied by color c, regardless of
// whose turn it is.
func (p *Position) ColorPieces(c Color) Bitboard {
	if p.nextPlayer == c {
		return p.ownPieces
	}
	return p.occupied &^ p.ownPieces
}

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// CastlingRights returns the current castling rights nibble.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the en passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// ZobristKey returns the incremental Zobrist hash of the position.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// PawnKey returns a Zobrist hash built only from the pawns currently on
// the board. It uses the same piece-square table as ZobristKey so it
// stays consistent with it, but is computed from scratch since pawn
// structure changes are rare enough that incremental maintenance isn't
// worth the extra bookkeeping.
func (p *Position) PawnKey() Key {
	var key Key
	pawns := p.piecesBb[Pawn]
	for pawns != 0 {
		var sq Square
		sq, pawns = pawns.PopLsb()
		key ^= zobristBase.pieces[p.board[sq]][sq]
	}
	return key
}

// HalfMoveClock returns the number of half moves since the last pawn
// move or capture.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// FullMoveNumber returns the current full move number (starts at 1,
// incremented after Black moves).
func (p *Position) FullMoveNumber() int { return p.fullMoveNumber }

// HistoryDepth returns the number of moves made since construction.
func (p *Position) HistoryDepth() int { return p.historyCounter }

// LastMove returns the most recently made move, or MoveNone if none
// has been made yet.
func (p *Position) LastMove() Move {
	if p.historyCounter == 0 {
		return MoveNone
	}
	return p.history[p.historyCounter-1].move
}

// //////////////////////////////////////////////////////////
// Move make / undo
// //////////////////////////////////////////////////////////

// DoMove commits m to the board. The caller is responsible for only
// ever passing a pseudo-legal move generated against the current
// position; DoMove does not itself verify legality.
func (p *Position) DoMove(m Move) {
	fromSq := m.From()
	toSq := m.To()
	us := p.nextPlayer
	them := us.Flip()
	fromPc := p.board[fromSq]
	fromPt := fromPc.TypeOf()

	capturedSq := toSq
	if m.Type() == EnPassant {
		capturedSq = toSq.To(them.PawnPushDirection())
	}
	capturedPc := p.board[capturedSq]

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "Position DoMove: invalid move %s", m.String())
		assert.Assert(fromPc != PieceNone, "Position DoMove: no piece on %s for move %s", fromSq.String(), m.String())
		assert.Assert(fromPc.ColorOf() == us, "Position DoMove: piece on %s does not belong to side to move", fromSq.String())
		assert.Assert(capturedPc.TypeOf() != King, "Position DoMove: king cannot be captured")
	}

	// 1. push history: captured piece, old rights/ep/clock, old
	// own-pieces/occupied (for O(1) undo) and the hash before the move.
	h := &p.history[p.historyCounter]
	h.zobristKey = p.zobristKey
	h.move = m
	h.capturedPiece = capturedPc
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	h.ownPieces = p.ownPieces
	h.occupied = p.occupied
	h.hasCheckFlag = p.hasCheckFlag
	p.historyCounter++

	// 2. own-pieces flips to the complement: the new side to move's
	// pieces are exactly the old enemy pieces minus whatever was just
	// captured from them (nothing else about their pieces changes).
	p.ownPieces = (p.occupied &^ p.ownPieces) &^ Bit(capturedSq)

	// 3/4. remove the captured piece (handles both a normal capture on
	// toSq and an en passant victim one rank behind it), then move the
	// piece's bit from fromSq to toSq.
	if capturedPc != PieceNone {
		p.removePieceAt(capturedSq, capturedPc)
	}
	p.movePieceAt(fromSq, toSq, fromPc)
	if fromPt == King {
		p.kingSquare[us] = toSq
	}

	// 5. castling also relocates the rook.
	if m.Type() == Castling {
		switch toSq {
		case SqG1:
			p.movePieceAt(SqH1, SqF1, WhiteRook)
		case SqC1:
			p.movePieceAt(SqA1, SqD1, WhiteRook)
		case SqG8:
			p.movePieceAt(SqH8, SqF8, BlackRook)
		case SqC8:
			p.movePieceAt(SqA8, SqD8, BlackRook)
		default:
			panic(fmt.Sprintf("Position DoMove: invalid castle destination %s", toSq.String()))
		}
	}

	// 6. promotion replaces the pawn just placed on toSq.
	if m.Type() == Promotion {
		p.removePieceAt(toSq, fromPc)
		p.putPieceAt(toSq, MakePiece(us, m.PromotionType()))
	}

	// 7. en passant file: only set when a pawn double-push leaves an
	// enemy pawn adjacent on the destination rank.
	p.clearEnPassant()
	if fromPt == Pawn && squareDistance(fromSq, toSq) == 2 {
		epSq := toSq.To(them.PawnPushDirection())
		enemyPawn := MakePiece(them, Pawn)
		adjacent := (toSq.FileOf() > FileA && p.board[toSq.To(West)] == enemyPawn) ||
			(toSq.FileOf() < FileH && p.board[toSq.To(East)] == enemyPawn)
		if adjacent {
			p.enPassantSquare = epSq
			p.zobristKey ^= zobristBase.enPassantFile[epSq.FileOf()]
		}
	}

	// 8. castling rights: king moves drop both of that color's rights;
	// touching a rook's home corner (as source or destination of any
	// move) drops that one right.
	if p.castlingRights != CastlingNone {
		lost := castlingRightsLost(fromSq) | castlingRightsLost(toSq)
		if fromPt == King {
			lost |= colorCastlingRights(us)
		}
		if lost != CastlingNone && p.castlingRights.Has(lost) {
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
			p.castlingRights.Remove(lost)
			p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
		}
	}

	// 9. half-move clock.
	if capturedPc != PieceNone || fromPt == Pawn {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	// 10. full-move counter and side to move.
	if us == Black {
		p.fullMoveNumber++
	}
	p.hasCheckFlag = flagTBD
	p.nextPlayer = them
	p.zobristKey ^= zobristBase.nextPlayer
}

// UndoMove reverts the most recent DoMove.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCounter > 0, "Position UndoMove: cannot undo from the initial position")
	}

	p.historyCounter--
	h := &p.history[p.historyCounter]
	m := h.move
	them := p.nextPlayer
	us := them.Flip()

	fromSq := m.From()
	toSq := m.To()
	movedPc := p.board[toSq]

	if m.Type() == Promotion {
		p.removePieceAt(toSq, movedPc)
		movedPc = MakePiece(us, Pawn)
		p.putPieceAt(toSq, movedPc)
	}

	if m.Type() == Castling {
		switch toSq {
		case SqG1:
			p.movePieceAt(SqF1, SqH1, WhiteRook)
		case SqC1:
			p.movePieceAt(SqD1, SqA1, WhiteRook)
		case SqG8:
			p.movePieceAt(SqF8, SqH8, BlackRook)
		case SqC8:
			p.movePieceAt(SqD8, SqA8, BlackRook)
		}
	}

	p.movePieceAt(toSq, fromSq, movedPc)
	if movedPc.TypeOf() == King {
		p.kingSquare[us] = fromSq
	}

	capturedSq := toSq
	if m.Type() == EnPassant {
		capturedSq = toSq.To(them.PawnPushDirection())
	}
	if h.capturedPiece != PieceNone {
		p.putPieceAt(capturedSq, h.capturedPiece)
	}

	// the rest restores in O(1) from the saved history entry.
	p.ownPieces = h.ownPieces
	p.occupied = h.occupied
	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.hasCheckFlag = h.hasCheckFlag
	p.zobristKey = h.zobristKey
	if us == Black {
		p.fullMoveNumber--
	}
	p.nextPlayer = us
}

// DoNullMove passes the move without changing the board; nothing in the
// search calls it. The history entry is still pushed so
// UndoNullMove can restore en passant/side-to-move/hash exactly.
func (p *Position) DoNullMove() {
	h := &p.history[p.historyCounter]
	h.zobristKey = p.zobristKey
	h.move = MoveNone
	h.capturedPiece = PieceNone
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	h.ownPieces = p.ownPieces
	h.occupied = p.occupied
	h.hasCheckFlag = p.hasCheckFlag
	p.historyCounter++

	p.clearEnPassant()
	p.hasCheckFlag = flagTBD
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBase.nextPlayer
}

// UndoNullMove reverts DoNullMove.
func (p *Position) UndoNullMove() {
	p.historyCounter--
	h := &p.history[p.historyCounter]
	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.hasCheckFlag = h.hasCheckFlag
	p.zobristKey = h.zobristKey
	p.nextPlayer = p.nextPlayer.Flip()
}

// //////////////////////////////////////////////////////////
// Queries
// //////////////////////////////////////////////////////////

// IsCapture reports whether m captures a piece, including en passant.
func (p *Position) IsCapture(m Move) bool {
	return m.Type() == EnPassant || p.board[m.To()] != PieceNone
}

// HasCheck reports whether the side to move is currently in check.
// Cached per position; repeated calls without an intervening
// DoMove/UndoMove are cheap.
func (p *Position) HasCheck() bool {
	if p.hasCheckFlag != flagTBD {
		return p.hasCheckFlag == flagTrue
	}
	check := p.WouldKingBeInCheck(p.kingSquare[p.nextPlayer])
	if check {
		p.hasCheckFlag = flagTrue
	} else {
		p.hasCheckFlag = flagFalse
	}
	return check
}

// IsLegalMove reports whether m, played from the current position,
// leaves the mover's own king safe. Pseudo-legal generators rely on
// this as the final filter: it makes the move, tests whether the
// mover's king square is attacked, then unmakes it. A castling move is
// also rejected when the king starts in check or passes over an
// attacked square.
func (p *Position) IsLegalMove(m Move) bool {
	us := p.nextPlayer
	if m.Type() == Castling {
		from := m.From()
		passed := from.To(East)
		if m.To() < from {
			passed = from.To(West)
		}
		if p.WouldKingBeInCheck(from) || p.WouldKingBeInCheck(passed) {
			return false
		}
	}
	p.DoMove(m)
	legal := !p.IsSquareAttackedBy(p.kingSquare[us], us.Flip())
	p.UndoMove()
	return legal
}

// GivesCheck reports whether m, played from the current position,
// would leave the opponent's king in check. Used to annotate PV
// output and to extend search depth on checking moves.
func (p *Position) GivesCheck(m Move) bool {
	p.DoMove(m)
	check := p.HasCheck()
	p.UndoMove()
	return check
}

var orthogonalDirs = [4]Direction{North, East, South, West}
var diagonalDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}

// WouldKingBeInCheck reports whether a king of the side to move
// standing on sq would be attacked by any enemy piece, with every
// other piece held fixed. The side-to-move's own king is excluded from
// the occupancy used for ray tracing, so it can never shield itself.
// Used both to test whether the actual king is in check and, during
// move generation, to test hypothetical king destinations and en
// passant captures.
func (p *Position) WouldKingBeInCheck(sq Square) bool {
	us := p.nextPlayer
	occ := p.occupied &^ Bit(p.kingSquare[us])
	return p.isAttackedWithOcc(sq, us.Flip(), occ)
}

// IsSquareAttackedBy reports whether sq is attacked by any piece of
// color by, given the position's actual current occupancy. Unlike
// WouldKingBeInCheck it is not tied to the side to move, so it is the
// primitive legality filtering uses after DoMove: once a move has been
// made, the mover's king is attacked iff IsSquareAttackedBy(kingSquare,
// opponent) reports true. An enemy pawn that can be captured en passant
// counts as attacked.
func (p *Position) IsSquareAttackedBy(sq Square, by Color) bool {
	if p.isAttackedWithOcc(sq, by, p.occupied) {
		return true
	}
	// a pawn that has just double-pushed onto sq can also be taken en passant
	ep := p.enPassantSquare
	if ep != SqNone && ep.To(by.Flip().PawnPushDirection()) == sq &&
		p.board[sq] == MakePiece(by.Flip(), Pawn) {
		return PawnAttacks(by.Flip(), ep)&p.piecesBb[Pawn]&p.ColorPieces(by) != 0
	}
	return false
}

func (p *Position) isAttackedWithOcc(sq Square, by Color, occ Bitboard) bool {
	attackers := p.ColorPieces(by)
	if KnightAttacks(sq)&p.piecesBb[Knight]&attackers != 0 {
		return true
	}
	if PawnAttacks(by.Flip(), sq)&p.piecesBb[Pawn]&attackers != 0 {
		return true
	}
	if KingAttacks(sq)&p.piecesBb[King]&attackers != 0 {
		return true
	}
	rookLike := attackers & (p.piecesBb[Rook] | p.piecesBb[Queen])
	for _, d := range orthogonalDirs {
		if FirstBlocker(d, sq, occ)&rookLike != 0 {
			return true
		}
	}
	bishopLike := attackers & (p.piecesBb[Bishop] | p.piecesBb[Queen])
	for _, d := range diagonalDirs {
		if FirstBlocker(d, sq, occ)&bishopLike != 0 {
			return true
		}
	}
	return false
}

// IsPositionDraw reports whether the position is a draw by the
// 50-move rule, by repetition, or by insufficient material.
// distanceToRoot is the current search node's ply distance from the
// root of the current search; ancestors within that distance count a
// single repetition as a draw, while ancestors from before the search
// began require a genuine 3-fold repetition.
func (p *Position) IsPositionDraw(distanceToRoot int) bool {
	if p.halfMoveClock >= 100 {
		return true
	}
	if p.hasRepetition(distanceToRoot) {
		return true
	}
	return p.hasInsufficientMaterial()
}

func (p *Position) hasRepetition(distanceToRoot int) bool {
	matches := 0
	lastHalfMoveClock := p.halfMoveClock
	for i := p.historyCounter - 2; i >= 0; i -= 2 {
		// every time the half move clock was reset by an irreversible
		// move, no position before it can possibly recur.
		if p.history[i].halfMoveClock >= lastHalfMoveClock {
			break
		}
		lastHalfMoveClock = p.history[i].halfMoveClock
		if p.history[i].zobristKey != p.zobristKey {
			continue
		}
		matches++
		if p.historyCounter-i <= distanceToRoot {
			return true
		}
		if matches >= 2 {
			return true
		}
	}
	return false
}

// HasInsufficientMaterial reports true only when there are no pawns,
// rooks or queens and either at most one minor piece is left in total,
// or the only minor pieces are two bishops, one per side, on squares of
// the same color. Other minor-piece endings (e.g. two knights against a
// bare king) are not reported as insufficient.
func (p *Position) HasInsufficientMaterial() bool {
	return p.hasInsufficientMaterial()
}

func (p *Position) hasInsufficientMaterial() bool {
	if p.piecesBb[Pawn] != 0 || p.piecesBb[Rook] != 0 || p.piecesBb[Queen] != 0 {
		return false
	}
	minors := p.piecesBb[Knight] | p.piecesBb[Bishop]
	if minors.PopCount() <= 1 {
		return true
	}
	bishops := p.piecesBb[Bishop]
	if bishops.PopCount() == 2 {
		sq1, sq2 := bishops.Lsb(), bishops.Msb()
		if squareIsLight(sq1) == squareIsLight(sq2) {
			white := p.ColorPieces(White)
			if white.Has(sq1) != white.Has(sq2) {
				return true
			}
		}
	}
	return false
}

func squareIsLight(sq Square) bool {
	return (int(sq.FileOf())+int(sq.RankOf()))%2 == 1
}

func squareDistance(a, b Square) int {
	fd := int(a.FileOf()) - int(b.FileOf())
	rd := int(a.RankOf()) - int(b.RankOf())
	if fd < 0 {
		fd = -fd
	}
	if rd < 0 {
		rd = -rd
	}
	if fd > rd {
		return fd
	}
	return rd
}

// //////////////////////////////////////////////////////////
// Internal board surgery
// //////////////////////////////////////////////////////////

func (p *Position) putPieceAt(sq Square, pc Piece) {
	p.board[sq] = pc
	p.piecesBb[pc.TypeOf()] = p.piecesBb[pc.TypeOf()].PushSquare(sq)
	p.occupied = p.occupied.PushSquare(sq)
	p.zobristKey ^= zobristBase.pieces[pc][sq]
}

func (p *Position) removePieceAt(sq Square, pc Piece) {
	p.board[sq] = PieceNone
	p.piecesBb[pc.TypeOf()] &^= Bit(sq)
	p.occupied &^= Bit(sq)
	p.zobristKey ^= zobristBase.pieces[pc][sq]
}

func (p *Position) movePieceAt(from, to Square, pc Piece) {
	p.removePieceAt(from, pc)
	p.putPieceAt(to, pc)
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		p.enPassantSquare = SqNone
	}
}

func castlingRightsLost(sq Square) CastlingRights {
	switch sq {
	case SqA1:
		return CastlingWhiteOOO
	case SqH1:
		return CastlingWhiteOO
	case SqA8:
		return CastlingBlackOOO
	case SqH8:
		return CastlingBlackOO
	default:
		return CastlingNone
	}
}

func colorCastlingRights(c Color) CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}

// //////////////////////////////////////////////////////////
// String output
// //////////////////////////////////////////////////////////

// StringFen is an alias for Fen, kept for callers that read more
// naturally with the explicit "String" prefix (log lines, UCI debug
// output).
func (p *Position) StringFen() string {
	return p.Fen()
}

// Fen renders the position back into a FEN string.
func (p *Position) Fen() string {
	var b strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		b.WriteString("/")
	}
	b.WriteString(" ")
	b.WriteString(p.nextPlayer.String())
	b.WriteString(" ")
	b.WriteString(p.castlingRights.String())
	b.WriteString(" ")
	if p.enPassantSquare == SqNone {
		b.WriteString("-")
	} else {
		b.WriteString(p.enPassantSquare.String())
	}
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.halfMoveClock))
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.fullMoveNumber))
	return b.String()
}

// StringBoard returns a visual representation of the board as an
// 8x8 ascii grid, rank 8 first.
func (p *Position) StringBoard() string {
	var b strings.Builder
	b.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				b.WriteString("|   ")
			} else {
				b.WriteString("| " + pc.String() + " ")
			}
		}
		b.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return b.String()
}

// String returns the position's FEN, for debugging and logging.
func (p *Position) String() string {
	return p.Fen()
}
