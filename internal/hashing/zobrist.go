// Package hashing provides Zobrist position keys and repetition tracking.
package hashing

import "github.com/lgbarn/chesscore-go/internal/chess"

// Zobrist keys, generated once from a fixed seed so keys are stable
// between runs.
var (
	zobristPiece      [chess.NumColours][chess.NumPieceKinds][chess.NumSquares]uint64
	zobristEnPassant  [chess.BoardSize]uint64 // One per file
	zobristCastling   [16]uint64              // All castling combinations
	zobristSideToMove uint64                  // XOR when Black is to move
)

func init() {
	initZobrist()
}

// prng is a xorshift64* generator.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &prng{state: 0x98F107A2BEEF1234}

	for colour := chess.White; colour <= chess.Black; colour++ {
		for kind := chess.Pawn; kind <= chess.King; kind++ {
			for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
				zobristPiece[colour][kind][sq] = rng.next()
			}
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// Key returns the Zobrist key of a position: piece placement, side to
// move, castling rights and en passant file. The en passant file only
// counts when a pawn of the side to move could actually capture there,
// so positions that repeat in every other respect share a key.
func Key(pos *chess.Position) uint64 {
	var key uint64
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Board[sq]
		if piece.IsEmpty() {
			continue
		}
		key ^= zobristPiece[piece.Colour][piece.Kind][sq]
	}

	key ^= zobristCastling[pos.Castling.Index()]
	if pos.ToMove == chess.Black {
		key ^= zobristSideToMove
	}
	if enPassantCapturable(pos) {
		key ^= zobristEnPassant[chess.FileOf(pos.EnPassant)]
	}
	return key
}

// enPassantCapturable reports whether a pawn of the side to move stands
// beside the pawn that just made a double push.
func enPassantCapturable(pos *chess.Position) bool {
	if pos.EnPassant == chess.NoSquare {
		return false
	}
	captureRank := chess.RankOf(pos.EnPassant) - pos.ToMove.PawnDirection()
	file := chess.FileOf(pos.EnPassant)
	for _, df := range [2]int{-1, 1} {
		f := file + df
		if f < 0 || f >= chess.BoardSize {
			continue
		}
		if pos.Board[chess.SquareAt(f, captureRank)].Is(pos.ToMove, chess.Pawn) {
			return true
		}
	}
	return false
}
