package chess

// Position is a complete game-state snapshot.
//
// A Position owns all of its data in fixed-size arrays, so copying the
// struct value yields an independent position. Exploration code (perft,
// the legality filter) clones rather than undoing moves.
type Position struct {
	// The board squares, indexed by Square (a1 = 0).
	Board [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling rights, indexed [colour][side].
	Castling CastlingRights

	// Home file of the rook bound to each castling right.
	// Standard and Atomic use h/a; Chess960 takes them from the back rank.
	CastleRookFile [NumColours][2]int8

	// The square passed over by a pawn double push on the previous ply,
	// or NoSquare.
	EnPassant Square

	// The back rank each colour was seeded with.
	BackRanks [NumColours]BackRank

	// The variant the position belongs to.
	Variant Variant

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, starting at 1 and incremented after Black moves.
	MoveNumber uint
}

// NewEmptyPosition returns an empty board of the given variant with White to
// move, no castling rights and the canonical back rank recorded for both sides.
func NewEmptyPosition(variant Variant) *Position {
	p := &Position{
		ToMove:     White,
		EnPassant:  NoSquare,
		Variant:    variant,
		MoveNumber: 1,
	}
	p.BackRanks[White] = StandardBackRank
	p.BackRanks[Black] = StandardBackRank
	for colour := White; colour <= Black; colour++ {
		for side := Kingside; side <= Queenside; side++ {
			p.CastleRookFile[colour][side] = int8(side.StandardRookFile())
		}
	}
	return p
}

// Ruleset returns the ruleset derived from the position's variant.
func (p *Position) Ruleset() Ruleset {
	return p.Variant.Ruleset()
}

// Get returns the piece on a square.
func (p *Position) Get(sq Square) Piece {
	return p.Board[sq]
}

// Set places a piece on a square; the zero Piece clears it.
func (p *Position) Set(sq Square, piece Piece) {
	p.Board[sq] = piece
}

// Clear empties a square.
func (p *Position) Clear(sq Square) {
	p.Board[sq] = Piece{}
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// KingSquare returns the square of the colour's king, or NoSquare when the
// king is no longer on the board (atomic explosions can remove it).
func (p *Position) KingSquare(colour Colour) Square {
	for sq := Square(0); sq < NumSquares; sq++ {
		if p.Board[sq].Is(colour, King) {
			return sq
		}
	}
	return NoSquare
}

// HasKing reports whether the colour still has a king on the board.
func (p *Position) HasKing(colour Colour) bool {
	return p.KingSquare(colour) != NoSquare
}

// BackRank returns the back rank the colour was seeded with.
func (p *Position) BackRank(colour Colour) BackRank {
	return p.BackRanks[colour]
}

// CastleRookSquare returns the original square of the rook bound to a castling right.
func (p *Position) CastleRookSquare(colour Colour, side CastlingSide) Square {
	return SquareAt(int(p.CastleRookFile[colour][side]), colour.HomeRank())
}

// PieceCount returns how many pieces the colour has on the board.
func (p *Position) PieceCount(colour Colour) int {
	n := 0
	for _, piece := range p.Board {
		if !piece.IsEmpty() && piece.Colour == colour {
			n++
		}
	}
	return n
}

// CountKind returns how many pieces of the given colour and kind are on the board.
func (p *Position) CountKind(colour Colour, kind PieceKind) int {
	n := 0
	for _, piece := range p.Board {
		if piece.Is(colour, kind) {
			n++
		}
	}
	return n
}
