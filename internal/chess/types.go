// Package chess provides core chess types: squares, pieces, moves and positions.
package chess

import "strings"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// NumColours is the number of colours, used to size per-colour arrays.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns +1 for White, -1 for Black (the rank delta of a pawn push).
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index (0 or 7) of the colour.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return 7
}

// PieceKind represents a chess piece type without colour.
type PieceKind int

const (
	NoPiece PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single upper-case letter for a piece kind (P, N, B, R, Q, K).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// PieceKindFromLetter converts a piece letter of either case to its kind.
// It returns NoPiece for anything that is not a piece letter.
func PieceKindFromLetter(c byte) PieceKind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return NoPiece
	}
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Colour Colour
	Kind   PieceKind
}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind PieceKind) Piece {
	return Piece{Colour: colour, Kind: kind}
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether the square holding p is empty.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind PieceKind) bool {
	return p.Kind == kind && p.Colour == colour && kind != NoPiece
}

// FENLetter returns the FEN letter for the piece: upper case for White,
// lower case for Black, '.' for an empty square.
func (p Piece) FENLetter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Variant selects the starting setup and FEN defaults.
type Variant int

const (
	Standard Variant = iota
	Chess960
	Atomic
)

// String returns the canonical lower-case name of the variant.
func (v Variant) String() string {
	switch v {
	case Chess960:
		return "chess960"
	case Atomic:
		return "atomic"
	default:
		return "standard"
	}
}

// Ruleset returns the capture/legality rules the variant plays under.
// Chess960 differs from Standard only in its setup and castling squares.
func (v Variant) Ruleset() Ruleset {
	switch v {
	case Atomic:
		return AtomicRules
	default:
		return ClassicalRules
	}
}

// ParseVariant parses a variant name as found in a Variant tag or on the
// command line. It returns false for unknown names.
func ParseVariant(name string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "standard", "chess", "normal", "classical":
		return Standard, true
	case "chess960", "960", "fischerandom", "fischer random", "frc":
		return Chess960, true
	case "atomic":
		return Atomic, true
	}
	return Standard, false
}

// Ruleset governs legality and capture behaviour.
type Ruleset int

const (
	ClassicalRules Ruleset = iota
	AtomicRules
)

// String returns the string representation of a ruleset.
func (r Ruleset) String() string {
	if r == AtomicRules {
		return "Atomic"
	}
	return "Classical"
}

// CastlingSide indexes the two castling options of a colour.
type CastlingSide int

const (
	Kingside CastlingSide = iota
	Queenside
)

// String returns the string representation of a castling side.
func (s CastlingSide) String() string {
	if s == Kingside {
		return "Kingside"
	}
	return "Queenside"
}

// KingDestinationFile returns the file the king lands on when castling (g or c).
func (s CastlingSide) KingDestinationFile() int {
	if s == Kingside {
		return 6
	}
	return 2
}

// RookDestinationFile returns the file the rook lands on when castling (f or d).
func (s CastlingSide) RookDestinationFile() int {
	if s == Kingside {
		return 5
	}
	return 3
}

// StandardRookFile returns the home file of the castling rook in Standard chess (h or a).
func (s CastlingSide) StandardRookFile() int {
	if s == Kingside {
		return 7
	}
	return 0
}

// CastlingRights holds the four castling booleans, indexed [colour][side].
// A right is only ever revoked during a game, never reinstated.
type CastlingRights [NumColours][2]bool

// Has reports whether colour may still castle on the given side.
func (cr CastlingRights) Has(colour Colour, side CastlingSide) bool {
	return cr[colour][side]
}

// Any reports whether any right is still held.
func (cr CastlingRights) Any() bool {
	return cr[White][Kingside] || cr[White][Queenside] || cr[Black][Kingside] || cr[Black][Queenside]
}

// ClearColour revokes both rights of a colour.
func (cr *CastlingRights) ClearColour(colour Colour) {
	cr[colour][Kingside] = false
	cr[colour][Queenside] = false
}

// Index packs the rights into a 4-bit value (used for hashing).
func (cr CastlingRights) Index() int {
	idx := 0
	bit := 1
	for colour := White; colour <= Black; colour++ {
		for side := Kingside; side <= Queenside; side++ {
			if cr[colour][side] {
				idx |= bit
			}
			bit <<= 1
		}
	}
	return idx
}

// BackRank is the sequence of eight piece kinds seeding a colour's home rank,
// listed from the a-file to the h-file.
type BackRank [8]PieceKind

// StandardBackRank is the canonical back rank RNBQKBNR.
var StandardBackRank = BackRank{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// String returns the back rank as upper-case letters, e.g. "RNBQKBNR".
func (br BackRank) String() string {
	var sb strings.Builder
	for _, kind := range br {
		sb.WriteByte(kind.Letter())
	}
	return sb.String()
}

// ParseBackRank parses eight piece letters of either case, a-file first.
func ParseBackRank(text string) (BackRank, bool) {
	var br BackRank
	if len(text) != len(br) {
		return br, false
	}
	for i := 0; i < len(text); i++ {
		kind := PieceKindFromLetter(text[i])
		if kind == NoPiece || kind == Pawn {
			return BackRank{}, false
		}
		br[i] = kind
	}
	return br, true
}
