// Package engine provides chess move generation, validation and position manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenError builds a ParseError wrapping ErrInvalidFEN.
func fenError(fen, field, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    fen,
		Field:    field,
		Expected: expected,
		Got:      got,
	}
}

// DecodeFEN creates a position of the given variant from a FEN string.
//
// The piece placement and side to move are required; castling, en passant
// and the two clocks default to "-", "-", 0 and 1 when absent. Castling
// accepts KQkq as well as Shredder-style rook file letters (Chess960).
func DecodeFEN(fen string, variant chess.Variant) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, fenError(fen, "", "at least placement and side to move", fmt.Sprintf("%d fields", len(parts)))
	}
	if len(parts) > 6 {
		return nil, fenError(fen, "", "at most 6 fields", fmt.Sprintf("%d fields", len(parts)))
	}

	pos := chess.NewEmptyPosition(variant)

	if err := parsePiecePositions(pos, fen, parts[0]); err != nil {
		return nil, err
	}
	if err := checkKings(pos, fen); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, fen, parts[1]); err != nil {
		return nil, err
	}
	if len(parts) > 2 {
		if err := parseCastlingRights(pos, fen, parts[2]); err != nil {
			return nil, err
		}
		if variant != chess.Chess960 {
			dropNonStandardRights(pos)
		}
	}
	if len(parts) > 3 {
		if err := parseEnPassant(pos, fen, parts[3]); err != nil {
			return nil, err
		}
	}
	if len(parts) > 4 {
		if err := parseClocks(pos, fen, parts[4:]); err != nil {
			return nil, err
		}
	}

	recordBackRanks(pos)
	return pos, nil
}

// checkKings requires one king per colour. Atomic positions may lack a
// king, since an explosion ends the game that way.
func checkKings(pos *chess.Position, fen string) error {
	for colour := chess.White; colour <= chess.Black; colour++ {
		n := pos.CountKind(colour, chess.King)
		if n == 1 || (n == 0 && pos.Ruleset() == chess.AtomicRules) {
			continue
		}
		return fenError(fen, "piece placement", "one "+strings.ToLower(colour.String())+" king", strconv.Itoa(n))
	}
	return nil
}

// parsePiecePositions parses the piece placement field, rank 8 first.
// Each rank must describe exactly eight files.
func parsePiecePositions(pos *chess.Position, fen, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(fen, "piece placement", "8 ranks", strconv.Itoa(len(ranks)))
	}

	for i, rankText := range ranks {
		rank := chess.BoardSize - 1 - i
		field := fmt.Sprintf("rank %d", rank+1)
		file := 0
		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				if file > chess.BoardSize {
					break
				}
				continue
			}
			kind := chess.PieceKindFromLetter(c)
			if kind == chess.NoPiece {
				return fenError(fen, field, "piece letter or digit", strconv.QuoteRune(rune(c)))
			}
			if file >= chess.BoardSize {
				file++
				break
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			pos.Set(chess.SquareAt(file, rank), chess.MakePiece(colour, kind))
			file++
		}
		if file != chess.BoardSize {
			return fenError(fen, field, "8 files", fmt.Sprintf("%q", rankText))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, fen, side string) error {
	switch side {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fenError(fen, "side to move", "w or b", strconv.Quote(side))
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Rights whose
// king or rook is not on its home rank are dropped.
func parseCastlingRights(pos *chess.Position, fen, field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		c := field[i]
		var colour chess.Colour
		switch {
		case c >= 'A' && c <= 'Z':
			colour = chess.White
		case c >= 'a' && c <= 'z':
			colour = chess.Black
		default:
			return fenError(fen, "castling", "KQkq or rook files", strconv.QuoteRune(rune(c)))
		}
		lower := c | 0x20
		if lower != 'k' && lower != 'q' && (lower < 'a' || lower > 'h') {
			return fenError(fen, "castling", "KQkq or rook files", strconv.QuoteRune(rune(c)))
		}

		kingSq := pos.KingSquare(colour)
		if kingSq == chess.NoSquare || chess.RankOf(kingSq) != colour.HomeRank() {
			continue
		}

		switch lower {
		case 'k':
			setOutermostRookRight(pos, colour, chess.Kingside, kingSq)
		case 'q':
			setOutermostRookRight(pos, colour, chess.Queenside, kingSq)
		default:
			file := int(lower - 'a')
			side := chess.Queenside
			if file > chess.FileOf(kingSq) {
				side = chess.Kingside
			}
			if pos.Board[chess.SquareAt(file, colour.HomeRank())].Is(colour, chess.Rook) {
				pos.Castling[colour][side] = true
				pos.CastleRookFile[colour][side] = int8(file)
			}
		}
	}
	return nil
}

const standardKingFile = 4

// dropNonStandardRights keeps only rights with the king on the e-file and
// the rook on the a- or h-file, the only castling Standard and Atomic know.
func dropNonStandardRights(pos *chess.Position) {
	for colour := chess.White; colour <= chess.Black; colour++ {
		kingOnE := chess.FileOf(pos.KingSquare(colour)) == standardKingFile
		for side := chess.Kingside; side <= chess.Queenside; side++ {
			if !kingOnE || int(pos.CastleRookFile[colour][side]) != side.StandardRookFile() {
				pos.Castling[colour][side] = false
				pos.CastleRookFile[colour][side] = int8(side.StandardRookFile())
			}
		}
	}
}

// setOutermostRookRight binds a K/Q right to the outermost rook on that side
// of the king, as X-FEN does.
func setOutermostRookRight(pos *chess.Position, colour chess.Colour, side chess.CastlingSide, kingSq chess.Square) {
	rank := colour.HomeRank()
	kingFile := chess.FileOf(kingSq)
	if side == chess.Kingside {
		for file := chess.BoardSize - 1; file > kingFile; file-- {
			if pos.Board[chess.SquareAt(file, rank)].Is(colour, chess.Rook) {
				pos.Castling[colour][side] = true
				pos.CastleRookFile[colour][side] = int8(file)
				return
			}
		}
		return
	}
	for file := 0; file < kingFile; file++ {
		if pos.Board[chess.SquareAt(file, rank)].Is(colour, chess.Rook) {
			pos.Castling[colour][side] = true
			pos.CastleRookFile[colour][side] = int8(file)
			return
		}
	}
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, fen, field string) error {
	if field == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(field)
	if !ok {
		return fenError(fen, "en passant", "square or -", strconv.Quote(field))
	}
	if rank := chess.RankOf(sq); rank != 2 && rank != 5 {
		return fenError(fen, "en passant", "square on rank 3 or 6", field)
	}
	pos.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, fen string, fields []string) error {
	if len(fields) > 0 {
		n, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return fenError(fen, "halfmove clock", "non-negative integer", strconv.Quote(fields[0]))
		}
		pos.HalfmoveClock = uint(n)
	}
	if len(fields) > 1 {
		n, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return fenError(fen, "fullmove number", "positive integer", strconv.Quote(fields[1]))
		}
		if n == 0 {
			n = 1
		}
		pos.MoveNumber = uint(n)
	}
	return nil
}

// recordBackRanks keeps the canonical back rank for Standard and Atomic. For
// Chess960 a colour's home rank is recorded when it holds a complete, valid
// Fischer-Random arrangement.
func recordBackRanks(pos *chess.Position) {
	if pos.Variant != chess.Chess960 {
		return
	}
	for colour := chess.White; colour <= chess.Black; colour++ {
		var rank chess.BackRank
		complete := true
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Board[chess.SquareAt(file, colour.HomeRank())]
			if piece.IsEmpty() || piece.Colour != colour || piece.Kind == chess.Pawn {
				complete = false
				break
			}
			rank[file] = piece.Kind
		}
		if complete && IsValidChess960BackRank(rank) {
			pos.BackRanks[colour] = rank
		}
	}
}

// EncodeFEN converts a position to a FEN string.
// Castling rights bound to a rook on the a- or h-file are written as KQkq;
// any other rook file is written as its Shredder file letter.
func EncodeFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos)
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Board[chess.SquareAt(file, rank)]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, pos *chess.Position) {
	if !pos.Castling.Any() {
		sb.WriteByte('-')
		return
	}
	for colour := chess.White; colour <= chess.Black; colour++ {
		for side := chess.Kingside; side <= chess.Queenside; side++ {
			if !pos.Castling.Has(colour, side) {
				continue
			}
			file := int(pos.CastleRookFile[colour][side])
			var letter byte
			if file == side.StandardRookFile() {
				letter = 'K'
				if side == chess.Queenside {
					letter = 'Q'
				}
			} else {
				letter = byte('A' + file)
			}
			if colour == chess.Black {
				letter |= 0x20
			}
			sb.WriteByte(letter)
		}
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	sb.WriteString(pos.EnPassant.String())
}
