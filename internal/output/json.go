package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// JSONPosition describes a position in JSON format.
type JSONPosition struct {
	FEN        string          `json:"fen"`
	Variant    string          `json:"variant"`
	ToMove     string          `json:"toMove"`
	InCheck    bool            `json:"inCheck"`
	Moves      []string        `json:"moves"`
	Chess960   *int            `json:"chess960,omitempty"` // Setup number of the back rank
	FiftyMove  bool            `json:"fiftyMoveClaim,omitempty"`
	Status     string          `json:"status,omitempty"`
	Result     string          `json:"result,omitempty"`
	Perft      *JSONPerft      `json:"perft,omitempty"`
	History    []string        `json:"history,omitempty"`
	Crosscheck *JSONCrosscheck `json:"crosscheck,omitempty"`
}

// JSONPerft holds a perft count and, optionally, its divide.
type JSONPerft struct {
	Depth  int               `json:"depth"`
	Nodes  uint64            `json:"nodes"`
	Divide map[string]uint64 `json:"divide,omitempty"`
}

// JSONCrosscheck summarises a reference comparison.
type JSONCrosscheck struct {
	Positions int      `json:"positions"`
	Disagree  []string `json:"disagree,omitempty"` // FENs of disagreeing positions
}

// PositionToJSON describes pos. status is the game's terminal state, when
// over is true.
func PositionToJSON(pos *chess.Position, status engine.TerminalState, over bool) *JSONPosition {
	jp := &JSONPosition{
		FEN:     engine.EncodeFEN(pos),
		Variant: pos.Variant.String(),
		ToMove:  pos.ToMove.String(),
		InCheck: pos.HasKing(pos.ToMove) && engine.IsInCheck(pos, pos.ToMove),
		Moves:   []string{},
	}
	if index, ok := Chess960Index(pos); ok {
		jp.Chess960 = &index
	}
	if over {
		jp.Status = status.String()
		jp.Result = status.Result()
		return jp
	}
	jp.FiftyMove = engine.CanClaimFiftyMoves(pos)
	jp.Moves = MoveStrings(pos, engine.LegalMoves(pos))
	return jp
}

// Chess960Index returns the setup number of a Chess960 position whose
// white home rank still holds its recorded back rank.
func Chess960Index(pos *chess.Position) (int, bool) {
	if pos.Variant != chess.Chess960 {
		return 0, false
	}
	rank := pos.BackRank(chess.White)
	for file, kind := range rank {
		if !pos.Get(chess.SquareAt(file, chess.White.HomeRank())).Is(chess.White, kind) {
			return 0, false
		}
	}
	return engine.Chess960Index(rank)
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
