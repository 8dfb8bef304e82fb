package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Chess960Positions is the number of distinct Fischer-Random back ranks.
const Chess960Positions = 960

// StandardChess960Index is the Scharnagl number of RNBQKBNR.
const StandardChess960Index = 518

// knightPlacements lists the ten ways to put two knights on five empty
// squares, in Scharnagl order.
var knightPlacements = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {1, 3}, {1, 4},
	{2, 3}, {2, 4},
	{3, 4},
}

// Chess960BackRankFromSeed maps a seed to a Fischer-Random back rank using
// Scharnagl numbering of seed % 960. Every result satisfies
// IsValidChess960BackRank.
func Chess960BackRankFromSeed(seed uint64) chess.BackRank {
	n := int(seed % Chess960Positions)
	var rank chess.BackRank

	// Light-squared bishop on b, d, f or h; dark-squared on a, c, e or g.
	rank[2*(n%4)+1] = chess.Bishop
	n /= 4
	rank[2*(n%4)] = chess.Bishop
	n /= 4

	placeNth(&rank, n%6, chess.Queen)
	n /= 6

	knights := knightPlacements[n]
	// The second index shifts down once the first knight is placed.
	placeNth(&rank, knights[0], chess.Knight)
	placeNth(&rank, knights[1]-1, chess.Knight)

	// Rook, king, rook fill what is left, left to right.
	placeNth(&rank, 0, chess.Rook)
	placeNth(&rank, 0, chess.King)
	placeNth(&rank, 0, chess.Rook)
	return rank
}

// placeNth puts kind on the nth empty file of rank.
func placeNth(rank *chess.BackRank, n int, kind chess.PieceKind) {
	for file := range rank {
		if rank[file] != chess.NoPiece {
			continue
		}
		if n == 0 {
			rank[file] = kind
			return
		}
		n--
	}
}

// IsValidChess960BackRank checks the Fischer constraints: one king, one
// queen, two rooks, two bishops and two knights, the king strictly between
// the rooks, and the bishops on opposite-coloured squares.
func IsValidChess960BackRank(rank chess.BackRank) bool {
	var counts [chess.NumPieceKinds]int
	kingFile := -1
	var rookFiles, bishopFiles []int

	for file, kind := range rank {
		switch kind {
		case chess.King:
			kingFile = file
		case chess.Rook:
			rookFiles = append(rookFiles, file)
		case chess.Bishop:
			bishopFiles = append(bishopFiles, file)
		case chess.Queen, chess.Knight:
		default:
			return false
		}
		counts[kind]++
	}

	if counts[chess.King] != 1 || counts[chess.Queen] != 1 || counts[chess.Rook] != 2 ||
		counts[chess.Bishop] != 2 || counts[chess.Knight] != 2 {
		return false
	}
	if kingFile < rookFiles[0] || kingFile > rookFiles[1] {
		return false
	}
	// Both bishops share a rank, so file parity decides square colour.
	return bishopFiles[0]%2 != bishopFiles[1]%2
}

// Chess960Index returns the Scharnagl number of a valid back rank.
func Chess960Index(rank chess.BackRank) (int, bool) {
	if !IsValidChess960BackRank(rank) {
		return 0, false
	}

	var light, dark, queen int
	var knights []int
	// Index among files not yet holding a bishop, and for the knights also
	// not holding the queen.
	emptyIndex := 0
	for file, kind := range rank {
		switch kind {
		case chess.Bishop:
			if file%2 == 1 {
				light = file / 2
			} else {
				dark = file / 2
			}
			continue
		case chess.Queen:
			queen = emptyIndex
		}
		emptyIndex++
	}

	emptyIndex = 0
	for _, kind := range rank {
		switch kind {
		case chess.Bishop, chess.Queen:
			continue
		case chess.Knight:
			knights = append(knights, emptyIndex)
		}
		emptyIndex++
	}

	for i, pair := range knightPlacements {
		if pair[0] == knights[0] && pair[1] == knights[1] {
			return ((i*6+queen)*4+dark)*4 + light, true
		}
	}
	return 0, false
}
