package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same colour", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+B vs K+B opposite colour", "4kb2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+N+N vs K", "4k3/8/8/8/8/8/8/1N2K1N1 w - - 0 1", false},
		{"K+N vs K+N", "4k1n1/8/8/8/8/8/8/1N2K3 w - - 0 1", false},
		{"initial", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustDecode(t, tt.fen, chess.Standard)
			if got := HasInsufficientMaterial(pos); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanClaimFiftyMoves(t *testing.T) {
	tests := []struct {
		halfmove uint
		want     bool
	}{
		{0, false},
		{99, false},
		{100, true},
		{150, true},
	}
	for _, tt := range tests {
		pos := StandardPosition()
		pos.HalfmoveClock = tt.halfmove
		if got := CanClaimFiftyMoves(pos); got != tt.want {
			t.Errorf("CanClaimFiftyMoves(halfmove %d) = %v, want %v", tt.halfmove, got, tt.want)
		}
	}
}
