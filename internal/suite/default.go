package suite

// Default returns the built-in suite: well-known perft positions for each
// variant, shallow enough to run in a few seconds.
func Default() *Suite {
	return &Suite{
		Name: "default",
		Cases: []Case{
			{
				Name:  "initial",
				FEN:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
				Nodes: []uint64{20, 400, 8902},
			},
			{
				Name:  "kiwipete",
				FEN:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
				Nodes: []uint64{48, 2039},
			},
			{
				Name:  "en passant and pins",
				FEN:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
				Nodes: []uint64{14, 191, 2812},
			},
			{
				Name:  "promotions",
				FEN:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
				Nodes: []uint64{6, 264, 9467},
			},
			{
				Name:    "chess960 start 0",
				FEN:     "bbqnnrkr/pppppppp/8/8/8/8/PPPPPPPP/BBQNNRKR w HFhf - 0 1",
				Variant: "chess960",
				Nodes:   []uint64{20, 400},
			},
			{
				Name:    "chess960 middlegame",
				FEN:     "bqnb1rkr/pp3ppp/3ppn2/2p5/5P2/P2P4/NPP1P1PP/BQ1BNRKR w HFhf - 2 9",
				Variant: "chess960",
				Nodes:   []uint64{21, 528},
			},
			{
				Name:    "atomic initial",
				FEN:     "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
				Variant: "atomic",
				Nodes:   []uint64{20, 400},
			},
		},
	}
}
