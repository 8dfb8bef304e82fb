package hashing

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/engine"
)

func TestRepetitionTracker_Counts(t *testing.T) {
	r := NewRepetitionTracker()
	if r.Len() != 0 || r.Current() != 0 {
		t.Fatal("new tracker is not empty")
	}

	if got := r.Push(1); got != 1 {
		t.Errorf("Push(1) = %d, want 1", got)
	}
	r.Push(2)
	if got := r.Push(1); got != 2 {
		t.Errorf("second Push(1) = %d, want 2", got)
	}

	if r.Count(1) != 2 || r.Count(2) != 1 || r.Count(3) != 0 {
		t.Errorf("counts = %d/%d/%d, want 2/1/0", r.Count(1), r.Count(2), r.Count(3))
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if r.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d, want 2", r.UniqueCount())
	}
	if r.Current() != 2 {
		t.Errorf("Current() = %d, want 2", r.Current())
	}
}

func TestRepetitionTracker_Pop(t *testing.T) {
	r := NewRepetitionTracker()
	r.Push(7)
	r.Push(8)
	r.Pop()

	if r.Count(8) != 0 {
		t.Errorf("Count(8) after Pop = %d, want 0", r.Count(8))
	}
	if r.UniqueCount() != 1 {
		t.Errorf("UniqueCount() = %d, want 1", r.UniqueCount())
	}
	r.Pop()
	r.Pop() // no-op when empty
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRepetitionTracker_Reset(t *testing.T) {
	r := NewRepetitionTracker()
	r.Push(1)
	r.Push(1)
	r.Reset()
	if r.Len() != 0 || r.Count(1) != 0 {
		t.Error("Reset() left state behind")
	}
}

func TestRepetitionTracker_KnightShuffle(t *testing.T) {
	pos := engine.StandardPosition()
	r := NewRepetitionTracker()
	r.Push(Key(pos))

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for round := 0; round < 4; round++ {
		play(t, pos, shuffle...)
		r.Push(Key(pos))
	}
	if got := r.Current(); got != 5 {
		t.Errorf("initial position seen %d times, want 5", got)
	}
}
