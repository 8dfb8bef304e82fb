package hashing

// RepetitionTracker counts how often each position key has occurred along
// a line of play. Keys are pushed as moves are made and popped when they
// are taken back.
type RepetitionTracker struct {
	counts  map[uint64]int
	history []uint64
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{counts: make(map[uint64]int)}
}

// Push records an occurrence of key and returns how many times it has now
// been seen.
func (r *RepetitionTracker) Push(key uint64) int {
	r.history = append(r.history, key)
	r.counts[key]++
	return r.counts[key]
}

// Pop removes the most recent occurrence. It is a no-op on an empty tracker.
func (r *RepetitionTracker) Pop() {
	if len(r.history) == 0 {
		return
	}
	key := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	if r.counts[key]--; r.counts[key] == 0 {
		delete(r.counts, key)
	}
}

// Count returns how many times key has been seen.
func (r *RepetitionTracker) Count(key uint64) int {
	return r.counts[key]
}

// Current returns the occurrence count of the most recent key, or 0 when
// nothing has been pushed.
func (r *RepetitionTracker) Current() int {
	if len(r.history) == 0 {
		return 0
	}
	return r.counts[r.history[len(r.history)-1]]
}

// Len returns the number of keys pushed.
func (r *RepetitionTracker) Len() int {
	return len(r.history)
}

// UniqueCount returns the number of distinct keys seen.
func (r *RepetitionTracker) UniqueCount() int {
	return len(r.counts)
}

// Reset clears the tracker.
func (r *RepetitionTracker) Reset() {
	r.counts = make(map[uint64]int)
	r.history = r.history[:0]
}
