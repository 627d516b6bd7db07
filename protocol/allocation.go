package protocol

import "fmt"

// NoPadUsed is the lastUsed sentinel for a party that has not consumed any
// pad yet. It participates in gap arithmetic as the literal value -1.
const NoPadUsed = -1

// AllocationTable owns the per-party allocation state: the precomputed
// ordered index queues, a consumption cursor per queue, and the raw index
// each party most recently consumed.
//
// Queue membership is fixed at construction; only cursors and lastUsed
// mutate. The table is not safe for concurrent use on its own — the
// owning Protocol serializes access so each allocation plus its gap check
// observes a consistent snapshot of every party's lastUsed.
type AllocationTable struct {
	queues   [numParties][]int
	cursors  [numParties]int
	lastUsed [numParties]int
}

// NewAllocationTable precomputes the four role allocation sequences for a
// pad sequence of length n.
func NewAllocationTable(n int) *AllocationTable {
	t := &AllocationTable{}
	for _, p := range Parties() {
		t.queues[p] = p.AllocationOrder(n)
		t.lastUsed[p] = NoPadUsed
	}
	return t
}

// Next pops the head of the party's queue, records it as the party's most
// recently used index, and returns it. Once popped the index is burned: it
// is never returned to the queue, even if the enclosing send is later
// rejected by the gap check.
func (t *AllocationTable) Next(p Party) (int, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("invalid party %d", p)
	}
	if t.cursors[p] >= len(t.queues[p]) {
		return 0, fmt.Errorf("%w: party %s", ErrExhaustedAllocation, p)
	}
	index := t.queues[p][t.cursors[p]]
	t.cursors[p]++
	t.lastUsed[p] = index
	return index, nil
}

// LastUsed returns the raw pad index the party most recently consumed, or
// NoPadUsed if it has not consumed any.
func (t *AllocationTable) LastUsed(p Party) int {
	return t.lastUsed[p]
}

// Remaining returns how many pads are left in the party's queue.
func (t *AllocationTable) Remaining(p Party) int {
	return len(t.queues[p]) - t.cursors[p]
}

// Sequence returns a copy of the party's full precomputed allocation order,
// independent of consumption progress.
func (t *AllocationTable) Sequence(p Party) []int {
	seq := make([]int, len(t.queues[p]))
	copy(seq, t.queues[p])
	return seq
}
