package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocationOrder(t *testing.T) {
	const n = 10

	require.Equal(t, []int{2, 4, 6, 8}, Alice.AllocationOrder(n))
	require.Equal(t, []int{1, 3, 5, 7, 9}, Charlie.AllocationOrder(n))
	require.Equal(t, []int{10, 8, 6, 4, 2}, Bob.AllocationOrder(n))
	require.Equal(t, []int{9, 7, 5, 3, 1}, Ellen.AllocationOrder(n))
}

// TestAllocationOverlap documents that the four role sequences are not
// mutually disjoint: the backward walkers revisit the same parity classes
// the forward walkers own. For even n, Bob's sequence is Alice's plus the
// extra head index n; for any n >= 3, Ellen's is a permutation of
// Charlie's. Index 0 is assigned to no one, and index n (out of range of
// the pad sequence) is assigned to Bob.
func TestAllocationOverlap(t *testing.T) {
	for _, n := range []int{4, 7, 10, 25, 100} {
		seen := map[int][]Party{}
		for _, p := range Parties() {
			for _, idx := range p.AllocationOrder(n) {
				seen[idx] = append(seen[idx], p)
			}
		}

		duplicated := 0
		for _, owners := range seen {
			if len(owners) > 1 {
				duplicated++
			}
		}
		require.Positive(t, duplicated, "n=%d: expected overlapping role sequences", n)

		// Index 0 is never allocated; index n always is (to Bob), despite
		// being outside the pad sequence.
		require.NotContains(t, seen, 0, "n=%d", n)
		require.Equal(t, []Party{Bob}, seen[n], "n=%d", n)

		// Every in-range index except 0 is covered by at least one party.
		for idx := 1; idx < n; idx++ {
			require.Contains(t, seen, idx, "n=%d: index %d unassigned", n, idx)
		}
	}
}

func TestPartyNames(t *testing.T) {
	for _, p := range Parties() {
		parsed, err := ParseParty(p.String())
		require.NoError(t, err)
		require.Equal(t, p, parsed)
	}

	_, err := ParseParty("mallory")
	require.Error(t, err)

	require.False(t, Party(42).Valid())
}
