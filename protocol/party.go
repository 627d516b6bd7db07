package protocol

import "fmt"

// Party identifies one of the four fixed protocol roles. The set is closed:
// allocation rules are defined per role and the gap constraint quantifies
// over exactly these four.
type Party uint8

const (
	// Alice consumes even indices counting forward: 2, 4, 6, ... < n.
	Alice Party = iota
	// Bob consumes even indices counting backward: n, n-2, ... > 0.
	Bob
	// Charlie consumes odd indices counting forward: 1, 3, 5, ... < n.
	Charlie
	// Ellen consumes odd indices counting backward: n-1, n-3, ... > 0.
	Ellen

	numParties
)

// Parties returns all four roles in enum order.
func Parties() [4]Party {
	return [4]Party{Alice, Bob, Charlie, Ellen}
}

// String returns the lowercase role name used on the wire and in logs.
func (p Party) String() string {
	switch p {
	case Alice:
		return "alice"
	case Bob:
		return "bob"
	case Charlie:
		return "charlie"
	case Ellen:
		return "ellen"
	}
	return fmt.Sprintf("party(%d)", uint8(p))
}

// Valid reports whether p is one of the four defined roles.
func (p Party) Valid() bool {
	return p < numParties
}

// ParseParty maps a lowercase role name to its Party value.
func ParseParty(name string) (Party, error) {
	switch name {
	case "alice":
		return Alice, nil
	case "bob":
		return Bob, nil
	case "charlie":
		return Charlie, nil
	case "ellen":
		return Ellen, nil
	}
	return 0, fmt.Errorf("unknown party %q", name)
}

// AllocationOrder returns the precomputed ordered sequence of pad indices
// the party is entitled to consume, for a pad sequence of length n.
//
// Two roles stride forward from the low end and two stride backward from n,
// reusing the even/odd split, so the four sequences are not mutually
// disjoint for general n, and Bob's head index equals n, one past the end
// of the pad sequence. Both properties are inherited from the reference
// allocation rule and deliberately kept; sends hitting either surface the
// corresponding error rather than being repaired here.
func (p Party) AllocationOrder(n int) []int {
	var seq []int
	switch p {
	case Alice:
		for i := 2; i < n; i += 2 {
			seq = append(seq, i)
		}
	case Bob:
		for i := n; i > 0; i -= 2 {
			seq = append(seq, i)
		}
	case Charlie:
		for i := 1; i < n; i += 2 {
			seq = append(seq, i)
		}
	case Ellen:
		for i := n - 1; i > 0; i -= 2 {
			seq = append(seq, i)
		}
	}
	return seq
}
