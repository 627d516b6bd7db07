package simulation

import (
	"fmt"
	"math/rand"

	"github.com/otpnet/otpnet/protocol"
)

// Results holds the rounded average wasted-pad counts per scenario.
type Results struct {
	// LoneSender: one random party samples alone.
	LoneSender int `json:"lone_sender"`
	// TwoSenders: two random parties share the draws uniformly.
	TwoSenders int `json:"two_senders"`
	// WeightedAll: all four parties draw under a random weight vector.
	WeightedAll int `json:"weighted_all"`
}

// Run executes all three scenarios iterations times against the protocol's
// allocation sequences and returns the rounded averages. Each iteration
// performs PadCount/4 draws per scenario. The protocol instance is only
// read; no pads are consumed.
func Run(p *protocol.Protocol, iterations int, rng *rand.Rand) (Results, error) {
	if iterations <= 0 {
		return Results{}, fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	parties := protocol.Parties()
	sequences := make(map[protocol.Party][]int, len(parties))
	for _, party := range parties {
		seq := p.AllocationSequence(party)
		if len(seq) == 0 {
			return Results{}, fmt.Errorf("party %s has an empty allocation sequence", party)
		}
		sequences[party] = seq
	}

	draws := p.Config().PadCount / 4
	var sumLone, sumTwo, sumWeighted int

	for it := 0; it < iterations; it++ {
		sumLone += runLoneSender(sequences, parties, draws, rng)
		sumTwo += runTwoSenders(sequences, parties, draws, rng)
		sumWeighted += runWeightedAll(sequences, parties, draws, rng)
	}

	return Results{
		LoneSender:  average(sumLone, iterations),
		TwoSenders:  average(sumTwo, iterations),
		WeightedAll: average(sumWeighted, iterations),
	}, nil
}

// runLoneSender samples every draw from one randomly chosen party.
func runLoneSender(sequences map[protocol.Party][]int, parties [4]protocol.Party, draws int, rng *rand.Rand) int {
	seq := sequences[parties[rng.Intn(len(parties))]]
	used := make(map[int]struct{}, draws)
	for d := 0; d < draws; d++ {
		used[seq[rng.Intn(len(seq))]] = struct{}{}
	}
	return len(used)
}

// runTwoSenders picks two distinct parties and chooses the sender uniformly
// per draw.
func runTwoSenders(sequences map[protocol.Party][]int, parties [4]protocol.Party, draws int, rng *rand.Rand) int {
	perm := rng.Perm(len(parties))
	first := sequences[parties[perm[0]]]
	second := sequences[parties[perm[1]]]

	used := make(map[int]struct{}, draws)
	for d := 0; d < draws; d++ {
		seq := first
		if rng.Intn(2) == 1 {
			seq = second
		}
		used[seq[rng.Intn(len(seq))]] = struct{}{}
	}
	return len(used)
}

// runWeightedAll draws from all four parties under a random normalized
// probability vector.
func runWeightedAll(sequences map[protocol.Party][]int, parties [4]protocol.Party, draws int, rng *rand.Rand) int {
	weights := make([]float64, len(parties))
	var total float64
	for i := range weights {
		weights[i] = rng.Float64()
		total += weights[i]
	}

	used := make(map[int]struct{}, draws)
	for d := 0; d < draws; d++ {
		seq := sequences[parties[pickWeighted(weights, total, rng)]]
		used[seq[rng.Intn(len(seq))]] = struct{}{}
	}
	return len(used)
}

// pickWeighted samples an index proportionally to weights.
func pickWeighted(weights []float64, total float64, rng *rand.Rand) int {
	target := rng.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// average rounds sum/count to the nearest integer.
func average(sum, count int) int {
	return (sum + count/2) / count
}
