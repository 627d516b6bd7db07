// Package simulation implements the statistical scenario harness layered
// on top of the protocol core.
//
// Each scenario samples pad indices from party allocation sequences under
// a different sender distribution and reports the number of distinct
// indices touched — the "wasted pad" count. Averaged over many iterations
// this serves as a regression baseline for the allocation rule, not an
// exact-value assertion.
//
// Sampling draws uniformly from a party's full allocation sequence without
// consuming anything from the protocol instance, mirroring the reference
// harness. Randomness is injected so runs are reproducible.
package simulation
