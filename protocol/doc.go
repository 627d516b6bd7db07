// Package protocol implements the pad allocation and constraint-enforcement
// engine for a shared one-time-pad keying scheme among four fixed parties.
//
// # Architecture
//
// A protocol instance owns three pieces of state, created once at
// construction and composed by the Send/Receive facade:
//
//  1. PadStore: the immutable ordered sequence of n pads, each PadBits
//     wide, generated from an injectable entropy source.
//
//  2. AllocationTable: per party, an ordered precomputed queue of pad
//     indices the party is entitled to consume, a cursor into that queue,
//     and the raw index it most recently consumed (-1 until the first
//     send).
//
//  3. Gap enforcer: validates after every allocation that no party's
//     most-recently-used index runs more than MaxGap ahead of any other
//     party's, treating idle parties as sitting at -1.
//
// # Allocation rule
//
// The four roles split the index space by parity and direction: Alice
// walks even indices up from 2, Charlie walks odd indices up from 1, Bob
// walks even indices down from n, Ellen walks odd indices down from n-1.
//
// Because two roles count forward from the low end and two count backward
// from n over the same parity classes, the role sequences overlap for any
// usefully large n, and Bob's first entitlement is index n itself — one
// past the end of the pad sequence. Both quirks are inherited from the
// reference allocation rule and preserved rather than repaired: a send
// that draws an out-of-range index fails with ErrIndexOutOfRange, with
// the index burned like any other consumed pad.
//
// # Send flow and the burned-pad rule
//
// Send pops the head of the sender's queue, updates the sender's
// last-used index, runs the gap check, and only then encrypts. The pop
// happens before the check on purpose: a send rejected for a secrecy
// violation still permanently consumes its pad. Callers must not retry a
// rejected send expecting the same pad back.
//
// # Concurrency
//
// The pad store is read-only after construction and shared freely. One
// mutex guards the allocation table and gap check together, making each
// send a single atomic transaction; the check reads every party's
// last-used index and needs a consistent snapshot. Operations are
// CPU-bound and non-blocking, so there are no context or timeout
// semantics.
package protocol
