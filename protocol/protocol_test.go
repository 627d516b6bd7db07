package protocol

import (
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/otpnet/otpnet/crypto"
)

func newTestProtocol(t *testing.T, cfg Config) *Protocol {
	t.Helper()
	src, err := crypto.NewSeededReader([]byte(t.Name()))
	require.NoError(t, err)
	p, err := New(cfg, WithEntropy(src))
	require.NoError(t, err)
	return p
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(Config{PadCount: 0, PadBits: 8, MaxGap: 1})
	require.Error(t, err)
	_, err = New(Config{PadCount: 10, PadBits: 0, MaxGap: 1})
	require.Error(t, err)
	_, err = New(Config{PadCount: 10, PadBits: 8, MaxGap: -1})
	require.Error(t, err)
}

func TestSendReceiveRoundTrip(t *testing.T) {
	p := newTestProtocol(t, Config{PadCount: 10, PadBits: 8, MaxGap: 100})

	msg := big.NewInt(0xa7)
	res, err := p.Send(Alice, msg)
	require.NoError(t, err)
	require.Equal(t, 2, res.PadIndex)

	got, err := p.Receive(res.Ciphertext, res.PadIndex)
	require.NoError(t, err)
	require.Zero(t, got.Cmp(msg))
}

// TestGapZeroBlocksLoneSender runs the reference scenario: n=10, L=8, d=0,
// Alice sending alone. Her allocations are indices 2 then 4 while everyone
// else sits at the -1 sentinel, so the raw gap arithmetic (2-(-1)=3,
// 4-(-1)=5) rejects both sends — in particular the second send fails
// because 4 - (-1) > 0 — and each rejected send still burns its pad.
func TestGapZeroBlocksLoneSender(t *testing.T) {
	p := newTestProtocol(t, Config{PadCount: 10, PadBits: 8, MaxGap: 0})

	_, err := p.Send(Alice, big.NewInt(1))
	require.ErrorIs(t, err, ErrSecrecyViolation)
	require.Equal(t, 2, p.LastUsed(Alice))

	_, err = p.Send(Alice, big.NewInt(2))
	require.ErrorIs(t, err, ErrSecrecyViolation)
	require.Equal(t, 4, p.LastUsed(Alice))

	// Two pads burned despite zero successful sends.
	require.Equal(t, 2, p.Remaining(Alice))
}

func TestGapEnforcementThreshold(t *testing.T) {
	// With d=3 Alice's first send (gap 2-(-1)=3) passes and her second
	// (gap 4-(-1)=5) trips the constraint.
	p := newTestProtocol(t, Config{PadCount: 10, PadBits: 8, MaxGap: 3})

	res, err := p.Send(Alice, big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, 2, res.PadIndex)

	_, err = p.Send(Alice, big.NewInt(2))
	require.ErrorIs(t, err, ErrSecrecyViolation)

	// The rejected send consumed index 4.
	require.Equal(t, 4, p.LastUsed(Alice))
	require.Equal(t, 2, p.Remaining(Alice))
}

func TestGapRecoversWhenOthersCatchUp(t *testing.T) {
	p := newTestProtocol(t, Config{PadCount: 10, PadBits: 8, MaxGap: 3})

	_, err := p.Send(Alice, big.NewInt(1)) // index 2
	require.NoError(t, err)

	// Charlie (index 1) and Ellen (index 9) advance; Bob stays at -1, so
	// Alice at 4 is 5 ahead of him and still blocked.
	_, err = p.Send(Charlie, big.NewInt(1))
	require.NoError(t, err)
	_, err = p.Send(Ellen, big.NewInt(1))
	require.ErrorIs(t, err, ErrSecrecyViolation) // 9 - (-1) > 3, Ellen burns 9

	_, err = p.Send(Alice, big.NewInt(1)) // index 4: 4 - (-1) > 3 vs Bob
	require.ErrorIs(t, err, ErrSecrecyViolation)

	// After Ellen's burned index 9 registered as her progress, Alice's
	// next attempt (index 6) is still blocked only by Bob.
	require.Equal(t, 9, p.LastUsed(Ellen))
}

func TestSendExhaustion(t *testing.T) {
	p := newTestProtocol(t, Config{PadCount: 10, PadBits: 8, MaxGap: 1000})

	for range Alice.AllocationOrder(10) {
		_, err := p.Send(Alice, big.NewInt(3))
		require.NoError(t, err)
	}

	_, err := p.Send(Alice, big.NewInt(3))
	require.ErrorIs(t, err, ErrExhaustedAllocation)
}

// TestBobHeadIndexOutOfRange covers the inherited allocation quirk: Bob's
// queue starts at index n, one past the end of the pad sequence. With the
// gap wide open his first send passes the constraint, fails pad lookup,
// and burns the index anyway.
func TestBobHeadIndexOutOfRange(t *testing.T) {
	p := newTestProtocol(t, Config{PadCount: 10, PadBits: 8, MaxGap: 1000})

	_, err := p.Send(Bob, big.NewInt(1))
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.Equal(t, 10, p.LastUsed(Bob))
	require.Equal(t, 4, p.Remaining(Bob))

	// Subsequent sends proceed down the queue normally.
	res, err := p.Send(Bob, big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, 8, res.PadIndex)
}

func TestSendWidthMismatch(t *testing.T) {
	p := newTestProtocol(t, Config{PadCount: 10, PadBits: 8, MaxGap: 1000})

	_, err := p.Send(Alice, big.NewInt(256))
	require.ErrorIs(t, err, crypto.ErrWidthMismatch)

	// A rejected width check happens before allocation: no pad burned.
	require.Equal(t, 4, p.Remaining(Alice))
}

func TestReceiveIdempotent(t *testing.T) {
	p := newTestProtocol(t, Config{PadCount: 10, PadBits: 8, MaxGap: 1000})

	res, err := p.Send(Charlie, big.NewInt(0x5c))
	require.NoError(t, err)

	first, err := p.Receive(res.Ciphertext, res.PadIndex)
	require.NoError(t, err)
	second, err := p.Receive(res.Ciphertext, res.PadIndex)
	require.NoError(t, err)

	require.Zero(t, first.Cmp(second))
	require.Equal(t, int64(0x5c), first.Int64())
}

func TestReceiveIndexOutOfRange(t *testing.T) {
	p := newTestProtocol(t, Config{PadCount: 10, PadBits: 8, MaxGap: 1000})

	_, err := p.Receive(big.NewInt(1), 10)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = p.Receive(big.NewInt(1), -1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

// TestConcurrentSends drives all four parties from separate goroutines and
// checks that every allocation was one atomic transaction: each party's
// consumed indices must be exactly a prefix of its precomputed sequence,
// in order, regardless of interleaving.
func TestConcurrentSends(t *testing.T) {
	const n = 100
	p := newTestProtocol(t, Config{PadCount: n, PadBits: 32, MaxGap: 10 * n})

	results := make(map[Party][]int)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, party := range Parties() {
		wg.Add(1)
		go func(party Party) {
			defer wg.Done()
			var got []int
			for {
				res, err := p.Send(party, big.NewInt(7))
				if errors.Is(err, ErrExhaustedAllocation) {
					break
				}
				if err != nil {
					// Out-of-range draws (Bob's head) still advance the
					// queue; keep going.
					continue
				}
				got = append(got, res.PadIndex)
			}
			mu.Lock()
			results[party] = got
			mu.Unlock()
		}(party)
	}
	wg.Wait()

	for _, party := range Parties() {
		want := party.AllocationOrder(n)
		// Drop indices outside the pad sequence; those sends failed but
		// consumed their position.
		var inRange []int
		for _, idx := range want {
			if idx < n {
				inRange = append(inRange, idx)
			}
		}
		require.Equal(t, inRange, results[party], "party %s consumed out of order", party)
		require.Zero(t, p.Remaining(party))
	}
}
