package protocol

import (
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"sync"

	"github.com/otpnet/otpnet/crypto"
)

// Protocol composes the pad store, allocation table, and gap enforcer into
// the send/receive surface.
//
// The pad store is immutable after construction and read without locking.
// All allocation state is guarded by a single mutex so that one send —
// queue pop, lastUsed update, gap check — executes as one atomic unit and
// the check sees a consistent snapshot of every party's progress.
type Protocol struct {
	cfg   Config
	store *PadStore
	log   *slog.Logger

	mu    sync.Mutex
	table *AllocationTable
}

// SendResult is the outcome of a successful send: the ciphertext and the
// pad index the receiver needs to decrypt it.
type SendResult struct {
	Ciphertext *big.Int
	PadIndex   int
}

// Option customizes protocol construction.
type Option func(*options)

type options struct {
	entropy io.Reader
	log     *slog.Logger
}

// WithEntropy overrides the entropy source used for pad generation.
// Pass a crypto.NewSeededReader for reproducible pad sequences.
func WithEntropy(src io.Reader) Option {
	return func(o *options) { o.entropy = src }
}

// WithLogger attaches a structured logger for allocation events.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// New constructs a protocol instance: validates the configuration,
// generates the pad sequence once, and precomputes every party's
// allocation queue.
func New(cfg Config, opts ...Option) (*Protocol, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	o := &options{entropy: rand.Reader}
	for _, opt := range opts {
		opt(o)
	}

	store, err := NewPadStore(o.entropy, cfg.PadCount, cfg.PadBits)
	if err != nil {
		return nil, err
	}

	log := o.log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Protocol{
		cfg:   cfg,
		store: store,
		log:   log,
		table: NewAllocationTable(cfg.PadCount),
	}, nil
}

// Config returns the construction parameters.
func (p *Protocol) Config() Config {
	return p.cfg
}

// Send allocates the sender's next pad and encrypts message with it.
//
// Failure kinds, all terminal for this call:
//   - ErrExhaustedAllocation: the sender's queue is empty.
//   - ErrSecrecyViolation: the allocation broke the gap invariant. The pad
//     is burned; the ciphertext is discarded.
//   - ErrIndexOutOfRange: the allocated index falls outside the pad
//     sequence (Bob's queue head is n). The pad index is likewise burned.
//   - crypto.ErrWidthMismatch: message does not fit the pad width.
func (p *Protocol) Send(sender Party, message *big.Int) (*SendResult, error) {
	if !sender.Valid() {
		return nil, fmt.Errorf("invalid sender %d", sender)
	}
	if !crypto.FitsWidth(message, p.cfg.PadBits) {
		return nil, fmt.Errorf("message: %w", crypto.ErrWidthMismatch)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	index, err := p.table.Next(sender)
	if err != nil {
		return nil, err
	}

	if err := p.table.CheckGap(sender, p.cfg.MaxGap); err != nil {
		p.log.Warn("send rejected, pad burned",
			"sender", sender.String(), "padIndex", index, "err", err)
		return nil, err
	}

	pad, err := p.store.Get(index)
	if err != nil {
		p.log.Warn("allocated index outside pad sequence, pad burned",
			"sender", sender.String(), "padIndex", index)
		return nil, err
	}

	ciphertext, err := crypto.Encrypt(message, pad, p.cfg.PadBits)
	if err != nil {
		return nil, err
	}

	p.log.Debug("pad allocated",
		"sender", sender.String(), "padIndex", index,
		"remaining", p.table.Remaining(sender))

	return &SendResult{Ciphertext: ciphertext, PadIndex: index}, nil
}

// Receive decrypts ciphertext with the pad at padIndex. It is stateless
// with respect to allocation: the same (ciphertext, padIndex) pair always
// yields the same message.
func (p *Protocol) Receive(ciphertext *big.Int, padIndex int) (*big.Int, error) {
	pad, err := p.store.Get(padIndex)
	if err != nil {
		return nil, err
	}
	return crypto.Decrypt(ciphertext, pad, p.cfg.PadBits)
}

// LastUsed returns the pad index the party most recently consumed, or
// NoPadUsed if it has not sent yet.
func (p *Protocol) LastUsed(party Party) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.table.LastUsed(party)
}

// Remaining returns how many pads the party has left to consume.
func (p *Protocol) Remaining(party Party) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.table.Remaining(party)
}

// AllocationSequence returns a copy of the party's full precomputed
// allocation order.
func (p *Protocol) AllocationSequence(party Party) []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.table.Sequence(party)
}
