package siphash

import "encoding/binary"

const (
	// KeySize is the size of a SipHash key in bytes.
	KeySize = 16

	// Size is the size of the hash output in bytes.
	Size = 8
)

// core is the resettable part of a Hasher: the lane state, the pending
// buffer, and the running input length. Keeping a copy of the construction
// value makes Reset trivial without retaining the key itself.
type core struct {
	s      state
	buf    [blockSize]byte
	n      int
	length uint64
}

// Hasher computes SipHash over a byte stream fed in chunks of any size.
// It implements io.Writer, so it can be filled with io.Copy.
//
// A Hasher is terminal: after Finish, further Write or Finish calls return
// ErrFinished. Reuse requires an explicit Reset or a fresh instance. A Hasher
// must not be shared between goroutines without external synchronization;
// construct one hasher per concurrent stream instead.
type Hasher struct {
	cur  core
	init core
	cfg  Config
	done bool
}

// New returns a SipHash-2-4 hasher keyed with the two 64-bit key words.
func New(k0, k1 uint64) *Hasher {
	h, _ := NewConfig(k0, k1, DefaultConfig)
	return h
}

// NewConfig returns a hasher for the SipHash variant selected by cfg.
func NewConfig(k0, k1 uint64, cfg Config) (*Hasher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := core{s: newState(k0, k1)}
	return &Hasher{cur: c, init: c, cfg: cfg}, nil
}

// NewKey returns a SipHash-2-4 hasher keyed with a 16-byte key, read as two
// little-endian words. The key must be exactly KeySize bytes long.
func NewKey(key []byte) (*Hasher, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}
	k0 := binary.LittleEndian.Uint64(key)
	k1 := binary.LittleEndian.Uint64(key[8:])
	return New(k0, k1), nil
}

// Rounds returns the round schedule the hasher was built with.
func (h *Hasher) Rounds() Config {
	return h.cfg
}

// Write absorbs p into the hash. It never fails before Finish and always
// returns len(p); after Finish it returns ErrFinished. Writes are
// order-sensitive, and any way of splitting an input across Write calls
// produces the same hash as a single call with the concatenation.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.done {
		return 0, ErrFinished
	}
	n := len(p)
	h.cur.length += uint64(n)

	if h.cur.n > 0 {
		k := copy(h.cur.buf[h.cur.n:], p)
		h.cur.n += k
		if h.cur.n < blockSize {
			return n, nil
		}
		h.cur.s.absorb(binary.LittleEndian.Uint64(h.cur.buf[:]), h.cfg.CompressionRounds)
		h.cur.n = 0
		p = p[k:]
	}

	for len(p) >= blockSize {
		h.cur.s.absorb(binary.LittleEndian.Uint64(p), h.cfg.CompressionRounds)
		p = p[blockSize:]
	}

	h.cur.n = copy(h.cur.buf[:], p)
	return n, nil
}

// Finish absorbs the final length-encoded block and returns the 64-bit hash.
// The final block left-packs the 0-7 pending bytes and carries the total
// input length mod 256 in its most significant byte; with no pending bytes it
// consists of the length byte over seven zero bytes.
//
// Finish is one-shot: the hasher stops accepting input, and a second call
// returns ErrFinished.
func (h *Hasher) Finish() (uint64, error) {
	if h.done {
		return 0, ErrFinished
	}
	h.done = true

	var last [blockSize]byte
	copy(last[:], h.cur.buf[:h.cur.n])
	last[blockSize-1] = byte(h.cur.length)
	h.cur.s.absorb(binary.LittleEndian.Uint64(last[:]), h.cfg.CompressionRounds)
	return h.cur.s.finalize(h.cfg.FinalizationRounds), nil
}

// Reset returns the hasher to the point right after construction, dropping
// all absorbed input. For a hasher built by Restore, that point is the
// restored snapshot.
func (h *Hasher) Reset() {
	h.cur = h.init
	h.done = false
}

// Hash computes the SipHash-2-4 of data in a single call, without allocating.
func Hash(k0, k1 uint64, data []byte) uint64 {
	return sum(k0, k1, DefaultConfig, data)
}

// sum is the one-shot form shared by Hash and Builder.Sum64. cfg must already
// be validated.
func sum(k0, k1 uint64, cfg Config, data []byte) uint64 {
	s := newState(k0, k1)
	top := uint64(len(data)) << 56

	for len(data) >= blockSize {
		s.absorb(binary.LittleEndian.Uint64(data), cfg.CompressionRounds)
		data = data[blockSize:]
	}

	var last [blockSize]byte
	copy(last[:], data)
	s.absorb(binary.LittleEndian.Uint64(last[:])|top, cfg.CompressionRounds)
	return s.finalize(cfg.FinalizationRounds)
}
