package siphash

import "encoding/binary"

// Raw is a word-oriented SipHash state without byte buffering or length
// framing. Unlike Hasher it absorbs whole 64-bit words, zero-pads any byte
// remainder to a full word, and omits the length byte during finalization,
// so its values differ from Hasher's for the same bytes. It trades the
// streaming framing for speed and copyability; the random source in siprng
// is built on it.
//
// Raw is a plain value: copying it forks the state, and Finish does not
// consume it.
type Raw struct {
	s   state
	cfg Config
}

// NewRaw returns a word-oriented SipHash-2-4 state for the given key words.
func NewRaw(k0, k1 uint64) Raw {
	r, _ := NewRawConfig(k0, k1, DefaultConfig)
	return r
}

// NewRawConfig returns a word-oriented state for the variant selected by cfg.
func NewRawConfig(k0, k1 uint64, cfg Config) (Raw, error) {
	if err := cfg.Validate(); err != nil {
		return Raw{}, err
	}
	return Raw{s: newState(k0, k1), cfg: cfg}, nil
}

// Update absorbs one 64-bit word.
func (r *Raw) Update(w uint64) {
	r.s.absorb(w, r.cfg.CompressionRounds)
}

// UpdateBytes absorbs p one little-endian word at a time, zero-padding a
// trailing partial word. UpdateBytes of a whole-word input is equivalent to
// the corresponding sequence of Update calls.
func (r *Raw) UpdateBytes(p []byte) {
	for len(p) >= blockSize {
		r.Update(binary.LittleEndian.Uint64(p))
		p = p[blockSize:]
	}
	if len(p) > 0 {
		var w [blockSize]byte
		copy(w[:], p)
		r.Update(binary.LittleEndian.Uint64(w[:]))
	}
}

// Finish runs the finalization rounds on a copy of the state and returns the
// 64-bit value. The receiver is unchanged, so a Raw can be finished at any
// point and continue absorbing afterwards.
func (r Raw) Finish() uint64 {
	return r.s.finalize(r.cfg.FinalizationRounds)
}
