// Package siprng provides a deterministic pseudo-random source driven by the
// SipHash permutation. The same construction and the same sequence of calls
// always reproduce the same stream; unpredictability is only against parties
// who do not know the key, so this is a sequence generator, not a CSPRNG for
// key material.
package siprng

import (
	"encoding/binary"
	"math/bits"
	"math/rand"

	siphash "github.com/lccc-project/lccc-siphash"
)

// Mixing constants. The seed mixers keep single-word seeds from mapping
// trivially onto the key words; the tick words separate the pre-output and
// post-output absorptions so successive outputs decorrelate.
const (
	seedMix0 = 0x6a09e667f3bcc908
	seedMix1 = 0xbb67ae8584caa73b

	byteSeedK0 = 0x3c6ef372fe94f82b
	byteSeedK1 = 0xa54ff53a5f1d36f1

	tickPre  = 0x510e527fade682d1
	tickPost = 0x9b05688c2b3e6c1f
)

// Source generates 64-bit values by repeatedly ticking a word-oriented
// SipHash state: absorb a counter word, finalize a copy, emit, absorb a
// second word. It satisfies math/rand.Source64.
//
// A Source must not be shared between goroutines without external
// synchronization.
type Source struct {
	raw siphash.Raw
}

var _ rand.Source64 = (*Source)(nil)

// New returns a source keyed with the two 64-bit key words, giving the full
// 128 bits of seed entropy.
func New(k0, k1 uint64) *Source {
	return &Source{raw: siphash.NewRaw(k0, k1)}
}

// FromRaw returns a source continuing from raw, which may already have
// absorbed arbitrary data.
func FromRaw(raw siphash.Raw) *Source {
	return &Source{raw: raw}
}

// FromSeed returns a source keyed from a single word, at most 64 bits of
// entropy. Prefer this over passing the seed as one key word and zero as the
// other.
func FromSeed(seed uint64) *Source {
	return New(seed^seedMix0, bits.RotateLeft64(seed, -31)^seedMix1)
}

// FromByteSeed returns a source keyed from an arbitrary byte seed by
// absorbing its length and contents into a fixed-key state.
func FromByteSeed(seed []byte) *Source {
	raw := siphash.NewRaw(byteSeedK0, byteSeedK1)
	raw.Update(uint64(len(seed)))
	raw.UpdateBytes(seed)
	return FromRaw(raw)
}

// Uint64 ticks the generator and returns the next value.
func (s *Source) Uint64() uint64 {
	s.raw.Update(tickPre)
	v := s.raw.Finish()
	s.raw.Update(tickPost)
	return v
}

// Int63 returns the next value truncated to 63 bits, for math/rand.Source.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed resets the source as if constructed by FromSeed.
func (s *Source) Seed(seed int64) {
	*s = *FromSeed(uint64(seed))
}

// Read fills p from the stream, eight little-endian bytes per tick, and
// always returns len(p), nil. A trailing partial word discards its unused
// bytes, so Read(8) then Read(8) equals Read(16), but Read(4) then Read(4)
// does not.
func (s *Source) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, s.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		var w [8]byte
		binary.LittleEndian.PutUint64(w[:], s.Uint64())
		copy(p, w[:])
	}
	return n, nil
}
