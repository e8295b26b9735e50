package siphash

import "math/bits"

// blockSize is the size of one input block in bytes. Each block is
// interpreted as a little-endian 64-bit word before it is absorbed.
const blockSize = 8

// Initialization constants, the ASCII bytes of
// "somepseudorandomlygeneratedbytes" read as four little-endian words.
const (
	iv0 = 0x736f6d6570736575
	iv1 = 0x646f72616e646f6d
	iv2 = 0x6c7967656e657261
	iv3 = 0x7465646279746573
)

// state holds the four 64-bit lanes of the SipHash permutation. Lanes are
// mutated only by whole SipRound applications and the XOR injections the
// algorithm defines; nothing else touches them.
type state struct {
	v0, v1, v2, v3 uint64
}

// newState derives the initial lanes from a 128-bit key.
func newState(k0, k1 uint64) state {
	return state{
		v0: k0 ^ iv0,
		v1: k1 ^ iv1,
		v2: k0 ^ iv2,
		v3: k1 ^ iv3,
	}
}

// round performs one SipRound. The rotation amounts are fixed by the
// algorithm; changing any of them produces a different, non-interoperable
// function.
func (s *state) round() {
	s.v0 += s.v1
	s.v1 = bits.RotateLeft64(s.v1, 13)
	s.v1 ^= s.v0
	s.v0 = bits.RotateLeft64(s.v0, 32)

	s.v2 += s.v3
	s.v3 = bits.RotateLeft64(s.v3, 16)
	s.v3 ^= s.v2

	s.v0 += s.v3
	s.v3 = bits.RotateLeft64(s.v3, 21)
	s.v3 ^= s.v0

	s.v2 += s.v1
	s.v1 = bits.RotateLeft64(s.v1, 17)
	s.v1 ^= s.v2
	s.v2 = bits.RotateLeft64(s.v2, 32)
}

// absorb mixes one message word into the state: XOR into v3, c compression
// rounds, then XOR into v0.
func (s *state) absorb(w uint64, c int) {
	s.v3 ^= w
	for i := 0; i < c; i++ {
		s.round()
	}
	s.v0 ^= w
}

// finalize applies the finalization rounds and collapses the lanes into the
// hash value. The value receiver leaves the caller's state untouched; the
// terminal-use policy lives in Hasher, not here.
func (s state) finalize(d int) uint64 {
	s.v2 ^= 0xff
	for i := 0; i < d; i++ {
		s.round()
	}
	return s.v0 ^ s.v1 ^ s.v2 ^ s.v3
}
