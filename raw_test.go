package siphash

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestRawWordEquivalence(t *testing.T) {
	data := referenceInput(32)

	a := NewRaw(3, 4)
	a.UpdateBytes(data)

	b := NewRaw(3, 4)
	for i := 0; i < len(data); i += 8 {
		b.Update(binary.LittleEndian.Uint64(data[i:]))
	}

	if av, bv := a.Finish(), b.Finish(); av != bv {
		t.Errorf("UpdateBytes %#016x != Update sequence %#016x", av, bv)
	}
}

func TestRawPadsRemainder(t *testing.T) {
	// A trailing partial word is zero-padded, so 5 data bytes hash like the
	// same 5 bytes followed by 3 zeros.
	a := NewRaw(3, 4)
	a.UpdateBytes([]byte{1, 2, 3, 4, 5})

	b := NewRaw(3, 4)
	b.Update(binary.LittleEndian.Uint64([]byte{1, 2, 3, 4, 5, 0, 0, 0}))

	if av, bv := a.Finish(), b.Finish(); av != bv {
		t.Errorf("padded remainder %#016x != explicit word %#016x", av, bv)
	}
}

func TestRawFinishNonConsuming(t *testing.T) {
	r := NewRaw(9, 10)
	r.Update(0x1122334455667788)

	v1 := r.Finish()
	if v2 := r.Finish(); v2 != v1 {
		t.Errorf("repeated Finish changed value: %#016x != %#016x", v2, v1)
	}

	// The state keeps absorbing after a Finish.
	r.Update(0xaabbccdd)
	if v3 := r.Finish(); v3 == v1 {
		t.Errorf("Update after Finish had no effect: %#016x", v3)
	}
}

func TestRawCopyForksState(t *testing.T) {
	r := NewRaw(9, 10)
	r.Update(1)

	fork := r
	fork.Update(2)
	r.Update(3)

	if fork.Finish() == r.Finish() {
		t.Error("copied Raw still shares state with the original")
	}
}

func TestRawDiffersFromHasher(t *testing.T) {
	// Raw omits the length framing, so it must not agree with Hasher.
	data := referenceInput(13)

	r := NewRaw(1, 2)
	r.UpdateBytes(data)

	if r.Finish() == Hash(1, 2, data) {
		t.Error("Raw unexpectedly matches the framed hash")
	}
}

func TestNewRawConfigInvalid(t *testing.T) {
	if _, err := NewRawConfig(1, 2, Config{}); !errors.Is(err, ErrInvalidRounds) {
		t.Errorf("got %v, want ErrInvalidRounds", err)
	}
}

func BenchmarkRaw(b *testing.B) {
	data := referenceInput(64)
	b.SetBytes(int64(len(data)))
	r := NewRaw(1, 2)
	for i := 0; i < b.N; i++ {
		r.UpdateBytes(data)
	}
}
