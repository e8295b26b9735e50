package siphash

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Builder constructs identically keyed hashers. Two Builders with the same
// keys and schedule produce hashers that agree on every input, which is what
// hash tables need to rehash consistently; distinct Builders from
// NewRandomBuilder disagree with overwhelming probability, which is what
// hash-flood resistance needs.
//
// Builder is a value type and safe to copy.
type Builder struct {
	k0, k1 uint64
	cfg    Config
}

// NewBuilder returns a SipHash-2-4 builder for the given key words.
func NewBuilder(k0, k1 uint64) Builder {
	b, _ := NewBuilderConfig(k0, k1, DefaultConfig)
	return b
}

// NewBuilderConfig returns a builder for the variant selected by cfg.
func NewBuilderConfig(k0, k1 uint64, cfg Config) (Builder, error) {
	if err := cfg.Validate(); err != nil {
		return Builder{}, err
	}
	return Builder{k0: k0, k1: k1, cfg: cfg}, nil
}

// NewRandomBuilder returns a SipHash-2-4 builder keyed from the operating
// system's secure random source. Call it once at process start and reuse the
// builder; every hasher it makes shares the key.
func NewRandomBuilder() (Builder, error) {
	var key [KeySize]byte
	if _, err := rand.Read(key[:]); err != nil {
		return Builder{}, fmt.Errorf("siphash: reading random key: %w", err)
	}
	k0 := binary.LittleEndian.Uint64(key[:])
	k1 := binary.LittleEndian.Uint64(key[8:])
	return NewBuilder(k0, k1), nil
}

// New returns a fresh hasher with the builder's key and schedule.
func (b Builder) New() *Hasher {
	h, _ := NewConfig(b.k0, b.k1, b.cfg)
	return h
}

// Sum64 hashes data in one shot with the builder's key and schedule.
func (b Builder) Sum64(data []byte) uint64 {
	return sum(b.k0, b.k1, b.cfg, data)
}

// Rounds returns the builder's round schedule.
func (b Builder) Rounds() Config {
	return b.cfg
}

// Derive returns a builder keyed for logical stream n. The derived key is a
// deterministic function of the parent key and n, so the same parent and
// index always yield the same sub-keyed hashers; different indices yield
// independent-looking keys. Useful for sharding one master key across
// several tables or streams.
func (b Builder) Derive(n uint64) Builder {
	var w [blockSize]byte
	binary.LittleEndian.PutUint64(w[:], n)
	d := Builder{
		k0:  sum(b.k0, b.k1, b.cfg, w[:]),
		k1:  sum(^b.k0, ^b.k1, b.cfg, w[:]),
		cfg: b.cfg,
	}
	return d
}
