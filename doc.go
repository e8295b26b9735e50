/*
Package siphash implements SipHash, the keyed pseudorandom function of
Aumasson and Bernstein (https://eprint.iacr.org/2012/351.pdf), with a
configurable number of compression and finalization rounds.

SipHash is a fast, DoS-resistant hash for short untrusted inputs. Keyed with
a secret 128-bit value, its outputs are unpredictable to anyone who does not
hold the key, which defeats algorithmic-complexity attacks on hash tables.
It is not a general-purpose cryptographic hash: an adversary who knows the
key can find collisions.

Variants:
  - SipHash-2-4 (DefaultConfig): the standard choice, used unless stated
    otherwise.
  - Other c-d schedules (1-3, 4-8, ...) via Config and the *Config
    constructors.

Basic usage:

	// One shot, SipHash-2-4.
	v := siphash.Hash(k0, k1, []byte("hello world"))

	// Streaming. The hasher is an io.Writer; any chunking of the input
	// produces the same value.
	h := siphash.New(k0, k1)
	io.Copy(h, r)
	v, err := h.Finish()

A Hasher is terminal: once Finish has been called, Write and Finish return
ErrFinished until an explicit Reset. There is no implicit reset.

Keyed construction for hash tables:

	b, err := siphash.NewRandomBuilder() // once, at startup
	...
	v := b.Sum64(key)                    // per lookup
	shard := b.Derive(7)                 // deterministic sub-key for stream 7

The Raw type is a faster word-oriented variant without byte framing; its
values differ from Hasher's for the same input bytes. The siprng subpackage
builds a deterministic random source on it, and the sipcodec subpackage
serializes hasher state via the RawState snapshot.
*/
package siphash
