// Package sipcodec serializes SipHash hasher state so an in-progress hash
// can be persisted and resumed later. A marshal/unmarshal round trip yields
// an operationally identical hasher: feeding it the rest of the input gives
// the same value as hashing everything uninterrupted.
//
// The record layout is fixed and little-endian for portability:
//
//	offset  size  field
//	0       1     format version (currently 1)
//	1       1     compression rounds
//	2       1     finalization rounds
//	3       32    lanes v0..v3, each a little-endian uint64
//	35      8     total input length counter, little-endian uint64
//	43      1     pending byte count p (0..7)
//	44      p     pending bytes
package sipcodec

import (
	"encoding/binary"
	"errors"

	siphash "github.com/lccc-project/lccc-siphash"
)

// Version is the record format version written by Marshal.
const Version = 1

const (
	headerSize = 3
	fixedSize  = headerSize + 4*8 + 8 + 1
)

var (
	// ErrShort is returned when a record is shorter than its fixed prefix or
	// its declared pending bytes.
	ErrShort = errors.New("sipcodec: record truncated")

	// ErrVersion is returned when a record declares an unknown format version.
	ErrVersion = errors.New("sipcodec: unsupported record version")

	// ErrCorrupt is returned when a record's fields are inconsistent.
	ErrCorrupt = errors.New("sipcodec: malformed record")

	// ErrRounds is returned by Marshal when a round count does not fit in the
	// record's one-byte fields.
	ErrRounds = errors.New("sipcodec: round count does not fit in one byte")
)

// Marshal encodes the hasher's current state. It fails with
// siphash.ErrFinished once the hasher has finished.
func Marshal(h *siphash.Hasher) ([]byte, error) {
	st, err := h.State()
	if err != nil {
		return nil, err
	}
	if st.Rounds.CompressionRounds > 0xff || st.Rounds.FinalizationRounds > 0xff {
		return nil, ErrRounds
	}

	out := make([]byte, 0, fixedSize+len(st.Pending))
	out = append(out, Version, byte(st.Rounds.CompressionRounds), byte(st.Rounds.FinalizationRounds))
	var w [8]byte
	for _, lane := range st.Lanes {
		binary.LittleEndian.PutUint64(w[:], lane)
		out = append(out, w[:]...)
	}
	binary.LittleEndian.PutUint64(w[:], st.Length)
	out = append(out, w[:]...)
	out = append(out, byte(len(st.Pending)))
	out = append(out, st.Pending...)
	return out, nil
}

// Unmarshal decodes a record produced by Marshal and rebuilds the hasher.
func Unmarshal(data []byte) (*siphash.Hasher, error) {
	if len(data) < fixedSize {
		return nil, ErrShort
	}
	if data[0] != Version {
		return nil, ErrVersion
	}

	st := siphash.RawState{
		Rounds: siphash.Config{
			CompressionRounds:  int(data[1]),
			FinalizationRounds: int(data[2]),
		},
	}
	for i := range st.Lanes {
		st.Lanes[i] = binary.LittleEndian.Uint64(data[headerSize+8*i:])
	}
	st.Length = binary.LittleEndian.Uint64(data[headerSize+32:])

	np := int(data[fixedSize-1])
	if np > 7 {
		return nil, ErrCorrupt
	}
	if len(data) != fixedSize+np {
		if len(data) < fixedSize+np {
			return nil, ErrShort
		}
		return nil, ErrCorrupt
	}
	st.Pending = data[fixedSize : fixedSize+np]

	h, err := siphash.Restore(st)
	if err != nil {
		return nil, err
	}
	return h, nil
}
