package siphash

import "errors"

// ErrPendingSize is returned by Restore when a snapshot carries more pending
// bytes than a partial block can hold.
var ErrPendingSize = errors.New("siphash: pending buffer must be shorter than 8 bytes")

// RawState is a read-only snapshot of a Hasher's internals: the four lanes,
// the buffered partial block, the running input length, and the round
// schedule. It exists for debugging, cross-implementation verification, and
// serialization (see the sipcodec package). Normal callers must not derive
// hash values from it; only Finish defines the hash.
type RawState struct {
	Lanes   [4]uint64
	Pending []byte
	Length  uint64
	Rounds  Config
}

// State snapshots the hasher. The returned value aliases nothing; mutating
// it has no effect on the hasher. Once the hasher has finished there is no
// state left to inspect and State returns ErrFinished.
func (h *Hasher) State() (RawState, error) {
	if h.done {
		return RawState{}, ErrFinished
	}
	pending := make([]byte, h.cur.n)
	copy(pending, h.cur.buf[:h.cur.n])
	return RawState{
		Lanes:   [4]uint64{h.cur.s.v0, h.cur.s.v1, h.cur.s.v2, h.cur.s.v3},
		Pending: pending,
		Length:  h.cur.length,
		Rounds:  h.cfg,
	}, nil
}

// Restore rebuilds a hasher from a snapshot. Feeding the restored hasher the
// remainder of an input produces the same value as hashing the whole input
// uninterrupted. The restored hasher carries no key of its own; Reset returns
// it to the snapshot point.
func Restore(st RawState) (*Hasher, error) {
	if err := st.Rounds.Validate(); err != nil {
		return nil, err
	}
	if len(st.Pending) >= blockSize {
		return nil, ErrPendingSize
	}
	c := core{
		s:      state{v0: st.Lanes[0], v1: st.Lanes[1], v2: st.Lanes[2], v3: st.Lanes[3]},
		length: st.Length,
	}
	c.n = copy(c.buf[:], st.Pending)
	return &Hasher{cur: c, init: c, cfg: st.Rounds}, nil
}
