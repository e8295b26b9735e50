package siphash

import "errors"

var (
	// ErrInvalidRounds is returned when a Config carries a zero or negative
	// round count.
	ErrInvalidRounds = errors.New("siphash: round counts must be positive")

	// ErrKeySize is returned when a byte-slice key is not exactly KeySize bytes.
	ErrKeySize = errors.New("siphash: key must be 16 bytes")

	// ErrFinished is returned when a Hasher is written to or finished a second
	// time after Finish.
	ErrFinished = errors.New("siphash: hasher already finished")
)

// Config selects the SipHash-c-d variant by its round counts: c compression
// rounds per absorbed block and d finalization rounds. It is fixed for the
// lifetime of whatever it is handed to.
type Config struct {
	CompressionRounds  int
	FinalizationRounds int
}

// DefaultConfig is the standard SipHash-2-4 schedule. It is the right choice
// for hash tables and almost every other use; smaller schedules such as 1-3
// trade security margin for speed.
var DefaultConfig = Config{CompressionRounds: 2, FinalizationRounds: 4}

// Validate reports whether the schedule is usable.
func (c Config) Validate() error {
	if c.CompressionRounds <= 0 || c.FinalizationRounds <= 0 {
		return ErrInvalidRounds
	}
	return nil
}
