// Package neighbors defines options, memory modes and sentinel errors for the
// circular donation DP.
package neighbors

import "errors"

// MemoryMode controls how the linear sub-problems store their DP values.
//
//   - Memoized  — top-down recursion with a memo table; each index is
//     evaluated at most once per sub-problem. Supports picks.
//
//   - Tabulated — bottom-up fill of the same table, no recursion. Supports picks.
//
//   - Rolling   — bottom-up with only the two most recent values.
//     Memory O(1), but the chosen residents cannot be recovered.
type MemoryMode int

const (
	// Memoized is top-down recursion over a memo table.
	Memoized MemoryMode = iota

	// Tabulated is a bottom-up table fill.
	Tabulated

	// Rolling keeps two values only and cannot return picks.
	Rolling
)

// Options configures MaxDonations.
//
// Fields:
//   - MemoryMode  — Memoized, Tabulated or Rolling.
//   - ReturnPicks — if true, also return the indices of the donating residents.
//     Requires Memoized or Tabulated.
type Options struct {
	MemoryMode  MemoryMode
	ReturnPicks bool
}

// DefaultOptions returns Options{MemoryMode: Memoized, ReturnPicks: false}.
func DefaultOptions() Options {
	return Options{MemoryMode: Memoized}
}

var (
	// ErrEmptyInput indicates there are no residents.
	ErrEmptyInput = errors.New("neighbors: donations must be non-empty")

	// ErrNegativeDonation indicates a donation below zero.
	ErrNegativeDonation = errors.New("neighbors: donations must be non-negative")

	// ErrPicksNeedTable indicates ReturnPicks was requested with Rolling memory.
	ErrPicksNeedTable = errors.New("neighbors: ReturnPicks requires Memoized or Tabulated mode")

	// ErrBadMode indicates an unknown MemoryMode.
	ErrBadMode = errors.New("neighbors: unknown MemoryMode")
)
