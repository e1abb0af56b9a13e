// Package zigzag defines options and sentinel errors for the longest
// alternating subsequence DP.
package zigzag

import "errors"

// Options configures Longest.
//
// Fields:
//   - ReturnPath — if true, also return the indices of one longest
//     zig-zag subsequence, in increasing order.
type Options struct {
	ReturnPath bool
}

// DefaultOptions returns Options{ReturnPath: false}.
func DefaultOptions() Options {
	return Options{}
}

// ErrEmptyInput indicates the input sequence is empty.
var ErrEmptyInput = errors.New("zigzag: input sequence must be non-empty")

// direction of the last step of a subsequence.
type direction int

const (
	up direction = iota
	down
)
