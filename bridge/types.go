// Package bridge defines methods, options, sentinel errors and result types
// for the bridge-crossing solver.
package bridge

import (
	"errors"
	"fmt"
)

// MaxSearchPeople bounds the party size for Search; its state space is
// 2^(n+1) and each state has O(n²) moves.
const MaxSearchPeople = 12

// Method selects how MinTime computes the answer.
//
//   - Search — Dijkstra over the implicit graph of (who is across, where the
//     flashlight is) states. Exact, can return the schedule.
//   - Greedy — sort, then repeatedly move the two slowest people with the
//     cheaper of the two classic escort patterns. O(n log n), total only.
type Method int

const (
	// Search runs Dijkstra over crossing states.
	Search Method = iota

	// Greedy uses the closed-form escort recurrence.
	Greedy
)

// Sentinel errors returned by MinTime.
var (
	// ErrEmptyInput indicates there is nobody to move.
	ErrEmptyInput = errors.New("bridge: times must be non-empty")

	// ErrBadTime indicates a crossing time that is not positive.
	ErrBadTime = errors.New("bridge: crossing times must be positive")

	// ErrTooManyPeople indicates Search was asked for more than MaxSearchPeople.
	ErrTooManyPeople = errors.New("bridge: too many people for Search")

	// ErrScheduleNeedsSearch indicates WithSchedule was combined with Greedy.
	ErrScheduleNeedsSearch = errors.New("bridge: schedule requires Method=Search")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("bridge: invalid option supplied")
)

// Options configures MinTime.
type Options struct {
	Method   Method // Search (default) or Greedy
	Schedule bool   // return the move list (Search only)

	err error
}

// Option represents a functional option for configuring MinTime.
type Option func(*Options)

// DefaultOptions returns Options{Method: Search, Schedule: false}.
func DefaultOptions() Options {
	return Options{Method: Search}
}

// WithMethod selects Search or Greedy. Unknown methods surface as ErrOptionViolation.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if m != Search && m != Greedy {
			o.err = fmt.Errorf("%w: unknown method %d", ErrOptionViolation, m)
			return
		}
		o.Method = m
	}
}

// WithSchedule asks MinTime to return the sequence of crossings.
func WithSchedule() Option {
	return func(o *Options) {
		o.Schedule = true
	}
}

// Move is one trip over the bridge with the flashlight.
type Move struct {
	People  []int // indices into the input times, ascending
	Forward bool  // true when crossing away from the start side
	Cost    int   // time of the slowest mover
}

// Result holds the minimum total time and, on request, one optimal schedule.
type Result struct {
	Total    int
	Schedule []Move
}
