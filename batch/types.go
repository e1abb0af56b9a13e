// Package batch defines the problem kinds, outcomes and sentinel errors of
// the parallel instance runner.
package batch

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/katas/bridge"
	"github.com/katalvlaran/katas/neighbors"
	"github.com/katalvlaran/katas/wordtoy"
	"github.com/katalvlaran/katas/zigzag"
)

// Sentinel errors for parsing problem lines.
var (
	// ErrUnknownKind indicates a line starts with an unrecognised problem kind.
	ErrUnknownKind = errors.New("batch: unknown problem kind")

	// ErrSyntax indicates a malformed problem line.
	ErrSyntax = errors.New("batch: malformed problem line")
)

// Problem kinds, as written at the start of a line.
const (
	KindWordToy   = "wordtoy"
	KindDonations = "donations"
	KindZigZag    = "zigzag"
	KindBridge    = "bridge"
)

// Problem is one independent puzzle instance.
type Problem interface {
	// Kind names the puzzle, e.g. "wordtoy".
	Kind() string

	// Solve computes the scalar answer. Only the word-toy search observes ctx.
	Solve(ctx context.Context) (int, error)
}

// WordToy asks for the fewest clicks from Start to Finish; -1 if impossible.
type WordToy struct {
	Start, Finish string
	Forbid        []string
}

// Kind implements Problem.
func (WordToy) Kind() string { return KindWordToy }

// Solve implements Problem.
func (p WordToy) Solve(ctx context.Context) (int, error) {
	return wordtoy.MinClicks(p.Start, p.Finish, p.Forbid, wordtoy.WithContext(ctx))
}

// Donations asks for the best circular collection.
type Donations struct {
	Values []int
}

// Kind implements Problem.
func (Donations) Kind() string { return KindDonations }

// Solve implements Problem.
func (p Donations) Solve(context.Context) (int, error) {
	total, _, err := neighbors.MaxDonations(p.Values, nil)
	return total, err
}

// ZigZag asks for the longest alternating subsequence length.
type ZigZag struct {
	Sequence []int
}

// Kind implements Problem.
func (ZigZag) Kind() string { return KindZigZag }

// Solve implements Problem.
func (p ZigZag) Solve(context.Context) (int, error) {
	n, _, err := zigzag.Longest(p.Sequence, nil)
	return n, err
}

// Bridge asks for the minimum total crossing time.
type Bridge struct {
	Times []int
}

// Kind implements Problem.
func (Bridge) Kind() string { return KindBridge }

// Solve implements Problem. Parties too large for the exact search fall back
// to the greedy recurrence, which gives the same answer.
func (p Bridge) Solve(context.Context) (int, error) {
	method := bridge.Search
	if len(p.Times) > bridge.MaxSearchPeople {
		method = bridge.Greedy
	}
	res, err := bridge.MinTime(p.Times, bridge.WithMethod(method))
	if err != nil {
		return 0, err
	}

	return res.Total, nil
}

// Outcome is the result of one Problem, at the same index as its input.
type Outcome struct {
	Problem Problem
	Answer  int
	Err     error
	Elapsed time.Duration
}
