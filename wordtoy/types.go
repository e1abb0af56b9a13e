// Package wordtoy provides tunable options, sentinel errors and result types
// for the word-toy shortest-click search.
package wordtoy

import (
	"context"
	"errors"
	"fmt"
)

// Geometry of the toy: four letters, each cycling through a 26-letter alphabet.
const (
	// Letters is the number of letter positions shown by the toy.
	Letters = 4

	// Alphabet is the number of symbols per position ('a'..'z').
	Alphabet = 26

	// LetterBits is the width of one packed letter field, ceil(log2(Alphabet)).
	LetterBits = 5

	// StateSpace is the size of the packed key space, 2^(Letters·LetterBits).
	StateSpace = 1 << (Letters * LetterBits)

	letterMask = 1<<LetterBits - 1
)

// Sentinel errors for parsing words and rules and for running the search.
var (
	// ErrWordLength is returned when a word does not have exactly Letters bytes.
	ErrWordLength = errors.New("wordtoy: word must have exactly 4 letters")

	// ErrWordLetter is returned when a word contains anything but 'a'..'z'.
	ErrWordLetter = errors.New("wordtoy: word must contain only lowercase letters")

	// ErrRuleTokens is returned when a rule is not 4 non-empty single-space-separated tokens.
	ErrRuleTokens = errors.New("wordtoy: rule must have exactly 4 non-empty tokens")

	// ErrRuleLetter is returned when a rule token contains anything but 'a'..'z'.
	ErrRuleLetter = errors.New("wordtoy: rule tokens must contain only lowercase letters")

	// ErrRuleDuplicate is returned when a letter repeats inside one rule token.
	ErrRuleDuplicate = errors.New("wordtoy: rule token repeats a letter")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wordtoy: invalid option supplied")
)

// Option configures Search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when Search runs.
type Option func(*Options)

// Options holds parameters and callbacks for one Search call.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a word is first discovered, with its depth.
	OnEnqueue func(w Word, depth int)

	// OnVisit is called when a word is expanded. A non-nil error aborts the search.
	OnVisit func(w Word, depth int) error

	// MaxDepth, if > 0, stops discovering words deeper than this many clicks.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a background context, no depth limit
// and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(Word, int) {},
		OnVisit:   func(Word, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback run when a word joins the frontier.
func WithOnEnqueue(fn func(w Word, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run when a word is expanded; returning an
// error from it stops the search.
func WithOnVisit(fn func(w Word, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits discovery to d clicks from the start.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of one Search.
//   - Clicks: minimum number of clicks from start to goal, or -1 if unreachable.
//   - Expanded: words dequeued and expanded.
//   - Discovered: words that entered the frontier, start included.
//   - Blocked: forbidden words met (each counted once).
type Result struct {
	Start, Goal Word
	Clicks      int
	Expanded    int
	Discovered  int
	Blocked     int

	parent map[Word]Word
}

// Reached reports whether the goal was reached.
func (r *Result) Reached() bool { return r.Clicks >= 0 }

// Path reconstructs the words displayed from start to goal, both included.
// Returns nil if the goal was not reached.
func (r *Result) Path() []Word {
	if !r.Reached() {
		return nil
	}
	path := make([]Word, 0, r.Clicks+1)
	for cur := r.Goal; cur != root; cur = r.parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
