// Package katas is a small workshop of exact solvers for classic puzzle
// katas: breadth-first search over implicit state graphs, circular and
// alternating dynamic programming, and a shortest-path search over bitmask
// states.
//
// 🚀 What is inside?
//
//	Pure, single-threaded solvers, each in its own package:
//		• wordtoy:   fewest clicks on a four-letter toy that must never show a forbidden word
//		• neighbors: best donation total from a circle where neighbours never both give
//		• zigzag:    longest subsequence whose differences alternate in sign
//		• bridge:    fastest night crossing of a bridge with one flashlight
//	plus a runner that solves many independent instances at once:
//		• batch:     line-format parser and bounded parallel runner
//		• cmd/katas: command-line front end over batch
//
// ✨ Shared conventions
//
//   - Sentinel errors per package (ErrEmptyInput, ErrOptionViolation, ...)
//   - Unreachable goals are a value (-1), never an error
//   - Functional options for searches, an Options struct for the DP solvers
//   - Hooks (OnEnqueue, OnVisit) and context cancellation in wordtoy.Search
//
// Quick ASCII example of one word-toy click:
//
//	  a z m b
//	  ↓ ↑
//	  z a m b      (a-1 wraps to z, z+1 wraps to a)
//
// Usage:
//
//	go install github.com/katalvlaran/katas/cmd/katas@latest
//	echo "bridge 1 2 5 10" | katas
package katas
