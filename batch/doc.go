// Package batch solves many independent puzzle instances concurrently.
//
// Each solver in this module is a pure, single-threaded function, so
// separate instances can run side by side without coordination. Run bounds
// the number in flight with an errgroup limit and returns outcomes in input
// order; ParseLine and ParseAll read instances from a one-per-line text
// format used by cmd/katas:
//
//	wordtoy aaaa zzzz | a a a z | z a a a
//	donations 10 3 2 5 7 8
//	zigzag 1 7 4 9 2 5
//	bridge 1 2 5 10
package batch
