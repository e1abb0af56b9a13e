// Package zigzag computes the longest zig-zag subsequence of a sequence:
// the longest subsequence whose successive differences strictly alternate
// between positive and negative.
//
// Two DP tables are kept, one for subsequences ending with a rising step and
// one for those ending with a falling step; each element extends the opposite
// table of every earlier element. Longest works on any ordered element type.
//
//	n, path, err := zigzag.Longest([]int{1, 7, 4, 9, 2, 5}, &zigzag.Options{ReturnPath: true})
//	// n == 6, path == [0 1 2 3 4 5]
//
// Complexity: O(n²) time, O(n) memory.
package zigzag
